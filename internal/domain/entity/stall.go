package entity

import (
	"time"

	"github.com/google/uuid"
)

// Stall is a supplier's market stand ("banca"). Address is populated by
// repository reads that preload it and is nil otherwise.
type Stall struct {
	ID             uuid.UUID
	SupplierID     uuid.UUID
	AddressID      uuid.UUID
	Name           string
	Description    *string
	OperatingHours *string
	Address        *Address
	CreatedAt      time.Time
	UpdatedAt      time.Time
}
