package entity

import (
	"time"

	"github.com/google/uuid"
)

// Supplier is a vendor that owns stalls.
type Supplier struct {
	ID          uuid.UUID
	Name        string
	Email       string
	City        string
	Description *string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
