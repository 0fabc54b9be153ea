package entity

import (
	"time"

	"github.com/google/uuid"
)

// Product is an item sold at a stall. It has no location of its own and
// is placed through its stall's address.
type Product struct {
	ID        uuid.UUID
	StallID   uuid.UUID
	Name      string
	Price     float64
	Image     *string // blob key or external URL
	CreatedAt time.Time
	UpdatedAt time.Time
}
