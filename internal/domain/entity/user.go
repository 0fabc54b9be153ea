// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// User is an account that can log in. Suppliers log in as users of type
// UserTypeSupplier; their marketplace data lives in Supplier.
type User struct {
	ID           uuid.UUID
	Name         string
	Email        string
	PasswordHash string // bcrypt; never serialized
	Type         UserType
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
