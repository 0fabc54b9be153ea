package entity

import (
	"feira/internal/domain/patch"

	"github.com/google/uuid"
)

// UserPatch lists the user fields a partial update may change.
type UserPatch struct {
	Name         patch.Field[string]
	Email        patch.Field[string]
	PasswordHash patch.Field[string]
	Type         patch.Field[UserType]
}

type SupplierPatch struct {
	Name        patch.Field[string]
	Email       patch.Field[string]
	City        patch.Field[string]
	Description patch.Field[string]
}

type AddressPatch struct {
	Street     patch.Field[string]
	Number     patch.Field[string]
	Complement patch.Field[string]
	District   patch.Field[string]
	City       patch.Field[string]
	State      patch.Field[string]
	ZipCode    patch.Field[string]
	Latitude   patch.Field[float64]
	Longitude  patch.Field[float64]
}

type StallPatch struct {
	SupplierID     patch.Field[uuid.UUID]
	Name           patch.Field[string]
	Description    patch.Field[string]
	OperatingHours patch.Field[string]
}

type ProductPatch struct {
	StallID patch.Field[uuid.UUID]
	Name    patch.Field[string]
	Price   patch.Field[float64]
	Image   patch.Field[string]
}
