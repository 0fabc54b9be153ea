package usecase

import (
	"context"

	"feira/internal/domain/entity"

	"github.com/google/uuid"
)

// AddressInput is the address a stall is created with.
type AddressInput struct {
	Street     string
	Number     string
	Complement *string
	District   string
	City       string
	State      string
	ZipCode    string
	Latitude   *float64
	Longitude  *float64
}

// CreateStallInput creates a stall together with its address.
type CreateStallInput struct {
	SupplierID     uuid.UUID
	Name           string
	Description    *string
	OperatingHours *string
	Address        AddressInput
}

// UpdateStallInput patches a stall and, optionally, its address.
type UpdateStallInput struct {
	Stall   entity.StallPatch
	Address *entity.AddressPatch
}

// StallUsecase defines the stall operations.
type StallUsecase interface {
	CreateStall(ctx context.Context, input CreateStallInput) (*entity.Stall, error)
	GetStall(ctx context.Context, id uuid.UUID) (*entity.Stall, error)
	ListStalls(ctx context.Context) ([]*entity.Stall, error)
	ListStallsBySupplier(ctx context.Context, supplierID uuid.UUID) ([]*entity.Stall, error)
	UpdateStall(ctx context.Context, id uuid.UUID, input UpdateStallInput) (*entity.Stall, error)
	// DeleteStall removes the stall, its products and its address.
	DeleteStall(ctx context.Context, id uuid.UUID) error
	// StallQRCode renders the PNG a stall prints at its stand.
	StallQRCode(ctx context.Context, id uuid.UUID) ([]byte, error)
}

// AddressUsecase reads and updates addresses. Update is how an address
// gets geocoded.
type AddressUsecase interface {
	GetAddress(ctx context.Context, id uuid.UUID) (*entity.Address, error)
	UpdateAddress(ctx context.Context, id uuid.UUID, input entity.AddressPatch) (*entity.Address, error)
}
