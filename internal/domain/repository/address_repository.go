package repository

import (
	"context"

	"feira/internal/domain/entity"

	"github.com/google/uuid"
)

// AddressRepository persists stall addresses.
type AddressRepository interface {
	Create(ctx context.Context, address *entity.Address) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Address, error)
	Update(ctx context.Context, id uuid.UUID, patch entity.AddressPatch) error
	Delete(ctx context.Context, id uuid.UUID) error
}
