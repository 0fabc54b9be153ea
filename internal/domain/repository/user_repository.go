// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the domain/application layers and the infrastructure layer.
package repository

import (
	"context"

	"feira/internal/domain/entity"
	domainerrors "feira/internal/domain/errors"

	"github.com/google/uuid"
)

// Not-found sentinels. They are the domain errors themselves so a miss
// reaches the API as a 404 without a translation step.
var (
	ErrUserNotFound     = domainerrors.ErrUserNotFound
	ErrSupplierNotFound = domainerrors.ErrSupplierNotFound
	ErrAddressNotFound  = domainerrors.ErrAddressNotFound
	ErrStallNotFound    = domainerrors.ErrStallNotFound
	ErrProductNotFound  = domainerrors.ErrProductNotFound
	ErrChatNotFound     = domainerrors.ErrChatNotFound
	ErrMessageNotFound  = domainerrors.ErrMessageNotFound
)

// UserRepository defines the standard operations for user persistence.
type UserRepository interface {
	Create(ctx context.Context, user *entity.User) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.User, error)
	FindByEmail(ctx context.Context, email string) (*entity.User, error)
	List(ctx context.Context) ([]*entity.User, error)

	// Update writes only the fields the patch carries a value for.
	Update(ctx context.Context, id uuid.UUID, patch entity.UserPatch) error
	Delete(ctx context.Context, id uuid.UUID) error
}

// SupplierRepository persists suppliers.
type SupplierRepository interface {
	Create(ctx context.Context, supplier *entity.Supplier) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Supplier, error)
	FindByEmail(ctx context.Context, email string) (*entity.Supplier, error)
	List(ctx context.Context) ([]*entity.Supplier, error)
	ListByCity(ctx context.Context, city string) ([]*entity.Supplier, error)
	Update(ctx context.Context, id uuid.UUID, patch entity.SupplierPatch) error
	Delete(ctx context.Context, id uuid.UUID) error
}
