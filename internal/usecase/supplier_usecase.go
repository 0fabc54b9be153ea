package usecase

import (
	"context"

	"feira/internal/domain/entity"

	"github.com/google/uuid"
)

// CreateSupplierInput defines the data required to register a supplier.
type CreateSupplierInput struct {
	Name        string
	Email       string
	City        string
	Description *string
}

// SupplierUsecase defines the supplier operations.
type SupplierUsecase interface {
	CreateSupplier(ctx context.Context, input CreateSupplierInput) (*entity.Supplier, error)
	GetSupplier(ctx context.Context, id uuid.UUID) (*entity.Supplier, error)
	ListSuppliers(ctx context.Context) ([]*entity.Supplier, error)
	ListSuppliersByCity(ctx context.Context, city string) ([]*entity.Supplier, error)
	UpdateSupplier(ctx context.Context, id uuid.UUID, input entity.SupplierPatch) (*entity.Supplier, error)
	DeleteSupplier(ctx context.Context, id uuid.UUID) error
}
