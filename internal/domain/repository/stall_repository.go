package repository

import (
	"context"

	"feira/internal/domain/entity"

	"github.com/google/uuid"
)

// StallRepository persists stalls. Every read preloads the stall's Address.
type StallRepository interface {
	Create(ctx context.Context, stall *entity.Stall) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Stall, error)

	// ListAll returns every stall. It backs the in-memory search.
	ListAll(ctx context.Context) ([]*entity.Stall, error)
	ListBySupplier(ctx context.Context, supplierID uuid.UUID) ([]*entity.Stall, error)
	Update(ctx context.Context, id uuid.UUID, patch entity.StallPatch) error
	Delete(ctx context.Context, id uuid.UUID) error
}

// ProductRepository persists products.
type ProductRepository interface {
	Create(ctx context.Context, product *entity.Product) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Product, error)

	// ListAll returns every product. It backs the in-memory search.
	ListAll(ctx context.Context) ([]*entity.Product, error)
	ListByStall(ctx context.Context, stallID uuid.UUID) ([]*entity.Product, error)
	Update(ctx context.Context, id uuid.UUID, patch entity.ProductPatch) error
	Delete(ctx context.Context, id uuid.UUID) error
	DeleteByStall(ctx context.Context, stallID uuid.UUID) (int64, error)
}
