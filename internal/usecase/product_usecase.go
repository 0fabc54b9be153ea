package usecase

import (
	"context"
	"io"

	"feira/internal/domain/entity"

	"github.com/google/uuid"
)

// CreateProductInput defines the data required to create a product.
type CreateProductInput struct {
	StallID uuid.UUID
	Name    string
	Price   float64
	Image   *string
}

// UploadImageInput carries an uploaded product image.
type UploadImageInput struct {
	ProductID   uuid.UUID
	Filename    string
	ContentType string
	Data        []byte
}

// ProductImage is an open product image. The caller closes Body. Images
// held as an external URL come back with only RedirectURL set.
type ProductImage struct {
	Body        io.ReadCloser
	ContentType string
	RedirectURL string
}

// ProductUsecase defines the product operations.
type ProductUsecase interface {
	CreateProduct(ctx context.Context, input CreateProductInput) (*entity.Product, error)
	GetProduct(ctx context.Context, id uuid.UUID) (*entity.Product, error)
	ListProducts(ctx context.Context) ([]*entity.Product, error)
	ListProductsByStall(ctx context.Context, stallID uuid.UUID) ([]*entity.Product, error)
	UpdateProduct(ctx context.Context, id uuid.UUID, input entity.ProductPatch) (*entity.Product, error)
	DeleteProduct(ctx context.Context, id uuid.UUID) error
	UploadProductImage(ctx context.Context, input UploadImageInput) (*entity.Product, error)
	OpenProductImage(ctx context.Context, id uuid.UUID) (*ProductImage, error)
}
