package postgres

import (
	"context"

	"feira/internal/domain/entity"
	domainerrors "feira/internal/domain/errors"
	"feira/internal/domain/patch"
	"feira/internal/domain/repository"
	"feira/internal/infra/persistence/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/plugin/dbresolver"
)

type productRepository struct {
	db *gorm.DB
}

// NewProductRepository returns a gorm-backed ProductRepository.
func NewProductRepository(db *gorm.DB) repository.ProductRepository {
	return &productRepository{db: db}
}

func (repo *productRepository) Create(ctx context.Context, product *entity.Product) error {
	productM := fromProductDomain(product)

	if err := repo.db.WithContext(ctx).Create(productM).Error; err != nil {
		return productWriteError(err, "failed to create product")
	}

	product.CreatedAt = productM.CreatedAt
	product.UpdatedAt = productM.UpdatedAt

	return nil
}

func (repo *productRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Product, error) {
	var productM model.ProductModel
	if err := repo.db.WithContext(ctx).Where("id = ?", id).First(&productM).Error; err != nil {
		return nil, notFound(err, repository.ErrProductNotFound, "failed to find product by id")
	}

	return toProductDomain(&productM), nil
}

// ListAll reads from a replica when one is configured.
func (repo *productRepository) ListAll(ctx context.Context) ([]*entity.Product, error) {
	return repo.find(repo.db.WithContext(ctx).Clauses(dbresolver.Read))
}

func (repo *productRepository) ListByStall(ctx context.Context, stallID uuid.UUID) ([]*entity.Product, error) {
	return repo.find(repo.db.WithContext(ctx).Where("stall_id = ?", stallID))
}

func (repo *productRepository) find(query *gorm.DB) ([]*entity.Product, error) {
	var rows []*model.ProductModel
	if err := query.Order("created_at ASC").Order("id ASC").Find(&rows).Error; err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to list products")
	}

	products := make([]*entity.Product, 0, len(rows))
	for _, row := range rows {
		products = append(products, toProductDomain(row))
	}

	return products, nil
}

func (repo *productRepository) Update(ctx context.Context, id uuid.UUID, p entity.ProductPatch) error {
	cols := patch.Columns{}
	patch.Put(cols, "stall_id", p.StallID)
	patch.Put(cols, "name", p.Name)
	patch.Put(cols, "price", p.Price)
	patch.PutPtr(cols, "image", p.Image)

	return updateColumns(ctx, repo.db, &model.ProductModel{}, id, cols, repository.ErrProductNotFound, productWriteError)
}

func (repo *productRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return deleteByID(ctx, repo.db, &model.ProductModel{}, id, repository.ErrProductNotFound)
}

func (repo *productRepository) DeleteByStall(ctx context.Context, stallID uuid.UUID) (int64, error) {
	result := repo.db.WithContext(ctx).Where("stall_id = ?", stallID).Delete(&model.ProductModel{})
	if result.Error != nil {
		return 0, domainerrors.NewDatabaseExecuteError(result.Error, "failed to delete stall products")
	}

	return result.RowsAffected, nil
}

func toProductDomain(data *model.ProductModel) *entity.Product {
	if data == nil {
		return nil
	}

	return &entity.Product{
		ID:        data.ID,
		StallID:   data.StallID,
		Name:      data.Name,
		Price:     data.Price,
		Image:     data.Image,
		CreatedAt: data.CreatedAt,
		UpdatedAt: data.UpdatedAt,
	}
}

func fromProductDomain(data *entity.Product) *model.ProductModel {
	if data == nil {
		return nil
	}

	return &model.ProductModel{
		ID:        data.ID,
		StallID:   data.StallID,
		Name:      data.Name,
		Price:     data.Price,
		Image:     data.Image,
		CreatedAt: data.CreatedAt,
		UpdatedAt: data.UpdatedAt,
	}
}
