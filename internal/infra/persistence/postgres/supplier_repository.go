package postgres

import (
	"context"
	"strings"

	"feira/internal/domain/entity"
	domainerrors "feira/internal/domain/errors"
	"feira/internal/domain/patch"
	"feira/internal/domain/repository"
	"feira/internal/infra/persistence/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type supplierRepository struct {
	db *gorm.DB
}

// NewSupplierRepository returns a gorm-backed SupplierRepository.
func NewSupplierRepository(db *gorm.DB) repository.SupplierRepository {
	return &supplierRepository{db: db}
}

func (repo *supplierRepository) Create(ctx context.Context, supplier *entity.Supplier) error {
	supplierM := fromSupplierDomain(supplier)

	if err := repo.db.WithContext(ctx).Create(supplierM).Error; err != nil {
		return emailWriteError(err, "failed to create supplier")
	}

	supplier.CreatedAt = supplierM.CreatedAt
	supplier.UpdatedAt = supplierM.UpdatedAt

	return nil
}

func (repo *supplierRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Supplier, error) {
	var supplierM model.SupplierModel
	if err := repo.db.WithContext(ctx).Where("id = ?", id).First(&supplierM).Error; err != nil {
		return nil, notFound(err, repository.ErrSupplierNotFound, "failed to find supplier by id")
	}

	return toSupplierDomain(&supplierM), nil
}

func (repo *supplierRepository) FindByEmail(ctx context.Context, email string) (*entity.Supplier, error) {
	var supplierM model.SupplierModel
	if err := repo.db.WithContext(ctx).Where("email = ?", email).First(&supplierM).Error; err != nil {
		return nil, notFound(err, repository.ErrSupplierNotFound, "failed to find supplier by email")
	}

	return toSupplierDomain(&supplierM), nil
}

func (repo *supplierRepository) List(ctx context.Context) ([]*entity.Supplier, error) {
	return repo.find(repo.db.WithContext(ctx))
}

// ListByCity matches the city case-insensitively.
func (repo *supplierRepository) ListByCity(ctx context.Context, city string) ([]*entity.Supplier, error) {
	return repo.find(repo.db.WithContext(ctx).Where("LOWER(city) = ?", strings.ToLower(strings.TrimSpace(city))))
}

func (repo *supplierRepository) find(query *gorm.DB) ([]*entity.Supplier, error) {
	var rows []*model.SupplierModel
	if err := query.Order("created_at ASC").Find(&rows).Error; err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to list suppliers")
	}

	suppliers := make([]*entity.Supplier, 0, len(rows))
	for _, row := range rows {
		suppliers = append(suppliers, toSupplierDomain(row))
	}

	return suppliers, nil
}

func (repo *supplierRepository) Update(ctx context.Context, id uuid.UUID, p entity.SupplierPatch) error {
	cols := patch.Columns{}
	patch.Put(cols, "name", p.Name)
	patch.Put(cols, "email", p.Email)
	patch.Put(cols, "city", p.City)
	patch.PutPtr(cols, "description", p.Description)

	return updateColumns(ctx, repo.db, &model.SupplierModel{}, id, cols, repository.ErrSupplierNotFound, emailWriteError)
}

func (repo *supplierRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return deleteByID(ctx, repo.db, &model.SupplierModel{}, id, repository.ErrSupplierNotFound)
}

func toSupplierDomain(data *model.SupplierModel) *entity.Supplier {
	if data == nil {
		return nil
	}

	return &entity.Supplier{
		ID:          data.ID,
		Name:        data.Name,
		Email:       data.Email,
		City:        data.City,
		Description: data.Description,
		CreatedAt:   data.CreatedAt,
		UpdatedAt:   data.UpdatedAt,
	}
}

func fromSupplierDomain(data *entity.Supplier) *model.SupplierModel {
	if data == nil {
		return nil
	}

	return &model.SupplierModel{
		ID:          data.ID,
		Name:        data.Name,
		Email:       data.Email,
		City:        data.City,
		Description: data.Description,
		CreatedAt:   data.CreatedAt,
		UpdatedAt:   data.UpdatedAt,
	}
}
