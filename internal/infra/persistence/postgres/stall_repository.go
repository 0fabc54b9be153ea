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
	"gorm.io/gorm/clause"
	"gorm.io/plugin/dbresolver"
)

type stallRepository struct {
	db *gorm.DB
}

// NewStallRepository returns a gorm-backed StallRepository.
func NewStallRepository(db *gorm.DB) repository.StallRepository {
	return &stallRepository{db: db}
}

func (repo *stallRepository) Create(ctx context.Context, stall *entity.Stall) error {
	stallM := fromStallDomain(stall)

	if err := repo.db.WithContext(ctx).Omit(clause.Associations).Create(stallM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrAddressNotFound.WrapMessage("stall address does not exist")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create stall")
	}

	stall.CreatedAt = stallM.CreatedAt
	stall.UpdatedAt = stallM.UpdatedAt

	return nil
}

func (repo *stallRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Stall, error) {
	var stallM model.StallModel
	if err := repo.db.WithContext(ctx).Preload("Address").Where("id = ?", id).First(&stallM).Error; err != nil {
		return nil, notFound(err, repository.ErrStallNotFound, "failed to find stall by id")
	}

	return toStallDomain(&stallM), nil
}

// ListAll reads from a replica when one is configured.
func (repo *stallRepository) ListAll(ctx context.Context) ([]*entity.Stall, error) {
	return repo.find(repo.db.WithContext(ctx).Clauses(dbresolver.Read))
}

func (repo *stallRepository) ListBySupplier(ctx context.Context, supplierID uuid.UUID) ([]*entity.Stall, error) {
	return repo.find(repo.db.WithContext(ctx).Where("supplier_id = ?", supplierID))
}

func (repo *stallRepository) find(query *gorm.DB) ([]*entity.Stall, error) {
	var rows []*model.StallModel
	if err := query.Preload("Address").Order("created_at ASC").Order("id ASC").Find(&rows).Error; err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to list stalls")
	}

	stalls := make([]*entity.Stall, 0, len(rows))
	for _, row := range rows {
		stalls = append(stalls, toStallDomain(row))
	}

	return stalls, nil
}

func (repo *stallRepository) Update(ctx context.Context, id uuid.UUID, p entity.StallPatch) error {
	cols := patch.Columns{}
	patch.Put(cols, "supplier_id", p.SupplierID)
	patch.Put(cols, "name", p.Name)
	patch.PutPtr(cols, "description", p.Description)
	patch.PutPtr(cols, "operating_hours", p.OperatingHours)

	return updateColumns(ctx, repo.db, &model.StallModel{}, id, cols, repository.ErrStallNotFound, defaultWriteError)
}

func (repo *stallRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return deleteByID(ctx, repo.db, &model.StallModel{}, id, repository.ErrStallNotFound)
}

func toStallDomain(data *model.StallModel) *entity.Stall {
	if data == nil {
		return nil
	}

	return &entity.Stall{
		ID:             data.ID,
		SupplierID:     data.SupplierID,
		AddressID:      data.AddressID,
		Name:           data.Name,
		Description:    data.Description,
		OperatingHours: data.OperatingHours,
		Address:        toAddressDomain(data.Address),
		CreatedAt:      data.CreatedAt,
		UpdatedAt:      data.UpdatedAt,
	}
}

func fromStallDomain(data *entity.Stall) *model.StallModel {
	if data == nil {
		return nil
	}

	return &model.StallModel{
		ID:             data.ID,
		SupplierID:     data.SupplierID,
		AddressID:      data.AddressID,
		Name:           data.Name,
		Description:    data.Description,
		OperatingHours: data.OperatingHours,
		CreatedAt:      data.CreatedAt,
		UpdatedAt:      data.UpdatedAt,
	}
}
