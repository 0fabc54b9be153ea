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
)

type addressRepository struct {
	db *gorm.DB
}

// NewAddressRepository returns a gorm-backed AddressRepository.
func NewAddressRepository(db *gorm.DB) repository.AddressRepository {
	return &addressRepository{db: db}
}

func (repo *addressRepository) Create(ctx context.Context, address *entity.Address) error {
	addressM := fromAddressDomain(address)

	if err := repo.db.WithContext(ctx).Create(addressM).Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to create address")
	}

	address.CreatedAt = addressM.CreatedAt
	address.UpdatedAt = addressM.UpdatedAt

	return nil
}

func (repo *addressRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Address, error) {
	var addressM model.AddressModel
	if err := repo.db.WithContext(ctx).Where("id = ?", id).First(&addressM).Error; err != nil {
		return nil, notFound(err, repository.ErrAddressNotFound, "failed to find address by id")
	}

	return toAddressDomain(&addressM), nil
}

func (repo *addressRepository) Update(ctx context.Context, id uuid.UUID, p entity.AddressPatch) error {
	cols := patch.Columns{}
	patch.Put(cols, "street", p.Street)
	patch.Put(cols, "number", p.Number)
	patch.PutPtr(cols, "complement", p.Complement)
	patch.Put(cols, "district", p.District)
	patch.Put(cols, "city", p.City)
	patch.Put(cols, "state", p.State)
	patch.Put(cols, "zip_code", p.ZipCode)
	patch.PutPtr(cols, "latitude", p.Latitude)
	patch.PutPtr(cols, "longitude", p.Longitude)

	return updateColumns(ctx, repo.db, &model.AddressModel{}, id, cols, repository.ErrAddressNotFound, defaultWriteError)
}

func (repo *addressRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return deleteByID(ctx, repo.db, &model.AddressModel{}, id, repository.ErrAddressNotFound)
}

func toAddressDomain(data *model.AddressModel) *entity.Address {
	if data == nil {
		return nil
	}

	return &entity.Address{
		ID:         data.ID,
		Street:     data.Street,
		Number:     data.Number,
		Complement: data.Complement,
		District:   data.District,
		City:       data.City,
		State:      data.State,
		ZipCode:    data.ZipCode,
		Latitude:   data.Latitude,
		Longitude:  data.Longitude,
		CreatedAt:  data.CreatedAt,
		UpdatedAt:  data.UpdatedAt,
	}
}

func fromAddressDomain(data *entity.Address) *model.AddressModel {
	if data == nil {
		return nil
	}

	return &model.AddressModel{
		ID:         data.ID,
		Street:     data.Street,
		Number:     data.Number,
		Complement: data.Complement,
		District:   data.District,
		City:       data.City,
		State:      data.State,
		ZipCode:    data.ZipCode,
		Latitude:   data.Latitude,
		Longitude:  data.Longitude,
		CreatedAt:  data.CreatedAt,
		UpdatedAt:  data.UpdatedAt,
	}
}
