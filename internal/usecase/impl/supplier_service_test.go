package impl

import (
	"context"
	"testing"

	"feira/internal/domain/entity"
	domainerrors "feira/internal/domain/errors"
	"feira/internal/domain/patch"
	"feira/internal/domain/repository"
	mockRepo "feira/internal/mocks/repository"
	"feira/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func createTestSupplierService(t *testing.T) (usecase.SupplierUsecase, *mockRepo.MockSupplierRepository) {
	supplierRepo := mockRepo.NewMockSupplierRepository(t)

	return NewSupplierService(SupplierServiceParams{
		SupplierRepo: supplierRepo,
		Logger:       newDiscardLogger(),
	}), supplierRepo
}

func TestSupplierService_CreateSupplier(t *testing.T) {
	service, supplierRepo := createTestSupplierService(t)
	ctx := context.Background()
	description := "Hortaliças orgânicas"

	supplierRepo.EXPECT().FindByEmail(ctx, "horta@feira.com").Return(nil, repository.ErrSupplierNotFound)
	supplierRepo.EXPECT().
		Create(ctx, mock.MatchedBy(func(s *entity.Supplier) bool {
			return s.Email == "horta@feira.com" && s.City == "Campinas" && *s.Description == description
		})).
		Return(nil)

	supplier, err := service.CreateSupplier(ctx, usecase.CreateSupplierInput{
		Name:        "Horta da Vila",
		Email:       "Horta@feira.com",
		City:        " Campinas ",
		Description: &description,
	})

	require.NoError(t, err)
	assert.NotEqual(t, uuid.Nil, supplier.ID)
}

func TestSupplierService_CreateSupplier_DuplicateEmail(t *testing.T) {
	service, supplierRepo := createTestSupplierService(t)
	ctx := context.Background()

	supplierRepo.EXPECT().FindByEmail(ctx, "horta@feira.com").Return(&entity.Supplier{ID: uuid.New()}, nil)

	_, err := service.CreateSupplier(ctx, usecase.CreateSupplierInput{Name: "Horta", Email: "horta@feira.com", City: "Campinas"})

	assert.ErrorIs(t, err, domainerrors.ErrDuplicateEmail)
}

func TestSupplierService_ListSuppliersByCity(t *testing.T) {
	service, supplierRepo := createTestSupplierService(t)
	ctx := context.Background()
	suppliers := []*entity.Supplier{{ID: uuid.New(), City: "Campinas"}}

	supplierRepo.EXPECT().ListByCity(ctx, "campinas").Return(suppliers, nil)

	got, err := service.ListSuppliersByCity(ctx, "campinas")

	require.NoError(t, err)
	assert.Equal(t, suppliers, got)
}

func TestSupplierService_UpdateSupplier_ClearsDescription(t *testing.T) {
	service, supplierRepo := createTestSupplierService(t)
	ctx := context.Background()
	id := uuid.New()
	changes := entity.SupplierPatch{Description: patch.Null[string]()}

	supplierRepo.EXPECT().Update(ctx, id, changes).Return(nil)
	supplierRepo.EXPECT().FindByID(ctx, id).Return(&entity.Supplier{ID: id}, nil)

	supplier, err := service.UpdateSupplier(ctx, id, changes)

	require.NoError(t, err)
	assert.Nil(t, supplier.Description)
}

func TestSupplierService_DeleteSupplier_NotFound(t *testing.T) {
	service, supplierRepo := createTestSupplierService(t)
	ctx := context.Background()
	id := uuid.New()

	supplierRepo.EXPECT().Delete(ctx, id).Return(repository.ErrSupplierNotFound)

	err := service.DeleteSupplier(ctx, id)

	assert.ErrorIs(t, err, domainerrors.ErrSupplierNotFound)
}
