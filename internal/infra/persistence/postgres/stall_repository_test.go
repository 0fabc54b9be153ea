package postgres

import (
	"testing"

	"feira/internal/domain/entity"
	domainerrors "feira/internal/domain/errors"
	"feira/internal/domain/patch"
	"feira/internal/domain/repository"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAddressRepository_UpdateCoordinates(t *testing.T) {
	db := newTestDB(t)
	repo := NewAddressRepository(db)
	ctx := t.Context()

	address := seedAddress(t, db, nil, nil)

	got, err := repo.FindByID(ctx, address.ID)
	require.NoError(t, err)
	_, _, ok := got.Coordinates()
	assert.False(t, ok)

	err = repo.Update(ctx, address.ID, entity.AddressPatch{
		Latitude:  patch.Set(-23.5505),
		Longitude: patch.Set(-46.6333),
		Street:    patch.Null[string](),
	})
	require.NoError(t, err)

	got, err = repo.FindByID(ctx, address.ID)
	require.NoError(t, err)
	lat, lon, ok := got.Coordinates()
	require.True(t, ok)
	assert.InDelta(t, -23.5505, lat, 1e-9)
	assert.InDelta(t, -46.6333, lon, 1e-9)
	assert.Equal(t, "Rua das Flores", got.Street)

	assert.ErrorIs(t, repo.Delete(ctx, uuid.New()), repository.ErrAddressNotFound)
}

func TestStallRepository_PreloadsAddress(t *testing.T) {
	db := newTestDB(t)
	repo := NewStallRepository(db)
	ctx := t.Context()

	supplierID := uuid.New()
	stall := seedStall(t, db, supplierID, "Banca do Zé", at(0))
	seedStall(t, db, uuid.New(), "Banca da Ana", at(1))

	got, err := repo.FindByID(ctx, stall.ID)
	require.NoError(t, err)
	require.NotNil(t, got.Address)
	assert.Equal(t, "Campinas", got.Address.City)

	all, err := repo.ListAll(ctx)
	require.NoError(t, err)
	require.Len(t, all, 2)
	assert.Equal(t, "Banca do Zé", all[0].Name)
	assert.NotNil(t, all[1].Address)

	bySupplier, err := repo.ListBySupplier(ctx, supplierID)
	require.NoError(t, err)
	require.Len(t, bySupplier, 1)
	assert.Equal(t, stall.ID, bySupplier[0].ID)
}

func TestStallRepository_CreateWithMissingAddress(t *testing.T) {
	db := newTestDB(t)
	repo := NewStallRepository(db)

	err := repo.Create(t.Context(), &entity.Stall{
		ID:         uuid.New(),
		SupplierID: uuid.New(),
		AddressID:  uuid.New(),
		Name:       "Fantasma",
	})
	assert.ErrorIs(t, err, domainerrors.ErrAddressNotFound)
}

func TestStallRepository_UpdateAndDelete(t *testing.T) {
	db := newTestDB(t)
	repo := NewStallRepository(db)
	ctx := t.Context()

	stall := seedStall(t, db, uuid.New(), "Banca", at(0))

	require.NoError(t, repo.Update(ctx, stall.ID, entity.StallPatch{
		Name:           patch.Set("Banca Nova"),
		OperatingHours: patch.Set("Sáb 6h-13h"),
	}))

	got, err := repo.FindByID(ctx, stall.ID)
	require.NoError(t, err)
	assert.Equal(t, "Banca Nova", got.Name)
	require.NotNil(t, got.OperatingHours)
	assert.Equal(t, "Sáb 6h-13h", *got.OperatingHours)
	assert.Nil(t, got.Description)

	require.NoError(t, repo.Delete(ctx, stall.ID))
	_, err = repo.FindByID(ctx, stall.ID)
	assert.ErrorIs(t, err, repository.ErrStallNotFound)
}

func TestProductRepository_CRUD(t *testing.T) {
	db := newTestDB(t)
	repo := NewProductRepository(db)
	ctx := t.Context()

	stall := seedStall(t, db, uuid.New(), "Banca", at(0))
	other := seedStall(t, db, uuid.New(), "Outra", at(1))

	tomato := &entity.Product{ID: uuid.New(), StallID: stall.ID, Name: "Tomate", Price: 7.5, CreatedAt: at(0)}
	lettuce := &entity.Product{ID: uuid.New(), StallID: stall.ID, Name: "Alface", Price: 3, CreatedAt: at(1)}
	apple := &entity.Product{ID: uuid.New(), StallID: other.ID, Name: "Maçã", Price: 9.9, CreatedAt: at(2)}
	for _, p := range []*entity.Product{tomato, lettuce, apple} {
		require.NoError(t, repo.Create(ctx, p))
	}

	byStall, err := repo.ListByStall(ctx, stall.ID)
	require.NoError(t, err)
	require.Len(t, byStall, 2)
	assert.Equal(t, "Tomate", byStall[0].Name)

	require.NoError(t, repo.Update(ctx, tomato.ID, entity.ProductPatch{
		Price: patch.Set(8.25),
		Image: patch.Set("products/tomate.png"),
		Name:  patch.Null[string](),
	}))
	got, err := repo.FindByID(ctx, tomato.ID)
	require.NoError(t, err)
	assert.Equal(t, "Tomate", got.Name)
	assert.InDelta(t, 8.25, got.Price, 1e-9)
	require.NotNil(t, got.Image)
	assert.Equal(t, "products/tomate.png", *got.Image)

	deleted, err := repo.DeleteByStall(ctx, stall.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(2), deleted)

	all, err := repo.ListAll(ctx)
	require.NoError(t, err)
	require.Len(t, all, 1)
	assert.Equal(t, apple.ID, all[0].ID)

	assert.ErrorIs(t, repo.Delete(ctx, tomato.ID), repository.ErrProductNotFound)
}

func TestProductRepository_NegativePriceRejected(t *testing.T) {
	db := newTestDB(t)
	repo := NewProductRepository(db)

	stall := seedStall(t, db, uuid.New(), "Banca", at(0))

	err := repo.Create(t.Context(), &entity.Product{ID: uuid.New(), StallID: stall.ID, Name: "Grátis", Price: -1})
	assert.ErrorIs(t, err, domainerrors.ErrInvalidPrice)
}
