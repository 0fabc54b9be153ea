package impl

import (
	"context"
	"testing"

	"feira/internal/domain/entity"
	domainerrors "feira/internal/domain/errors"
	"feira/internal/domain/patch"
	"feira/internal/domain/repository"
	mockRepo "feira/internal/mocks/repository"
	mockSvc "feira/internal/mocks/service"
	"feira/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type stallServiceFixtures struct {
	service   usecase.StallUsecase
	txManager *mockRepo.MockTransactionManager
	stallRepo *mockRepo.MockStallRepository
	qrService *mockSvc.MockQRCodeService
	images    *mockSvc.MockImageStorage

	factory        *mockRepo.MockRepositoryFactory
	txSupplierRepo *mockRepo.MockSupplierRepository
	txAddressRepo  *mockRepo.MockAddressRepository
	txStallRepo    *mockRepo.MockStallRepository
	txProductRepo  *mockRepo.MockProductRepository
}

func createTestStallService(t *testing.T) stallServiceFixtures {
	txManager := mockRepo.NewMockTransactionManager(t)
	stallRepo := mockRepo.NewMockStallRepository(t)
	qrService := mockSvc.NewMockQRCodeService(t)
	images := mockSvc.NewMockImageStorage(t)

	return stallServiceFixtures{
		service: NewStallService(StallServiceParams{
			TxManager: txManager,
			StallRepo: stallRepo,
			QRService: qrService,
			Images:    images,
			Logger:    newDiscardLogger(),
		}),
		txManager:      txManager,
		stallRepo:      stallRepo,
		qrService:      qrService,
		images:         images,
		factory:        mockRepo.NewMockRepositoryFactory(t),
		txSupplierRepo: mockRepo.NewMockSupplierRepository(t),
		txAddressRepo:  mockRepo.NewMockAddressRepository(t),
		txStallRepo:    mockRepo.NewMockStallRepository(t),
		txProductRepo:  mockRepo.NewMockProductRepository(t),
	}
}

// inTx routes the factory accessors to the tx-scoped mocks and arms one Execute.
func (fx stallServiceFixtures) inTx() {
	fx.factory.EXPECT().SupplierRepo().Return(fx.txSupplierRepo).Maybe()
	fx.factory.EXPECT().AddressRepo().Return(fx.txAddressRepo).Maybe()
	fx.factory.EXPECT().StallRepo().Return(fx.txStallRepo).Maybe()
	fx.factory.EXPECT().ProductRepo().Return(fx.txProductRepo).Maybe()
	expectTx(fx.txManager, fx.factory)
}

func TestStallService_CreateStall_Success(t *testing.T) {
	fx := createTestStallService(t)
	ctx := context.Background()
	supplierID := uuid.New()
	fx.inTx()

	var createdAddress *entity.Address
	fx.txSupplierRepo.EXPECT().FindByID(ctx, supplierID).Return(&entity.Supplier{ID: supplierID}, nil)
	fx.txAddressRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.Address")).
		Run(func(_ context.Context, address *entity.Address) { createdAddress = address }).
		Return(nil)
	fx.txStallRepo.EXPECT().
		Create(ctx, mock.MatchedBy(func(s *entity.Stall) bool {
			return s.SupplierID == supplierID && s.AddressID == createdAddress.ID && s.Name == "Banca da Sé"
		})).
		Return(nil)

	stall, err := fx.service.CreateStall(ctx, usecase.CreateStallInput{
		SupplierID: supplierID,
		Name:       " Banca da Sé ",
		Address: usecase.AddressInput{
			Street:   "Praça da Sé",
			Number:   "1",
			District: "Sé",
			City:     "São Paulo",
			State:    "SP",
			ZipCode:  "01001-000",
		},
	})

	require.NoError(t, err)
	require.NotNil(t, stall.Address)
	assert.Equal(t, "São Paulo", stall.Address.City)
	_, _, ok := stall.Address.Coordinates()
	assert.False(t, ok)
}

func TestStallService_CreateStall_UnknownSupplier(t *testing.T) {
	fx := createTestStallService(t)
	ctx := context.Background()
	supplierID := uuid.New()
	fx.inTx()

	fx.txSupplierRepo.EXPECT().FindByID(ctx, supplierID).Return(nil, repository.ErrSupplierNotFound)

	_, err := fx.service.CreateStall(ctx, usecase.CreateStallInput{SupplierID: supplierID, Name: "Banca"})

	assert.ErrorIs(t, err, domainerrors.ErrSupplierNotFound)
	fx.txAddressRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestStallService_CreateStall_BadCoordinates(t *testing.T) {
	fx := createTestStallService(t)

	_, err := fx.service.CreateStall(context.Background(), usecase.CreateStallInput{
		SupplierID: uuid.New(),
		Address:    usecase.AddressInput{Latitude: ptr(-95.0), Longitude: ptr(10.0)},
	})

	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
}

func TestStallService_UpdateStall_WithAddress(t *testing.T) {
	fx := createTestStallService(t)
	ctx := context.Background()
	stall := &entity.Stall{ID: uuid.New(), AddressID: uuid.New()}
	input := usecase.UpdateStallInput{
		Stall:   entity.StallPatch{Name: patch.Set("Banca Nova")},
		Address: &entity.AddressPatch{Latitude: patch.Set(-23.5), Longitude: patch.Set(-46.6)},
	}
	fx.inTx()

	fx.txStallRepo.EXPECT().FindByID(ctx, stall.ID).Return(stall, nil)
	fx.txStallRepo.EXPECT().Update(ctx, stall.ID, input.Stall).Return(nil)
	fx.txAddressRepo.EXPECT().Update(ctx, stall.AddressID, *input.Address).Return(nil)
	fx.stallRepo.EXPECT().FindByID(ctx, stall.ID).Return(stall, nil)

	got, err := fx.service.UpdateStall(ctx, stall.ID, input)

	require.NoError(t, err)
	assert.Same(t, stall, got)
}

func TestStallService_UpdateStall_MovesToUnknownSupplier(t *testing.T) {
	fx := createTestStallService(t)
	ctx := context.Background()
	stall := &entity.Stall{ID: uuid.New()}
	supplierID := uuid.New()
	fx.inTx()

	fx.txStallRepo.EXPECT().FindByID(ctx, stall.ID).Return(stall, nil)
	fx.txSupplierRepo.EXPECT().FindByID(ctx, supplierID).Return(nil, repository.ErrSupplierNotFound)

	_, err := fx.service.UpdateStall(ctx, stall.ID, usecase.UpdateStallInput{
		Stall: entity.StallPatch{SupplierID: patch.Set(supplierID)},
	})

	assert.ErrorIs(t, err, domainerrors.ErrSupplierNotFound)
}

func TestStallService_DeleteStall_RemovesProductsThenAddress(t *testing.T) {
	fx := createTestStallService(t)
	ctx := context.Background()
	stall := &entity.Stall{ID: uuid.New(), AddressID: uuid.New()}
	fx.inTx()

	var order []string
	fx.txStallRepo.EXPECT().FindByID(ctx, stall.ID).Return(stall, nil)
	fx.txProductRepo.EXPECT().ListByStall(ctx, stall.ID).Return([]*entity.Product{}, nil)
	fx.txProductRepo.EXPECT().DeleteByStall(ctx, stall.ID).
		Run(func(context.Context, uuid.UUID) { order = append(order, "products") }).
		Return(int64(2), nil)
	fx.txStallRepo.EXPECT().Delete(ctx, stall.ID).
		Run(func(context.Context, uuid.UUID) { order = append(order, "stall") }).
		Return(nil)
	fx.txAddressRepo.EXPECT().Delete(ctx, stall.AddressID).
		Run(func(context.Context, uuid.UUID) { order = append(order, "address") }).
		Return(nil)

	require.NoError(t, fx.service.DeleteStall(ctx, stall.ID))
	assert.Equal(t, []string{"products", "stall", "address"}, order)
}

func TestStallService_DeleteStall_RemovesStoredImages(t *testing.T) {
	fx := createTestStallService(t)
	ctx := context.Background()
	stall := &entity.Stall{ID: uuid.New(), AddressID: uuid.New()}
	stored := "products/a/0123456789abcdef.png"
	missing := "products/b/fedcba9876543210.jpg"
	external := "https://cdn.example.com/tomate.png"
	fx.inTx()

	var committed bool
	fx.txStallRepo.EXPECT().FindByID(ctx, stall.ID).Return(stall, nil)
	fx.txProductRepo.EXPECT().ListByStall(ctx, stall.ID).Return([]*entity.Product{
		{ID: uuid.New(), StallID: stall.ID, Image: &stored},
		{ID: uuid.New(), StallID: stall.ID, Image: &missing},
		{ID: uuid.New(), StallID: stall.ID, Image: &external},
		{ID: uuid.New(), StallID: stall.ID},
	}, nil)
	fx.txProductRepo.EXPECT().DeleteByStall(ctx, stall.ID).Return(int64(4), nil)
	fx.txStallRepo.EXPECT().Delete(ctx, stall.ID).Return(nil)
	fx.txAddressRepo.EXPECT().Delete(ctx, stall.AddressID).
		Run(func(context.Context, uuid.UUID) { committed = true }).
		Return(nil)
	fx.images.EXPECT().Delete(ctx, stored).
		Run(func(context.Context, string) { assert.True(t, committed) }).
		Return(nil).Once()
	fx.images.EXPECT().Delete(ctx, missing).Return(domainerrors.ErrImageNotFound).Once()

	require.NoError(t, fx.service.DeleteStall(ctx, stall.ID))
}

func TestStallService_DeleteStall_FailedTxKeepsImages(t *testing.T) {
	fx := createTestStallService(t)
	ctx := context.Background()
	stall := &entity.Stall{ID: uuid.New(), AddressID: uuid.New()}
	stored := "products/a/0123456789abcdef.png"
	fx.inTx()

	fx.txStallRepo.EXPECT().FindByID(ctx, stall.ID).Return(stall, nil)
	fx.txProductRepo.EXPECT().ListByStall(ctx, stall.ID).Return([]*entity.Product{
		{ID: uuid.New(), StallID: stall.ID, Image: &stored},
	}, nil)
	fx.txProductRepo.EXPECT().DeleteByStall(ctx, stall.ID).Return(int64(1), nil)
	fx.txStallRepo.EXPECT().Delete(ctx, stall.ID).Return(repository.ErrStallNotFound)

	err := fx.service.DeleteStall(ctx, stall.ID)

	require.Error(t, err)
	fx.images.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything)
}

func TestStallService_DeleteStall_NotFound(t *testing.T) {
	fx := createTestStallService(t)
	ctx := context.Background()
	id := uuid.New()
	fx.inTx()

	fx.txStallRepo.EXPECT().FindByID(ctx, id).Return(nil, repository.ErrStallNotFound)

	err := fx.service.DeleteStall(ctx, id)

	assert.ErrorIs(t, err, domainerrors.ErrStallNotFound)
}

func TestStallService_StallQRCode(t *testing.T) {
	fx := createTestStallService(t)
	ctx := context.Background()
	id := uuid.New()
	png := []byte{0x89, 'P', 'N', 'G'}

	fx.stallRepo.EXPECT().FindByID(ctx, id).Return(&entity.Stall{ID: id}, nil)
	fx.qrService.EXPECT().GenerateStallQR(id).Return(png, nil)

	got, err := fx.service.StallQRCode(ctx, id)

	require.NoError(t, err)
	assert.Equal(t, png, got)
}

func TestStallService_StallQRCode_UnknownStall(t *testing.T) {
	fx := createTestStallService(t)
	ctx := context.Background()
	id := uuid.New()

	fx.stallRepo.EXPECT().FindByID(ctx, id).Return(nil, repository.ErrStallNotFound)

	_, err := fx.service.StallQRCode(ctx, id)

	assert.ErrorIs(t, err, domainerrors.ErrStallNotFound)
}
