package impl

import (
	"context"
	"log/slog"
	"strings"

	deliverycontext "feira/internal/delivery/context"
	"feira/internal/domain/entity"
	"feira/internal/domain/patch"
	"feira/internal/domain/repository"
	"feira/internal/domain/service"
	"feira/internal/errors"
	"feira/internal/usecase"

	"github.com/google/uuid"
	"go.uber.org/fx"
)

type stallService struct {
	txManager repository.TransactionManager
	stallRepo repository.StallRepository
	qrService service.QRCodeService
	images    service.ImageStorage
	logger    *slog.Logger
}

// StallServiceParams holds dependencies for StallService, injected by Fx.
type StallServiceParams struct {
	fx.In

	TxManager repository.TransactionManager
	StallRepo repository.StallRepository
	QRService service.QRCodeService
	Images    service.ImageStorage
	Logger    *slog.Logger
}

// NewStallService is the constructor for stallService.
func NewStallService(params StallServiceParams) usecase.StallUsecase {
	return &stallService{
		txManager: params.TxManager,
		stallRepo: params.StallRepo,
		qrService: params.QRService,
		images:    params.Images,
		logger:    params.Logger,
	}
}

func (srv *stallService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// CreateStall writes the address first and then the stall that points at it.
func (srv *stallService) CreateStall(ctx context.Context, input usecase.CreateStallInput) (*entity.Stall, error) {
	srv.log(ctx).Debug("Creating stall", slog.String("supplierID", input.SupplierID.String()))

	address := newAddress(input.Address)
	if err := validateCoordinatePatch(coordinatePatch(address)); err != nil {
		return nil, err
	}

	stall := &entity.Stall{
		ID:             uuid.New(),
		SupplierID:     input.SupplierID,
		AddressID:      address.ID,
		Name:           strings.TrimSpace(input.Name),
		Description:    input.Description,
		OperatingHours: input.OperatingHours,
	}

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		if _, err := repoFactory.SupplierRepo().FindByID(ctx, input.SupplierID); err != nil {
			return errors.Wrap(err, "failed to find stall supplier")
		}

		if err := repoFactory.AddressRepo().Create(ctx, address); err != nil {
			return errors.Wrap(err, "failed to create stall address")
		}

		if err := repoFactory.StallRepo().Create(ctx, stall); err != nil {
			return errors.Wrap(err, "failed to create stall")
		}

		return nil
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to create stall")
	}

	stall.Address = address
	srv.log(ctx).Info("Stall created", slog.String("stallID", stall.ID.String()))

	return stall, nil
}

func (srv *stallService) GetStall(ctx context.Context, id uuid.UUID) (*entity.Stall, error) {
	stall, err := srv.stallRepo.FindByID(ctx, id)
	if err != nil {
		return nil, errors.Wrap(err, "failed to get stall")
	}

	return stall, nil
}

func (srv *stallService) ListStalls(ctx context.Context) ([]*entity.Stall, error) {
	stalls, err := srv.stallRepo.ListAll(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list stalls")
	}

	return stalls, nil
}

func (srv *stallService) ListStallsBySupplier(ctx context.Context, supplierID uuid.UUID) ([]*entity.Stall, error) {
	stalls, err := srv.stallRepo.ListBySupplier(ctx, supplierID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list stalls by supplier")
	}

	return stalls, nil
}

// UpdateStall patches the stall and, when given, its address in one transaction.
func (srv *stallService) UpdateStall(ctx context.Context, id uuid.UUID, input usecase.UpdateStallInput) (*entity.Stall, error) {
	if input.Address != nil {
		if err := validateCoordinatePatch(*input.Address); err != nil {
			return nil, err
		}
	}

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		stallRepo := repoFactory.StallRepo()

		current, err := stallRepo.FindByID(ctx, id)
		if err != nil {
			return errors.Wrap(err, "failed to find stall")
		}

		if supplierID, ok := input.Stall.SupplierID.Get(); ok {
			if _, err := repoFactory.SupplierRepo().FindByID(ctx, supplierID); err != nil {
				return errors.Wrap(err, "failed to find new stall supplier")
			}
		}

		if err := stallRepo.Update(ctx, id, input.Stall); err != nil {
			return errors.Wrap(err, "failed to update stall")
		}

		if input.Address != nil {
			if err := repoFactory.AddressRepo().Update(ctx, current.AddressID, *input.Address); err != nil {
				return errors.Wrap(err, "failed to update stall address")
			}
		}

		return nil
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to update stall")
	}

	return srv.GetStall(ctx, id)
}

// DeleteStall removes the stall's products, the stall, then its address.
// Stored product images are removed once the transaction has committed.
func (srv *stallService) DeleteStall(ctx context.Context, id uuid.UUID) error {
	var (
		removedProducts int64
		images          []*string
	)

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		stallRepo := repoFactory.StallRepo()

		stall, err := stallRepo.FindByID(ctx, id)
		if err != nil {
			return errors.Wrap(err, "failed to find stall")
		}

		productRepo := repoFactory.ProductRepo()

		products, err := productRepo.ListByStall(ctx, id)
		if err != nil {
			return errors.Wrap(err, "failed to list stall products")
		}
		for _, product := range products {
			images = append(images, product.Image)
		}

		removedProducts, err = productRepo.DeleteByStall(ctx, id)
		if err != nil {
			return errors.Wrap(err, "failed to delete stall products")
		}

		if err := stallRepo.Delete(ctx, id); err != nil {
			return errors.Wrap(err, "failed to delete stall")
		}

		if err := repoFactory.AddressRepo().Delete(ctx, stall.AddressID); err != nil {
			return errors.Wrap(err, "failed to delete stall address")
		}

		return nil
	})
	if err != nil {
		return errors.Wrap(err, "failed to delete stall")
	}

	for _, image := range images {
		removeStoredImage(ctx, srv.log(ctx), srv.images, image)
	}

	srv.log(ctx).Info("Stall deleted",
		slog.String("stallID", id.String()),
		slog.Int64("products_removed", removedProducts),
	)

	return nil
}

func (srv *stallService) StallQRCode(ctx context.Context, id uuid.UUID) ([]byte, error) {
	if _, err := srv.stallRepo.FindByID(ctx, id); err != nil {
		return nil, errors.Wrap(err, "failed to find stall")
	}

	png, err := srv.qrService.GenerateStallQR(id)
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate stall QR code")
	}

	return png, nil
}

func newAddress(input usecase.AddressInput) *entity.Address {
	return &entity.Address{
		ID:         uuid.New(),
		Street:     strings.TrimSpace(input.Street),
		Number:     strings.TrimSpace(input.Number),
		Complement: input.Complement,
		District:   strings.TrimSpace(input.District),
		City:       strings.TrimSpace(input.City),
		State:      strings.TrimSpace(input.State),
		ZipCode:    strings.TrimSpace(input.ZipCode),
		Latitude:   input.Latitude,
		Longitude:  input.Longitude,
	}
}

func coordinatePatch(address *entity.Address) entity.AddressPatch {
	var p entity.AddressPatch
	if address.Latitude != nil {
		p.Latitude = patch.Set(*address.Latitude)
	}
	if address.Longitude != nil {
		p.Longitude = patch.Set(*address.Longitude)
	}

	return p
}
