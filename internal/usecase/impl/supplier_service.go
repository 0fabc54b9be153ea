package impl

import (
	"context"
	"log/slog"
	"strings"

	deliverycontext "feira/internal/delivery/context"
	"feira/internal/domain/entity"
	domainerrors "feira/internal/domain/errors"
	"feira/internal/domain/patch"
	"feira/internal/domain/repository"
	"feira/internal/errors"
	"feira/internal/usecase"

	"github.com/google/uuid"
	"go.uber.org/fx"
)

type supplierService struct {
	supplierRepo repository.SupplierRepository
	logger       *slog.Logger
}

// SupplierServiceParams holds dependencies for SupplierService, injected by Fx.
type SupplierServiceParams struct {
	fx.In

	SupplierRepo repository.SupplierRepository
	Logger       *slog.Logger
}

// NewSupplierService is the constructor for supplierService.
func NewSupplierService(params SupplierServiceParams) usecase.SupplierUsecase {
	return &supplierService{
		supplierRepo: params.SupplierRepo,
		logger:       params.Logger,
	}
}

func (srv *supplierService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

func (srv *supplierService) CreateSupplier(ctx context.Context, input usecase.CreateSupplierInput) (*entity.Supplier, error) {
	email := normalizeEmail(input.Email)
	if err := srv.ensureEmailFree(ctx, email, uuid.Nil); err != nil {
		return nil, err
	}

	supplier := &entity.Supplier{
		ID:          uuid.New(),
		Name:        strings.TrimSpace(input.Name),
		Email:       email,
		City:        strings.TrimSpace(input.City),
		Description: input.Description,
	}
	if err := srv.supplierRepo.Create(ctx, supplier); err != nil {
		return nil, errors.Wrap(err, "failed to create supplier")
	}

	srv.log(ctx).Info("Supplier created", slog.String("supplierID", supplier.ID.String()))

	return supplier, nil
}

func (srv *supplierService) GetSupplier(ctx context.Context, id uuid.UUID) (*entity.Supplier, error) {
	supplier, err := srv.supplierRepo.FindByID(ctx, id)
	if err != nil {
		return nil, errors.Wrap(err, "failed to get supplier")
	}

	return supplier, nil
}

func (srv *supplierService) ListSuppliers(ctx context.Context) ([]*entity.Supplier, error) {
	suppliers, err := srv.supplierRepo.List(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list suppliers")
	}

	return suppliers, nil
}

// ListSuppliersByCity matches the city ignoring case and surrounding spaces.
func (srv *supplierService) ListSuppliersByCity(ctx context.Context, city string) ([]*entity.Supplier, error) {
	suppliers, err := srv.supplierRepo.ListByCity(ctx, city)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list suppliers by city")
	}

	return suppliers, nil
}

func (srv *supplierService) UpdateSupplier(ctx context.Context, id uuid.UUID, input entity.SupplierPatch) (*entity.Supplier, error) {
	if email, ok := input.Email.Get(); ok {
		email = normalizeEmail(email)
		if err := srv.ensureEmailFree(ctx, email, id); err != nil {
			return nil, err
		}
		input.Email = patch.Set(email)
	}

	if err := srv.supplierRepo.Update(ctx, id, input); err != nil {
		return nil, errors.Wrap(err, "failed to update supplier")
	}

	return srv.GetSupplier(ctx, id)
}

func (srv *supplierService) DeleteSupplier(ctx context.Context, id uuid.UUID) error {
	if err := srv.supplierRepo.Delete(ctx, id); err != nil {
		return errors.Wrap(err, "failed to delete supplier")
	}

	srv.log(ctx).Info("Supplier deleted", slog.String("supplierID", id.String()))

	return nil
}

func (srv *supplierService) ensureEmailFree(ctx context.Context, email string, self uuid.UUID) error {
	existing, err := srv.supplierRepo.FindByEmail(ctx, email)
	switch {
	case errors.Is(err, repository.ErrSupplierNotFound):
		return nil
	case err != nil:
		return errors.Wrap(err, "failed to check e-mail")
	case existing.ID != self:
		return errors.Wrap(domainerrors.ErrDuplicateEmail, "e-mail already registered")
	default:
		return nil
	}
}
