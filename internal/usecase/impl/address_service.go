package impl

import (
	"context"
	"log/slog"

	deliverycontext "feira/internal/delivery/context"
	"feira/internal/domain/entity"
	domainerrors "feira/internal/domain/errors"
	"feira/internal/domain/repository"
	"feira/internal/errors"
	"feira/internal/usecase"

	"github.com/google/uuid"
)

type addressService struct {
	addressRepo repository.AddressRepository
	logger      *slog.Logger
}

// NewAddressService is the constructor for addressService.
func NewAddressService(addressRepo repository.AddressRepository, logger *slog.Logger) usecase.AddressUsecase {
	return &addressService{
		addressRepo: addressRepo,
		logger:      logger,
	}
}

func (srv *addressService) GetAddress(ctx context.Context, id uuid.UUID) (*entity.Address, error) {
	address, err := srv.addressRepo.FindByID(ctx, id)
	if err != nil {
		return nil, errors.Wrap(err, "failed to get address")
	}

	return address, nil
}

// UpdateAddress is the path by which an address gets its coordinates.
func (srv *addressService) UpdateAddress(ctx context.Context, id uuid.UUID, input entity.AddressPatch) (*entity.Address, error) {
	if err := validateCoordinatePatch(input); err != nil {
		return nil, err
	}

	if err := srv.addressRepo.Update(ctx, id, input); err != nil {
		return nil, errors.Wrap(err, "failed to update address")
	}

	if _, ok := input.Latitude.Get(); ok {
		deliverycontext.GetLoggerOrDefault(ctx, srv.logger).Info("Address geocoded", slog.String("addressID", id.String()))
	}

	return srv.GetAddress(ctx, id)
}

// validateCoordinatePatch rejects out-of-range coordinates that slipped past
// request validation.
func validateCoordinatePatch(p entity.AddressPatch) error {
	if lat, ok := p.Latitude.Get(); ok && (lat < -90 || lat > 90) {
		return errors.Wrapf(domainerrors.ErrValidationFailed, "latitude %v out of range", lat)
	}
	if lon, ok := p.Longitude.Get(); ok && (lon < -180 || lon > 180) {
		return errors.Wrapf(domainerrors.ErrValidationFailed, "longitude %v out of range", lon)
	}

	return nil
}
