package handler

import (
	"log/slog"
	"net/http"

	"feira/internal/delivery/api/response"
	"feira/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// AddressHandlerParams holds dependencies for AddressHandler, injected by Fx.
type AddressHandlerParams struct {
	fx.In

	AddressUC usecase.AddressUsecase
	Logger    *slog.Logger
}

type AddressHandler struct {
	addressUC usecase.AddressUsecase
	logger    *slog.Logger
}

func NewAddressHandler(params AddressHandlerParams) *AddressHandler {
	return &AddressHandler{
		addressUC: params.AddressUC,
		logger:    params.Logger,
	}
}

func (h *AddressHandler) GetAddress(c echo.Context) error {
	id, ok := pathID(c, "id")
	if !ok {
		return invalidID(c)
	}

	address, err := h.addressUC.GetAddress(c.Request().Context(), id)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, toAddressResponse(address))
}

// UpdateAddress is where geocoded coordinates are written.
func (h *AddressHandler) UpdateAddress(c echo.Context) error {
	id, ok := pathID(c, "id")
	if !ok {
		return invalidID(c)
	}

	var req UpdateAddressRequest
	if ok, err := bindAndValidate(c, &req); !ok {
		return err
	}

	address, err := h.addressUC.UpdateAddress(c.Request().Context(), id, req.toPatch())
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, toAddressResponse(address))
}
