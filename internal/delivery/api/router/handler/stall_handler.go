package handler

import (
	"log/slog"
	"net/http"

	"feira/internal/delivery/api/response"
	"feira/internal/domain/entity"
	"feira/internal/domain/patch"
	"feira/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// StallHandlerParams holds dependencies for StallHandler, injected by Fx.
type StallHandlerParams struct {
	fx.In

	StallUC usecase.StallUsecase
	Logger  *slog.Logger
}

// StallHandler serves /api/v1/stalls.
type StallHandler struct {
	stallUC usecase.StallUsecase
	logger  *slog.Logger
}

func NewStallHandler(params StallHandlerParams) *StallHandler {
	return &StallHandler{
		stallUC: params.StallUC,
		logger:  params.Logger,
	}
}

type AddressRequest struct {
	Street     string   `json:"street" validate:"required,max=150"`
	Number     string   `json:"number" validate:"required,max=20"`
	Complement *string  `json:"complement"`
	District   string   `json:"district" validate:"required,max=100"`
	City       string   `json:"city" validate:"required,max=100"`
	State      string   `json:"state" validate:"required,max=50"`
	ZipCode    string   `json:"zip_code" validate:"required,max=20"`
	Latitude   *float64 `json:"latitude" validate:"omitempty,gte=-90,lte=90"`
	Longitude  *float64 `json:"longitude" validate:"omitempty,gte=-180,lte=180"`
}

type CreateStallRequest struct {
	SupplierID     uuid.UUID      `json:"supplier_id" validate:"required"`
	Name           string         `json:"name" validate:"required,max=100"`
	Description    *string        `json:"description"`
	OperatingHours *string        `json:"operating_hours"`
	Address        AddressRequest `json:"address"`
}

type UpdateAddressRequest struct {
	Street     patch.Field[string]  `json:"street" validate:"omitempty,max=150"`
	Number     patch.Field[string]  `json:"number" validate:"omitempty,max=20"`
	Complement patch.Field[string]  `json:"complement"`
	District   patch.Field[string]  `json:"district" validate:"omitempty,max=100"`
	City       patch.Field[string]  `json:"city" validate:"omitempty,max=100"`
	State      patch.Field[string]  `json:"state" validate:"omitempty,max=50"`
	ZipCode    patch.Field[string]  `json:"zip_code" validate:"omitempty,max=20"`
	Latitude   patch.Field[float64] `json:"latitude" validate:"omitempty,gte=-90,lte=90"`
	Longitude  patch.Field[float64] `json:"longitude" validate:"omitempty,gte=-180,lte=180"`
}

func (r *UpdateAddressRequest) toPatch() entity.AddressPatch {
	return entity.AddressPatch{
		Street:     r.Street,
		Number:     r.Number,
		Complement: r.Complement,
		District:   r.District,
		City:       r.City,
		State:      r.State,
		ZipCode:    r.ZipCode,
		Latitude:   r.Latitude,
		Longitude:  r.Longitude,
	}
}

type UpdateStallRequest struct {
	SupplierID     patch.Field[uuid.UUID] `json:"supplier_id"`
	Name           patch.Field[string]    `json:"name" validate:"omitempty,max=100"`
	Description    patch.Field[string]    `json:"description"`
	OperatingHours patch.Field[string]    `json:"operating_hours"`
	Address        *UpdateAddressRequest  `json:"address"`
}

func (h *StallHandler) CreateStall(c echo.Context) error {
	var req CreateStallRequest
	if ok, err := bindAndValidate(c, &req); !ok {
		return err
	}

	stall, err := h.stallUC.CreateStall(c.Request().Context(), usecase.CreateStallInput{
		SupplierID:     req.SupplierID,
		Name:           req.Name,
		Description:    req.Description,
		OperatingHours: req.OperatingHours,
		Address: usecase.AddressInput{
			Street:     req.Address.Street,
			Number:     req.Address.Number,
			Complement: req.Address.Complement,
			District:   req.Address.District,
			City:       req.Address.City,
			State:      req.Address.State,
			ZipCode:    req.Address.ZipCode,
			Latitude:   req.Address.Latitude,
			Longitude:  req.Address.Longitude,
		},
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, toStallResponse(stall))
}

func (h *StallHandler) GetStall(c echo.Context) error {
	id, ok := pathID(c, "id")
	if !ok {
		return invalidID(c)
	}

	stall, err := h.stallUC.GetStall(c.Request().Context(), id)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, toStallResponse(stall))
}

// ListStalls filters by ?supplier_id= when given.
func (h *StallHandler) ListStalls(c echo.Context) error {
	supplierID, err := queryUUID(c, "supplier_id")
	if err != nil {
		return invalidID(c)
	}

	var stalls []*entity.Stall
	if supplierID != nil {
		stalls, err = h.stallUC.ListStallsBySupplier(c.Request().Context(), *supplierID)
	} else {
		stalls, err = h.stallUC.ListStalls(c.Request().Context())
	}
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, mapAll(stalls, toStallResponse))
}

func (h *StallHandler) UpdateStall(c echo.Context) error {
	id, ok := pathID(c, "id")
	if !ok {
		return invalidID(c)
	}

	var req UpdateStallRequest
	if ok, err := bindAndValidate(c, &req); !ok {
		return err
	}

	input := usecase.UpdateStallInput{
		Stall: entity.StallPatch{
			SupplierID:     req.SupplierID,
			Name:           req.Name,
			Description:    req.Description,
			OperatingHours: req.OperatingHours,
		},
	}
	if req.Address != nil {
		addressPatch := req.Address.toPatch()
		input.Address = &addressPatch
	}

	stall, err := h.stallUC.UpdateStall(c.Request().Context(), id, input)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, toStallResponse(stall))
}

func (h *StallHandler) DeleteStall(c echo.Context) error {
	id, ok := pathID(c, "id")
	if !ok {
		return invalidID(c)
	}

	if err := h.stallUC.DeleteStall(c.Request().Context(), id); err != nil {
		return response.HandleAppError(c, err)
	}

	return response.NoContent(c)
}

// StallQRCode returns the stall's share code as a PNG.
func (h *StallHandler) StallQRCode(c echo.Context) error {
	id, ok := pathID(c, "id")
	if !ok {
		return invalidID(c)
	}

	png, err := h.stallUC.StallQRCode(c.Request().Context(), id)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return c.Blob(http.StatusOK, "image/png", png)
}
