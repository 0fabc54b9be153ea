package handler

import (
	"log/slog"
	"net/http"
	"strings"

	"feira/internal/delivery/api/response"
	"feira/internal/domain/entity"
	"feira/internal/domain/patch"
	"feira/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// SupplierHandlerParams holds dependencies for SupplierHandler, injected by Fx.
type SupplierHandlerParams struct {
	fx.In

	SupplierUC usecase.SupplierUsecase
	Logger     *slog.Logger
}

type SupplierHandler struct {
	supplierUC usecase.SupplierUsecase
	logger     *slog.Logger
}

func NewSupplierHandler(params SupplierHandlerParams) *SupplierHandler {
	return &SupplierHandler{
		supplierUC: params.SupplierUC,
		logger:     params.Logger,
	}
}

type CreateSupplierRequest struct {
	Name        string  `json:"name" validate:"required,max=100"`
	Email       string  `json:"email" validate:"required,email,max=255"`
	City        string  `json:"city" validate:"required,max=100"`
	Description *string `json:"description"`
}

type UpdateSupplierRequest struct {
	Name        patch.Field[string] `json:"name" validate:"omitempty,max=100"`
	Email       patch.Field[string] `json:"email" validate:"omitempty,email,max=255"`
	City        patch.Field[string] `json:"city" validate:"omitempty,max=100"`
	Description patch.Field[string] `json:"description"`
}

func (h *SupplierHandler) CreateSupplier(c echo.Context) error {
	var req CreateSupplierRequest
	if ok, err := bindAndValidate(c, &req); !ok {
		return err
	}

	supplier, err := h.supplierUC.CreateSupplier(c.Request().Context(), usecase.CreateSupplierInput{
		Name:        req.Name,
		Email:       req.Email,
		City:        req.City,
		Description: req.Description,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, toSupplierResponse(supplier))
}

func (h *SupplierHandler) GetSupplier(c echo.Context) error {
	id, ok := pathID(c, "id")
	if !ok {
		return invalidID(c)
	}

	supplier, err := h.supplierUC.GetSupplier(c.Request().Context(), id)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, toSupplierResponse(supplier))
}

// ListSuppliers filters by ?city= when given.
func (h *SupplierHandler) ListSuppliers(c echo.Context) error {
	var (
		suppliers []*entity.Supplier
		err       error
	)

	if city := strings.TrimSpace(c.QueryParam("city")); city != "" {
		suppliers, err = h.supplierUC.ListSuppliersByCity(c.Request().Context(), city)
	} else {
		suppliers, err = h.supplierUC.ListSuppliers(c.Request().Context())
	}
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, mapAll(suppliers, toSupplierResponse))
}

func (h *SupplierHandler) UpdateSupplier(c echo.Context) error {
	id, ok := pathID(c, "id")
	if !ok {
		return invalidID(c)
	}

	var req UpdateSupplierRequest
	if ok, err := bindAndValidate(c, &req); !ok {
		return err
	}

	supplier, err := h.supplierUC.UpdateSupplier(c.Request().Context(), id, entity.SupplierPatch{
		Name:        req.Name,
		Email:       req.Email,
		City:        req.City,
		Description: req.Description,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, toSupplierResponse(supplier))
}

func (h *SupplierHandler) DeleteSupplier(c echo.Context) error {
	id, ok := pathID(c, "id")
	if !ok {
		return invalidID(c)
	}

	if err := h.supplierUC.DeleteSupplier(c.Request().Context(), id); err != nil {
		return response.HandleAppError(c, err)
	}

	return response.NoContent(c)
}
