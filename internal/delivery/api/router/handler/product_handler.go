package handler

import (
	"io"
	"log/slog"
	"net/http"

	"feira/config"
	"feira/internal/delivery/api/response"
	"feira/internal/domain/entity"
	domainerrors "feira/internal/domain/errors"
	"feira/internal/domain/patch"
	"feira/internal/usecase"

	"github.com/gabriel-vasile/mimetype"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

const (
	imageFormField      = "image"
	defaultImageMaxSize = 5 << 20
)

// ProductHandlerParams holds dependencies for ProductHandler, injected by Fx.
type ProductHandlerParams struct {
	fx.In

	ProductUC usecase.ProductUsecase
	Config    *config.Config
	Logger    *slog.Logger
}

// ProductHandler serves /api/v1/products.
type ProductHandler struct {
	productUC    usecase.ProductUsecase
	maxImageSize int64
	logger       *slog.Logger
}

func NewProductHandler(params ProductHandlerParams) *ProductHandler {
	maxImageSize := int64(defaultImageMaxSize)
	if params.Config != nil && params.Config.Storage != nil && params.Config.Storage.MaxImageSize > 0 {
		maxImageSize = params.Config.Storage.MaxImageSize
	}

	return &ProductHandler{
		productUC:    params.ProductUC,
		maxImageSize: maxImageSize,
		logger:       params.Logger,
	}
}

type CreateProductRequest struct {
	StallID uuid.UUID `json:"stall_id" validate:"required"`
	Name    string    `json:"name" validate:"required,max=100"`
	Price   *float64  `json:"price" validate:"required,gte=0"`
	Image   *string   `json:"image" validate:"omitempty,max=500"`
}

type UpdateProductRequest struct {
	StallID patch.Field[uuid.UUID] `json:"stall_id"`
	Name    patch.Field[string]    `json:"name" validate:"omitempty,max=100"`
	Price   patch.Field[float64]   `json:"price" validate:"omitempty,gte=0"`
	Image   patch.Field[string]    `json:"image" validate:"omitempty,max=500"`
}

func (h *ProductHandler) CreateProduct(c echo.Context) error {
	var req CreateProductRequest
	if ok, err := bindAndValidate(c, &req); !ok {
		return err
	}

	product, err := h.productUC.CreateProduct(c.Request().Context(), usecase.CreateProductInput{
		StallID: req.StallID,
		Name:    req.Name,
		Price:   *req.Price,
		Image:   req.Image,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, toProductResponse(product))
}

func (h *ProductHandler) GetProduct(c echo.Context) error {
	id, ok := pathID(c, "id")
	if !ok {
		return invalidID(c)
	}

	product, err := h.productUC.GetProduct(c.Request().Context(), id)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, toProductResponse(product))
}

// ListProducts filters by ?stall_id= when given.
func (h *ProductHandler) ListProducts(c echo.Context) error {
	stallID, err := queryUUID(c, "stall_id")
	if err != nil {
		return invalidID(c)
	}

	var products []*entity.Product
	if stallID != nil {
		products, err = h.productUC.ListProductsByStall(c.Request().Context(), *stallID)
	} else {
		products, err = h.productUC.ListProducts(c.Request().Context())
	}
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, mapAll(products, toProductResponse))
}

func (h *ProductHandler) UpdateProduct(c echo.Context) error {
	id, ok := pathID(c, "id")
	if !ok {
		return invalidID(c)
	}

	var req UpdateProductRequest
	if ok, err := bindAndValidate(c, &req); !ok {
		return err
	}

	product, err := h.productUC.UpdateProduct(c.Request().Context(), id, entity.ProductPatch{
		StallID: req.StallID,
		Name:    req.Name,
		Price:   req.Price,
		Image:   req.Image,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, toProductResponse(product))
}

func (h *ProductHandler) DeleteProduct(c echo.Context) error {
	id, ok := pathID(c, "id")
	if !ok {
		return invalidID(c)
	}

	if err := h.productUC.DeleteProduct(c.Request().Context(), id); err != nil {
		return response.HandleAppError(c, err)
	}

	return response.NoContent(c)
}

// UploadProductImage takes the multipart field "image". The content type is
// sniffed from the bytes; the client's header is not trusted.
func (h *ProductHandler) UploadProductImage(c echo.Context) error {
	id, ok := pathID(c, "id")
	if !ok {
		return invalidID(c)
	}

	fileHeader, err := c.FormFile(imageFormField)
	if err != nil {
		return response.BadRequest(c, domainerrors.ErrValidationFailed.ErrorCode(), "Campo de arquivo \"image\" ausente.")
	}

	file, err := fileHeader.Open()
	if err != nil {
		return response.BindingError(c, msgInvalidBody)
	}
	defer file.Close()

	// One byte past the limit is enough to report the image as too large.
	data, err := io.ReadAll(io.LimitReader(file, h.maxImageSize+1))
	if err != nil {
		return response.BindingError(c, msgInvalidBody)
	}

	product, err := h.productUC.UploadProductImage(c.Request().Context(), usecase.UploadImageInput{
		ProductID:   id,
		Filename:    fileHeader.Filename,
		ContentType: mimetype.Detect(data).String(),
		Data:        data,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, toProductResponse(product))
}

// GetProductImage streams a stored image, or redirects when the product
// points at an external URL.
func (h *ProductHandler) GetProductImage(c echo.Context) error {
	id, ok := pathID(c, "id")
	if !ok {
		return invalidID(c)
	}

	image, err := h.productUC.OpenProductImage(c.Request().Context(), id)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	if image.RedirectURL != "" {
		return c.Redirect(http.StatusFound, image.RedirectURL)
	}
	defer image.Body.Close()

	return c.Stream(http.StatusOK, image.ContentType, image.Body)
}
