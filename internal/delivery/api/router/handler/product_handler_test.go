package handler

import (
	"bytes"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"feira/internal/delivery/api/validator"
	"feira/internal/domain/entity"
	domainerrors "feira/internal/domain/errors"
	"feira/internal/errors"
	mockUC "feira/internal/mocks/usecase"
	"feira/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

var pngHeader = []byte("\x89PNG\r\n\x1a\n\x00\x00\x00\rIHDR\x00\x00\x00\x01\x00\x00\x00\x01\x08\x02\x00\x00\x00")

func newProductHandler(t *testing.T) (*ProductHandler, *mockUC.MockProductUsecase) {
	productUC := mockUC.NewMockProductUsecase(t)

	return &ProductHandler{
		productUC:    productUC,
		maxImageSize: defaultImageMaxSize,
		logger:       newDiscardLogger(),
	}, productUC
}

func TestProductHandler_CreateProduct(t *testing.T) {
	stallID := uuid.New()

	t.Run("created", func(t *testing.T) {
		h, productUC := newProductHandler(t)
		productUC.EXPECT().
			CreateProduct(mock.Anything, usecase.CreateProductInput{StallID: stallID, Name: "Tomate", Price: 4.5}).
			Return(&entity.Product{ID: uuid.New(), StallID: stallID, Name: "Tomate", Price: 4.5, CreatedAt: time.Now()}, nil)

		c, rec := newJSONContext(http.MethodPost, "/api/v1/products",
			`{"stall_id":"`+stallID.String()+`","name":"Tomate","price":4.5}`)

		require.NoError(t, h.CreateProduct(c))
		assert.Equal(t, http.StatusCreated, rec.Code)

		got := decodeData[ProductResponse](t, rec)
		assert.Equal(t, "Tomate", got.Name)
		assert.Equal(t, 4.5, got.Price)
		assert.Nil(t, got.Image)
	})

	t.Run("zero price is accepted", func(t *testing.T) {
		h, productUC := newProductHandler(t)
		productUC.EXPECT().
			CreateProduct(mock.Anything, usecase.CreateProductInput{StallID: stallID, Name: "Brinde", Price: 0}).
			Return(&entity.Product{ID: uuid.New(), StallID: stallID, Name: "Brinde"}, nil)

		c, rec := newJSONContext(http.MethodPost, "/api/v1/products",
			`{"stall_id":"`+stallID.String()+`","name":"Brinde","price":0}`)

		require.NoError(t, h.CreateProduct(c))
		assert.Equal(t, http.StatusCreated, rec.Code)
	})

	tests := []struct {
		name      string
		body      string
		wantField string
	}{
		{name: "missing price", body: `{"stall_id":"` + stallID.String() + `","name":"Tomate"}`, wantField: "price"},
		{name: "negative price", body: `{"stall_id":"` + stallID.String() + `","name":"Tomate","price":-1}`, wantField: "price"},
		{name: "missing name", body: `{"stall_id":"` + stallID.String() + `","price":1}`, wantField: "name"},
		{name: "missing stall", body: `{"name":"Tomate","price":1}`, wantField: "stall_id"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h, _ := newProductHandler(t)
			c, rec := newJSONContext(http.MethodPost, "/api/v1/products", tt.body)

			require.NoError(t, h.CreateProduct(c))
			assert.Equal(t, http.StatusBadRequest, rec.Code)

			env := decodeEnvelope(t, rec)
			require.NotNil(t, env.Error)
			assert.Equal(t, "VALIDATION_FAILED", env.Error.Code)
			assert.Contains(t, rec.Body.String(), `"field":"`+tt.wantField+`"`)
		})
	}

	t.Run("malformed json", func(t *testing.T) {
		h, _ := newProductHandler(t)
		c, rec := newJSONContext(http.MethodPost, "/api/v1/products", `{"name":`)

		require.NoError(t, h.CreateProduct(c))
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestProductHandler_GetProduct(t *testing.T) {
	t.Run("not found", func(t *testing.T) {
		h, productUC := newProductHandler(t)
		id := uuid.New()
		productUC.EXPECT().GetProduct(mock.Anything, id).
			Return(nil, errors.Wrap(domainerrors.ErrProductNotFound, "product lookup"))

		c, rec := newJSONContext(http.MethodGet, "/api/v1/products/"+id.String(), "")
		withID(c, id)

		require.NoError(t, h.GetProduct(c))
		assert.Equal(t, http.StatusNotFound, rec.Code)
		assert.Equal(t, "PRODUCT_NOT_FOUND", decodeEnvelope(t, rec).Error.Code)
	})

	t.Run("invalid id", func(t *testing.T) {
		h, _ := newProductHandler(t)
		c, rec := newJSONContext(http.MethodGet, "/api/v1/products/abc", "")
		c.SetParamNames("id")
		c.SetParamValues("abc")

		require.NoError(t, h.GetProduct(c))
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("storage failure goes to the error handler", func(t *testing.T) {
		h, productUC := newProductHandler(t)
		id := uuid.New()
		productUC.EXPECT().GetProduct(mock.Anything, id).Return(nil, errors.New("connection reset"))

		c, _ := newJSONContext(http.MethodGet, "/api/v1/products/"+id.String(), "")
		withID(c, id)

		assert.Error(t, h.GetProduct(c))
	})
}

func TestProductHandler_ListProducts(t *testing.T) {
	t.Run("by stall", func(t *testing.T) {
		h, productUC := newProductHandler(t)
		stallID := uuid.New()
		productUC.EXPECT().ListProductsByStall(mock.Anything, stallID).Return(nil, nil)

		c, rec := newJSONContext(http.MethodGet, "/api/v1/products?stall_id="+stallID.String(), "")

		require.NoError(t, h.ListProducts(c))
		assert.Equal(t, http.StatusOK, rec.Code)
		assert.JSONEq(t, `[]`, string(decodeEnvelope(t, rec).Data))
	})

	t.Run("all", func(t *testing.T) {
		h, productUC := newProductHandler(t)
		productUC.EXPECT().ListProducts(mock.Anything).Return([]*entity.Product{{ID: uuid.New(), Name: "Alface"}}, nil)

		c, rec := newJSONContext(http.MethodGet, "/api/v1/products", "")

		require.NoError(t, h.ListProducts(c))
		assert.Len(t, decodeData[[]ProductResponse](t, rec), 1)
	})

	t.Run("bad stall id", func(t *testing.T) {
		h, _ := newProductHandler(t)
		c, rec := newJSONContext(http.MethodGet, "/api/v1/products?stall_id=x", "")

		require.NoError(t, h.ListProducts(c))
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestProductHandler_UpdateProduct(t *testing.T) {
	t.Run("only sent keys are patched", func(t *testing.T) {
		h, productUC := newProductHandler(t)
		id := uuid.New()
		productUC.EXPECT().
			UpdateProduct(mock.Anything, id, mock.MatchedBy(func(p entity.ProductPatch) bool {
				name, ok := p.Name.Get()
				return ok && name == "Alface" && !p.Price.Present() && p.Image.IsNull()
			})).
			Return(&entity.Product{ID: id, Name: "Alface", Price: 2}, nil)

		c, rec := newJSONContext(http.MethodPatch, "/api/v1/products/"+id.String(), `{"name":"Alface","image":null}`)
		withID(c, id)

		require.NoError(t, h.UpdateProduct(c))
		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("negative price", func(t *testing.T) {
		h, _ := newProductHandler(t)
		id := uuid.New()
		c, rec := newJSONContext(http.MethodPatch, "/api/v1/products/"+id.String(), `{"price":-3}`)
		withID(c, id)

		require.NoError(t, h.UpdateProduct(c))
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestProductHandler_DeleteProduct(t *testing.T) {
	h, productUC := newProductHandler(t)
	id := uuid.New()
	productUC.EXPECT().DeleteProduct(mock.Anything, id).Return(nil)

	c, rec := newJSONContext(http.MethodDelete, "/api/v1/products/"+id.String(), "")
	withID(c, id)

	require.NoError(t, h.DeleteProduct(c))
	assert.Equal(t, http.StatusNoContent, rec.Code)
}

func newMultipartContext(t *testing.T, id uuid.UUID, field, filename string, data []byte) (echo.Context, *httptest.ResponseRecorder) {
	t.Helper()

	var body bytes.Buffer
	w := multipart.NewWriter(&body)
	if field != "" {
		part, err := w.CreateFormFile(field, filename)
		require.NoError(t, err)
		_, err = part.Write(data)
		require.NoError(t, err)
	}
	require.NoError(t, w.Close())

	e := echo.New()
	e.Validator = validator.New()
	req := httptest.NewRequest(http.MethodPut, "/api/v1/products/"+id.String()+"/image", &body)
	req.Header.Set(echo.HeaderContentType, w.FormDataContentType())
	rec := httptest.NewRecorder()

	return withID(e.NewContext(req, rec), id), rec
}

func TestProductHandler_UploadProductImage(t *testing.T) {
	t.Run("content type is sniffed", func(t *testing.T) {
		h, productUC := newProductHandler(t)
		id := uuid.New()
		stored := "products/" + id.String() + ".png"
		productUC.EXPECT().
			UploadProductImage(mock.Anything, mock.MatchedBy(func(in usecase.UploadImageInput) bool {
				return in.ProductID == id && in.Filename == "tomate.jpg" && in.ContentType == "image/png" && len(in.Data) == len(pngHeader)
			})).
			Return(&entity.Product{ID: id, Name: "Tomate", Image: &stored}, nil)

		c, rec := newMultipartContext(t, id, "image", "tomate.jpg", pngHeader)

		require.NoError(t, h.UploadProductImage(c))
		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, stored, *decodeData[ProductResponse](t, rec).Image)
	})

	t.Run("missing file", func(t *testing.T) {
		h, _ := newProductHandler(t)
		c, rec := newMultipartContext(t, uuid.New(), "", "", nil)

		require.NoError(t, h.UploadProductImage(c))
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("oversized data is cut one byte past the limit", func(t *testing.T) {
		h, productUC := newProductHandler(t)
		h.maxImageSize = 8
		id := uuid.New()
		productUC.EXPECT().
			UploadProductImage(mock.Anything, mock.MatchedBy(func(in usecase.UploadImageInput) bool {
				return len(in.Data) == 9
			})).
			Return(nil, errors.Wrap(domainerrors.ErrImageTooLarge, "upload"))

		c, rec := newMultipartContext(t, id, "image", "big.png", pngHeader)

		require.NoError(t, h.UploadProductImage(c))
		assert.Equal(t, http.StatusRequestEntityTooLarge, rec.Code)
	})
}

func TestProductHandler_GetProductImage(t *testing.T) {
	t.Run("external url redirects", func(t *testing.T) {
		h, productUC := newProductHandler(t)
		id := uuid.New()
		productUC.EXPECT().OpenProductImage(mock.Anything, id).
			Return(&usecase.ProductImage{RedirectURL: "https://cdn.example.com/tomate.png"}, nil)

		c, rec := newJSONContext(http.MethodGet, "/api/v1/products/"+id.String()+"/image", "")
		withID(c, id)

		require.NoError(t, h.GetProductImage(c))
		assert.Equal(t, http.StatusFound, rec.Code)
		assert.Equal(t, "https://cdn.example.com/tomate.png", rec.Header().Get(echo.HeaderLocation))
	})

	t.Run("stored image is streamed", func(t *testing.T) {
		h, productUC := newProductHandler(t)
		id := uuid.New()
		productUC.EXPECT().OpenProductImage(mock.Anything, id).
			Return(&usecase.ProductImage{Body: io.NopCloser(strings.NewReader("png-bytes")), ContentType: "image/png"}, nil)

		c, rec := newJSONContext(http.MethodGet, "/api/v1/products/"+id.String()+"/image", "")
		withID(c, id)

		require.NoError(t, h.GetProductImage(c))
		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "image/png", rec.Header().Get(echo.HeaderContentType))
		assert.Equal(t, "png-bytes", rec.Body.String())
	})

	t.Run("no image", func(t *testing.T) {
		h, productUC := newProductHandler(t)
		id := uuid.New()
		productUC.EXPECT().OpenProductImage(mock.Anything, id).
			Return(nil, errors.WithStack(domainerrors.ErrImageNotFound))

		c, rec := newJSONContext(http.MethodGet, "/api/v1/products/"+id.String()+"/image", "")
		withID(c, id)

		require.NoError(t, h.GetProductImage(c))
		assert.Equal(t, http.StatusNotFound, rec.Code)
		assert.Equal(t, "IMAGE_NOT_FOUND", decodeEnvelope(t, rec).Error.Code)
	})
}
