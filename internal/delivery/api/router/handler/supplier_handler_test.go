package handler

import (
	"net/http"
	"testing"

	"feira/internal/domain/entity"
	domainerrors "feira/internal/domain/errors"
	"feira/internal/errors"
	mockUC "feira/internal/mocks/usecase"
	"feira/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newSupplierHandler(t *testing.T) (*SupplierHandler, *mockUC.MockSupplierUsecase) {
	supplierUC := mockUC.NewMockSupplierUsecase(t)

	return &SupplierHandler{supplierUC: supplierUC, logger: newDiscardLogger()}, supplierUC
}

func TestSupplierHandler_CreateSupplier(t *testing.T) {
	t.Run("created", func(t *testing.T) {
		h, supplierUC := newSupplierHandler(t)
		supplierUC.EXPECT().
			CreateSupplier(mock.Anything, usecase.CreateSupplierInput{Name: "Sítio Boa Vista", Email: "sitio@feira.br", City: "Campinas"}).
			Return(&entity.Supplier{ID: uuid.New(), Name: "Sítio Boa Vista", Email: "sitio@feira.br", City: "Campinas"}, nil)

		c, rec := newJSONContext(http.MethodPost, "/api/v1/suppliers",
			`{"name":"Sítio Boa Vista","email":"sitio@feira.br","city":"Campinas"}`)

		require.NoError(t, h.CreateSupplier(c))
		assert.Equal(t, http.StatusCreated, rec.Code)
		assert.Equal(t, "Campinas", decodeData[SupplierResponse](t, rec).City)
	})

	t.Run("city required", func(t *testing.T) {
		h, _ := newSupplierHandler(t)
		c, rec := newJSONContext(http.MethodPost, "/api/v1/suppliers", `{"name":"Sítio","email":"sitio@feira.br"}`)

		require.NoError(t, h.CreateSupplier(c))
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestSupplierHandler_ListSuppliers(t *testing.T) {
	t.Run("city filter", func(t *testing.T) {
		h, supplierUC := newSupplierHandler(t)
		supplierUC.EXPECT().ListSuppliersByCity(mock.Anything, "Campinas").
			Return([]*entity.Supplier{{ID: uuid.New(), City: "Campinas"}}, nil)

		c, rec := newJSONContext(http.MethodGet, "/api/v1/suppliers?city=%20Campinas%20", "")

		require.NoError(t, h.ListSuppliers(c))
		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Len(t, decodeData[[]SupplierResponse](t, rec), 1)
	})

	t.Run("blank city lists all", func(t *testing.T) {
		h, supplierUC := newSupplierHandler(t)
		supplierUC.EXPECT().ListSuppliers(mock.Anything).Return([]*entity.Supplier{}, nil)

		c, rec := newJSONContext(http.MethodGet, "/api/v1/suppliers?city=", "")

		require.NoError(t, h.ListSuppliers(c))
		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Empty(t, decodeData[[]SupplierResponse](t, rec))
	})
}

func TestSupplierHandler_UpdateSupplier(t *testing.T) {
	h, supplierUC := newSupplierHandler(t)
	id := uuid.New()
	supplierUC.EXPECT().
		UpdateSupplier(mock.Anything, id, mock.MatchedBy(func(p entity.SupplierPatch) bool {
			city, ok := p.City.Get()
			return ok && city == "Jundiaí" && p.Description.IsNull() && !p.Name.Present()
		})).
		Return(&entity.Supplier{ID: id, City: "Jundiaí"}, nil)

	c, rec := newJSONContext(http.MethodPatch, "/api/v1/suppliers/"+id.String(), `{"city":"Jundiaí","description":null}`)
	withID(c, id)

	require.NoError(t, h.UpdateSupplier(c))
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestSupplierHandler_DeleteSupplier(t *testing.T) {
	t.Run("no content", func(t *testing.T) {
		h, supplierUC := newSupplierHandler(t)
		id := uuid.New()
		supplierUC.EXPECT().DeleteSupplier(mock.Anything, id).Return(nil)

		c, rec := newJSONContext(http.MethodDelete, "/api/v1/suppliers/"+id.String(), "")
		withID(c, id)

		require.NoError(t, h.DeleteSupplier(c))
		assert.Equal(t, http.StatusNoContent, rec.Code)
	})

	t.Run("not found", func(t *testing.T) {
		h, supplierUC := newSupplierHandler(t)
		id := uuid.New()
		supplierUC.EXPECT().DeleteSupplier(mock.Anything, id).
			Return(errors.Wrap(domainerrors.ErrSupplierNotFound, "delete supplier"))

		c, rec := newJSONContext(http.MethodDelete, "/api/v1/suppliers/"+id.String(), "")
		withID(c, id)

		require.NoError(t, h.DeleteSupplier(c))
		assert.Equal(t, http.StatusNotFound, rec.Code)
	})
}
