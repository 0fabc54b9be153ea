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

func newStallHandler(t *testing.T) (*StallHandler, *mockUC.MockStallUsecase) {
	stallUC := mockUC.NewMockStallUsecase(t)

	return &StallHandler{stallUC: stallUC, logger: newDiscardLogger()}, stallUC
}

const stallAddressJSON = `{"street":"Rua A","number":"10","district":"Centro","city":"Recife","state":"PE","zip_code":"50000-000","latitude":-8.05,"longitude":-34.9}`

func TestStallHandler_CreateStall(t *testing.T) {
	supplierID := uuid.New()

	t.Run("created with its address", func(t *testing.T) {
		h, stallUC := newStallHandler(t)
		stallUC.EXPECT().
			CreateStall(mock.Anything, mock.MatchedBy(func(in usecase.CreateStallInput) bool {
				return in.SupplierID == supplierID && in.Name == "Banca da Ana" &&
					in.Address.City == "Recife" && in.Address.Latitude != nil && *in.Address.Latitude == -8.05
			})).
			Return(&entity.Stall{
				ID:         uuid.New(),
				SupplierID: supplierID,
				Name:       "Banca da Ana",
				Address:    &entity.Address{ID: uuid.New(), City: "Recife"},
			}, nil)

		c, rec := newJSONContext(http.MethodPost, "/api/v1/stalls",
			`{"supplier_id":"`+supplierID.String()+`","name":"Banca da Ana","address":`+stallAddressJSON+`}`)

		require.NoError(t, h.CreateStall(c))
		assert.Equal(t, http.StatusCreated, rec.Code)

		got := decodeData[StallResponse](t, rec)
		require.NotNil(t, got.Address)
		assert.Equal(t, "Recife", got.Address.City)
	})

	t.Run("address is required", func(t *testing.T) {
		h, _ := newStallHandler(t)
		c, rec := newJSONContext(http.MethodPost, "/api/v1/stalls",
			`{"supplier_id":"`+supplierID.String()+`","name":"Banca da Ana"}`)

		require.NoError(t, h.CreateStall(c))
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("unknown supplier", func(t *testing.T) {
		h, stallUC := newStallHandler(t)
		stallUC.EXPECT().CreateStall(mock.Anything, mock.Anything).
			Return(nil, errors.Wrap(domainerrors.ErrSupplierNotFound, "create stall"))

		c, rec := newJSONContext(http.MethodPost, "/api/v1/stalls",
			`{"supplier_id":"`+supplierID.String()+`","name":"Banca da Ana","address":`+stallAddressJSON+`}`)

		require.NoError(t, h.CreateStall(c))
		assert.Equal(t, http.StatusNotFound, rec.Code)
	})
}

func TestStallHandler_UpdateStall(t *testing.T) {
	h, stallUC := newStallHandler(t)
	id := uuid.New()
	stallUC.EXPECT().
		UpdateStall(mock.Anything, id, mock.MatchedBy(func(in usecase.UpdateStallInput) bool {
			name, ok := in.Stall.Name.Get()
			if !ok || name != "Banca Nova" || in.Address == nil {
				return false
			}
			city, ok := in.Address.City.Get()
			return ok && city == "Olinda" && !in.Address.Street.Present()
		})).
		Return(&entity.Stall{ID: id, Name: "Banca Nova"}, nil)

	c, rec := newJSONContext(http.MethodPatch, "/api/v1/stalls/"+id.String(), `{"name":"Banca Nova","address":{"city":"Olinda"}}`)
	withID(c, id)

	require.NoError(t, h.UpdateStall(c))
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestStallHandler_StallQRCode(t *testing.T) {
	h, stallUC := newStallHandler(t)
	id := uuid.New()
	stallUC.EXPECT().StallQRCode(mock.Anything, id).Return(pngHeader, nil)

	c, rec := newJSONContext(http.MethodGet, "/api/v1/stalls/"+id.String()+"/qrcode", "")
	withID(c, id)

	require.NoError(t, h.StallQRCode(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "image/png", rec.Header().Get("Content-Type"))
	assert.Equal(t, pngHeader, rec.Body.Bytes())
}
