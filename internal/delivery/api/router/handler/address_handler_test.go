package handler

import (
	"net/http"
	"testing"

	"feira/internal/domain/entity"
	domainerrors "feira/internal/domain/errors"
	"feira/internal/errors"
	mockUC "feira/internal/mocks/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newAddressHandler(t *testing.T) (*AddressHandler, *mockUC.MockAddressUsecase) {
	addressUC := mockUC.NewMockAddressUsecase(t)

	return &AddressHandler{addressUC: addressUC, logger: newDiscardLogger()}, addressUC
}

func TestAddressHandler_GetAddress(t *testing.T) {
	t.Run("found", func(t *testing.T) {
		h, addressUC := newAddressHandler(t)
		id := uuid.New()
		addressUC.EXPECT().GetAddress(mock.Anything, id).Return(&entity.Address{ID: id, City: "Campinas"}, nil)

		c, rec := newJSONContext(http.MethodGet, "/api/v1/addresses/"+id.String(), "")
		withID(c, id)

		require.NoError(t, h.GetAddress(c))
		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "Campinas", decodeData[AddressResponse](t, rec).City)
	})

	t.Run("not found", func(t *testing.T) {
		h, addressUC := newAddressHandler(t)
		id := uuid.New()
		addressUC.EXPECT().GetAddress(mock.Anything, id).
			Return(nil, errors.Wrap(domainerrors.ErrAddressNotFound, "get address"))

		c, rec := newJSONContext(http.MethodGet, "/api/v1/addresses/"+id.String(), "")
		withID(c, id)

		require.NoError(t, h.GetAddress(c))
		assert.Equal(t, http.StatusNotFound, rec.Code)
	})

	t.Run("malformed id", func(t *testing.T) {
		h, _ := newAddressHandler(t)
		c, rec := newJSONContext(http.MethodGet, "/api/v1/addresses/abc", "")
		c.SetParamNames("id")
		c.SetParamValues("abc")

		require.NoError(t, h.GetAddress(c))
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestAddressHandler_UpdateAddress(t *testing.T) {
	t.Run("explicit null clears coordinates", func(t *testing.T) {
		h, addressUC := newAddressHandler(t)
		id := uuid.New()
		addressUC.EXPECT().
			UpdateAddress(mock.Anything, id, mock.MatchedBy(func(p entity.AddressPatch) bool {
				return p.Latitude.IsNull() && p.Longitude.IsNull() && p.Complement.IsNull() &&
					!p.Street.Present() && !p.City.Present()
			})).
			Return(&entity.Address{ID: id}, nil)

		c, rec := newJSONContext(http.MethodPatch, "/api/v1/addresses/"+id.String(),
			`{"latitude":null,"longitude":null,"complement":null}`)
		withID(c, id)

		require.NoError(t, h.UpdateAddress(c))
		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("coordinates set", func(t *testing.T) {
		h, addressUC := newAddressHandler(t)
		id := uuid.New()
		lat, lon := -22.9056, -47.0608
		addressUC.EXPECT().
			UpdateAddress(mock.Anything, id, mock.MatchedBy(func(p entity.AddressPatch) bool {
				gotLat, latOK := p.Latitude.Get()
				gotLon, lonOK := p.Longitude.Get()
				return latOK && lonOK && gotLat == lat && gotLon == lon
			})).
			Return(&entity.Address{ID: id, Latitude: &lat, Longitude: &lon}, nil)

		c, rec := newJSONContext(http.MethodPatch, "/api/v1/addresses/"+id.String(),
			`{"latitude":-22.9056,"longitude":-47.0608}`)
		withID(c, id)

		require.NoError(t, h.UpdateAddress(c))
		assert.Equal(t, http.StatusOK, rec.Code)
		out := decodeData[AddressResponse](t, rec)
		require.NotNil(t, out.Latitude)
		assert.InDelta(t, lat, *out.Latitude, 1e-9)
	})

	t.Run("latitude out of range", func(t *testing.T) {
		h, _ := newAddressHandler(t)
		id := uuid.New()
		c, rec := newJSONContext(http.MethodPatch, "/api/v1/addresses/"+id.String(), `{"latitude":91}`)
		withID(c, id)

		require.NoError(t, h.UpdateAddress(c))
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}
