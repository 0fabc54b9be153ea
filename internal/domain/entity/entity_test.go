package entity

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestAddress_Coordinates(t *testing.T) {
	t.Parallel()

	lat, lon := -23.55, -46.63

	tests := []struct {
		name   string
		addr   *Address
		wantOK bool
	}{
		{name: "nil address", addr: nil},
		{name: "missing longitude", addr: &Address{Latitude: &lat}},
		{name: "missing latitude", addr: &Address{Longitude: &lon}},
		{name: "geocoded", addr: &Address{Latitude: &lat, Longitude: &lon}, wantOK: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			gotLat, gotLon, ok := tt.addr.Coordinates()
			assert.Equal(t, tt.wantOK, ok)
			if tt.wantOK {
				assert.InDelta(t, lat, gotLat, 1e-12)
				assert.InDelta(t, lon, gotLon, 1e-12)
			}
		})
	}
}

func TestChat_Participants(t *testing.T) {
	t.Parallel()

	userID, supplierID, stranger := uuid.New(), uuid.New(), uuid.New()
	chat := &Chat{ID: uuid.New(), UserID: userID, SupplierID: supplierID}

	assert.True(t, chat.HasParticipant(userID))
	assert.True(t, chat.HasParticipant(supplierID))
	assert.False(t, chat.HasParticipant(stranger))

	assert.Equal(t, SenderUser, chat.RoleOf(userID))
	assert.Equal(t, SenderSupplier, chat.RoleOf(supplierID))
	assert.Equal(t, supplierID, chat.OtherParty(userID))
	assert.Equal(t, userID, chat.OtherParty(supplierID))
}

func TestUserType_IsValid(t *testing.T) {
	t.Parallel()

	assert.True(t, UserTypeSupplier.IsValid())
	assert.False(t, UserType("merchant").IsValid())
	assert.True(t, SenderSupplier.IsValid())
	assert.False(t, SenderType("admin").IsValid())
}
