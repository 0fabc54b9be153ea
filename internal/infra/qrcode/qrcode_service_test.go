package qrcode

import (
	"encoding/json"
	"testing"

	"feira/config"

	"github.com/google/uuid"
	"github.com/skip2/go-qrcode"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func assertPNG(t *testing.T, b []byte) {
	t.Helper()

	require.GreaterOrEqual(t, len(b), 4)
	assert.Equal(t, []byte{0x89, 0x50, 0x4E, 0x47}, b[:4])
}

func TestParseRecoveryLevel(t *testing.T) {
	tests := []struct {
		in   string
		want qrcode.RecoveryLevel
	}{
		{"L", qrcode.Low},
		{"medium", qrcode.Medium},
		{"Q", qrcode.High},
		{"highest", qrcode.Highest},
		{"invalid", qrcode.Medium},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, parseRecoveryLevel(tt.in))
		})
	}
}

func TestNewQRCodeService_Defaults(t *testing.T) {
	svc := NewQRCodeService(&config.Config{}).(*qrcodeService)

	assert.Equal(t, defaultSize, svc.size)
	assert.Equal(t, qrcode.Medium, svc.level)
	assert.Empty(t, svc.baseURL)
}

func TestGenerateStallQR_Sizes(t *testing.T) {
	for _, size := range []int{128, 256, 512} {
		svc := newQRCodeService(size, "M", "")

		qrBytes, err := svc.GenerateStallQR(uuid.New())
		require.NoError(t, err)
		assertPNG(t, qrBytes)
	}
}

func TestGenerateStallQR_LinkRoundTrip(t *testing.T) {
	svc := newQRCodeService(256, "M", "https://feira.example.com/stalls/")
	stallID := uuid.New()

	content, err := svc.content(stallID)
	require.NoError(t, err)
	assert.Equal(t, "https://feira.example.com/stalls/"+stallID.String(), content)

	qrBytes, err := svc.GenerateStallQR(stallID)
	require.NoError(t, err)
	assertPNG(t, qrBytes)

	parsed, err := svc.ParseStallQR(content)
	require.NoError(t, err)
	assert.Equal(t, stallID, parsed)
}

func TestParseStallQR_JSONPayload(t *testing.T) {
	svc := newQRCodeService(256, "M", "")
	stallID := uuid.New()

	content, err := svc.content(stallID)
	require.NoError(t, err)

	parsed, err := svc.ParseStallQR(content)
	require.NoError(t, err)
	assert.Equal(t, stallID, parsed)
}

func TestParseStallQR_Errors(t *testing.T) {
	svc := newQRCodeService(256, "M", "")

	wrongType, err := json.Marshal(StallQRData{StallID: uuid.NewString(), Type: "subscription"})
	require.NoError(t, err)
	badID, err := json.Marshal(StallQRData{StallID: "not-a-uuid", Type: payloadType})
	require.NoError(t, err)

	tests := []struct {
		name    string
		data    string
		wantMsg string
	}{
		{name: "broken json", data: "{broken", wantMsg: "failed to unmarshal QR code data"},
		{name: "wrong type", data: string(wrongType), wantMsg: "invalid QR code type"},
		{name: "bad uuid", data: string(badID), wantMsg: "failed to parse stall ID"},
		{name: "bad link", data: "https://feira.example.com/stalls/abc", wantMsg: "failed to parse stall ID from link"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.ParseStallQR(tt.data)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantMsg)
		})
	}
}
