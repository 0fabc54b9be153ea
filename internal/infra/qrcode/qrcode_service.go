// Package qrcode renders the QR codes stalls display at their stands.
package qrcode

import (
	"encoding/json"
	"strings"

	"feira/config"
	"feira/internal/domain/service"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/skip2/go-qrcode"
)

const (
	defaultSize   = 256
	payloadType   = "stall"
	urlPathMarker = "/"
)

type qrcodeService struct {
	size    int
	level   qrcode.RecoveryLevel
	baseURL string
}

// StallQRData is the JSON payload encoded when no base URL is configured.
type StallQRData struct {
	StallID string `json:"stall_id"`
	Type    string `json:"type"`
}

// NewQRCodeService builds the service from the qrcode config section.
func NewQRCodeService(cfg *config.Config) service.QRCodeService {
	qrCfg := cfg.QRCode
	if qrCfg == nil {
		qrCfg = &config.QRCodeConfig{}
	}

	return newQRCodeService(qrCfg.Size, qrCfg.ErrorCorrectionLevel, qrCfg.BaseURL)
}

func newQRCodeService(size int, errorCorrectionLevel, baseURL string) *qrcodeService {
	if size <= 0 {
		size = defaultSize
	}

	return &qrcodeService{
		size:    size,
		level:   parseRecoveryLevel(errorCorrectionLevel),
		baseURL: strings.TrimRight(baseURL, "/"),
	}
}

func parseRecoveryLevel(level string) qrcode.RecoveryLevel {
	switch strings.ToLower(level) {
	case "l", "low":
		return qrcode.Low
	case "q", "high":
		return qrcode.High
	case "h", "highest":
		return qrcode.Highest
	default:
		return qrcode.Medium
	}
}

// GenerateStallQR encodes a link to the stall when a base URL is set,
// otherwise a JSON payload with the stall id.
func (s *qrcodeService) GenerateStallQR(stallID uuid.UUID) ([]byte, error) {
	content, err := s.content(stallID)
	if err != nil {
		return nil, err
	}

	qrCode, err := qrcode.New(content, s.level)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create QR code")
	}

	pngBytes, err := qrCode.PNG(s.size)
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate PNG")
	}

	return pngBytes, nil
}

func (s *qrcodeService) content(stallID uuid.UUID) (string, error) {
	if s.baseURL != "" {
		return s.baseURL + urlPathMarker + stallID.String(), nil
	}

	jsonData, err := json.Marshal(StallQRData{StallID: stallID.String(), Type: payloadType})
	if err != nil {
		return "", errors.Wrap(err, "failed to marshal QR code data")
	}

	return string(jsonData), nil
}

// ParseStallQR accepts either form GenerateStallQR produces.
func (s *qrcodeService) ParseStallQR(qrData string) (uuid.UUID, error) {
	qrData = strings.TrimSpace(qrData)

	if !strings.HasPrefix(qrData, "{") {
		idx := strings.LastIndex(qrData, urlPathMarker)
		stallID, err := uuid.Parse(qrData[idx+1:])
		if err != nil {
			return uuid.Nil, errors.Wrap(err, "failed to parse stall ID from link")
		}

		return stallID, nil
	}

	var data StallQRData
	if err := json.Unmarshal([]byte(qrData), &data); err != nil {
		return uuid.Nil, errors.Wrap(err, "failed to unmarshal QR code data")
	}
	if data.Type != payloadType {
		return uuid.Nil, errors.Errorf("invalid QR code type: %s", data.Type)
	}

	stallID, err := uuid.Parse(data.StallID)
	if err != nil {
		return uuid.Nil, errors.Wrap(err, "failed to parse stall ID")
	}

	return stallID, nil
}
