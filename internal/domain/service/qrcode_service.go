package service

import (
	"github.com/google/uuid"
)

// QRCodeService renders and reads the QR code a stall prints at its stand.
type QRCodeService interface {
	// GenerateStallQR returns a PNG that encodes a link to the stall.
	GenerateStallQR(stallID uuid.UUID) ([]byte, error)

	// ParseStallQR extracts the stall id from scanned QR content.
	ParseStallQR(qrData string) (uuid.UUID, error)
}
