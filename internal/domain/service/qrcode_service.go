package service

import (
	"github.com/google/uuid"
)

// QRCodeService defines the interface for event share QR codes.
type QRCodeService interface {
	// GenerateEventQR generates a PNG QR code embedding the event ID.
	GenerateEventQR(eventID uuid.UUID) ([]byte, error)

	// ParseEventQR parses scanned QR data and returns the event ID.
	ParseEventQR(qrData string) (uuid.UUID, error)
}
