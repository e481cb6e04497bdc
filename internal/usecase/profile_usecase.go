package usecase

import (
	"context"

	"gatherly/internal/domain/entity"

	"github.com/google/uuid"
)

// --- Input DTOs ---

// RegisterDeviceInput defines the data required to register a push device.
type RegisterDeviceInput struct {
	FCMToken string
	Platform string
}

// ProfileUsecase defines the interface for account profile operations.
type ProfileUsecase interface {
	// Get returns the user's profile.
	Get(ctx context.Context, userID uuid.UUID) (*entity.User, error)

	// UpdateEmail changes the login email after a uniqueness check.
	UpdateEmail(ctx context.Context, userID uuid.UUID, newEmail string) error

	// UpdatePassword verifies the current password and replaces it.
	UpdatePassword(ctx context.Context, userID uuid.UUID, currentPassword, newPassword string) error

	// RegisterDevice registers an FCM push device for the user.
	RegisterDevice(ctx context.Context, userID uuid.UUID, input RegisterDeviceInput) (*entity.Device, error)

	// RemoveDevice removes a registered push device.
	RemoveDevice(ctx context.Context, userID uuid.UUID, deviceID uuid.UUID) error
}
