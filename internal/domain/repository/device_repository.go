package repository

import (
	"context"
	"errors"

	"gatherly/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrDeviceNotFound is returned when a device is not found.
var ErrDeviceNotFound = errors.New("device not found")

// DeviceRepository defines the interface for the push device registry.
type DeviceRepository interface {
	// Save registers or refreshes a device for a user.
	Save(ctx context.Context, device *entity.Device) error

	// FindByUser retrieves all devices registered by a user.
	FindByUser(ctx context.Context, userID uuid.UUID) ([]*entity.Device, error)

	// Delete removes a device registration.
	Delete(ctx context.Context, userID uuid.UUID, id uuid.UUID) error
}
