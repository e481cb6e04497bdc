package firestore

import (
	"context"

	"gatherly/internal/domain/entity"
	domainerrors "gatherly/internal/domain/errors"
	"gatherly/internal/domain/repository"
	"gatherly/internal/infra/persistence/model"

	"cloud.google.com/go/firestore"
	"github.com/google/uuid"
	"github.com/pkg/errors"
	"google.golang.org/api/iterator"
)

// deviceRepository implements the repository.DeviceRepository interface.
type deviceRepository struct {
	client *firestore.Client
}

// NewDeviceRepository is the constructor for deviceRepository.
func NewDeviceRepository(client *firestore.Client) repository.DeviceRepository {
	return &deviceRepository{
		client: client,
	}
}

func (repo *deviceRepository) devices(userID uuid.UUID) *firestore.CollectionRef {
	return repo.client.Collection(collUsers).Doc(userID.String()).Collection(subcollDevices)
}

// Save registers or refreshes a device for a user.
func (repo *deviceRepository) Save(ctx context.Context, device *entity.Device) error {
	ref := repo.devices(device.UserID).Doc(device.ID.String())

	if _, err := ref.Set(ctx, fromDeviceDomain(device)); err != nil {
		return domainerrors.NewStoreExecuteError(err, "failed to save device")
	}

	return nil
}

// FindByUser retrieves all devices registered by a user.
func (repo *deviceRepository) FindByUser(ctx context.Context, userID uuid.UUID) ([]*entity.Device, error) {
	iter := repo.devices(userID).Documents(ctx)
	defer iter.Stop()

	devices := make([]*entity.Device, 0)
	for {
		doc, err := iter.Next()
		if errors.Is(err, iterator.Done) {
			break
		}
		if err != nil {
			return nil, errors.Wrap(err, "failed to find devices by user")
		}

		device, err := toDeviceDomain(doc, userID)
		if err != nil {
			return nil, err
		}
		devices = append(devices, device)
	}

	return devices, nil
}

// Delete removes a device registration.
func (repo *deviceRepository) Delete(ctx context.Context, userID uuid.UUID, id uuid.UUID) error {
	if _, err := repo.devices(userID).Doc(id.String()).Delete(ctx); err != nil {
		return domainerrors.NewStoreExecuteError(err, "failed to delete device")
	}

	return nil
}

// --- Mapper Functions ---

// toDeviceDomain converts a Firestore device document to a domain Device entity.
func toDeviceDomain(doc *firestore.DocumentSnapshot, userID uuid.UUID) (*entity.Device, error) {
	var deviceM model.DeviceModel
	if err := doc.DataTo(&deviceM); err != nil {
		return nil, errors.Wrap(err, "failed to decode device document")
	}

	id, err := uuid.Parse(doc.Ref.ID)
	if err != nil {
		return nil, errors.Wrap(err, "device document ID is not a UUID")
	}

	return &entity.Device{
		ID:        id,
		UserID:    userID,
		FCMToken:  deviceM.FCMToken,
		Platform:  deviceM.Platform,
		CreatedAt: deviceM.CreatedAt,
	}, nil
}

// fromDeviceDomain converts a domain Device entity to a Firestore device document.
func fromDeviceDomain(data *entity.Device) *model.DeviceModel {
	if data == nil {
		return nil
	}

	return &model.DeviceModel{
		FCMToken:  data.FCMToken,
		Platform:  data.Platform,
		CreatedAt: data.CreatedAt,
	}
}
