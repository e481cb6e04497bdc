package repository

import (
	"context"
	"testing"

	"gatherly/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

// MockDeviceRepository mocks repository.DeviceRepository.
type MockDeviceRepository struct {
	mock.Mock
}

// NewMockDeviceRepository creates the mock and asserts its expectations on cleanup.
func NewMockDeviceRepository(t *testing.T) *MockDeviceRepository {
	m := &MockDeviceRepository{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

func (m *MockDeviceRepository) Save(ctx context.Context, device *entity.Device) error {
	args := m.Called(ctx, device)

	return args.Error(0)
}

func (m *MockDeviceRepository) FindByUser(ctx context.Context, userID uuid.UUID) ([]*entity.Device, error) {
	args := m.Called(ctx, userID)

	var devices []*entity.Device
	if v := args.Get(0); v != nil {
		devices = v.([]*entity.Device)
	}

	return devices, args.Error(1)
}

func (m *MockDeviceRepository) Delete(ctx context.Context, userID uuid.UUID, id uuid.UUID) error {
	args := m.Called(ctx, userID, id)

	return args.Error(0)
}
