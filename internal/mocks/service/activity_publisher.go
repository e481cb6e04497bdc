package service

import (
	"context"
	"testing"

	"gatherly/internal/domain/service"

	"github.com/stretchr/testify/mock"
)

// MockActivityPublisher mocks service.ActivityPublisher.
type MockActivityPublisher struct {
	mock.Mock
}

// NewMockActivityPublisher creates the mock and asserts its expectations on cleanup.
func NewMockActivityPublisher(t *testing.T) *MockActivityPublisher {
	m := &MockActivityPublisher{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

func (m *MockActivityPublisher) PublishParticipationActivity(ctx context.Context, activity *service.ParticipationActivity) error {
	args := m.Called(ctx, activity)

	return args.Error(0)
}

func (m *MockActivityPublisher) Close() error {
	args := m.Called()

	return args.Error(0)
}
