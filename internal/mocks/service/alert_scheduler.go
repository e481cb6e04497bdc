// Package service contains hand-written testify mocks for the domain
// service interfaces.
package service

import (
	"context"
	"testing"

	"gatherly/internal/domain/service"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

// MockAlertScheduler mocks service.AlertScheduler.
type MockAlertScheduler struct {
	mock.Mock
}

// NewMockAlertScheduler creates the mock and asserts its expectations on cleanup.
func NewMockAlertScheduler(t *testing.T) *MockAlertScheduler {
	m := &MockAlertScheduler{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

func (m *MockAlertScheduler) Schedule(ctx context.Context, alert *service.Alert) error {
	args := m.Called(ctx, alert)

	return args.Error(0)
}

func (m *MockAlertScheduler) Cancel(id uuid.UUID) {
	m.Called(id)
}

func (m *MockAlertScheduler) CancelAll() {
	m.Called()
}
