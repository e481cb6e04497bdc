package service

import (
	"context"
	"testing"

	"gatherly/internal/domain/service"

	"github.com/stretchr/testify/mock"
)

// MockCalendarWriter mocks service.CalendarWriter.
type MockCalendarWriter struct {
	mock.Mock
}

// NewMockCalendarWriter creates the mock and asserts its expectations on cleanup.
func NewMockCalendarWriter(t *testing.T) *MockCalendarWriter {
	m := &MockCalendarWriter{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

func (m *MockCalendarWriter) Insert(ctx context.Context, entry *service.CalendarEntry) error {
	args := m.Called(ctx, entry)

	return args.Error(0)
}
