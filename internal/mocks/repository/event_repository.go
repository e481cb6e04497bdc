// Package repository contains hand-written testify mocks for the domain
// repository interfaces.
package repository

import (
	"context"
	"testing"

	"gatherly/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

// MockEventRepository mocks repository.EventRepository.
type MockEventRepository struct {
	mock.Mock
}

// NewMockEventRepository creates the mock and asserts its expectations on cleanup.
func NewMockEventRepository(t *testing.T) *MockEventRepository {
	m := &MockEventRepository{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

func (m *MockEventRepository) FindAll(ctx context.Context) ([]*entity.Event, error) {
	args := m.Called(ctx)

	var events []*entity.Event
	if v := args.Get(0); v != nil {
		events = v.([]*entity.Event)
	}

	return events, args.Error(1)
}

func (m *MockEventRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Event, error) {
	args := m.Called(ctx, id)

	var event *entity.Event
	if v := args.Get(0); v != nil {
		event = v.(*entity.Event)
	}

	return event, args.Error(1)
}
