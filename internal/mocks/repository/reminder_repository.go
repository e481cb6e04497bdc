package repository

import (
	"context"
	"testing"
	"time"

	"gatherly/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

// MockReminderRepository mocks repository.ReminderRepository.
type MockReminderRepository struct {
	mock.Mock
}

// NewMockReminderRepository creates the mock and asserts its expectations on cleanup.
func NewMockReminderRepository(t *testing.T) *MockReminderRepository {
	m := &MockReminderRepository{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

func (m *MockReminderRepository) Create(ctx context.Context, reminder *entity.Reminder) error {
	args := m.Called(ctx, reminder)

	return args.Error(0)
}

func (m *MockReminderRepository) FindByUser(ctx context.Context, userID uuid.UUID) ([]*entity.Reminder, error) {
	args := m.Called(ctx, userID)

	var reminders []*entity.Reminder
	if v := args.Get(0); v != nil {
		reminders = v.([]*entity.Reminder)
	}

	return reminders, args.Error(1)
}

func (m *MockReminderRepository) FindDue(ctx context.Context, now time.Time) ([]*entity.Reminder, error) {
	args := m.Called(ctx, now)

	var reminders []*entity.Reminder
	if v := args.Get(0); v != nil {
		reminders = v.([]*entity.Reminder)
	}

	return reminders, args.Error(1)
}

func (m *MockReminderRepository) MarkRead(ctx context.Context, userID uuid.UUID, ids []uuid.UUID) error {
	args := m.Called(ctx, userID, ids)

	return args.Error(0)
}

func (m *MockReminderRepository) MarkDispatched(ctx context.Context, userID uuid.UUID, id uuid.UUID, at time.Time) error {
	args := m.Called(ctx, userID, id, at)

	return args.Error(0)
}

func (m *MockReminderRepository) Delete(ctx context.Context, userID uuid.UUID, id uuid.UUID) error {
	args := m.Called(ctx, userID, id)

	return args.Error(0)
}

func (m *MockReminderRepository) DeleteExpired(ctx context.Context, cutoff time.Time) (int, error) {
	args := m.Called(ctx, cutoff)

	return args.Int(0), args.Error(1)
}
