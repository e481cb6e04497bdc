package repository

import (
	"context"
	"testing"

	"gatherly/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

// MockParticipationRepository mocks repository.ParticipationRepository.
type MockParticipationRepository struct {
	mock.Mock
}

// NewMockParticipationRepository creates the mock and asserts its expectations on cleanup.
func NewMockParticipationRepository(t *testing.T) *MockParticipationRepository {
	m := &MockParticipationRepository{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

func (m *MockParticipationRepository) Create(ctx context.Context, participation *entity.Participation) error {
	args := m.Called(ctx, participation)

	return args.Error(0)
}

func (m *MockParticipationRepository) FindByEventAndEmail(ctx context.Context, eventID uuid.UUID, email string) ([]*entity.Participation, error) {
	args := m.Called(ctx, eventID, email)

	var participations []*entity.Participation
	if v := args.Get(0); v != nil {
		participations = v.([]*entity.Participation)
	}

	return participations, args.Error(1)
}

func (m *MockParticipationRepository) FindByEvent(ctx context.Context, eventID uuid.UUID) ([]*entity.Participation, error) {
	args := m.Called(ctx, eventID)

	var participations []*entity.Participation
	if v := args.Get(0); v != nil {
		participations = v.([]*entity.Participation)
	}

	return participations, args.Error(1)
}

func (m *MockParticipationRepository) FindByEmail(ctx context.Context, email string) ([]*entity.Participation, error) {
	args := m.Called(ctx, email)

	var participations []*entity.Participation
	if v := args.Get(0); v != nil {
		participations = v.([]*entity.Participation)
	}

	return participations, args.Error(1)
}

func (m *MockParticipationRepository) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)

	return args.Error(0)
}
