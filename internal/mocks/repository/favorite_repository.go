package repository

import (
	"context"
	"testing"

	"gatherly/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

// MockFavoriteRepository mocks repository.FavoriteRepository.
type MockFavoriteRepository struct {
	mock.Mock
}

// NewMockFavoriteRepository creates the mock and asserts its expectations on cleanup.
func NewMockFavoriteRepository(t *testing.T) *MockFavoriteRepository {
	m := &MockFavoriteRepository{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

func (m *MockFavoriteRepository) Add(ctx context.Context, userID uuid.UUID, favorite *entity.Favorite) error {
	args := m.Called(ctx, userID, favorite)

	return args.Error(0)
}

func (m *MockFavoriteRepository) Remove(ctx context.Context, userID uuid.UUID, eventID uuid.UUID) error {
	args := m.Called(ctx, userID, eventID)

	return args.Error(0)
}

func (m *MockFavoriteRepository) Exists(ctx context.Context, userID uuid.UUID, eventID uuid.UUID) (bool, error) {
	args := m.Called(ctx, userID, eventID)

	return args.Bool(0), args.Error(1)
}

func (m *MockFavoriteRepository) FindByUser(ctx context.Context, userID uuid.UUID) ([]*entity.Favorite, error) {
	args := m.Called(ctx, userID)

	var favorites []*entity.Favorite
	if v := args.Get(0); v != nil {
		favorites = v.([]*entity.Favorite)
	}

	return favorites, args.Error(1)
}

func (m *MockFavoriteRepository) Clear(ctx context.Context, userID uuid.UUID) error {
	args := m.Called(ctx, userID)

	return args.Error(0)
}
