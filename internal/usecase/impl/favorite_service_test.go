package impl

import (
	"context"
	"testing"

	"gatherly/internal/domain/entity"
	domainerrors "gatherly/internal/domain/errors"
	"gatherly/internal/domain/repository"
	mockRepo "gatherly/internal/mocks/repository"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newFavoriteService(t *testing.T) (*favoriteService, *mockRepo.MockFavoriteRepository, *mockRepo.MockEventRepository) {
	favoriteRepo := mockRepo.NewMockFavoriteRepository(t)
	eventRepo := mockRepo.NewMockEventRepository(t)

	srv := &favoriteService{
		favoriteRepo: favoriteRepo,
		eventRepo:    eventRepo,
	}

	return srv, favoriteRepo, eventRepo
}

func TestFavoriteService_Toggle_Add(t *testing.T) {
	srv, favoriteRepo, eventRepo := newFavoriteService(t)
	ctx := context.Background()

	userID := uuid.New()
	event := testEvent()

	eventRepo.On("FindByID", ctx, event.ID).Return(event, nil)
	favoriteRepo.On("Exists", ctx, userID, event.ID).Return(false, nil)
	favoriteRepo.On("Add", ctx, userID, mock.MatchedBy(func(f *entity.Favorite) bool {
		return f.EventID == event.ID && f.Title == event.Title
	})).Return(nil)

	favorited, err := srv.Toggle(ctx, userID, event.ID)
	require.NoError(t, err)
	require.True(t, favorited)
}

func TestFavoriteService_Toggle_Remove(t *testing.T) {
	srv, favoriteRepo, eventRepo := newFavoriteService(t)
	ctx := context.Background()

	userID := uuid.New()
	event := testEvent()

	eventRepo.On("FindByID", ctx, event.ID).Return(event, nil)
	favoriteRepo.On("Exists", ctx, userID, event.ID).Return(true, nil)
	favoriteRepo.On("Remove", ctx, userID, event.ID).Return(nil)

	favorited, err := srv.Toggle(ctx, userID, event.ID)
	require.NoError(t, err)
	require.False(t, favorited)
}

func TestFavoriteService_Toggle_DateInvalidTolerated(t *testing.T) {
	srv, favoriteRepo, eventRepo := newFavoriteService(t)
	ctx := context.Background()

	userID := uuid.New()
	eventID := uuid.New()

	eventRepo.On("FindByID", ctx, eventID).Return(nil, repository.ErrEventDateInvalid)
	favoriteRepo.On("Exists", ctx, userID, eventID).Return(false, nil)
	favoriteRepo.On("Add", ctx, userID, mock.MatchedBy(func(f *entity.Favorite) bool {
		return f.EventID == eventID && f.Title == ""
	})).Return(nil)

	favorited, err := srv.Toggle(ctx, userID, eventID)
	require.NoError(t, err)
	require.True(t, favorited)
}

func TestFavoriteService_Toggle_EventNotFound(t *testing.T) {
	srv, _, eventRepo := newFavoriteService(t)
	ctx := context.Background()

	eventID := uuid.New()
	eventRepo.On("FindByID", ctx, eventID).Return(nil, repository.ErrEventNotFound)

	_, err := srv.Toggle(ctx, uuid.New(), eventID)
	require.ErrorIs(t, err, domainerrors.ErrEventNotFound)
}

func TestFavoriteService_List(t *testing.T) {
	srv, favoriteRepo, _ := newFavoriteService(t)
	ctx := context.Background()

	userID := uuid.New()
	favorites := []*entity.Favorite{{EventID: uuid.New(), Title: "Yoga"}}

	favoriteRepo.On("FindByUser", ctx, userID).Return(favorites, nil)

	got, err := srv.List(ctx, userID)
	require.NoError(t, err)
	require.Equal(t, favorites, got)
}

func TestFavoriteService_Clear(t *testing.T) {
	srv, favoriteRepo, _ := newFavoriteService(t)
	ctx := context.Background()

	userID := uuid.New()
	favoriteRepo.On("Clear", ctx, userID).Return(nil)

	require.NoError(t, srv.Clear(ctx, userID))
}
