package impl

import (
	"context"
	"time"

	"gatherly/internal/domain/entity"
	domainerrors "gatherly/internal/domain/errors"
	"gatherly/internal/domain/repository"
	"gatherly/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// favoriteService implements the FavoriteUsecase interface.
type favoriteService struct {
	favoriteRepo repository.FavoriteRepository
	eventRepo    repository.EventRepository
}

// FavoriteServiceParams holds dependencies for FavoriteService, injected by Fx.
type FavoriteServiceParams struct {
	fx.In

	FavoriteRepo repository.FavoriteRepository
	EventRepo    repository.EventRepository
}

// NewFavoriteService is the constructor for favoriteService.
func NewFavoriteService(params FavoriteServiceParams) usecase.FavoriteUsecase {
	return &favoriteService{
		favoriteRepo: params.FavoriteRepo,
		eventRepo:    params.EventRepo,
	}
}

// Toggle favorites the event, or unfavorites it when already favorited.
func (srv *favoriteService) Toggle(ctx context.Context, userID, eventID uuid.UUID) (bool, error) {
	event, err := srv.eventRepo.FindByID(ctx, eventID)
	if err != nil {
		switch {
		case errors.Is(err, repository.ErrEventNotFound):
			return false, domainerrors.ErrEventNotFound
		case errors.Is(err, repository.ErrEventDateInvalid):
			// Favoriting does not depend on a usable date; keep the title
			// lookup best-effort and fall through with a stub.
			event = &entity.Event{ID: eventID}
		default:
			return false, errors.Wrap(err, "failed to load event for favorite toggle")
		}
	}

	favorited, err := srv.favoriteRepo.Exists(ctx, userID, eventID)
	if err != nil {
		return false, errors.Wrap(err, "failed to check favorite state")
	}

	if favorited {
		if err := srv.favoriteRepo.Remove(ctx, userID, eventID); err != nil {
			return true, errors.Wrap(err, "failed to remove favorite")
		}

		return false, nil
	}

	favorite := &entity.Favorite{
		EventID: eventID,
		Title:   event.Title,
		AddedAt: time.Now(),
	}
	if err := srv.favoriteRepo.Add(ctx, userID, favorite); err != nil {
		return false, errors.Wrap(err, "failed to add favorite")
	}

	return true, nil
}

// List returns the user's favorites, most recent first.
func (srv *favoriteService) List(ctx context.Context, userID uuid.UUID) ([]*entity.Favorite, error) {
	favorites, err := srv.favoriteRepo.FindByUser(ctx, userID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list favorites")
	}

	return favorites, nil
}

// Clear removes every favorite of the user.
func (srv *favoriteService) Clear(ctx context.Context, userID uuid.UUID) error {
	if err := srv.favoriteRepo.Clear(ctx, userID); err != nil {
		return errors.Wrap(err, "failed to clear favorites")
	}

	return nil
}
