package usecase

import (
	"context"

	"gatherly/internal/domain/entity"

	"github.com/google/uuid"
)

// FavoriteUsecase defines the interface for a user's favorite events.
type FavoriteUsecase interface {
	// Toggle favorites the event, or unfavorites it when already
	// favorited. Returns the resulting state: true when favorited.
	Toggle(ctx context.Context, userID, eventID uuid.UUID) (favorited bool, err error)

	// List returns the user's favorites, most recent first.
	List(ctx context.Context, userID uuid.UUID) ([]*entity.Favorite, error)

	// Clear removes every favorite of the user.
	Clear(ctx context.Context, userID uuid.UUID) error
}
