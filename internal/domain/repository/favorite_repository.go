package repository

import (
	"context"

	"gatherly/internal/domain/entity"

	"github.com/google/uuid"
)

// FavoriteRepository defines the interface for a user's favorite events.
// Favorites live in the remote store keyed by user so they follow the
// account across devices.
type FavoriteRepository interface {
	// Add marks an event as favorited.
	Add(ctx context.Context, userID uuid.UUID, favorite *entity.Favorite) error

	// Remove unmarks an event. Removing a missing favorite is not an error.
	Remove(ctx context.Context, userID uuid.UUID, eventID uuid.UUID) error

	// Exists reports whether the user has favorited the event.
	Exists(ctx context.Context, userID uuid.UUID, eventID uuid.UUID) (bool, error)

	// FindByUser retrieves all favorites of a user, most recent first.
	FindByUser(ctx context.Context, userID uuid.UUID) ([]*entity.Favorite, error)

	// Clear removes every favorite of the user.
	Clear(ctx context.Context, userID uuid.UUID) error
}
