package entity

import (
	"time"

	"github.com/google/uuid"
)

// Favorite marks an event as favorited by a user. Favorites are scoped to
// the account rather than the device so they follow the user across
// installs.
type Favorite struct {
	EventID uuid.UUID `json:"event_id"` // The favorited event.
	Title   string    `json:"title"`    // Event title at the time of favoriting, for cheap listing.
	AddedAt time.Time `json:"added_at"` // Timestamp of when the favorite was added.
}
