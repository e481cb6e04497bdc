package entity

import (
	"time"

	"github.com/google/uuid"
)

// Participation links one user to one event ("RSVP"). The event fields are
// denormalized at join time so participant listings survive later event
// edits, matching the source data shape.
type Participation struct {
	ID          uuid.UUID `json:"id"`          // Deterministic ID derived from (event ID, user email); see usecase/impl.
	EventID     uuid.UUID `json:"event_id"`    // The event this participation belongs to.
	Title       string    `json:"title"`       // Event title at join time.
	Description string    `json:"description"` // Event description at join time.
	Location    string    `json:"location"`    // Event location at join time.
	StartsAt    time.Time `json:"starts_at"`   // Event start at join time.
	EndsAt      time.Time `json:"ends_at"`     // Event end; always start + 2h, the event feed carries no duration.
	Email       string    `json:"email"`       // Identity surrogate of the joining user.
	JoinedAt    time.Time `json:"joined_at"`   // Timestamp of when the user joined.
}
