package entity

import (
	"time"

	"github.com/google/uuid"
)

// Reminder is a per-user server-side record of a scheduled event reminder.
// It shares its ID with the corresponding participation so cancellation is
// an id-based delete rather than a title/message text match.
type Reminder struct {
	ID           uuid.UUID  `json:"id"`                      // Shared deterministic ID with the owning participation.
	UserID       uuid.UUID  `json:"user_id"`                 // Owner of the reminder.
	EventID      uuid.UUID  `json:"event_id"`                // The event the reminder is about.
	Title        string     `json:"title"`                   // Alert title; the event title.
	Message      string     `json:"message"`                 // Alert body, e.g. "Yoga etkinliği 1 saat içinde başlıyor!".
	EventAt      time.Time  `json:"event_at"`                // Start time of the event.
	TriggerAt    time.Time  `json:"trigger_at"`              // Event start minus one hour, truncated to the minute.
	CreatedAt    time.Time  `json:"created_at"`              // Timestamp of when this record was created.
	IsRead       bool       `json:"is_read"`                 // Whether the user has acknowledged the reminder.
	DispatchedAt *time.Time `json:"dispatched_at,omitempty"` // When the push was actually sent; nil until dispatch.
}

// Due reports whether the reminder should be visible in the user's feed.
func (r *Reminder) Due(now time.Time) bool {
	return !r.TriggerAt.After(now)
}

// Expired reports whether a read reminder is old enough to be purged.
// Read reminders are kept for three days past their trigger time.
func (r *Reminder) Expired(now time.Time) bool {
	return r.IsRead && r.TriggerAt.Before(now.Add(-3*24*time.Hour))
}
