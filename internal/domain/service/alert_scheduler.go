package service

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// Alert is a one-shot reminder waiting to fire.
type Alert struct {
	ID     uuid.UUID // Deterministic per (event, user); re-scheduling replaces the pending alert.
	UserID uuid.UUID // Owner; the push fans out to this user's registered devices.
	Title  string    // Alert title, the event title.
	Body   string    // Alert body, the reminder message.
	FireAt time.Time // When to fire; truncated to the minute before arming.
}

// AlertScheduler schedules one-shot reminder alerts. Unlike the mobile
// notification center this replaces, pending alerts can be cancelled
// individually by ID; CancelAll remains for shutdown.
type AlertScheduler interface {
	// Schedule arms an alert. An already-pending alert with the same ID is
	// replaced. Alerts whose fire time has passed fire immediately.
	Schedule(ctx context.Context, alert *Alert) error

	// Cancel stops the pending alert with the given ID, if any.
	Cancel(id uuid.UUID)

	// CancelAll stops every pending alert.
	CancelAll()
}
