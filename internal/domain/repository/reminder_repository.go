package repository

import (
	"context"
	"errors"
	"time"

	"gatherly/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrReminderNotFound is returned when a reminder record is not found.
var ErrReminderNotFound = errors.New("reminder not found")

// ReminderRepository defines the interface for per-user reminder records.
type ReminderRepository interface {
	// Create persists a reminder record under the user.
	Create(ctx context.Context, reminder *entity.Reminder) error

	// FindByUser retrieves all reminder records of a user ordered by trigger
	// time ascending.
	FindByUser(ctx context.Context, userID uuid.UUID) ([]*entity.Reminder, error)

	// FindDue retrieves reminders across all users whose trigger time has
	// passed and that have not been dispatched yet. Used by the cron
	// catch-up dispatcher after a restart.
	FindDue(ctx context.Context, now time.Time) ([]*entity.Reminder, error)

	// MarkRead sets the read flag on the given reminder IDs.
	MarkRead(ctx context.Context, userID uuid.UUID, ids []uuid.UUID) error

	// MarkDispatched records the dispatch time of a reminder.
	MarkDispatched(ctx context.Context, userID uuid.UUID, id uuid.UUID, at time.Time) error

	// Delete removes a reminder record by ID. Deleting a missing record is
	// not an error.
	Delete(ctx context.Context, userID uuid.UUID, id uuid.UUID) error

	// DeleteExpired removes read reminders across all users whose trigger
	// time is before the cutoff. Returns the number of records removed.
	DeleteExpired(ctx context.Context, cutoff time.Time) (int, error)
}
