package usecase

import (
	"context"

	"gatherly/internal/domain/entity"

	"github.com/google/uuid"
)

// --- Output DTOs ---

// ReminderFeedOutput is the user's visible reminder feed plus the unread
// badge count.
type ReminderFeedOutput struct {
	Reminders []*entity.Reminder
	Unread    int
}

// ReminderUsecase defines the interface for the reminder feed and its
// maintenance jobs.
type ReminderUsecase interface {
	// List returns the reminders whose trigger time has passed, oldest
	// first, along with the unread count. Read reminders older than the
	// retention window are purged as a side effect. Listing does NOT mark
	// anything read; that is the explicit Acknowledge call.
	List(ctx context.Context, userID uuid.UUID) (*ReminderFeedOutput, error)

	// Acknowledge marks the given reminders read.
	Acknowledge(ctx context.Context, userID uuid.UUID, ids []uuid.UUID) error

	// AcknowledgeAll marks every visible reminder read.
	AcknowledgeAll(ctx context.Context, userID uuid.UUID) error

	// DispatchDue pushes reminders whose trigger has passed but were never
	// dispatched, e.g. because the process restarted while their timer was
	// pending. Returns the number dispatched.
	DispatchDue(ctx context.Context) (int, error)

	// PurgeExpired removes read reminders past the retention window across
	// all users. Returns the number removed.
	PurgeExpired(ctx context.Context) (int, error)
}
