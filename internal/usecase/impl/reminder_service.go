package impl

import (
	"context"
	"log/slog"
	"time"

	deliverycontext "gatherly/internal/delivery/context"
	"gatherly/internal/domain/entity"
	"gatherly/internal/domain/repository"
	"gatherly/internal/domain/service"
	"gatherly/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// reminderRetention is how long read reminders stay around past their
// trigger time before the sweep removes them.
const reminderRetention = 3 * 24 * time.Hour

// reminderService implements the ReminderUsecase interface.
type reminderService struct {
	reminderRepo repository.ReminderRepository
	deviceRepo   repository.DeviceRepository
	pushSender   service.PushSender
	logger       *slog.Logger
}

// ReminderServiceParams holds dependencies for ReminderService, injected by Fx.
type ReminderServiceParams struct {
	fx.In

	ReminderRepo repository.ReminderRepository
	DeviceRepo   repository.DeviceRepository
	PushSender   service.PushSender
	Logger       *slog.Logger
}

// NewReminderService is the constructor for reminderService.
func NewReminderService(params ReminderServiceParams) usecase.ReminderUsecase {
	return &reminderService{
		reminderRepo: params.ReminderRepo,
		deviceRepo:   params.DeviceRepo,
		pushSender:   params.PushSender,
		logger:       params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *reminderService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// List returns the visible reminder feed and the unread badge count,
// purging records past the retention window on the way.
func (srv *reminderService) List(ctx context.Context, userID uuid.UUID) (*usecase.ReminderFeedOutput, error) {
	reminders, err := srv.reminderRepo.FindByUser(ctx, userID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load reminders")
	}

	now := time.Now()
	visible := make([]*entity.Reminder, 0, len(reminders))
	unread := 0

	for _, reminder := range reminders {
		if reminder.Expired(now) {
			if err := srv.reminderRepo.Delete(ctx, userID, reminder.ID); err != nil {
				srv.log(ctx).Warn("failed to purge expired reminder",
					slog.String("reminderId", reminder.ID.String()),
					slog.Any("error", err))
			}

			continue
		}

		// Future reminders stay hidden until their trigger time passes.
		if !reminder.Due(now) {
			continue
		}

		visible = append(visible, reminder)
		if !reminder.IsRead {
			unread++
		}
	}

	return &usecase.ReminderFeedOutput{
		Reminders: visible,
		Unread:    unread,
	}, nil
}

// Acknowledge marks the given reminders read.
func (srv *reminderService) Acknowledge(ctx context.Context, userID uuid.UUID, ids []uuid.UUID) error {
	if len(ids) == 0 {
		return nil
	}

	if err := srv.reminderRepo.MarkRead(ctx, userID, ids); err != nil {
		return errors.Wrap(err, "failed to acknowledge reminders")
	}

	return nil
}

// AcknowledgeAll marks every visible unread reminder read.
func (srv *reminderService) AcknowledgeAll(ctx context.Context, userID uuid.UUID) error {
	reminders, err := srv.reminderRepo.FindByUser(ctx, userID)
	if err != nil {
		return errors.Wrap(err, "failed to load reminders for acknowledge")
	}

	now := time.Now()
	ids := make([]uuid.UUID, 0, len(reminders))
	for _, reminder := range reminders {
		if reminder.Due(now) && !reminder.IsRead {
			ids = append(ids, reminder.ID)
		}
	}
	if len(ids) == 0 {
		return nil
	}

	if err := srv.reminderRepo.MarkRead(ctx, userID, ids); err != nil {
		return errors.Wrap(err, "failed to acknowledge all reminders")
	}

	return nil
}

// DispatchDue pushes reminders whose trigger passed without a dispatch,
// which happens when the process restarts while alerts are pending.
// Failures are per-reminder; one bad record does not stall the rest.
func (srv *reminderService) DispatchDue(ctx context.Context) (int, error) {
	due, err := srv.reminderRepo.FindDue(ctx, time.Now())
	if err != nil {
		return 0, errors.Wrap(err, "failed to find due reminders")
	}

	dispatched := 0
	for _, reminder := range due {
		if err := srv.dispatch(ctx, reminder); err != nil {
			srv.log(ctx).Error("failed to dispatch reminder",
				slog.String("reminderId", reminder.ID.String()),
				slog.Any("error", err))

			continue
		}
		dispatched++
	}

	return dispatched, nil
}

func (srv *reminderService) dispatch(ctx context.Context, reminder *entity.Reminder) error {
	devices, err := srv.deviceRepo.FindByUser(ctx, reminder.UserID)
	if err != nil {
		return errors.Wrap(err, "failed to resolve devices")
	}

	tokens := make([]string, 0, len(devices))
	for _, device := range devices {
		tokens = append(tokens, device.FCMToken)
	}

	if len(tokens) > 0 {
		_, failureCount, _, err := srv.pushSender.SendBatch(ctx, tokens, reminder.Title, reminder.Message, map[string]string{
			"reminderId": reminder.ID.String(),
		})
		if err != nil {
			return errors.Wrap(err, "failed to push reminder")
		}
		if failureCount > 0 {
			srv.log(ctx).Warn("reminder push partially failed",
				slog.String("reminderId", reminder.ID.String()),
				slog.Int("failure", failureCount))
		}
	}

	// A user without devices still gets the reminder marked dispatched;
	// the feed remains the fallback surface.
	if err := srv.reminderRepo.MarkDispatched(ctx, reminder.UserID, reminder.ID, time.Now()); err != nil {
		return errors.Wrap(err, "failed to mark reminder dispatched")
	}

	return nil
}

// PurgeExpired removes read reminders past the retention window across all users.
func (srv *reminderService) PurgeExpired(ctx context.Context) (int, error) {
	cutoff := time.Now().Add(-reminderRetention)

	removed, err := srv.reminderRepo.DeleteExpired(ctx, cutoff)
	if err != nil {
		return removed, errors.Wrap(err, "failed to purge expired reminders")
	}

	return removed, nil
}
