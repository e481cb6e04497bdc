// Package scheduler arms one-shot reminder alerts on in-process timers.
// Restart recovery is handled separately by the cron catch-up dispatcher,
// which re-sends anything that was pending when the process died.
package scheduler

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"gatherly/internal/domain/lifecycle"
	"gatherly/internal/domain/repository"
	"gatherly/internal/domain/service"

	"github.com/google/uuid"
	"go.uber.org/fx"
)

// Params defines the required parameters
type Params struct {
	fx.In
	fx.Lifecycle

	Logger       *slog.Logger
	DeviceRepo   repository.DeviceRepository
	ReminderRepo repository.ReminderRepository
	PushSender   service.PushSender
}

type timerScheduler struct {
	mu     sync.Mutex
	timers map[uuid.UUID]*time.Timer

	logger       *slog.Logger
	deviceRepo   repository.DeviceRepository
	reminderRepo repository.ReminderRepository
	pushSender   service.PushSender
}

// New creates the timer-backed alert scheduler. Pending alerts are
// cancelled on shutdown.
func New(params Params) service.AlertScheduler {
	scheduler := &timerScheduler{
		timers:       make(map[uuid.UUID]*time.Timer),
		logger:       params.Logger,
		deviceRepo:   params.DeviceRepo,
		reminderRepo: params.ReminderRepo,
		pushSender:   params.PushSender,
	}

	params.Append(fx.Hook{
		OnStop: func(_ context.Context) error {
			scheduler.CancelAll()

			return nil
		},
	})

	return scheduler
}

// Schedule arms an alert. An already-pending alert with the same ID is
// replaced; past fire times fire immediately.
func (s *timerScheduler) Schedule(_ context.Context, alert *service.Alert) error {
	fireAt := alert.FireAt.Truncate(time.Minute)
	delay := time.Until(fireAt)
	if delay < 0 {
		delay = 0
	}

	// Copy so the captured alert is immune to caller mutation.
	pending := *alert

	s.mu.Lock()
	defer s.mu.Unlock()

	if existing, ok := s.timers[pending.ID]; ok {
		existing.Stop()
	}
	s.timers[pending.ID] = time.AfterFunc(delay, func() {
		s.fire(&pending)
	})

	return nil
}

// Cancel stops the pending alert with the given ID, if any.
func (s *timerScheduler) Cancel(id uuid.UUID) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if timer, ok := s.timers[id]; ok {
		timer.Stop()
		delete(s.timers, id)
	}
}

// CancelAll stops every pending alert.
func (s *timerScheduler) CancelAll() {
	s.mu.Lock()
	defer s.mu.Unlock()

	for id, timer := range s.timers {
		timer.Stop()
		delete(s.timers, id)
	}
}

// fire pushes the alert to every device of the owning user and marks the
// backing reminder record dispatched.
func (s *timerScheduler) fire(alert *service.Alert) {
	s.mu.Lock()
	delete(s.timers, alert.ID)
	s.mu.Unlock()

	ctx, cancel := context.WithTimeout(context.Background(), lifecycle.DefaultTimeout)
	defer cancel()

	devices, err := s.deviceRepo.FindByUser(ctx, alert.UserID)
	if err != nil {
		s.logger.Error("failed to resolve devices for alert",
			slog.String("alertId", alert.ID.String()),
			slog.Any("error", err))

		return
	}

	tokens := make([]string, 0, len(devices))
	for _, device := range devices {
		tokens = append(tokens, device.FCMToken)
	}

	successCount, failureCount, invalidTokens, err := s.pushSender.SendBatch(ctx, tokens, alert.Title, alert.Body, map[string]string{
		"reminderId": alert.ID.String(),
	})
	if err != nil {
		s.logger.Error("failed to push alert",
			slog.String("alertId", alert.ID.String()),
			slog.Any("error", err))

		return
	}
	if failureCount > 0 || len(invalidTokens) > 0 {
		s.logger.Warn("alert push partially failed",
			slog.String("alertId", alert.ID.String()),
			slog.Int("success", successCount),
			slog.Int("failure", failureCount),
			slog.Int("invalidTokens", len(invalidTokens)))
	}

	if err := s.reminderRepo.MarkDispatched(ctx, alert.UserID, alert.ID, time.Now()); err != nil {
		s.logger.Error("failed to mark reminder dispatched",
			slog.String("alertId", alert.ID.String()),
			slog.Any("error", err))
	}
}
