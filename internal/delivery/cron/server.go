// Package cron runs the scheduled reminder jobs: the dispatch catch-up
// sweep and the retention purge.
package cron

import (
	"context"
	"log/slog"

	"gatherly/config"
	"gatherly/internal/delivery"
	"gatherly/internal/domain/lifecycle"
	"gatherly/internal/usecase"

	"github.com/pkg/errors"
	"github.com/robfig/cron/v3"
	"go.uber.org/fx"
)

// ServerParams holds dependencies for the cron server
type ServerParams struct {
	fx.In
	fx.Lifecycle

	Config     *config.Config
	Logger     *slog.Logger
	ReminderUC usecase.ReminderUsecase
}

type cronServer struct {
	cfg        *config.Config
	logger     *slog.Logger
	cron       *cron.Cron
	reminderUC usecase.ReminderUsecase
}

// NewServer builds the cron delivery. Jobs are registered in Serve so a
// schedule typo fails startup instead of silently never firing.
func NewServer(params ServerParams) (delivery.Delivery, error) {
	server := &cronServer{
		cfg:        params.Config,
		logger:     params.Logger,
		cron:       cron.New(),
		reminderUC: params.ReminderUC,
	}

	params.Append(fx.Hook{
		OnStop: server.stop,
	})

	return server, nil
}

func (s *cronServer) Serve(ctx context.Context) error {
	if _, err := s.cron.AddFunc(s.cfg.Reminder.DispatchSchedule, s.dispatchDue); err != nil {
		return errors.Wrap(err, "failed to register dispatch job")
	}
	if _, err := s.cron.AddFunc(s.cfg.Reminder.PurgeSchedule, s.purgeExpired); err != nil {
		return errors.Wrap(err, "failed to register purge job")
	}

	s.logger.Info("Starting cron server",
		slog.String("dispatchSchedule", s.cfg.Reminder.DispatchSchedule),
		slog.String("purgeSchedule", s.cfg.Reminder.PurgeSchedule))
	s.cron.Run()

	return nil
}

// dispatchDue pushes reminders whose trigger time passed while no alert was
// pending, e.g. after a process restart.
func (s *cronServer) dispatchDue() {
	ctx, cancel := context.WithTimeout(context.Background(), lifecycle.DefaultTimeout)
	defer cancel()

	dispatched, err := s.reminderUC.DispatchDue(ctx)
	if err != nil {
		s.logger.Error("reminder dispatch sweep failed", slog.Any("error", err))

		return
	}
	if dispatched > 0 {
		s.logger.Info("dispatched overdue reminders", slog.Int("count", dispatched))
	}
}

// purgeExpired removes read reminders past the retention window.
func (s *cronServer) purgeExpired() {
	ctx, cancel := context.WithTimeout(context.Background(), lifecycle.DefaultTimeout)
	defer cancel()

	removed, err := s.reminderUC.PurgeExpired(ctx)
	if err != nil {
		s.logger.Error("reminder purge failed", slog.Any("error", err))

		return
	}
	if removed > 0 {
		s.logger.Info("purged expired reminders", slog.Int("count", removed))
	}
}

func (s *cronServer) stop(ctx context.Context) error {
	s.logger.Info("Shutting down cron server")

	stopCtx := s.cron.Stop()
	select {
	case <-stopCtx.Done():
	case <-ctx.Done():
	}

	return nil
}
