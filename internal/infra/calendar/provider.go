// Package calendar writes joined events into a backing calendar. Insertion
// is best-effort from the caller's point of view; a failure is logged and
// never blocks the join.
package calendar

import (
	"context"
	"log/slog"

	"gatherly/config"
	"gatherly/internal/domain/constants"
	"gatherly/internal/domain/service"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// noopWriter is a no-op implementation when no calendar is configured
type noopWriter struct {
	logger *slog.Logger
}

func (w *noopWriter) Insert(_ context.Context, entry *service.CalendarEntry) error {
	w.logger.Debug("[NoopCalendar] Calendar insertion disabled, skipping",
		slog.String("title", entry.Title),
	)

	return nil
}

// WriterParams holds dependencies for CalendarWriter, injected by Fx
type WriterParams struct {
	fx.In

	Ctx    context.Context
	Config *config.Config
	Logger *slog.Logger
}

// NewCalendarWriter creates a CalendarWriter based on configuration
func NewCalendarWriter(params WriterParams) (service.CalendarWriter, error) {
	cfg := params.Config.Calendar
	logger := params.Logger

	// If no calendar is configured, return a no-op writer
	if cfg == nil || cfg.Provider == "" {
		logger.Info("Calendar not configured, using no-op writer")

		return &noopWriter{logger: logger}, nil
	}

	switch cfg.Provider {
	case constants.CalendarProviderGoogle:
		calendarID := cfg.CalendarID
		if calendarID == "" {
			calendarID = "primary"
		}
		logger.Info("Using Google Calendar writer",
			slog.String("calendar_id", calendarID),
		)

		return NewGoogleWriter(params.Ctx, calendarID, cfg.CredentialsPath, logger)

	case constants.CalendarProviderICS:
		if cfg.OutputDir == "" {
			return nil, errors.New("output directory is required for ics provider")
		}
		logger.Info("Using ICS file calendar writer",
			slog.String("output_dir", cfg.OutputDir),
		)

		return NewICSWriter(cfg.OutputDir, logger)

	default:
		return nil, errors.Errorf("unknown calendar provider: %s", cfg.Provider)
	}
}

// Module provides the calendar FX module
//
//nolint:gochecknoglobals
var Module = fx.Options(
	fx.Provide(NewCalendarWriter),
)
