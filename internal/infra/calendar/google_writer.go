package calendar

import (
	"context"
	"log/slog"
	"time"

	"gatherly/internal/domain/service"

	"github.com/pkg/errors"
	"google.golang.org/api/calendar/v3"
	"google.golang.org/api/option"
)

// googleWriter implements CalendarWriter against the Google Calendar API
// with a service account.
type googleWriter struct {
	service    *calendar.Service
	calendarID string
	logger     *slog.Logger
}

// NewGoogleWriter creates a Google Calendar writer.
func NewGoogleWriter(ctx context.Context, calendarID, credentialsPath string, logger *slog.Logger) (service.CalendarWriter, error) {
	var opts []option.ClientOption
	if credentialsPath != "" {
		opts = append(opts, option.WithCredentialsFile(credentialsPath))
	}

	svc, err := calendar.NewService(ctx, opts...)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create calendar service")
	}

	return &googleWriter{
		service:    svc,
		calendarID: calendarID,
		logger:     logger,
	}, nil
}

// Insert writes the entry to the configured Google calendar.
func (w *googleWriter) Insert(ctx context.Context, entry *service.CalendarEntry) error {
	event := &calendar.Event{
		Summary:     entry.Title,
		Description: entry.Notes,
		Location:    entry.Location,
		Start: &calendar.EventDateTime{
			DateTime: entry.StartsAt.Format(time.RFC3339),
		},
		End: &calendar.EventDateTime{
			DateTime: entry.EndsAt.Format(time.RFC3339),
		},
	}

	created, err := w.service.Events.Insert(w.calendarID, event).Context(ctx).Do()
	if err != nil {
		return errors.Wrap(err, "failed to insert calendar event")
	}

	w.logger.Info("[GoogleCalendar] Event inserted",
		slog.String("title", entry.Title),
		slog.String("google_event_id", created.Id),
	)

	return nil
}
