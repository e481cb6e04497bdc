package calendar

import (
	"context"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"gatherly/internal/domain/service"

	"github.com/emersion/go-ical"
	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// icsWriter implements CalendarWriter by exporting one iCalendar file per
// entry into a local directory. Useful for development and for users who
// import events by hand.
type icsWriter struct {
	outputDir string
	logger    *slog.Logger
}

// NewICSWriter creates the ICS file writer, creating the output directory
// if needed.
func NewICSWriter(outputDir string, logger *slog.Logger) (service.CalendarWriter, error) {
	if err := os.MkdirAll(outputDir, 0o755); err != nil {
		return nil, errors.Wrap(err, "failed to create ics output directory")
	}

	return &icsWriter{
		outputDir: outputDir,
		logger:    logger,
	}, nil
}

// Insert writes the entry as a single-event .ics file.
func (w *icsWriter) Insert(_ context.Context, entry *service.CalendarEntry) error {
	uid := uuid.New().String()

	ve := ical.NewComponent(ical.CompEvent)
	ve.Props.SetText(ical.PropUID, uid)
	ve.Props.SetText(ical.PropSummary, entry.Title)
	ve.Props.SetDateTime(ical.PropDateTimeStamp, time.Now().UTC())
	ve.Props.SetDateTime(ical.PropDateTimeStart, entry.StartsAt)
	ve.Props.SetDateTime(ical.PropDateTimeEnd, entry.EndsAt)
	if entry.Notes != "" {
		ve.Props.SetText(ical.PropDescription, entry.Notes)
	}
	if entry.Location != "" {
		ve.Props.SetText(ical.PropLocation, entry.Location)
	}

	cal := ical.NewCalendar()
	cal.Props.SetText(ical.PropVersion, "2.0")
	cal.Props.SetText(ical.PropProductID, "-//gatherly//EN")
	cal.Children = append(cal.Children, ve)

	path := filepath.Join(w.outputDir, uid+".ics")
	file, err := os.Create(path)
	if err != nil {
		return errors.Wrap(err, "failed to create ics file")
	}
	defer file.Close()

	if err := ical.NewEncoder(file).Encode(cal); err != nil {
		return errors.Wrap(err, "failed to encode ics file")
	}

	w.logger.Info("[ICSCalendar] Event exported",
		slog.String("title", entry.Title),
		slog.String("path", path),
	)

	return nil
}
