package service

import (
	"context"
	"time"
)

// CalendarEntry is the payload handed to a calendar backend on join.
type CalendarEntry struct {
	Title    string
	Notes    string
	Location string
	StartsAt time.Time
	EndsAt   time.Time
}

// CalendarWriter inserts one calendar entry per joined event. Insertion is
// best-effort: callers log failures and move on, the join itself never
// fails because of the calendar.
type CalendarWriter interface {
	// Insert writes the entry to the backing calendar.
	Insert(ctx context.Context, entry *CalendarEntry) error
}
