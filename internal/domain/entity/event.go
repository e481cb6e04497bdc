// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// Event represents a discoverable happening users can join.
// Events are created by an external publishing pipeline and are read-only
// to this service, except for seeding in development.
type Event struct {
	ID          uuid.UUID `json:"id"`          // The Global Unique Identifier (GUID) for the event.
	Title       string    `json:"title"`       // Display title of the event. Historically doubled as the lookup key; correlation now uses ID.
	Description string    `json:"description"` // Free-text description shown on the detail screen.
	Location    string    `json:"location"`    // Human-readable venue or city name.
	StartsAt    time.Time `json:"starts_at"`   // Wall-clock start of the event.
	CreatedAt   time.Time `json:"created_at"`  // Timestamp of when this record was created.
}
