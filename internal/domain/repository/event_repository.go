// Package repository defines the interfaces for the persistence layer.
package repository

import (
	"context"
	"errors"

	"gatherly/internal/domain/entity"

	"github.com/google/uuid"
)

// Domain-specific errors for event persistence.
var (
	// ErrEventNotFound is returned when an event is not found.
	ErrEventNotFound = errors.New("event not found")
	// ErrEventDateInvalid is returned when an event's stored date cannot be
	// interpreted as a point in time under any supported format.
	ErrEventDateInvalid = errors.New("event date is not parseable")
)

// EventRepository defines the interface for event-related store operations.
// The event feed is written by an external pipeline; this service reads it.
type EventRepository interface {
	// FindAll retrieves every event in the feed. Events whose stored date
	// cannot be parsed are skipped, matching the source feed behavior.
	FindAll(ctx context.Context) ([]*entity.Event, error)

	// FindByID retrieves an event by its unique ID. Returns
	// ErrEventDateInvalid when the record exists but its date is unusable.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Event, error)
}
