package repository

import (
	"context"
	"errors"

	"gatherly/internal/domain/entity"

	"github.com/google/uuid"
)

// Domain-specific errors for participation persistence.
var (
	// ErrParticipationNotFound is returned when a participation is not found.
	ErrParticipationNotFound = errors.New("participation not found")
	// ErrParticipationExists is returned by Create when a participation with
	// the same ID already exists. The toggle flow relies on this to resolve
	// a double-join race to a single row.
	ErrParticipationExists = errors.New("participation already exists")
)

// ParticipationRepository defines the interface for RSVP store operations.
type ParticipationRepository interface {
	// Create persists a participation under its deterministic ID using a
	// conditional write: it fails with ErrParticipationExists instead of
	// overwriting.
	Create(ctx context.Context, participation *entity.Participation) error

	// FindByEventAndEmail retrieves participations matching both the event
	// and the user email. The store has no compound unique index, so this is
	// an equality-filter scan and may return legacy duplicates.
	FindByEventAndEmail(ctx context.Context, eventID uuid.UUID, email string) ([]*entity.Participation, error)

	// FindByEvent retrieves all participations for an event, most recent
	// join first.
	FindByEvent(ctx context.Context, eventID uuid.UUID) ([]*entity.Participation, error)

	// FindByEmail retrieves all participations of a user, most recent join
	// first.
	FindByEmail(ctx context.Context, email string) ([]*entity.Participation, error)

	// Delete removes a participation by ID. Deleting a missing row is not an
	// error.
	Delete(ctx context.Context, id uuid.UUID) error
}
