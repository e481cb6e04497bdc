package usecase

import (
	"context"

	"gatherly/internal/domain/entity"

	"github.com/google/uuid"
)

// --- Input DTOs ---

// ListEventsInput defines the optional filters for event listing.
type ListEventsInput struct {
	// Query is a free-text filter matched against title and description.
	Query string
	// Location filters events by venue or city name.
	Location string
}

// EventUsecase defines the interface for event feed operations.
type EventUsecase interface {
	// List returns the event feed, optionally filtered.
	List(ctx context.Context, input ListEventsInput) ([]*entity.Event, error)

	// Get returns a single event by ID.
	Get(ctx context.Context, id uuid.UUID) (*entity.Event, error)

	// ShareQR renders a PNG QR code that embeds the event ID.
	ShareQR(ctx context.Context, id uuid.UUID) ([]byte, error)
}
