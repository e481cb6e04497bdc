// Package usecase contains the application-specific business rules.
// It orchestrates the domain layer to perform tasks.
package usecase

import (
	"context"

	"gatherly/internal/domain/entity"

	"github.com/google/uuid"
)

// ParticipationUsecase defines the interface for RSVP business operations.
// This is the contract that the delivery layer (e.g., API handlers) will depend on.
type ParticipationUsecase interface {
	// Toggle joins the user to the event, or cancels an existing
	// participation. Returns the resulting state: true when the user is
	// joined after the call.
	//
	// Joining creates the participation, a reminder record, a scheduled
	// alert one hour before the event, and a best-effort calendar entry.
	// Cancelling removes the participation, its reminder record, and only
	// its own pending alert.
	Toggle(ctx context.Context, eventID, userID uuid.UUID) (joined bool, err error)

	// JoinState reports whether the user currently participates in the
	// event. Recomputed from the store on every call.
	JoinState(ctx context.Context, eventID, userID uuid.UUID) (bool, error)

	// ListParticipants returns all participations of an event, most recent
	// join first.
	ListParticipants(ctx context.Context, eventID uuid.UUID) ([]*entity.Participation, error)

	// ListUserParticipations returns the user's participations, most recent
	// join first.
	ListUserParticipations(ctx context.Context, userID uuid.UUID) ([]*entity.Participation, error)
}
