package service

import (
	"context"
	"time"
)

// Participation activity actions.
const (
	ActivityJoined    = "participation.joined"
	ActivityCancelled = "participation.cancelled"
)

// ParticipationActivity is an integration event emitted when a user joins
// or cancels an event.
type ParticipationActivity struct {
	RequestID  string    `json:"request_id,omitempty"` // For distributed tracing.
	Action     string    `json:"action"`               // ActivityJoined or ActivityCancelled.
	EventID    string    `json:"event_id"`
	EventTitle string    `json:"event_title"`
	UserID     string    `json:"user_id"`
	OccurredAt time.Time `json:"occurred_at"`
}

// ActivityPublisher defines the interface for publishing participation
// activity to a message queue for downstream consumers (analytics,
// capacity tracking).
type ActivityPublisher interface {
	// PublishParticipationActivity publishes an activity event for async
	// processing.
	PublishParticipationActivity(ctx context.Context, activity *ParticipationActivity) error

	// Close releases any resources held by the publisher.
	Close() error
}
