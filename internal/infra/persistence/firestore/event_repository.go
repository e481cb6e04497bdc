package firestore

import (
	"context"
	"time"

	"gatherly/internal/dateparse"
	"gatherly/internal/domain/entity"
	"gatherly/internal/domain/repository"
	"gatherly/internal/infra/persistence/model"

	"cloud.google.com/go/firestore"
	"github.com/google/uuid"
	"github.com/pkg/errors"
	"google.golang.org/api/iterator"
)

// eventRepository implements the repository.EventRepository interface.
type eventRepository struct {
	client *firestore.Client
}

// NewEventRepository is the constructor for eventRepository.
func NewEventRepository(client *firestore.Client) repository.EventRepository {
	return &eventRepository{
		client: client,
	}
}

// FindAll retrieves every event in the feed. Documents whose date cannot be
// interpreted are skipped rather than failing the whole listing, matching
// how the feed has always been consumed.
func (repo *eventRepository) FindAll(ctx context.Context) ([]*entity.Event, error) {
	iter := repo.client.Collection(collEvents).Documents(ctx)
	defer iter.Stop()

	events := make([]*entity.Event, 0)
	for {
		doc, err := iter.Next()
		if errors.Is(err, iterator.Done) {
			break
		}
		if err != nil {
			return nil, errors.Wrap(err, "failed to list events")
		}

		event, err := toEventDomain(doc)
		if err != nil {
			// Bad date or malformed ID; skip the entry.
			continue
		}
		events = append(events, event)
	}

	return events, nil
}

// FindByID retrieves an event by its unique ID.
func (repo *eventRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Event, error) {
	doc, err := repo.client.Collection(collEvents).Doc(id.String()).Get(ctx)
	if err != nil {
		if isNotFound(err) {
			return nil, repository.ErrEventNotFound
		}

		return nil, errors.Wrap(err, "failed to find event by ID")
	}

	event, err := toEventDomain(doc)
	if err != nil {
		return nil, err
	}

	return event, nil
}

// --- Mapper Functions ---

// toEventDomain converts a Firestore event document to a domain Event entity.
func toEventDomain(doc *firestore.DocumentSnapshot) (*entity.Event, error) {
	var eventM model.EventModel
	if err := doc.DataTo(&eventM); err != nil {
		return nil, errors.Wrap(err, "failed to decode event document")
	}

	id, err := uuid.Parse(doc.Ref.ID)
	if err != nil {
		return nil, errors.Wrap(err, "event document ID is not a UUID")
	}

	startsAt, err := parseEventDate(eventM.Date)
	if err != nil {
		return nil, err
	}

	return &entity.Event{
		ID:          id,
		Title:       eventM.Title,
		Description: eventM.Description,
		Location:    eventM.Location,
		StartsAt:    startsAt,
		CreatedAt:   eventM.CreatedAt,
	}, nil
}

// parseEventDate interprets the date field, which the external pipeline
// writes either as a proper Timestamp or as free text.
func parseEventDate(v any) (time.Time, error) {
	switch date := v.(type) {
	case time.Time:
		return date, nil
	case string:
		parsed, err := dateparse.Parse(date)
		if err != nil {
			return time.Time{}, repository.ErrEventDateInvalid
		}

		return parsed, nil
	default:
		return time.Time{}, repository.ErrEventDateInvalid
	}
}
