package firestore

import (
	"context"

	"gatherly/internal/domain/entity"
	domainerrors "gatherly/internal/domain/errors"
	"gatherly/internal/domain/repository"
	"gatherly/internal/infra/persistence/model"

	"cloud.google.com/go/firestore"
	"github.com/google/uuid"
	"github.com/pkg/errors"
	"google.golang.org/api/iterator"
)

// participationRepository implements the repository.ParticipationRepository interface.
type participationRepository struct {
	client *firestore.Client
}

// NewParticipationRepository is the constructor for participationRepository.
func NewParticipationRepository(client *firestore.Client) repository.ParticipationRepository {
	return &participationRepository{
		client: client,
	}
}

// Create persists a participation under its deterministic ID. The
// conditional write makes a concurrent double-join lose cleanly instead of
// producing a duplicate row.
func (repo *participationRepository) Create(ctx context.Context, participation *entity.Participation) error {
	ref := repo.client.Collection(collParticipations).Doc(participation.ID.String())

	if _, err := ref.Create(ctx, fromParticipationDomain(participation)); err != nil {
		if isAlreadyExists(err) {
			return repository.ErrParticipationExists
		}

		return domainerrors.NewStoreExecuteError(err, "failed to create participation")
	}

	return nil
}

// FindByEventAndEmail retrieves participations matching both the event and
// the user email. Legacy rows predating deterministic IDs may yield more
// than one match.
func (repo *participationRepository) FindByEventAndEmail(ctx context.Context, eventID uuid.UUID, email string) ([]*entity.Participation, error) {
	iter := repo.client.Collection(collParticipations).
		Where("eventId", "==", eventID.String()).
		Where("email", "==", email).
		Documents(ctx)

	return repo.collect(iter, "failed to find participations by event and email")
}

// FindByEvent retrieves all participations for an event, most recent join first.
func (repo *participationRepository) FindByEvent(ctx context.Context, eventID uuid.UUID) ([]*entity.Participation, error) {
	iter := repo.client.Collection(collParticipations).
		Where("eventId", "==", eventID.String()).
		OrderBy("joinedAt", firestore.Desc).
		Documents(ctx)

	return repo.collect(iter, "failed to find participations by event")
}

// FindByEmail retrieves all participations of a user, most recent join first.
func (repo *participationRepository) FindByEmail(ctx context.Context, email string) ([]*entity.Participation, error) {
	iter := repo.client.Collection(collParticipations).
		Where("email", "==", email).
		OrderBy("joinedAt", firestore.Desc).
		Documents(ctx)

	return repo.collect(iter, "failed to find participations by email")
}

// Delete removes a participation by ID. Firestore deletes are idempotent,
// so a missing row is not an error.
func (repo *participationRepository) Delete(ctx context.Context, id uuid.UUID) error {
	if _, err := repo.client.Collection(collParticipations).Doc(id.String()).Delete(ctx); err != nil {
		return domainerrors.NewStoreExecuteError(err, "failed to delete participation")
	}

	return nil
}

func (repo *participationRepository) collect(iter *firestore.DocumentIterator, failMsg string) ([]*entity.Participation, error) {
	defer iter.Stop()

	participations := make([]*entity.Participation, 0)
	for {
		doc, err := iter.Next()
		if errors.Is(err, iterator.Done) {
			break
		}
		if err != nil {
			return nil, errors.Wrap(err, failMsg)
		}

		participation, err := toParticipationDomain(doc)
		if err != nil {
			return nil, err
		}
		participations = append(participations, participation)
	}

	return participations, nil
}

// --- Mapper Functions ---

// toParticipationDomain converts a Firestore participation document to a
// domain Participation entity.
func toParticipationDomain(doc *firestore.DocumentSnapshot) (*entity.Participation, error) {
	var participationM model.ParticipationModel
	if err := doc.DataTo(&participationM); err != nil {
		return nil, errors.Wrap(err, "failed to decode participation document")
	}

	id, err := uuid.Parse(doc.Ref.ID)
	if err != nil {
		return nil, errors.Wrap(err, "participation document ID is not a UUID")
	}

	eventID, err := uuid.Parse(participationM.EventID)
	if err != nil {
		return nil, errors.Wrap(err, "participation eventId is not a UUID")
	}

	return &entity.Participation{
		ID:          id,
		EventID:     eventID,
		Title:       participationM.Title,
		Description: participationM.Description,
		Location:    participationM.Location,
		StartsAt:    participationM.StartDate,
		EndsAt:      participationM.EndDate,
		Email:       participationM.Email,
		JoinedAt:    participationM.JoinedAt,
	}, nil
}

// fromParticipationDomain converts a domain Participation entity to a
// Firestore participation document.
func fromParticipationDomain(data *entity.Participation) *model.ParticipationModel {
	if data == nil {
		return nil
	}

	return &model.ParticipationModel{
		EventID:     data.EventID.String(),
		Title:       data.Title,
		Description: data.Description,
		Location:    data.Location,
		StartDate:   data.StartsAt,
		EndDate:     data.EndsAt,
		Email:       data.Email,
		JoinedAt:    data.JoinedAt,
	}
}
