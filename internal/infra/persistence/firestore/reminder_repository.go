package firestore

import (
	"context"
	"time"

	"gatherly/internal/domain/entity"
	domainerrors "gatherly/internal/domain/errors"
	"gatherly/internal/domain/repository"
	"gatherly/internal/infra/persistence/model"

	"cloud.google.com/go/firestore"
	"github.com/google/uuid"
	"github.com/pkg/errors"
	"google.golang.org/api/iterator"
)

// reminderRepository implements the repository.ReminderRepository interface.
type reminderRepository struct {
	client *firestore.Client
}

// NewReminderRepository is the constructor for reminderRepository.
func NewReminderRepository(client *firestore.Client) repository.ReminderRepository {
	return &reminderRepository{
		client: client,
	}
}

func (repo *reminderRepository) reminders(userID uuid.UUID) *firestore.CollectionRef {
	return repo.client.Collection(collUsers).Doc(userID.String()).Collection(subcollReminders)
}

// Create persists a reminder record under the user. A re-join after cancel
// reuses the same deterministic ID, so this is a plain upsert.
func (repo *reminderRepository) Create(ctx context.Context, reminder *entity.Reminder) error {
	ref := repo.reminders(reminder.UserID).Doc(reminder.ID.String())

	if _, err := ref.Set(ctx, fromReminderDomain(reminder)); err != nil {
		return domainerrors.NewStoreExecuteError(err, "failed to create reminder")
	}

	return nil
}

// FindByUser retrieves all reminder records of a user ordered by trigger
// time ascending.
func (repo *reminderRepository) FindByUser(ctx context.Context, userID uuid.UUID) ([]*entity.Reminder, error) {
	iter := repo.reminders(userID).
		OrderBy("triggerDate", firestore.Asc).
		Documents(ctx)
	defer iter.Stop()

	reminders := make([]*entity.Reminder, 0)
	for {
		doc, err := iter.Next()
		if errors.Is(err, iterator.Done) {
			break
		}
		if err != nil {
			return nil, errors.Wrap(err, "failed to find reminders by user")
		}

		reminder, err := toReminderDomain(doc, userID)
		if err != nil {
			return nil, err
		}
		reminders = append(reminders, reminder)
	}

	return reminders, nil
}

// FindDue retrieves undispatched reminders across all users whose trigger
// time has passed. Runs as a collection group query over every user's
// notifications subcollection.
func (repo *reminderRepository) FindDue(ctx context.Context, now time.Time) ([]*entity.Reminder, error) {
	iter := repo.client.CollectionGroup(subcollReminders).
		Where("dispatchedAt", "==", nil).
		Where("triggerDate", "<=", now).
		Documents(ctx)
	defer iter.Stop()

	reminders := make([]*entity.Reminder, 0)
	for {
		doc, err := iter.Next()
		if errors.Is(err, iterator.Done) {
			break
		}
		if err != nil {
			return nil, errors.Wrap(err, "failed to find due reminders")
		}

		// Owner is the users/{id} parent of the notifications subcollection.
		userID, err := uuid.Parse(doc.Ref.Parent.Parent.ID)
		if err != nil {
			return nil, errors.Wrap(err, "reminder parent document ID is not a UUID")
		}

		reminder, err := toReminderDomain(doc, userID)
		if err != nil {
			return nil, err
		}
		reminders = append(reminders, reminder)
	}

	return reminders, nil
}

// MarkRead sets the read flag on the given reminder IDs. IDs that no longer
// exist are skipped.
func (repo *reminderRepository) MarkRead(ctx context.Context, userID uuid.UUID, ids []uuid.UUID) error {
	if len(ids) == 0 {
		return nil
	}

	bw := repo.client.BulkWriter(ctx)
	jobs := make([]*firestore.BulkWriterJob, 0, len(ids))
	for _, id := range ids {
		job, err := bw.Update(repo.reminders(userID).Doc(id.String()), []firestore.Update{
			{Path: "isRead", Value: true},
		})
		if err != nil {
			bw.End()

			return domainerrors.NewStoreExecuteError(err, "failed to enqueue reminder read update")
		}
		jobs = append(jobs, job)
	}
	bw.End()

	for _, job := range jobs {
		if _, err := job.Results(); err != nil && !isNotFound(err) {
			return domainerrors.NewStoreExecuteError(err, "failed to mark reminders read")
		}
	}

	return nil
}

// MarkDispatched records the dispatch time of a reminder.
func (repo *reminderRepository) MarkDispatched(ctx context.Context, userID uuid.UUID, id uuid.UUID, at time.Time) error {
	_, err := repo.reminders(userID).Doc(id.String()).Update(ctx, []firestore.Update{
		{Path: "dispatchedAt", Value: at},
	})
	if err != nil {
		if isNotFound(err) {
			return repository.ErrReminderNotFound
		}

		return domainerrors.NewStoreExecuteError(err, "failed to mark reminder dispatched")
	}

	return nil
}

// Delete removes a reminder record by ID. Deleting a missing record is not
// an error.
func (repo *reminderRepository) Delete(ctx context.Context, userID uuid.UUID, id uuid.UUID) error {
	if _, err := repo.reminders(userID).Doc(id.String()).Delete(ctx); err != nil {
		return domainerrors.NewStoreExecuteError(err, "failed to delete reminder")
	}

	return nil
}

// DeleteExpired removes read reminders across all users whose trigger time
// is before the cutoff.
func (repo *reminderRepository) DeleteExpired(ctx context.Context, cutoff time.Time) (int, error) {
	iter := repo.client.CollectionGroup(subcollReminders).
		Where("isRead", "==", true).
		Where("triggerDate", "<", cutoff).
		Documents(ctx)
	defer iter.Stop()

	bw := repo.client.BulkWriter(ctx)
	count := 0
	for {
		doc, err := iter.Next()
		if errors.Is(err, iterator.Done) {
			break
		}
		if err != nil {
			bw.End()

			return count, errors.Wrap(err, "failed to list expired reminders")
		}

		if _, err := bw.Delete(doc.Ref); err != nil {
			bw.End()

			return count, domainerrors.NewStoreExecuteError(err, "failed to enqueue expired reminder delete")
		}
		count++
	}
	bw.End()

	return count, nil
}

// --- Mapper Functions ---

// toReminderDomain converts a Firestore reminder document to a domain
// Reminder entity.
func toReminderDomain(doc *firestore.DocumentSnapshot, userID uuid.UUID) (*entity.Reminder, error) {
	var reminderM model.ReminderModel
	if err := doc.DataTo(&reminderM); err != nil {
		return nil, errors.Wrap(err, "failed to decode reminder document")
	}

	id, err := uuid.Parse(doc.Ref.ID)
	if err != nil {
		return nil, errors.Wrap(err, "reminder document ID is not a UUID")
	}

	eventID, err := uuid.Parse(reminderM.EventID)
	if err != nil {
		return nil, errors.Wrap(err, "reminder eventId is not a UUID")
	}

	return &entity.Reminder{
		ID:           id,
		UserID:       userID,
		EventID:      eventID,
		Title:        reminderM.Title,
		Message:      reminderM.Message,
		EventAt:      reminderM.EventDate,
		TriggerAt:    reminderM.TriggerDate,
		CreatedAt:    reminderM.CreatedAt,
		IsRead:       reminderM.IsRead,
		DispatchedAt: reminderM.DispatchedAt,
	}, nil
}

// fromReminderDomain converts a domain Reminder entity to a Firestore
// reminder document.
func fromReminderDomain(data *entity.Reminder) *model.ReminderModel {
	if data == nil {
		return nil
	}

	return &model.ReminderModel{
		EventID:      data.EventID.String(),
		Title:        data.Title,
		Message:      data.Message,
		EventDate:    data.EventAt,
		TriggerDate:  data.TriggerAt,
		CreatedAt:    data.CreatedAt,
		IsRead:       data.IsRead,
		DispatchedAt: data.DispatchedAt,
	}
}
