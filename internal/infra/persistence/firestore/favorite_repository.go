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

// favoriteRepository implements the repository.FavoriteRepository interface.
type favoriteRepository struct {
	client *firestore.Client
}

// NewFavoriteRepository is the constructor for favoriteRepository.
func NewFavoriteRepository(client *firestore.Client) repository.FavoriteRepository {
	return &favoriteRepository{
		client: client,
	}
}

func (repo *favoriteRepository) favorites(userID uuid.UUID) *firestore.CollectionRef {
	return repo.client.Collection(collUsers).Doc(userID.String()).Collection(subcollFavorites)
}

// Add marks an event as favorited. The document is keyed by event ID, so
// re-favoriting overwrites in place.
func (repo *favoriteRepository) Add(ctx context.Context, userID uuid.UUID, favorite *entity.Favorite) error {
	ref := repo.favorites(userID).Doc(favorite.EventID.String())

	if _, err := ref.Set(ctx, fromFavoriteDomain(favorite)); err != nil {
		return domainerrors.NewStoreExecuteError(err, "failed to add favorite")
	}

	return nil
}

// Remove unmarks an event. Removing a missing favorite is not an error.
func (repo *favoriteRepository) Remove(ctx context.Context, userID uuid.UUID, eventID uuid.UUID) error {
	if _, err := repo.favorites(userID).Doc(eventID.String()).Delete(ctx); err != nil {
		return domainerrors.NewStoreExecuteError(err, "failed to remove favorite")
	}

	return nil
}

// Exists reports whether the user has favorited the event.
func (repo *favoriteRepository) Exists(ctx context.Context, userID uuid.UUID, eventID uuid.UUID) (bool, error) {
	_, err := repo.favorites(userID).Doc(eventID.String()).Get(ctx)
	if err != nil {
		if isNotFound(err) {
			return false, nil
		}

		return false, errors.Wrap(err, "failed to check favorite")
	}

	return true, nil
}

// FindByUser retrieves all favorites of a user, most recent first.
func (repo *favoriteRepository) FindByUser(ctx context.Context, userID uuid.UUID) ([]*entity.Favorite, error) {
	iter := repo.favorites(userID).
		OrderBy("addedAt", firestore.Desc).
		Documents(ctx)
	defer iter.Stop()

	favorites := make([]*entity.Favorite, 0)
	for {
		doc, err := iter.Next()
		if errors.Is(err, iterator.Done) {
			break
		}
		if err != nil {
			return nil, errors.Wrap(err, "failed to find favorites by user")
		}

		favorite, err := toFavoriteDomain(doc)
		if err != nil {
			return nil, err
		}
		favorites = append(favorites, favorite)
	}

	return favorites, nil
}

// Clear removes every favorite of the user in one batched pass.
func (repo *favoriteRepository) Clear(ctx context.Context, userID uuid.UUID) error {
	iter := repo.favorites(userID).Documents(ctx)
	defer iter.Stop()

	bw := repo.client.BulkWriter(ctx)
	for {
		doc, err := iter.Next()
		if errors.Is(err, iterator.Done) {
			break
		}
		if err != nil {
			bw.End()

			return errors.Wrap(err, "failed to list favorites for clearing")
		}

		if _, err := bw.Delete(doc.Ref); err != nil {
			bw.End()

			return domainerrors.NewStoreExecuteError(err, "failed to enqueue favorite delete")
		}
	}
	bw.End()

	return nil
}

// --- Mapper Functions ---

// toFavoriteDomain converts a Firestore favorite document to a domain
// Favorite entity.
func toFavoriteDomain(doc *firestore.DocumentSnapshot) (*entity.Favorite, error) {
	var favoriteM model.FavoriteModel
	if err := doc.DataTo(&favoriteM); err != nil {
		return nil, errors.Wrap(err, "failed to decode favorite document")
	}

	eventID, err := uuid.Parse(doc.Ref.ID)
	if err != nil {
		return nil, errors.Wrap(err, "favorite document ID is not a UUID")
	}

	return &entity.Favorite{
		EventID: eventID,
		Title:   favoriteM.Title,
		AddedAt: favoriteM.AddedAt,
	}, nil
}

// fromFavoriteDomain converts a domain Favorite entity to a Firestore
// favorite document.
func fromFavoriteDomain(data *entity.Favorite) *model.FavoriteModel {
	if data == nil {
		return nil
	}

	return &model.FavoriteModel{
		Title:   data.Title,
		AddedAt: data.AddedAt,
	}
}
