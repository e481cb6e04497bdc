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
)

// userRepository implements the repository.UserRepository interface.
//
// Firestore has no unique indexes, so email uniqueness is enforced through
// a user_emails/{email} index document created transactionally with the
// user document.
type userRepository struct {
	client *firestore.Client
}

// NewUserRepository is the constructor for userRepository.
func NewUserRepository(client *firestore.Client) repository.UserRepository {
	return &userRepository{
		client: client,
	}
}

func (repo *userRepository) userRef(id uuid.UUID) *firestore.DocumentRef {
	return repo.client.Collection(collUsers).Doc(id.String())
}

func (repo *userRepository) emailRef(email string) *firestore.DocumentRef {
	return repo.client.Collection(collUserEmails).Doc(email)
}

// Create persists a new user together with its email index document.
// The conditional creates commit atomically; a concurrent register with
// the same email loses with ErrEmailTaken.
func (repo *userRepository) Create(ctx context.Context, user *entity.User) error {
	err := repo.client.RunTransaction(ctx, func(_ context.Context, tx *firestore.Transaction) error {
		if err := tx.Create(repo.emailRef(user.Email), &model.EmailIndexModel{UserID: user.ID.String()}); err != nil {
			return err
		}

		return tx.Create(repo.userRef(user.ID), fromUserDomain(user))
	})
	if err != nil {
		if isAlreadyExists(err) {
			return repository.ErrEmailTaken
		}

		return domainerrors.NewStoreExecuteError(err, "failed to create user")
	}

	return nil
}

// FindByID retrieves a user by its unique ID.
func (repo *userRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.User, error) {
	doc, err := repo.userRef(id).Get(ctx)
	if err != nil {
		if isNotFound(err) {
			return nil, repository.ErrUserNotFound
		}

		return nil, errors.Wrap(err, "failed to find user by ID")
	}

	return toUserDomain(doc, id)
}

// FindByEmail retrieves a user by email through the email index document.
func (repo *userRepository) FindByEmail(ctx context.Context, email string) (*entity.User, error) {
	indexDoc, err := repo.emailRef(email).Get(ctx)
	if err != nil {
		if isNotFound(err) {
			return nil, repository.ErrUserNotFound
		}

		return nil, errors.Wrap(err, "failed to resolve user email")
	}

	var indexM model.EmailIndexModel
	if err := indexDoc.DataTo(&indexM); err != nil {
		return nil, errors.Wrap(err, "failed to decode email index document")
	}

	id, err := uuid.Parse(indexM.UserID)
	if err != nil {
		return nil, errors.Wrap(err, "email index userId is not a UUID")
	}

	return repo.FindByID(ctx, id)
}

// UpdateEmail changes the user's email, moving the email index document in
// the same transaction so uniqueness holds under concurrent updates.
func (repo *userRepository) UpdateEmail(ctx context.Context, id uuid.UUID, email string) error {
	err := repo.client.RunTransaction(ctx, func(_ context.Context, tx *firestore.Transaction) error {
		userDoc, err := tx.Get(repo.userRef(id))
		if err != nil {
			return err
		}

		var userM model.UserModel
		if err := userDoc.DataTo(&userM); err != nil {
			return errors.Wrap(err, "failed to decode user document")
		}
		if userM.Email == email {
			return nil
		}

		if err := tx.Create(repo.emailRef(email), &model.EmailIndexModel{UserID: id.String()}); err != nil {
			return err
		}
		if err := tx.Delete(repo.emailRef(userM.Email)); err != nil {
			return err
		}

		return tx.Update(repo.userRef(id), []firestore.Update{
			{Path: "email", Value: email},
			{Path: "updatedAt", Value: time.Now()},
		})
	})
	if err != nil {
		if isNotFound(err) {
			return repository.ErrUserNotFound
		}
		if isAlreadyExists(err) {
			return repository.ErrEmailTaken
		}

		return domainerrors.NewStoreExecuteError(err, "failed to update user email")
	}

	return nil
}

// UpdatePasswordHash replaces the user's password hash.
func (repo *userRepository) UpdatePasswordHash(ctx context.Context, id uuid.UUID, hash string) error {
	_, err := repo.userRef(id).Update(ctx, []firestore.Update{
		{Path: "passwordHash", Value: hash},
		{Path: "updatedAt", Value: time.Now()},
	})
	if err != nil {
		if isNotFound(err) {
			return repository.ErrUserNotFound
		}

		return domainerrors.NewStoreExecuteError(err, "failed to update user password")
	}

	return nil
}

// --- Mapper Functions ---

// toUserDomain converts a Firestore user document to a domain User entity.
func toUserDomain(doc *firestore.DocumentSnapshot, id uuid.UUID) (*entity.User, error) {
	var userM model.UserModel
	if err := doc.DataTo(&userM); err != nil {
		return nil, errors.Wrap(err, "failed to decode user document")
	}

	return &entity.User{
		ID:           id,
		Email:        userM.Email,
		Name:         userM.Name,
		PasswordHash: userM.PasswordHash,
		CreatedAt:    userM.CreatedAt,
		UpdatedAt:    userM.UpdatedAt,
	}, nil
}

// fromUserDomain converts a domain User entity to a Firestore user document.
func fromUserDomain(data *entity.User) *model.UserModel {
	if data == nil {
		return nil
	}

	return &model.UserModel{
		Email:        data.Email,
		Name:         data.Name,
		PasswordHash: data.PasswordHash,
		CreatedAt:    data.CreatedAt,
		UpdatedAt:    data.UpdatedAt,
	}
}
