package repository

import (
	"context"
	"errors"

	"gatherly/internal/domain/entity"

	"github.com/google/uuid"
)

// Domain-specific errors for user persistence.
var (
	// ErrUserNotFound is returned when a user is not found.
	ErrUserNotFound = errors.New("user not found")
	// ErrEmailTaken is returned when the email is already registered.
	ErrEmailTaken = errors.New("email already registered")
)

// UserRepository defines the interface for user-related store operations.
type UserRepository interface {
	// Create persists a new user. Fails with ErrEmailTaken when another
	// account already uses the email.
	Create(ctx context.Context, user *entity.User) error

	// FindByID retrieves a user by its unique ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.User, error)

	// FindByEmail retrieves a user by email.
	FindByEmail(ctx context.Context, email string) (*entity.User, error)

	// UpdateEmail changes the user's email after a uniqueness check.
	UpdateEmail(ctx context.Context, id uuid.UUID, email string) error

	// UpdatePasswordHash replaces the user's password hash.
	UpdatePasswordHash(ctx context.Context, id uuid.UUID, hash string) error
}
