package entity

import (
	"time"

	"github.com/google/uuid"
)

// User is the core identity in the system. Email doubles as the identity
// surrogate on participations, so it must stay unique.
type User struct {
	ID           uuid.UUID `json:"id"`         // The Global Unique Identifier (GUID) for the user.
	Email        string    `json:"email"`      // Login identifier and participation identity surrogate.
	Name         string    `json:"name"`       // Display name.
	PasswordHash string    `json:"-"`          // Bcrypt hash of the user's password; never serialized.
	CreatedAt    time.Time `json:"created_at"` // Timestamp of when this account was created.
	UpdatedAt    time.Time `json:"updated_at"` // Timestamp of the last modification.
}
