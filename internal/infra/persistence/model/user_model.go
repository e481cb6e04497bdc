package model

import "time"

// UserModel is the document struct for the 'users' collection.
// The document ID is the user UUID.
type UserModel struct {
	Email        string    `firestore:"email"`
	Name         string    `firestore:"name"`
	PasswordHash string    `firestore:"passwordHash"`
	CreatedAt    time.Time `firestore:"createdAt"`
	UpdatedAt    time.Time `firestore:"updatedAt"`
}

// EmailIndexModel is the document struct for the 'user_emails' collection.
// The document ID is the email itself; Firestore has no unique indexes, so
// conditional creates against this collection enforce email uniqueness.
type EmailIndexModel struct {
	UserID string `firestore:"userId"`
}
