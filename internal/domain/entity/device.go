package entity

import (
	"time"

	"github.com/google/uuid"
)

// Device is a push-capable device registered by a user. Reminder alerts
// fan out to every device the owning user has registered.
type Device struct {
	ID        uuid.UUID `json:"id"`         // The Global Unique Identifier (GUID) for the device.
	UserID    uuid.UUID `json:"user_id"`    // Owner of the device.
	FCMToken  string    `json:"fcm_token"`  // Firebase Cloud Messaging registration token.
	Platform  string    `json:"platform"`   // "ios" or "android".
	CreatedAt time.Time `json:"created_at"` // Timestamp of when the device was registered.
}
