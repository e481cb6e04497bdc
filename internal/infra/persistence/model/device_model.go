package model

import "time"

// DeviceModel is the document struct for the 'users/{id}/devices'
// subcollection. The document ID is the device UUID.
type DeviceModel struct {
	FCMToken  string    `firestore:"fcmToken"`
	Platform  string    `firestore:"platform"`
	CreatedAt time.Time `firestore:"createdAt"`
}
