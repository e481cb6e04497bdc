package model

import "time"

// ReminderModel is the document struct for the 'users/{id}/notifications'
// subcollection. The document ID is shared with the owning participation.
// DispatchedAt stays null until the push actually goes out, which is what
// the catch-up dispatcher queries on.
type ReminderModel struct {
	EventID      string     `firestore:"eventId"`
	Title        string     `firestore:"title"`
	Message      string     `firestore:"message"`
	EventDate    time.Time  `firestore:"eventDate"`
	TriggerDate  time.Time  `firestore:"triggerDate"`
	CreatedAt    time.Time  `firestore:"createdAt"`
	IsRead       bool       `firestore:"isRead"`
	DispatchedAt *time.Time `firestore:"dispatchedAt"`
}
