package model

import "time"

// ParticipationModel is the document struct for the 'participations'
// collection. The document ID is deterministic per (event, email), which
// makes creation a conditional write.
type ParticipationModel struct {
	EventID     string    `firestore:"eventId"`
	Title       string    `firestore:"title"`
	Description string    `firestore:"description"`
	Location    string    `firestore:"location"`
	StartDate   time.Time `firestore:"startDate"`
	EndDate     time.Time `firestore:"endDate"`
	Email       string    `firestore:"email"`
	JoinedAt    time.Time `firestore:"joinedAt"`
}
