// Package model contains the Firestore document structs of the persistence
// layer. Field tags match the document field names written by the mobile
// clients and the external event pipeline.
package model

import "time"

// EventModel is the document struct for the 'events' collection.
// The document ID is the event UUID. Date is `any` because the external
// pipeline writes either a proper Timestamp or a hand-typed string in one
// of several formats; interpretation happens in the repository mapper.
type EventModel struct {
	Title       string    `firestore:"title"`
	Description string    `firestore:"description"`
	Location    string    `firestore:"location"`
	Date        any       `firestore:"date"`
	CreatedAt   time.Time `firestore:"createdAt"`
}
