package model

import "time"

// FavoriteModel is the document struct for the 'users/{id}/favorites'
// subcollection. The document ID is the favorited event's UUID, so toggling
// is a point write rather than a scan.
type FavoriteModel struct {
	Title   string    `firestore:"title"`
	AddedAt time.Time `firestore:"addedAt"`
}
