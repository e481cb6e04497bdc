// Package constants holds shared provider names and domain constants.
package constants

// Pub/Sub provider names selectable via config.
const (
	PubSubProviderLocal  = "local"
	PubSubProviderGoogle = "google"
)

// Calendar provider names selectable via config.
const (
	CalendarProviderGoogle = "google"
	CalendarProviderICS    = "ics"
)
