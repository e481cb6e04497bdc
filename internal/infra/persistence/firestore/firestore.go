// Package firestore contains the concrete implementation of the persistence
// layer over the Firestore document store.
package firestore

import (
	"context"
	"log/slog"

	"gatherly/config"
	"gatherly/internal/errors"

	"cloud.google.com/go/firestore"
	firebase "firebase.google.com/go/v4"
	"firebase.google.com/go/v4/messaging"
	"go.uber.org/fx"
	"google.golang.org/api/option"
)

// Top-level collection names. Subcollections hang off users/{id}.
const (
	collEvents         = "events"
	collParticipations = "participations"
	collUsers          = "users"
	collUserEmails     = "user_emails"
	subcollReminders   = "notifications"
	subcollDevices     = "devices"
	subcollFavorites   = "favorites"
)

// Params defines the required parameters
type Params struct {
	fx.In
	fx.Lifecycle

	Config *config.Config
	Logger *slog.Logger
}

// NewApp creates the shared Firebase app. Firestore and the messaging
// client both hang off it.
func NewApp(params Params) (*firebase.App, error) {
	cfg := params.Config.Firebase
	if cfg == nil {
		return nil, errors.New("firebase config is required")
	}

	var opts []option.ClientOption
	if cfg.CredentialsPath != "" {
		opts = append(opts, option.WithCredentialsFile(cfg.CredentialsPath))
	}

	app, err := firebase.NewApp(context.Background(), &firebase.Config{
		ProjectID: cfg.ProjectID,
	}, opts...)
	if err != nil {
		return nil, errors.Wrap(err, "failed to initialize Firebase app")
	}

	return app, nil
}

// NewClient creates the Firestore client from the shared Firebase app.
func NewClient(params Params, app *firebase.App) (*firestore.Client, error) {
	client, err := app.Firestore(context.Background())
	if err != nil {
		return nil, errors.Wrap(err, "failed to create Firestore client")
	}

	// Add lifecycle management
	params.Append(fx.Hook{
		OnStop: func(_ context.Context) error {
			return client.Close()
		},
	})

	return client, nil
}

// NewMessagingClient creates the FCM messaging client from the shared
// Firebase app.
func NewMessagingClient(app *firebase.App) (*messaging.Client, error) {
	client, err := app.Messaging(context.Background())
	if err != nil {
		return nil, errors.Wrap(err, "failed to get messaging client")
	}

	return client, nil
}
