// Package delivery defines the entry points that expose the application
// to the outside world.
package delivery

import "context"

// Delivery is a serving surface started by the application container.
type Delivery interface {
	// Serve blocks until the delivery stops or fails.
	Serve(ctx context.Context) error
}
