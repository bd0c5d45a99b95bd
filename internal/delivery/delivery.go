// Package delivery defines the contract every serving surface implements.
package delivery

import "context"

// Delivery is a long-running serving surface started by the composition
// root. Serve blocks until the surface stops.
type Delivery interface {
	Serve(ctx context.Context) error
}
