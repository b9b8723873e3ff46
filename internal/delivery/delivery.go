// Package delivery defines the contract every transport server
// implements so the composition root can start them uniformly.
package delivery

import "context"

// Delivery is a runnable transport server.
type Delivery interface {
	Serve(ctx context.Context) error
}
