// Package delivery defines the contract every transport entry point of the
// application implements.
package delivery

import "context"

// Delivery is a server that accepts external traffic. Serve blocks until the
// server stops.
type Delivery interface {
	Serve(ctx context.Context) error
}
