// Package delivery defines the transport-facing component interface.
package delivery

import "context"

// Delivery is a long-lived transport component with a blocking serve loop
// and graceful shutdown.
type Delivery interface {
	Serve(ctx context.Context) error
	Shutdown(ctx context.Context) error
}
