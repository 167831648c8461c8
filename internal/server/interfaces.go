package server

import "context"

// Server defines the lifecycle contract for servers managed by this package.
//
// Implementations block in [Run] until ctx is cancelled or the listener
// fails, then release their resources. Server satisfies the workers.Worker
// interface so it can run next to the flush job.
type Server interface {
	// Run starts serving requests and blocks until the server stops.
	Run(ctx context.Context) error

	// Shutdown gracefully stops the server and frees associated resources.
	Shutdown(ctx context.Context) error
}
