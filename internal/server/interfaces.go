package server

import "context"

// Server is a transport server bound to a context lifecycle.
type Server interface {
	// RunServer serves until ctx is done, then shuts down gracefully.
	// It returns nil after a clean shutdown.
	RunServer(ctx context.Context) error
}
