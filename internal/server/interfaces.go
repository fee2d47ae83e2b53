package server

import "context"

// Server defines the lifecycle contract of the dashboard server.
//
// RunServer blocks until a stop signal arrives. Run does the same but stops
// when ctx is cancelled, which lets callers and tests own the signal
// handling.
type Server interface {
	// RunServer serves requests until a stop signal is received.
	RunServer()

	// Run serves requests until ctx is cancelled, then shuts down.
	Run(ctx context.Context) error

	// Shutdown gracefully stops the listener.
	Shutdown()
}
