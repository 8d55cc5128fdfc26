package server

import "context"

// Server defines the lifecycle contract for the HTTP server managed by this
// package.
type Server interface {
	// RunServer serves requests until SIGINT, SIGTERM or SIGQUIT arrives,
	// then shuts down gracefully.
	RunServer()

	// Run serves requests until ctx is done. It satisfies workers.Worker.
	Run(ctx context.Context) error

	// Shutdown gracefully stops the server.
	Shutdown()
}
