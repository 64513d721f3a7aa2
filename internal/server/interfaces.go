package server

import (
	"context"
	"net"
)

// Server defines the lifecycle contract of the transport server.
//
// Run blocks until ctx is cancelled or the server fails; a graceful shutdown
// returns nil.
type Server interface {
	// Run listens on the configured address and serves requests.
	Run(ctx context.Context) error

	// Serve serves requests on ln. It is Run without the listen step.
	Serve(ctx context.Context, ln net.Listener) error
}
