package server

// Server defines the lifecycle contract of servers managed by this package.
//
// Implementations block in [Server.RunServer] until shutdown is requested and
// release resources in [Server.Shutdown].
type Server interface {
	// RunServer serves requests and blocks until the server stops.
	RunServer()

	// Shutdown gracefully stops the server.
	Shutdown()
}
