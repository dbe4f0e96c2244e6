package server

// Server runs every configured transport until a signal arrives or one of
// them fails.
type Server interface {
	// RunServer blocks until all transports have stopped.
	RunServer()

	// Shutdown stops all transports. It is safe to call more than once.
	Shutdown()
}

// runner is one transport. RunServer returns nil after a graceful Shutdown.
type runner interface {
	RunServer() error
	Shutdown()
}
