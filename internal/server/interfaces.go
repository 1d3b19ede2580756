package server

// Server defines the lifecycle contract of the application server.
type Server interface {
	// RunServer serves requests until a termination signal arrives or the
	// listener fails, then shuts down gracefully.
	RunServer() error
}
