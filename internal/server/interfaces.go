package server

// Server is the lifecycle contract of the board's inbound transport.
// RunServer blocks until a termination signal arrives and in-flight requests
// drain; Shutdown can be called directly to stop serving.
type Server interface {
	// RunServer starts serving requests and blocks until the server stops.
	RunServer()

	// Shutdown gracefully stops the server and frees associated resources.
	Shutdown()
}
