package server

// Server is what cmd/server drives: start the configured transports, wait
// for a stop signal, then drain them.
type Server interface {
	// RunServer blocks until a termination signal arrives and every
	// transport has stopped.
	RunServer()

	// Shutdown stops accepting requests and drains in-flight ones.
	Shutdown()
}
