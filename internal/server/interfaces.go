package server

// Server is the remote store process: it blocks in RunServer until a
// termination signal arrives or the listener fails.
type Server interface {
	RunServer()
	Shutdown()
}
