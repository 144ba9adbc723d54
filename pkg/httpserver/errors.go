package httpserver

import "errors"

var (
	// ErrStart wraps listener failures: the address could not be bound
	// or the accept loop died.
	ErrStart = errors.New("http server failed to start")
	// ErrShutdown wraps an unclean graceful shutdown, typically the
	// drain window expiring with requests still in flight.
	ErrShutdown = errors.New("http server failed to shut down cleanly")
	// ErrAlreadyRunning reports a second Run call on the same Server.
	ErrAlreadyRunning = errors.New("http server already running")
)
