package httpserver

import "errors"

var (
	// ErrStart wraps listener failures, such as a port already in use.
	ErrStart = errors.New("httpserver: listen failed")
	// ErrShutdown means in-flight requests did not drain within ShutdownTimeout.
	ErrShutdown = errors.New("httpserver: graceful shutdown failed")
)
