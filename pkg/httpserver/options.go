package httpserver

import (
	"log/slog"
	"net/http"
	"time"
)

// Option mutates a Server during construction. Invalid arguments panic
// immediately so that misconfiguration surfaces at startup, not under
// traffic.
type Option func(*Server)

// WithAddr sets the listen address in host:port form.
func WithAddr(addr string) Option {
	if addr == "" {
		panic("httpserver: WithAddr requires a non-empty address")
	}
	return func(s *Server) { s.httpServer.Addr = addr }
}

// WithReadTimeout bounds reading a full request, body included.
func WithReadTimeout(d time.Duration) Option {
	if d <= 0 {
		panic("httpserver: WithReadTimeout requires a positive duration")
	}
	return func(s *Server) { s.httpServer.ReadTimeout = d }
}

// WithWriteTimeout bounds writing a full response.
func WithWriteTimeout(d time.Duration) Option {
	if d <= 0 {
		panic("httpserver: WithWriteTimeout requires a positive duration")
	}
	return func(s *Server) { s.httpServer.WriteTimeout = d }
}

// WithIdleTimeout bounds how long a keep-alive connection may sit idle.
func WithIdleTimeout(d time.Duration) Option {
	if d <= 0 {
		panic("httpserver: WithIdleTimeout requires a positive duration")
	}
	return func(s *Server) { s.httpServer.IdleTimeout = d }
}

// WithShutdownTimeout sets the drain window for graceful shutdown.
func WithShutdownTimeout(d time.Duration) Option {
	if d <= 0 {
		panic("httpserver: WithShutdownTimeout requires a positive duration")
	}
	return func(s *Server) { s.shutdownTimeout = d }
}

// WithServer swaps in a caller-owned http.Server, for TLS set-up or
// other fields this package does not expose. Fields left at their zero
// value inherit whatever earlier options or defaults configured, so the
// option order does not matter.
func WithServer(hs *http.Server) Option {
	if hs == nil {
		panic("httpserver: WithServer requires a non-nil server")
	}
	return func(s *Server) {
		if hs.Addr == "" {
			hs.Addr = s.httpServer.Addr
		}
		if hs.ReadTimeout == 0 {
			hs.ReadTimeout = s.httpServer.ReadTimeout
		}
		if hs.WriteTimeout == 0 {
			hs.WriteTimeout = s.httpServer.WriteTimeout
		}
		if hs.IdleTimeout == 0 {
			hs.IdleTimeout = s.httpServer.IdleTimeout
		}
		s.httpServer = hs
	}
}

// WithLogger sets the logger handed to start and stop hooks. A nil
// logger keeps the discarding default.
func WithLogger(log *slog.Logger) Option {
	return func(s *Server) {
		if log != nil {
			s.log = log
		}
	}
}

// WithStartHook registers a callback invoked just before the listener
// comes up. Hooks run in registration order.
func WithStartHook(hook func(*slog.Logger)) Option {
	if hook == nil {
		panic("httpserver: WithStartHook requires a non-nil hook")
	}
	return func(s *Server) { s.onStart = append(s.onStart, hook) }
}

// WithStopHook registers a callback invoked after the server has
// drained. Hooks run in registration order.
func WithStopHook(hook func(*slog.Logger)) Option {
	if hook == nil {
		panic("httpserver: WithStopHook requires a non-nil hook")
	}
	return func(s *Server) { s.onStop = append(s.onStop, hook) }
}
