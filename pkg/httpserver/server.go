package httpserver

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"os/signal"
	"sync"
	"syscall"
	"time"
)

// Server runs an http.Server with graceful shutdown wired to both the
// caller's context and the usual termination signals. A Server is
// single-use: once it has stopped it cannot be started again.
type Server struct {
	httpServer      *http.Server
	log             *slog.Logger
	shutdownTimeout time.Duration
	onStart         []func(*slog.Logger)
	onStop          []func(*slog.Logger)

	mu       sync.Mutex
	running  bool
	stopOnce sync.Once
}

// New assembles a Server from the given options. Without options it
// listens on :8080 and allows 5 seconds for graceful shutdown.
func New(opts ...Option) *Server {
	s := &Server{
		httpServer:      &http.Server{Addr: ":8080"},
		log:             slog.New(slog.NewTextHandler(io.Discard, nil)), // Nope-logger by default
		shutdownTimeout: 5 * time.Second,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Run serves handler until ctx is cancelled, an interrupt or TERM signal
// arrives, or the listener fails. A nil handler answers every request
// with 404. Run blocks for the whole server lifetime and returns nil
// after a clean shutdown; listen failures unwrap to ErrStart.
func (s *Server) Run(ctx context.Context, handler http.Handler) error {
	s.mu.Lock()
	if s.running {
		s.mu.Unlock()
		return ErrAlreadyRunning
	}
	s.running = true
	s.mu.Unlock()

	if handler == nil {
		handler = http.NotFoundHandler()
	}
	s.httpServer.Handler = handler

	ctx, stop := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	for _, hook := range s.onStart {
		hook(s.log)
	}

	serveErr := make(chan error, 1)
	go func() { serveErr <- s.httpServer.ListenAndServe() }()

	var err error
	select {
	case <-ctx.Done():
		_ = s.Shutdown(context.Background())
		err = <-serveErr
	case err = <-serveErr:
	}

	if err != nil && !errors.Is(err, http.ErrServerClosed) {
		return errors.Join(ErrStart, err)
	}
	return nil
}

// Shutdown drains in-flight requests and stops the listener, honoring
// the configured shutdown timeout. Only the first call does the work;
// repeated calls return nil immediately.
func (s *Server) Shutdown(ctx context.Context) error {
	var err error
	s.stopOnce.Do(func() {
		ctx, cancel := context.WithTimeout(ctx, s.shutdownTimeout)
		defer cancel()
		err = s.httpServer.Shutdown(ctx)
		for _, hook := range s.onStop {
			hook(s.log)
		}
	})

	if err != nil && !errors.Is(err, http.ErrServerClosed) {
		return errors.Join(ErrShutdown, err)
	}
	return nil
}
