// Package httpserver wraps net/http with the lifecycle plumbing every
// service here needs: graceful shutdown driven by context or signals,
// environment-driven timeouts, lifecycle hooks, and probe handlers.
//
// # Architecture
//
// Server owns a single *http.Server configured through functional
// options or, more commonly, through Config parsed from the
// environment. Run starts the listener in its own goroutine and then
// blocks, watching three stop conditions at once: the caller's context,
// SIGINT/SIGTERM, and the listener itself failing. Whichever fires
// first triggers a graceful Shutdown bounded by the configured drain
// window. Start and stop hooks bracket the listener lifetime and
// receive the configured logger, which keeps "Listening on ..." lines
// in the caller's log format rather than this package's.
//
// # Usage
//
//	var cfg httpserver.Config
//	if err := config.Load(&cfg); err != nil {
//		return err
//	}
//
//	srv := httpserver.NewFromConfig(cfg,
//		httpserver.WithLogger(log),
//		httpserver.WithStartHook(func(l *slog.Logger) {
//			l.Info("Listening", slog.String("addr", cfg.Addr))
//		}),
//	)
//
//	r := chi.NewRouter()
//	r.Get("/healthz", httpserver.HealthCheckHandler(ctx, log))
//	r.Get("/readyz", httpserver.HealthCheckHandler(ctx, log, readinessChecks...))
//
//	return srv.Run(ctx, r)
//
// # Error Handling
//
// Run and Shutdown wrap failures with the ErrStart, ErrShutdown and
// ErrAlreadyRunning sentinels for errors.Is checks. A server stopping
// because its context was cancelled or a signal arrived is a clean exit
// and returns nil.
package httpserver
