package httpserver

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/dmitrymomot/localekit/pkg/logger"
)

// Probe bodies, kept grep-friendly for container orchestrators.
const (
	bodyAlive    = "ALIVE"
	bodyReady    = "READY"
	bodyNotReady = "NOT_READY"
)

// HealthCheckHandler builds a probe endpoint. Without checks it is a
// liveness probe and always answers 200 ALIVE. With checks it is a
// readiness probe: all checks must pass for 200 READY, the first
// failure yields 500 NOT_READY and is logged.
func HealthCheckHandler(ctx context.Context, log *slog.Logger, checks ...func(context.Context) error) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		body := bodyAlive
		if len(checks) > 0 {
			body = bodyReady
			for _, check := range checks {
				if err := check(ctx); err != nil {
					log.ErrorContext(ctx, "Readiness check failed",
						logger.Error(err),
						logger.Component("httpserver"),
					)
					w.WriteHeader(http.StatusInternalServerError)
					_, _ = w.Write([]byte(bodyNotReady))
					return
				}
			}
		}
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(body))
	}
}
