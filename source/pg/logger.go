package pg

import "context"

// logger is the subset of slog's surface the migration path uses.
// *slog.Logger satisfies it directly; tests may hand in anything
// compatible.
type logger interface {
	InfoContext(ctx context.Context, msg string, args ...any)
	ErrorContext(ctx context.Context, msg string, args ...any)
}
