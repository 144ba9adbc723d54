package requestid

import (
	"context"
	"log/slog"
)

// LoggerExtractor adapts FromContext to the logger factory's context
// extractor shape, so every record logged with a request context gains
// a request_id attribute.
func LoggerExtractor() func(ctx context.Context) (slog.Attr, bool) {
	return func(ctx context.Context) (slog.Attr, bool) {
		id := FromContext(ctx)
		if id == "" {
			return slog.Attr{}, false
		}
		return slog.String("request_id", id), true
	}
}
