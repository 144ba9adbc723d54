package logger

import (
	"log/slog"
	"strconv"
)

// Attribute constructors shared across the codebase so log keys stay
// uniform. Constructors whose value may legitimately be absent return a
// zero Attr in that case, which slog drops silently.

// Group nests attrs under name.
func Group(name string, attrs ...slog.Attr) slog.Attr {
	return slog.Attr{Key: name, Value: slog.GroupValue(attrs...)}
}

// Error records err under "error"; nil yields a zero Attr.
func Error(err error) slog.Attr {
	if err == nil {
		return slog.Attr{}
	}
	return slog.Any("error", err)
}

// Errors records the non-nil entries of errs as an indexed group under
// "errors"; when every entry is nil it yields a zero Attr.
func Errors(errs ...error) slog.Attr {
	var collected []slog.Attr
	for i, err := range errs {
		if err == nil {
			continue
		}
		collected = append(collected, slog.Any(strconv.Itoa(i), err))
	}
	if len(collected) == 0 {
		return slog.Attr{}
	}
	return Group("errors", collected...)
}

// RequestID records the correlation ID under "request_id"; "" yields a
// zero Attr.
func RequestID(id string) slog.Attr {
	if id == "" {
		return slog.Attr{}
	}
	return slog.String("request_id", id)
}

// Language records the language a message was rendered in; "" yields a
// zero Attr.
func Language(lang string) slog.Attr {
	if lang == "" {
		return slog.Attr{}
	}
	return slog.String("language", lang)
}

// Duration records elapsed time under "duration".
func Duration(d any) slog.Attr {
	return slog.Any("duration", d)
}

// Component tags the subsystem emitting the record.
func Component(name string) slog.Attr {
	return slog.String("component", name)
}

// Event tags a lifecycle event by name.
func Event(name string) slog.Attr {
	return slog.String("event", name)
}
