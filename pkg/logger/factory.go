package logger

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
)

// Format selects the handler encoding.
type Format string

const (
	// FormatJSON emits one JSON object per record, for log shippers.
	FormatJSON Format = "json"
	// FormatText emits key=value lines, for human eyes during development.
	FormatText Format = "text"
)

// settings collects everything New needs to assemble a logger.
type settings struct {
	level      slog.Level
	format     Format
	output     io.Writer
	attrs      []slog.Attr
	handler    *slog.HandlerOptions
	extractors []ContextExtractor
}

// Option tunes logger construction.
type Option func(*settings)

// New assembles a *slog.Logger: pick the handler matching the
// configured format, attach static attributes, then wrap the handler so
// context extractors run on every record. Defaults are production-safe,
// JSON to stdout at info level.
func New(opts ...Option) *slog.Logger {
	s := &settings{
		level:  slog.LevelInfo,
		format: FormatJSON,
		output: os.Stdout,
	}
	for _, opt := range opts {
		opt(s)
	}

	hopts := s.handler
	if hopts == nil {
		hopts = &slog.HandlerOptions{Level: s.level}
	}

	var h slog.Handler
	switch s.format {
	case FormatText:
		h = slog.NewTextHandler(s.output, hopts)
	default:
		h = slog.NewJSONHandler(s.output, hopts)
	}
	if len(s.attrs) > 0 {
		h = h.WithAttrs(s.attrs)
	}

	return slog.New(newContextHandler(h, s.extractors))
}

// SetAsDefault installs l as the process-wide slog default.
func SetAsDefault(l *slog.Logger) {
	slog.SetDefault(l)
}

// WithLevel sets the minimum level records must meet.
func WithLevel(l slog.Level) Option {
	return func(s *settings) { s.level = l }
}

// WithFormat selects the output encoding. An unknown format panics so a
// configuration typo stops the service at startup instead of silently
// logging in the wrong shape.
func WithFormat(f Format) Option {
	if f != FormatJSON && f != FormatText {
		panic(fmt.Sprintf("logger: unknown format %q", f))
	}
	return func(s *settings) { s.format = f }
}

// WithTextFormatter switches to the text encoding.
func WithTextFormatter() Option {
	return func(s *settings) { s.format = FormatText }
}

// WithJSONFormatter switches to the JSON encoding.
func WithJSONFormatter() Option {
	return func(s *settings) { s.format = FormatJSON }
}

// WithOutput redirects log output. Nil writers are ignored.
func WithOutput(w io.Writer) Option {
	return func(s *settings) {
		if w != nil {
			s.output = w
		}
	}
}

// WithHandlerOptions replaces the slog.HandlerOptions wholesale, for
// source locations or ReplaceAttr hooks. It takes precedence over
// WithLevel.
func WithHandlerOptions(opts *slog.HandlerOptions) Option {
	return func(s *settings) {
		if opts != nil {
			s.handler = opts
		}
	}
}

// WithAttr pins static attributes to every record.
func WithAttr(attrs ...slog.Attr) Option {
	return func(s *settings) {
		s.attrs = append(s.attrs, attrs...)
	}
}

// WithContextExtractors registers extractors that pull attributes out
// of the log call's context. Nil entries are dropped.
func WithContextExtractors(extractors ...ContextExtractor) Option {
	return func(s *settings) {
		for _, extract := range extractors {
			if extract != nil {
				s.extractors = append(s.extractors, extract)
			}
		}
	}
}

// WithContextValue registers a plain context lookup: when ctx carries
// key, its value is logged under name.
func WithContextValue(name string, key any) Option {
	return func(s *settings) {
		if name == "" || key == nil {
			return
		}
		s.extractors = append(s.extractors, func(ctx context.Context) (slog.Attr, bool) {
			if v := ctx.Value(key); v != nil {
				return slog.Any(name, v), true
			}
			return slog.Attr{}, false
		})
	}
}

// Environment presets. Each stamps service and env attributes on every
// record and picks the level and encoding fitting the setting. An empty
// service name leaves the configuration untouched.

func WithDevelopment(service string) Option {
	return preset(service, "development", slog.LevelDebug, FormatText)
}

func WithStaging(service string) Option {
	return preset(service, "staging", slog.LevelInfo, FormatJSON)
}

func WithProduction(service string) Option {
	return preset(service, "production", slog.LevelInfo, FormatJSON)
}

// WithEnvironment dispatches to the preset matching env, accepting the
// common short forms. Anything unrecognized counts as development.
func WithEnvironment(env, service string) Option {
	switch env {
	case "production", "prod":
		return WithProduction(service)
	case "staging", "stage":
		return WithStaging(service)
	default:
		return WithDevelopment(service)
	}
}

func preset(service, env string, level slog.Level, format Format) Option {
	return func(s *settings) {
		if service == "" {
			return
		}
		s.level = level
		s.format = format
		s.attrs = append(s.attrs,
			slog.String("service", service),
			slog.String("env", env),
		)
	}
}
