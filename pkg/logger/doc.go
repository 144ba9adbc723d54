// Package logger standardises structured logging on top of log/slog:
// one factory, environment presets, shared attribute constructors, and
// automatic injection of request-scoped context values.
//
// # Architecture
//
// New assembles a *slog.Logger in three steps. The configured Format
// picks the concrete handler (text or JSON), static attributes from
// presets and WithAttr are attached, and finally the handler is wrapped
// by a decorator that runs the registered ContextExtractor functions on
// every record. Extraction happens at Handle time, so values like the
// request ID are read fresh from the log call's context instead of
// being frozen into the handler.
//
// The attribute constructors in attr.go (Error, RequestID, Language,
// Component, ...) exist to keep log keys identical across packages;
// grepping logs for "request_id" must find everything.
//
// # Usage
//
//	log := logger.New(
//		logger.WithEnvironment(cfg.Environment, cfg.ServiceName),
//		logger.WithContextExtractors(requestid.LoggerExtractor()),
//	)
//	logger.SetAsDefault(log)
//
//	log.InfoContext(ctx, "message translated",
//		logger.Language("de"),
//		logger.Duration(time.Since(start)),
//	)
//
// # Configuration
//
// WithDevelopment, WithStaging and WithProduction bundle the level,
// encoding and service attributes appropriate for each setting;
// WithEnvironment picks one from a configuration string. The granular
// options (WithLevel, WithFormat, WithOutput, WithHandlerOptions,
// WithAttr) tune individual knobs and can be combined with a preset,
// later options winning.
//
// # Error Handling
//
// Error and Errors return a zero slog.Attr for nil errors, so callers
// can log optimistically:
//
//	log.Info("catalog loaded", logger.Error(err))
//
// and the attribute simply vanishes when err is nil.
package logger
