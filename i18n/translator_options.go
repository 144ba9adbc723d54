package i18n

import (
	"io"
	"log/slog"
)

// Option configures a Translator during New.
type Option func(*Translator)

// WithDefaultLanguage sets the language used whenever a Translate call
// does not request one explicitly. Empty values are ignored.
func WithDefaultLanguage(lang string) Option {
	return func(t *Translator) {
		if lang != "" {
			t.defaultLang = lang
		}
	}
}

// WithLogger routes translator diagnostics to the given logger. Without
// it the translator stays silent.
func WithLogger(logger *slog.Logger) Option {
	return func(t *Translator) {
		if logger != nil {
			t.logger = logger
		}
	}
}

// WithMissingTranslationsLogging toggles logging of lookups that fell
// back to the key. Off by default: one hole in the catalog of a busy
// page would otherwise flood the log.
func WithMissingTranslationsLogging(log bool) Option {
	return func(t *Translator) {
		t.missingLogMode = log
	}
}

// WithNoLogging silences the translator entirely, overriding any logger
// set earlier in the option list.
func WithNoLogging() Option {
	return func(t *Translator) {
		t.logger = slog.New(slog.NewTextHandler(io.Discard, nil))
		t.missingLogMode = false
	}
}
