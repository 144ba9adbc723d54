package i18n

import (
	"errors"
	"fmt"
)

// Package errors use descriptive messages for debugging while avoiding implementation details.
// Loader errors carry the offending file path via wrapping, never in the sentinel itself.
var (
	// Translation operations
	ErrEmptyKey = errors.New("translation key is empty")

	// Catalog loading
	ErrLoadingCancelled      = errors.New("loading translations cancelled")
	ErrFailedToReadDirectory = errors.New("failed to read translations directory")
	ErrFailedToReadFile      = errors.New("failed to read translation file")
	ErrFailedToParseFile     = errors.New("failed to parse translation file")

	// Parsers
	ErrFailedToParseJSON = errors.New("failed to parse JSON content")
	ErrFailedToParseYAML = errors.New("failed to parse YAML content")
	ErrFailedToParseTOML = errors.New("failed to parse TOML content")
)

// ErrLanguageNotSupported indicates that an explicitly requested language
// has no loaded catalog. Requests without an explicit language never
// produce it; they follow the default-language policy instead.
type ErrLanguageNotSupported struct {
	Lang string
	Key  string
}

func (e *ErrLanguageNotSupported) Error() string {
	return fmt.Sprintf("language not supported: %s (key: %s)", e.Lang, e.Key)
}
