package i18n

import "context"

// Config is the environment-driven configuration surface for a
// directory-backed translator.
type Config struct {
	DefaultLanguage string `env:"I18N_DEFAULT_LANGUAGE" envDefault:"en"` // Used when a call requests no language
	SourcePath      string `env:"I18N_SOURCE_PATH" envDefault:"i18n"`    // Root directory holding per-language folders
}

// NewFromConfig builds a Translator over a JSON DirSource rooted at
// cfg.SourcePath. Options given here override the config values.
func NewFromConfig(ctx context.Context, cfg Config, opts ...Option) (*Translator, error) {
	src := NewDirSource(NewJSONParser(), cfg.SourcePath)
	return New(ctx, src, append([]Option{WithDefaultLanguage(cfg.DefaultLanguage)}, opts...)...)
}
