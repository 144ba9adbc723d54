package i18n

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"maps"
	"regexp"
	"slices"
	"strings"
)

// Translator resolves message keys against a catalog loaded once at
// construction time. The catalog is never mutated afterwards, so every
// method is safe for unbounded concurrent use without locking.
type Translator struct {
	translations   map[string]map[string]string
	defaultLang    string
	missingLogMode bool
	logger         *slog.Logger
}

// New creates a Translator by loading the full catalog from src.
// Loading happens exactly once, eagerly; there is no reload API.
// Picking up catalog changes means constructing a new Translator, in
// practice a process restart.
func New(ctx context.Context, src Source, opts ...Option) (*Translator, error) {
	if src == nil {
		return nil, fmt.Errorf("source is nil")
	}

	t := &Translator{
		defaultLang: DefaultLanguage,
		logger:      slog.New(slog.NewTextHandler(io.Discard, nil)), // Nope-logger by default
	}
	for _, opt := range opts {
		opt(t)
	}

	catalog, err := src.Load(ctx)
	if err != nil {
		return nil, err
	}
	for lang, msgs := range catalog {
		if lang == "" {
			return nil, fmt.Errorf("empty language code found")
		}
		if msgs == nil {
			return nil, fmt.Errorf("nil translations map for language: %s", lang)
		}
	}
	if len(catalog) == 0 {
		t.logger.WarnContext(ctx, "No translations provided")
	}

	t.translations = catalog
	t.logger.InfoContext(ctx, "Translations loaded", "languages", t.SupportedLanguages())
	return t, nil
}

// SupportedLanguages returns the sorted list of language codes that
// have translations available.
func (t *Translator) SupportedLanguages() []string {
	return slices.Sorted(maps.Keys(t.translations))
}

// HasLanguage reports whether a catalog was loaded for lang.
func (t *Translator) HasLanguage(lang string) bool {
	_, ok := t.translations[lang]
	return ok
}

// HasTranslation reports whether lang has an entry for key.
func (t *Translator) HasTranslation(lang, key string) bool {
	_, ok := t.translations[lang][key]
	return ok
}

// DefaultLanguage returns the language used when a call requests none
// explicitly.
func (t *Translator) DefaultLanguage() string {
	return t.defaultLang
}

// Translate resolves key in the requested or default language and
// substitutes ${name} placeholders from the replacement map.
//
// A key without a translation in the resolved language is returned
// as-is: untranslated output is preferred over a hard failure, so
// missing entries still render something readable. An explicitly
// requested language that was never loaded is an error; the default
// language is not required to be loaded.
//
// Example:
//
//	// With translation "welcome": "Welcome, ${name}!"
//	msg, err := translator.Translate("welcome",
//		i18n.WithLang("en"),
//		i18n.WithReplacements(map[string]string{"name": "John"}),
//	)
//	// Returns: "Welcome, John!"
func (t *Translator) Translate(key string, opts ...TranslateOption) (string, error) {
	if key == "" {
		return "", ErrEmptyKey
	}

	var p translateParams
	for _, opt := range opts {
		opt(&p)
	}
	return t.translate(key, p)
}

// TranslateContext is Translate with the language taken from the
// request context (see Middleware) when the call itself does not pin
// one. The context language is a hint: it applies only when loaded,
// otherwise the default-language policy takes over. An explicit
// WithLang still wins and keeps its strict unknown-language behavior.
func (t *Translator) TranslateContext(ctx context.Context, key string, opts ...TranslateOption) (string, error) {
	if key == "" {
		return "", ErrEmptyKey
	}

	var p translateParams
	for _, opt := range opts {
		opt(&p)
	}
	if p.lang == "" {
		if lang, ok := ctx.Value(localeContextKey{}).(string); ok && t.HasLanguage(lang) {
			p.lang = lang
		}
	}
	return t.translate(key, p)
}

func (t *Translator) translate(key string, p translateParams) (string, error) {
	lang := t.defaultLang
	if p.lang != "" {
		if !t.HasLanguage(p.lang) {
			if t.missingLogMode {
				t.logger.Warn("Language not supported", "lang", p.lang, "key", key)
			}
			return "", &ErrLanguageNotSupported{Lang: p.lang, Key: key}
		}
		lang = p.lang
	}

	tmpl := key
	if msg, ok := t.translations[lang][key]; ok {
		tmpl = msg
	} else if t.missingLogMode {
		t.logger.Warn("Translation not found", "lang", lang, "key", key)
	}

	return substitute(tmpl, p.replace), nil
}

// placeholderRE matches named parameters of the form ${name}.
var placeholderRE = regexp.MustCompile(`\$\{([^}]+)\}`)

// substitute replaces ${name} placeholders using the provided map. The
// template is scanned exactly once, left to right, so replacement
// values containing placeholder syntax are emitted as-is and never
// re-expanded. Placeholders without a replacement stay in the output.
func substitute(tmpl string, replace map[string]string) string {
	if len(replace) == 0 {
		return tmpl
	}
	return placeholderRE.ReplaceAllStringFunc(tmpl, func(match string) string {
		name := strings.TrimSuffix(strings.TrimPrefix(match, "${"), "}")
		if val, ok := replace[name]; ok {
			return val
		}
		return match
	})
}
