package i18n

import (
	"net/http"
	"slices"
	"strings"
)

// LangExtractor derives a language hint from an inbound HTTP request.
// An empty return value means no hint; callers fall back to their
// default-language policy. Extractors never fail, the worst outcome is
// an absent hint.
type LangExtractor func(r *http.Request) string

// RFC 5646 recommends 35 characters as the longest plausible tag.
// Anything over that is treated as garbage, not a language code.
const maxLangCodeLength = 35

// StaticLangExtractor returns an extractor that reports the given
// language for every request. It is the default extractor of the error
// response handler: with no request inspection configured, responses
// stay in one fixed language.
func StaticLangExtractor(lang string) LangExtractor {
	return func(*http.Request) string {
		return lang
	}
}

// ExtractorConfig holds the knobs of DefaultLangExtractor.
type ExtractorConfig struct {
	CookieName     string
	QueryParamName string
	SupportedLangs []string
}

// ExtractorOption configures the language extractor.
type ExtractorOption func(*ExtractorConfig)

// WithCookieName overrides the cookie consulted for the language
// preference. Empty names are ignored.
func WithCookieName(name string) ExtractorOption {
	return func(c *ExtractorConfig) {
		if name != "" {
			c.CookieName = name
		}
	}
}

// WithQueryParamName overrides the query parameter consulted for the
// language preference. Empty names are ignored.
func WithQueryParamName(name string) ExtractorOption {
	return func(c *ExtractorConfig) {
		if name != "" {
			c.QueryParamName = name
		}
	}
}

// WithSupportedLanguages restricts extracted candidates to the given
// set. A rejected candidate lets the next source in the chain have a
// go instead of winning on priority alone.
func WithSupportedLanguages(langs ...string) ExtractorOption {
	return func(c *ExtractorConfig) {
		if len(langs) > 0 {
			c.SupportedLangs = langs
		}
	}
}

// normalizeCandidate checks one raw language candidate against the
// supported set and returns its canonical lowercase form, or "" when
// the candidate is unusable. With an empty supported set any
// well-formed candidate passes. A regional tag such as pt-BR falls
// back to its base language when only pt is supported.
func normalizeCandidate(raw string, supported []string) string {
	if raw == "" || len(raw) > maxLangCodeLength {
		return ""
	}

	lang := strings.ToLower(raw)
	if len(supported) == 0 {
		return lang
	}
	if slices.Contains(supported, lang) {
		return lang
	}
	if base, _, found := strings.Cut(lang, "-"); found && base != "" {
		if slices.Contains(supported, base) {
			return base
		}
	}
	return ""
}

// DefaultLangExtractor builds the extractor the middleware falls back
// to when none is supplied. Sources are consulted in priority order:
//
//  1. cookie (default name "lang")
//  2. query parameter (default name "lang")
//  3. Language header
//  4. Accept-Language header
//
// The first acceptable candidate wins. With WithSupportedLanguages set,
// Accept-Language entries go through full negotiation via
// ParseAcceptLanguage; without it the header's highest-quality entry is
// taken as-is.
func DefaultLangExtractor(opts ...ExtractorOption) LangExtractor {
	cfg := &ExtractorConfig{
		CookieName:     "lang",
		QueryParamName: "lang",
	}
	for _, opt := range opts {
		opt(cfg)
	}

	// Lowercased once here so per-request candidates compare cheaply.
	var supported []string
	if len(cfg.SupportedLangs) > 0 {
		supported = make([]string, len(cfg.SupportedLangs))
		for i, lang := range cfg.SupportedLangs {
			supported[i] = strings.ToLower(lang)
		}
	}

	sources := []func(r *http.Request) string{
		func(r *http.Request) string {
			if cfg.CookieName == "" {
				return ""
			}
			cookie, err := r.Cookie(cfg.CookieName)
			if err != nil {
				return ""
			}
			return strings.TrimSpace(cookie.Value)
		},
		func(r *http.Request) string {
			if cfg.QueryParamName == "" {
				return ""
			}
			return strings.TrimSpace(r.URL.Query().Get(cfg.QueryParamName))
		},
		func(r *http.Request) string {
			return strings.TrimSpace(r.Header.Get("Language"))
		},
	}

	return func(r *http.Request) string {
		for _, source := range sources {
			if lang := normalizeCandidate(source(r), supported); lang != "" {
				return lang
			}
		}

		header := r.Header.Get("Accept-Language")
		if header == "" {
			return ""
		}
		if len(supported) > 0 {
			return ParseAcceptLanguage(header, supported, "")
		}
		if prefs := parseAcceptLanguageHeader(header); len(prefs) > 0 {
			return prefs[0].lang
		}
		return ""
	}
}
