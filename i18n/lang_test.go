package i18n_test

import (
	"strings"
	"testing"

	"github.com/dmitrymomot/localekit/i18n"

	"github.com/stretchr/testify/assert"
)

func TestParseAcceptLanguage(t *testing.T) {
	t.Parallel()

	supported := []string{"en", "de", "fr-ca"}

	tests := []struct {
		name     string
		header   string
		expected string
	}{
		{"empty header", "", "xx"},
		{"exact match", "de", "de"},
		{"exact match with region", "fr-CA", "fr-ca"},
		{"quality ordering", "de;q=0.5,en;q=0.9", "en"},
		{"base language fallback", "de-AT", "de"},
		{"exact beats base across preferences", "en-GB;q=0.9,de;q=0.5", "de"},
		{"no match falls back to default", "ja,ko;q=0.8", "xx"},
		{"malformed quality ignored", "de;q=oops", "de"},
		{"wildcard has no special meaning", "*", "xx"},
		{"case insensitive", "DE", "de"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got := i18n.ParseAcceptLanguage(tt.header, supported, "xx")
			assert.Equal(t, tt.expected, got)
		})
	}

	t.Run("no supported languages returns default", func(t *testing.T) {
		t.Parallel()
		assert.Equal(t, "xx", i18n.ParseAcceptLanguage("en", nil, "xx"))
	})

	t.Run("oversized header is truncated not rejected", func(t *testing.T) {
		t.Parallel()
		header := "de," + strings.Repeat("x", 8192)
		assert.Equal(t, "de", i18n.ParseAcceptLanguage(header, supported, "xx"))
	})

	t.Run("opaque language names participate", func(t *testing.T) {
		t.Parallel()
		got := i18n.ParseAcceptLanguage("pirate;q=0.9,en;q=0.1", []string{"en", "pirate"}, "en")
		assert.Equal(t, "pirate", got)
	})
}
