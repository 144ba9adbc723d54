package i18n_test

import (
	"testing"

	"github.com/dmitrymomot/localekit/i18n"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestJSONParser(t *testing.T) {
	t.Parallel()
	parser := i18n.NewJSONParser()

	t.Run("flat object", func(t *testing.T) {
		t.Parallel()
		entries, err := parser.Parse([]byte(`{"hello": "Hello", "bye": "Bye"}`))
		require.NoError(t, err)
		assert.Equal(t, map[string]string{"hello": "Hello", "bye": "Bye"}, entries)
	})

	t.Run("empty object", func(t *testing.T) {
		t.Parallel()
		entries, err := parser.Parse([]byte(`{}`))
		require.NoError(t, err)
		assert.Empty(t, entries)
	})

	tests := []struct {
		name    string
		content string
	}{
		{"invalid syntax", `{"hello": `},
		{"empty input", ``},
		{"array", `["a", "b"]`},
		{"null", `null`},
		{"nested object", `{"outer": {"inner": "x"}}`},
		{"numeric value", `{"count": 1}`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			_, err := parser.Parse([]byte(tt.content))
			assert.ErrorIs(t, err, i18n.ErrFailedToParseJSON)
		})
	}
}

func TestYAMLParser(t *testing.T) {
	t.Parallel()
	parser := i18n.NewYAMLParser()

	t.Run("flat mapping", func(t *testing.T) {
		t.Parallel()
		entries, err := parser.Parse([]byte("hello: Hello\nbye: Bye\n"))
		require.NoError(t, err)
		assert.Equal(t, map[string]string{"hello": "Hello", "bye": "Bye"}, entries)
	})

	tests := []struct {
		name    string
		content string
	}{
		{"invalid syntax", "hello: [unclosed"},
		{"empty input", ""},
		{"nested mapping", "outer:\n  inner: x\n"},
		{"sequence", "- a\n- b\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			_, err := parser.Parse([]byte(tt.content))
			assert.ErrorIs(t, err, i18n.ErrFailedToParseYAML)
		})
	}
}

func TestTOMLParser(t *testing.T) {
	t.Parallel()
	parser := i18n.NewTOMLParser()

	t.Run("flat assignments", func(t *testing.T) {
		t.Parallel()
		entries, err := parser.Parse([]byte("hello = \"Hello\"\nbye = \"Bye\"\n"))
		require.NoError(t, err)
		assert.Equal(t, map[string]string{"hello": "Hello", "bye": "Bye"}, entries)
	})

	tests := []struct {
		name    string
		content string
	}{
		{"invalid syntax", `hello = `},
		{"numeric value", `count = 1`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			_, err := parser.Parse([]byte(tt.content))
			assert.ErrorIs(t, err, i18n.ErrFailedToParseTOML)
		})
	}
}
