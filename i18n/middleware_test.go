package i18n_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/dmitrymomot/localekit/i18n"

	"github.com/stretchr/testify/assert"
)

func TestSetGetLocale(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	assert.Equal(t, "en", i18n.GetLocale(ctx))

	ctx = i18n.SetLocale(ctx, "de")
	assert.Equal(t, "de", i18n.GetLocale(ctx))

	ctx = i18n.SetLocale(ctx, "")
	assert.Equal(t, "en", i18n.GetLocale(ctx))
}

func TestMiddleware(t *testing.T) {
	t.Parallel()

	captureLocale := func(got *string) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			*got = i18n.GetLocale(r.Context())
			w.WriteHeader(http.StatusNoContent)
		})
	}

	t.Run("stores extracted language", func(t *testing.T) {
		t.Parallel()
		var got string
		handler := i18n.Middleware(i18n.StaticLangExtractor("de"))(captureLocale(&got))

		req := httptest.NewRequest("GET", "/", nil)
		handler.ServeHTTP(httptest.NewRecorder(), req)

		assert.Equal(t, "de", got)
	})

	t.Run("falls back to default on empty extraction", func(t *testing.T) {
		t.Parallel()
		var got string
		handler := i18n.Middleware(i18n.StaticLangExtractor(""))(captureLocale(&got))

		req := httptest.NewRequest("GET", "/", nil)
		handler.ServeHTTP(httptest.NewRecorder(), req)

		assert.Equal(t, "en", got)
	})

	t.Run("nil extractor uses the default one", func(t *testing.T) {
		t.Parallel()
		var got string
		handler := i18n.Middleware(nil)(captureLocale(&got))

		req := httptest.NewRequest("GET", "/", nil)
		req.AddCookie(&http.Cookie{Name: "lang", Value: "fr"})
		handler.ServeHTTP(httptest.NewRecorder(), req)

		assert.Equal(t, "fr", got)
	})

	t.Run("feeds TranslateContext", func(t *testing.T) {
		t.Parallel()
		translator := newTestTranslator(t)

		var got string
		handler := i18n.Middleware(i18n.StaticLangExtractor("de"))(
			http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				msg, err := translator.TranslateContext(r.Context(), "hello")
				assert.NoError(t, err)
				got = msg
			}),
		)

		handler.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest("GET", "/", nil))
		assert.Equal(t, "Hallo", got)
	})
}
