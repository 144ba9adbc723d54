package i18n

import "net/http"

// Middleware resolves the client's preferred language once per request
// and stores it in the request context for everything downstream. A nil
// extractor means DefaultLangExtractor; an empty extraction falls back
// to the package default "en".
//
// Handlers read the stored language with GetLocale, or implicitly via
// Translator.TranslateContext.
func Middleware(extr LangExtractor) func(http.Handler) http.Handler {
	if extr == nil {
		extr = DefaultLangExtractor()
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			lang := extr(r)
			if lang == "" {
				lang = DefaultLanguage
			}
			next.ServeHTTP(w, r.WithContext(SetLocale(r.Context(), lang)))
		})
	}
}
