// Package httperr converts application errors into translated JSON error
// responses at the HTTP boundary.
//
// The package pairs a catalog of HTTP errors carrying translation keys with a
// Handler that resolves a language for the inbound request, translates the
// error's message keys, and writes a JSON body of the form:
//
//	{"statusCode": 404, "message": "Page not found"}
//
// Multi-message errors, typically validation failures, produce an array
// instead:
//
//	{"statusCode": 422, "message": ["Email is required", "Password is too short"]}
//
// # Architecture
//
// Error is a plain value carrying an HTTP status code and one or more
// translation keys; the predefined Err* variables cover the standard 4xx and
// 5xx statuses and New/NewMulti construct custom ones. Handler does the rest:
// it unwraps the incoming error chain looking for an Error, derives a language
// hint from the request through a configurable i18n.LangExtractor, translates
// the keys, and encodes the response.
//
// The handler is deliberately failure-proof. Errors without an Error in their
// chain become a 500 whose message is the raw error text. A panicking
// extractor is contained and treated as "no hint". A hint naming an unloaded
// language is discarded in favor of the translator's default. Even a nil
// translator is tolerated: messages then pass through untranslated.
//
// # Usage
//
//	translator, err := i18n.New(ctx, i18n.NewDirSource(i18n.NewJSONParser(), "i18n"))
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	errHandler := httperr.NewHandler(translator,
//	    httperr.WithExtractor(i18n.DefaultLangExtractor(
//	        i18n.WithSupportedLanguages(translator.SupportedLanguages()...),
//	    )),
//	    httperr.WithLogger(log),
//	)
//
//	mux.Handle("GET /v1/secret", errHandler.Wrap(func(w http.ResponseWriter, r *http.Request) error {
//	    return httperr.ErrUnauthorized
//	}))
//
// Handlers return errors; Wrap routes every non-nil error through Handle so
// response shape and logging stay uniform across the service.
//
// # Error Handling
//
// Translation keys missing from the catalog render as themselves, so an
// untranslated deployment still produces readable bodies like
// {"statusCode":401,"message":"unauthorized"}. Handle never returns an error
// and never panics; the worst case is an untranslated message.
package httperr
