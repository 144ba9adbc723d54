// Package i18n loads string catalogs from per-language files and resolves
// message keys with placeholder substitution. It is built for the common
// web-service shape of localization: one directory per language, flat
// key-value catalog files inside, everything loaded once at startup and
// immutable afterwards.
//
// The package allows you to:
//
//   - Load catalogs from a local directory tree, any fs.FS (including
//     embed.FS), an in-memory map, or any custom storage by implementing
//     the Source interface.
//   - Decode catalog files as JSON (default), YAML or TOML through the
//     Parser interface.
//   - Translate keys with named placeholder substitution (`${name}`),
//     with graceful fallback to the key itself for missing entries.
//   - Detect the preferred user language from HTTP requests with pluggable
//     language extractors and Accept-Language negotiation helpers.
//   - Integrate with the standard net/http stack through middleware that
//     stores the resolved language in the request context.
//
// # Architecture
//
// The Translator owns an immutable catalog mapping language codes to flat
// key-value entries. Storage concerns are delegated to a Source, which is
// consumed exactly once inside New; there is no reload, catalogs change by
// restarting the process. Language codes are opaque strings taken from
// directory names, so anything a filesystem accepts as a folder name is a
// valid language.
//
// Translation never fails for missing keys: a key absent from the resolved
// language renders as itself. Only an explicitly requested language that
// was never loaded is an error, since honoring it silently with another
// language would be misleading.
//
// # Usage
//
// Basic set-up with a directory source:
//
//	src := i18n.NewDirSource(i18n.NewJSONParser(), "./i18n")
//	translator, err := i18n.New(context.Background(), src,
//		i18n.WithDefaultLanguage("en"),
//	)
//	if err != nil {
//		log.Fatalf("failed to init translator: %v", err)
//	}
//
//	msg, err := translator.Translate("welcome",
//		i18n.WithLang("de"),
//		i18n.WithReplacements(map[string]string{"name": "John"}),
//	)
//	// With translation "welcome": "Willkommen, ${name}!"
//	// msg == "Willkommen, John!"
//
// # HTTP Middleware
//
// The middleware determines the request language (cookie, query parameter
// and Accept-Language header by default) and stores it in the request
// context, where TranslateContext picks it up:
//
//	mux.Handle("/", i18n.Middleware(nil)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
//		greeting, _ := translator.TranslateContext(r.Context(), "greeting")
//		fmt.Fprintln(w, greeting)
//	})))
//
// # Error Handling
//
// Catalog problems surface at construction time: an unreadable root
// directory or a file that fails to decode aborts New with an error that
// names the offending path and unwraps to the package sentinels, e.g.:
//
//	if errors.Is(err, i18n.ErrFailedToParseFile) {
//	    // bad catalog file, the message names it
//	}
//
// At runtime the only caller-visible error shapes are ErrEmptyKey and
// *ErrLanguageNotSupported for explicitly requested unknown languages.
package i18n
