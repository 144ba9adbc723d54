package httperr

import (
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"

	"github.com/dmitrymomot/localekit/i18n"
	"github.com/dmitrymomot/localekit/pkg/logger"
	"github.com/dmitrymomot/localekit/pkg/requestid"
)

// Response is the JSON body written for every handled error.
// Message holds either a single translated string or an ordered list of
// translated strings for multi-message errors.
type Response struct {
	StatusCode int `json:"statusCode"`
	Message    any `json:"message"`
}

// Option configures a Handler.
type Option func(*Handler)

// WithExtractor sets the function used to derive a language hint from the
// inbound request. Nil extractors are ignored.
func WithExtractor(extractor i18n.LangExtractor) Option {
	return func(h *Handler) {
		if extractor != nil {
			h.extractor = extractor
		}
	}
}

// WithLogger sets the logger used for handled errors. Nil loggers are ignored.
func WithLogger(log *slog.Logger) Option {
	return func(h *Handler) {
		if log != nil {
			h.log = log
		}
	}
}

// Handler converts errors raised by HTTP handlers into translated JSON error
// responses. It never fails: whatever the error looks like and whatever the
// extractor does, a response is always written.
type Handler struct {
	translator *i18n.Translator
	extractor  i18n.LangExtractor
	log        *slog.Logger
}

// NewHandler creates an error handler backed by the given translator.
// A nil translator is allowed: messages then pass through untranslated, which
// keeps the error path usable while the catalog is unavailable.
//
// Unless overridden with WithExtractor, the language hint is a constant
// function returning the translator's default language.
func NewHandler(translator *i18n.Translator, opts ...Option) *Handler {
	h := &Handler{
		translator: translator,
		log:        slog.New(slog.NewTextHandler(io.Discard, nil)), // Nope-logger by default
	}
	for _, opt := range opts {
		opt(h)
	}
	if h.extractor == nil && translator != nil {
		h.extractor = i18n.StaticLangExtractor(translator.DefaultLanguage())
	}
	return h
}

// Handle writes a JSON error response for err. The status code and message
// come from an Error found anywhere in err's chain; any other error is
// reported as 500 with its raw text as the message. A nil err counts as an
// internal server error.
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request, err error) {
	if err == nil {
		err = ErrInternalServerError
	}

	statusCode := http.StatusInternalServerError
	var message any = err.Error()

	var httpErr Error
	if errors.As(err, &httpErr) && httpErr.Code >= 100 {
		statusCode = httpErr.Code
		if len(httpErr.Keys) > 0 {
			message = httpErr.Keys
		} else {
			message = httpErr.Key
		}
	}

	lang := h.resolveLang(r)
	message = h.translateMessage(message, lang)

	h.logError(r, err, statusCode, lang)

	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(statusCode)
	if encErr := json.NewEncoder(w).Encode(Response{StatusCode: statusCode, Message: message}); encErr != nil {
		h.log.LogAttrs(r.Context(), slog.LevelError, "failed to encode error response",
			logger.Error(encErr),
			logger.Component("httperr"),
		)
	}
}

// Wrap adapts a handler function returning an error into an http.Handler,
// routing every non-nil error through Handle.
func (h *Handler) Wrap(fn func(w http.ResponseWriter, r *http.Request) error) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if err := fn(w, r); err != nil {
			h.Handle(w, r, err)
		}
	})
}

// resolveLang derives the language for this response. The extractor's hint is
// used only when it names a loaded language; otherwise the empty string is
// returned and the translator's default-language policy applies.
func (h *Handler) resolveLang(r *http.Request) string {
	if h.translator == nil || h.extractor == nil {
		return ""
	}
	if hint := h.safeExtract(r); hint != "" && h.translator.HasLanguage(hint) {
		return hint
	}
	return ""
}

// safeExtract invokes the extractor, containing panics. The extractor is
// host-supplied code running on the error path; a hint is never worth
// aborting the response for.
func (h *Handler) safeExtract(r *http.Request) (hint string) {
	defer func() {
		if rec := recover(); rec != nil {
			h.log.LogAttrs(r.Context(), slog.LevelWarn, "language extractor panicked",
				slog.Any("panic", rec),
				logger.Component("httperr"),
			)
			hint = ""
		}
	}()
	return h.extractor(r)
}

// translateMessage translates a single message or each element of a message
// list. Translation failures leave the affected message untouched.
func (h *Handler) translateMessage(message any, lang string) any {
	if h.translator == nil {
		return message
	}
	switch msg := message.(type) {
	case string:
		return h.translate(msg, lang)
	case []string:
		translated := make([]string, len(msg))
		for i, m := range msg {
			translated[i] = h.translate(m, lang)
		}
		return translated
	default:
		return message
	}
}

func (h *Handler) translate(key string, lang string) string {
	var opts []i18n.TranslateOption
	if lang != "" {
		opts = append(opts, i18n.WithLang(lang))
	}
	translated, err := h.translator.Translate(key, opts...)
	if err != nil {
		return key
	}
	return translated
}

func (h *Handler) logError(r *http.Request, err error, statusCode int, lang string) {
	level := slog.LevelError
	if statusCode >= http.StatusBadRequest && statusCode < http.StatusInternalServerError {
		level = slog.LevelWarn
	}

	h.log.LogAttrs(r.Context(), level, "request error",
		logger.RequestID(requestid.FromContext(r.Context())),
		logger.Error(err),
		slog.Int("status_code", statusCode),
		slog.String("method", r.Method),
		slog.String("path", r.URL.Path),
		logger.Language(lang),
		logger.Component("httperr"),
	)
}
