package main

import (
	"context"
	"embed"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"os"

	"github.com/go-chi/chi/v5"

	"github.com/dmitrymomot/localekit/httperr"
	"github.com/dmitrymomot/localekit/i18n"
	"github.com/dmitrymomot/localekit/pkg/config"
	"github.com/dmitrymomot/localekit/pkg/httpserver"
	"github.com/dmitrymomot/localekit/pkg/logger"
	"github.com/dmitrymomot/localekit/pkg/requestid"
	"github.com/dmitrymomot/localekit/source/mongo"
	"github.com/dmitrymomot/localekit/source/pg"
	"github.com/dmitrymomot/localekit/source/redis"
	"github.com/dmitrymomot/localekit/source/s3"
)

//go:embed translations
var embeddedCatalog embed.FS

type appConfig struct {
	Environment string `env:"APP_ENV" envDefault:"development"`     // Environment selects the logger profile: development, staging or production.
	ServiceName string `env:"APP_NAME" envDefault:"localekit-demo"` // ServiceName is attached to every log line.
	Source      string `env:"LOCALE_SOURCE" envDefault:"embed"`     // Source selects the catalog backend: embed, dir, pg, redis, mongo or s3.
}

func main() {
	var cfg appConfig
	config.MustLoad(&cfg)

	log := logger.New(
		logger.WithEnvironment(cfg.Environment, cfg.ServiceName),
		logger.WithContextExtractors(requestid.LoggerExtractor()),
	)

	if err := run(context.Background(), cfg, log); err != nil {
		log.Error("Service stopped", logger.Error(err))
		os.Exit(1)
	}
}

func run(ctx context.Context, cfg appConfig, log *slog.Logger) error {
	var i18nCfg i18n.Config
	if err := config.Load(&i18nCfg); err != nil {
		return err
	}

	src, checks, cleanup, err := buildSource(ctx, cfg.Source, i18nCfg, log)
	if err != nil {
		return err
	}
	defer cleanup()

	translator, err := i18n.New(ctx, src,
		i18n.WithDefaultLanguage(i18nCfg.DefaultLanguage),
		i18n.WithLogger(log),
		i18n.WithMissingTranslationsLogging(true),
	)
	if err != nil {
		return err
	}

	extractor := i18n.DefaultLangExtractor(
		i18n.WithSupportedLanguages(translator.SupportedLanguages()...),
	)
	errHandler := httperr.NewHandler(translator,
		httperr.WithExtractor(extractor),
		httperr.WithLogger(log),
	)

	r := chi.NewRouter()
	r.Use(requestid.Middleware)
	r.Use(i18n.Middleware(extractor))

	r.Get("/v1/healthz", httpserver.HealthCheckHandler(ctx, log))
	r.Get("/v1/readyz", httpserver.HealthCheckHandler(ctx, log, checks...))
	r.Get("/v1/languages", listLanguages(translator))
	r.Method(http.MethodGet, "/v1/translate", errHandler.Wrap(translateMessage(translator)))
	r.Method(http.MethodGet, "/v1/secret", errHandler.Wrap(func(http.ResponseWriter, *http.Request) error {
		return httperr.ErrUnauthorized
	}))

	var httpCfg httpserver.Config
	if err := config.Load(&httpCfg); err != nil {
		return err
	}

	srv := httpserver.NewFromConfig(httpCfg,
		httpserver.WithLogger(log),
		httpserver.WithStartHook(func(l *slog.Logger) {
			l.Info("Listening", slog.String("addr", httpCfg.Addr), logger.Component("httpserver"))
		}),
	)
	return srv.Run(ctx, r)
}

// buildSource wires the catalog backend selected by LOCALE_SOURCE together
// with its readiness checks and a cleanup function for held connections.
func buildSource(ctx context.Context, kind string, i18nCfg i18n.Config, log *slog.Logger) (i18n.Source, []func(context.Context) error, func(), error) {
	noop := func() {}

	switch kind {
	case "embed":
		return i18n.NewFSSource(i18n.NewJSONParser(), embeddedCatalog, "translations"), nil, noop, nil

	case "dir":
		return i18n.NewDirSource(i18n.NewJSONParser(), i18nCfg.SourcePath), nil, noop, nil

	case "pg":
		var cfg pg.Config
		if err := config.Load(&cfg); err != nil {
			return nil, nil, nil, err
		}
		pool, err := pg.Connect(ctx, cfg)
		if err != nil {
			return nil, nil, nil, err
		}
		if err := pg.Migrate(ctx, pool, cfg, log); err != nil {
			pool.Close()
			return nil, nil, nil, err
		}
		return pg.NewSource(pool, cfg.TranslationsTable),
			[]func(context.Context) error{pg.Healthcheck(pool)},
			pool.Close, nil

	case "redis":
		var cfg redis.Config
		if err := config.Load(&cfg); err != nil {
			return nil, nil, nil, err
		}
		client, err := redis.Connect(ctx, cfg)
		if err != nil {
			return nil, nil, nil, err
		}
		return redis.NewSource(client, cfg.TranslationsPrefix),
			[]func(context.Context) error{redis.Healthcheck(client)},
			func() { _ = client.Close() }, nil

	case "mongo":
		var cfg mongo.Config
		if err := config.Load(&cfg); err != nil {
			return nil, nil, nil, err
		}
		client, err := mongo.Connect(ctx, cfg)
		if err != nil {
			return nil, nil, nil, err
		}
		coll := client.Database(cfg.Database).Collection(cfg.TranslationsCollection)
		return mongo.NewSource(coll),
			[]func(context.Context) error{mongo.Healthcheck(client)},
			func() { _ = client.Disconnect(context.Background()) }, nil

	case "s3":
		var cfg s3.Config
		if err := config.Load(&cfg); err != nil {
			return nil, nil, nil, err
		}
		client, err := s3.Connect(ctx, cfg)
		if err != nil {
			return nil, nil, nil, err
		}
		return s3.NewSource(client, i18n.NewJSONParser(), cfg.Bucket, cfg.TranslationsPrefix),
			[]func(context.Context) error{s3.Healthcheck(client, cfg.Bucket)},
			noop, nil

	default:
		return nil, nil, nil, fmt.Errorf("unknown LOCALE_SOURCE: %s", kind)
	}
}

func listLanguages(translator *i18n.Translator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, map[string]any{
			"languages": translator.SupportedLanguages(),
			"default":   translator.DefaultLanguage(),
		})
	}
}

// translateMessage resolves ?key= in the request language; every other query
// parameter becomes a ${name} replacement.
func translateMessage(translator *i18n.Translator) func(http.ResponseWriter, *http.Request) error {
	return func(w http.ResponseWriter, r *http.Request) error {
		key := r.URL.Query().Get("key")
		if key == "" {
			return httperr.ErrBadRequest
		}

		replacements := make(map[string]string)
		for name, values := range r.URL.Query() {
			if name == "key" || name == "lang" || len(values) == 0 {
				continue
			}
			replacements[name] = values[0]
		}

		message, err := translator.TranslateContext(r.Context(), key, i18n.WithReplacements(replacements))
		if err != nil {
			return err
		}

		writeJSON(w, map[string]any{
			"key":      key,
			"language": i18n.GetLocale(r.Context()),
			"message":  message,
		})
		return nil
	}
}

func writeJSON(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	_ = json.NewEncoder(w).Encode(v)
}
