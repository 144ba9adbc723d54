// Package pg loads the translation catalog from PostgreSQL and provides the
// connection plumbing around it: pooled connectivity via pgx/v5, goose
// migrations for the translations schema, and a health check closure for
// readiness probes.
//
// # Architecture
//
// The package exposes four cooperating building blocks:
//
//   • Config – a declarative struct whose fields are populated from
//     environment variables via github.com/caarlos0/env. It controls
//     connection pool limits, the translations table name and migration paths.
//
//   • Connect – opens a *pgxpool.Pool based on Config, retrying with
//     linear back-off until the database becomes available.
//
//   • Migrate – runs goose database migrations against the same connection
//     pool, guaranteeing the translations table exists before the catalog
//     is read.
//
//   • Source – an i18n.Source implementation reading rows of
//     (language, key, message) and assembling them into the catalog.
//
// # Usage
//
//	var cfg pg.Config
//	if err := config.Load(&cfg); err != nil {
//	    panic(err)
//	}
//
//	ctx := context.Background()
//	pool, err := pg.Connect(ctx, cfg)
//	if err != nil {
//	    panic(err)
//	}
//	defer pool.Close()
//
//	if err := pg.Migrate(ctx, pool, cfg, slog.Default()); err != nil {
//	    panic(err)
//	}
//
//	translator, err := i18n.New(ctx, pg.NewSource(pool, cfg.TranslationsTable))
//
// # Error Handling
//
// All failures wrap package sentinel errors (ErrFailedToOpenDBConnection,
// ErrFailedToLoadTranslations, ...) so callers can classify them with
// errors.Is.
package pg
