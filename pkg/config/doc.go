// Package config loads typed application configuration from environment
// variables, with optional .env files for local development.
//
// Parsing is delegated to github.com/caarlos0/env/v11 (struct tags) and
// github.com/joho/godotenv (.env files). On top of those the package adds
// a per-type cache: the first successful Load of a struct type snapshots
// the parsed value, and every later Load of the same type returns that
// snapshot regardless of how the process environment drifts afterwards.
//
// # Architecture
//
// A single package-level registry maps the fully qualified type name to
// its parsed value, guarded by one mutex. A failed parse is not cached,
// so callers may fix the environment and call Load again. Before the
// first parse the default .env file is folded into the process
// environment once; missing files are ignored at that stage, while
// explicitly named files loaded through LoadEnv must exist.
//
// # Usage
//
//	type AppConfig struct {
//		Addr            string `env:"HTTP_ADDR" envDefault:":8080"`
//		DefaultLanguage string `env:"I18N_DEFAULT_LANGUAGE" envDefault:"en"`
//		SourcePath      string `env:"I18N_SOURCE_PATH,required"`
//	}
//
//	var cfg AppConfig
//	if err := config.Load(&cfg); err != nil {
//		log.Fatalf("parsing env: %v", err)
//	}
//
// Several packages in this module ship their own Config structs (i18n,
// httpserver, the source backends); Load works on any of them the same
// way.
//
// # Error Handling
//
// Sentinel errors compose with errors.Is:
//
//   - ErrParsingConfig: env vars could not be parsed into the struct
//   - ErrNilPointer: nil target passed to Load or ForceReloadConfig
//   - ErrLoadingEnvFile: a named .env file could not be read
//
// # Testing Helpers
//
// ResetCache drops every cached snapshot; ForceReloadConfig re-parses a
// single type and replaces its snapshot. Both exist for tests that
// mutate the environment between loads.
package config
