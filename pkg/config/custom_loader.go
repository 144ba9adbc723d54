package config

import (
	"errors"
	"fmt"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// LoadEnv loads environment variables from the given .env files into the
// process environment. Files are applied in order and later files override
// values set by earlier ones. With no arguments the default ".env" in the
// current working directory is loaded.
func LoadEnv(filenames ...string) error {
	if err := godotenv.Overload(filenames...); err != nil {
		return errors.Join(ErrLoadingEnvFile, err)
	}
	return nil
}

// MustLoadEnv works like LoadEnv but panics if any file cannot be loaded.
func MustLoadEnv(filenames ...string) {
	if err := LoadEnv(filenames...); err != nil {
		panic(fmt.Sprintf("config: %v", err))
	}
}

// ResetCache drops every cached configuration value. Intended for tests
// that mutate the process environment between loads.
func ResetCache() {
	cache.mu.Lock()
	defer cache.mu.Unlock()
	cache.parsed = make(map[string]any)
}

// ForceReloadConfig re-parses environment variables into v, replacing any
// cached value for its type. Use it when the environment has changed after
// the type was first loaded.
func ForceReloadConfig[T any](v *T) error {
	if v == nil {
		return ErrNilPointer
	}
	if err := env.Parse(v); err != nil {
		return errors.Join(ErrParsingConfig, err)
	}

	cache.mu.Lock()
	defer cache.mu.Unlock()
	cache.parsed[typeKey[T]()] = *v
	return nil
}
