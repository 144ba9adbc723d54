package config

import (
	"errors"
	"fmt"
	"reflect"
	"sync"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// dotenvOnce folds the optional .env file into the process environment
// at most once, before the first parse. Explicitly chosen files go
// through LoadEnv instead.
var dotenvOnce sync.Once

// registry caches one parsed value per configuration type, so every
// package asking for the same struct sees the same snapshot no matter
// how the environment drifts afterwards.
type registry struct {
	mu     sync.Mutex
	parsed map[string]any
}

var cache = &registry{parsed: make(map[string]any)}

// Load parses environment variables into v based on its env tags. The
// first successful parse per struct type is cached and returned to all
// later callers; a failed parse is retried on the next call.
//
// Example:
//
//	type AppConfig struct {
//		Addr            string `env:"HTTP_ADDR" envDefault:":8080"`
//		DefaultLanguage string `env:"I18N_DEFAULT_LANGUAGE" envDefault:"en"`
//		SourcePath      string `env:"I18N_SOURCE_PATH,required"`
//	}
//
//	var cfg AppConfig
//	if err := config.Load(&cfg); err != nil {
//		// handle error
//	}
func Load[T any](v *T) error {
	if v == nil {
		return ErrNilPointer
	}
	dotenvOnce.Do(func() {
		// A missing .env file is not an error, most deployments set
		// real environment variables instead.
		_ = godotenv.Load()
	})

	key := typeKey[T]()

	cache.mu.Lock()
	defer cache.mu.Unlock()
	if cached, ok := cache.parsed[key]; ok {
		*v = cached.(T)
		return nil
	}
	if err := env.Parse(v); err != nil {
		return errors.Join(ErrParsingConfig, err)
	}
	cache.parsed[key] = *v
	return nil
}

// MustLoad works like Load but panics on failure. Meant for
// configuration the process cannot start without.
func MustLoad[T any](v *T) {
	if err := Load(v); err != nil {
		panic(fmt.Sprintf("config: %v", err))
	}
}

// typeKey names T uniquely enough to key the cache.
func typeKey[T any]() string {
	if t := reflect.TypeOf(*new(T)); t != nil {
		return t.String()
	}
	// Interface types reflect to nil; fall back to the formatted name.
	return fmt.Sprintf("%T", *new(T))
}
