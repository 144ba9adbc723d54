package redis

import (
	"context"
	"errors"
	"strings"

	"github.com/redis/go-redis/v9"
)

// scanBatchSize is the COUNT hint passed to SCAN when walking language keys.
const scanBatchSize = 100

// Client is the subset of redis.UniversalClient the translation source needs.
// Declared as an interface so tests can substitute a fake without a live
// server.
type Client interface {
	Scan(ctx context.Context, cursor uint64, match string, count int64) *redis.ScanCmd
	HGetAll(ctx context.Context, key string) *redis.MapStringStringCmd
}

// Source loads the translation catalog from Redis. Each language is stored as
// a hash named <prefix><language> whose fields map message keys to templates,
// for example:
//
//	HSET i18n:en hello "Hello" welcome "Welcome, ${name}!"
type Source struct {
	client Client
	prefix string
}

// NewSource creates a translation source reading hashes under the given key
// prefix. Returns nil if client is nil. An empty prefix falls back to "i18n:".
func NewSource(client Client, prefix string) *Source {
	if client == nil {
		return nil
	}
	if prefix == "" {
		prefix = "i18n:"
	}
	return &Source{client: client, prefix: prefix}
}

// Load walks all language hashes under the configured prefix and assembles
// the catalog. It is called once at translator construction; the catalog does
// not refresh afterwards.
func (s *Source) Load(ctx context.Context) (map[string]map[string]string, error) {
	translations := make(map[string]map[string]string)

	var cursor uint64
	for {
		keys, next, err := s.client.Scan(ctx, cursor, s.prefix+"*", scanBatchSize).Result()
		if err != nil {
			return nil, errors.Join(ErrFailedToLoadTranslations, err)
		}

		for _, key := range keys {
			lang := strings.TrimPrefix(key, s.prefix)
			if lang == "" {
				continue
			}

			fields, err := s.client.HGetAll(ctx, key).Result()
			if err != nil {
				return nil, errors.Join(ErrFailedToLoadTranslations, err)
			}

			if translations[lang] == nil {
				translations[lang] = make(map[string]string)
			}
			for k, v := range fields {
				translations[lang][k] = v
			}
		}

		cursor = next
		if cursor == 0 {
			break
		}
	}

	return translations, nil
}
