// Package redis loads the translation catalog from Redis and provides the
// connection plumbing around it: a retrying client constructor and a health
// check closure for readiness probes.
//
// Translations live in one hash per language, keyed by a configurable prefix:
//
//	HSET i18n:en hello "Hello" welcome "Welcome, ${name}!"
//	HSET i18n:de hello "Hallo"
//
// Source scans the prefix once at startup and assembles the catalog; runtime
// changes to the hashes are not observed until the service restarts.
//
// # Usage
//
//	var cfg redis.Config
//	if err := config.Load(&cfg); err != nil {
//	    panic(err)
//	}
//
//	client, err := redis.Connect(ctx, cfg)
//	if err != nil {
//	    panic(err)
//	}
//	defer client.Close()
//
//	translator, err := i18n.New(ctx, redis.NewSource(client, cfg.TranslationsPrefix))
package redis
