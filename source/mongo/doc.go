// Package mongo loads the translation catalog from a MongoDB collection and
// provides the connection plumbing around it: a retrying client constructor
// and a health check closure for readiness probes.
//
// Each translation is one document:
//
//	{ "language": "en", "key": "welcome", "message": "Welcome, ${name}!" }
//
// Source reads the whole collection once at startup and assembles the
// catalog; later writes to the collection are not observed until the service
// restarts.
//
// # Usage
//
//	var cfg mongo.Config
//	if err := config.Load(&cfg); err != nil {
//	    panic(err)
//	}
//
//	db, err := mongo.ConnectDatabase(ctx, cfg)
//	if err != nil {
//	    panic(err)
//	}
//	defer db.Client().Disconnect(ctx)
//
//	coll := db.Collection(cfg.TranslationsCollection)
//	translator, err := i18n.New(ctx, mongo.NewSource(coll))
//
// # Error Handling
//
// Failures wrap the package sentinels (ErrFailedToConnectToMongo,
// ErrFailedToLoadTranslations, ErrHealthcheckFailed), so callers can
// classify them with errors.Is.
package mongo
