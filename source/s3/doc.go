// Package s3 loads the translation catalog from an S3 bucket (or any
// S3-compatible service such as MinIO) and provides a health check closure
// for readiness probes.
//
// The bucket mirrors the on-disk catalog layout, one folder per language
// under a configurable prefix:
//
//	i18n/en/common.json
//	i18n/de/common.json
//
// Source lists the prefix once at startup and assembles the catalog; objects
// written afterwards are not observed until the service restarts.
//
// # Usage
//
//	var cfg s3.Config
//	if err := config.Load(&cfg); err != nil {
//	    panic(err)
//	}
//
//	client, err := s3.Connect(ctx, cfg)
//	if err != nil {
//	    panic(err)
//	}
//
//	src := s3.NewSource(client, i18n.NewJSONParser(), cfg.Bucket, cfg.TranslationsPrefix)
//	translator, err := i18n.New(ctx, src)
package s3
