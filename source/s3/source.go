package s3

import (
	"context"
	"errors"
	"fmt"
	"io"
	"maps"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"

	"github.com/dmitrymomot/localekit/i18n"
)

// Client defines the interface for S3 operations used by Source and
// Healthcheck. Declared as an interface so tests can substitute a fake
// without a live bucket.
type Client interface {
	ListObjectsV2(ctx context.Context, params *s3.ListObjectsV2Input, optFns ...func(*s3.Options)) (*s3.ListObjectsV2Output, error)
	GetObject(ctx context.Context, params *s3.GetObjectInput, optFns ...func(*s3.Options)) (*s3.GetObjectOutput, error)
	HeadBucket(ctx context.Context, params *s3.HeadBucketInput, optFns ...func(*s3.Options)) (*s3.HeadBucketOutput, error)
}

// Source loads the translation catalog from an S3 bucket. Objects are laid
// out as <prefix><language>/<file>, one folder per language:
//
//	i18n/en/common.json
//	i18n/en/errors.json
//	i18n/de/common.json
//
// Every object in a language folder is decoded with the configured parser.
// Objects directly under the prefix and objects nested deeper than one
// folder are ignored.
type Source struct {
	client Client
	parser i18n.Parser
	bucket string
	prefix string
}

// NewSource creates a translation source reading objects under the given
// key prefix. A non-empty prefix is normalized to end with "/"; an empty
// prefix reads language folders from the bucket root.
// Returns nil if client or parser is nil, or bucket is empty.
func NewSource(client Client, parser i18n.Parser, bucket, prefix string) *Source {
	if client == nil || parser == nil || bucket == "" {
		return nil
	}
	if prefix != "" && !strings.HasSuffix(prefix, "/") {
		prefix += "/"
	}
	return &Source{client: client, parser: parser, bucket: bucket, prefix: prefix}
}

// Load lists all objects under the prefix and assembles the catalog. Listing
// returns keys in ascending order, so when two files in one language folder
// define the same message key the lexicographically later file wins. A file
// the parser cannot decode fails the whole load with an error naming the
// object key.
func (s *Source) Load(ctx context.Context) (map[string]map[string]string, error) {
	paginator := s3.NewListObjectsV2Paginator(s.client, &s3.ListObjectsV2Input{
		Bucket: aws.String(s.bucket),
		Prefix: aws.String(s.prefix),
	})

	translations := make(map[string]map[string]string)
	for paginator.HasMorePages() {
		page, err := paginator.NextPage(ctx)
		if err != nil {
			return nil, errors.Join(ErrFailedToLoadTranslations, err)
		}

		for _, obj := range page.Contents {
			key := aws.ToString(obj.Key)
			lang, file, ok := strings.Cut(strings.TrimPrefix(key, s.prefix), "/")
			if !ok || lang == "" || file == "" || strings.Contains(file, "/") {
				continue
			}

			msgs, err := s.loadObject(ctx, key)
			if err != nil {
				return nil, err
			}

			if translations[lang] == nil {
				translations[lang] = make(map[string]string)
			}
			maps.Copy(translations[lang], msgs)
		}
	}

	return translations, nil
}

func (s *Source) loadObject(ctx context.Context, key string) (map[string]string, error) {
	out, err := s.client.GetObject(ctx, &s3.GetObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(key),
	})
	if err != nil {
		return nil, errors.Join(ErrFailedToLoadTranslations, fmt.Errorf("%s: %w", key, err))
	}
	defer func() { _ = out.Body.Close() }()

	data, err := io.ReadAll(out.Body)
	if err != nil {
		return nil, errors.Join(ErrFailedToLoadTranslations, fmt.Errorf("%s: %w", key, err))
	}

	msgs, err := s.parser.Parse(data)
	if err != nil {
		return nil, errors.Join(i18n.ErrFailedToParseFile, fmt.Errorf("%s: %w", key, err))
	}
	return msgs, nil
}
