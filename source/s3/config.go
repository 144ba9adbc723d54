package s3

// Config represents the configuration for the S3 bucket holding the catalog.
type Config struct {
	Bucket         string `env:"S3_BUCKET,required"`                     // Bucket is the bucket holding the translation objects.
	Region         string `env:"S3_REGION" envDefault:"us-east-1"`       // Region is the AWS region of the bucket.
	AccessKeyID    string `env:"S3_ACCESS_KEY_ID"`                       // AccessKeyID is the static access key. Leave empty to use the default credential chain.
	SecretKey      string `env:"S3_SECRET_KEY"`                          // SecretKey is the static secret key paired with AccessKeyID.
	Endpoint       string `env:"S3_ENDPOINT"`                            // Endpoint overrides the S3 endpoint for S3-compatible services.
	ForcePathStyle bool   `env:"S3_FORCE_PATH_STYLE" envDefault:"false"` // ForcePathStyle enables path-style addressing for services like MinIO.

	TranslationsPrefix string `env:"S3_TRANSLATIONS_PREFIX" envDefault:"i18n/"` // TranslationsPrefix is the key prefix under which per-language folders live.
}
