package s3

import "errors"

var (
	ErrInvalidConfig            = errors.New("s3 bucket and region are required")
	ErrFailedToLoadConfig       = errors.New("failed to load aws config")
	ErrHealthcheckFailed        = errors.New("s3 healthcheck failed")
	ErrFailedToLoadTranslations = errors.New("failed to load translations from s3")
)
