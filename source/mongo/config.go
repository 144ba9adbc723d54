package mongo

import "time"

type Config struct {
	ConnectionURL   string        `env:"MONGODB_URL,required"`                         // Mongo connection URI.
	ConnectTimeout  time.Duration `env:"MONGODB_CONNECT_TIMEOUT" envDefault:"10s"`     // Dial timeout per attempt.
	MaxPoolSize     uint64        `env:"MONGODB_MAX_POOL_SIZE" envDefault:"100"`       // Upper bound of pooled connections.
	MinPoolSize     uint64        `env:"MONGODB_MIN_POOL_SIZE" envDefault:"1"`         // Connections kept open when idle.
	MaxConnIdleTime time.Duration `env:"MONGODB_MAX_CONN_IDLE_TIME" envDefault:"300s"` // Idle time before a pooled connection is dropped.
	RetryWrites     bool          `env:"MONGODB_RETRY_WRITES" envDefault:"true"`       // Driver-level retry of write operations.
	RetryReads      bool          `env:"MONGODB_RETRY_READS" envDefault:"true"`        // Driver-level retry of read operations.
	RetryAttempts   int           `env:"MONGODB_RETRY_ATTEMPTS" envDefault:"3"`        // Connection attempts before giving up.
	RetryInterval   time.Duration `env:"MONGODB_RETRY_INTERVAL" envDefault:"5s"`       // Delay between connection attempts.

	Database               string `env:"MONGODB_DATABASE" envDefault:"i18n"`                        // Database holding the translations collection.
	TranslationsCollection string `env:"MONGODB_TRANSLATIONS_COLLECTION" envDefault:"translations"` // Collection translation documents are read from.
}
