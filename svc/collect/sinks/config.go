package sinks

import (
	"net/http"
	"time"

	"github.com/msprojectmerger/landing/pkg/email"
	"github.com/msprojectmerger/landing/pkg/mongo"
	"github.com/msprojectmerger/landing/pkg/opensearch"
	"github.com/msprojectmerger/landing/pkg/pg"
	"github.com/msprojectmerger/landing/pkg/redis"
)

// Sink names accepted in COLLECT_SINKS.
const (
	NameLog        = "log"
	NameMemory     = "memory"
	NameRedis      = "redis"
	NamePostgres   = "postgres"
	NameMongo      = "mongo"
	NameOpenSearch = "opensearch"
	NameWebhook    = "webhook"
	NameEmail      = "email"
)

// Config selects and configures the record sinks.
type Config struct {
	Names []string `env:"COLLECT_SINKS" envSeparator:"," envDefault:"log"`

	RedisListKey    string `env:"REDIS_LIST_KEY" envDefault:"email-list"`
	PostgresTable   string `env:"PG_SUBMISSIONS_TABLE" envDefault:"email_submissions"`
	MongoCollection string `env:"MONGODB_COLLECTION" envDefault:"email_submissions"`
	OpenSearchIndex string `env:"OPENSEARCH_INDEX" envDefault:"email-submissions"`

	WebhookURL           string        `env:"WEBHOOK_URL"`
	WebhookSecret        string        `env:"WEBHOOK_SECRET"`
	WebhookTimeout       time.Duration `env:"WEBHOOK_TIMEOUT" envDefault:"5s"`
	// WebhookRetries is the number of extra attempts after a failed delivery.
	WebhookRetries       int           `env:"WEBHOOK_RETRIES" envDefault:"0"`
	WebhookRetryInterval time.Duration `env:"WEBHOOK_RETRY_INTERVAL" envDefault:"1s"`

	// NotifyEmail receives one message per record from the email sink.
	NotifyEmail string `env:"NOTIFY_EMAIL"`
}

// Infra carries the connection settings of every store a sink may need.
// Only the sections for selected sinks are used.
type Infra struct {
	Redis      redis.Config
	Postgres   pg.Config
	Mongo      mongo.Config
	OpenSearch opensearch.Config
	Email      email.Config

	// HTTPClient, when set, carries webhook deliveries. It is not read from
	// the environment.
	HTTPClient *http.Client `env:"-"`
}
