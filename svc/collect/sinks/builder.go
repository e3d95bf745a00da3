package sinks

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/msprojectmerger/landing/pkg/email"
	"github.com/msprojectmerger/landing/pkg/httpserver"
	"github.com/msprojectmerger/landing/pkg/logger"
	"github.com/msprojectmerger/landing/pkg/mongo"
	"github.com/msprojectmerger/landing/pkg/opensearch"
	"github.com/msprojectmerger/landing/pkg/pg"
	"github.com/msprojectmerger/landing/pkg/redis"
	"github.com/msprojectmerger/landing/pkg/webhook"
	"github.com/msprojectmerger/landing/svc/collect"
)

// Set is the sink assembled from Config together with the readiness checks
// and cleanup of the stores it opened.
type Set struct {
	Sink   collect.Sink
	Checks map[string]httpserver.Check
	Names  []string

	closers []func(context.Context) error
}

// Close releases every opened connection, joining the errors.
func (s *Set) Close(ctx context.Context) error {
	var errs []error
	for i := len(s.closers) - 1; i >= 0; i-- {
		if err := s.closers[i](ctx); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

// Build connects the selected stores and returns their sinks. A single
// name yields that sink directly; several are combined with collect.Multi.
// On error, anything already opened is closed.
func Build(ctx context.Context, cfg Config, infra Infra, log *slog.Logger) (*Set, error) {
	if log == nil {
		log = slog.Default()
	}

	set := &Set{Checks: make(map[string]httpserver.Check)}
	var multi collect.Multi
	seen := make(map[string]bool)

	for _, raw := range cfg.Names {
		name := strings.ToLower(strings.TrimSpace(raw))
		if name == "" || seen[name] {
			continue
		}
		seen[name] = true

		sink, err := set.open(ctx, name, cfg, infra, log)
		if err != nil {
			_ = set.Close(context.WithoutCancel(ctx))
			return nil, fmt.Errorf("sink %q: %w", name, err)
		}
		multi = append(multi, collect.NamedSink{Name: name, Sink: sink})
		set.Names = append(set.Names, name)
		log.InfoContext(ctx, "record sink enabled", logger.Sink(name))
	}

	switch len(multi) {
	case 0:
		return nil, ErrNoSinks
	case 1:
		set.Sink = multi[0].Sink
	default:
		set.Sink = multi
	}
	return set, nil
}

func (s *Set) open(ctx context.Context, name string, cfg Config, infra Infra, log *slog.Logger) (collect.Sink, error) {
	switch name {
	case NameLog:
		return collect.NewLogSink(log), nil

	case NameMemory:
		return collect.NewMemorySink(), nil

	case NameRedis:
		client, err := redis.Connect(ctx, infra.Redis)
		if err != nil {
			return nil, err
		}
		s.closers = append(s.closers, func(context.Context) error { return client.Close() })
		s.Checks[NameRedis] = redis.Healthcheck(client)
		return NewRedisList(client, cfg.RedisListKey), nil

	case NamePostgres:
		pool, err := pg.Connect(ctx, infra.Postgres)
		if err != nil {
			return nil, err
		}
		s.closers = append(s.closers, func(context.Context) error { pool.Close(); return nil })
		if infra.Postgres.AutoMigrate {
			if err := pg.Migrate(ctx, pool, infra.Postgres, Migrations, MigrationsDir, log); err != nil {
				return nil, err
			}
		}
		s.Checks[NamePostgres] = pg.Healthcheck(pool)
		return NewPostgres(pool, cfg.PostgresTable), nil

	case NameMongo:
		db, err := mongo.NewWithDatabase(ctx, infra.Mongo)
		if err != nil {
			return nil, err
		}
		client := db.Client()
		s.closers = append(s.closers, client.Disconnect)
		s.Checks[NameMongo] = mongo.Healthcheck(client)
		return NewMongo(db.Collection(cfg.MongoCollection)), nil

	case NameOpenSearch:
		client, err := opensearch.New(ctx, infra.OpenSearch)
		if err != nil {
			return nil, err
		}
		s.Checks[NameOpenSearch] = opensearch.Healthcheck(client)
		return NewOpenSearch(client, cfg.OpenSearchIndex), nil

	case NameWebhook:
		if cfg.WebhookURL == "" {
			return nil, fmt.Errorf("%w: WEBHOOK_URL", ErrMissingConfig)
		}
		return NewWebhook(webhook.NewSenderWithClient(infra.HTTPClient), WebhookOptions{
			URL:           cfg.WebhookURL,
			Secret:        cfg.WebhookSecret,
			Timeout:       cfg.WebhookTimeout,
			Retries:       cfg.WebhookRetries,
			RetryInterval: cfg.WebhookRetryInterval,
		}, log), nil

	case NameEmail:
		if cfg.NotifyEmail == "" {
			return nil, fmt.Errorf("%w: NOTIFY_EMAIL", ErrMissingConfig)
		}
		return NewMailer(newEmailSender(infra.Email, log), cfg.NotifyEmail), nil
	}

	return nil, fmt.Errorf("%w: %s", ErrUnknownSink, name)
}

// newEmailSender uses Postmark when a server token is configured and the
// file-writing dev sender otherwise.
func newEmailSender(cfg email.Config, log *slog.Logger) email.EmailSender {
	if cfg.PostmarkServerToken != "" {
		sender, err := email.NewPostmarkClient(cfg)
		if err == nil {
			return sender
		}
		log.Warn("postmark disabled, writing emails to disk", logger.Error(err), slog.String("dir", cfg.DevDir))
	}
	return email.NewDevSender(cfg.DevDir)
}
