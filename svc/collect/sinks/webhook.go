package sinks

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/msprojectmerger/landing/pkg/logger"
	"github.com/msprojectmerger/landing/pkg/webhook"
	"github.com/msprojectmerger/landing/svc/collect"
)

// WebhookOptions configures delivery. Retries defaults to zero: one attempt
// per record.
type WebhookOptions struct {
	URL           string
	Secret        string
	Timeout       time.Duration
	Retries       int
	RetryInterval time.Duration
}

// Webhook posts the record as JSON to a fixed URL.
type Webhook struct {
	sender *webhook.Sender
	opts   WebhookOptions
	log    *slog.Logger
}

func NewWebhook(sender *webhook.Sender, opts WebhookOptions, log *slog.Logger) *Webhook {
	if sender == nil {
		sender = webhook.NewSender()
	}
	if log == nil {
		log = slog.Default()
	}
	return &Webhook{sender: sender, opts: opts, log: log}
}

func (s *Webhook) Accept(ctx context.Context, rec collect.Record) error {
	err := s.sender.Send(ctx, s.opts.URL, rec,
		webhook.WithTimeout(s.opts.Timeout),
		webhook.WithRetry(s.opts.Retries, s.opts.RetryInterval),
		webhook.WithSignature(s.opts.Secret),
		webhook.WithOnDelivery(func(res webhook.DeliveryResult) {
			level := slog.LevelDebug
			if !res.Success {
				level = slog.LevelWarn
			}
			s.log.LogAttrs(ctx, level, "webhook attempt",
				slog.Int("attempt", res.Attempt),
				logger.StatusCode(res.StatusCode),
				logger.Duration(res.Duration),
				logger.Error(res.Error),
				logger.Sink(NameWebhook),
			)
		}),
	)
	if err != nil {
		return errors.Join(ErrDeliverRecord, err)
	}
	return nil
}
