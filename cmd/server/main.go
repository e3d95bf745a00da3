// Command server serves the landing page email collection endpoint.
package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/msprojectmerger/landing/pkg/clientip"
	"github.com/msprojectmerger/landing/pkg/environment"
	"github.com/msprojectmerger/landing/pkg/httpserver"
	"github.com/msprojectmerger/landing/pkg/logger"
	"github.com/msprojectmerger/landing/pkg/requestid"
	"github.com/msprojectmerger/landing/svc/collect/sinks"
)

func main() {
	if err := run(); err != nil {
		slog.Error("server stopped", logger.Error(err))
		os.Exit(1)
	}
}

func run() error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	env := environment.Parse(cfg.App.Env)
	var level slog.Level
	if err := level.UnmarshalText([]byte(cfg.App.LogLevel)); err != nil {
		level = slog.LevelInfo
	}
	log := logger.New(
		logger.WithLevel(level),
		logger.WithFormat(logger.Format(cfg.App.LogFormat)),
		logger.WithEnvironment(env, cfg.App.ServiceName),
		logger.WithEmailRedaction(cfg.App.RedactEmails),
		logger.WithContextExtractors(requestid.LoggerExtractor(), clientip.LoggerExtractor()),
	)
	logger.SetAsDefault(log)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	set, err := sinks.Build(ctx, cfg.Sinks, cfg.Infra, log)
	if err != nil {
		return err
	}
	defer func() {
		closeCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := set.Close(closeCtx); err != nil {
			log.Error("failed to close sinks", logger.Error(err))
		}
	}()
	log.Info("sinks ready", slog.Any("sinks", set.Names), slog.String("endpoint", cfg.App.EndpointPath))

	router := newRouter(cfg.App, env, set.Sink, set.Checks, log)
	return httpserver.NewFromConfig(cfg.HTTP, httpserver.WithLogger(log)).Run(ctx, router)
}
