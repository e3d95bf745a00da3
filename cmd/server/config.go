package main

import (
	"errors"

	"github.com/msprojectmerger/landing/pkg/config"
	"github.com/msprojectmerger/landing/pkg/httpserver"
	"github.com/msprojectmerger/landing/svc/collect/sinks"
)

type appConfig struct {
	Env         string `env:"APP_ENV" envDefault:"development"`
	ServiceName string `env:"APP_NAME" envDefault:"landing"`
	LogLevel    string `env:"LOG_LEVEL" envDefault:"info"`
	LogFormat   string `env:"LOG_FORMAT" envDefault:"json"`
	// RedactEmails masks the local part of addresses in logs.
	RedactEmails bool `env:"LOG_REDACT_EMAILS" envDefault:"false"`

	EndpointPath string `env:"COLLECT_ENDPOINT_PATH" envDefault:"/api/collect-email"`
	MaxBodySize  int64  `env:"COLLECT_MAX_BODY_SIZE" envDefault:"1048576"`
	// StaticDir, when set, is served at / so the landing page and the
	// endpoint share an origin.
	StaticDir string `env:"STATIC_DIR"`

	CORSOrigins []string `env:"CORS_ALLOWED_ORIGINS" envSeparator:"," envDefault:"*"`
	CORSMaxAge  int      `env:"CORS_MAX_AGE" envDefault:"300"`

	// ClientIPHeaders lists the proxy headers trusted for the client address.
	// Empty means clientip.DefaultHeaders.
	ClientIPHeaders []string `env:"CLIENT_IP_HEADERS" envSeparator:","`
}

type serverConfig struct {
	App   appConfig
	HTTP  httpserver.Config
	Sinks sinks.Config
	Infra sinks.Infra
}

func loadConfig() (serverConfig, error) {
	var cfg serverConfig
	err := errors.Join(
		config.Load(&cfg.App),
		config.Load(&cfg.HTTP),
		config.Load(&cfg.Sinks),
		config.Load(&cfg.Infra.Redis),
		config.Load(&cfg.Infra.Postgres),
		config.Load(&cfg.Infra.Mongo),
		config.Load(&cfg.Infra.OpenSearch),
		config.Load(&cfg.Infra.Email),
	)
	return cfg, err
}
