package main

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"github.com/msprojectmerger/landing/handler"
	"github.com/msprojectmerger/landing/pkg/clientip"
	"github.com/msprojectmerger/landing/pkg/environment"
	"github.com/msprojectmerger/landing/pkg/httpserver"
	"github.com/msprojectmerger/landing/pkg/requestid"
	"github.com/msprojectmerger/landing/svc/collect"
)

func newRouter(cfg appConfig, env environment.Environment, sink collect.Sink, checks map[string]httpserver.Check, log *slog.Logger) http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.Recoverer)
	r.Use(clientip.Middleware(cfg.ClientIPHeaders...))
	r.Use(requestid.Middleware)
	r.Use(environment.Middleware(env))
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: cfg.CORSOrigins,
		AllowedMethods: []string{http.MethodPost, http.MethodOptions},
		AllowedHeaders: []string{"Accept", "Content-Type", requestid.Header},
		ExposedHeaders: []string{requestid.Header},
		MaxAge:         cfg.CORSMaxAge,
	}))

	r.Get("/health/live", httpserver.Liveness())
	r.Get("/health/ready", httpserver.Readiness(log, checks))

	svc := collect.NewService(sink,
		collect.WithLogger(log),
		collect.WithMaxBodySize(cfg.MaxBodySize),
		collect.WithErrorHandler(handler.NewErrorHandler(log)),
	)
	r.Mount(cfg.EndpointPath, svc.Handle())

	if cfg.StaticDir != "" {
		r.Handle("/*", http.FileServer(http.Dir(cfg.StaticDir)))
	}

	return r
}
