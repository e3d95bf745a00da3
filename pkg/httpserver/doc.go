// Package httpserver runs an http.Handler with configured timeouts and
// graceful shutdown.
//
// Run blocks until the supplied context is cancelled, the process receives
// SIGINT/SIGTERM, or the listener fails, and then drains in-flight requests
// within the shutdown timeout. Errors are wrapped with ErrStart and
// ErrShutdown so callers can classify them with errors.Is.
//
//	srv := httpserver.NewFromConfig(cfg, httpserver.WithLogger(log))
//	if err := srv.Run(ctx, router); err != nil {
//		log.Error("server stopped", logger.Error(err))
//	}
//
// Liveness and Readiness build health handlers; readiness runs named
// dependency checks such as redis.Healthcheck or pg.Healthcheck.
package httpserver
