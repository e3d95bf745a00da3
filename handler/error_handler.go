package handler

import (
	"log/slog"
	"net/http"

	"github.com/msprojectmerger/landing/pkg/environment"
	"github.com/msprojectmerger/landing/pkg/logger"
	"github.com/msprojectmerger/landing/pkg/requestid"
)

func isClientError(statusCode int) bool {
	return statusCode >= http.StatusBadRequest && statusCode < http.StatusInternalServerError
}

// determineLogLevel maps HTTP status codes to log levels. Rejected
// submissions are routine in production and drop to info there.
func determineLogLevel(statusCode int, env environment.Environment) slog.Level {
	if !isClientError(statusCode) {
		return slog.LevelError
	}
	if env.IsProduction() {
		return slog.LevelInfo
	}
	return slog.LevelWarn
}

func logError(log *slog.Logger, ctx Context, err error, status int) {
	r := ctx.Request()
	level := determineLogLevel(status, environment.FromContext(r.Context()))
	log.LogAttrs(r.Context(), level, "request error",
		logger.RequestID(requestid.FromContext(r.Context())),
		logger.Error(err),
		logger.StatusCode(status),
		slog.String("method", r.Method),
		slog.String("path", r.URL.Path),
		logger.Component("error_handler"),
	)
}

// NewErrorHandler creates an error handler that logs err and writes a JSON
// error body. Internal details are logged, never rendered.
func NewErrorHandler(log *slog.Logger) ErrorHandler[Context] {
	if log == nil {
		log = slog.Default()
	}

	return func(ctx Context, err error) {
		status, _ := statusAndMessage(err)
		logError(log, ctx, err, status)

		if renderErr := JSONError(err).Render(ctx.ResponseWriter(), ctx.Request()); renderErr != nil {
			log.Error("failed to render error response",
				logger.Error(renderErr),
				logger.Event("render_error_response"),
			)
		}
	}
}
