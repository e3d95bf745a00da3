package handler

import (
	"fmt"
	"log/slog"
	"runtime/debug"

	"github.com/msprojectmerger/landing/pkg/logger"
	"github.com/msprojectmerger/landing/pkg/requestid"
)

// Recover turns a panic in the wrapped handler into a 500 JSON response.
// The panic value and stack are logged at error level.
func Recover[C Context, R any](log *slog.Logger) Decorator[C, R] {
	if log == nil {
		log = slog.Default()
	}
	return func(next HandlerFunc[C, R]) HandlerFunc[C, R] {
		return func(ctx C, req R) (resp Response) {
			defer func() {
				if rec := recover(); rec != nil {
					err := fmt.Errorf("%w: %v", ErrPanic, rec)
					log.ErrorContext(ctx, "handler panic recovered",
						logger.RequestID(requestid.FromContext(ctx)),
						logger.Error(err),
						slog.String("stack", string(debug.Stack())),
						logger.Component("handler"),
					)
					resp = JSONError(ErrInternal.WithCause(err))
				}
			}()
			return next(ctx, req)
		}
	}
}
