// Package logger builds the service's *slog.Logger.
//
// New applies functional options to choose the output format and level,
// attach static attributes, register ContextExtractor callbacks (for example
// the request id) and optionally mask subscriber addresses. WithEnvironment
// picks sensible defaults per deployment environment.
//
//	log := logger.New(
//		logger.WithEnvironment(environment.Production, "landing"),
//		logger.WithContextExtractors(requestid.LoggerExtractor()),
//		logger.WithEmailRedaction(true),
//	)
//	log.InfoContext(ctx, "email collected", logger.Email(rec.Email), logger.Platform(rec.Platform))
//
// The attribute helpers in attr.go keep key names consistent across packages.
// Error returns an empty attribute for a nil error, so
//
//	log.Info("done", logger.Error(err))
//
// needs no nil check.
package logger
