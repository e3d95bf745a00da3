package collect

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/msprojectmerger/landing/handler"
	"github.com/msprojectmerger/landing/pkg/binder"
	"github.com/msprojectmerger/landing/pkg/logger"
	"github.com/msprojectmerger/landing/pkg/validator"
)

// Service is the email collection endpoint. It keeps no state between
// requests; concurrency is the sink's concern.
type Service struct {
	sink         Sink
	log          *slog.Logger
	maxBody      int64
	errorHandler handler.ErrorHandler[handler.Context]
}

// NewService panics on a nil sink so misconfiguration stops startup.
func NewService(sink Sink, opts ...Option) *Service {
	if sink == nil {
		panic(ErrNilSink)
	}
	s := &Service{
		sink:    sink,
		log:     slog.Default(),
		maxBody: binder.DefaultMaxJSONSize,
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.errorHandler == nil {
		s.errorHandler = handler.NewErrorHandler(s.log)
	}
	return s
}

// Handle returns a router serving the endpoint at its root, for mounting at
// the public path:
//
//	r.Mount("/api/collect-email", svc.Handle())
func (s *Service) Handle() http.Handler {
	r := chi.NewRouter()
	r.HandleFunc("/", handler.Wrap(s.Collect,
		handler.WithBinder[handler.Context, Record](s.bindRecord),
		handler.WithErrorHandler[handler.Context, Record](s.errorHandler),
		handler.WithDecorators(
			handler.Recover[handler.Context, Record](s.log),
			postOnly[handler.Context, Record](),
		),
	))
	return r
}

// Collect validates rec and hands it to the sink exactly once.
func (s *Service) Collect(ctx handler.Context, rec Record) handler.Response {
	if err := validator.Apply(
		validator.Required("email", rec.Email),
		validator.Contains("email", rec.Email, "@"),
	); err != nil {
		s.log.WarnContext(ctx, "submission rejected",
			logger.Email(rec.Email),
			logger.Platform(rec.Platform),
			logger.Error(err),
			logger.Component("collect"),
		)
		return handler.JSONError(ErrInvalidEmail.WithCause(err))
	}

	if err := s.sink.Accept(ctx, rec); err != nil {
		s.log.ErrorContext(ctx, "record sink failed",
			logger.Email(rec.Email),
			logger.Platform(rec.Platform),
			logger.Error(err),
			logger.Component("collect"),
		)
		return handler.JSONError(handler.ErrInternal.WithCause(err))
	}

	return handler.JSON(Ack{Success: true, Message: MsgCollected})
}

// bindRecord decodes the JSON body without altering any field. A body that
// cannot be decoded leaves the record empty, which then fails email
// validation.
func (s *Service) bindRecord(r *http.Request, v any) error {
	if r.Method != http.MethodPost {
		return binder.ErrBinderNotApplicable
	}
	if err := binder.JSON(binder.WithMaxSize(s.maxBody), binder.WithoutSanitize())(r, v); err != nil {
		if rec, ok := v.(*Record); ok {
			*rec = Record{}
		}
		s.log.DebugContext(r.Context(), "request body not decoded",
			logger.Error(err),
			logger.Component("collect"),
		)
	}
	return nil
}

// postOnly answers every method but POST with 405.
func postOnly[C handler.Context, R any]() handler.Decorator[C, R] {
	return func(next handler.HandlerFunc[C, R]) handler.HandlerFunc[C, R] {
		return func(ctx C, req R) handler.Response {
			if ctx.Request().Method != http.MethodPost {
				return handler.JSONError(handler.ErrMethodNotAllowed,
					handler.WithJSONHeader("Allow", http.MethodPost))
			}
			return next(ctx, req)
		}
	}
}
