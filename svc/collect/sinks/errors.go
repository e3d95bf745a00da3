package sinks

import "errors"

var (
	ErrUnknownSink   = errors.New("unknown sink")
	ErrNoSinks       = errors.New("no sinks configured")
	ErrMissingConfig = errors.New("missing sink configuration")
	ErrEncodeRecord  = errors.New("failed to encode record")
	ErrStoreRecord   = errors.New("failed to store record")
	ErrDeliverRecord = errors.New("failed to deliver record")
	// ErrSchemaMissing means the submissions table does not exist yet.
	ErrSchemaMissing = errors.New("submissions table missing: apply migrations or set PG_AUTO_MIGRATE=true")
)
