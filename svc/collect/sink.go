package collect

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"slices"
	"sync"

	"github.com/msprojectmerger/landing/pkg/logger"
)

// Sink performs the side effect for an accepted record.
type Sink interface {
	Accept(ctx context.Context, rec Record) error
}

// SinkFunc adapts a function to Sink.
type SinkFunc func(ctx context.Context, rec Record) error

func (f SinkFunc) Accept(ctx context.Context, rec Record) error {
	return f(ctx, rec)
}

// LogSink writes one structured entry per record.
type LogSink struct {
	log *slog.Logger
}

func NewLogSink(log *slog.Logger) *LogSink {
	if log == nil {
		log = slog.Default()
	}
	return &LogSink{log: log}
}

func (s *LogSink) Accept(ctx context.Context, rec Record) error {
	s.log.InfoContext(ctx, "email collected",
		logger.Email(rec.Email),
		logger.Platform(rec.Platform),
		slog.String("timestamp", rec.Timestamp),
		logger.Sink("log"),
	)
	return nil
}

// MemorySink keeps accepted records in arrival order. Safe for concurrent use.
type MemorySink struct {
	mu      sync.Mutex
	records []Record
}

func NewMemorySink() *MemorySink {
	return &MemorySink{}
}

func (s *MemorySink) Accept(_ context.Context, rec Record) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.records = append(s.records, rec)
	return nil
}

// Records returns a copy of everything accepted so far.
func (s *MemorySink) Records() []Record {
	s.mu.Lock()
	defer s.mu.Unlock()
	return slices.Clone(s.records)
}

func (s *MemorySink) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.records)
}

func (s *MemorySink) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.records = nil
}

// NamedSink labels a sink so Multi can report which one failed.
type NamedSink struct {
	Name string
	Sink Sink
}

// Multi hands every record to each sink in order. All sinks are attempted;
// failures are joined in the same order.
type Multi []NamedSink

func (m Multi) Accept(ctx context.Context, rec Record) error {
	var errs []error
	for _, s := range m {
		if err := s.Sink.Accept(ctx, rec); err != nil {
			errs = append(errs, fmt.Errorf("%s: %w", s.Name, err))
		}
	}
	if len(errs) == 0 {
		return nil
	}
	return errors.Join(append([]error{ErrSinkFailed}, errs...)...)
}
