package logger

import (
	"log/slog"
	"time"
)

// Attribute keys shared by the helpers below and by the redaction hook.
const (
	KeyEmail     = "email"
	KeyPlatform  = "platform"
	KeyRequestID = "request_id"
)

// Error creates an attribute for a single error under the key "error".
// If err is nil, it returns an empty Attr.
func Error(err error) slog.Attr {
	if err == nil {
		return slog.Attr{}
	}
	return slog.Any("error", err)
}

// RequestID records the request identifier. Empty ids produce an empty Attr.
func RequestID(id string) slog.Attr {
	if id == "" {
		return slog.Attr{}
	}
	return slog.String(KeyRequestID, id)
}

// Email records a subscriber address under the key "email".
// Loggers built with WithEmailRedaction mask it on output.
func Email(addr string) slog.Attr {
	return slog.String(KeyEmail, addr)
}

// Platform records the requested download platform.
func Platform(p string) slog.Attr {
	return slog.String(KeyPlatform, p)
}

// Sink records the name of the record sink that handled a submission.
func Sink(name string) slog.Attr {
	return slog.String("sink", name)
}

// StatusCode records an HTTP status code.
func StatusCode(code int) slog.Attr {
	return slog.Int("status_code", code)
}

func Duration(d time.Duration) slog.Attr {
	return slog.Duration("duration", d)
}

// Component records the component name under the key "component".
func Component(name string) slog.Attr {
	return slog.String("component", name)
}

// Event records the event name under the key "event".
func Event(name string) slog.Attr {
	return slog.String("event", name)
}
