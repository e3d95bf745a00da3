package handler

import (
	"errors"
	"net/http"
)

var (
	// ErrNilResponse indicates a handler returned nil instead of a Response
	ErrNilResponse = errors.New("handler returned nil response")
	ErrPanic       = errors.New("handler panicked")
)

// Public messages used by the predefined errors.
const (
	MsgInternal         = "Internal server error"
	MsgMethodNotAllowed = "Method not allowed"
	MsgBadRequest       = "Bad request"
)

// HTTPError is an error with a status code and a message that is safe to
// show to the caller. Err, when set, is the internal cause; it is logged but
// never rendered.
type HTTPError struct {
	Code    int
	Message string
	Err     error
}

func NewHTTPError(code int, message string) HTTPError {
	return HTTPError{Code: code, Message: message}
}

func (e HTTPError) Error() string {
	msg := e.Message
	if msg == "" {
		msg = http.StatusText(e.Code)
	}
	if e.Err != nil {
		return msg + ": " + e.Err.Error()
	}
	return msg
}

func (e HTTPError) Unwrap() error {
	return e.Err
}

// WithCause returns a copy of e that wraps err.
func (e HTTPError) WithCause(err error) HTTPError {
	e.Err = err
	return e
}

var (
	ErrBadRequest       = NewHTTPError(http.StatusBadRequest, MsgBadRequest)
	ErrMethodNotAllowed = NewHTTPError(http.StatusMethodNotAllowed, MsgMethodNotAllowed)
	ErrInternal         = NewHTTPError(http.StatusInternalServerError, MsgInternal)
)

// statusAndMessage resolves the status code and public message for err.
// Errors that are not HTTPError map to 500 with the generic message.
func statusAndMessage(err error) (int, string) {
	var httpErr HTTPError
	if errors.As(err, &httpErr) {
		msg := httpErr.Message
		if msg == "" {
			msg = http.StatusText(httpErr.Code)
		}
		return httpErr.Code, msg
	}
	return http.StatusInternalServerError, MsgInternal
}
