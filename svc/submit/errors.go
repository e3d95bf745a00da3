package submit

import (
	"errors"
	"fmt"
)

var (
	ErrUnknownPlatform = errors.New("no download target for platform")
	ErrTransport       = errors.New("submission request failed")
	ErrInvalidEndpoint = errors.New("invalid collection endpoint")
	ErrInvalidTargets  = errors.New("invalid download targets")
	ErrDownloadFailed  = errors.New("download failed")
)

// StatusError is returned when the endpoint answers with a non-2xx status.
type StatusError struct {
	Code    int
	Message string
}

func (e *StatusError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("collection endpoint returned status %d", e.Code)
	}
	return fmt.Sprintf("collection endpoint returned status %d: %s", e.Code, e.Message)
}
