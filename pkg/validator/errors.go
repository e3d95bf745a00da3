package validator

import "errors"

var (
	ErrValidationFailed = errors.New("validation failed")
	ErrFieldRequired    = errors.New("field is required")
	ErrInvalidValue     = errors.New("invalid value")
)
