package validator

import (
	"fmt"
	"slices"
	"strings"
)

// Required validates that a string is not empty after trimming whitespace.
func Required(field, value string) Rule {
	return Rule{
		Check: func() bool { return strings.TrimSpace(value) != "" },
		Error: ValidationError{Field: field, Message: "field is required", Code: "required"},
	}
}

// Contains validates that value contains substr.
func Contains(field, value, substr string) Rule {
	return Rule{
		Check: func() bool { return strings.Contains(value, substr) },
		Error: ValidationError{
			Field:   field,
			Message: fmt.Sprintf("must contain %q", substr),
			Code:    "contains",
		},
	}
}

// InList validates that value is one of allowed.
func InList[T comparable](field string, value T, allowed []T) Rule {
	return Rule{
		Check: func() bool { return slices.Contains(allowed, value) },
		Error: ValidationError{
			Field:   field,
			Message: fmt.Sprintf("must be one of %v", allowed),
			Code:    "in_list",
		},
	}
}
