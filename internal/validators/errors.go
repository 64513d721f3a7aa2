package validators

import "errors"

var (
	// ErrUnsupportedType is returned when the value is not a struct or a
	// pointer to one.
	ErrUnsupportedType = errors.New("unsupported type for validation")

	// ErrValidationFailed wraps the field messages of a failed validation.
	ErrValidationFailed = errors.New("validation failed")
)
