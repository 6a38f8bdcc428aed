package domain

import (
	"errors"
	"fmt"
)

var (
	// ErrNotFound is returned when a referenced record does not exist.
	ErrNotFound = errors.New("record not found")

	// ErrPermissionDenied is returned when the caller's role or ownership
	// does not authorize the operation.
	ErrPermissionDenied = errors.New("permission denied")

	// ErrDateUnavailable is returned when a booking targets a property+date
	// that already has a pending or confirmed appointment.
	ErrDateUnavailable = errors.New("date is not available for this property")
)

// ValidationError reports malformed input, rejected before any store call.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}

func NewValidationError(field, reason string) error {
	return &ValidationError{Field: field, Reason: reason}
}

// IsValidation reports whether err is (or wraps) a ValidationError.
func IsValidation(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}
