package domain

import (
	"errors"
	"fmt"
)

// Common domain errors used across the application.
var (
	// ErrValidation is returned when a domain entity fails validation.
	// This is often wrapped with a more specific error message.
	ErrValidation = errors.New("validation failed")

	// ErrInvalidID is returned when an ID is malformed or invalid.
	ErrInvalidID = errors.New("invalid ID")
)

// ValidationError describes a validation failure on a specific field.
// It wraps one of the sentinel errors above so callers can still use
// errors.Is against the underlying condition.
type ValidationError struct {
	Field   string
	Message string
	Err     error
}

// Error implements the error interface for ValidationError.
func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s %s", e.Field, e.Message)
}

// Unwrap returns the wrapped error to support errors.Is/errors.As.
func (e *ValidationError) Unwrap() error {
	return e.Err
}

// NewValidationError creates a ValidationError for the given field.
func NewValidationError(field, message string, err error) *ValidationError {
	return &ValidationError{
		Field:   field,
		Message: message,
		Err:     err,
	}
}

// IsValidationError reports whether err is one of the domain's field
// validation errors. The API layer uses this to decide between a 400 and
// a 500 for errors bubbling up from the service layer.
func IsValidationError(err error) bool {
	return errors.Is(err, ErrValidation) ||
		errors.Is(err, ErrBlankUsername) ||
		errors.Is(err, ErrBlankPassword) ||
		errors.Is(err, ErrPasswordTooShort) ||
		errors.Is(err, ErrMissingPostedBy) ||
		errors.Is(err, ErrBlankMessageText) ||
		errors.Is(err, ErrMessageTextTooLong)
}
