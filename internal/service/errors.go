// Package service provides application-level services for managing accounts and messages.
package service

import (
	"errors"
	"fmt"
)

// Common service errors - sentinel errors used across service implementations.
// These represent expected conditions that callers check with errors.Is().
//
// Error handling principles:
// 1. Service methods return sentinel errors for expected error conditions
// 2. Unexpected errors are wrapped in ServiceError
// 3. Callers use errors.Is/errors.As to check for specific error conditions
// 4. The API layer maps service errors to HTTP status codes
var (
	// ErrDuplicateUsername indicates a registration attempt with a username
	// that is already taken. API layer maps this to HTTP 409 Conflict.
	ErrDuplicateUsername = errors.New("username already exists")

	// ErrInvalidCredentials indicates that no account matches the submitted
	// username+password pair. API layer maps this to HTTP 401 Unauthorized.
	ErrInvalidCredentials = errors.New("invalid credentials")

	// ErrMessageNotFound indicates that the message does not exist.
	// Only text updates treat this as an error; reads and deletes of a
	// missing message succeed with an empty result.
	ErrMessageNotFound = errors.New("message not found")

	// ErrPosterNotFound indicates that a message references an account that
	// does not exist. The API collapses this into the same 400 response as
	// any other invalid message input.
	ErrPosterNotFound = errors.New("posting account not found")
)

// ServiceError wraps unexpected errors from a service with context.
type ServiceError struct {
	// Operation is the operation that failed (e.g., "register", "create_message")
	Operation string
	// Message is a human-readable description of the error
	Message string
	// Err is the underlying error that caused the failure
	Err error
}

// Error implements the error interface for ServiceError.
func (e *ServiceError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("service %s failed: %s: %v", e.Operation, e.Message, e.Err)
	}
	return fmt.Sprintf("service %s failed: %s", e.Operation, e.Message)
}

// Unwrap returns the wrapped error to support errors.Is/errors.As.
func (e *ServiceError) Unwrap() error {
	return e.Err
}

// NewServiceError creates a new ServiceError.
func NewServiceError(operation, message string, err error) error {
	if err == nil {
		return nil
	}
	return &ServiceError{
		Operation: operation,
		Message:   message,
		Err:       err,
	}
}
