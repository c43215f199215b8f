package api

import (
	"errors"
	"net/http"

	"github.com/kfalter/chirper-api/internal/api/shared"
	"github.com/kfalter/chirper-api/internal/domain"
	"github.com/kfalter/chirper-api/internal/service"
	"github.com/kfalter/chirper-api/internal/store"
)

// MapErrorToStatusCode maps internal errors to appropriate HTTP status codes.
// This keeps the status-code policy in one place; handlers never pick codes
// from raw error strings.
//
// Note the contract quirks: an unknown poster on message creation is a 400,
// not a 404, and so is a text update against a missing message. Missing
// messages on reads and deletes never reach this function because the
// service reports them as empty successes.
func MapErrorToStatusCode(err error) int {
	switch {
	// Bad credentials
	case errors.Is(err, service.ErrInvalidCredentials):
		return http.StatusUnauthorized

	// Conflict errors
	case errors.Is(err, service.ErrDuplicateUsername),
		errors.Is(err, store.ErrDuplicate):
		return http.StatusConflict

	// Bad request errors
	case domain.IsValidationError(err),
		errors.Is(err, domain.ErrInvalidID),
		errors.Is(err, service.ErrPosterNotFound),
		errors.Is(err, service.ErrMessageNotFound),
		errors.Is(err, store.ErrInvalidEntity):
		return http.StatusBadRequest

	// Default: internal server error
	default:
		return http.StatusInternalServerError
	}
}

// GetSafeErrorMessage returns the plain-text body for an error response.
// Most failures answer with just a status code and an empty body; the text
// update endpoint is the exception and reports why it refused.
func GetSafeErrorMessage(err error) string {
	switch {
	case errors.Is(err, service.ErrMessageNotFound):
		return "Message not found"

	case errors.Is(err, domain.ErrBlankMessageText):
		return "Message text cannot be empty"

	case errors.Is(err, domain.ErrMessageTextTooLong):
		return "Message too long: it must have a length of at most 255 characters"

	default:
		return ""
	}
}

// HandleAPIError writes the response for err: mapped status code, safe
// plain-text body, redacted log entry.
func HandleAPIError(w http.ResponseWriter, r *http.Request, err error) {
	status := MapErrorToStatusCode(err)
	shared.RespondWithErrorAndLog(w, r, status, GetSafeErrorMessage(err), err)
}
