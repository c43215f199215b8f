package api

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/kfalter/chirper-api/internal/domain"
)

// getPathID extracts an integer ID from the URL path parameters.
//
// Returns:
//   - (id, nil): The parsed ID if valid
//   - (0, error): An appropriate error if the parameter is missing or malformed
func getPathID(r *http.Request, paramName string) (int64, error) {
	pathParam := chi.URLParam(r, paramName)
	if pathParam == "" {
		return 0, domain.NewValidationError(paramName, "is required", domain.ErrValidation)
	}

	id, err := strconv.ParseInt(pathParam, 10, 64)
	if err != nil {
		return 0, domain.NewValidationError(paramName, "must be an integer", domain.ErrInvalidID)
	}

	return id, nil
}
