package api

import (
	"errors"
	"net/http"

	"github.com/cardex/cardex-api/internal/filter"
	"github.com/cardex/cardex-api/internal/service/auth"
	"github.com/cardex/cardex-api/internal/store"
)

// MapErrorToStatusCode translates domain and infrastructure errors into HTTP
// status codes. Unrecognized errors map to 500.
func MapErrorToStatusCode(err error) int {
	var paramErr *filter.InvalidParameterError
	var pageErr *filter.InvalidPaginationError

	switch {
	case errors.As(err, &paramErr), errors.As(err, &pageErr):
		return http.StatusBadRequest
	case errors.Is(err, auth.ErrInvalidToken),
		errors.Is(err, auth.ErrExpiredToken),
		errors.Is(err, auth.ErrMissingToken):
		return http.StatusUnauthorized
	case errors.Is(err, store.ErrCardNotFound),
		errors.Is(err, store.ErrImportNotFound),
		errors.Is(err, store.ErrNotFound):
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}

// GetSafeErrorMessage returns a client-facing message for the given error.
// Internal errors collapse to a generic message so infrastructure details
// never reach the client.
func GetSafeErrorMessage(err error) string {
	var paramErr *filter.InvalidParameterError
	var pageErr *filter.InvalidPaginationError

	switch {
	case errors.As(err, &paramErr):
		return paramErr.Error()
	case errors.As(err, &pageErr):
		return pageErr.Error()
	case errors.Is(err, auth.ErrExpiredToken):
		return "Token expired"
	case errors.Is(err, auth.ErrInvalidToken), errors.Is(err, auth.ErrMissingToken):
		return "Invalid token"
	case errors.Is(err, store.ErrCardNotFound):
		return "Card not found"
	case errors.Is(err, store.ErrImportNotFound):
		return "No import recorded"
	case errors.Is(err, store.ErrNotFound):
		return "Resource not found"
	default:
		return "Internal server error"
	}
}
