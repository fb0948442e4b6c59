package server

import (
	"errors"
	"net/http"

	"github.com/o-tatsuki1029/jobtv-matching/internal/matching"
	"github.com/o-tatsuki1029/jobtv-matching/internal/types"
)

// ErrInvalidCredentials indicates invalid operator login credentials.
type ErrInvalidCredentials struct{}

func (e *ErrInvalidCredentials) Error() string {
	return "invalid email or password"
}

// HTTPStatus returns the appropriate HTTP status code for an error.
// ValidationError and persistence failures are surfaced to the operator UI
// as visible messages; computation anomalies never reach this path because
// they are logged, not returned.
func HTTPStatus(err error) int {
	var validationErr *types.ValidationError
	var notFoundErr *matching.ErrSessionNotFound
	var credentialsErr *ErrInvalidCredentials
	var persistenceErr *matching.PersistenceError

	switch {
	case errors.As(err, &validationErr):
		return http.StatusBadRequest
	case errors.As(err, &credentialsErr):
		return http.StatusUnauthorized
	case errors.As(err, &notFoundErr):
		return http.StatusNotFound
	case errors.As(err, &persistenceErr):
		return http.StatusInternalServerError
	default:
		return http.StatusInternalServerError
	}
}
