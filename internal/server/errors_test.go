package server

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"github.com/o-tatsuki1029/jobtv-matching/internal/matching"
	"github.com/o-tatsuki1029/jobtv-matching/internal/types"
)

func TestHTTPStatus(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{"validation", &types.ValidationError{Field: "weights", Message: "bad"}, http.StatusBadRequest},
		{"wrapped validation", fmt.Errorf("run failed: %w", &types.ValidationError{Message: "bad"}), http.StatusBadRequest},
		{"credentials", &ErrInvalidCredentials{}, http.StatusUnauthorized},
		{"not found", &matching.ErrSessionNotFound{SessionID: uuid.New()}, http.StatusNotFound},
		{"persistence", &matching.PersistenceError{Op: "insert results", Err: errors.New("boom")}, http.StatusInternalServerError},
		{"unknown", errors.New("anything else"), http.StatusInternalServerError},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, HTTPStatus(tt.err))
		})
	}
}
