// Package middleware provides HTTP middleware for operator authentication.
package middleware

import (
	"context"
	"fmt"
	"net/http"
	"strings"

	"github.com/google/uuid"
)

// ContextKey is a typed key for context values to avoid collisions.
type ContextKey string

// operatorIDKey is the context key for storing the authenticated operator ID.
const operatorIDKey ContextKey = "operatorID"

// TokenValidator validates a bearer token and returns the operator it
// belongs to. Implemented by the server's JWT service.
type TokenValidator interface {
	ValidateToken(tokenString string) (uuid.UUID, error)
}

// Auth creates middleware that validates bearer tokens and adds the
// operator ID to the request context.
func Auth(validator TokenValidator) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			authHeader := r.Header.Get("Authorization")
			if authHeader == "" {
				http.Error(w, "Unauthorized", http.StatusUnauthorized)
				return
			}

			// "Bearer" prefix is matched case-insensitively.
			parts := strings.Fields(authHeader)
			if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
				http.Error(w, "Unauthorized", http.StatusUnauthorized)
				return
			}

			operatorID, err := validator.ValidateToken(parts[1])
			if err != nil {
				http.Error(w, "Unauthorized", http.StatusUnauthorized)
				return
			}

			ctx := context.WithValue(r.Context(), operatorIDKey, operatorID)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// GetOperatorID extracts the authenticated operator ID from the request context.
func GetOperatorID(r *http.Request) (uuid.UUID, error) {
	operatorID, ok := r.Context().Value(operatorIDKey).(uuid.UUID)
	if !ok {
		return uuid.Nil, fmt.Errorf("operator ID not found in request context")
	}
	return operatorID, nil
}
