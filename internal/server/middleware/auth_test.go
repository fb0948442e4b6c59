package middleware

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeValidator struct {
	operatorID uuid.UUID
	err        error
}

func (f *fakeValidator) ValidateToken(string) (uuid.UUID, error) {
	return f.operatorID, f.err
}

func TestAuth_ValidToken(t *testing.T) {
	operatorID := uuid.New()
	handler := Auth(&fakeValidator{operatorID: operatorID})(
		http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			got, err := GetOperatorID(r)
			require.NoError(t, err)
			assert.Equal(t, operatorID, got)
			w.WriteHeader(http.StatusOK)
		}),
	)

	req := httptest.NewRequest("POST", "/matching/execute", nil)
	req.Header.Set("Authorization", "Bearer some-token")
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestAuth_Rejections(t *testing.T) {
	tests := []struct {
		name   string
		header string
		err    error
	}{
		{"missing header", "", nil},
		{"not bearer", "Basic abc", nil},
		{"no token", "Bearer", nil},
		{"invalid token", "Bearer bad", errors.New("expired")},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			handler := Auth(&fakeValidator{operatorID: uuid.New(), err: tt.err})(
				http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
					t.Fatal("handler must not run")
				}),
			)
			req := httptest.NewRequest("GET", "/matching/abc", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			rec := httptest.NewRecorder()
			handler.ServeHTTP(rec, req)
			assert.Equal(t, http.StatusUnauthorized, rec.Code)
		})
	}
}

func TestAuth_BearerCaseInsensitive(t *testing.T) {
	handler := Auth(&fakeValidator{operatorID: uuid.New()})(
		http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			w.WriteHeader(http.StatusNoContent)
		}),
	)
	req := httptest.NewRequest("GET", "/matching/abc", nil)
	req.Header.Set("Authorization", "bearer token")
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusNoContent, rec.Code)
}

func TestGetOperatorID_Missing(t *testing.T) {
	req := httptest.NewRequest("GET", "/", nil)
	_, err := GetOperatorID(req)
	assert.Error(t, err)
}
