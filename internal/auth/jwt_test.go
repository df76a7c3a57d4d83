package auth

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "test-secret"

func TestTokenRoundTrip(t *testing.T) {
	token, err := GenerateToken(testSecret, time.Hour, 42)
	require.NoError(t, err)

	farmerID, err := ParseFarmerID(testSecret, token)
	require.NoError(t, err)
	assert.Equal(t, int64(42), farmerID)
}

func TestParseFarmerID_WrongSecret(t *testing.T) {
	token, err := GenerateToken(testSecret, time.Hour, 42)
	require.NoError(t, err)

	_, err = ParseFarmerID("other-secret", token)
	assert.Error(t, err)
}

func TestParseFarmerID_Expired(t *testing.T) {
	token, err := GenerateToken(testSecret, -time.Minute, 42)
	require.NoError(t, err)

	_, err = ParseFarmerID(testSecret, token)
	assert.Error(t, err)
}

func TestMiddleware(t *testing.T) {
	token, err := GenerateToken(testSecret, time.Hour, 42)
	require.NoError(t, err)

	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		farmerID, ok := FarmerID(r.Context())
		require.True(t, ok)
		assert.Equal(t, int64(42), farmerID)
		w.WriteHeader(http.StatusNoContent)
	})
	handler := Middleware(testSecret)(next)

	tests := []struct {
		name       string
		authHeader string
		wantStatus int
	}{
		{"bearer prefix", "Bearer " + token, http.StatusNoContent},
		{"jwt prefix", "JWT " + token, http.StatusNoContent},
		{"bare token", token, http.StatusNoContent},
		{"missing header", "", http.StatusUnauthorized},
		{"wrong scheme", "Basic " + token, http.StatusUnauthorized},
		{"garbage token", "Bearer not-a-token", http.StatusUnauthorized},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := httptest.NewRequest(http.MethodGet, "/seasons/1", nil)
			if tt.authHeader != "" {
				r.Header.Set("Authorization", tt.authHeader)
			}
			w := httptest.NewRecorder()

			handler.ServeHTTP(w, r)

			assert.Equal(t, tt.wantStatus, w.Code)
		})
	}
}

func TestAdminOnly(t *testing.T) {
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	})
	handler := AdminOnly("super-secret")(next)

	t.Run("valid key", func(t *testing.T) {
		r := httptest.NewRequest(http.MethodGet, "/farmers", nil)
		r.Header.Set("X-Admin-Key", "super-secret")
		w := httptest.NewRecorder()

		handler.ServeHTTP(w, r)

		assert.Equal(t, http.StatusNoContent, w.Code)
	})

	t.Run("wrong key", func(t *testing.T) {
		r := httptest.NewRequest(http.MethodGet, "/farmers", nil)
		r.Header.Set("X-Admin-Key", "guess")
		w := httptest.NewRecorder()

		handler.ServeHTTP(w, r)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})
}

func TestFarmerID_AbsentFromContext(t *testing.T) {
	_, ok := FarmerID(context.Background())
	assert.False(t, ok)
}
