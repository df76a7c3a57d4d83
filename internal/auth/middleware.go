package auth

import (
	"context"
	"crypto/subtle"
	"net/http"
	"strings"

	"github.com/denisMujuzi/ezyagric-backend/pkg/response"
)

type contextKey string

const farmerIDKey contextKey = "farmer_id"

// Middleware authenticates the bearer token and puts the farmer id into the
// request context. A bare token without the Bearer prefix is accepted too.
func Middleware(secret string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			authHeader := r.Header.Get("Authorization")
			if authHeader == "" {
				response.Unauthorized(w, "Missing Authorization header")
				return
			}

			tokenStr := authHeader
			parts := strings.SplitN(authHeader, " ", 2)
			if len(parts) == 2 {
				if !strings.EqualFold(parts[0], "bearer") && parts[0] != "JWT" {
					response.Unauthorized(w, "Authorization header must be 'Bearer <token>'")
					return
				}
				tokenStr = parts[1]
			}

			farmerID, err := ParseFarmerID(secret, tokenStr)
			if err != nil {
				response.Unauthorized(w, "Invalid or expired token")
				return
			}

			ctx := context.WithValue(r.Context(), farmerIDKey, farmerID)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// OptionalMiddleware parses the bearer token when one is present but lets
// the request through either way. Used where an admin key can stand in for
// a farmer identity.
func OptionalMiddleware(secret string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			authHeader := r.Header.Get("Authorization")
			if authHeader != "" {
				tokenStr := authHeader
				parts := strings.SplitN(authHeader, " ", 2)
				if len(parts) == 2 {
					tokenStr = parts[1]
				}
				if farmerID, err := ParseFarmerID(secret, tokenStr); err == nil {
					r = r.WithContext(context.WithValue(r.Context(), farmerIDKey, farmerID))
				}
			}
			next.ServeHTTP(w, r)
		})
	}
}

// FarmerID extracts the authenticated farmer id placed by Middleware.
func FarmerID(ctx context.Context) (int64, bool) {
	id, ok := ctx.Value(farmerIDKey).(int64)
	return id, ok
}

// AdminOnly gates a route behind the X-Admin-Key header.
func AdminOnly(adminKey string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			provided := r.Header.Get("X-Admin-Key")
			if subtle.ConstantTimeCompare([]byte(provided), []byte(adminKey)) != 1 {
				response.Unauthorized(w, "Invalid admin key")
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
