package auth

import (
	"fmt"
	"strconv"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Claims carries the authenticated farmer identity. The subject holds the
// farmer id, matching what the login endpoint has always issued.
type Claims struct {
	FarmerID int64 `json:"farmerId"`
	jwt.RegisteredClaims
}

// GenerateToken signs an HS256 access token for the farmer.
func GenerateToken(secret string, expiry time.Duration, farmerID int64) (string, error) {
	now := time.Now()
	claims := &Claims{
		FarmerID: farmerID,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   strconv.FormatInt(farmerID, 10),
			ExpiresAt: jwt.NewNumericDate(now.Add(expiry)),
			IssuedAt:  jwt.NewNumericDate(now),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(secret))
}

// ParseFarmerID verifies the token and returns the farmer id it was issued
// for.
func ParseFarmerID(secret, tokenStr string) (int64, error) {
	token, err := jwt.ParseWithClaims(tokenStr, &Claims{}, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method %v", t.Header["alg"])
		}
		return []byte(secret), nil
	})
	if err != nil || !token.Valid {
		return 0, fmt.Errorf("invalid token: %w", err)
	}

	claims, ok := token.Claims.(*Claims)
	if !ok {
		return 0, fmt.Errorf("unexpected claims type")
	}

	if claims.FarmerID != 0 {
		return claims.FarmerID, nil
	}

	// Older tokens carried the id only in the subject
	id, err := strconv.ParseInt(claims.Subject, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid subject: %w", err)
	}
	return id, nil
}
