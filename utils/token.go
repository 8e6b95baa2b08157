package utils

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// GenerateAccessToken signs an HS256 token bound to the customer's public id.
// The string is stored server-side; session validity is decided by the stored
// row, the signature just makes the bearer string opaque and self-describing.
func GenerateAccessToken(customerUUID, secret string, issuedAt, expiresAt time.Time) (string, error) {
	claims := jwt.RegisteredClaims{
		Subject:   customerUUID,
		IssuedAt:  jwt.NewNumericDate(issuedAt),
		ExpiresAt: jwt.NewNumericDate(expiresAt),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(secret))
}
