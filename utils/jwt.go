package utils

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// GenerateToken signs an HS256 token binding the account identity and email.
// Expiry is the only invalidation mechanism; the server keeps no token state.
func GenerateToken(accountId, email string, secret []byte, ttl time.Duration) (string, error) {
	claims := jwt.MapClaims{
		"id":    accountId,
		"email": email,
		"exp":   time.Now().Add(ttl).Unix(),
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(secret)
}

// ValidateToken parses and verifies a token issued by GenerateToken. Only
// HMAC-signed tokens are accepted.
func ValidateToken(tokenString string, secret []byte) (*jwt.Token, error) {
	return jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}
		return secret, nil
	})
}
