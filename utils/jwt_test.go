package utils

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

func TestTokenRoundTrip(t *testing.T) {
	secret := []byte("test-secret")

	tokenString, err := GenerateToken("abc123", "b@x.com", secret, time.Hour)
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	if tokenString == "" {
		t.Fatal("expected a non-empty token")
	}

	token, err := ValidateToken(tokenString, secret)
	if err != nil || !token.Valid {
		t.Fatalf("validate: %v", err)
	}
	claims := token.Claims.(jwt.MapClaims)
	if claims["id"] != "abc123" || claims["email"] != "b@x.com" {
		t.Fatalf("unexpected claims: %v", claims)
	}
}

func TestTokenWrongSecret(t *testing.T) {
	tokenString, err := GenerateToken("abc123", "b@x.com", []byte("one"), time.Hour)
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	if _, err := ValidateToken(tokenString, []byte("two")); err == nil {
		t.Fatal("expected validation to fail with a different secret")
	}
}

func TestTokenExpiry(t *testing.T) {
	secret := []byte("test-secret")
	tokenString, err := GenerateToken("abc123", "b@x.com", secret, -time.Minute)
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	if _, err := ValidateToken(tokenString, secret); err == nil {
		t.Fatal("expected an expired-token error")
	}
}
