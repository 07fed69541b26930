package auth

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v4"
)

var (
	ErrNotConfigured = errors.New("admin token secret is not configured")
	ErrInvalidToken  = errors.New("invalid or expired admin token")
)

// IssueAdminToken returns a signed short-lived token for the admin role. The
// token is never the shared admin password itself; it expires and is only
// verifiable with the configured signing secret.
func IssueAdminToken(secret string, ttl time.Duration) (string, error) {
	if secret == "" {
		return "", ErrNotConfigured
	}

	claims := jwt.MapClaims{
		"role": "admin",
		"iat":  time.Now().Unix(),
		"exp":  time.Now().Add(ttl).Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(secret))
}

// VerifyAdminToken checks the signature, expiry and role claim. Verification
// fails closed when no secret is configured.
func VerifyAdminToken(secret, tokenString string) error {
	if secret == "" {
		return ErrNotConfigured
	}

	token, err := jwt.Parse(tokenString, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrInvalidToken
		}
		return []byte(secret), nil
	})
	if err != nil || !token.Valid {
		return ErrInvalidToken
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok || claims["role"] != "admin" {
		return ErrInvalidToken
	}

	return nil
}
