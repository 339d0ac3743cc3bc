package token

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// The session cookie carries a signed token holding only the server-side
// session id. The session itself lives in Redis; the signature just stops a
// client from minting or altering ids.

const SecretEnvKey = "SESSION_SECRET"

var (
	ErrSecretNotSet = errors.New("session secret not configured")
	ErrInvalidToken = errors.New("invalid session token")
)

func Sign(sessionID string, ttl time.Duration) (string, error) {
	secret := os.Getenv(SecretEnvKey)
	if secret == "" {
		return "", ErrSecretNotSet
	}

	claims := jwt.MapClaims{
		"sid": sessionID,
		"exp": time.Now().Add(ttl).Unix(),
	}

	to := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := to.SignedString([]byte(secret))
	if err != nil {
		return "", err
	}

	return signed, nil
}

func Parse(tokenString string) (string, error) {
	secret := os.Getenv(SecretEnvKey)
	if secret == "" {
		return "", ErrSecretNotSet
	}

	parsed, err := jwt.Parse(tokenString, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return []byte(secret), nil
	})
	if err != nil {
		return "", ErrInvalidToken
	}

	claims, ok := parsed.Claims.(jwt.MapClaims)
	if !ok || !parsed.Valid {
		return "", ErrInvalidToken
	}

	sessionID, ok := claims["sid"].(string)
	if !ok || sessionID == "" {
		return "", ErrInvalidToken
	}

	return sessionID, nil
}
