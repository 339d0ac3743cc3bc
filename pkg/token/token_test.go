package token

import (
	"errors"
	"strings"
	"testing"
	"time"
)

func TestSignAndParse(t *testing.T) {
	t.Setenv(SecretEnvKey, "test-secret")

	signed, err := Sign("01J5ZX3A7B8C9D0E1F2G3H4J5K", time.Hour)
	if err != nil {
		t.Fatalf("Sign: %v", err)
	}

	sessionID, err := Parse(signed)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if sessionID != "01J5ZX3A7B8C9D0E1F2G3H4J5K" {
		t.Errorf("session id = %q, want %q", sessionID, "01J5ZX3A7B8C9D0E1F2G3H4J5K")
	}
}

func TestParseTamperedToken(t *testing.T) {
	t.Setenv(SecretEnvKey, "test-secret")

	signed, err := Sign("session-id", time.Hour)
	if err != nil {
		t.Fatalf("Sign: %v", err)
	}

	parts := strings.Split(signed, ".")
	if len(parts) != 3 {
		t.Fatalf("expected a three-part token, got %d parts", len(parts))
	}
	tampered := parts[0] + "." + parts[1] + ".AAAA" + parts[2][4:]

	if _, err := Parse(tampered); !errors.Is(err, ErrInvalidToken) {
		t.Errorf("Parse(tampered) = %v, want ErrInvalidToken", err)
	}
}

func TestParseWrongSecret(t *testing.T) {
	t.Setenv(SecretEnvKey, "first-secret")
	signed, err := Sign("session-id", time.Hour)
	if err != nil {
		t.Fatalf("Sign: %v", err)
	}

	t.Setenv(SecretEnvKey, "second-secret")
	if _, err := Parse(signed); !errors.Is(err, ErrInvalidToken) {
		t.Errorf("Parse with rotated secret = %v, want ErrInvalidToken", err)
	}
}

func TestParseExpiredToken(t *testing.T) {
	t.Setenv(SecretEnvKey, "test-secret")

	signed, err := Sign("session-id", -time.Minute)
	if err != nil {
		t.Fatalf("Sign: %v", err)
	}

	if _, err := Parse(signed); !errors.Is(err, ErrInvalidToken) {
		t.Errorf("Parse(expired) = %v, want ErrInvalidToken", err)
	}
}

func TestSignWithoutSecret(t *testing.T) {
	t.Setenv(SecretEnvKey, "")

	if _, err := Sign("session-id", time.Hour); !errors.Is(err, ErrSecretNotSet) {
		t.Errorf("Sign without secret = %v, want ErrSecretNotSet", err)
	}
	if _, err := Parse("whatever"); !errors.Is(err, ErrSecretNotSet) {
		t.Errorf("Parse without secret = %v, want ErrSecretNotSet", err)
	}
}
