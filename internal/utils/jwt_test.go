package utils

import (
	"errors"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

var fixedNow = time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)

func fixedClock(t time.Time) func() time.Time {
	return func() time.Time { return t }
}

func TestGenerateJWTToken_Success(t *testing.T) {
	token, err := GenerateJWTToken("test-issuer", "alice", time.Hour, "secret-key", fixedNow)

	if err != nil {
		t.Fatalf("expected no error, got: %v", err)
	}
	if token.SignedString == "" {
		t.Error("expected non-empty SignedString")
	}
	if token.Subject != "alice" {
		t.Errorf("expected subject alice, got %s", token.Subject)
	}
	if !token.IssuedAt.Equal(fixedNow) {
		t.Errorf("expected iat %v, got %v", fixedNow, token.IssuedAt)
	}
	if !token.ExpiresAt.Equal(fixedNow.Add(time.Hour)) {
		t.Errorf("expected exp %v, got %v", fixedNow.Add(time.Hour), token.ExpiresAt)
	}
}

func TestGenerateJWTToken_InvalidParams(t *testing.T) {
	tests := []struct {
		name     string
		issuer   string
		subject  string
		duration time.Duration
		key      string
	}{
		{"empty issuer", "", "alice", time.Hour, "key"},
		{"empty subject", "iss", "", time.Hour, "key"},
		{"zero duration", "iss", "alice", 0, "key"},
		{"negative duration", "iss", "alice", -time.Second, "key"},
		{"empty key", "iss", "alice", time.Hour, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := GenerateJWTToken(tt.issuer, tt.subject, tt.duration, tt.key, fixedNow)
			if err == nil {
				t.Error("expected error for invalid parameters, got nil")
			}
		})
	}
}

func TestValidateAndParseJWTToken_Success(t *testing.T) {
	genToken, err := GenerateJWTToken("test-issuer", "bob", 5*time.Minute, "secret-key", fixedNow)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	parsed, err := ValidateAndParseJWTToken(genToken.SignedString, "secret-key", "test-issuer", fixedClock(fixedNow.Add(time.Minute)))

	if err != nil {
		t.Fatalf("expected token to be valid, got error: %v", err)
	}
	if parsed.Subject != "bob" {
		t.Errorf("expected subject bob, got %s", parsed.Subject)
	}
	if !parsed.ExpiresAt.Equal(genToken.ExpiresAt) {
		t.Errorf("expected exp %v, got %v", genToken.ExpiresAt, parsed.ExpiresAt)
	}
}

func TestValidateAndParseJWTToken_InvalidKey(t *testing.T) {
	genToken, _ := GenerateJWTToken("test-issuer", "alice", time.Hour, "correct-key", fixedNow)

	_, err := ValidateAndParseJWTToken(genToken.SignedString, "wrong-key", "test-issuer", fixedClock(fixedNow))
	if !errors.Is(err, jwt.ErrTokenSignatureInvalid) {
		t.Errorf("expected signature error, got %v", err)
	}
}

func TestValidateAndParseJWTToken_ExpiryBoundary(t *testing.T) {
	genToken, _ := GenerateJWTToken("test-issuer", "alice", time.Minute, "key", fixedNow)

	tests := []struct {
		name    string
		at      time.Time
		wantErr bool
	}{
		{"just before expiry", fixedNow.Add(time.Minute - time.Second), false},
		{"exactly at expiry", fixedNow.Add(time.Minute), true},
		{"after expiry", fixedNow.Add(2 * time.Minute), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ValidateAndParseJWTToken(genToken.SignedString, "key", "test-issuer", fixedClock(tt.at))
			if tt.wantErr && !errors.Is(err, jwt.ErrTokenExpired) {
				t.Errorf("expected expired error, got %v", err)
			}
			if !tt.wantErr && err != nil {
				t.Errorf("expected valid token, got %v", err)
			}
		})
	}
}

func TestValidateAndParseJWTToken_WrongIssuer(t *testing.T) {
	genToken, _ := GenerateJWTToken("real-issuer", "alice", time.Hour, "key", fixedNow)

	_, err := ValidateAndParseJWTToken(genToken.SignedString, "key", "fake-issuer", fixedClock(fixedNow))
	if err == nil {
		t.Error("expected error for issuer mismatch, got nil")
	}
}

func TestValidateAndParseJWTToken_WrongAlgorithm(t *testing.T) {
	claims := jwt.RegisteredClaims{
		Issuer:    "iss",
		Subject:   "alice",
		ExpiresAt: jwt.NewNumericDate(fixedNow.Add(time.Hour)),
	}
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS512, claims).SignedString([]byte("key"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if _, err = ValidateAndParseJWTToken(signed, "key", "iss", fixedClock(fixedNow)); err == nil {
		t.Error("expected error for HS512 token, got nil")
	}
}

func TestValidateAndParseJWTToken_MissingExpiry(t *testing.T) {
	claims := jwt.RegisteredClaims{Issuer: "iss", Subject: "alice"}
	signed, _ := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("key"))

	if _, err := ValidateAndParseJWTToken(signed, "key", "iss", fixedClock(fixedNow)); err == nil {
		t.Error("expected error for token without exp, got nil")
	}
}

func TestValidateAndParseJWTToken_EmptySubject(t *testing.T) {
	claims := jwt.RegisteredClaims{Issuer: "iss", ExpiresAt: jwt.NewNumericDate(fixedNow.Add(time.Hour))}
	signed, _ := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("key"))

	if _, err := ValidateAndParseJWTToken(signed, "key", "iss", fixedClock(fixedNow)); err == nil {
		t.Error("expected error for token without subject, got nil")
	}
}

func TestValidateAndParseJWTToken_Malformed(t *testing.T) {
	_, err := ValidateAndParseJWTToken("not.a.token", "key", "iss", nil)
	if err == nil {
		t.Error("expected error for malformed token string, got nil")
	}
}
