package utils_test

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/iliyamo/library-reservation/internal/utils"
)

const testSecret = "jwt-test-secret-at-least-32-chars!!"

func TestAccessToken_RoundTrip(t *testing.T) {
	now := time.Now()
	tok, err := utils.NewAccessToken(testSecret, "user-123", 60, now)
	if err != nil {
		t.Fatalf("issue: %v", err)
	}
	claims, err := utils.ParseAccessToken(testSecret, tok)
	if err != nil {
		t.Fatalf("verify: %v", err)
	}
	if claims.Subject != "user-123" {
		t.Errorf("sub = %q, want %q", claims.Subject, "user-123")
	}
	if got := claims.ExpiresAt.Sub(claims.IssuedAt); got != 60*time.Minute {
		t.Errorf("exp - iat = %v, want %v", got, 60*time.Minute)
	}
}

func TestAccessToken_ExpiredAfterTTL(t *testing.T) {
	// Issued 61 minutes ago with a 60 minute TTL: the signature is fine
	// but the expiry bound has passed.
	tok, err := utils.NewAccessToken(testSecret, "user-123", 60, time.Now().Add(-61*time.Minute))
	if err != nil {
		t.Fatalf("issue: %v", err)
	}
	if _, err := utils.ParseAccessToken(testSecret, tok); err != utils.ErrTokenExpired {
		t.Errorf("err = %v, want ErrTokenExpired", err)
	}
}

func TestAccessToken_ValidJustBeforeExpiry(t *testing.T) {
	tok, err := utils.NewAccessToken(testSecret, "user-123", 60, time.Now().Add(-59*time.Minute))
	if err != nil {
		t.Fatalf("issue: %v", err)
	}
	if _, err := utils.ParseAccessToken(testSecret, tok); err != nil {
		t.Errorf("token inside TTL window rejected: %v", err)
	}
}

func TestAccessToken_WrongSecretIsInvalid(t *testing.T) {
	tok, err := utils.NewAccessToken(testSecret, "user-123", 60, time.Now())
	if err != nil {
		t.Fatalf("issue: %v", err)
	}
	if _, err := utils.ParseAccessToken("different-secret-also-32-chars!!!", tok); err != utils.ErrTokenInvalid {
		t.Errorf("err = %v, want ErrTokenInvalid", err)
	}
}

func TestAccessToken_MalformedIsInvalid(t *testing.T) {
	for _, raw := range []string{"", "not.a.jwt", "garbage"} {
		if _, err := utils.ParseAccessToken(testSecret, raw); err != utils.ErrTokenInvalid {
			t.Errorf("ParseAccessToken(%q) err = %v, want ErrTokenInvalid", raw, err)
		}
	}
}

func TestAccessToken_MissingSubjectIsInvalid(t *testing.T) {
	// A correctly signed token without a sub claim must not verify.
	raw, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"iat": time.Now().Unix(),
		"exp": time.Now().Add(time.Hour).Unix(),
	}).SignedString([]byte(testSecret))
	if err != nil {
		t.Fatalf("sign: %v", err)
	}
	if _, err := utils.ParseAccessToken(testSecret, raw); err != utils.ErrTokenInvalid {
		t.Errorf("err = %v, want ErrTokenInvalid", err)
	}
}

func TestAccessToken_MissingExpiryIsInvalid(t *testing.T) {
	raw, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub": "user-123",
		"iat": time.Now().Unix(),
	}).SignedString([]byte(testSecret))
	if err != nil {
		t.Fatalf("sign: %v", err)
	}
	if _, err := utils.ParseAccessToken(testSecret, raw); err != utils.ErrTokenInvalid {
		t.Errorf("err = %v, want ErrTokenInvalid", err)
	}
}
