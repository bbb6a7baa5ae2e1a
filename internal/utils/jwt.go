package utils // package utils provides helper functions for token creation and hashing

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5" // JWT library for creating and parsing signed tokens
)

// Sentinel errors returned by ParseAccessToken.  ErrTokenExpired means the
// signature verified but the expiry has passed; everything else that can go
// wrong with a token (malformed, wrong secret, wrong algorithm, missing
// subject) is ErrTokenInvalid.
var (
	ErrTokenInvalid = errors.New("invalid token")
	ErrTokenExpired = errors.New("token expired")
)

// Claims is the decoded payload of an access token: who the token was
// issued to and the issue/expiry bounds.  A value of this type is the
// authenticated principal for exactly one request; it is never stored.
type Claims struct {
	Subject   string    // sub – user ID the token asserts as the caller
	IssuedAt  time.Time // iat
	ExpiresAt time.Time // exp – strictly IssuedAt + TTL
}

// NewAccessToken builds and signs an HS256 JWT for a user.  It takes the
// signing secret, the subject (the user's ID in canonical string form),
// a TTL in minutes and the issue time.  The token carries the standard
// sub, iat and exp claims and nothing else; exp is always iat plus the
// TTL.  The wire format is a plain compact JWT – no additional base64
// wrapping is applied.
func NewAccessToken(secret, subject string, ttlMin int, now time.Time) (string, error) {
	now = now.UTC()
	claims := jwt.MapClaims{
		"sub": subject,
		"iat": now.Unix(),
		"exp": now.Add(time.Duration(ttlMin) * time.Minute).Unix(),
	}
	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return t.SignedString([]byte(secret))
}

// ParseAccessToken verifies the signature and expiry of a compact JWT and
// returns its claims.  The secret must match the one used at issue time.
// Verification is a pure computation: signature check plus timestamp
// comparison, nothing blocks.
func ParseAccessToken(secret, raw string) (Claims, error) {
	tok, err := jwt.Parse(raw, func(t *jwt.Token) (interface{}, error) {
		// Reject tokens signed with anything but HMAC; otherwise a
		// crafted "alg":"none" token would slip through.
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrTokenInvalid
		}
		return []byte(secret), nil
	}, jwt.WithExpirationRequired())
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return Claims{}, ErrTokenExpired
		}
		return Claims{}, ErrTokenInvalid
	}
	if !tok.Valid {
		return Claims{}, ErrTokenInvalid
	}
	mc, ok := tok.Claims.(jwt.MapClaims)
	if !ok {
		return Claims{}, ErrTokenInvalid
	}
	sub, ok := mc["sub"].(string)
	if !ok || sub == "" {
		return Claims{}, ErrTokenInvalid
	}
	var c Claims
	c.Subject = sub
	if iat, ok := mc["iat"].(float64); ok {
		c.IssuedAt = time.Unix(int64(iat), 0).UTC()
	}
	if exp, ok := mc["exp"].(float64); ok {
		c.ExpiresAt = time.Unix(int64(exp), 0).UTC()
	}
	return c, nil
}
