package service

import (
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/taskdeck/todo-api/internal/core/domain"
)

// anonymousToken is a placeholder some browser clients send instead of
// omitting the cookie entirely. It means "no token", not a bad token.
const anonymousToken = "undefined"

// TokenClaims is the identity claim embedded in a signed token. Subject
// carries the username; UserID and Role are custom claims.
type TokenClaims struct {
	jwt.RegisteredClaims
	UserID string `json:"id"`
	Role   string `json:"role"`
}

// TokenCodec signs and verifies identity claims with a process-wide symmetric
// secret. Leaking the secret allows forging tokens for any identity, so it is
// the single highest-value secret in the system.
type TokenCodec struct {
	secret []byte
	ttl    time.Duration
}

func NewTokenCodec(secret string, ttl time.Duration) *TokenCodec {
	return &TokenCodec{secret: []byte(secret), ttl: ttl}
}

// Encode signs a claim for the given user, expiring after the codec's TTL.
func (c *TokenCodec) Encode(username, userID, role string) (string, error) {
	claims := TokenClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   username,
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(c.ttl)),
		},
		UserID: userID,
		Role:   role,
	}

	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return t.SignedString(c.secret)
}

// Decode verifies the token's signature and expiry and returns its claims.
// Any failure — bad signature, wrong algorithm, malformed or expired token —
// is domain.ErrInvalidToken; Decode never panics on garbage input.
func (c *TokenCodec) Decode(raw string) (*TokenClaims, error) {
	claims := &TokenClaims{}
	tkn, err := jwt.ParseWithClaims(raw, claims, func(token *jwt.Token) (interface{}, error) {
		if token.Method.Alg() != jwt.SigningMethodHS256.Alg() {
			return nil, jwt.ErrTokenSignatureInvalid
		}
		return c.secret, nil
	})
	if err != nil || !tkn.Valid {
		return nil, domain.ErrInvalidToken
	}
	return claims, nil
}

// Resolve turns a raw bearer token into the caller's identity.
//
//	(nil, nil)                    — anonymous: empty token or the "undefined"
//	                                placeholder, or a claim missing its
//	                                subject or user id
//	(nil, domain.ErrInvalidToken) — token present but fails verification
//	(*Identity, nil)              — authenticated caller
func (c *TokenCodec) Resolve(raw string) (*domain.Identity, error) {
	if raw == "" || raw == anonymousToken {
		return nil, nil
	}

	claims, err := c.Decode(raw)
	if err != nil {
		return nil, err
	}

	// A verified token with a partially populated claim is no identity at
	// all rather than an error.
	if claims.Subject == "" || claims.UserID == "" {
		return nil, nil
	}

	return &domain.Identity{
		UserID:   claims.UserID,
		Username: claims.Subject,
		Role:     claims.Role,
	}, nil
}
