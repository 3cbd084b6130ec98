package utils // package utils provides helper functions for token creation and hashing

import (
	"errors" // errors defines the single invalid-token sentinel
	"time"   // time utilities for generating expirations

	"github.com/golang-jwt/jwt/v5" // JWT library for creating signed tokens
)

// AuthToken represents a signed JWT along with its expiry. The Token field
// contains the serialized JWT string. Tokens are long-lived (days, not
// minutes), carried in the Authorization header, and never persisted
// server-side; there is no refresh or revocation mechanism, so a token
// stays valid until Exp or until the client discards it.
type AuthToken struct {
	Token string    // the serialized JWT string
	Exp   time.Time // the UTC expiration time
}

// Claims is the identity embedded in an auth token.
type Claims struct {
	UserID   string // subject: hex document id of the admin user
	Email    string // admin email at issue time
	Username string // admin username at issue time
}

// ErrInvalidToken is returned by VerifyAuthToken for every failure mode.
// Callers cannot distinguish an expired token from a tampered or
// malformed one.
var ErrInvalidToken = errors.New("invalid token")

// NewAuthToken builds and signs an HS256 JWT for an admin user. It takes
// the signing secret, the identity claims and a TTL in days, and returns
// the signed token with its expiration time. The JWT carries sub, email,
// username, exp and iat.
func NewAuthToken(secret string, cl Claims, ttlDays int) (AuthToken, error) {
	exp := time.Now().UTC().Add(time.Duration(ttlDays) * 24 * time.Hour)
	claims := jwt.MapClaims{
		"sub":      cl.UserID,
		"email":    cl.Email,
		"username": cl.Username,
		"exp":      exp.Unix(),
		"iat":      time.Now().UTC().Unix(),
	}
	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := t.SignedString([]byte(secret))
	if err != nil {
		return AuthToken{}, err
	}
	return AuthToken{Token: signed, Exp: exp}, nil
}

// VerifyAuthToken checks the signature and expiry of a token string and
// returns the embedded claims. Any structural, signature or expiry
// failure surfaces as ErrInvalidToken.
func VerifyAuthToken(secret, raw string) (Claims, error) {
	tok, err := jwt.Parse(raw, func(t *jwt.Token) (interface{}, error) {
		// Reject tokens signed with anything but HMAC
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrInvalidToken
		}
		return []byte(secret), nil
	})
	if err != nil || !tok.Valid {
		return Claims{}, ErrInvalidToken
	}
	mc, ok := tok.Claims.(jwt.MapClaims)
	if !ok {
		return Claims{}, ErrInvalidToken
	}
	cl := Claims{}
	if s, ok := mc["sub"].(string); ok {
		cl.UserID = s
	}
	if s, ok := mc["email"].(string); ok {
		cl.Email = s
	}
	if s, ok := mc["username"].(string); ok {
		cl.Username = s
	}
	if cl.UserID == "" {
		return Claims{}, ErrInvalidToken
	}
	return cl, nil
}
