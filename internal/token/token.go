// Package token mints and verifies the two token classes the API runs
// on: short-lived access tokens carrying role claims, and longer-lived
// refresh tokens carrying only the username. The two classes are signed
// with independent secrets so that a leaked refresh secret cannot forge
// access tokens and vice versa.
package token

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

var (
	// ErrExpired means the token was well-formed and correctly signed
	// but its expiry has passed.
	ErrExpired = errors.New("token expired")
	// ErrSignature means the signature does not match (wrong secret,
	// wrong class, or tampering).
	ErrSignature = errors.New("token signature invalid")
	// ErrMalformed covers everything else: not a JWT, wrong algorithm,
	// undecodable claims.
	ErrMalformed = errors.New("token malformed")
)

// Identity is the claim payload minted into access tokens. IsDeleted is
// carried for parity with the stored record, but authorization-sensitive
// paths re-derive flags from storage rather than trusting a stale copy.
type Identity struct {
	UserID     string
	Username   string
	IsAdmin    bool
	IsEmployee bool
	IsDeleted  bool
}

type accessClaims struct {
	Username   string `json:"username"`
	IsAdmin    bool   `json:"is_admin"`
	IsEmployee bool   `json:"is_employee"`
	IsDeleted  bool   `json:"is_deleted"`
	jwt.RegisteredClaims
}

type refreshClaims struct {
	Username string `json:"username"`
	jwt.RegisteredClaims
}

// Codec signs and verifies HS256 tokens. It holds no other state; one
// instance is shared by the auth service and the middleware.
type Codec struct {
	accessSecret  []byte
	refreshSecret []byte
}

func NewCodec(accessSecret, refreshSecret string) *Codec {
	return &Codec{
		accessSecret:  []byte(accessSecret),
		refreshSecret: []byte(refreshSecret),
	}
}

// MintAccess signs an access token for id with the given lifetime. The
// user id travels in the registered "sub" claim.
func (c *Codec) MintAccess(id Identity, ttl time.Duration) (string, error) {
	now := time.Now()
	claims := accessClaims{
		Username:   id.Username,
		IsAdmin:    id.IsAdmin,
		IsEmployee: id.IsEmployee,
		IsDeleted:  id.IsDeleted,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   id.UserID,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(c.accessSecret)
}

// MintRefresh signs a refresh token. The payload is deliberately minimal:
// the username is all the refresh flow needs, role flags are re-read from
// storage when the token is redeemed.
func (c *Codec) MintRefresh(username string, ttl time.Duration) (string, error) {
	now := time.Now()
	claims := refreshClaims{
		Username: username,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(c.refreshSecret)
}

// VerifyAccess parses and validates an access token. Every failure is one
// of ErrExpired, ErrSignature or ErrMalformed; callers may log which one
// but must present them identically to clients.
func (c *Codec) VerifyAccess(tokenString string) (Identity, error) {
	var claims accessClaims
	if err := c.verify(tokenString, &claims, c.accessSecret); err != nil {
		return Identity{}, err
	}
	return Identity{
		UserID:     claims.Subject,
		Username:   claims.Username,
		IsAdmin:    claims.IsAdmin,
		IsEmployee: claims.IsEmployee,
		IsDeleted:  claims.IsDeleted,
	}, nil
}

// VerifyRefresh parses and validates a refresh token, returning the
// embedded username.
func (c *Codec) VerifyRefresh(tokenString string) (string, error) {
	var claims refreshClaims
	if err := c.verify(tokenString, &claims, c.refreshSecret); err != nil {
		return "", err
	}
	return claims.Username, nil
}

func (c *Codec) verify(tokenString string, claims jwt.Claims, secret []byte) error {
	tkn, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		if t.Method.Alg() != jwt.SigningMethodHS256.Alg() {
			return nil, jwt.ErrTokenSignatureInvalid
		}
		return secret, nil
	})
	switch {
	case err == nil && tkn.Valid:
		return nil
	case errors.Is(err, jwt.ErrTokenExpired):
		return ErrExpired
	case errors.Is(err, jwt.ErrTokenSignatureInvalid):
		return ErrSignature
	default:
		return ErrMalformed
	}
}
