// Package jwt signs and verifies the service's HS256 bearer tokens.
package jwt

import (
	"encoding/base64"
	"errors"
	"fmt"
	"strings"
	"time"

	"takecost/internal/domain"

	jwtlib "github.com/golang-jwt/jwt/v5"
)

const (
	TokenIssuer   = "TakeCost"
	TokenAudience = "TakeCostClient"
)

// Claims is the token payload: registered claims plus the granted role
// labels, carried without the store's authority prefix.
type Claims struct {
	Roles []string `json:"roles"`
	jwtlib.RegisteredClaims
}

// Codec signs and verifies claims with a shared symmetric key.
type Codec struct {
	key []byte
	now func() time.Time
}

// NewCodec builds a codec from the base64-encoded secret. A blank,
// undecodable, or too-short secret is a construction error; callers treat
// that as fatal. now may be nil for the wall clock.
func NewCodec(secretBase64 string, now func() time.Time) (*Codec, error) {
	secretBase64 = strings.TrimSpace(secretBase64)
	if secretBase64 == "" {
		return nil, errors.New("jwt secret is required")
	}
	key, err := base64.StdEncoding.DecodeString(secretBase64)
	if err != nil {
		return nil, fmt.Errorf("decode jwt secret: %w", err)
	}
	if len(key) < 32 {
		return nil, errors.New("jwt secret must decode to at least 32 bytes")
	}
	if now == nil {
		now = time.Now
	}
	return &Codec{key: key, now: now}, nil
}

// Sign serializes and signs the claims.
func (c *Codec) Sign(claims Claims) (string, error) {
	return jwtlib.NewWithClaims(jwtlib.SigningMethodHS256, claims).SignedString(c.key)
}

// Verify parses the token and enforces signature, issuer, audience, and the
// time window. A token expiring at T is already invalid at T. Every failure
// collapses to domain.ErrInvalidToken; callers get no further detail.
func (c *Codec) Verify(token string) (Claims, error) {
	var claims Claims
	parsed, err := jwtlib.ParseWithClaims(token, &claims,
		func(t *jwtlib.Token) (any, error) { return c.key, nil },
		jwtlib.WithValidMethods([]string{jwtlib.SigningMethodHS256.Alg()}),
		jwtlib.WithIssuer(TokenIssuer),
		jwtlib.WithAudience(TokenAudience),
		jwtlib.WithExpirationRequired(),
		jwtlib.WithTimeFunc(c.now),
	)
	if err != nil || !parsed.Valid {
		return Claims{}, domain.ErrInvalidToken
	}
	return claims, nil
}
