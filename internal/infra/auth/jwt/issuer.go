package jwt

import (
	"strings"
	"time"

	"takecost/internal/domain"

	jwtlib "github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

const rolePrefix = "ROLE_"

// NormalizeRoles strips the store's authority prefix so tokens carry plain
// role labels.
func NormalizeRoles(roles []string) []string {
	out := make([]string, 0, len(roles))
	for _, r := range roles {
		out = append(out, strings.TrimPrefix(r, rolePrefix))
	}
	return out
}

// Issuer mints tokens for authenticated principals. Issuing is pure
// computation; nothing is recorded anywhere.
type Issuer struct {
	codec    *Codec
	validity time.Duration
	now      func() time.Time
	newID    func() string
}

func NewIssuer(codec *Codec, validity time.Duration) *Issuer {
	return NewIssuerWithClock(codec, validity, nil, nil)
}

// NewIssuerWithClock is NewIssuer with an injectable clock and token ID
// source for tests.
func NewIssuerWithClock(codec *Codec, validity time.Duration, now func() time.Time, newID func() string) *Issuer {
	if now == nil {
		now = time.Now
	}
	if newID == nil {
		newID = uuid.NewString
	}
	return &Issuer{codec: codec, validity: validity, now: now, newID: newID}
}

// Issue signs a fresh token for p. iat and nbf are now, exp is now plus the
// configured validity, and every call gets a new random jti.
func (i *Issuer) Issue(p domain.Principal) (string, error) {
	now := i.now()
	claims := Claims{
		Roles: NormalizeRoles(p.Roles),
		RegisteredClaims: jwtlib.RegisteredClaims{
			Issuer:    TokenIssuer,
			Subject:   p.Name,
			Audience:  jwtlib.ClaimStrings{TokenAudience},
			IssuedAt:  jwtlib.NewNumericDate(now),
			NotBefore: jwtlib.NewNumericDate(now),
			ExpiresAt: jwtlib.NewNumericDate(now.Add(i.validity)),
			ID:        i.newID(),
		},
	}
	return i.codec.Sign(claims)
}
