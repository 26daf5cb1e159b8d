package jwt

import (
	"time"

	"takecost/internal/domain"
)

// Verifier checks presented tokens against the codec and, separately,
// against the principal they name.
type Verifier struct {
	codec *Codec
	now   func() time.Time
}

func NewVerifier(codec *Codec) *Verifier {
	return NewVerifierWithClock(codec, nil)
}

func NewVerifierWithClock(codec *Codec, now func() time.Time) *Verifier {
	if now == nil {
		now = codec.now
	}
	return &Verifier{codec: codec, now: now}
}

// Verify returns the identity a valid token names, or ErrInvalidToken.
func (v *Verifier) Verify(token string) (domain.Identity, error) {
	claims, err := v.codec.Verify(token)
	if err != nil {
		return domain.Identity{}, err
	}
	return domain.Identity{Subject: claims.Subject, Roles: claims.Roles}, nil
}

// ValidateFor re-checks a token against the principal loaded for its
// subject: the subject must match the principal's name and the token must
// not be expired. The expiry check here is derived from the decoded claim
// with the verifier's own clock, independent of the codec's enforcement.
func (v *Verifier) ValidateFor(token string, p domain.Principal) bool {
	claims, err := v.codec.Verify(token)
	if err != nil {
		return false
	}
	return claims.Subject == p.Name && !v.expired(claims)
}

func (v *Verifier) expired(claims Claims) bool {
	if claims.ExpiresAt == nil {
		return true
	}
	return !v.now().Before(claims.ExpiresAt.Time)
}
