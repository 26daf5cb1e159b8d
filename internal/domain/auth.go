package domain

import "context"

// Principal is an account as stored in the credential store. Roles carry the
// store's authority labels, prefix included (for example "ROLE_ADMIN").
type Principal struct {
	Name  string
	Roles []string
}

// SecurityContext is the per-request identity. The zero value is anonymous.
type SecurityContext struct {
	Authenticated bool
	PrincipalName string
	Roles         []string
}

// HasAnyRole reports whether the context carries at least one of the given
// role labels.
func (sc SecurityContext) HasAnyRole(roles ...string) bool {
	for _, want := range roles {
		for _, have := range sc.Roles {
			if have == want {
				return true
			}
		}
	}
	return false
}

// Identity is the result of verifying a token: who it names and which role
// labels it grants.
type Identity struct {
	Subject string
	Roles   []string
}

// TokenIssuer mints a signed token for an authenticated principal.
type TokenIssuer interface {
	Issue(p Principal) (string, error)
}

// TokenVerifier checks a presented token. Verify returns ErrInvalidToken for
// any failure. ValidateFor re-checks an already verified token against the
// principal loaded for its subject.
type TokenVerifier interface {
	Verify(token string) (Identity, error)
	ValidateFor(token string, p Principal) bool
}

// CredentialStore resolves principals by name and checks passwords.
type CredentialStore interface {
	LoadByName(ctx context.Context, name string) (Principal, error)
	Authenticate(ctx context.Context, name, password string) (Principal, error)
}
