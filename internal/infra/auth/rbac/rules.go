// Package rbac decides whether a request's security context may reach a
// route. Decisions come from a plain, ordered rule table; there is no
// policy engine behind it.
package rbac

import (
	"errors"
	"fmt"
	"strings"

	"takecost/internal/domain"
)

// AuthzError is a denial with a stable machine-readable code.
type AuthzError struct {
	Code string
	Err  error
}

func (e *AuthzError) Error() string { return e.Err.Error() }
func (e *AuthzError) Unwrap() error { return e.Err }

// IsAuthzError reports whether err is a denial and returns its code.
func IsAuthzError(err error) (string, bool) {
	var ae *AuthzError
	if errors.As(err, &ae) {
		return ae.Code, true
	}
	return "", false
}

type ruleKind int

const (
	permitAll ruleKind = iota
	requireAuthenticated
	requireAnyRole
)

// Rule is a single access requirement for a route.
type Rule struct {
	kind  ruleKind
	roles []string
}

func PermitAll() Rule            { return Rule{kind: permitAll} }
func RequireAuthenticated() Rule { return Rule{kind: requireAuthenticated} }

// RequireAnyRole grants access when the authenticated context holds at
// least one of the given role labels.
func RequireAnyRole(roles ...string) Rule {
	return Rule{kind: requireAnyRole, roles: roles}
}

// Check evaluates the rule against the request's security context. nil
// means allowed. Anonymous denials unwrap to domain.ErrUnauthorized,
// authenticated denials to domain.ErrAccessDenied.
func Check(rule Rule, sc domain.SecurityContext) error {
	switch rule.kind {
	case permitAll:
		return nil
	case requireAuthenticated:
		if !sc.Authenticated {
			return &AuthzError{Code: "AUTHENTICATION_REQUIRED", Err: domain.ErrUnauthorized}
		}
		return nil
	case requireAnyRole:
		if !sc.Authenticated {
			return &AuthzError{Code: "AUTHENTICATION_REQUIRED", Err: domain.ErrUnauthorized}
		}
		if !sc.HasAnyRole(rule.roles...) {
			return &AuthzError{
				Code: "MISSING_ROLE",
				Err:  fmt.Errorf("requires one of [%s]: %w", strings.Join(rule.roles, ", "), domain.ErrAccessDenied),
			}
		}
		return nil
	default:
		return &AuthzError{Code: "UNKNOWN_RULE", Err: domain.ErrAccessDenied}
	}
}
