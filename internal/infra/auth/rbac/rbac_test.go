package rbac

import (
	"errors"
	"testing"

	"takecost/internal/domain"
)

func authed(name string, roles ...string) domain.SecurityContext {
	return domain.SecurityContext{Authenticated: true, PrincipalName: name, Roles: roles}
}

func TestCheckPermitAll(t *testing.T) {
	if err := Check(PermitAll(), domain.SecurityContext{}); err != nil {
		t.Errorf("anonymous: unexpected denial %v", err)
	}
	if err := Check(PermitAll(), authed("admin", "ADMIN")); err != nil {
		t.Errorf("authenticated: unexpected denial %v", err)
	}
}

func TestCheckRequireAuthenticated(t *testing.T) {
	err := Check(RequireAuthenticated(), domain.SecurityContext{})
	if !errors.Is(err, domain.ErrUnauthorized) {
		t.Errorf("anonymous: got %v, want ErrUnauthorized", err)
	}
	if code, ok := IsAuthzError(err); !ok || code != "AUTHENTICATION_REQUIRED" {
		t.Errorf("anonymous: code = %q, ok = %v", code, ok)
	}
	if err := Check(RequireAuthenticated(), authed("member", "TEAM_MEMBER")); err != nil {
		t.Errorf("authenticated: unexpected denial %v", err)
	}
}

func TestCheckRequireAnyRole(t *testing.T) {
	rule := RequireAnyRole("ADMIN", "PROJECT_MANAGER")

	if err := Check(rule, authed("manager", "PROJECT_MANAGER")); err != nil {
		t.Errorf("role held: unexpected denial %v", err)
	}
	if err := Check(rule, authed("admin", "ADMIN", "TEAM_MEMBER")); err != nil {
		t.Errorf("one of several roles held: unexpected denial %v", err)
	}

	err := Check(rule, authed("member", "TEAM_MEMBER"))
	if !errors.Is(err, domain.ErrAccessDenied) {
		t.Errorf("role missing: got %v, want ErrAccessDenied", err)
	}
	if code, _ := IsAuthzError(err); code != "MISSING_ROLE" {
		t.Errorf("role missing: code = %q, want MISSING_ROLE", code)
	}

	// Anonymous requests fail authentication, not role possession.
	err = Check(rule, domain.SecurityContext{})
	if !errors.Is(err, domain.ErrUnauthorized) {
		t.Errorf("anonymous: got %v, want ErrUnauthorized", err)
	}
}

func TestTableFirstMatchWins(t *testing.T) {
	table := NewTable(
		RouteRule{Pattern: "/api/v1/projects/**", Rule: RequireAnyRole("TEAM_MEMBER")},
		RouteRule{Pattern: "/api/v1/projects/special", Rule: PermitAll()},
	)
	// Declaration order decides, so the broad rule shadows the later
	// exact one.
	rule := table.RuleFor("/api/v1/projects/special")
	if err := Check(rule, domain.SecurityContext{}); !errors.Is(err, domain.ErrUnauthorized) {
		t.Errorf("shadowed exact pattern: got %v, want ErrUnauthorized", err)
	}

	reversed := NewTable(
		RouteRule{Pattern: "/api/v1/projects/special", Rule: PermitAll()},
		RouteRule{Pattern: "/api/v1/projects/**", Rule: RequireAnyRole("TEAM_MEMBER")},
	)
	if err := Check(reversed.RuleFor("/api/v1/projects/special"), domain.SecurityContext{}); err != nil {
		t.Errorf("exact pattern first: unexpected denial %v", err)
	}
}

func TestTableDefaultsToRequireAuthenticated(t *testing.T) {
	table := NewTable(RouteRule{Pattern: "/api/v1/auth/**", Rule: PermitAll()})
	err := Check(table.RuleFor("/api/v1/vendors"), domain.SecurityContext{})
	if !errors.Is(err, domain.ErrUnauthorized) {
		t.Errorf("unmatched path: got %v, want ErrUnauthorized", err)
	}
	if err := Check(table.RuleFor("/api/v1/vendors"), authed("member", "TEAM_MEMBER")); err != nil {
		t.Errorf("unmatched path, authenticated: unexpected denial %v", err)
	}
}

func TestMatchPattern(t *testing.T) {
	cases := []struct {
		pattern, path string
		want          bool
	}{
		{"/api/v1/auth/**", "/api/v1/auth/login", true},
		{"/api/v1/auth/**", "/api/v1/auth", true},
		{"/api/v1/auth/**", "/api/v1/authx", false},
		{"/api/v1/auth/**", "/api/v1/auth/login/extra", true},
		{"/healthz", "/healthz", true},
		{"/healthz", "/healthz/", false},
	}
	for _, c := range cases {
		if got := matchPattern(c.pattern, c.path); got != c.want {
			t.Errorf("matchPattern(%q, %q) = %v, want %v", c.pattern, c.path, got, c.want)
		}
	}
}

func TestDefaultTable(t *testing.T) {
	table := DefaultTable()

	if err := Check(table.RuleFor("/api/v1/auth/login"), domain.SecurityContext{}); err != nil {
		t.Errorf("login route: unexpected denial %v", err)
	}
	if err := Check(table.RuleFor("/healthz"), domain.SecurityContext{}); err != nil {
		t.Errorf("health route: unexpected denial %v", err)
	}
	if err := Check(table.RuleFor("/api/v1/projects/1"), authed("member", "TEAM_MEMBER")); err != nil {
		t.Errorf("projects route, team member: unexpected denial %v", err)
	}
	if err := Check(table.RuleFor("/api/v1/admin/users"), authed("member", "TEAM_MEMBER")); !errors.Is(err, domain.ErrAccessDenied) {
		t.Errorf("admin route, team member: got %v, want ErrAccessDenied", err)
	}
	if err := Check(table.RuleFor("/api/v1/admin/users"), authed("admin", "ADMIN")); err != nil {
		t.Errorf("admin route, admin: unexpected denial %v", err)
	}
}
