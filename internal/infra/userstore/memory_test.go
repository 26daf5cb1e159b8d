package userstore

import (
	"context"
	"errors"
	"testing"

	"takecost/internal/domain"
)

func TestAuthenticate(t *testing.T) {
	store := NewMemoryStore()
	if err := store.Add("manager", "s3cret", "ROLE_PROJECT_MANAGER"); err != nil {
		t.Fatalf("Add: %v", err)
	}
	ctx := context.Background()

	p, err := store.Authenticate(ctx, "manager", "s3cret")
	if err != nil {
		t.Fatalf("Authenticate: %v", err)
	}
	if p.Name != "manager" || len(p.Roles) != 1 || p.Roles[0] != "ROLE_PROJECT_MANAGER" {
		t.Errorf("principal = %+v", p)
	}

	if _, err := store.Authenticate(ctx, "manager", "wrong"); !errors.Is(err, domain.ErrInvalidCredentials) {
		t.Errorf("wrong password: got %v, want ErrInvalidCredentials", err)
	}
	// An unknown name must be indistinguishable from a wrong password.
	if _, err := store.Authenticate(ctx, "nobody", "s3cret"); !errors.Is(err, domain.ErrInvalidCredentials) {
		t.Errorf("unknown user: got %v, want ErrInvalidCredentials", err)
	}
}

func TestLoadByName(t *testing.T) {
	store := NewMemoryStore()
	if err := store.Add("admin", "pw", "ROLE_ADMIN"); err != nil {
		t.Fatalf("Add: %v", err)
	}
	ctx := context.Background()

	p, err := store.LoadByName(ctx, "admin")
	if err != nil {
		t.Fatalf("LoadByName: %v", err)
	}
	if p.Name != "admin" {
		t.Errorf("name = %q", p.Name)
	}
	if _, err := store.LoadByName(ctx, "ghost"); !errors.Is(err, domain.ErrNotFound) {
		t.Errorf("unknown user: got %v, want ErrNotFound", err)
	}
}

func TestDemoAccounts(t *testing.T) {
	store, err := Demo()
	if err != nil {
		t.Fatalf("Demo: %v", err)
	}
	ctx := context.Background()
	for name, role := range map[string]string{
		"admin":   "ROLE_ADMIN",
		"manager": "ROLE_PROJECT_MANAGER",
		"member":  "ROLE_TEAM_MEMBER",
	} {
		p, err := store.Authenticate(ctx, name, "password")
		if err != nil {
			t.Fatalf("Authenticate %s: %v", name, err)
		}
		if len(p.Roles) != 1 || p.Roles[0] != role {
			t.Errorf("%s roles = %v, want [%s]", name, p.Roles, role)
		}
	}
}
