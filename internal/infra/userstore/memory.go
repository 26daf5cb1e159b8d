// Package userstore holds the service's accounts. The in-memory store is a
// placeholder collaborator behind domain.CredentialStore until accounts move
// into the database.
package userstore

import (
	"context"
	"sync"

	"takecost/internal/domain"

	"golang.org/x/crypto/bcrypt"
)

type record struct {
	passwordHash []byte
	roles        []string
}

type MemoryStore struct {
	mu    sync.RWMutex
	users map[string]record
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{users: make(map[string]record)}
}

// Add registers an account, hashing the password with bcrypt.
func (s *MemoryStore) Add(name, password string, roles ...string) error {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.users[name] = record{passwordHash: hash, roles: append([]string(nil), roles...)}
	return nil
}

func (s *MemoryStore) LoadByName(_ context.Context, name string) (domain.Principal, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	rec, ok := s.users[name]
	if !ok {
		return domain.Principal{}, domain.ErrNotFound
	}
	return domain.Principal{Name: name, Roles: append([]string(nil), rec.roles...)}, nil
}

// Authenticate checks the password. Unknown names and wrong passwords both
// come back as ErrInvalidCredentials so callers cannot tell which was wrong.
func (s *MemoryStore) Authenticate(_ context.Context, name, password string) (domain.Principal, error) {
	s.mu.RLock()
	rec, ok := s.users[name]
	s.mu.RUnlock()
	if !ok {
		return domain.Principal{}, domain.ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword(rec.passwordHash, []byte(password)); err != nil {
		return domain.Principal{}, domain.ErrInvalidCredentials
	}
	return domain.Principal{Name: name, Roles: append([]string(nil), rec.roles...)}, nil
}

// Demo returns a store seeded with the three demo accounts, all with the
// password "password".
func Demo() (*MemoryStore, error) {
	s := NewMemoryStore()
	seed := []struct {
		name string
		role string
	}{
		{"admin", "ROLE_ADMIN"},
		{"manager", "ROLE_PROJECT_MANAGER"},
		{"member", "ROLE_TEAM_MEMBER"},
	}
	for _, u := range seed {
		if err := s.Add(u.name, "password", u.role); err != nil {
			return nil, err
		}
	}
	return s, nil
}
