package usecase

import (
	"context"

	"takecost/internal/domain"
)

// LoginService exchanges credentials for a signed token.
type LoginService struct {
	Users  domain.CredentialStore
	Issuer domain.TokenIssuer
}

func NewLoginService(users domain.CredentialStore, issuer domain.TokenIssuer) *LoginService {
	return &LoginService{Users: users, Issuer: issuer}
}

// Login authenticates and issues a token. Bad credentials come back as
// domain.ErrInvalidCredentials regardless of which part was wrong.
func (s *LoginService) Login(ctx context.Context, username, password string) (string, error) {
	p, err := s.Users.Authenticate(ctx, username, password)
	if err != nil {
		return "", err
	}
	return s.Issuer.Issue(p)
}
