package services

import (
	"context"

	"github.com/Dosada05/card-league/utils"
)

// AuthService checks the single admin password. Tokens are issued by the
// HTTP layer once Login succeeds.
type AuthService interface {
	Login(ctx context.Context, password string) error
}

type authService struct {
	adminPasswordHash string
}

func NewAuthService(adminPasswordHash string) AuthService {
	return &authService{adminPasswordHash: adminPasswordHash}
}

func (s *authService) Login(_ context.Context, password string) error {
	if s.adminPasswordHash == "" {
		return ErrAuthDisabled
	}
	if password == "" || !utils.CheckPasswordHash(password, s.adminPasswordHash) {
		return ErrInvalidCredentials
	}
	return nil
}
