// AngelaMos | 2026
// service.go

package auth

import (
	"context"
	"errors"
	"fmt"

	"github.com/ovationworks/stagedoor/internal/core"
	"github.com/ovationworks/stagedoor/internal/permissions"
	"github.com/ovationworks/stagedoor/internal/store"
)

var ErrInvalidCredentials = errors.New("invalid credentials")

type Service struct {
	store store.Store
	jwt   *JWTManager
}

func NewService(st store.Store, jwt *JWTManager) *Service {
	return &Service{store: st, jwt: jwt}
}

// Login authenticates an account and issues a console access token.
// The role claim is only populated from an active admin assignment;
// a revoked assignment logs in as a plain account with no grants.
func (s *Service) Login(
	ctx context.Context,
	req LoginRequest,
) (*LoginResponse, error) {
	account, err := s.store.AccountByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, core.ErrNotFound) {
			// Burn a hash comparison so unknown emails cost the same.
			_, _ = core.VerifyPasswordTimingSafe(req.Password, nil)
			return nil, ErrInvalidCredentials
		}
		return nil, fmt.Errorf("login: %w", err)
	}

	valid, err := core.VerifyPasswordTimingSafe(req.Password, &account.PasswordHash)
	if err != nil || !valid {
		return nil, ErrInvalidCredentials
	}

	if account.Disabled {
		return nil, ErrInvalidCredentials
	}

	role := permissions.RoleNone
	if account.RoleActive {
		role = permissions.ParseRole(account.AdminRole)
	}

	token, err := s.jwt.CreateAccessToken(AccessTokenClaims{
		UserID: account.UserID,
		Role:   role.String(),
	})
	if err != nil {
		return nil, fmt.Errorf("login: %w", err)
	}

	return &LoginResponse{
		AccessToken: token,
		TokenType:   "Bearer",
		ExpiresIn:   int(s.jwt.config.AccessTokenExpire.Seconds()),
		User: User{
			ID:    account.UserID,
			Email: account.Email,
			Name:  account.Name,
			Role:  role.String(),
		},
	}, nil
}
