// AngelaMos | 2026
// service_test.go

package auth

import (
	"context"
	"errors"
	"path/filepath"
	"testing"
	"time"

	"github.com/ovationworks/stagedoor/internal/config"
	"github.com/ovationworks/stagedoor/internal/core"
	"github.com/ovationworks/stagedoor/internal/store"
)

type loginStore struct {
	account *store.Account
	err     error
}

func (s *loginStore) Accounts(context.Context, string) ([]store.Account, error) {
	return nil, nil
}

func (s *loginStore) AccountByEmail(
	ctx context.Context,
	email string,
) (*store.Account, error) {
	if s.err != nil {
		return nil, s.err
	}
	if s.account == nil || s.account.Email != email {
		return nil, core.ErrNotFound
	}
	return s.account, nil
}

func (s *loginStore) Profiles(context.Context) ([]store.Profile, error) {
	return nil, nil
}

func (s *loginStore) Events(context.Context) ([]store.Event, error) {
	return nil, nil
}

func (s *loginStore) OpeningCounts(context.Context) (map[string]int, error) {
	return nil, nil
}

func (s *loginStore) ApplicationCounts(context.Context) (map[string]int, error) {
	return nil, nil
}

func (s *loginStore) SignupCounts(context.Context) (map[string]int, error) {
	return nil, nil
}

func testManager(t *testing.T) *JWTManager {
	t.Helper()

	dir := t.TempDir()
	private := filepath.Join(dir, "private.pem")
	public := filepath.Join(dir, "public.pem")

	if err := GenerateKeyPair(private, public); err != nil {
		t.Fatalf("GenerateKeyPair: %v", err)
	}

	manager, err := NewJWTManager(config.JWTConfig{
		PrivateKeyPath:    private,
		PublicKeyPath:     public,
		AccessTokenExpire: 15 * time.Minute,
		Issuer:            "stagedoor",
		Audience:          "stagedoor-admin",
	})
	if err != nil {
		t.Fatalf("NewJWTManager: %v", err)
	}

	return manager
}

func testAccount(t *testing.T, password string) *store.Account {
	t.Helper()

	hash, err := core.HashPassword(password)
	if err != nil {
		t.Fatalf("HashPassword: %v", err)
	}

	return &store.Account{
		ID:           "a1",
		UserID:       "u1",
		Kind:         store.KindIndividual,
		Email:        "admin@stagedoor.example",
		Name:         "Admin One",
		PasswordHash: hash,
		AdminRole:    "moderator",
		RoleActive:   true,
	}
}

func TestLoginIssuesVerifiableToken(t *testing.T) {
	manager := testManager(t)
	account := testAccount(t, "correct horse battery")
	svc := NewService(&loginStore{account: account}, manager)

	resp, err := svc.Login(context.Background(), LoginRequest{
		Email:    account.Email,
		Password: "correct horse battery",
	})
	if err != nil {
		t.Fatalf("Login: %v", err)
	}

	if resp.User.Role != "moderator" {
		t.Errorf("user role = %q, want moderator", resp.User.Role)
	}
	if resp.TokenType != "Bearer" {
		t.Errorf("token type = %q", resp.TokenType)
	}

	claims, err := manager.VerifyAccessToken(context.Background(), resp.AccessToken)
	if err != nil {
		t.Fatalf("VerifyAccessToken: %v", err)
	}
	if claims.UserID != "u1" || claims.Role != "moderator" {
		t.Fatalf("claims = %+v", claims)
	}
}

func TestLoginWrongPassword(t *testing.T) {
	manager := testManager(t)
	account := testAccount(t, "correct horse battery")
	svc := NewService(&loginStore{account: account}, manager)

	_, err := svc.Login(context.Background(), LoginRequest{
		Email:    account.Email,
		Password: "incorrect horse",
	})
	if !errors.Is(err, ErrInvalidCredentials) {
		t.Fatalf("error = %v, want ErrInvalidCredentials", err)
	}
}

func TestLoginUnknownEmail(t *testing.T) {
	manager := testManager(t)
	svc := NewService(&loginStore{}, manager)

	_, err := svc.Login(context.Background(), LoginRequest{
		Email:    "nobody@stagedoor.example",
		Password: "whatever works",
	})
	if !errors.Is(err, ErrInvalidCredentials) {
		t.Fatalf("error = %v, want ErrInvalidCredentials", err)
	}
}

func TestLoginDisabledAccount(t *testing.T) {
	manager := testManager(t)
	account := testAccount(t, "correct horse battery")
	account.Disabled = true
	svc := NewService(&loginStore{account: account}, manager)

	_, err := svc.Login(context.Background(), LoginRequest{
		Email:    account.Email,
		Password: "correct horse battery",
	})
	if !errors.Is(err, ErrInvalidCredentials) {
		t.Fatalf("error = %v, want ErrInvalidCredentials", err)
	}
}

func TestLoginRevokedRoleIsNone(t *testing.T) {
	manager := testManager(t)
	account := testAccount(t, "correct horse battery")
	account.RoleActive = false
	svc := NewService(&loginStore{account: account}, manager)

	resp, err := svc.Login(context.Background(), LoginRequest{
		Email:    account.Email,
		Password: "correct horse battery",
	})
	if err != nil {
		t.Fatalf("Login: %v", err)
	}
	if resp.User.Role != "none" {
		t.Fatalf("user role = %q, want none for revoked assignment",
			resp.User.Role)
	}

	claims, err := manager.VerifyAccessToken(context.Background(), resp.AccessToken)
	if err != nil {
		t.Fatalf("VerifyAccessToken: %v", err)
	}
	if claims.Role != "none" {
		t.Fatalf("claims role = %q, want none", claims.Role)
	}
}
