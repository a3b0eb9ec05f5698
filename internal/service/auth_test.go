package service

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"io"
	"log/slog"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yoofibh/webtech-dlc/internal/auth"
	"github.com/yoofibh/webtech-dlc/internal/domain"
	domainerrors "github.com/yoofibh/webtech-dlc/internal/errors"
	"github.com/yoofibh/webtech-dlc/internal/store/sqlite"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// setupServices creates the auth and book services backed by a temporary
// SQLite database.
func setupServices(t *testing.T) (*AuthService, *BookService) {
	t.Helper()

	dbPath := filepath.Join(t.TempDir(), "test.db")
	logger := discardLogger()

	s, err := sqlite.Open(dbPath, logger)
	require.NoError(t, err)
	t.Cleanup(func() { s.Close() })

	key := make([]byte, 32)
	_, err = rand.Read(key)
	require.NoError(t, err)

	tokens, err := auth.NewTokenService(hex.EncodeToString(key), 7*24*time.Hour)
	require.NoError(t, err)

	return NewAuthService(s, tokens, logger), NewBookService(s, logger)
}

func TestRegister(t *testing.T) {
	authSvc, _ := setupServices(t)
	ctx := context.Background()

	resp, err := authSvc.Register(ctx, RegisterRequest{
		Name:     "Ama Mensah",
		Email:    "ama@example.com",
		Password: "correct-horse",
	})
	require.NoError(t, err)

	assert.NotZero(t, resp.User.ID)
	assert.Equal(t, "ama@example.com", resp.User.Email)
	assert.Equal(t, domain.RoleStudent, resp.User.Role)
	assert.NotEmpty(t, resp.Token)

	// The returned token is immediately verifiable.
	claims, err := authSvc.Verify(resp.Token)
	require.NoError(t, err)
	assert.Equal(t, resp.User.ID, claims.UserID)
	assert.Equal(t, domain.RoleStudent, claims.Role)
}

func TestRegisterRoles(t *testing.T) {
	tests := []struct {
		name      string
		requested string
		want      domain.Role
	}{
		{"empty defaults to student", "", domain.RoleStudent},
		{"admin is honored", "admin", domain.RoleAdmin},
		{"anything else is student", "librarian", domain.RoleStudent},
		{"case matters", "Admin", domain.RoleStudent},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			authSvc, _ := setupServices(t)
			resp, err := authSvc.Register(context.Background(), RegisterRequest{
				Name:     "Test User",
				Email:    "user@example.com",
				Password: "correct-horse",
				Role:     tt.requested,
			})
			require.NoError(t, err)
			assert.Equal(t, tt.want, resp.User.Role)
		})
	}
}

func TestRegisterValidation(t *testing.T) {
	authSvc, _ := setupServices(t)
	ctx := context.Background()

	tests := []struct {
		name string
		req  RegisterRequest
	}{
		{"missing name", RegisterRequest{Email: "a@example.com", Password: "correct-horse"}},
		{"missing email", RegisterRequest{Name: "A", Password: "correct-horse"}},
		{"bad email", RegisterRequest{Name: "A", Email: "not-an-email", Password: "correct-horse"}},
		{"short password", RegisterRequest{Name: "A", Email: "a@example.com", Password: "short"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := authSvc.Register(ctx, tt.req)
			assert.ErrorIs(t, err, domainerrors.ErrValidation)
		})
	}
}

func TestRegisterDuplicateEmail(t *testing.T) {
	authSvc, _ := setupServices(t)
	ctx := context.Background()

	req := RegisterRequest{Name: "Ama", Email: "ama@example.com", Password: "correct-horse"}
	_, err := authSvc.Register(ctx, req)
	require.NoError(t, err)

	_, err = authSvc.Register(ctx, req)
	assert.ErrorIs(t, err, domainerrors.ErrConflict)
}

func TestLogin(t *testing.T) {
	authSvc, _ := setupServices(t)
	ctx := context.Background()

	_, err := authSvc.Register(ctx, RegisterRequest{
		Name:     "Kofi",
		Email:    "kofi@example.com",
		Password: "correct-horse",
		Role:     "admin",
	})
	require.NoError(t, err)

	resp, err := authSvc.Login(ctx, LoginRequest{
		Email:    "kofi@example.com",
		Password: "correct-horse",
	})
	require.NoError(t, err)
	assert.Equal(t, domain.RoleAdmin, resp.User.Role)

	claims, err := authSvc.Verify(resp.Token)
	require.NoError(t, err)
	assert.Equal(t, resp.User.ID, claims.UserID)
	assert.True(t, claims.IsAdmin())
}

func TestLoginInvalidCredentials(t *testing.T) {
	authSvc, _ := setupServices(t)
	ctx := context.Background()

	_, err := authSvc.Register(ctx, RegisterRequest{
		Name:     "Kofi",
		Email:    "kofi@example.com",
		Password: "correct-horse",
	})
	require.NoError(t, err)

	// Wrong password and unknown email produce the same error.
	_, err = authSvc.Login(ctx, LoginRequest{Email: "kofi@example.com", Password: "wrong-password"})
	assert.ErrorIs(t, err, domainerrors.ErrInvalidCredentials)

	_, err = authSvc.Login(ctx, LoginRequest{Email: "nobody@example.com", Password: "correct-horse"})
	assert.ErrorIs(t, err, domainerrors.ErrInvalidCredentials)
}

func TestVerifyRejectsGarbage(t *testing.T) {
	authSvc, _ := setupServices(t)

	_, err := authSvc.Verify("not-a-token")
	assert.ErrorIs(t, err, domainerrors.ErrUnauthenticated)

	_, err = authSvc.Verify("")
	assert.ErrorIs(t, err, domainerrors.ErrUnauthenticated)
}
