package auth

import (
	"crypto/rand"
	"encoding/hex"
	"testing"
	"time"

	"github.com/yoofibh/webtech-dlc/internal/domain"
)

func newTestTokenService(t *testing.T, duration time.Duration) *TokenService {
	t.Helper()
	key := make([]byte, 32)
	if _, err := rand.Read(key); err != nil {
		t.Fatalf("generate key: %v", err)
	}
	svc, err := NewTokenService(hex.EncodeToString(key), duration)
	if err != nil {
		t.Fatalf("NewTokenService: %v", err)
	}
	return svc
}

func TestTokenRoundTrip(t *testing.T) {
	svc := newTestTokenService(t, 7*24*time.Hour)

	token, err := svc.Issue(42, domain.RoleAdmin)
	if err != nil {
		t.Fatalf("Issue: %v", err)
	}

	claims, err := svc.Verify(token)
	if err != nil {
		t.Fatalf("Verify: %v", err)
	}

	if claims.UserID != 42 {
		t.Errorf("UserID: got %d, want 42", claims.UserID)
	}
	if claims.Role != domain.RoleAdmin {
		t.Errorf("Role: got %q, want admin", claims.Role)
	}
	if !claims.IsAdmin() {
		t.Error("admin claims should report IsAdmin")
	}
	if claims.TokenID == "" {
		t.Error("expected a jti claim")
	}

	// Expiry should land at issued-at plus the configured lifetime.
	gap := claims.Expiration.Sub(claims.IssuedAt)
	if gap != 7*24*time.Hour {
		t.Errorf("validity window: got %v, want 168h", gap)
	}
}

func TestVerify_ExpiredToken(t *testing.T) {
	svc := newTestTokenService(t, -time.Minute)

	token, err := svc.Issue(1, domain.RoleStudent)
	if err != nil {
		t.Fatalf("Issue: %v", err)
	}

	if _, err := svc.Verify(token); err == nil {
		t.Error("expired token should fail verification")
	}
}

func TestVerify_WrongKey(t *testing.T) {
	issuer := newTestTokenService(t, time.Hour)
	verifier := newTestTokenService(t, time.Hour)

	token, err := issuer.Issue(1, domain.RoleStudent)
	if err != nil {
		t.Fatalf("Issue: %v", err)
	}

	if _, err := verifier.Verify(token); err == nil {
		t.Error("token from a different key should fail verification")
	}
}

func TestVerify_Garbage(t *testing.T) {
	svc := newTestTokenService(t, time.Hour)
	for _, tok := range []string{"", "garbage", "v4.local.AAAA"} {
		if _, err := svc.Verify(tok); err == nil {
			t.Errorf("token %q should fail verification", tok)
		}
	}
}

func TestNewTokenService_BadKey(t *testing.T) {
	if _, err := NewTokenService("tooshort", time.Hour); err == nil {
		t.Error("short key should be rejected")
	}
	if _, err := NewTokenService(string(make([]byte, 64)), time.Hour); err == nil {
		t.Error("non-hex key should be rejected")
	}
}
