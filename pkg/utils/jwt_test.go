package utils

import (
	"testing"
	"time"

	"github.com/google/uuid"
)

func newTestManager() *JWTManager {
	return NewJWTManager("test-secret", time.Hour, 24*time.Hour)
}

func TestAccessTokenRoundTrip(t *testing.T) {
	m := newTestManager()
	id := uuid.New()

	token, err := m.GenerateAccessToken(id, RoleVendor, "Ramesh")
	if err != nil {
		t.Fatalf("GenerateAccessToken: %v", err)
	}

	claims, err := m.ValidateAccessToken(token)
	if err != nil {
		t.Fatalf("ValidateAccessToken: %v", err)
	}
	if claims.SubjectID != id {
		t.Errorf("SubjectID = %s, want %s", claims.SubjectID, id)
	}
	if claims.Role != RoleVendor {
		t.Errorf("Role = %q, want %q", claims.Role, RoleVendor)
	}
	if claims.Name != "Ramesh" {
		t.Errorf("Name = %q, want %q", claims.Name, "Ramesh")
	}
}

func TestAccessTokenWrongSecret(t *testing.T) {
	m := newTestManager()
	token, err := m.GenerateAccessToken(uuid.New(), RoleAdmin, "")
	if err != nil {
		t.Fatalf("GenerateAccessToken: %v", err)
	}

	other := NewJWTManager("different-secret", time.Hour, 24*time.Hour)
	if _, err := other.ValidateAccessToken(token); err == nil {
		t.Error("expected validation to fail with wrong secret")
	}
}

func TestExpiredAccessToken(t *testing.T) {
	m := NewJWTManager("test-secret", -time.Minute, 24*time.Hour)
	token, err := m.GenerateAccessToken(uuid.New(), RoleVendor, "")
	if err != nil {
		t.Fatalf("GenerateAccessToken: %v", err)
	}

	if _, err := m.ValidateAccessToken(token); err == nil {
		t.Error("expected validation to fail for expired token")
	}
}

func TestRefreshTokenRoundTrip(t *testing.T) {
	m := newTestManager()
	id := uuid.New()

	token, err := m.GenerateRefreshToken(id, RoleAdmin)
	if err != nil {
		t.Fatalf("GenerateRefreshToken: %v", err)
	}

	gotID, gotRole, err := m.ValidateRefreshToken(token)
	if err != nil {
		t.Fatalf("ValidateRefreshToken: %v", err)
	}
	if gotID != id || gotRole != RoleAdmin {
		t.Errorf("got (%s, %q), want (%s, %q)", gotID, gotRole, id, RoleAdmin)
	}
}
