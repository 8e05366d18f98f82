package service

import (
	"context"
	"testing"
	"time"

	"go.uber.org/zap"

	"github.com/gamebook/gamebook-api/internal/domain/entity"
	"github.com/gamebook/gamebook-api/internal/domain/enum"
	"github.com/gamebook/gamebook-api/pkg/apperror"
	"github.com/gamebook/gamebook-api/pkg/utils"
)

func newTestAuthService(t *testing.T) (*AuthService, *fakeUserRepo, *fakeVendorRepo) {
	t.Helper()

	userRepo := newFakeUserRepo()
	vendorRepo := newFakeVendorRepo()
	jwtManager := utils.NewJWTManager("test-secret", time.Hour, 24*time.Hour)

	svc := NewAuthService(userRepo, vendorRepo, jwtManager, zap.NewNop())
	return svc, userRepo, vendorRepo
}

func seedAdmin(t *testing.T, repo *fakeUserRepo, username, password string) *entity.User {
	t.Helper()
	hashed, err := utils.HashPassword(password)
	if err != nil {
		t.Fatalf("HashPassword: %v", err)
	}
	user := &entity.User{Name: "Admin", Username: username, Password: hashed, Role: "admin"}
	if err := repo.Create(context.Background(), user); err != nil {
		t.Fatalf("seed admin: %v", err)
	}
	return user
}

func seedVendor(t *testing.T, repo *fakeVendorRepo, mobile, password string, status enum.VendorStatus) *entity.Vendor {
	t.Helper()
	hashed, err := utils.HashPassword(password)
	if err != nil {
		t.Fatalf("HashPassword: %v", err)
	}
	vendor := &entity.Vendor{
		Name:         "Test Vendor",
		BusinessName: "Test Business",
		Mobile:       mobile,
		Password:     hashed,
		Status:       status,
	}
	if err := repo.Create(context.Background(), vendor); err != nil {
		t.Fatalf("seed vendor: %v", err)
	}
	return vendor
}

func TestLoginAdminByUsername(t *testing.T) {
	svc, userRepo, _ := newTestAuthService(t)
	seedAdmin(t, userRepo, "admin", "secret123")

	out, err := svc.Login(context.Background(), &LoginInput{Identifier: "admin", Password: "secret123"})
	if err != nil {
		t.Fatalf("Login: %v", err)
	}
	if out.Role != utils.RoleAdmin {
		t.Errorf("role = %q, want %q", out.Role, utils.RoleAdmin)
	}
	if out.User == nil || out.Vendor != nil {
		t.Error("expected user payload without vendor payload")
	}
	if out.AccessToken == "" || out.RefreshToken == "" {
		t.Error("expected both tokens to be issued")
	}
}

func TestLoginVendorByMobile(t *testing.T) {
	svc, _, vendorRepo := newTestAuthService(t)
	seedVendor(t, vendorRepo, "9876543210", "secret123", enum.VendorStatusApproved)

	// Formatting in the identifier is stripped before lookup
	out, err := svc.Login(context.Background(), &LoginInput{Identifier: "98765 43210", Password: "secret123"})
	if err != nil {
		t.Fatalf("Login: %v", err)
	}
	if out.Role != utils.RoleVendor {
		t.Errorf("role = %q, want %q", out.Role, utils.RoleVendor)
	}
	if out.Vendor == nil || out.User != nil {
		t.Error("expected vendor payload without user payload")
	}
}

func TestLoginWrongPassword(t *testing.T) {
	svc, userRepo, vendorRepo := newTestAuthService(t)
	seedAdmin(t, userRepo, "admin", "secret123")
	seedVendor(t, vendorRepo, "9876543210", "secret123", enum.VendorStatusApproved)

	for _, identifier := range []string{"admin", "9876543210", "nobody"} {
		_, err := svc.Login(context.Background(), &LoginInput{Identifier: identifier, Password: "wrong"})
		if err != apperror.ErrInvalidCredentials {
			t.Errorf("Login(%q) error = %v, want ErrInvalidCredentials", identifier, err)
		}
	}
}

func TestLoginVendorStatusGate(t *testing.T) {
	tests := []struct {
		status   enum.VendorStatus
		loginsOK bool
	}{
		{enum.VendorStatusApproved, true},
		{enum.VendorStatusPending, false},
		{enum.VendorStatusRejected, false},
		{enum.VendorStatusSuspended, false},
		{enum.VendorStatusInactive, false},
	}

	for _, tt := range tests {
		t.Run(string(tt.status), func(t *testing.T) {
			svc, _, vendorRepo := newTestAuthService(t)
			seedVendor(t, vendorRepo, "9876543210", "secret123", tt.status)

			_, err := svc.Login(context.Background(), &LoginInput{Identifier: "9876543210", Password: "secret123"})
			if tt.loginsOK && err != nil {
				t.Fatalf("Login: %v", err)
			}
			if !tt.loginsOK {
				appErr := apperror.GetAppError(err)
				if appErr.Code != 403 {
					t.Errorf("status code = %d, want 403", appErr.Code)
				}
			}
		})
	}
}

func TestRefreshTokenRoundTrip(t *testing.T) {
	svc, _, vendorRepo := newTestAuthService(t)
	seedVendor(t, vendorRepo, "9876543210", "secret123", enum.VendorStatusApproved)

	out, err := svc.Login(context.Background(), &LoginInput{Identifier: "9876543210", Password: "secret123"})
	if err != nil {
		t.Fatalf("Login: %v", err)
	}

	refreshed, err := svc.RefreshToken(context.Background(), out.RefreshToken)
	if err != nil {
		t.Fatalf("RefreshToken: %v", err)
	}
	if refreshed.Role != utils.RoleVendor {
		t.Errorf("role = %q, want %q", refreshed.Role, utils.RoleVendor)
	}
	if refreshed.AccessToken == "" {
		t.Error("expected a new access token")
	}
}

func TestRefreshTokenRejectedAfterSuspension(t *testing.T) {
	svc, _, vendorRepo := newTestAuthService(t)
	vendor := seedVendor(t, vendorRepo, "9876543210", "secret123", enum.VendorStatusApproved)

	out, err := svc.Login(context.Background(), &LoginInput{Identifier: "9876543210", Password: "secret123"})
	if err != nil {
		t.Fatalf("Login: %v", err)
	}

	vendor.Status = enum.VendorStatusSuspended
	if err := vendorRepo.Update(context.Background(), vendor); err != nil {
		t.Fatalf("Update: %v", err)
	}

	if _, err := svc.RefreshToken(context.Background(), out.RefreshToken); err == nil {
		t.Error("expected refresh to fail for a suspended vendor")
	}
}

func TestChangePassword(t *testing.T) {
	svc, _, vendorRepo := newTestAuthService(t)
	vendor := seedVendor(t, vendorRepo, "9876543210", "secret123", enum.VendorStatusApproved)

	err := svc.ChangePassword(context.Background(), &ChangePasswordInput{
		SubjectID:       vendor.ID,
		Role:            utils.RoleVendor,
		CurrentPassword: "wrong",
		NewPassword:     "newsecret123",
	})
	if err == nil {
		t.Fatal("expected wrong current password to be rejected")
	}

	err = svc.ChangePassword(context.Background(), &ChangePasswordInput{
		SubjectID:       vendor.ID,
		Role:            utils.RoleVendor,
		CurrentPassword: "secret123",
		NewPassword:     "newsecret123",
	})
	if err != nil {
		t.Fatalf("ChangePassword: %v", err)
	}

	if _, err := svc.Login(context.Background(), &LoginInput{Identifier: "9876543210", Password: "newsecret123"}); err != nil {
		t.Errorf("login with new password: %v", err)
	}
}
