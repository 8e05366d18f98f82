package service

import (
	"context"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/gamebook/gamebook-api/internal/domain/entity"
	"github.com/gamebook/gamebook-api/internal/domain/enum"
	"github.com/gamebook/gamebook-api/internal/domain/repository"
	"github.com/gamebook/gamebook-api/pkg/apperror"
	"github.com/gamebook/gamebook-api/pkg/utils"
)

// AuthService handles authentication for both admins and vendors through a
// single login flow
type AuthService struct {
	userRepo   repository.UserRepository
	vendorRepo repository.VendorRepository
	jwtManager *utils.JWTManager
	logger     *zap.Logger
}

// NewAuthService creates a new auth service
func NewAuthService(
	userRepo repository.UserRepository,
	vendorRepo repository.VendorRepository,
	jwtManager *utils.JWTManager,
	logger *zap.Logger,
) *AuthService {
	return &AuthService{
		userRepo:   userRepo,
		vendorRepo: vendorRepo,
		jwtManager: jwtManager,
		logger:     logger,
	}
}

// LoginInput represents the login input. Identifier is an admin username or
// a vendor mobile number; the service works out which.
type LoginInput struct {
	Identifier string
	Password   string
}

// LoginOutput represents the login output
type LoginOutput struct {
	Role         string         `json:"role"`
	User         *entity.User   `json:"user,omitempty"`
	Vendor       *entity.Vendor `json:"vendor,omitempty"`
	AccessToken  string         `json:"access_token"`
	RefreshToken string         `json:"refresh_token"`
}

// Login authenticates either role. An admin account matching the identifier
// as a username wins; otherwise the identifier is treated as a vendor
// mobile number. Vendors may only log in while approved.
func (s *AuthService) Login(ctx context.Context, input *LoginInput) (*LoginOutput, error) {
	user, err := s.userRepo.GetByUsername(ctx, input.Identifier)
	if err != nil {
		return nil, err
	}
	if user != nil {
		return s.loginAdmin(ctx, user, input.Password)
	}

	vendor, err := s.vendorRepo.GetByMobile(ctx, utils.NormalizeMobile(input.Identifier))
	if err != nil {
		return nil, err
	}
	if vendor == nil {
		return nil, apperror.ErrInvalidCredentials
	}
	return s.loginVendor(ctx, vendor, input.Password)
}

func (s *AuthService) loginAdmin(ctx context.Context, user *entity.User, password string) (*LoginOutput, error) {
	if !utils.CheckPasswordHash(password, user.Password) {
		return nil, apperror.ErrInvalidCredentials
	}

	accessToken, err := s.jwtManager.GenerateAccessToken(user.ID, utils.RoleAdmin, user.Name)
	if err != nil {
		return nil, err
	}
	refreshToken, err := s.jwtManager.GenerateRefreshToken(user.ID, utils.RoleAdmin)
	if err != nil {
		return nil, err
	}

	s.logger.Info("admin logged in", zap.String("username", user.Username))

	return &LoginOutput{
		Role:         utils.RoleAdmin,
		User:         user,
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
	}, nil
}

func (s *AuthService) loginVendor(ctx context.Context, vendor *entity.Vendor, password string) (*LoginOutput, error) {
	if !utils.CheckPasswordHash(password, vendor.Password) {
		return nil, apperror.ErrInvalidCredentials
	}

	if !vendor.Status.CanLogin() {
		return nil, vendorStatusError(vendor.Status)
	}

	accessToken, err := s.jwtManager.GenerateAccessToken(vendor.ID, utils.RoleVendor, vendor.Name)
	if err != nil {
		return nil, err
	}
	refreshToken, err := s.jwtManager.GenerateRefreshToken(vendor.ID, utils.RoleVendor)
	if err != nil {
		return nil, err
	}

	s.logger.Info("vendor logged in", zap.String("vendor_id", vendor.ID.String()))

	return &LoginOutput{
		Role:         utils.RoleVendor,
		Vendor:       vendor,
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
	}, nil
}

func vendorStatusError(status enum.VendorStatus) error {
	switch status {
	case enum.VendorStatusPending:
		return apperror.NewForbiddenError("Your account is awaiting approval")
	case enum.VendorStatusRejected:
		return apperror.NewForbiddenError("Your account application was rejected")
	case enum.VendorStatusSuspended:
		return apperror.NewForbiddenError("Your account has been suspended")
	default:
		return apperror.NewForbiddenError("Your account is inactive")
	}
}

// RefreshToken generates new tokens from a refresh token
func (s *AuthService) RefreshToken(ctx context.Context, refreshToken string) (*LoginOutput, error) {
	subjectID, role, err := s.jwtManager.ValidateRefreshToken(refreshToken)
	if err != nil {
		return nil, apperror.ErrInvalidToken
	}

	switch role {
	case utils.RoleAdmin:
		user, err := s.userRepo.GetByID(ctx, subjectID)
		if err != nil {
			return nil, err
		}
		if user == nil {
			return nil, apperror.ErrNotFound
		}
		return s.loginTokensForAdmin(user)
	case utils.RoleVendor:
		vendor, err := s.vendorRepo.GetByID(ctx, subjectID)
		if err != nil {
			return nil, err
		}
		if vendor == nil {
			return nil, apperror.ErrNotFound
		}
		if !vendor.Status.CanLogin() {
			return nil, vendorStatusError(vendor.Status)
		}
		return s.loginTokensForVendor(vendor)
	default:
		return nil, apperror.ErrInvalidToken
	}
}

func (s *AuthService) loginTokensForAdmin(user *entity.User) (*LoginOutput, error) {
	accessToken, err := s.jwtManager.GenerateAccessToken(user.ID, utils.RoleAdmin, user.Name)
	if err != nil {
		return nil, err
	}
	refreshToken, err := s.jwtManager.GenerateRefreshToken(user.ID, utils.RoleAdmin)
	if err != nil {
		return nil, err
	}
	return &LoginOutput{
		Role:         utils.RoleAdmin,
		User:         user,
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
	}, nil
}

func (s *AuthService) loginTokensForVendor(vendor *entity.Vendor) (*LoginOutput, error) {
	accessToken, err := s.jwtManager.GenerateAccessToken(vendor.ID, utils.RoleVendor, vendor.Name)
	if err != nil {
		return nil, err
	}
	refreshToken, err := s.jwtManager.GenerateRefreshToken(vendor.ID, utils.RoleVendor)
	if err != nil {
		return nil, err
	}
	return &LoginOutput{
		Role:         utils.RoleVendor,
		Vendor:       vendor,
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
	}, nil
}

// ChangePasswordInput represents the change password input
type ChangePasswordInput struct {
	SubjectID       uuid.UUID
	Role            string
	CurrentPassword string
	NewPassword     string
}

// ChangePassword changes the caller's own password
func (s *AuthService) ChangePassword(ctx context.Context, input *ChangePasswordInput) error {
	switch input.Role {
	case utils.RoleAdmin:
		user, err := s.userRepo.GetByID(ctx, input.SubjectID)
		if err != nil {
			return err
		}
		if user == nil {
			return apperror.ErrNotFound
		}
		if !utils.CheckPasswordHash(input.CurrentPassword, user.Password) {
			return apperror.NewBadRequestError("Current password is incorrect")
		}
		hashed, err := utils.HashPassword(input.NewPassword)
		if err != nil {
			return err
		}
		user.Password = hashed
		return s.userRepo.Update(ctx, user)
	case utils.RoleVendor:
		vendor, err := s.vendorRepo.GetByID(ctx, input.SubjectID)
		if err != nil {
			return err
		}
		if vendor == nil {
			return apperror.ErrNotFound
		}
		if !utils.CheckPasswordHash(input.CurrentPassword, vendor.Password) {
			return apperror.NewBadRequestError("Current password is incorrect")
		}
		hashed, err := utils.HashPassword(input.NewPassword)
		if err != nil {
			return err
		}
		vendor.Password = hashed
		return s.vendorRepo.Update(ctx, vendor)
	default:
		return apperror.ErrForbidden
	}
}
