package service

import (
	"context"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/gamebook/gamebook-api/internal/domain/entity"
	"github.com/gamebook/gamebook-api/internal/domain/enum"
	"github.com/gamebook/gamebook-api/internal/domain/repository"
	"github.com/gamebook/gamebook-api/pkg/apperror"
	"github.com/gamebook/gamebook-api/pkg/pagination"
	"github.com/gamebook/gamebook-api/pkg/utils"
)

// VendorService handles vendor account management. Create/list/status
// changes are admin operations; profile reads and updates serve the vendor
// themselves.
type VendorService struct {
	vendorRepo repository.VendorRepository
	logger     *zap.Logger
}

// NewVendorService creates a new vendor service
func NewVendorService(vendorRepo repository.VendorRepository, logger *zap.Logger) *VendorService {
	return &VendorService{
		vendorRepo: vendorRepo,
		logger:     logger,
	}
}

// CreateVendorInput represents the vendor creation input
type CreateVendorInput struct {
	Name         string
	BusinessName string
	Mobile       string
	Email        *string
	Address      *string
	Password     string
	Status       enum.VendorStatus
}

// CreateVendor registers a new vendor account. New vendors start pending
// unless the admin sets a status explicitly.
func (s *VendorService) CreateVendor(ctx context.Context, input *CreateVendorInput) (*entity.Vendor, error) {
	mobile := utils.NormalizeMobile(input.Mobile)
	if mobile == "" {
		return nil, apperror.NewBadRequestError("Mobile number is required")
	}

	existing, err := s.vendorRepo.GetByMobile(ctx, mobile)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, apperror.NewConflictError("Mobile number already registered")
	}

	hashedPassword, err := utils.HashPassword(input.Password)
	if err != nil {
		return nil, err
	}

	status := input.Status
	if status == "" {
		status = enum.VendorStatusPending
	}
	if !status.IsValid() {
		return nil, apperror.NewBadRequestError("Invalid vendor status")
	}

	vendor := &entity.Vendor{
		Name:         input.Name,
		BusinessName: input.BusinessName,
		Mobile:       mobile,
		Email:        input.Email,
		Address:      input.Address,
		Password:     hashedPassword,
		Status:       status,
	}

	if err := s.vendorRepo.Create(ctx, vendor); err != nil {
		return nil, err
	}

	s.logger.Info("vendor created",
		zap.String("vendor_id", vendor.ID.String()),
		zap.String("status", vendor.Status.String()))

	return vendor, nil
}

// ListVendors returns vendors with pagination, optionally filtered by
// status and search term
func (s *VendorService) ListVendors(ctx context.Context, params *pagination.PaginationParams, search string, status enum.VendorStatus) (*pagination.PaginatedResult[entity.Vendor], error) {
	if status != "" && !status.IsValid() {
		return nil, apperror.NewBadRequestError("Invalid vendor status")
	}

	vendors, total, err := s.vendorRepo.List(ctx, params, search, status)
	if err != nil {
		return nil, err
	}

	return pagination.NewPaginatedResult(vendors, pagination.NewPagination(params.Page, params.PerPage, total)), nil
}

// GetVendor returns one vendor by ID
func (s *VendorService) GetVendor(ctx context.Context, id uuid.UUID) (*entity.Vendor, error) {
	vendor, err := s.vendorRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if vendor == nil {
		return nil, apperror.NewNotFoundError("Vendor")
	}
	return vendor, nil
}

// UpdateVendorInput represents the vendor update input
type UpdateVendorInput struct {
	Name         string
	BusinessName string
	Mobile       string
	Email        *string
	Address      *string
	Status       enum.VendorStatus
}

// UpdateVendor updates a vendor's details and lifecycle status
func (s *VendorService) UpdateVendor(ctx context.Context, id uuid.UUID, input *UpdateVendorInput) (*entity.Vendor, error) {
	vendor, err := s.GetVendor(ctx, id)
	if err != nil {
		return nil, err
	}

	if input.Mobile != "" {
		mobile := utils.NormalizeMobile(input.Mobile)
		if mobile != vendor.Mobile {
			existing, err := s.vendorRepo.GetByMobile(ctx, mobile)
			if err != nil {
				return nil, err
			}
			if existing != nil && existing.ID != vendor.ID {
				return nil, apperror.NewConflictError("Mobile number already registered")
			}
			vendor.Mobile = mobile
		}
	}
	if input.Name != "" {
		vendor.Name = input.Name
	}
	if input.BusinessName != "" {
		vendor.BusinessName = input.BusinessName
	}
	if input.Email != nil {
		vendor.Email = input.Email
	}
	if input.Address != nil {
		vendor.Address = input.Address
	}
	if input.Status != "" {
		if !input.Status.IsValid() {
			return nil, apperror.NewBadRequestError("Invalid vendor status")
		}
		if input.Status != vendor.Status {
			s.logger.Info("vendor status changed",
				zap.String("vendor_id", vendor.ID.String()),
				zap.String("from", vendor.Status.String()),
				zap.String("to", input.Status.String()))
			vendor.Status = input.Status
		}
	}

	if err := s.vendorRepo.Update(ctx, vendor); err != nil {
		return nil, err
	}
	return vendor, nil
}

// DeleteVendor removes a vendor account
func (s *VendorService) DeleteVendor(ctx context.Context, id uuid.UUID) error {
	vendor, err := s.GetVendor(ctx, id)
	if err != nil {
		return err
	}
	return s.vendorRepo.Delete(ctx, vendor.ID)
}

// ResetVendorPassword sets a new password for a vendor (admin operation,
// no current-password check)
func (s *VendorService) ResetVendorPassword(ctx context.Context, id uuid.UUID, newPassword string) error {
	vendor, err := s.GetVendor(ctx, id)
	if err != nil {
		return err
	}

	hashed, err := utils.HashPassword(newPassword)
	if err != nil {
		return err
	}
	vendor.Password = hashed
	return s.vendorRepo.Update(ctx, vendor)
}

// UpdateProfileInput represents a vendor's own profile update
type UpdateProfileInput struct {
	Name         string
	BusinessName string
	Email        *string
	Address      *string
}

// UpdateProfile lets a vendor edit their own details. Mobile and status are
// admin-only and cannot be changed here.
func (s *VendorService) UpdateProfile(ctx context.Context, vendorID uuid.UUID, input *UpdateProfileInput) (*entity.Vendor, error) {
	vendor, err := s.GetVendor(ctx, vendorID)
	if err != nil {
		return nil, err
	}

	if input.Name != "" {
		vendor.Name = input.Name
	}
	if input.BusinessName != "" {
		vendor.BusinessName = input.BusinessName
	}
	if input.Email != nil {
		vendor.Email = input.Email
	}
	if input.Address != nil {
		vendor.Address = input.Address
	}

	if err := s.vendorRepo.Update(ctx, vendor); err != nil {
		return nil, err
	}
	return vendor, nil
}
