package repository

import (
	"context"

	"github.com/google/uuid"

	"github.com/gamebook/gamebook-api/internal/domain/entity"
	"github.com/gamebook/gamebook-api/internal/domain/enum"
	"github.com/gamebook/gamebook-api/pkg/pagination"
)

// VendorRepository defines the interface for vendor account operations.
// These are admin-side queries and are not vendor-scoped.
type VendorRepository interface {
	Create(ctx context.Context, vendor *entity.Vendor) error
	GetByID(ctx context.Context, id uuid.UUID) (*entity.Vendor, error)
	GetByMobile(ctx context.Context, mobile string) (*entity.Vendor, error)
	Update(ctx context.Context, vendor *entity.Vendor) error
	Delete(ctx context.Context, id uuid.UUID) error
	// List returns vendors with page-based pagination, optionally filtered
	// by status and a name/mobile search.
	List(ctx context.Context, params *pagination.PaginationParams, search string, status enum.VendorStatus) ([]entity.Vendor, int64, error)
}
