package repository

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ctxKey string

const (
	// VendorIDKey is the context key for the authenticated vendor ID
	VendorIDKey ctxKey = "vendor_id"
	// SkipVendorScopeKey is the context key for skipping vendor scope
	// (scheduler cleanup jobs)
	SkipVendorScopeKey ctxKey = "skip_vendor_scope"
)

// VendorScope returns a GORM scope that filters by the vendor in the context.
// This must be applied to every query over vendor-owned entities.
// If SkipVendorScopeKey is true in context, returns all records.
func VendorScope(ctx context.Context) func(db *gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		if skipScope, ok := ctx.Value(SkipVendorScopeKey).(bool); ok && skipScope {
			return db
		}

		vendorID, ok := ctx.Value(VendorIDKey).(uuid.UUID)
		if !ok {
			// Fail-safe: return no results if vendor context missing
			// This prevents accidental cross-vendor data access
			return db.Where("1 = 0")
		}
		return db.Where("vendor_id = ?", vendorID)
	}
}

// WithSkipVendorScope adds skip vendor scope flag to context (cleanup jobs)
func WithSkipVendorScope(ctx context.Context, skip bool) context.Context {
	return context.WithValue(ctx, SkipVendorScopeKey, skip)
}

// WithVendor adds vendor ID to context
func WithVendor(ctx context.Context, vendorID uuid.UUID) context.Context {
	return context.WithValue(ctx, VendorIDKey, vendorID)
}

// GetVendorID extracts vendor ID from context
func GetVendorID(ctx context.Context) (uuid.UUID, bool) {
	vendorID, ok := ctx.Value(VendorIDKey).(uuid.UUID)
	return vendorID, ok
}
