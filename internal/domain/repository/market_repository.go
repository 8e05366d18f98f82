package repository

import (
	"context"

	"github.com/google/uuid"

	"github.com/gamebook/gamebook-api/internal/domain/entity"
)

// MarketDetailsRepository defines the interface for per-company market
// staging records. All queries are scoped to the vendor in the context.
type MarketDetailsRepository interface {
	// Upsert creates or replaces the record for the
	// vendor+customer+company+date tuple
	Upsert(ctx context.Context, details *entity.MarketDetails) error
	GetByTuple(ctx context.Context, customerID uuid.UUID, companyName, date string) (*entity.MarketDetails, error)
	// ListByCustomer returns a customer's records, optionally narrowed to a
	// date when date is non-empty
	ListByCustomer(ctx context.Context, customerID uuid.UUID, date string) ([]entity.MarketDetails, error)
	ListByDate(ctx context.Context, date string) ([]entity.MarketDetails, error)
	DeleteByID(ctx context.Context, id uuid.UUID) error
	DeleteByTuple(ctx context.Context, customerID uuid.UUID, companyName, date string) error
	DeleteByDate(ctx context.Context, date string) error
	// DeleteBefore removes staging rows older than the date across all
	// vendors (scheduler cleanup, not vendor-scoped)
	DeleteBefore(ctx context.Context, date string) error
}

// DailyValuesRepository defines the interface for vendor-wide daily market
// digits. All queries are scoped to the vendor in the context.
type DailyValuesRepository interface {
	// Upsert creates or replaces the record for the vendor+date pair
	Upsert(ctx context.Context, values *entity.DailyGlobalValues) error
	GetByDate(ctx context.Context, date string) (*entity.DailyGlobalValues, error)
	DeleteByDate(ctx context.Context, date string) error
	// DeleteBefore removes records older than the date across all vendors
	// (scheduler cleanup, not vendor-scoped)
	DeleteBefore(ctx context.Context, date string) error
}
