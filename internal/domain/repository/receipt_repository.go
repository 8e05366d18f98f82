package repository

import (
	"context"

	"github.com/google/uuid"

	"github.com/gamebook/gamebook-api/internal/domain/entity"
	"github.com/gamebook/gamebook-api/pkg/pagination"
)

// ReceiptRepository defines the interface for receipt data operations.
// All queries are scoped to the vendor carried in the context.
type ReceiptRepository interface {
	Create(ctx context.Context, receipt *entity.Receipt) error
	GetByID(ctx context.Context, id uuid.UUID) (*entity.Receipt, error)
	Update(ctx context.Context, receipt *entity.Receipt) error
	Delete(ctx context.Context, id uuid.UUID) error
	// List returns receipts newest first with page-based pagination
	List(ctx context.Context, params *pagination.PaginationParams) ([]entity.Receipt, int64, error)
	// ListByDate returns every receipt for one date (YYYY-MM-DD)
	ListByDate(ctx context.Context, date string) ([]entity.Receipt, error)
	// ListBetween returns every receipt dated inside the inclusive window
	ListBetween(ctx context.Context, from, to string) ([]entity.Receipt, error)
	// GetByCustomerAndDate returns the receipt a customer already has for a
	// date, or nil when none exists
	GetByCustomerAndDate(ctx context.Context, customerID uuid.UUID, date string) (*entity.Receipt, error)
	// LatestByCustomer returns the customer's most recent receipt by date,
	// or nil when the customer has none
	LatestByCustomer(ctx context.Context, customerID uuid.UUID) (*entity.Receipt, error)
}
