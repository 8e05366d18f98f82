package repository

import (
	"context"

	"github.com/google/uuid"

	"github.com/gamebook/gamebook-api/internal/domain/entity"
)

// CustomerRepository defines the interface for customer data operations.
// All queries are scoped to the vendor carried in the context.
type CustomerRepository interface {
	Create(ctx context.Context, customer *entity.Customer) error
	GetByID(ctx context.Context, id uuid.UUID) (*entity.Customer, error)
	// GetByName looks a customer up by exact name within the vendor scope
	GetByName(ctx context.Context, name string) (*entity.Customer, error)
	Update(ctx context.Context, customer *entity.Customer) error
	Delete(ctx context.Context, id uuid.UUID) error
	// List returns all of the vendor's customers ordered by serial number
	List(ctx context.Context) ([]entity.Customer, error)
}
