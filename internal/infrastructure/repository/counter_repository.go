package repository

import (
	"context"

	"gorm.io/gorm"

	domainRepo "github.com/gamebook/gamebook-api/internal/domain/repository"
)

type counterRepository struct {
	db *gorm.DB
}

// NewCounterRepository creates a new counter repository
func NewCounterRepository(db *gorm.DB) domainRepo.CounterRepository {
	return &counterRepository{db: db}
}

// Next advances the named sequence with a single upsert-increment so two
// concurrent callers can never read the same value.
func (r *counterRepository) Next(ctx context.Context, name string) (int64, error) {
	var value int64
	err := r.db.WithContext(ctx).Raw(`
		INSERT INTO counters (name, value)
		VALUES (?, 1)
		ON CONFLICT (name) DO UPDATE SET value = counters.value + 1
		RETURNING value
	`, name).Scan(&value).Error

	return value, err
}
