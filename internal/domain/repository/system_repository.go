package repository

import (
	"context"

	"github.com/gamebook/gamebook-api/internal/domain/entity"
)

// SystemStatusRepository defines the interface for the maintenance switch
type SystemStatusRepository interface {
	// Get returns the status row, creating an enabled default when missing
	Get(ctx context.Context) (*entity.SystemStatus, error)
	Update(ctx context.Context, enabled bool, reason string) (*entity.SystemStatus, error)
}
