package repository

import (
	"context"

	"github.com/gamebook/gamebook-api/internal/domain/entity"
)

// ActivityRepository defines the interface for the vendor activity feed
type ActivityRepository interface {
	Create(ctx context.Context, activity *entity.Activity) error
	// ListRecent returns the newest activities for the vendor in scope
	ListRecent(ctx context.Context, limit int) ([]entity.Activity, error)
}
