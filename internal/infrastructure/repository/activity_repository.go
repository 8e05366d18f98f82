package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/gamebook/gamebook-api/internal/domain/entity"
	domainRepo "github.com/gamebook/gamebook-api/internal/domain/repository"
)

type activityRepository struct {
	db *gorm.DB
}

// NewActivityRepository creates a new activity repository
func NewActivityRepository(db *gorm.DB) domainRepo.ActivityRepository {
	return &activityRepository{db: db}
}

func (r *activityRepository) Create(ctx context.Context, activity *entity.Activity) error {
	return r.db.WithContext(ctx).Create(activity).Error
}

func (r *activityRepository) ListRecent(ctx context.Context, limit int) ([]entity.Activity, error) {
	var activities []entity.Activity
	err := r.db.WithContext(ctx).
		Scopes(VendorScope(ctx)).
		Order("created_at DESC").
		Limit(limit).
		Find(&activities).Error
	return activities, err
}
