package service

import (
	"context"

	"github.com/gamebook/gamebook-api/internal/domain/entity"
	"github.com/gamebook/gamebook-api/internal/domain/repository"
)

// ActivityService serves the vendor's activity feed
type ActivityService struct {
	activityRepo repository.ActivityRepository
}

// NewActivityService creates a new activity service
func NewActivityService(activityRepo repository.ActivityRepository) *ActivityService {
	return &ActivityService{activityRepo: activityRepo}
}

// ListRecent returns the newest activities, capped at 100 per call
func (s *ActivityService) ListRecent(ctx context.Context, limit int) ([]entity.Activity, error) {
	if limit <= 0 || limit > 100 {
		limit = 20
	}
	return s.activityRepo.ListRecent(ctx, limit)
}
