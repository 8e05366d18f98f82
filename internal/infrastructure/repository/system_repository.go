package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/gamebook/gamebook-api/internal/domain/entity"
	domainRepo "github.com/gamebook/gamebook-api/internal/domain/repository"
)

type systemStatusRepository struct {
	db *gorm.DB
}

// NewSystemStatusRepository creates a new system status repository
func NewSystemStatusRepository(db *gorm.DB) domainRepo.SystemStatusRepository {
	return &systemStatusRepository{db: db}
}

func (r *systemStatusRepository) Get(ctx context.Context) (*entity.SystemStatus, error) {
	var status entity.SystemStatus
	err := r.db.WithContext(ctx).Order("updated_at DESC").First(&status).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		status = entity.SystemStatus{Enabled: true}
		if err := r.db.WithContext(ctx).Create(&status).Error; err != nil {
			return nil, err
		}
		return &status, nil
	}
	return &status, err
}

func (r *systemStatusRepository) Update(ctx context.Context, enabled bool, reason string) (*entity.SystemStatus, error) {
	status, err := r.Get(ctx)
	if err != nil {
		return nil, err
	}

	status.Enabled = enabled
	status.Reason = reason
	if err := r.db.WithContext(ctx).Save(status).Error; err != nil {
		return nil, err
	}
	return status, nil
}
