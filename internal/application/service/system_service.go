package service

import (
	"context"

	"go.uber.org/zap"

	"github.com/gamebook/gamebook-api/internal/domain/entity"
	"github.com/gamebook/gamebook-api/internal/domain/repository"
)

// SystemService exposes the maintenance switch to admins
type SystemService struct {
	systemRepo repository.SystemStatusRepository
	logger     *zap.Logger
}

// NewSystemService creates a new system service
func NewSystemService(systemRepo repository.SystemStatusRepository, logger *zap.Logger) *SystemService {
	return &SystemService{
		systemRepo: systemRepo,
		logger:     logger,
	}
}

// GetStatus returns the current maintenance state
func (s *SystemService) GetStatus(ctx context.Context) (*entity.SystemStatus, error) {
	return s.systemRepo.Get(ctx)
}

// SetStatus flips the maintenance switch. Reason is stored alongside and
// surfaced in the 503 responses while the system is disabled.
func (s *SystemService) SetStatus(ctx context.Context, enabled bool, reason string) (*entity.SystemStatus, error) {
	status, err := s.systemRepo.Update(ctx, enabled, reason)
	if err != nil {
		return nil, err
	}

	s.logger.Info("system status changed",
		zap.Bool("enabled", enabled),
		zap.String("reason", reason))

	return status, nil
}
