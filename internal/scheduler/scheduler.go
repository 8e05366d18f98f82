package scheduler

import (
	"context"
	"time"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"

	"github.com/gamebook/gamebook-api/internal/config"
	"github.com/gamebook/gamebook-api/internal/domain/repository"
	infraRepo "github.com/gamebook/gamebook-api/internal/infrastructure/repository"
)

// Scheduler runs the nightly cleanup: staging records (market details and
// daily values) older than the retention window are dropped across all
// vendors, along with expired idempotency keys.
type Scheduler struct {
	cron            *cron.Cron
	marketRepo      repository.MarketDetailsRepository
	dailyRepo       repository.DailyValuesRepository
	idempotencyRepo repository.IdempotencyRepository
	cfg             *config.SchedulerConfig
	logger          *zap.Logger
}

// New creates a scheduler with second-resolution cron expressions
func New(
	marketRepo repository.MarketDetailsRepository,
	dailyRepo repository.DailyValuesRepository,
	idempotencyRepo repository.IdempotencyRepository,
	cfg *config.SchedulerConfig,
	logger *zap.Logger,
) *Scheduler {
	return &Scheduler{
		cron:            cron.New(cron.WithSeconds()),
		marketRepo:      marketRepo,
		dailyRepo:       dailyRepo,
		idempotencyRepo: idempotencyRepo,
		cfg:             cfg,
		logger:          logger,
	}
}

// Start registers the cleanup job and starts the cron loop
func (s *Scheduler) Start() error {
	if !s.cfg.Enabled {
		s.logger.Info("scheduler disabled")
		return nil
	}

	if _, err := s.cron.AddFunc(s.cfg.CleanupCron, s.runCleanup); err != nil {
		return err
	}

	s.cron.Start()
	s.logger.Info("scheduler started", zap.String("cleanup_cron", s.cfg.CleanupCron))
	return nil
}

// Stop halts the cron loop and waits for a running job to finish
func (s *Scheduler) Stop() {
	ctx := s.cron.Stop()
	<-ctx.Done()
}

func (s *Scheduler) runCleanup() {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
	defer cancel()

	// Cleanup crosses vendor boundaries
	ctx = infraRepo.WithSkipVendorScope(ctx, true)

	cutoff := time.Now().AddDate(0, 0, -s.cfg.RetentionDays).Format("2006-01-02")

	if err := s.marketRepo.DeleteBefore(ctx, cutoff); err != nil {
		s.logger.Error("market details cleanup failed", zap.Error(err))
	}
	if err := s.dailyRepo.DeleteBefore(ctx, cutoff); err != nil {
		s.logger.Error("daily values cleanup failed", zap.Error(err))
	}
	if err := s.idempotencyRepo.DeleteExpired(ctx); err != nil {
		s.logger.Error("idempotency key cleanup failed", zap.Error(err))
	}

	s.logger.Info("staging cleanup finished", zap.String("cutoff", cutoff))
}
