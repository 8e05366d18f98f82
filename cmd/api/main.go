package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/gamebook/gamebook-api/internal/application/service"
	"github.com/gamebook/gamebook-api/internal/config"
	"github.com/gamebook/gamebook-api/internal/infrastructure/database"
	"github.com/gamebook/gamebook-api/internal/infrastructure/repository"
	"github.com/gamebook/gamebook-api/internal/presentation/http/handler"
	"github.com/gamebook/gamebook-api/internal/presentation/http/routes"
	"github.com/gamebook/gamebook-api/internal/scheduler"
	"github.com/gamebook/gamebook-api/pkg/logger"
	"github.com/gamebook/gamebook-api/pkg/utils"
)

func main() {
	// Load configuration
	cfg := config.Load()

	zlog := logger.Must(logger.New(cfg.App.Debug))
	defer zlog.Sync()

	// Set Gin mode based on environment
	if cfg.App.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	// Connect to database
	db, err := database.NewPostgresDB(&cfg.Database)
	if err != nil {
		zlog.Fatal("failed to connect to database", zap.Error(err))
	}

	// Run auto-migrations
	if err := database.AutoMigrate(db); err != nil {
		zlog.Fatal("failed to run migrations", zap.Error(err))
	}

	// Seed default data (admin account, system status row)
	if err := database.SeedDefaultData(db, &cfg.Admin); err != nil {
		zlog.Warn("failed to seed default data", zap.Error(err))
	}

	// Initialize JWT manager
	jwtManager := utils.NewJWTManager(
		cfg.JWT.Secret,
		cfg.JWT.ExpiryHours,
		cfg.JWT.RefreshExpiryHours,
	)

	// Initialize repositories
	userRepo := repository.NewUserRepository(db)
	vendorRepo := repository.NewVendorRepository(db)
	customerRepo := repository.NewCustomerRepository(db)
	receiptRepo := repository.NewReceiptRepository(db)
	activityRepo := repository.NewActivityRepository(db)
	counterRepo := repository.NewCounterRepository(db)
	marketRepo := repository.NewMarketDetailsRepository(db)
	dailyRepo := repository.NewDailyValuesRepository(db)
	systemRepo := repository.NewSystemStatusRepository(db)
	idempotencyRepo := repository.NewIdempotencyRepository(db)
	reportRepo := repository.NewReportRepository(db)

	// Initialize services
	authService := service.NewAuthService(userRepo, vendorRepo, jwtManager, zlog.Named("auth"))
	vendorService := service.NewVendorService(vendorRepo, zlog.Named("vendor"))
	customerService := service.NewCustomerService(customerRepo, receiptRepo, counterRepo, activityRepo, reportRepo, zlog.Named("customer"))
	receiptService := service.NewReceiptService(receiptRepo, customerRepo, activityRepo, zlog.Named("receipt"))
	shortcutService := service.NewShortcutService(receiptRepo, customerRepo, zlog.Named("shortcut"))
	marketService := service.NewMarketService(marketRepo, dailyRepo, customerRepo, zlog.Named("market"))
	reportService := service.NewReportService(reportRepo, receiptRepo, zlog.Named("report"))
	activityService := service.NewActivityService(activityRepo)
	systemService := service.NewSystemService(systemRepo, zlog.Named("system"))

	// Initialize handlers
	handlers := &routes.Handlers{
		Auth:     handler.NewAuthHandler(authService),
		Vendor:   handler.NewVendorHandler(vendorService),
		Customer: handler.NewCustomerHandler(customerService),
		Receipt:  handler.NewReceiptHandler(receiptService),
		Shortcut: handler.NewShortcutHandler(shortcutService),
		Market:   handler.NewMarketHandler(marketService),
		Activity: handler.NewActivityHandler(activityService),
		Report:   handler.NewReportHandler(reportService),
		System:   handler.NewSystemHandler(systemService),
	}

	// Setup routes
	router := routes.Setup(handlers, &routes.Deps{
		JWTManager:      jwtManager,
		Cfg:             cfg,
		Logger:          zlog.Named("http"),
		IdempotencyRepo: idempotencyRepo,
		SystemRepo:      systemRepo,
	})

	// Start the nightly staging cleanup
	sched := scheduler.New(marketRepo, dailyRepo, idempotencyRepo, &cfg.Scheduler, zlog.Named("scheduler"))
	if err := sched.Start(); err != nil {
		zlog.Fatal("failed to start scheduler", zap.Error(err))
	}

	port := cfg.App.Port
	if port == "" {
		port = "8080"
	}

	srv := &http.Server{
		Addr:    ":" + port,
		Handler: router,
	}

	go func() {
		zlog.Info("server starting",
			zap.String("name", cfg.App.Name),
			zap.String("env", cfg.App.Env),
			zap.String("port", port))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			zlog.Fatal("server failed", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	zlog.Info("shutting down")
	sched.Stop()

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		zlog.Error("forced shutdown", zap.Error(err))
	}
}
