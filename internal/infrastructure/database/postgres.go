package database

import (
	"fmt"
	"log"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/gamebook/gamebook-api/internal/config"
	"github.com/gamebook/gamebook-api/internal/domain/entity"
)

// NewPostgresDB creates a new PostgreSQL database connection
func NewPostgresDB(cfg *config.DatabaseConfig) (*gorm.DB, error) {
	logLevel := logger.Info

	db, err := gorm.Open(postgres.New(postgres.Config{
		DSN:                  cfg.DSN(),
		PreferSimpleProtocol: true, // disables implicit prepared statement usage
	}), &gorm.Config{
		Logger: logger.Default.LogMode(logLevel),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	// Get underlying SQL DB to set connection pool settings
	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get underlying sql.DB: %w", err)
	}

	// Set connection pool settings
	sqlDB.SetMaxIdleConns(10)
	sqlDB.SetMaxOpenConns(100)

	log.Println("Successfully connected to PostgreSQL database")
	return db, nil
}

// AutoMigrate runs GORM auto-migration for all entities
func AutoMigrate(db *gorm.DB) error {
	log.Println("Running database migrations...")

	err := db.AutoMigrate(
		// Account entities
		&entity.User{},
		&entity.Vendor{},
		&entity.Customer{},

		// Bookkeeping entities
		&entity.Receipt{},
		&entity.Activity{},
		&entity.MarketDetails{},
		&entity.DailyGlobalValues{},

		// System entities
		&entity.Counter{},
		&entity.SystemStatus{},
		&entity.IdempotencyKey{},
	)

	if err != nil {
		return fmt.Errorf("failed to run migrations: %w", err)
	}

	log.Println("Database migrations completed successfully")
	return nil
}

// SeedDefaultData seeds the database with the maintenance switch row and the
// back-office admin account when one is configured
func SeedDefaultData(db *gorm.DB, cfg *config.AdminConfig) error {
	log.Println("Seeding default data...")

	// Maintenance switch starts enabled
	var status entity.SystemStatus
	if err := db.First(&status).Error; err != nil {
		status = entity.SystemStatus{Enabled: true}
		if err := db.Create(&status).Error; err != nil {
			log.Printf("Warning: failed to create system status row: %v", err)
		}
	}

	if cfg.Username != "" && cfg.Password != "" {
		var existingAdmin entity.User
		if err := db.Where("username = ?", cfg.Username).First(&existingAdmin).Error; err != nil {
			hashedPassword, err := bcrypt.GenerateFromPassword([]byte(cfg.Password), bcrypt.DefaultCost)
			if err != nil {
				log.Printf("Warning: failed to hash admin password: %v", err)
			} else {
				name := cfg.Name
				if name == "" {
					name = "Administrator"
				}
				adminUser := entity.User{
					Name:     name,
					Username: cfg.Username,
					Password: string(hashedPassword),
					Role:     "admin",
				}
				if err := db.Create(&adminUser).Error; err != nil {
					log.Printf("Warning: failed to create admin user: %v", err)
				} else {
					log.Printf("Admin user created: %s", cfg.Username)
				}
			}
		} else {
			log.Printf("Admin user already exists: %s", cfg.Username)
		}
	}

	log.Println("Default data seeding completed")
	return nil
}
