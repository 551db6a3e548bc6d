package database

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/shopspring/decimal"
	log "github.com/sirupsen/logrus"
	"github.com/sridharvel/annapoorna-pos/internal/config"
	"github.com/sridharvel/annapoorna-pos/internal/domain/entity"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// NewSQLiteDB opens (creating if needed) the local SQLite database file.
func NewSQLiteDB(cfg *config.DatabaseConfig) (*gorm.DB, error) {
	if dir := filepath.Dir(cfg.Path); dir != "." && dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("failed to create database directory %s: %w", dir, err)
		}
	}

	db, err := gorm.Open(sqlite.Open(cfg.DSN()), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Warn),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	// SQLite takes one writer at a time; capping the pool at a single
	// connection keeps gorm from ever queueing a second one.
	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get underlying sql.DB: %w", err)
	}
	sqlDB.SetMaxOpenConns(1)

	log.WithField("path", cfg.Path).Info("Connected to SQLite database")
	return db, nil
}

// AutoMigrate runs GORM auto-migration for all entities
func AutoMigrate(db *gorm.DB) error {
	log.Info("Running database migrations...")

	err := db.AutoMigrate(
		// Catalog
		&entity.Item{},

		// Ledger
		&entity.Bill{},
		&entity.BillLine{},
		&entity.Expense{},

		// Credit
		&entity.CreditCustomer{},
		&entity.CreditBill{},
		&entity.CreditPayment{},

		// System
		&entity.IdempotencyKey{},
	)
	if err != nil {
		return fmt.Errorf("failed to run migrations: %w", err)
	}

	log.Info("Database migrations completed")
	return nil
}

// SeedSampleItems inserts a starter menu when the items table is empty, so a
// fresh install can bill immediately.
func SeedSampleItems(db *gorm.DB) error {
	var count int64
	if err := db.Model(&entity.Item{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	log.Info("Items table empty, seeding sample menu...")

	type seed struct {
		local    string
		common   string
		price    int64
		category string
	}
	samples := []seed{
		{"தோசை", "Dosa", 40, "Breakfast"},
		{"இட்லி", "Idly", 30, "Breakfast"},
		{"வடை", "Vada", 20, "Breakfast"},
		{"பூரி", "Poori", 35, "Breakfast"},
		{"சப்பாத்தி", "Chapathi", 35, "Breakfast"},
		{"பொங்கல்", "Pongal", 45, "Breakfast"},
		{"உப்புமா", "Upma", 30, "Breakfast"},
		{"பரோட்டா", "Parotta", 15, "Dinner"},
		{"சாதம்", "Rice", 50, "Lunch"},
		{"சாம்பார்", "Sambar", 20, "Lunch"},
		{"ரசம்", "Rasam", 15, "Lunch"},
		{"தயிர்", "Curd", 20, "Lunch"},
	}

	items := make([]entity.Item, 0, len(samples))
	for _, s := range samples {
		items = append(items, entity.Item{
			NameLocal:  s.local,
			NameCommon: s.common,
			Price:      decimal.NewFromInt(s.price),
			Category:   s.category,
			IsActive:   true,
		})
	}

	return db.Create(&items).Error
}
