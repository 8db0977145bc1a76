package config

import (
	"fmt"
	"log/slog"
	"time"

	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/umar710/Inventory-Management-Backend/models"
)

// Connect opens the relational store and runs migrations. DB_HOST selects
// Postgres; without it the service falls back to a local SQLite file,
// matching the original deployment.
func Connect(cfg *Config, log *slog.Logger) (*gorm.DB, error) {
	var dialector gorm.Dialector
	if cfg.DBHost != "" {
		dsn := fmt.Sprintf("postgres://%s:%s@%s:%s/%s",
			cfg.DBUser, cfg.DBPassword, cfg.DBHost, cfg.DBPort, cfg.DBName)
		dialector = postgres.Open(dsn)
		log.Info("connecting to postgres", "host", cfg.DBHost, "database", cfg.DBName)
	} else {
		dialector = sqlite.Open(cfg.SQLitePath)
		log.Info("connecting to sqlite", "path", cfg.SQLitePath)
	}

	db, err := gorm.Open(dialector, &gorm.Config{TranslateError: true})
	if err != nil {
		return nil, err
	}
	if err := db.AutoMigrate(&models.User{}, &models.Product{}, &models.InventoryHistory{}); err != nil {
		return nil, err
	}

	if !cfg.IsProduction() {
		seedSampleData(db, log)
	}
	return db, nil
}

// seedSampleData inserts a starter catalog into an empty development
// database, with an initialization history entry per product.
func seedSampleData(db *gorm.DB, log *slog.Logger) {
	var count int64
	if err := db.Model(&models.Product{}).Count(&count).Error; err != nil || count > 0 {
		return
	}

	samples := []models.Product{
		{Name: "Laptop", Unit: "Piece", Category: "Electronics", Brand: "Dell", Stock: 15},
		{Name: "Mouse", Unit: "Piece", Category: "Electronics", Brand: "Logitech", Stock: 25},
		{Name: "Notebook", Unit: "Piece", Category: "Stationery", Brand: "Classmate", Stock: 50},
		{Name: "Pen", Unit: "Piece", Category: "Stationery", Brand: "Reynolds", Stock: 100},
		{Name: "Chair", Unit: "Piece", Category: "Furniture", Brand: "Ikea", Stock: 10},
	}
	for i := range samples {
		if err := db.Create(&samples[i]).Error; err != nil {
			log.Warn("seed insert failed", "product", samples[i].Name, "error", err)
			continue
		}
		entry := models.InventoryHistory{
			ProductId:   samples[i].Id,
			OldQuantity: 0,
			NewQuantity: samples[i].Stock,
			ChangeDate:  time.Now(),
			UserInfo:    "System Initialization",
		}
		if err := db.Create(&entry).Error; err != nil {
			log.Warn("seed history failed", "product", samples[i].Name, "error", err)
		}
	}
	log.Info("sample data inserted", "products", len(samples))
}
