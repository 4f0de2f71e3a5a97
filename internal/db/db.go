package db

import (
	"time"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/nexthora/booking-api/internal/config"
	"github.com/nexthora/booking-api/internal/logger"
	"github.com/nexthora/booking-api/internal/models"
)

func NewDB(cfg *config.Config) *gorm.DB {
	db, err := gorm.Open(postgres.Open(cfg.DBUrl), &gorm.Config{
		PrepareStmt: true,
	})
	if err != nil {
		logger.L().Fatalf("failed to connect database: %v", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		logger.L().Fatalf("failed to get sql.DB: %v", err)
	}

	sqlDB.SetMaxOpenConns(10)
	sqlDB.SetMaxIdleConns(5)
	sqlDB.SetConnMaxLifetime(30 * time.Minute)
	sqlDB.SetConnMaxIdleTime(10 * time.Minute)

	if err := db.AutoMigrate(
		&models.Account{},
		&models.Professional{},
		&models.Service{},
		&models.BusinessHours{},
		&models.TimeOff{},
		&models.Appointment{},
		&models.AuditLog{},
	); err != nil {
		logger.L().Fatalf("failed to migrate: %v", err)
	}

	return db
}
