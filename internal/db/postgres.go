package db

import (
	"fmt"
	"log"
	"time"

	"barangay-records-go/internal/config"
	"barangay-records-go/internal/domain/barangay"
	"barangay-records-go/internal/domain/blotter"
	"barangay-records-go/internal/domain/certificate"
	"barangay-records-go/internal/domain/household"
	"barangay-records-go/internal/domain/resident"
	"barangay-records-go/internal/domain/user"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

const (
	defaultMaxOpenConns    = 10
	defaultMaxIdleConns    = 5
	defaultConnMaxLifetime = 30 * time.Minute
)

func NewPostgres(cfg config.DBConfig) (*gorm.DB, error) {
	if cfg.DSN != "" {
		log.Printf("db: connecting using DSN")
	} else {
		log.Printf("db: connecting to postgres host=%s port=%s dbname=%s sslmode=%s", cfg.Host, cfg.Port, cfg.Name, cfg.SSLMode)
	}

	dsn := cfg.GetDSN()
	gormDB, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		return nil, fmt.Errorf("open db: %w", err)
	}

	sqlDB, err := gormDB.DB()
	if err != nil {
		return nil, fmt.Errorf("db handle: %w", err)
	}

	maxOpen := cfg.MaxOpenConns
	if maxOpen == 0 {
		maxOpen = defaultMaxOpenConns
	}
	maxIdle := cfg.MaxIdleConns
	if maxIdle == 0 {
		maxIdle = defaultMaxIdleConns
	}
	connMaxLifetime := cfg.ConnMaxLifetime
	if connMaxLifetime == 0 {
		connMaxLifetime = defaultConnMaxLifetime
	}

	sqlDB.SetMaxOpenConns(maxOpen)
	sqlDB.SetMaxIdleConns(maxIdle)
	sqlDB.SetConnMaxLifetime(connMaxLifetime)

	if err := sqlDB.Ping(); err != nil {
		return nil, fmt.Errorf("db ping: %w", err)
	}

	log.Printf("db: connected")
	return gormDB, nil
}

// AutoMigrate creates or alters the record tables. Households migrate
// before residents and residents before users and certificates, so the
// foreign keys resolve.
func AutoMigrate(gormDB *gorm.DB) error {
	return gormDB.AutoMigrate(
		&barangay.Barangay{},
		&household.Household{},
		&resident.Resident{},
		&user.User{},
		&blotter.Blotter{},
		&certificate.Certificate{},
	)
}
