package database

import (
	"time"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"leadflow-backend/pkg/config"
)

// NewSQLiteConnection opens the application database. SQLite allows a single
// writer, so the pool is capped at one connection.
func NewSQLiteConnection(cfg *config.Config) (*gorm.DB, error) {
	db, err := gorm.Open(sqlite.Open(cfg.DatabasePath), &gorm.Config{})
	if err != nil {
		return nil, err
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, err
	}
	sqlDB.SetMaxOpenConns(1)
	sqlDB.SetMaxIdleConns(1)
	sqlDB.SetConnMaxLifetime(time.Hour)

	return db, nil
}
