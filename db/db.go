// Copyright (c) 2025 the agora authors.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package db

import (
	"fmt"
	"log/slog"
	"time"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/openagora/agora/models"
)

const (
	maxRetries    = 10
	retryInterval = 3 * time.Second
)

// Connect opens a gorm connection to PostgreSQL and verifies it with a
// ping, retrying while the database comes up (e.g. under docker compose).
func Connect(databaseURL string) (*gorm.DB, error) {
	var lastErr error
	for i := 0; i < maxRetries; i++ {
		gdb, err := gorm.Open(postgres.Open(databaseURL), &gorm.Config{})
		if err != nil {
			lastErr = err
			slog.Warn("database not ready, retrying", "attempt", i+1, "max", maxRetries, "error", err)
			time.Sleep(retryInterval)
			continue
		}

		sqlDB, err := gdb.DB()
		if err != nil {
			return nil, fmt.Errorf("failed to unwrap sql.DB: %w", err)
		}
		if err := sqlDB.Ping(); err != nil {
			sqlDB.Close()
			lastErr = err
			slog.Warn("database ping failed, retrying", "attempt", i+1, "max", maxRetries, "error", err)
			time.Sleep(retryInterval)
			continue
		}

		return gdb, nil
	}
	return nil, fmt.Errorf("failed to connect to database after %d retries: %w", maxRetries, lastErr)
}

// Migrate creates or updates the schema for all entities.
// Safe to call multiple times.
func Migrate(gdb *gorm.DB) error {
	err := gdb.AutoMigrate(
		&models.User{},
		&models.Topic{},
		&models.Question{},
		&models.Event{},
		&models.Reply{},
		&models.Like{},
		&models.Saved{},
	)
	if err != nil {
		return fmt.Errorf("failed to migrate schema: %w", err)
	}
	return nil
}
