// Package db provides the gorm database connection, schema migration and
// role seeding for the service.
package db

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"user_backend/internal/feature/users/domain/entity"
	"user_backend/internal/platform/config"
)

const (
	connectTimeout = 60 * time.Second
	retryInterval  = 3 * time.Second
)

// Open connects to postgres, retrying until the connection succeeds or the
// timeout elapses. Cloud databases frequently come up after the service
// container, hence the retry loop.
func Open(cfg config.DBConfig) (*gorm.DB, error) {
	dsn := cfg.DSN()

	deadline := time.Now().Add(connectTimeout)
	for {
		db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
		if err == nil {
			return db, nil
		}
		if time.Now().After(deadline) {
			return nil, fmt.Errorf("connect to database after %s: %w", connectTimeout, err)
		}
		slog.Warn("database connect failed, retrying", "error", err)
		time.Sleep(retryInterval)
	}
}

// Migrate creates or updates the users, roles and user_roles tables.
func Migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(&entity.User{}, &entity.Role{}); err != nil {
		return fmt.Errorf("migrate schema: %w", err)
	}
	return nil
}

// SeedRoles inserts every name from the given vocabulary that is missing
// from the roles table. Existing rows are left untouched, so seeding is
// idempotent across restarts.
func SeedRoles(ctx context.Context, db *gorm.DB, names []string) error {
	for _, name := range names {
		var role entity.Role
		res := db.WithContext(ctx).
			Where(&entity.Role{Name: name}).
			FirstOrCreate(&role)
		if res.Error != nil {
			return fmt.Errorf("seed role %q: %w", name, res.Error)
		}
		if res.RowsAffected > 0 {
			slog.Info("inserted role", "name", name)
		}
	}
	return nil
}
