// Package db manages the PostgreSQL connection used for carbon record storage.
package db

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/carbon-tracker/backend/config"
)

const (
	connectPingTimeout = 5 * time.Second
	healthPingTimeout  = 2 * time.Second
)

// Database wraps the GORM connection together with its pool settings.
type Database struct {
	db  *gorm.DB
	cfg *config.DatabaseConfig
}

// NewPostgresConnection opens a PostgreSQL connection, applies the configured
// pool limits and verifies the server is reachable before returning.
func NewPostgresConnection(cfg *config.DatabaseConfig) (*Database, error) {
	db, err := gorm.Open(postgres.Open(cfg.URL), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		return nil, fmt.Errorf("open postgres connection: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("access underlying sql.DB: %w", err)
	}

	sqlDB.SetMaxOpenConns(cfg.MaxOpenConns)
	sqlDB.SetMaxIdleConns(cfg.MaxIdleConns)
	sqlDB.SetConnMaxLifetime(cfg.ConnMaxLifetime)

	ctx, cancel := context.WithTimeout(context.Background(), connectPingTimeout)
	defer cancel()
	if err := sqlDB.PingContext(ctx); err != nil {
		return nil, fmt.Errorf("ping postgres: %w", err)
	}

	slog.Info("connected to postgres",
		"max_open_conns", cfg.MaxOpenConns,
		"max_idle_conns", cfg.MaxIdleConns,
		"conn_max_lifetime", cfg.ConnMaxLifetime,
	)

	return &Database{db: db, cfg: cfg}, nil
}

// DB exposes the GORM handle for repositories and migrations.
func (d *Database) DB() *gorm.DB {
	return d.db
}

// HealthCheck reports whether the database currently answers a ping.
func (d *Database) HealthCheck() bool {
	sqlDB, err := d.db.DB()
	if err != nil {
		slog.Error("database health check failed", "error", err)
		return false
	}

	ctx, cancel := context.WithTimeout(context.Background(), healthPingTimeout)
	defer cancel()
	if err := sqlDB.PingContext(ctx); err != nil {
		slog.Error("database health check failed", "error", err)
		return false
	}
	return true
}

// AutoMigrate brings the schema up to date for the given models.
func (d *Database) AutoMigrate(models ...any) error {
	if err := d.db.AutoMigrate(models...); err != nil {
		return fmt.Errorf("auto-migrate schema: %w", err)
	}
	return nil
}

// Close releases the underlying connection pool.
func (d *Database) Close() error {
	sqlDB, err := d.db.DB()
	if err != nil {
		return fmt.Errorf("access underlying sql.DB: %w", err)
	}
	if err := sqlDB.Close(); err != nil {
		return fmt.Errorf("close postgres connection: %w", err)
	}
	slog.Info("postgres connection closed")
	return nil
}
