// Package postgres implements the domain repository interfaces on top of
// gorm and PostgreSQL.
package postgres

import (
	"context"
	"log/slog"
	"time"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"clinic/config"
	"clinic/internal/errors"
	"clinic/internal/infra/persistence/model"
)

const poolMonitorInterval = 30 * time.Second

// NewDB opens the PostgreSQL connection pool and starts pool monitoring.
// The returned cancel function stops the monitor goroutine.
func NewDB(cfg *config.Config, logger *slog.Logger) (*gorm.DB, context.CancelFunc, error) {
	if cfg.Postgres == nil {
		return nil, nil, errors.New("postgres config is required")
	}

	db, err := gorm.Open(postgres.Open(cfg.Postgres.DSN()), &gorm.Config{
		Logger:         newGormSlogLogger(logger, cfg.Env.Debug),
		TranslateError: true,
	})
	if err != nil {
		return nil, nil, errors.Wrap(err, "open postgres connection")
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, nil, errors.Wrap(err, "get sql.DB from gorm")
	}

	if cfg.Postgres.MaxIdleConns > 0 {
		sqlDB.SetMaxIdleConns(cfg.Postgres.MaxIdleConns)
	}
	if cfg.Postgres.MaxOpenConns > 0 {
		sqlDB.SetMaxOpenConns(cfg.Postgres.MaxOpenConns)
	}
	if cfg.Postgres.ConnMaxLifetime > 0 {
		sqlDB.SetConnMaxLifetime(cfg.Postgres.ConnMaxLifetime)
	}
	if cfg.Postgres.ConnMaxIdleTime > 0 {
		sqlDB.SetConnMaxIdleTime(cfg.Postgres.ConnMaxIdleTime)
	}

	ctx, cancel := context.WithCancel(context.Background())
	go monitorDBPool(ctx, db, logger)

	return db, cancel, nil
}

// Migrate applies the schema for all persistence models.
func Migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(
		&model.User{},
		&model.Credential{},
		&model.RefreshToken{},
		&model.Location{},
		&model.Patient{},
		&model.HeartRate{},
	); err != nil {
		return errors.Wrap(err, "auto migrate schema")
	}
	return nil
}

// monitorDBPool periodically logs connection pool statistics.
func monitorDBPool(ctx context.Context, db *gorm.DB, logger *slog.Logger) {
	ticker := time.NewTicker(poolMonitorInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			sqlDB, err := db.DB()
			if err != nil {
				logger.Warn("failed to get sql.DB for pool stats", slog.Any("error", err))
				continue
			}
			stats := sqlDB.Stats()
			logger.Debug("db pool stats",
				slog.Int("open", stats.OpenConnections),
				slog.Int("in_use", stats.InUse),
				slog.Int("idle", stats.Idle),
				slog.Int64("wait_count", stats.WaitCount),
				slog.Duration("wait_duration", stats.WaitDuration),
			)
		}
	}
}
