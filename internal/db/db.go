package db

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/ParthPatil-04/API-demo/internal/config"
	"github.com/ParthPatil-04/API-demo/internal/logger"
	"github.com/ParthPatil-04/API-demo/internal/model"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

// Dialector picks the gorm driver for the configured DB_DRIVER.
func Dialector(cfg *config.Config) (gorm.Dialector, error) {
	switch cfg.DBDriver {
	case config.DriverPostgres:
		return postgres.Open(cfg.DSN()), nil
	case config.DriverSQLite:
		return sqlite.Open(cfg.SQLitePath), nil
	default:
		return nil, fmt.Errorf("unsupported db driver %q", cfg.DBDriver)
	}
}

// Open opens the pool, applies the pool limits from cfg and pings once.
func Open(ctx context.Context, cfg *config.Config) (*gorm.DB, error) {
	dialector, err := Dialector(cfg)
	if err != nil {
		return nil, err
	}

	db, err := gorm.Open(dialector, &gorm.Config{
		Logger: newGormLogger(),
	})
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", cfg.DBDriver, err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("get sql.DB: %w", err)
	}

	sqlDB.SetMaxOpenConns(cfg.DBMaxOpenConns)
	sqlDB.SetMaxIdleConns(cfg.DBMaxIdleConns)
	sqlDB.SetConnMaxLifetime(cfg.DBConnMaxLifetime)

	if err := sqlDB.PingContext(ctx); err != nil {
		_ = sqlDB.Close()
		return nil, fmt.Errorf("ping %s: %w", cfg.DBDriver, err)
	}

	return db, nil
}

// ConnectWithRetry calls Open until it succeeds, the attempts configured in
// cfg are used up, or ctx is done.
func ConnectWithRetry(ctx context.Context, cfg *config.Config) (*gorm.DB, error) {
	var err error

	for attempt := 1; attempt <= cfg.DBConnectAttempts; attempt++ {
		var db *gorm.DB
		db, err = Open(ctx, cfg)
		if err == nil {
			logger.Info("db connected", "driver", cfg.DBDriver, "attempt", attempt)
			return db, nil
		}

		logger.Warn("db not ready",
			"attempt", attempt,
			"max_attempts", cfg.DBConnectAttempts,
			"error", err,
		)

		if attempt == cfg.DBConnectAttempts {
			break
		}

		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-time.After(cfg.DBConnectDelay):
		}
	}

	return nil, fmt.Errorf("could not connect to db after %d attempts: %w", cfg.DBConnectAttempts, err)
}

// Migrate creates or updates the books table. It must run before the
// server accepts requests.
func Migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(&model.Book{}); err != nil {
		return fmt.Errorf("migrate books: %w", err)
	}
	return nil
}

func Close(db *gorm.DB) error {
	sqlDB, err := db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

type gormWriter struct{}

func (gormWriter) Printf(format string, args ...any) {
	logger.Info("sql", "trace", strings.TrimSpace(fmt.Sprintf(format, args...)))
}

func newGormLogger() gormlogger.Interface {
	return gormlogger.New(gormWriter{}, gormlogger.Config{
		SlowThreshold:             200 * time.Millisecond,
		LogLevel:                  gormLogLevel(logger.Level()),
		IgnoreRecordNotFoundError: true,
	})
}

func gormLogLevel(l slog.Level) gormlogger.LogLevel {
	switch {
	case l <= slog.LevelDebug:
		return gormlogger.Info
	case l <= slog.LevelWarn:
		return gormlogger.Warn
	default:
		return gormlogger.Error
	}
}
