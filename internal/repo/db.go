// Package repo implements record persistence. A Store wraps one Backend
// (MongoDB or GORM over SQLite) and gives the rest of the application
// fire-and-forget writes and newest-first reads. A Store without a backend
// still accepts writes (dropping them) and fails reads with ErrStoreUnavailable.
package repo

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"time"

	sqlite "github.com/glebarez/sqlite"
	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
	"gorm.io/plugin/opentelemetry/tracing"

	"github.com/tbourn/holistiq/internal/domain"
)

// OpenSQLite opens (or creates) a SQLite database, applies PRAGMAs and pool
// limits, and installs the OpenTelemetry tracing plugin.
func OpenSQLite(path string) (*gorm.DB, error) {
	// Fail early if the parent directory is missing; sqlite reports it as "out of memory (14)".
	if dir := filepath.Dir(path); dir != "." && !isMemoryDSN(path) {
		if _, err := os.Stat(dir); err != nil {
			return nil, err
		}
	}

	db, err := gorm.Open(sqlite.Open(path), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Warn),
	})
	if err != nil {
		return nil, err
	}
	if err := db.Use(tracing.NewPlugin(tracing.WithoutMetrics())); err != nil {
		return nil, err
	}

	db.Exec("PRAGMA journal_mode=WAL;")
	db.Exec("PRAGMA synchronous=NORMAL;")
	db.Exec("PRAGMA busy_timeout=5000;")

	if sqlDB, err := db.DB(); err == nil {
		sqlDB.SetMaxOpenConns(10)
		if isMemoryDSN(path) {
			// shared-cache memory databases report SQLITE_LOCKED instead of waiting
			sqlDB.SetMaxOpenConns(1)
		}
		sqlDB.SetMaxIdleConns(10)
		sqlDB.SetConnMaxIdleTime(5 * time.Minute)
		sqlDB.SetConnMaxLifetime(30 * time.Minute)
	}
	return db, nil
}

// AutoMigrate creates one table per record collection.
func AutoMigrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&domain.BMIReading{},
		&domain.WorkoutEntry{},
		&domain.MeditationEntry{},
		&domain.ChatTurn{},
		&domain.AssessmentResult{},
		&domain.HealthReport{},
		&domain.HealthSnapshot{},
	)
}

func isMemoryDSN(path string) bool {
	return path == ":memory:" || (len(path) > 5 && path[:5] == "file:")
}

// SQLBackend stores records in GORM tables named after their collection.
// IDs are random UUIDs.
type SQLBackend struct {
	db *gorm.DB
}

// NewSQLBackend wraps an opened and migrated *gorm.DB.
func NewSQLBackend(db *gorm.DB) *SQLBackend { return &SQLBackend{db: db} }

func (b *SQLBackend) Name() string { return "sqlite" }

func (b *SQLBackend) NewID() domain.ID { return domain.ID(uuid.NewString()) }

func (b *SQLBackend) Insert(ctx context.Context, rec domain.Record) error {
	return b.db.WithContext(ctx).Create(rec).Error
}

func (b *SQLBackend) FindRecent(ctx context.Context, collection string, limit int, out any) error {
	q := b.db.WithContext(ctx).Table(collection).Order("timestamp DESC")
	if limit > 0 {
		q = q.Limit(limit)
	}
	return q.Find(out).Error
}

func (b *SQLBackend) FindByID(ctx context.Context, collection string, id domain.ID, out any) error {
	err := b.db.WithContext(ctx).Table(collection).Where("id = ?", string(id)).Take(out).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrNotFound
	}
	return err
}

func (b *SQLBackend) Ping(ctx context.Context) error {
	sqlDB, err := b.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.PingContext(ctx)
}

func (b *SQLBackend) Close(context.Context) error {
	sqlDB, err := b.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}
