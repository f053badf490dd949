// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

// Package orm opens the GORM session used by the student and course
// collections. It shares the PostgreSQL database with the pgx pool but keeps
// its own connections.
package orm

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

const (
	pingTimeout  = 2 * time.Second
	maxOpenConns = 10
)

// Connect opens a GORM handle over PostgreSQL and verifies connectivity.
func Connect(ctx context.Context, dsn string, log *slog.Logger) (*gorm.DB, error) {
	if dsn == "" {
		return nil, errors.New("orm: postgres dsn is required")
	}
	return Open(ctx, postgres.Open(dsn), log)
}

// Open opens a GORM handle over any dialector with the shared settings.
//
// TranslateError is enabled so constraint failures surface as
// gorm.ErrDuplicatedKey and friends rather than driver-specific errors.
func Open(ctx context.Context, dialector gorm.Dialector, log *slog.Logger) (*gorm.DB, error) {
	db, err := gorm.Open(dialector, &gorm.Config{
		TranslateError: true,
		Logger:         logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		return nil, fmt.Errorf("orm: open gorm %s: %w", dialector.Name(), err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("orm: resolve sql db handle: %w", err)
	}
	sqlDB.SetMaxOpenConns(maxOpenConns)

	if err := Ping(ctx, db); err != nil {
		_ = sqlDB.Close()
		return nil, err
	}

	log.Info("gorm_connected", slog.String("dialect", db.Dialector.Name()))

	return db, nil
}

// Ping verifies the underlying connection pool.
func Ping(ctx context.Context, db *gorm.DB) error {
	sqlDB, err := db.DB()
	if err != nil {
		return fmt.Errorf("orm: resolve sql db handle: %w", err)
	}

	pingCtx, cancel := context.WithTimeout(ctx, pingTimeout)
	defer cancel()

	if err := sqlDB.PingContext(pingCtx); err != nil {
		return fmt.Errorf("orm: ping failed: %w", err)
	}
	return nil
}

// Close releases the connection pool.
func Close(db *gorm.DB) error {
	if db == nil {
		return nil
	}
	sqlDB, err := db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

// Checker adapts a GORM handle to the health endpoint.
type Checker struct {
	DB *gorm.DB
}

// Name implements the health checker contract.
func (c Checker) Name() string { return "orm" }

// Check implements the health checker contract.
func (c Checker) Check(ctx context.Context) error { return Ping(ctx, c.DB) }
