// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

// Command seed resets the student and course tables to a small demo data set.
//
// It reads DATABASE_URL (and optionally MIGRATION_PATH), applies pending
// PostgreSQL migrations and then replaces all students and courses.
package main

import (
	"context"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/caarlos0/env/v11"

	"github.com/arokeji/library-api/internal/core/course"
	"github.com/arokeji/library-api/internal/platform/constants"
	"github.com/arokeji/library-api/internal/platform/migration"
	"github.com/arokeji/library-api/internal/platform/orm"
)

type seedConfig struct {
	DatabaseURL   string `env:"DATABASE_URL,required"`
	MigrationPath string `env:"MIGRATION_PATH" envDefault:"./data/migrations"`
}

func main() {
	log := slog.New(slog.NewJSONHandler(os.Stdout, nil)).With(slog.String(constants.FieldApp, constants.AppName+"-seed"))

	var cfg seedConfig
	if err := env.Parse(&cfg); err != nil {
		fail(log, err, "load configuration")
	}

	ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
	defer cancel()

	if err := migration.RunUp(cfg.DatabaseURL, filepath.Join(cfg.MigrationPath, "postgres"), log); err != nil {
		fail(log, err, "run migrations")
	}

	db, err := orm.Connect(ctx, cfg.DatabaseURL, log)
	if err != nil {
		fail(log, err, "connect gorm")
	}
	defer func() { _ = orm.Close(db) }()

	seeded, err := course.Seed(ctx, db)
	if err != nil {
		fail(log, err, "seed courses")
	}

	log.Info("seed_completed",
		slog.Int("course_id", seeded.ID),
		slog.Int("students", len(seeded.Students)),
	)
}

func fail(log *slog.Logger, err error, step string) {
	log.Error("seed_failure", slog.String("context", step), slog.Any("error", err))
	os.Exit(1)
}
