// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

// Command api is the entry point for the library HTTP API server.
//
// # Startup Sequence
//
//  1. Initialize structured logger.
//  2. Load configuration from environment variables.
//  3. Connect to PostgreSQL (pgxpool and GORM), SQLite and Redis.
//  4. Run database migrations (idempotent).
//  5. Wire stores, services and HTTP handlers.
//  6. Start HTTP server with graceful shutdown.
//
// No business logic lives here. All wiring is explicit constructor injection.
package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/arokeji/library-api/internal/api"
	"github.com/arokeji/library-api/internal/core/author"
	"github.com/arokeji/library-api/internal/core/book"
	"github.com/arokeji/library-api/internal/core/company"
	"github.com/arokeji/library-api/internal/core/course"
	"github.com/arokeji/library-api/internal/core/student"
	"github.com/arokeji/library-api/internal/platform/collection"
	"github.com/arokeji/library-api/internal/platform/config"
	"github.com/arokeji/library-api/internal/platform/constants"
	"github.com/arokeji/library-api/internal/platform/migration"
	"github.com/arokeji/library-api/internal/platform/orm"
	pgstore "github.com/arokeji/library-api/internal/platform/postgres"
	redisstore "github.com/arokeji/library-api/internal/platform/redis"
	"github.com/arokeji/library-api/internal/platform/sec"
	"github.com/arokeji/library-api/internal/platform/sqlite"
)

func main() {
	// ── 1. Logger ──────────────────────────────────────────────────────────
	// Initialize first so that subsequent startup errors are structured JSON.
	log := newLogger(slog.LevelInfo, false)
	slog.SetDefault(log)

	log.Info("service_initializing")

	// ── 2. Configuration ──────────────────────────────────────────────────
	cfg, err := config.Load()
	must(log, err, "load configuration")

	// Debug output is never honored in production. Development builds also
	// record the source location of every log line.
	switch {
	case cfg.Debug && cfg.IsProduction():
		log.Warn("debug_logging_ignored_in_production")
	case cfg.Debug:
		log = newLogger(slog.LevelDebug, cfg.IsDevelopment())
		slog.SetDefault(log)
		log.Debug("debug_logging_enabled")
	}

	log.Info("configuration_loaded",
		slog.String("environment", cfg.Environment),
		slog.String("port", cfg.ServerPort),
	)

	// Root context for startup. Use a 30s deadline so misconfiguration is
	// caught quickly rather than hanging indefinitely.
	startupCtx, startupCancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer startupCancel()

	// ── 3. Storage ────────────────────────────────────────────────────────
	pool, err := pgstore.NewPool(startupCtx, cfg.DatabaseURL, log)
	must(log, err, "connect to postgres")
	defer func() {
		log.Info("closing_postgres_pool")
		pool.Close()
	}()

	gormDB, err := orm.Connect(startupCtx, cfg.DatabaseURL, log)
	must(log, err, "connect gorm")
	defer func() {
		if cerr := orm.Close(gormDB); cerr != nil {
			log.Error("gorm_close_error", slog.Any("error", cerr))
		}
	}()

	sqliteDB, err := sqlite.Open(startupCtx, cfg.SQLitePath, log)
	must(log, err, "open sqlite")
	defer func() {
		if cerr := sqliteDB.Close(); cerr != nil {
			log.Error("sqlite_close_error", slog.Any("error", cerr))
		}
	}()

	rdb, err := redisstore.NewClient(startupCtx, cfg.RedisURL, log)
	must(log, err, "connect to redis")
	defer func() {
		log.Info("closing_redis_client")
		if cerr := rdb.Close(); cerr != nil {
			log.Error("redis_close_error", slog.Any("error", cerr))
		}
	}()

	// ── 4. Migrations ─────────────────────────────────────────────────────
	must(log, migration.RunUp(cfg.DatabaseURL, filepath.Join(cfg.MigrationPath, "postgres"), log), "run postgres migrations")
	must(log, migration.RunUp(cfg.SQLitePath, filepath.Join(cfg.MigrationPath, "sqlite"), log), "run sqlite migrations")

	// ── 5. Security ───────────────────────────────────────────────────────
	tokens, err := sec.NewTokenService(cfg.JWTSecret, constants.AuthIssuer, cfg.JWTTTL)
	must(log, err, "initialize token service")
	policy := sec.NewAccessPolicy(cfg.AdminAccount)

	// ── 6. Resource Wiring ────────────────────────────────────────────────
	cache := redisstore.NewJSONCache(rdb, constants.RedisPrefixResource, cfg.CacheTTL)

	bookStore := book.NewPostgresStore(pool)
	cachedBooks := collection.NewCachedStore(bookStore, cache, "book")

	authorStore := author.NewPostgresStore(pool)
	authorService, err := author.NewService(
		collection.NewCachedStore(authorStore, cache, "author"), authorStore, tokens, policy,
		author.DeleteHook(book.EvictOnAuthorDelete(bookStore, cachedBooks)))
	must(log, err, "initialize author service")

	bookService := book.NewService(cachedBooks, bookStore, policy)

	companyService := company.NewService(company.NewSQLiteStore(sqliteDB), policy)
	courseService := course.NewService(course.NewGormStore(gormDB), policy)
	studentService := student.NewService(student.NewGormStore(gormDB), policy)

	liveness, readiness := api.NewHealthHandlers([]api.Checker{
		pgstore.Checker{Pool: pool},
		orm.Checker{DB: gormDB},
		sqlite.Checker{DB: sqliteDB},
		redisstore.Checker{Client: rdb},
	}, log)

	// ── 7. HTTP Server ────────────────────────────────────────────────────
	serverCtx, serverCancel := context.WithCancel(context.Background())
	defer serverCancel()

	server := api.NewServer(serverCtx, api.Options{
		Port:           cfg.ServerPort,
		Origins:        cfg.AllowedOrigins(),
		RateLimitRPS:   constants.DefaultRateLimitRPS,
		RateLimitBurst: constants.DefaultRateLimitBurst,
	}, log, tokens, api.Handlers{
		Liveness:  liveness,
		Readiness: readiness,
		Resources: map[string]api.RouteRegistrar{
			"/author":  author.NewHandler(authorService),
			"/book":    book.NewHandler(bookService),
			"/company": company.NewHandler(companyService),
			"/course":  course.NewHandler(courseService),
			"/student": student.NewHandler(studentService),
		},
	})

	// ── 8. Graceful Shutdown ──────────────────────────────────────────────
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGTERM, syscall.SIGINT)

	serverErr := make(chan error, 1)
	go func() {
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
	}()

	// Block until OS signal or server error.
	select {
	case sig := <-quit:
		log.Info("shutdown_signal_received", slog.String("signal", sig.String()))
	case err := <-serverErr:
		log.Error("server_startup_error", slog.Any("error", err))
	}

	// Give in-flight requests enough time to complete.
	shutdownTimeout := constants.ShutdownTimeout
	log.Info("shutting_down_server", slog.Duration("timeout", shutdownTimeout))

	if err := server.Shutdown(shutdownTimeout); err != nil {
		log.Error("shutdown_error", slog.Any("error", err))
		return
	}

	log.Info("server_stopped_cleanly")
}

func newLogger(level slog.Level, addSource bool) *slog.Logger {
	handler := slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: level, AddSource: addSource})
	return slog.New(handler).With(slog.String(constants.FieldApp, constants.AppName))
}

// must logs a structured fatal error and terminates the process if err is non-nil.
//
// It is intentionally limited to startup wiring. After startup, all errors
// must be returned and handled explicitly (never panic).
func must(log *slog.Logger, err error, context string) {
	if err != nil {
		log.Error("startup_failure",
			slog.String("context", context),
			slog.Any("error", err),
		)
		os.Exit(1)
	}
}
