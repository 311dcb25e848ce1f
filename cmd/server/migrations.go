package main

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"time"

	"github.com/pressly/goose/v3"

	"github.com/jstrand/kanban-api/internal/config"
	"github.com/jstrand/kanban-api/internal/platform/postgres"
	"github.com/jstrand/kanban-api/internal/redact"
)

// runMigrations executes the given goose command (up, down, status)
// against the configured database. Migrations run over a dedicated
// short-lived connection, not the managed application session.
func runMigrations(cfg *config.Config, command string) error {
	switch command {
	case "up", "down", "status":
	default:
		return fmt.Errorf("unknown migration command %q (want up, down, or status)", command)
	}
	if cfg.Database.URL == "" {
		return fmt.Errorf("database URL is empty: check your configuration")
	}

	migrationLogger := slog.Default().With("component", "migrations", "command", command)
	migrationLogger.Info("Starting migration operation",
		"url", redact.URL(cfg.Database.URL))

	db, err := sql.Open("pgx", cfg.Database.URL)
	if err != nil {
		return fmt.Errorf("failed to open database connection: %w", err)
	}
	defer func() {
		if err := db.Close(); err != nil {
			migrationLogger.Error("Error closing migration connection", "error", err)
		}
	}()

	db.SetMaxOpenConns(2)
	db.SetConnMaxLifetime(5 * time.Minute)

	pingCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := db.PingContext(pingCtx); err != nil {
		return fmt.Errorf("database ping failed: %w", err)
	}

	goose.SetBaseFS(postgres.MigrationsFS)
	if err := goose.SetDialect("postgres"); err != nil {
		return fmt.Errorf("failed to set goose dialect: %w", err)
	}

	start := time.Now()
	switch command {
	case "up":
		err = goose.Up(db, postgres.MigrationsDir)
	case "down":
		err = goose.Down(db, postgres.MigrationsDir)
	case "status":
		err = goose.Status(db, postgres.MigrationsDir)
	}
	if err != nil {
		return fmt.Errorf("goose %s failed: %w", command, err)
	}

	migrationLogger.Info("Migration operation completed",
		"duration_ms", time.Since(start).Milliseconds())
	return nil
}
