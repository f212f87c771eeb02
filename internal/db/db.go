// Package db provides helpers for opening the SQLite database and running
// migrations.
package db

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"

	_ "github.com/mattn/go-sqlite3" // sqlite3 driver
)

// Connect opens the SQLite database at path and verifies connectivity.
// Foreign keys are enabled and writers wait on the file lock instead of
// failing immediately with SQLITE_BUSY.
func Connect(ctx context.Context, path string) (*sql.DB, error) {
	dsn := fmt.Sprintf("file:%s?_foreign_keys=on&_busy_timeout=5000", path)

	sqlDB, err := sql.Open("sqlite3", dsn)
	if err != nil {
		return nil, fmt.Errorf("db open: %w", err)
	}

	// SQLite allows a single writer per file; one pooled connection keeps
	// every statement serialized on it.
	sqlDB.SetMaxOpenConns(1)

	if err := sqlDB.PingContext(ctx); err != nil {
		return nil, fmt.Errorf("db ping: %w", err)
	}

	slog.Info("database connected", "path", path)
	return sqlDB, nil
}

// Healthy returns nil when the database is reachable.
func Healthy(ctx context.Context, sqlDB *sql.DB) error {
	return sqlDB.PingContext(ctx)
}
