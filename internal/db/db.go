package db

import (
	"context"
	"database/sql"
	"embed"
	"errors"
	"fmt"
	"strings"

	_ "github.com/mattn/go-sqlite3"
	_ "modernc.org/sqlite"
)

const (
	// DriverCGO is the mattn/go-sqlite3 driver name.
	DriverCGO = "sqlite3"
	// DriverPure is the modernc.org/sqlite driver name (no cgo).
	DriverPure = "sqlite"

	// DefaultPath is used when no path is configured.
	DefaultPath = "meubanco.db"
)

//go:embed schema/*.sql
var schemaFS embed.FS

// Open opens (or creates) a local SQLite database file with the given driver.
// The returned handle is limited to a single connection: it is the one owned
// connection of the process and must be closed by the caller.
// The schema is not created here; see EnsureSchema.
func Open(driver, path string) (*sql.DB, error) {
	if driver == "" {
		driver = DriverCGO
	}
	if driver != DriverCGO && driver != DriverPure {
		return nil, fmt.Errorf("unsupported sqlite driver %q", driver)
	}
	if strings.TrimSpace(path) == "" {
		path = DefaultPath
	}
	d, err := sql.Open(driver, path)
	if err != nil {
		return nil, fmt.Errorf("open sqlite db: %w", err)
	}
	d.SetMaxOpenConns(1)
	if err := d.Ping(); err != nil {
		_ = d.Close()
		return nil, fmt.Errorf("ping sqlite db: %w", err)
	}
	// journal_mode may not be supported in some contexts (e.g., in-memory). Ignore errors.
	_, _ = d.Exec(`PRAGMA journal_mode=WAL`)
	if _, err := d.Exec(`PRAGMA busy_timeout=5000`); err != nil {
		_ = d.Close()
		return nil, err
	}
	return d, nil
}

// EnsureSchema creates the usuarios table if it does not exist yet.
// Safe to call any number of times.
func EnsureSchema(ctx context.Context, d *sql.DB) error {
	if d == nil {
		return errors.New("nil db")
	}
	text, err := schemaFS.ReadFile("schema/usuarios.sql")
	if err != nil {
		return err
	}
	if _, err := d.ExecContext(ctx, string(text)); err != nil {
		return fmt.Errorf("create usuarios table: %w", err)
	}
	return nil
}
