package testutil

import (
	"context"
	"database/sql"
	"testing"

	"peopleRegistry/internal/db"
)

// OpenInMemoryDB opens an in-memory SQLite database with the default driver
// and creates the usuarios table. The DB is closed via t.Cleanup.
func OpenInMemoryDB(t *testing.T, name string) *sql.DB {
	t.Helper()
	return OpenInMemoryDBWithDriver(t, db.DriverCGO, name)
}

// OpenInMemoryDBWithDriver is OpenInMemoryDB for an explicit driver.
func OpenInMemoryDBWithDriver(t *testing.T, driver, name string) *sql.DB {
	t.Helper()
	// Shared cache keeps the database alive as long as the handle is open.
	d, err := db.Open(driver, "file:"+name+"?mode=memory&cache=shared")
	if err != nil {
		t.Fatalf("open test db: %v", err)
	}
	t.Cleanup(func() { _ = d.Close() })
	if err := db.EnsureSchema(context.Background(), d); err != nil {
		t.Fatalf("ensure schema: %v", err)
	}
	return d
}
