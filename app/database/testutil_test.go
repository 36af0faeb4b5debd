package database

import (
	"database/sql"
	"testing"
)

// openTestDB gives each test its own in-memory database with the full schema.
func openTestDB(t *testing.T) *sql.DB {
	t.Helper()

	store := NewStore(":memory:")
	db, err := store.DB()
	if err != nil {
		t.Fatalf("failed to open in-memory database: %v", err)
	}
	t.Cleanup(func() { store.Close() })

	if err := CreateSchema(db); err != nil {
		t.Fatalf("failed to create schema: %v", err)
	}
	return db
}
