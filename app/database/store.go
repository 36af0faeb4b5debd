package database

import (
	"database/sql"
	"fmt"
	"log"
	"sync"

	_ "github.com/ncruces/go-sqlite3/driver"
	_ "github.com/ncruces/go-sqlite3/embed"
)

// Store owns the single connection to the embedded SQLite database. It is
// constructed at the composition root and passed down; there is no package
// level instance. The connection is opened lazily on first use, and the
// sync.Once guard ensures concurrent callers never race to open duplicates.
type Store struct {
	path string

	once sync.Once
	db   *sql.DB
	err  error
}

// NewStore creates a store for the database file at path. ":memory:" gives
// an in-memory database, used by tests.
func NewStore(path string) *Store {
	return &Store{path: path}
}

// DB returns the shared connection, opening it on first call.
func (s *Store) DB() (*sql.DB, error) {
	s.once.Do(func() {
		db, err := sql.Open("sqlite3", s.path)
		if err != nil {
			s.err = fmt.Errorf("failed to open database %s: %w", s.path, err)
			return
		}

		// Single shared connection; all callers queue on it.
		db.SetMaxOpenConns(1)

		if _, err := db.Exec("PRAGMA foreign_keys = ON"); err != nil {
			db.Close()
			s.err = fmt.Errorf("failed to enable foreign keys: %w", err)
			return
		}

		if err := db.Ping(); err != nil {
			db.Close()
			s.err = fmt.Errorf("database connection failed: %w", err)
			return
		}

		log.Printf("Database opened at %s", s.path)
		s.db = db
	})
	return s.db, s.err
}

// Close tears down the connection. Called once on application shutdown.
func (s *Store) Close() error {
	if s.db == nil {
		return nil
	}
	return s.db.Close()
}
