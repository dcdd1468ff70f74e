package database

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"
	_ "github.com/mattn/go-sqlite3"
)

// Driver names registered by the imported drivers
const (
	DriverSQLite   = "sqlite3"
	DriverPostgres = "postgres"
)

// DriverFor picks the SQL driver for a database URL. Postgres URLs go to
// lib/pq, anything else is treated as a SQLite DSN.
func DriverFor(url string) string {
	if strings.HasPrefix(url, "postgres://") || strings.HasPrefix(url, "postgresql://") {
		return DriverPostgres
	}
	return DriverSQLite
}

// Connect opens the session database and initializes the schema
func Connect(url string) (*sqlx.DB, error) {
	driver := DriverFor(url)

	if driver == DriverSQLite {
		if dir := sqliteDir(url); dir != "" {
			if err := os.MkdirAll(dir, 0755); err != nil {
				return nil, fmt.Errorf("failed to create data directory: %w", err)
			}
		}
	}

	db, err := sqlx.Connect(driver, url)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	if driver == DriverSQLite {
		// SQLite doesn't support multiple writers, and an in-memory database
		// lives only as long as its connection
		db.SetMaxOpenConns(1)
		db.SetMaxIdleConns(1)
		db.SetConnMaxLifetime(0)
	}

	if err := initializeSchema(db); err != nil {
		db.Close()
		return nil, err
	}
	return db, nil
}

// sqliteDir returns the directory of a file-backed SQLite DSN, or "" for
// in-memory databases
func sqliteDir(dsn string) string {
	path := strings.TrimPrefix(dsn, "file:")
	if i := strings.IndexByte(path, '?'); i >= 0 {
		path = path[:i]
	}
	if path == "" || path == ":memory:" || strings.Contains(dsn, "mode=memory") {
		return ""
	}
	dir := filepath.Dir(path)
	if dir == "." {
		return ""
	}
	return dir
}

// initializeSchema creates necessary tables if they don't exist
func initializeSchema(db *sqlx.DB) error {
	_, err := db.Exec(`
		CREATE TABLE IF NOT EXISTS sessions (
			chat_id BIGINT PRIMARY KEY,
			state TEXT NOT NULL,
			updated_at TIMESTAMP NOT NULL
		)
	`)
	if err != nil {
		return fmt.Errorf("failed to create sessions table: %w", err)
	}

	_, err = db.Exec(`CREATE INDEX IF NOT EXISTS idx_sessions_updated_at ON sessions (updated_at)`)
	if err != nil {
		return fmt.Errorf("failed to create sessions index: %w", err)
	}

	return nil
}
