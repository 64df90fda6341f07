package database

import (
	"database/sql"
	"fmt"
	"strings"

	"moxiedash/internal/config"
)

// DB wraps the database connection with dialect support
type DB struct {
	*sql.DB
	Dialect Dialect
}

// Initialize creates and configures the database connection using SQLite
func Initialize(dbPath string) (*DB, error) {
	dialect := NewSQLiteDialect()
	dialectConfig := DialectConfig{Path: dbPath}

	return open(dialect, dialectConfig)
}

// InitializeWithConfig creates and configures the database connection based on config
func InitializeWithConfig(cfg *config.Config) (*DB, error) {
	var dialect Dialect
	var dialectConfig DialectConfig

	switch strings.ToLower(cfg.DatabaseType) {
	case "postgres", "postgresql":
		dialect = NewPostgresDialect()
		dialectConfig = DialectConfig{URL: cfg.DatabaseURL}
	case "mysql":
		dialect = NewMySQLDialect()
		dialectConfig = DialectConfig{URL: cfg.DatabaseURL}
	case "sqlite", "sqlite3", "":
		dialect = NewSQLiteDialect()
		dialectConfig = DialectConfig{Path: cfg.DatabasePath}
	default:
		return nil, fmt.Errorf("unsupported database type: %s", cfg.DatabaseType)
	}

	return open(dialect, dialectConfig)
}

func open(dialect Dialect, dialectConfig DialectConfig) (*DB, error) {
	db, err := sql.Open(dialect.DriverName(), dialect.DSN(dialectConfig))
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	// Test the connection
	if err := db.Ping(); err != nil {
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	// Apply dialect-specific configuration
	if err := dialect.ConfigureConnection(db); err != nil {
		return nil, fmt.Errorf("failed to configure connection: %w", err)
	}

	wrapped := &DB{DB: db, Dialect: dialect}

	if err := wrapped.ensurePreferencesTable(); err != nil {
		return nil, err
	}

	return wrapped, nil
}

// Close closes the database connection
func (db *DB) Close() error {
	return db.DB.Close()
}

// Query executes a query with automatic placeholder rewriting
func (db *DB) Query(query string, args ...interface{}) (*sql.Rows, error) {
	return db.DB.Query(db.Dialect.RewriteQuery(query), args...)
}

// QueryRow executes a query that returns a single row with automatic placeholder rewriting
func (db *DB) QueryRow(query string, args ...interface{}) *sql.Row {
	return db.DB.QueryRow(db.Dialect.RewriteQuery(query), args...)
}

// Exec executes a query that doesn't return rows with automatic placeholder rewriting
func (db *DB) Exec(query string, args ...interface{}) (sql.Result, error) {
	return db.DB.Exec(db.Dialect.RewriteQuery(query), args...)
}

// ensurePreferencesTable creates the key/value preferences table if needed
func (db *DB) ensurePreferencesTable() error {
	if _, err := db.DB.Exec(db.Dialect.CreatePreferencesTableQuery()); err != nil {
		return fmt.Errorf("failed to create preferences table: %w", err)
	}
	return nil
}

// GetPreference retrieves a raw preference document by key.
// Returns (nil, false, nil) when the key has never been written.
func (db *DB) GetPreference(key string) ([]byte, bool, error) {
	var value string
	query := `SELECT value FROM preferences WHERE key = ?`
	err := db.QueryRow(query, key).Scan(&value)
	if err == sql.ErrNoRows {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("failed to get preference %q: %w", key, err)
	}
	return []byte(value), true, nil
}

// SetPreference stores a raw preference document under key, replacing any previous value
func (db *DB) SetPreference(key string, value []byte) error {
	query := db.Dialect.RewriteQuery(db.Dialect.UpsertPreferenceQuery())
	if _, err := db.DB.Exec(query, key, string(value)); err != nil {
		return fmt.Errorf("failed to set preference %q: %w", key, err)
	}
	return nil
}

// DeletePreference removes a preference document; deleting a missing key is not an error
func (db *DB) DeletePreference(key string) error {
	query := `DELETE FROM preferences WHERE key = ?`
	if _, err := db.Exec(query, key); err != nil {
		return fmt.Errorf("failed to delete preference %q: %w", key, err)
	}
	return nil
}
