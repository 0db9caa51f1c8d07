// Package database manages the SQLite connection used by the optional
// database-backed position store.
package database

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"

	"github.com/glebarez/sqlite"
	"github.com/rs/zerolog"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// Manager handles the database connection lifecycle.
type Manager struct {
	DB      *gorm.DB
	SqlDB   *sql.DB
	IsValid bool
	Path    string
	Logger  zerolog.Logger
}

// NewManager creates a new database manager for the given SQLite file path.
// An empty path selects a shared in-memory database.
func NewManager(path string, log zerolog.Logger) *Manager {
	return &Manager{
		IsValid: false,
		Path:    path,
		Logger:  log,
	}
}

// Connect opens the SQLite database and validates the connection.
func (m *Manager) Connect() error {
	var err error

	m.DB, err = m.getSqliteDB(m.Path)
	if err != nil || m.DB == nil {
		m.IsValid = false
		return fmt.Errorf("failed to open SQLite DB: %s", err)
	}

	// test connection
	m.SqlDB, err = m.DB.DB()
	if err != nil {
		m.IsValid = false
		return fmt.Errorf("failed to access sql interface: %s", err)
	}

	if err = m.SqlDB.Ping(); err != nil {
		m.IsValid = false
		return fmt.Errorf("failed to validate connection: %s", err)
	}

	m.Logger.Info().Msg("Connected to database")
	m.IsValid = true
	return nil
}

// Close closes the underlying connection.
func (m *Manager) Close() error {
	m.IsValid = false
	if m.SqlDB == nil {
		return nil
	}
	return m.SqlDB.Close()
}

// getSqliteDB returns a connection to a SQLite database.
// If path is empty, uses an in-memory database.
func (m *Manager) getSqliteDB(path string) (*gorm.DB, error) {
	var db *gorm.DB
	var err error

	cfg := &gorm.Config{
		PrepareStmt:            true,
		SkipDefaultTransaction: true,
		CreateBatchSize:        2000,
		Logger:                 logger.Default.LogMode(logger.Silent),
	}

	if path != "" {
		if dir := filepath.Dir(path); dir != "." {
			if err := os.MkdirAll(dir, 0o755); err != nil {
				return nil, fmt.Errorf("error creating DB directory: %s", err)
			}
		}
		db, err = gorm.Open(sqlite.Open(path), cfg)
		if err != nil {
			return nil, err
		}
		m.Logger.Info().Str("path", path).Msg("Using local SQLite DB")
	} else {
		db, err = gorm.Open(sqlite.Open("file::memory:?cache=shared"), cfg)
		if err != nil {
			return nil, err
		}
		m.Logger.Info().Msg("Using in-memory SQLite DB")
	}

	// set PRAGMAS; journal mode and synchronous stay at their defaults so
	// an append is durable once it returns
	pragmas := []string{
		"PRAGMA user_version = 1;",
		"PRAGMA cache_size = -32000;",
		"PRAGMA temp_store = MEMORY;",
	}

	for _, pragma := range pragmas {
		if err := db.Exec(pragma).Error; err != nil {
			return nil, fmt.Errorf("error setting PRAGMA: %s", err)
		}
	}

	return db, nil
}
