// internal/storage/factory.go
package storage

import (
	"fmt"
	"log/slog"

	"github.com/rs/zerolog"

	"github.com/tarkov-tools/raidmap/internal/config"
	"github.com/tarkov-tools/raidmap/internal/database"
	filestorage "github.com/tarkov-tools/raidmap/internal/storage/file"
	sqlitestorage "github.com/tarkov-tools/raidmap/internal/storage/sqlite"
)

// NewBackend creates a storage backend based on configuration.
// coordsFile is the text file path used by the file backend.
func NewBackend(cfg config.StorageConfig, coordsFile string, logger *slog.Logger, dbLogger zerolog.Logger) (Backend, error) {
	switch cfg.Type {
	case "", "file":
		return filestorage.NewBackend(coordsFile, logger), nil
	case "sqlite":
		manager := database.NewManager(cfg.SQLitePath, dbLogger)
		return sqlitestorage.NewBackend(manager, logger), nil
	default:
		return nil, fmt.Errorf("unknown storage type: %s", cfg.Type)
	}
}
