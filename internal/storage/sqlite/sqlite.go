// Package sqlitestorage implements the position history backend on top of a
// SQLite database.
package sqlitestorage

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/tarkov-tools/raidmap/internal/database"
	"github.com/tarkov-tools/raidmap/pkg/core"
)

const timestampLayout = "2006-01-02 15:04:05"

// PositionRecord is the persisted row shape.
type PositionRecord struct {
	ID        uint `gorm:"primarykey"`
	X         float64
	Y         float64
	Z         float64
	Timestamp string
}

// Backend stores positions in a SQLite table via the shared database
// manager.
type Backend struct {
	manager *database.Manager
	logger  *slog.Logger
	now     func() time.Time
}

// NewBackend creates a SQLite backend using the given connection manager.
func NewBackend(manager *database.Manager, logger *slog.Logger) *Backend {
	return &Backend{
		manager: manager,
		logger:  logger,
		now:     time.Now,
	}
}

// Init connects to the database and migrates the schema.
func (b *Backend) Init() error {
	if err := b.manager.Connect(); err != nil {
		return fmt.Errorf("failed to connect to position database: %w", err)
	}
	if err := b.manager.DB.AutoMigrate(&PositionRecord{}); err != nil {
		return fmt.Errorf("failed to migrate position schema: %w", err)
	}
	return nil
}

// Append inserts the position with the current timestamp. Insert failures
// are logged, not returned.
func (b *Backend) Append(pos core.Position3D) {
	if !b.manager.IsValid {
		b.logger.Error("Position database not connected, dropping record",
			"position", pos.String())
		return
	}

	rec := PositionRecord{
		X:         pos.X,
		Y:         pos.Y,
		Z:         pos.Z,
		Timestamp: b.now().Format(timestampLayout),
	}
	if err := b.manager.DB.Create(&rec).Error; err != nil {
		b.logger.Error("Failed to insert position record", "error", err)
	}
}

// Latest returns the most recently inserted position.
func (b *Backend) Latest() (core.Position3D, bool) {
	if !b.manager.IsValid {
		return core.Position3D{}, false
	}

	var rec PositionRecord
	err := b.manager.DB.Order("id DESC").First(&rec).Error
	if err != nil {
		return core.Position3D{}, false
	}
	return core.Position3D{X: rec.X, Y: rec.Y, Z: rec.Z}, true
}

// All returns every stored record in insertion order.
func (b *Backend) All() []core.PositionRecord {
	if !b.manager.IsValid {
		return nil
	}

	var rows []PositionRecord
	if err := b.manager.DB.Order("id ASC").Find(&rows).Error; err != nil {
		b.logger.Error("Failed to read position records", "error", err)
		return nil
	}

	records := make([]core.PositionRecord, 0, len(rows))
	for _, r := range rows {
		records = append(records, core.PositionRecord{
			Position:  core.Position3D{X: r.X, Y: r.Y, Z: r.Z},
			Timestamp: r.Timestamp,
		})
	}
	return records
}

// Close closes the database connection.
func (b *Backend) Close() error {
	return b.manager.Close()
}
