package sqlitestorage

import (
	"log/slog"
	"path/filepath"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tarkov-tools/raidmap/internal/database"
	"github.com/tarkov-tools/raidmap/pkg/core"
)

func newTestBackend(t *testing.T) *Backend {
	t.Helper()

	manager := database.NewManager(filepath.Join(t.TempDir(), "test.db"), zerolog.Nop())
	b := NewBackend(manager, slog.Default())
	b.now = func() time.Time {
		return time.Date(2024, 3, 16, 2, 20, 0, 0, time.UTC)
	}
	require.NoError(t, b.Init())
	t.Cleanup(func() { _ = b.Close() })
	return b
}

func TestAppendAndLatest(t *testing.T) {
	b := newTestBackend(t)

	b.Append(core.Position3D{X: -9.1, Y: 33.6, Z: 166.4})
	b.Append(core.Position3D{X: 1.5, Y: 2.5, Z: 3.5})

	pos, ok := b.Latest()
	require.True(t, ok)
	assert.Equal(t, core.Position3D{X: 1.5, Y: 2.5, Z: 3.5}, pos)
}

func TestAll_InsertionOrderWithTimestamps(t *testing.T) {
	b := newTestBackend(t)

	b.Append(core.Position3D{X: 1, Y: 2, Z: 3})
	b.Append(core.Position3D{X: 4, Y: 5, Z: 6})

	records := b.All()
	require.Len(t, records, 2)
	assert.Equal(t, core.Position3D{X: 1, Y: 2, Z: 3}, records[0].Position)
	assert.Equal(t, core.Position3D{X: 4, Y: 5, Z: 6}, records[1].Position)
	assert.Equal(t, "2024-03-16 02:20:00", records[0].Timestamp)
}

func TestLatest_EmptyDatabase(t *testing.T) {
	b := newTestBackend(t)

	_, ok := b.Latest()
	assert.False(t, ok)
	assert.Empty(t, b.All())
}

func TestAppend_DisconnectedManagerDropsRecord(t *testing.T) {
	manager := database.NewManager(filepath.Join(t.TempDir(), "test.db"), zerolog.Nop())
	b := NewBackend(manager, slog.Default())

	// never connected, must not panic
	b.Append(core.Position3D{X: 1, Y: 2, Z: 3})

	_, ok := b.Latest()
	assert.False(t, ok)
}
