// Package filestorage implements the position history backend on top of a
// plain text file, one record per line.
package filestorage

import (
	"bufio"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/tarkov-tools/raidmap/pkg/core"
)

const (
	header          = "# Tarkov coordinates file - Format: X, Y, Z, Timestamp\n"
	timestampLayout = "2006-01-02 15:04:05"

	// importedTimestamp marks records migrated from older file layouts
	// that carried no timestamp of their own.
	importedTimestamp = "Imported data"
)

// Backend stores positions in a human-readable text file. Every write
// reopens the file in append mode, so external edits between operations are
// picked up and a crashed process never leaves a dangling handle.
type Backend struct {
	path   string
	logger *slog.Logger
	now    func() time.Time
}

// NewBackend creates a file backend writing to path.
func NewBackend(path string, logger *slog.Logger) *Backend {
	return &Backend{
		path:   path,
		logger: logger,
		now:    time.Now,
	}
}

// Init creates the file with its header line if it does not exist yet,
// including any missing parent directories. Failures are logged and
// swallowed so a read-only location still allows in-session use.
func (b *Backend) Init() error {
	if _, err := os.Stat(b.path); err == nil {
		return nil
	}

	if dir := filepath.Dir(b.path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			b.logger.Error("Failed to create coordinates directory",
				"dir", dir, "error", err)
			return nil
		}
	}

	if err := os.WriteFile(b.path, []byte(header), 0o644); err != nil {
		b.logger.Error("Failed to create coordinates file",
			"path", b.path, "error", err)
		return nil
	}

	b.logger.Info("Created coordinates file", "path", b.path)
	return nil
}

// Append writes the position with the current timestamp. Write failures are
// logged, not returned.
func (b *Backend) Append(pos core.Position3D) {
	f, err := os.OpenFile(b.path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		b.logger.Error("Failed to open coordinates file for append",
			"path", b.path, "error", err)
		return
	}
	defer f.Close()

	line := fmt.Sprintf("%v, %v, %v, %s\n",
		pos.X, pos.Y, pos.Z, b.now().Format(timestampLayout))
	if _, err := f.WriteString(line); err != nil {
		b.logger.Error("Failed to append coordinates",
			"path", b.path, "error", err)
	}
}

// Latest returns the last parseable record in the file. Unparseable
// trailing lines are skipped so a torn write never hides older history.
func (b *Backend) Latest() (core.Position3D, bool) {
	records := b.All()
	if len(records) == 0 {
		return core.Position3D{}, false
	}
	return records[len(records)-1].Position, true
}

// All returns every parseable record in file order. A missing file is an
// empty history, not an error.
func (b *Backend) All() []core.PositionRecord {
	f, err := os.Open(b.path)
	if err != nil {
		if !os.IsNotExist(err) {
			b.logger.Error("Failed to open coordinates file",
				"path", b.path, "error", err)
		}
		return nil
	}
	defer f.Close()

	var records []core.PositionRecord
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		rec, ok := parseLine(scanner.Text())
		if !ok {
			continue
		}
		records = append(records, rec)
	}
	if err := scanner.Err(); err != nil {
		b.logger.Error("Failed reading coordinates file",
			"path", b.path, "error", err)
	}
	return records
}

// Close is a no-op; the file is never held open between operations.
func (b *Backend) Close() error { return nil }

// parseLine converts one file line into a record. Comment and blank lines
// are skipped. Older file layouts are tolerated:
//
//	x, y, z, timestamp   current layout
//	x, y, z              timestamped as imported
//	x, z                 height unknown, timestamped as imported
func parseLine(line string) (core.PositionRecord, bool) {
	line = strings.TrimSpace(line)
	if line == "" || strings.HasPrefix(line, "#") {
		return core.PositionRecord{}, false
	}

	fields := strings.Split(line, ", ")
	for i := range fields {
		fields[i] = strings.TrimSpace(fields[i])
	}

	switch {
	case len(fields) >= 4:
		pos, ok := parseTriple(fields[0], fields[1], fields[2])
		if !ok {
			return core.PositionRecord{}, false
		}
		return core.PositionRecord{
			Position:  pos,
			Timestamp: strings.Join(fields[3:], ", "),
		}, true
	case len(fields) == 3:
		pos, ok := parseTriple(fields[0], fields[1], fields[2])
		if !ok {
			return core.PositionRecord{}, false
		}
		return core.PositionRecord{Position: pos, Timestamp: importedTimestamp}, true
	case len(fields) == 2:
		pos, ok := parseTriple(fields[0], "0", fields[1])
		if !ok {
			return core.PositionRecord{}, false
		}
		return core.PositionRecord{Position: pos, Timestamp: importedTimestamp}, true
	default:
		return core.PositionRecord{}, false
	}
}

func parseTriple(xs, ys, zs string) (core.Position3D, bool) {
	x, err := strconv.ParseFloat(xs, 64)
	if err != nil {
		return core.Position3D{}, false
	}
	y, err := strconv.ParseFloat(ys, 64)
	if err != nil {
		return core.Position3D{}, false
	}
	z, err := strconv.ParseFloat(zs, 64)
	if err != nil {
		return core.Position3D{}, false
	}
	return core.Position3D{X: x, Y: y, Z: z}, true
}
