// Package mapfile locates the SVG map image for a map name inside the
// configured maps directory.
package mapfile

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/tarkov-tools/raidmap/internal/dataset"
	"github.com/tarkov-tools/raidmap/internal/util"
)

// aliases maps in-game display names to the filenames the community map
// packs actually ship.
var aliases = map[string]string{
	"The Lab":           "Labs",
	"Lab":               "Labs",
	"Streets of Tarkov": "StreetsOfTarkov",
}

// Canonical returns the filename-friendly form of a map name.
func Canonical(name string) string {
	if alias, ok := aliases[name]; ok {
		return alias
	}
	return name
}

// NotFoundError reports that no map image could be located for a map.
type NotFoundError struct {
	Map string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("no map file found for: %s", e.Map)
}

// Locator finds map images by name using progressively looser matching.
type Locator struct {
	mapsDir string
	ds      *dataset.Store
	logger  *slog.Logger
}

// NewLocator creates a locator over mapsDir, consulting ds for
// metadata-declared filenames.
func NewLocator(mapsDir string, ds *dataset.Store, logger *slog.Logger) *Locator {
	return &Locator{mapsDir: mapsDir, ds: ds, logger: logger}
}

// Locate returns the path of the map image for name. Matching rules are
// tried in order:
//
//  1. exact "<canonical>.svg"
//  2. case-insensitive filename match on the canonical or original name
//  3. exact match with spaces stripped from the name
//  4. the filename declared in the map metadata bundle
//  5. substring match either direction against .svg files, on the
//     canonical or the original name
//
// The final rule is fuzzy and logged when it fires.
func (l *Locator) Locate(name string) (string, error) {
	search := Canonical(name)

	exact := filepath.Join(l.mapsDir, search+".svg")
	if _, err := os.Stat(exact); err == nil {
		return exact, nil
	}

	entries, err := os.ReadDir(l.mapsDir)
	if err != nil {
		l.logger.Error("Failed to read maps directory",
			"dir", l.mapsDir, "error", err)
		return "", &NotFoundError{Map: name}
	}

	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		base := util.BaseName(e.Name())
		if strings.EqualFold(base, search) || strings.EqualFold(base, name) {
			return filepath.Join(l.mapsDir, e.Name()), nil
		}
	}

	stripped := filepath.Join(l.mapsDir, util.StripSpaces(search)+".svg")
	if _, err := os.Stat(stripped); err == nil {
		return stripped, nil
	}

	if info, ok := l.ds.MapInfo(name); ok && info.SVG.File != "" {
		declared := filepath.Join(l.mapsDir, info.SVG.File)
		if _, err := os.Stat(declared); err == nil {
			return declared, nil
		}
	}

	lowerCanonical := strings.ToLower(search)
	lowerOriginal := strings.ToLower(name)
	for _, e := range entries {
		if e.IsDir() || !strings.EqualFold(filepath.Ext(e.Name()), ".svg") {
			continue
		}
		lowerBase := strings.ToLower(util.BaseName(e.Name()))
		if overlaps(lowerBase, lowerCanonical) || overlaps(lowerBase, lowerOriginal) {
			l.logger.Info("Found similar map file",
				"map", name, "file", e.Name())
			return filepath.Join(l.mapsDir, e.Name()), nil
		}
	}

	return "", &NotFoundError{Map: name}
}

// overlaps reports whether either string contains the other.
func overlaps(a, b string) bool {
	return strings.Contains(a, b) || strings.Contains(b, a)
}

// AvailableMaps lists the base names of all .svg files in the maps
// directory, sorted.
func (l *Locator) AvailableMaps() []string {
	entries, err := os.ReadDir(l.mapsDir)
	if err != nil {
		l.logger.Error("Failed to read maps directory",
			"dir", l.mapsDir, "error", err)
		return nil
	}

	var names []string
	for _, e := range entries {
		if e.IsDir() || !strings.EqualFold(filepath.Ext(e.Name()), ".svg") {
			continue
		}
		names = append(names, util.BaseName(e.Name()))
	}
	sort.Strings(names)
	return names
}
