// Package dataset loads the optional community map metadata bundle.
//
// The bundle is a directory containing maps.json (or Data/maps.json) keyed
// by lowercase map identifier. Everything in this package degrades
// gracefully: a missing or broken bundle yields empty lookups, never
// errors, so the rest of the application works without it.
package dataset

import (
	"encoding/json"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/tarkov-tools/raidmap/pkg/core"
)

// Store provides lookups over the map metadata bundle. The bundle is read
// once on first use and cached, including the not-found case.
type Store struct {
	dir    string
	logger *slog.Logger

	mu     sync.Mutex
	maps   map[string]core.MapInfo
	loaded bool
}

// NewStore creates a store reading from dir. An empty dir means no bundle
// is configured.
func NewStore(dir string, logger *slog.Logger) *Store {
	return &Store{dir: dir, logger: logger}
}

// Available reports whether a bundle directory is configured and exists.
func (s *Store) Available() bool {
	if s.dir == "" {
		return false
	}
	info, err := os.Stat(s.dir)
	return err == nil && info.IsDir()
}

// Maps returns the full identifier -> metadata table, loading it on first
// call.
func (s *Store) Maps() map[string]core.MapInfo {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.loaded {
		return s.maps
	}
	s.loaded = true

	if s.dir == "" {
		return nil
	}

	for _, rel := range []string{"maps.json", filepath.Join("Data", "maps.json")} {
		path := filepath.Join(s.dir, rel)
		data, err := os.ReadFile(path)
		if err != nil {
			continue
		}

		var maps map[string]core.MapInfo
		if err := json.Unmarshal(data, &maps); err != nil {
			s.logger.Warn("Failed to parse map metadata",
				"path", path, "error", err)
			continue
		}

		s.logger.Info("Loaded map metadata", "path", path, "maps", len(maps))
		s.maps = maps
		return s.maps
	}

	s.logger.Warn("Map metadata not found", "dir", s.dir)
	return nil
}

// MapInfo resolves a map by identifier or English display name. The
// identifier match is exact on the lowercased input; the name match is
// case-insensitive.
func (s *Store) MapInfo(name string) (core.MapInfo, bool) {
	maps := s.Maps()
	if len(maps) == 0 {
		return core.MapInfo{}, false
	}

	if info, ok := maps[strings.ToLower(name)]; ok {
		return info, true
	}

	for _, info := range maps {
		if strings.EqualFold(info.EnglishName(), name) {
			return info, true
		}
	}
	return core.MapInfo{}, false
}

// Enemies returns the enemy list for a map, or nil when unknown.
func (s *Store) Enemies(name string) []string {
	info, ok := s.MapInfo(name)
	if !ok {
		return nil
	}
	return info.Enemies
}

// RaidDuration returns the day and night raid durations in minutes.
func (s *Store) RaidDuration(name string) (core.RaidDuration, bool) {
	info, ok := s.MapInfo(name)
	if !ok {
		return core.RaidDuration{}, false
	}
	return info.RaidDuration, true
}

// Description returns the map description, or "" when unknown.
func (s *Store) Description(name string) string {
	info, ok := s.MapInfo(name)
	if !ok {
		return ""
	}
	return info.Description
}

// WikiURL returns the map's wiki link, or "" when unknown.
func (s *Store) WikiURL(name string) string {
	info, ok := s.MapInfo(name)
	if !ok {
		return ""
	}
	return info.Wiki
}
