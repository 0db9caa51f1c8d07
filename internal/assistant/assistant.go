// Package assistant wires the parser, position store, calibration resolver
// and map file locator into the application-level operations.
package assistant

import (
	"errors"
	"fmt"
	"log/slog"
	"path/filepath"

	"github.com/tarkov-tools/raidmap/internal/calibration"
	"github.com/tarkov-tools/raidmap/internal/dataset"
	"github.com/tarkov-tools/raidmap/internal/geo"
	"github.com/tarkov-tools/raidmap/internal/mapfile"
	"github.com/tarkov-tools/raidmap/internal/parser"
	"github.com/tarkov-tools/raidmap/internal/storage"
	"github.com/tarkov-tools/raidmap/pkg/core"
)

// ErrNoPositions is returned when an operation needs a stored position but
// the history is empty.
var ErrNoPositions = errors.New("no positions recorded yet")

// Dependencies collects the collaborators a Service needs.
type Dependencies struct {
	Parser   *parser.Parser
	Store    storage.Backend
	Resolver *calibration.Resolver
	Locator  *mapfile.Locator
	Dataset  *dataset.Store
	Logger   *slog.Logger
}

// Service exposes the high-level operations behind the CLI commands.
type Service struct {
	deps Dependencies
}

// NewService creates a service from its dependencies.
func NewService(deps Dependencies) *Service {
	return &Service{deps: deps}
}

// ImportScreenshot extracts the position embedded in a screenshot filename
// and appends it to the history. The path may be absolute; only the base
// name carries the position.
func (s *Service) ImportScreenshot(path string) (core.Position3D, error) {
	pos, err := s.deps.Parser.ParsePosition(filepath.Base(path))
	if err != nil {
		return core.Position3D{}, err
	}

	s.deps.Store.Append(pos)
	s.deps.Logger.Info("Imported position from screenshot",
		"file", filepath.Base(path), "position", pos.String())
	return pos, nil
}

// LatestPosition returns the most recently imported position.
func (s *Service) LatestPosition() (core.Position3D, error) {
	pos, ok := s.deps.Store.Latest()
	if !ok {
		return core.Position3D{}, ErrNoPositions
	}
	return pos, nil
}

// History returns every stored position in import order.
func (s *Service) History() []core.PositionRecord {
	return s.deps.Store.All()
}

// Project converts a game position into a marker on the named map's image
// of the given pixel dimensions.
func (s *Service) Project(mapName string, pos core.Position3D, width, height float64) (core.MapPoint, error) {
	cal, source := s.deps.Resolver.Resolve(mapName)

	xy, err := geo.Project(pos, cal, width, height)
	if err != nil {
		return core.MapPoint{}, fmt.Errorf("projecting onto %s: %w", mapName, err)
	}

	s.deps.Logger.Debug("Projected position",
		"map", mapName, "source", string(source),
		"x", xy.X, "y", xy.Y)
	return geo.MapPointFrom(xy), nil
}

// ProjectLatest projects the most recently imported position.
func (s *Service) ProjectLatest(mapName string, width, height float64) (core.MapPoint, error) {
	pos, err := s.LatestPosition()
	if err != nil {
		return core.MapPoint{}, err
	}
	return s.Project(mapName, pos, width, height)
}

// LocateMapFile returns the path of the map image for mapName.
func (s *Service) LocateMapFile(mapName string) (string, error) {
	return s.deps.Locator.Locate(mapName)
}

// AvailableMaps lists the maps with an image present, sorted.
func (s *Service) AvailableMaps() []string {
	return s.deps.Locator.AvailableMaps()
}

// MapSummary aggregates everything known about a map.
type MapSummary struct {
	Name         string
	Description  string
	Enemies      []string
	RaidDuration core.RaidDuration
	Wiki         string

	// SVGPath is empty when no map image could be located.
	SVGPath string
}

// MapSummary collects metadata and the image path for a map. Metadata
// fields stay zero when the map is unknown to the bundle; a missing image
// is not an error.
func (s *Service) MapSummary(mapName string) MapSummary {
	summary := MapSummary{Name: mapName}

	if info, ok := s.deps.Dataset.MapInfo(mapName); ok {
		summary.Description = info.Description
		summary.Enemies = info.Enemies
		summary.RaidDuration = info.RaidDuration
		summary.Wiki = info.Wiki
	}

	if path, err := s.deps.Locator.Locate(mapName); err == nil {
		summary.SVGPath = path
	}

	return summary
}
