// Package calibration resolves the game-to-pixel calibration rectangle for
// a map.
//
// Three sources are consulted in order: user-supplied calibration files,
// the map metadata bundle, and a built-in fallback. The first source that
// knows the map wins.
package calibration

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"os"

	"github.com/tarkov-tools/raidmap/internal/dataset"
	"github.com/tarkov-tools/raidmap/pkg/core"
)

// Source identifies where a resolved calibration came from.
type Source string

const (
	SourceCustom  Source = "custom"
	SourceDataset Source = "dataset"
	SourceDefault Source = "default"
)

// defaultKey is the user-file entry that overrides the built-in fallback.
const defaultKey = "Default"

type strategy interface {
	Name() Source
	Resolve(mapName string) (core.Calibration, bool)
}

// Resolver looks up calibrations through the ordered strategy chain.
type Resolver struct {
	primaryPath    string
	additionalPath string
	logger         *slog.Logger

	strategies []strategy
}

// NewResolver builds a resolver over the two user calibration files and the
// metadata bundle. Both files are optional.
func NewResolver(primaryPath, additionalPath string, ds *dataset.Store, logger *slog.Logger) *Resolver {
	r := &Resolver{
		primaryPath:    primaryPath,
		additionalPath: additionalPath,
		logger:         logger,
	}

	custom := newCustomLayer(primaryPath, additionalPath, logger)
	r.strategies = []strategy{
		custom,
		&datasetStrategy{ds: ds, logger: logger},
		&defaultStrategy{custom: custom},
	}
	return r
}

// Resolve returns the calibration for mapName and the source that supplied
// it. The default strategy always matches, so Resolve never fails.
func (r *Resolver) Resolve(mapName string) (core.Calibration, Source) {
	for _, s := range r.strategies {
		if cal, ok := s.Resolve(mapName); ok {
			r.logger.Debug("Resolved calibration",
				"map", mapName, "source", string(s.Name()))
			return cal, s.Name()
		}
	}

	// unreachable, the default strategy always matches
	return core.DefaultCalibration(), SourceDefault
}

// Reload re-reads the user calibration files, replacing the custom layer
// wholesale.
func (r *Resolver) Reload() {
	custom := newCustomLayer(r.primaryPath, r.additionalPath, r.logger)
	r.strategies[0] = custom
	r.strategies[len(r.strategies)-1] = &defaultStrategy{custom: custom}
}

// customLayer serves entries from the user calibration files. Entries from
// the additional file shadow same-named entries from the primary file.
type customLayer struct {
	entries map[string]core.Calibration
}

func newCustomLayer(primaryPath, additionalPath string, logger *slog.Logger) *customLayer {
	entries := make(map[string]core.Calibration)

	primary, err := loadCalibrationFile(primaryPath)
	if err != nil {
		logger.Error("Failed to load calibration file",
			"path", primaryPath, "error", err)
	}
	for name, cal := range primary {
		entries[name] = cal
	}

	additional, err := loadCalibrationFile(additionalPath)
	if err != nil {
		logger.Warn("Failed to load additional calibration file",
			"path", additionalPath, "error", err)
	}
	for name, cal := range additional {
		entries[name] = cal
	}

	return &customLayer{entries: entries}
}

func loadCalibrationFile(path string) (map[string]core.Calibration, error) {
	if path == "" {
		return nil, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, err
	}

	var entries map[string]core.Calibration
	if err := json.Unmarshal(data, &entries); err != nil {
		return nil, fmt.Errorf("invalid calibration JSON: %w", err)
	}
	return entries, nil
}

func (c *customLayer) Name() Source { return SourceCustom }

func (c *customLayer) Resolve(mapName string) (core.Calibration, bool) {
	cal, ok := c.entries[mapName]
	return cal, ok
}

// datasetStrategy derives a calibration from the metadata bundle's SVG
// bounds.
type datasetStrategy struct {
	ds     *dataset.Store
	logger *slog.Logger
}

func (d *datasetStrategy) Name() Source { return SourceDataset }

func (d *datasetStrategy) Resolve(mapName string) (core.Calibration, bool) {
	info, ok := d.ds.MapInfo(mapName)
	if !ok {
		return core.Calibration{}, false
	}

	cal, err := calibrationFromSVG(info.SVG)
	if err != nil {
		d.logger.Warn("Cannot derive calibration from map metadata",
			"map", mapName, "error", err)
		return core.Calibration{}, false
	}
	return cal, true
}

// calibrationFromSVG converts SVG bounds into a calibration rectangle. Only
// the 180-degree rotation is supported; the bounds of a rotated map are
// stored as [[maxX, minY], [minX, maxY]].
func calibrationFromSVG(svg core.MapSVG) (core.Calibration, error) {
	if svg.CoordinateRotation != 180 {
		return core.Calibration{}, fmt.Errorf(
			"unsupported coordinate rotation %d", svg.CoordinateRotation)
	}
	if len(svg.Bounds) != 2 || len(svg.Bounds[0]) != 2 || len(svg.Bounds[1]) != 2 {
		return core.Calibration{}, fmt.Errorf("malformed bounds")
	}

	cal := core.Calibration{
		CenterMinX: svg.Bounds[1][0],
		CenterMaxX: svg.Bounds[0][0],
		CenterMinY: svg.Bounds[0][1],
		CenterMaxY: svg.Bounds[1][1],
		PointMinX:  svg.Bounds[1][0],
		PointMaxX:  svg.Bounds[0][0],
		PointMinY:  svg.Bounds[0][1],
		PointMaxY:  svg.Bounds[1][1],
	}
	if err := cal.Validate(); err != nil {
		return core.Calibration{}, err
	}
	return cal, nil
}

// defaultStrategy always matches. A user-supplied "Default" entry replaces
// the built-in rectangle.
type defaultStrategy struct {
	custom *customLayer
}

func (d *defaultStrategy) Name() Source { return SourceDefault }

func (d *defaultStrategy) Resolve(string) (core.Calibration, bool) {
	if cal, ok := d.custom.entries[defaultKey]; ok {
		return cal, true
	}
	return core.DefaultCalibration(), true
}
