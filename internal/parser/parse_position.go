// Package parser extracts game positions from screenshot filenames.
//
// The game embeds the player position in every screenshot name as
// "_X, Y, Z_", e.g.
//
//	2024-03-16[02-20]_-9.1, 33.6, 166.4_0.0, -1.0, 0.2, 0.1_12.33 (0).png
//
// where the first underscore-delimited triple is the position and the
// following block is the view quaternion.
package parser

import (
	"fmt"
	"log/slog"
	"regexp"
	"strconv"

	"github.com/tarkov-tools/raidmap/pkg/core"
)

// positionPattern matches three comma-separated decimals between
// underscores. Each number must carry a fractional part; that is what keeps
// the pattern from matching date fragments elsewhere in the name. The
// quaternion block has four numbers and never matches.
var positionPattern = regexp.MustCompile(`_(-?\d+\.\d+), (-?\d+\.\d+), (-?\d+\.\d+)_`)

// Parser provides pure filename -> position conversion.
// It has zero external dependencies beyond a logger.
type Parser struct {
	logger *slog.Logger
}

// NewParser creates a new parser with only a logger dependency.
func NewParser(logger *slog.Logger) *Parser {
	return &Parser{logger: logger}
}

// ParsePosition returns the position embedded in filename. Captures map to
// x, y, z in textual order; only the first match in the string is used.
// A filename without the pattern yields a *ParseError.
func (p *Parser) ParsePosition(filename string) (core.Position3D, error) {
	m := positionPattern.FindStringSubmatch(filename)
	if m == nil {
		return core.Position3D{}, &ParseError{Filename: filename}
	}

	var pos core.Position3D
	var err error

	pos.X, err = strconv.ParseFloat(m[1], 64)
	if err != nil {
		return core.Position3D{}, fmt.Errorf("error converting x coordinate: %w", err)
	}
	pos.Y, err = strconv.ParseFloat(m[2], 64)
	if err != nil {
		return core.Position3D{}, fmt.Errorf("error converting y coordinate: %w", err)
	}
	pos.Z, err = strconv.ParseFloat(m[3], 64)
	if err != nil {
		return core.Position3D{}, fmt.Errorf("error converting z coordinate: %w", err)
	}

	p.logger.Debug("Parsed position from filename",
		"filename", filename,
		"position", pos.String())

	return pos, nil
}
