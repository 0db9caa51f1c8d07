// Package geo maps game-space positions onto map images.
//
// Pixel coordinates follow image conventions: origin top-left, Y growing
// downward. The game's +X runs left on the rendered maps, so the horizontal
// pixel axis is mirrored, and the vertical pixel axis follows the game's
// depth axis Z rather than its height axis Y.
package geo

import (
	"errors"
	"fmt"

	"github.com/peterstace/simplefeatures/geom"

	"github.com/tarkov-tools/raidmap/pkg/core"
)

// ErrDegenerateCalibration is returned when a calibration's point rectangle
// has a non-positive span, which would make the projection scale zero or
// inverted.
var ErrDegenerateCalibration = errors.New("degenerate calibration rectangle")

// Project maps a game position onto an image of the given pixel dimensions
// using the map's calibration record.
//
// The result is not clamped: a position outside the calibrated rectangle
// legitimately projects outside the image bounds.
func Project(pos core.Position3D, cal core.Calibration, width, height float64) (geom.XY, error) {
	if err := cal.Validate(); err != nil {
		return geom.XY{}, fmt.Errorf("%w: %v", ErrDegenerateCalibration, err)
	}

	centerX := (cal.CenterMaxX + cal.CenterMinX) / 2
	centerY := (cal.CenterMaxY + cal.CenterMinY) / 2

	scaleX := width / (cal.PointMaxX - cal.PointMinX)
	scaleY := height / (cal.PointMaxY - cal.PointMinY)

	return geom.XY{
		X: width/2 - (pos.X-centerX)*scaleX,
		Y: height/2 + (pos.Z-centerY)*scaleY,
	}, nil
}

// MapPointFrom converts a projected pixel position into a drawable marker
// with the default style.
func MapPointFrom(xy geom.XY) core.MapPoint {
	return core.MapPoint{
		X:      int(xy.X),
		Y:      int(xy.Y),
		Color:  "red",
		Radius: 5,
	}
}
