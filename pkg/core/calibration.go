// pkg/core/calibration.go
package core

import "fmt"

// Calibration ties a map's game-space extents to its rendered image.
// The center rectangle fixes the reference origin (its midpoint maps to the
// image center) and the point rectangle fixes the scale factors.
type Calibration struct {
	CenterMinX float64 `json:"centerMinX"`
	CenterMaxX float64 `json:"centerMaxX"`
	CenterMinY float64 `json:"centerMinY"`
	CenterMaxY float64 `json:"centerMaxY"`
	PointMinX  float64 `json:"pointMinX"`
	PointMaxX  float64 `json:"pointMaxX"`
	PointMinY  float64 `json:"pointMinY"`
	PointMaxY  float64 `json:"pointMaxY"`
}

// Validate rejects a degenerate point rectangle. A non-positive span on
// either axis would zero or invert the projection scale.
func (c Calibration) Validate() error {
	if c.PointMaxX <= c.PointMinX {
		return fmt.Errorf("point rectangle X span is %v (max %v <= min %v)",
			c.PointMaxX-c.PointMinX, c.PointMaxX, c.PointMinX)
	}
	if c.PointMaxY <= c.PointMinY {
		return fmt.Errorf("point rectangle Y span is %v (max %v <= min %v)",
			c.PointMaxY-c.PointMinY, c.PointMaxY, c.PointMinY)
	}
	return nil
}

// DefaultCalibration is the built-in fallback used when no configuration
// source resolves a map.
func DefaultCalibration() Calibration {
	return Calibration{
		CenterMinX: -300, CenterMaxX: 300,
		CenterMinY: -300, CenterMaxY: 300,
		PointMinX: -300, PointMaxX: 300,
		PointMinY: -300, PointMaxY: 300,
	}
}
