// pkg/core/position.go
package core

import "fmt"

// Position3D is a point in game space. The game reports X/Y/Z where Y is
// height above ground and Z is depth; Z drives the vertical axis when the
// position is placed on a 2D map.
type Position3D struct {
	X float64
	Y float64
	Z float64
}

func (p Position3D) String() string {
	return fmt.Sprintf("X: %v, Y: %v, Z: %v", p.X, p.Y, p.Z)
}

// PositionRecord is a Position3D together with the timestamp it was saved at.
// The coordinate store is append-only, so insertion order is chronological
// order. Records imported from legacy files without a timestamp carry a
// synthesized label instead.
type PositionRecord struct {
	Position  Position3D
	Timestamp string
}
