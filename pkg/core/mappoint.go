// pkg/core/mappoint.go
package core

// MapPoint is a drawable marker on a rendered map image, in pixel
// coordinates. A point may legitimately lie outside the image bounds; the
// renderer decides whether to clip, scroll or warn.
type MapPoint struct {
	X      int
	Y      int
	Color  string
	Radius int
}

// OvalCoords returns the bounding box (x1, y1, x2, y2) used to draw the
// point as a filled circle.
func (p MapPoint) OvalCoords() (int, int, int, int) {
	return p.X - p.Radius, p.Y - p.Radius, p.X + p.Radius, p.Y + p.Radius
}
