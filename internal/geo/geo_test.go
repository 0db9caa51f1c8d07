package geo

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tarkov-tools/raidmap/pkg/core"
)

func symmetricCalibration(min, max float64) core.Calibration {
	return core.Calibration{
		CenterMinX: min, CenterMaxX: max,
		CenterMinY: min, CenterMaxY: max,
		PointMinX: min, PointMaxX: max,
		PointMinY: min, PointMaxY: max,
	}
}

func TestProject_OriginMapsToImageCenter(t *testing.T) {
	cal := symmetricCalibration(-100, 100)

	xy, err := Project(core.Position3D{X: 0, Y: 0, Z: 0}, cal, 200, 200)
	require.NoError(t, err)

	assert.InDelta(t, 100, xy.X, 1e-9)
	assert.InDelta(t, 100, xy.Y, 1e-9)
}

func TestProject_XAxisIsMirrored(t *testing.T) {
	cal := symmetricCalibration(-100, 100)

	left, err := Project(core.Position3D{X: 10}, cal, 200, 200)
	require.NoError(t, err)
	right, err := Project(core.Position3D{X: 50}, cal, 200, 200)
	require.NoError(t, err)

	// increasing game X strictly decreases pixel X
	assert.Less(t, right.X, left.X)
	assert.InDelta(t, 90, left.X, 1e-9)
	assert.InDelta(t, 50, right.X, 1e-9)
}

func TestProject_VerticalAxisFollowsZNotY(t *testing.T) {
	cal := symmetricCalibration(-100, 100)

	// height must not affect the projection
	low, err := Project(core.Position3D{X: 0, Y: -50, Z: 20}, cal, 200, 200)
	require.NoError(t, err)
	high, err := Project(core.Position3D{X: 0, Y: 80, Z: 20}, cal, 200, 200)
	require.NoError(t, err)
	assert.Equal(t, low, high)

	// depth moves the pixel down
	xy, err := Project(core.Position3D{X: 0, Y: 0, Z: 50}, cal, 200, 200)
	require.NoError(t, err)
	assert.InDelta(t, 150, xy.Y, 1e-9)
}

func TestProject_OffsetCenterRectangle(t *testing.T) {
	cal := core.Calibration{
		CenterMinX: 0, CenterMaxX: 200, // center x = 100
		CenterMinY: 0, CenterMaxY: 200, // center y = 100
		PointMinX: -100, PointMaxX: 100,
		PointMinY: -100, PointMaxY: 100,
	}

	xy, err := Project(core.Position3D{X: 100, Y: 0, Z: 100}, cal, 400, 400)
	require.NoError(t, err)

	// position at the reference origin lands on the image center
	assert.InDelta(t, 200, xy.X, 1e-9)
	assert.InDelta(t, 200, xy.Y, 1e-9)
}

func TestProject_IndependentScaleFactors(t *testing.T) {
	cal := core.Calibration{
		CenterMinX: -100, CenterMaxX: 100,
		CenterMinY: -100, CenterMaxY: 100,
		PointMinX: -100, PointMaxX: 100, // scale x = 400/200 = 2
		PointMinY: -50, PointMaxY: 50, // scale y = 100/100 = 1
	}

	xy, err := Project(core.Position3D{X: 10, Y: 0, Z: 10}, cal, 400, 100)
	require.NoError(t, err)

	assert.InDelta(t, 200-10*2, xy.X, 1e-9)
	assert.InDelta(t, 50+10*1, xy.Y, 1e-9)
}

func TestProject_NoClamping(t *testing.T) {
	cal := symmetricCalibration(-100, 100)

	xy, err := Project(core.Position3D{X: -500, Y: 0, Z: 500}, cal, 200, 200)
	require.NoError(t, err)

	assert.Greater(t, xy.X, 200.0)
	assert.Greater(t, xy.Y, 200.0)
}

func TestProject_DegenerateCalibration(t *testing.T) {
	tests := []struct {
		name string
		cal  core.Calibration
	}{
		{
			name: "zero-width point rectangle",
			cal: core.Calibration{
				CenterMinX: -100, CenterMaxX: 100,
				CenterMinY: -100, CenterMaxY: 100,
				PointMinX: 50, PointMaxX: 50,
				PointMinY: -100, PointMaxY: 100,
			},
		},
		{
			name: "inverted point rectangle",
			cal: core.Calibration{
				CenterMinX: -100, CenterMaxX: 100,
				CenterMinY: -100, CenterMaxY: 100,
				PointMinX: -100, PointMaxX: 100,
				PointMinY: 100, PointMaxY: -100,
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Project(core.Position3D{}, tt.cal, 200, 200)
			require.Error(t, err)
			assert.ErrorIs(t, err, ErrDegenerateCalibration)
		})
	}
}

func TestMapPointFrom(t *testing.T) {
	xy, err := Project(core.Position3D{}, symmetricCalibration(-100, 100), 200, 200)
	require.NoError(t, err)

	p := MapPointFrom(xy)
	assert.Equal(t, 100, p.X)
	assert.Equal(t, 100, p.Y)
	assert.Equal(t, "red", p.Color)
	assert.Equal(t, 5, p.Radius)

	x1, y1, x2, y2 := p.OvalCoords()
	assert.Equal(t, [4]int{95, 95, 105, 105}, [4]int{x1, y1, x2, y2})
}
