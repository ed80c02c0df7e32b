package internal

import (
	"fmt"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestObstacleCorners_AxisAligned(t *testing.T) {
	o := Obstacle{CX: 0.5, CY: 0.4, W: 0.4, H: 0.2}
	corners := o.Corners()
	expected := [4]Point{
		{0.3, 0.3}, // top-left
		{0.7, 0.3}, // top-right
		{0.7, 0.5}, // bottom-right
		{0.3, 0.5}, // bottom-left
	}
	for i := range expected {
		assert.InDelta(t, expected[i].X, corners[i].X, Tolerance, "corner %d x", i)
		assert.InDelta(t, expected[i].Y, corners[i].Y, Tolerance, "corner %d y", i)
	}
}

func TestObstacleCorners_Rotated(t *testing.T) {
	for _, degrees := range []float64{-180, -90, -25, 0, 10, 45, 90, 135, 179} {
		degrees := degrees
		t.Run(fmt.Sprintf("%g degrees", degrees), func(t *testing.T) {
			o := Obstacle{CX: 0.5, CY: 0.5, W: 0.28, H: 0.18, Angle: degrees * math.Pi / 180}
			poly := o.Polygon()
			require.Len(t, poly.Points, 4)

			// Centered on the obstacle center
			center := poly.Center()
			assert.InDelta(t, o.CX, center.X, Tolerance)
			assert.InDelta(t, o.CY, center.Y, Tolerance)

			// Rotation is rigid, so the area and edge lengths survive
			assert.True(t, poly.IsSimple())
			assert.InDelta(t, o.W*o.H, poly.Area(), Tolerance)
			assert.InDelta(t, o.W*o.W, Dist2(poly.Points[0], poly.Points[1]), Tolerance)
			assert.InDelta(t, o.H*o.H, Dist2(poly.Points[1], poly.Points[2]), Tolerance)

			// The center is inside, and a point well beyond the diagonal is not
			assert.True(t, o.Contains(Point{o.CX, o.CY}))
			assert.False(t, o.Contains(Point{o.CX + o.W, o.CY + o.W}))
		})
	}
}

func TestObstacleMoveTo(t *testing.T) {
	o := Obstacle{CX: 0.5, CY: 0.5, W: 0.4, H: 0.2}

	o.MoveTo(Point{0.6, 0.3})
	assert.InDelta(t, 0.6, o.CX, Tolerance)
	assert.InDelta(t, 0.3, o.CY, Tolerance)

	// Clamped by the unrotated half extents
	o.MoveTo(Point{1.5, -2})
	assert.InDelta(t, 0.8, o.CX, Tolerance)
	assert.InDelta(t, 0.1, o.CY, Tolerance)

	o.MoveTo(Point{0, 2})
	assert.InDelta(t, 0.2, o.CX, Tolerance)
	assert.InDelta(t, 0.9, o.CY, Tolerance)
}

func TestObstacleRotate(t *testing.T) {
	o := Obstacle{W: 1, H: 1}
	o.Rotate(math.Pi / 2)
	assert.InDelta(t, math.Pi/2, o.Angle, Tolerance)
	o.Rotate(math.Pi)
	assert.InDelta(t, -math.Pi/2, o.Angle, Tolerance)
	o.Rotate(-math.Pi / 2)
	assert.InDelta(t, math.Pi, o.Angle, Tolerance)

	// Many small steps stay normalized
	for i := 0; i < 100; i++ {
		o.Rotate(15 * math.Pi / 180)
		assert.Greater(t, o.Angle, -math.Pi)
		assert.LessOrEqual(t, o.Angle, math.Pi)
	}
}

func TestNormalizeAngle(t *testing.T) {
	assert.InDelta(t, math.Pi, NormalizeAngle(math.Pi), Tolerance)
	assert.InDelta(t, math.Pi, NormalizeAngle(-math.Pi), Tolerance)
	assert.InDelta(t, 0, NormalizeAngle(4*math.Pi), Tolerance)
	assert.InDelta(t, -math.Pi/2, NormalizeAngle(3*math.Pi/2), Tolerance)
}

func TestAngleDelta(t *testing.T) {
	assert.InDelta(t, 0.2, AngleDelta(0.1, 0.3), Tolerance)
	// Crossing the seam takes the short way around
	assert.InDelta(t, 0.2, AngleDelta(math.Pi-0.1, -math.Pi+0.1), Tolerance)
	assert.InDelta(t, -0.2, AngleDelta(-math.Pi+0.1, math.Pi-0.1), Tolerance)
}

func TestObstacleScale(t *testing.T) {
	o := Obstacle{W: 0.2, H: 0.1}
	o.Scale(1.05)
	assert.InDelta(t, 0.21, o.W, Tolerance)
	assert.InDelta(t, 0.105, o.H, Tolerance)

	o.Scale(0)
	o.Scale(-1)
	assert.InDelta(t, 0.21, o.W, Tolerance, "non-positive factors are ignored")

	for i := 0; i < 2000; i++ {
		o.Scale(0.95)
	}
	assert.Greater(t, o.W, 0.0)
	assert.Greater(t, o.H, 0.0)
}

func TestObstacleRecenter(t *testing.T) {
	o := Obstacle{CX: 0.1, CY: 0.9, W: 0.1, H: 0.1}
	o.Recenter()
	assert.Equal(t, 0.5, o.CX)
	assert.Equal(t, 0.5, o.CY)
}
