package internal

import "math"

// A rectangle rotated about its center. W and H are full extents, Angle is in
// radians. W and H must stay positive; nothing here enforces it, but scaling by
// a positive factor preserves it.
type Obstacle struct {
	CX, CY float64
	W, H   float64
	Angle  float64
}

// The four corners in domain space. The order is top-left, top-right,
// bottom-right, bottom-left of the unrotated rectangle, each rotated by Angle
// about the center.
func (o Obstacle) Corners() [4]Point {
	hw, hh := o.W/2, o.H/2
	ca, sa := math.Cos(o.Angle), math.Sin(o.Angle)
	local := [4]Point{{-hw, -hh}, {hw, -hh}, {hw, hh}, {-hw, hh}}
	var corners [4]Point
	for i, d := range local {
		corners[i] = Point{
			X: o.CX + d.X*ca - d.Y*sa,
			Y: o.CY + d.X*sa + d.Y*ca,
		}
	}
	return corners
}

func (o Obstacle) Polygon() Polygon {
	corners := o.Corners()
	return Polygon{Points: corners[:]}
}

func (o Obstacle) Contains(p Point) bool {
	return o.Polygon().ContainsPoint(p)
}

// Move the center toward p, clamped so the obstacle stays in the unit square.
// The margin is the unrotated half extent, so rotated corners can still poke
// out of the domain.
func (o *Obstacle) MoveTo(p Point) {
	halfW, halfH := o.W/2, o.H/2
	o.CX = math.Max(halfW, math.Min(1-halfW, p.X))
	o.CY = math.Max(halfH, math.Min(1-halfH, p.Y))
}

// Accumulate a signed rotation. The stored angle stays in (-π, π].
func (o *Obstacle) Rotate(delta float64) {
	o.Angle = NormalizeAngle(o.Angle + delta)
}

// Multiply both extents by factor. Non-positive factors are ignored.
func (o *Obstacle) Scale(factor float64) {
	if factor <= 0 {
		return
	}
	o.W *= factor
	o.H *= factor
}

func (o *Obstacle) Recenter() {
	o.CX, o.CY = 0.5, 0.5
}

// Wrap an angle into (-π, π].
func NormalizeAngle(a float64) float64 {
	a = math.Mod(a, 2*math.Pi)
	if a <= -math.Pi {
		a += 2 * math.Pi
	} else if a > math.Pi {
		a -= 2 * math.Pi
	}
	return a
}

// Wrap the difference between two pointer angles into [-π, π], so a drag across
// the ±π seam produces a small rotation rather than a full turn.
func AngleDelta(from, to float64) float64 {
	delta := to - from
	if delta > math.Pi {
		delta -= 2 * math.Pi
	}
	if delta < -math.Pi {
		delta += 2 * math.Pi
	}
	return delta
}
