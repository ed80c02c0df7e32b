package internal

import "math"

// Added to the edge's y extent when solving for the crossing x, so that a
// horizontal edge never divides by zero. Horizontal edges are already excluded
// by the straddle test, so this only matters for nearly horizontal ones.
const horizontalEdgeEpsilon = 1e-12

// Even-odd (ray casting) point-in-polygon. A ray is cast toward +x and the
// number of edges it crosses is counted. Points exactly on the boundary may go
// either way.
func (poly Polygon) ContainsPoint(p Point) bool {
	return poly.CrossingCount(p)%2 == 1
}

// Crossing count helper for even odd rule
func (poly Polygon) CrossingCount(p Point) int {
	crossingCount := 0
	n := len(poly.Points)
	for i, vertex := range poly.Points {
		prev := poly.Points[CircularIndex(i-1, n)]
		if (vertex.Y > p.Y) == (prev.Y > p.Y) {
			continue
		}
		crossX := (prev.X-vertex.X)*(p.Y-vertex.Y)/(prev.Y-vertex.Y+horizontalEdgeEpsilon) + vertex.X
		if p.X < crossX {
			crossingCount++
		}
	}
	return crossingCount
}

// Shoelace area. Positive when the points wind counterclockwise in a y-up
// frame, which is clockwise on screen.
func (poly Polygon) SignedArea() float64 {
	var area float64
	for i, p := range poly.Points {
		next := poly.Points[CircularIndex(i+1, len(poly.Points))]
		area += p.X*next.Y - next.X*p.Y
	}
	return area / 2
}

func (poly Polygon) Area() float64 {
	return math.Abs(poly.SignedArea())
}

// Arithmetic mean of the vertices.
func (poly Polygon) Center() Point {
	var c Point
	for _, p := range poly.Points {
		c = c.Add(p)
	}
	return c.Scale(1 / float64(len(poly.Points)))
}

// A polygon is simple if no two non-adjacent edges intersect. This is
// quadratic, and only intended for small polygons such as the obstacle.
func (poly Polygon) IsSimple() bool {
	n := len(poly.Points)
	if n < 3 {
		return false
	}
	for i := 0; i < n; i++ {
		a1, a2 := poly.Points[i], poly.Points[CircularIndex(i+1, n)]
		for j := i + 1; j < n; j++ {
			// Adjacent edges share an endpoint, which doesn't count
			if j == i+1 || CircularIndex(j+1, n) == i {
				continue
			}
			b1, b2 := poly.Points[j], poly.Points[CircularIndex(j+1, n)]
			if segmentsIntersect(a1, a2, b1, b2) {
				return false
			}
		}
	}
	return true
}

func (poly Polygon) Reverse() Polygon {
	newPoly := Polygon{}
	for i := len(poly.Points) - 1; i >= 0; i-- {
		newPoly.Points = append(newPoly.Points, poly.Points[i])
	}
	return newPoly
}

// Twice the signed area of abc.
func cross(a, b, c Point) float64 {
	return (b.X-a.X)*(c.Y-a.Y) - (b.Y-a.Y)*(c.X-a.X)
}

func segmentsIntersect(a1, a2, b1, b2 Point) bool {
	d1 := cross(b1, b2, a1)
	d2 := cross(b1, b2, a2)
	d3 := cross(a1, a2, b1)
	d4 := cross(a1, a2, b2)
	return ((d1 > 0) != (d2 > 0)) && ((d3 > 0) != (d4 > 0))
}
