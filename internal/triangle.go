package internal

// Outward tolerance on the barycentric containment test, so that points sitting
// on a shared edge are still accepted by one of its triangles.
const ContainmentEpsilon = 1e-7

// Barycentric coordinates (u, v) of p relative to triangle abc, such that
//
//	p = a + u*(c-a) + v*(b-a)
//
// The denominator is nudged so a degenerate triangle yields huge coordinates
// instead of a division by zero.
func Barycentric(p, a, b, c Point) (u, v float64) {
	v0 := c.Sub(a)
	v1 := b.Sub(a)
	v2 := p.Sub(a)
	dot00 := v0.X*v0.X + v0.Y*v0.Y
	dot01 := v0.X*v1.X + v0.Y*v1.Y
	dot02 := v0.X*v2.X + v0.Y*v2.Y
	dot11 := v1.X*v1.X + v1.Y*v1.Y
	dot12 := v1.X*v2.X + v1.Y*v2.Y
	invDen := 1 / (dot00*dot11 - dot01*dot01 + 1e-12)
	u = (dot11*dot02 - dot01*dot12) * invDen
	v = (dot00*dot12 - dot01*dot02) * invDen
	return u, v
}

// Barycentric containment, inclusive of the boundary up to ContainmentEpsilon.
// Works for either winding.
func PointInTriangle(p, a, b, c Point) bool {
	u, v := Barycentric(p, a, b, c)
	return u >= -ContainmentEpsilon && v >= -ContainmentEpsilon && u+v < 1+ContainmentEpsilon
}

func Centroid(a, b, c Point) Point {
	return Point{(a.X + b.X + c.X) / 3, (a.Y + b.Y + c.Y) / 3}
}

// Map two uniform randoms in [0,1) to a uniformly distributed point inside
// triangle p0 p1 p2. Pairs outside the unit simplex are reflected back in
// rather than rejected, so every call produces a point.
func SampleTriangle(p0, p1, p2 Point, r1, r2 float64) Point {
	if r1+r2 >= 1 {
		r1 = 1 - r1
		r2 = 1 - r2
	}
	return Point{
		X: p0.X + r1*(p1.X-p0.X) + r2*(p2.X-p0.X),
		Y: p0.Y + r1*(p1.Y-p0.Y) + r2*(p2.Y-p0.Y),
	}
}

// Twice the signed area of the triangle. Zero for collinear vertices.
func TriangleSignedArea2(a, b, c Point) float64 {
	return cross(a, b, c)
}
