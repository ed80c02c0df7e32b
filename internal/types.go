package internal

// Coordinates live in the normalized domain [0,1]x[0,1], with y growing
// downward the way the canvas draws it.
type Point struct {
	X float64
	Y float64
}

// A closed polygon. The last point connects back to the first.
type Polygon struct {
	Points []Point
}

// Vertex indices into a point set, as produced by the triangulator.
type TriangleIndices [3]int
