package internal

import (
	"github.com/fogleman/delaunay"
	"github.com/pkg/errors"
)

// Delaunay triangulation of a point set. The result is one index triple per
// triangle, every index referring to the input slice.
//
// The triangulator rejects inputs with no triangulation (fewer than three
// distinct points, or all points collinear). Those failures, as well as any
// panic raised inside the triangulator, come back as an error with a nil
// result.
func Triangulate(points []Point) (result []TriangleIndices, err error) {
	defer func() {
		if recoveredErr := HandleAnyPanicRecover(recover()); recoveredErr != nil {
			result = nil
			err = errors.Wrap(recoveredErr, "delaunay")
		}
	}()

	input := make([]delaunay.Point, len(points))
	for i, p := range points {
		input[i] = delaunay.Point{X: p.X, Y: p.Y}
	}

	triangulation, err := delaunay.Triangulate(input)
	if err != nil {
		return nil, errors.Wrap(err, "delaunay")
	}

	flat := triangulation.Triangles
	if len(flat)%3 != 0 {
		fatalf("triangulator returned %d indices, not a multiple of 3", len(flat))
	}
	result = make([]TriangleIndices, 0, len(flat)/3)
	for t := 0; t < len(flat); t += 3 {
		tri := TriangleIndices{flat[t], flat[t+1], flat[t+2]}
		for _, i := range tri {
			if i < 0 || i >= len(points) {
				fatalf("triangle %d references point %d of %d", t/3, i, len(points))
			}
		}
		result = append(result, tri)
	}
	return result, nil
}
