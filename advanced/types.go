package advanced

import (
	"fmt"

	"github.com/logrusorgru/aurora"
	"github.com/osuushi/crowdmesh/dbg"
	"github.com/osuushi/crowdmesh/internal"
)

type Point = internal.Point
type Polygon = internal.Polygon
type Obstacle = internal.Obstacle

// RGB with components in [0,1].
type Color [3]float64

// One triangle of the current triangulation. Triangles are rebuilt wholesale
// on every triangulation, so a Triangle is only meaningful together with the
// point set it was built from.
type Triangle struct {
	Indices     internal.TriangleIndices
	Centroid    Point
	PeopleCount int
	// False when the centroid falls inside the obstacle. Invalid triangles are
	// never occupied and never sampled.
	Valid bool
	Color Color
}

// A person. TriIndex is the index of the triangle it was last assigned to, or -1
// when there was no valid triangle to assign it to.
type Person struct {
	X, Y     float64
	TriIndex int
}

func (p *Person) Point() Point {
	return Point{X: p.X, Y: p.Y}
}

func (p *Person) String() string {
	return fmt.Sprintf("%s (%.3f, %.3f) in %d", dbg.Name(p), p.X, p.Y, p.TriIndex)
}

// Flags the renderers read, and the controller writes.
type UIState struct {
	ShowEdges           bool
	ShowPoints          bool
	DraggingPerson      bool
	SelectedPersonIndex int
}

func DefaultUIState() UIState {
	return UIState{ShowEdges: true, SelectedPersonIndex: -1}
}

// Debug description of a triangle, colored by density band.
func (t *Triangle) DbgString(target int) string {
	s := fmt.Sprintf("%v people=%d", t.Indices, t.PeopleCount)
	switch {
	case !t.Valid:
		return aurora.Gray(12, s+" (invalid)").String()
	case t.PeopleCount == target:
		return aurora.Green(s).String()
	case t.PeopleCount > target:
		return aurora.Red(s).String()
	default:
		return aurora.Blue(s).String()
	}
}
