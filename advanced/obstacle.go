package advanced

import (
	"io"
	"math"

	"github.com/osuushi/crowdmesh/internal"
)

// Read an obstacle from the first <rect> of an SVG document in unit square
// coordinates.
func LoadObstacleSVG(r io.Reader) (Obstacle, error) {
	return internal.LoadObstacleSVG(r)
}

// One of the obstacles embedded with the package, by name. Panics via log.Fatal
// on an unknown name.
func ObstacleFixture(name string) Obstacle {
	return internal.LoadObstacleFixture(name)
}

// The helpers below mutate the obstacle and then rebuild, which is the only
// correct order. Callers that mutate Scene.Obstacle directly must call
// BuildTriangulation themselves.

func (s *Scene) MoveObstacle(to Point) {
	s.Obstacle.MoveTo(to)
	s.BuildTriangulation()
}

func (s *Scene) RotateObstacle(delta float64) {
	s.Obstacle.Rotate(delta)
	s.BuildTriangulation()
}

// Grow by one scale step when up is true, shrink by one otherwise.
func (s *Scene) ScaleObstacle(up bool) {
	if up {
		s.Obstacle.Scale(1 + s.Config.ScaleStep)
	} else {
		s.Obstacle.Scale(1 - s.Config.ScaleStep)
	}
	s.BuildTriangulation()
}

func (s *Scene) CenterObstacle() {
	s.Obstacle.Recenter()
	s.BuildTriangulation()
}

func (s *Scene) RotateStep() float64 {
	return s.Config.RotateStepDegrees * math.Pi / 180
}
