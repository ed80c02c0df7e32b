package advanced

import "github.com/osuushi/crowdmesh/internal"

// Inset corners of the unit square. They pin the convex hull of every
// triangulation, so the mesh always spans the domain.
var DomainCorners = [4]Point{
	{X: 0.03, Y: 0.03},
	{X: 0.97, Y: 0.03},
	{X: 0.97, Y: 0.97},
	{X: 0.03, Y: 0.97},
}

const (
	interiorMin = 0.05
	interiorMax = 0.95
)

// Replace the point set with the domain corners, n uniform interior points, and
// the obstacle's current corners, in that order. This also starts a new scene
// id. The triangulation is not rebuilt.
func (s *Scene) GeneratePoints(n int) {
	points := make([]Point, 0, len(DomainCorners)+n+4)
	points = append(points, DomainCorners[:]...)
	for i := 0; i < n; i++ {
		points = append(points, Point{
			X: internal.RandRange(s.Rand, interiorMin, interiorMax),
			Y: internal.RandRange(s.Rand, interiorMin, interiorMax),
		})
	}
	corners := s.Obstacle.Corners()
	points = append(points, corners[:]...)
	s.Points = points
	s.ID = newSceneID()
}
