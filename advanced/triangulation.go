package advanced

import "github.com/osuushi/crowdmesh/internal"

// Rebuild the triangulation from the current point set and obstacle, then
// reassign people and recolor.
//
// The last four points are assumed to be the obstacle corners from the
// previous build, and are replaced by the obstacle's current corners. This is
// what lets the obstacle move without regenerating interior points. It also
// means the point set must only ever be replaced through GeneratePoints; a
// point set whose tail is not the obstacle will silently lose four points.
//
// If the triangulator fails, the failure is logged and the scene is left with
// no triangles.
func (s *Scene) BuildTriangulation() {
	keep := len(s.Points) - 4
	if keep < 0 {
		keep = 0
	}
	points := make([]Point, 0, keep+4)
	points = append(points, s.Points[:keep]...)
	corners := s.Obstacle.Corners()
	points = append(points, corners[:]...)
	s.Points = points

	indices, err := internal.Triangulate(s.Points)
	if err != nil {
		s.Logger.Printf("delaunay failed: %v", err)
		indices = nil
	}

	s.Triangles = make([]Triangle, 0, len(indices))
	for _, tri := range indices {
		a, b, c := s.Points[tri[0]], s.Points[tri[1]], s.Points[tri[2]]
		s.Triangles = append(s.Triangles, Triangle{
			Indices:  tri,
			Centroid: internal.Centroid(a, b, c),
			Valid:    true,
		})
	}

	s.removeTrianglesInsideObstacle()
	s.AssignPeopleToTriangles()
	s.UpdateTriangleColors()
}

func (s *Scene) removeTrianglesInsideObstacle() {
	poly := s.Obstacle.Polygon()
	for i := range s.Triangles {
		s.Triangles[i].Valid = !poly.ContainsPoint(s.Triangles[i].Centroid)
	}
}
