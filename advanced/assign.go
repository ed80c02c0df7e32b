package advanced

import (
	"math"

	"github.com/osuushi/crowdmesh/internal"
)

// Recount occupancy from scratch. Each person goes to the first valid triangle,
// in index order, that contains it.
//
// A person no valid triangle contains (one standing in the obstacle, or dragged
// past the mesh) is assigned to the valid triangle with the nearest centroid,
// and moved onto that centroid plus a small random jitter. This is a lossy
// patch: the jittered position is usually, not provably, inside the triangle.
//
// With no valid triangles at all, every person is left unassigned with
// TriIndex -1.
func (s *Scene) AssignPeopleToTriangles() {
	for i := range s.Triangles {
		s.Triangles[i].PeopleCount = 0
	}

	for _, p := range s.People {
		if i := s.containingTriangle(p.Point()); i >= 0 {
			s.Triangles[i].PeopleCount++
			p.TriIndex = i
			continue
		}

		i := s.nearestValidTriangle(p.Point())
		if i < 0 {
			p.TriIndex = -1
			continue
		}
		t := &s.Triangles[i]
		jitter := s.Config.FallbackJitter
		p.X = t.Centroid.X + (s.Rand.Float64()-0.5)*2*jitter
		p.Y = t.Centroid.Y + (s.Rand.Float64()-0.5)*2*jitter
		t.PeopleCount++
		p.TriIndex = i
	}
}

// Index of the first valid triangle containing p, or -1.
func (s *Scene) containingTriangle(p Point) int {
	for i := range s.Triangles {
		t := &s.Triangles[i]
		if !t.Valid {
			continue
		}
		a, b, c := s.TriangleVertices(t)
		if internal.PointInTriangle(p, a, b, c) {
			return i
		}
	}
	return -1
}

// Index of the valid triangle whose centroid is nearest p, or -1 if there are
// no valid triangles. Ties go to the lower index.
func (s *Scene) nearestValidTriangle(p Point) int {
	best, bestDist := -1, math.Inf(1)
	for i := range s.Triangles {
		t := &s.Triangles[i]
		if !t.Valid {
			continue
		}
		if d := internal.Dist2(p, t.Centroid); d < bestDist {
			best, bestDist = i, d
		}
	}
	return best
}
