package advanced

import "github.com/osuushi/crowdmesh/internal"

// Replace the people with n new ones, each placed uniformly at random inside a
// uniformly chosen valid triangle, then assign and recolor. With no valid
// triangles the scene is left with no people.
func (s *Scene) GeneratePeople(n int) {
	s.People = nil

	var valid []int
	for i := range s.Triangles {
		if s.Triangles[i].Valid {
			valid = append(valid, i)
		}
	}
	if len(valid) == 0 {
		return
	}

	s.People = make([]*Person, 0, n)
	for i := 0; i < n; i++ {
		t := &s.Triangles[valid[s.Rand.Intn(len(valid))]]
		a, b, c := s.TriangleVertices(t)
		p := internal.SampleTriangle(a, b, c, s.Rand.Float64(), s.Rand.Float64())
		s.People = append(s.People, &Person{X: p.X, Y: p.Y, TriIndex: -1})
	}

	s.AssignPeopleToTriangles()
	s.UpdateTriangleColors()
}
