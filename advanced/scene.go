package advanced

import (
	"log"
	"math/rand"
	"os"
	"time"

	"github.com/google/uuid"
)

// Scene is the whole simulation state: the point set, the triangulation built
// from it, the people standing on it and the obstacle cutting through it.
//
// Nothing is recomputed implicitly. After mutating the obstacle or a person,
// the caller must invoke BuildTriangulation (or AssignPeopleToTriangles and
// UpdateTriangleColors) to bring the derived state back in line. A Scene is
// not safe for concurrent use.
type Scene struct {
	// Changes every time the point set is regenerated.
	ID string

	// Domain corners, then interior points, then the four obstacle corners.
	// BuildTriangulation relies on the obstacle corners being last.
	Points    []Point
	Triangles []Triangle
	People    []*Person
	Obstacle  Obstacle

	Config Config
	Rand   *rand.Rand
	Logger *log.Logger
}

func NewScene(cfg Config) *Scene {
	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return &Scene{
		ID:       newSceneID(),
		Obstacle: cfg.Obstacle.Obstacle(),
		Config:   cfg,
		Rand:     rand.New(rand.NewSource(seed)),
		Logger:   log.New(os.Stderr, "crowdmesh: ", log.LstdFlags),
	}
}

func newSceneID() string {
	return uuid.New().String()
}

// Generate points, triangulate, and populate, using the configured counts.
func (s *Scene) Reset() {
	s.GeneratePoints(s.Config.InteriorPoints)
	s.BuildTriangulation()
	s.GeneratePeople(s.Config.People)
}

// The vertices of a triangle, by value.
func (s *Scene) TriangleVertices(t *Triangle) (a, b, c Point) {
	return s.Points[t.Indices[0]], s.Points[t.Indices[1]], s.Points[t.Indices[2]]
}

func (s *Scene) ValidTriangleCount() int {
	n := 0
	for i := range s.Triangles {
		if s.Triangles[i].Valid {
			n++
		}
	}
	return n
}
