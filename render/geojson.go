package render

import (
	"github.com/osuushi/crowdmesh/advanced"
	"github.com/osuushi/crowdmesh/dbg"
	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geojson"
)

func ring(points ...advanced.Point) orb.Ring {
	r := make(orb.Ring, 0, len(points)+1)
	for _, p := range points {
		r = append(r, orb.Point{p.X, p.Y})
	}
	// GeoJSON rings are closed
	return append(r, r[0])
}

// The scene in domain coordinates: a polygon per triangle, the obstacle, and
// a point per person. The scene id is carried as a foreign member.
func FeatureCollection(s *advanced.Scene) *geojson.FeatureCollection {
	fc := geojson.NewFeatureCollection()
	fc.ExtraMembers = geojson.Properties{"scene": s.ID}

	for i := range s.Triangles {
		tri := &s.Triangles[i]
		a, b, c := s.TriangleVertices(tri)
		feature := geojson.NewFeature(orb.Polygon{ring(a, b, c)})
		feature.Properties = geojson.Properties{
			"kind":   "triangle",
			"index":  i,
			"valid":  tri.Valid,
			"people": tri.PeopleCount,
			"color":  []float64{tri.Color[0], tri.Color[1], tri.Color[2]},
		}
		fc.Append(feature)
	}

	corners := s.Obstacle.Corners()
	obstacle := geojson.NewFeature(orb.Polygon{ring(corners[:]...)})
	obstacle.Properties = geojson.Properties{
		"kind":  "obstacle",
		"angle": s.Obstacle.Angle,
	}
	fc.Append(obstacle)

	for _, p := range s.People {
		feature := geojson.NewFeature(orb.Point{p.X, p.Y})
		feature.Properties = geojson.Properties{
			"kind":     "person",
			"triangle": p.TriIndex,
			"name":     dbg.Name(p),
		}
		fc.Append(feature)
	}
	return fc
}
