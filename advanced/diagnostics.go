package advanced

import (
	"fmt"

	"github.com/logrusorgru/aurora"
)

type Diagnostics struct {
	Triangles int
	Valid     int
	Points    int
	People    int
}

func (s *Scene) Diagnostics() Diagnostics {
	return Diagnostics{
		Triangles: len(s.Triangles),
		Valid:     s.ValidTriangleCount(),
		Points:    len(s.Points),
		People:    len(s.People),
	}
}

func (d Diagnostics) String() string {
	return fmt.Sprintf("tri: %d (valid %d) pts: %d ppl: %d", d.Triangles, d.Valid, d.Points, d.People)
}

// Same as String, for a terminal. Zero valid triangles shows in red.
func (d Diagnostics) Colored() string {
	valid := aurora.Green(d.Valid)
	if d.Valid == 0 {
		valid = aurora.Red(d.Valid)
	}
	return fmt.Sprintf("tri: %d (valid %d) pts: %d ppl: %d",
		aurora.Bold(d.Triangles), valid, aurora.Bold(d.Points), aurora.Cyan(d.People))
}

// Occupancy histogram of valid triangles, keyed by people count.
func (s *Scene) OccupancyHistogram() map[int]int {
	hist := make(map[int]int)
	for i := range s.Triangles {
		if s.Triangles[i].Valid {
			hist[s.Triangles[i].PeopleCount]++
		}
	}
	return hist
}
