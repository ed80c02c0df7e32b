package advanced

import "math"

var (
	InvalidColor = Color{0.95, 0.95, 0.95}
	TargetColor  = Color{0.1, 1.0, 0.1}
)

// The density color of a triangle. Invalid triangles are light grey whatever
// their count. Valid ones are green at exactly the target, and otherwise fade
// from a light tint toward saturated red (over) or blue (under) as the count
// moves away from the target, saturating one full target away.
func DensityColor(valid bool, count, target int) Color {
	if !valid {
		return InvalidColor
	}
	if count == target {
		return TargetColor
	}

	factor := math.Min(1, math.Abs(float64(count-target))/math.Max(1, float64(target)))
	fade := 0.6 - factor*0.5
	if count > target {
		return Color{1.0, fade, fade}
	}
	return Color{fade, fade, 1.0}
}

// Recompute every triangle's color from its validity and count.
func (s *Scene) UpdateTriangleColors() {
	for i := range s.Triangles {
		t := &s.Triangles[i]
		t.Color = DensityColor(t.Valid, t.PeopleCount, s.Config.TargetCapacity)
	}
}
