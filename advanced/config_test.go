package advanced

import (
	"math"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()
	require.NoError(t, cfg.Validate())
	assert.Equal(t, 4, cfg.TargetCapacity)
	assert.Equal(t, 5, cfg.InteriorPoints)
	assert.Equal(t, 50, cfg.People)

	o := cfg.Obstacle.Obstacle()
	assert.Equal(t, 0.5, o.CX)
	assert.Equal(t, 0.5, o.CY)
	assert.Equal(t, 0.28, o.W)
	assert.Equal(t, 0.18, o.H)
	assert.InDelta(t, -25*math.Pi/180, o.Angle, 1e-12)
}

func TestLoadConfig(t *testing.T) {
	t.Run("partial file keeps defaults", func(t *testing.T) {
		cfg, err := LoadConfig(strings.NewReader(`
target_capacity: 6
people: 120
obstacle:
  angle_degrees: 90
`))
		require.NoError(t, err)
		assert.Equal(t, 6, cfg.TargetCapacity)
		assert.Equal(t, 120, cfg.People)
		assert.Equal(t, 5, cfg.InteriorPoints)
		assert.Equal(t, 0.28, cfg.Obstacle.W)
		assert.InDelta(t, math.Pi/2, cfg.Obstacle.Obstacle().Angle, 1e-12)
	})

	t.Run("empty file", func(t *testing.T) {
		cfg, err := LoadConfig(strings.NewReader(""))
		require.NoError(t, err)
		assert.Equal(t, DefaultConfig(), cfg)
	})

	t.Run("invalid values", func(t *testing.T) {
		for name, doc := range map[string]string{
			"negative people":   "people: -1",
			"negative points":   "interior_points: -3",
			"flat obstacle":     "obstacle: {h: 0}",
			"scale step of one": "scale_step: 1",
			"negative jitter":   "fallback_jitter: -0.1",
			"negative target":   "target_capacity: -2",
			"not yaml":          "people: [",
		} {
			doc := doc
			t.Run(name, func(t *testing.T) {
				_, err := LoadConfig(strings.NewReader(doc))
				assert.Error(t, err)
			})
		}
	})
}
