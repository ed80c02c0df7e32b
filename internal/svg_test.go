package internal

import (
	"math"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadObstacleFixture(t *testing.T) {
	t.Run("default", func(t *testing.T) {
		o := LoadObstacleFixture("default")
		assert.InDelta(t, 0.5, o.CX, Tolerance)
		assert.InDelta(t, 0.5, o.CY, Tolerance)
		assert.InDelta(t, 0.28, o.W, Tolerance)
		assert.InDelta(t, 0.18, o.H, Tolerance)
		assert.InDelta(t, -25*math.Pi/180, o.Angle, Tolerance)
	})

	t.Run("axis aligned", func(t *testing.T) {
		o := LoadObstacleFixture("axis_aligned")
		assert.InDelta(t, 0.5, o.CX, Tolerance)
		assert.InDelta(t, 0.5, o.CY, Tolerance)
		assert.Equal(t, 0.0, o.Angle)
	})

	t.Run("pivot is ignored", func(t *testing.T) {
		o := LoadObstacleFixture("corner")
		assert.InDelta(t, 0.8, o.CX, Tolerance)
		assert.InDelta(t, 0.8, o.CY, Tolerance)
		assert.InDelta(t, math.Pi/4, o.Angle, Tolerance)
	})
}

func TestLoadObstacleSVG_Errors(t *testing.T) {
	cases := map[string]string{
		"no rect":        `<svg xmlns="http://www.w3.org/2000/svg"><circle cx="1" cy="1" r="1"/></svg>`,
		"bad width":      `<svg xmlns="http://www.w3.org/2000/svg"><rect x="0" y="0" width="wide" height="0.1"/></svg>`,
		"zero height":    `<svg xmlns="http://www.w3.org/2000/svg"><rect x="0" y="0" width="0.1" height="0"/></svg>`,
		"skew transform": `<svg xmlns="http://www.w3.org/2000/svg"><rect x="0" y="0" width="0.1" height="0.1" transform="skewX(10)"/></svg>`,
		"not svg":        `this is not xml`,
	}
	for name, doc := range cases {
		doc := doc
		t.Run(name, func(t *testing.T) {
			_, err := LoadObstacleSVG(strings.NewReader(doc))
			assert.Error(t, err)
		})
	}
}

func TestParseRotate(t *testing.T) {
	angle, err := parseRotate("")
	require.NoError(t, err)
	assert.Equal(t, 0.0, angle)

	angle, err = parseRotate("rotate(30)")
	require.NoError(t, err)
	assert.Equal(t, 30.0, angle)

	angle, err = parseRotate("rotate(-12.5, 1, 2)")
	require.NoError(t, err)
	assert.Equal(t, -12.5, angle)

	_, err = parseRotate("rotate(1 2)")
	assert.Error(t, err)
}
