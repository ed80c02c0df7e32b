package control

import (
	"math"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRunScript(t *testing.T) {
	c := newTestController(t)
	start := c.Scene.Obstacle

	script := `
# drag the obstacle up and to the left
down 400 300
move 240 180
up

# then spin it a quarter turn about its new center
down 280 180 shift
move 240 210
up

wheel 1
key c
key P
center
`
	require.NoError(t, c.RunScript(strings.NewReader(script)))

	o := c.Scene.Obstacle
	assert.Equal(t, 0.5, o.CX)
	assert.Equal(t, 0.5, o.CY)
	assert.InDelta(t, start.Angle+math.Pi/2, o.Angle, 1e-9)
	assert.InDelta(t, start.W*0.95, o.W, 1e-12)
	assert.False(t, c.UI.ShowEdges)
	assert.True(t, c.UI.ShowPoints)
	assertObstacleCornersAreLast(t, c.Scene)
}

func TestRunScript_Regen(t *testing.T) {
	c := newTestController(t)
	id := c.Scene.ID
	require.NoError(t, c.RunScript(strings.NewReader("regen\n")))
	assert.NotEqual(t, id, c.Scene.ID)
	assert.Len(t, c.Scene.People, c.Scene.Config.People)
}

func TestRunScript_Errors(t *testing.T) {
	cases := map[string]string{
		"unknown command":    "wheel 1\njump 1 2",
		"missing y":          "key r\ndown 1",
		"bad x":              "up\nmove x 1",
		"bad modifier":       "up\ndown 1 2 ctrl",
		"bad wheel":          "up\nwheel down",
		"unbound key":        "up\nkey q",
		"arguments to up":    "center\nup now",
		"too many to key":    "# comment\nkey r c",
		"arguments to regen": "\nregen 3",
	}
	for name, script := range cases {
		script := script
		t.Run(name, func(t *testing.T) {
			c := newTestController(t)
			err := c.RunScript(strings.NewReader(script))
			require.Error(t, err)
			assert.Contains(t, err.Error(), "line 2")
		})
	}
}
