// Package control turns pointer and keyboard input into scene mutations. It is
// the headless counterpart of a canvas event loop: screen coordinates come in,
// the scene is mutated and rebuilt, and the caller redraws.
package control

import (
	"math"
	"strings"

	"github.com/osuushi/crowdmesh/advanced"
	"github.com/osuushi/crowdmesh/internal"
)

// Screen-space radius, in CSS pixels before device pixel scaling, within
// which a click grabs a person.
const PersonHitRadius = 12

// Dragged people are kept this far inside the domain.
const personMargin = 0.01

// The on-screen rectangle the unit square is drawn into, in CSS pixels.
type Viewport struct {
	Left, Top        float64
	Width, Height    float64
	DevicePixelRatio float64
}

func (v Viewport) dpr() float64 {
	if v.DevicePixelRatio <= 0 {
		return 1
	}
	return v.DevicePixelRatio
}

// Screen position to domain coordinates.
func (v Viewport) ToDomain(sx, sy float64) advanced.Point {
	return advanced.Point{X: (sx - v.Left) / v.Width, Y: (sy - v.Top) / v.Height}
}

// Domain coordinates to screen position.
func (v Viewport) ToScreen(p advanced.Point) (sx, sy float64) {
	return v.Left + p.X*v.Width, v.Top + p.Y*v.Height
}

type DragMode int

const (
	DragMove DragMode = iota
	DragRotate
)

type obstacleDrag struct {
	dragging bool
	selected bool
	mode     DragMode
	// Last pointer position, in screen coordinates, for rotation deltas.
	lastX, lastY float64
}

// Controller owns a scene and the UI state that goes with it. All methods run
// to completion synchronously; there is no concurrency.
type Controller struct {
	Scene    *advanced.Scene
	UI       advanced.UIState
	Viewport Viewport

	obstacle     obstacleDrag
	personOffset advanced.Point
}

func NewController(scene *advanced.Scene, viewport Viewport) *Controller {
	return &Controller{
		Scene:    scene,
		UI:       advanced.DefaultUIState(),
		Viewport: viewport,
	}
}

// Index of the person nearest the screen position within the hit radius, or -1.
func (c *Controller) HitPerson(sx, sy float64) int {
	radius := PersonHitRadius * c.Viewport.dpr()
	hit, hitDist := -1, math.Inf(1)
	for i, p := range c.Scene.People {
		px, py := c.Viewport.ToScreen(p.Point())
		dx, dy := sx-px, sy-py
		d2 := dx*dx + dy*dy
		if d2 < radius*radius && d2 < hitDist {
			hit, hitDist = i, d2
		}
	}
	return hit
}

func (c *Controller) HitObstacle(sx, sy float64) bool {
	return c.Scene.Obstacle.Contains(c.Viewport.ToDomain(sx, sy))
}

// People take priority over the obstacle. Holding shift on the obstacle starts
// a rotation instead of a move.
func (c *Controller) MouseDown(sx, sy float64, shift bool) {
	if hit := c.HitPerson(sx, sy); hit >= 0 {
		c.UI.DraggingPerson = true
		c.UI.SelectedPersonIndex = hit
		c.obstacle.dragging = false
		c.obstacle.selected = false
		c.personOffset = c.Viewport.ToDomain(sx, sy).Sub(c.Scene.People[hit].Point())
		return
	}

	if c.HitObstacle(sx, sy) {
		c.obstacle.selected = true
		c.obstacle.dragging = true
		c.obstacle.lastX, c.obstacle.lastY = sx, sy
		c.obstacle.mode = DragMove
		if shift {
			c.obstacle.mode = DragRotate
		}
	} else {
		c.obstacle.selected = false
	}
}

// Dragging a person only moves it; occupancy catches up on release. Dragging
// the obstacle rebuilds on every move.
func (c *Controller) MouseMove(sx, sy float64, shift bool) {
	if c.UI.DraggingPerson && c.UI.SelectedPersonIndex >= 0 {
		pos := c.Viewport.ToDomain(sx, sy)
		person := c.Scene.People[c.UI.SelectedPersonIndex]
		person.X = internal.Clamp(pos.X-c.personOffset.X, personMargin, 1-personMargin)
		person.Y = internal.Clamp(pos.Y-c.personOffset.Y, personMargin, 1-personMargin)
		return
	}

	if !c.obstacle.dragging || !c.obstacle.selected {
		return
	}
	pos := c.Viewport.ToDomain(sx, sy)
	o := &c.Scene.Obstacle

	if shift || c.obstacle.mode == DragRotate {
		prev := c.Viewport.ToDomain(c.obstacle.lastX, c.obstacle.lastY)
		from := math.Atan2(prev.Y-o.CY, prev.X-o.CX)
		to := math.Atan2(pos.Y-o.CY, pos.X-o.CX)
		c.obstacle.lastX, c.obstacle.lastY = sx, sy
		c.Scene.RotateObstacle(internal.AngleDelta(from, to))
		return
	}
	c.Scene.MoveObstacle(pos)
}

func (c *Controller) MouseUp() {
	if c.UI.DraggingPerson {
		c.UI.DraggingPerson = false
		c.Scene.AssignPeopleToTriangles()
		c.Scene.UpdateTriangleColors()
		c.UI.SelectedPersonIndex = -1
	}
	c.obstacle.dragging = false
}

// Positive deltaY (scrolling down) shrinks the obstacle.
func (c *Controller) Wheel(deltaY float64) {
	c.Scene.ScaleObstacle(deltaY <= 0)
}

// Keyboard shortcuts. Reports whether the key was recognized.
func (c *Controller) Key(key string) bool {
	switch strings.ToLower(key) {
	case "r":
		c.Scene.RotateObstacle(c.Scene.RotateStep())
	case "+", "=":
		c.Scene.ScaleObstacle(true)
	case "-":
		c.Scene.ScaleObstacle(false)
	case "c":
		c.UI.ShowEdges = !c.UI.ShowEdges
	case "p":
		c.UI.ShowPoints = !c.UI.ShowPoints
	default:
		return false
	}
	return true
}

// Fresh points, triangulation and people.
func (c *Controller) Regenerate() {
	c.UI.DraggingPerson = false
	c.UI.SelectedPersonIndex = -1
	c.Scene.Reset()
}

func (c *Controller) CenterObstacle() {
	c.Scene.CenterObstacle()
}

func (c *Controller) ObstacleSelected() bool {
	return c.obstacle.selected
}

func (c *Controller) DraggingObstacle() bool {
	return c.obstacle.dragging
}
