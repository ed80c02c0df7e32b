// Package render draws a scene. Everything here reads the scene and never
// mutates it.
package render

import (
	"image/color"
	"io"
	"math"
	"os"

	"github.com/fogleman/gg"
	imgcat "github.com/martinlindhe/imgcat/lib"
	"github.com/osuushi/crowdmesh/advanced"
	"github.com/pkg/errors"
)

const (
	triangleAlpha   = 0.7
	edgeWidth       = 1.5
	obstacleWidth   = 2.5
	personRadius    = 5
	selectedRadius  = 7
	selectedOutline = 2
	pointRadius     = 2

	edgeColor     = "#111"
	obstacleEdge  = "#333"
	personColor   = "#000"
	selectedEdge  = "#fff"
	rawPointColor = "#444"
)

var (
	background   = color.RGBA{0xff, 0xff, 0xff, 0xff}
	obstacleFill = color.NRGBA{100, 100, 100, 242}
)

// Channel value the way a canvas fill style string would truncate it.
func channel(c float64) uint8 {
	return uint8(math.Floor(math.Max(0, math.Min(1, c)) * 255))
}

func triangleColor(c advanced.Color) color.NRGBA {
	return color.NRGBA{channel(c[0]), channel(c[1]), channel(c[2]), channel(triangleAlpha)}
}

// Draw the scene onto a context, stretching the unit square over the whole
// canvas.
func DrawScene(c *gg.Context, s *advanced.Scene, ui advanced.UIState) {
	w, h := float64(c.Width()), float64(c.Height())
	toPixel := func(p advanced.Point) (float64, float64) {
		return p.X * w, p.Y * h
	}

	c.SetColor(background)
	c.DrawRectangle(0, 0, w, h)
	c.Fill()

	for i := range s.Triangles {
		tri := &s.Triangles[i]
		if !tri.Valid {
			continue
		}
		a, b, d := s.TriangleVertices(tri)
		c.MoveTo(toPixel(a))
		c.LineTo(toPixel(b))
		c.LineTo(toPixel(d))
		c.ClosePath()
		c.SetColor(triangleColor(tri.Color))
		if ui.ShowEdges {
			c.FillPreserve()
			c.SetHexColor(edgeColor)
			c.SetLineWidth(edgeWidth)
			c.Stroke()
		} else {
			c.Fill()
		}
	}

	corners := s.Obstacle.Corners()
	for i, p := range corners {
		if i == 0 {
			c.MoveTo(toPixel(p))
		} else {
			c.LineTo(toPixel(p))
		}
	}
	c.ClosePath()
	c.SetColor(obstacleFill)
	c.FillPreserve()
	c.SetHexColor(obstacleEdge)
	c.SetLineWidth(obstacleWidth)
	c.Stroke()

	for i, p := range s.People {
		x, y := toPixel(p.Point())
		if ui.DraggingPerson && i == ui.SelectedPersonIndex {
			c.DrawCircle(x, y, selectedRadius)
			c.SetHexColor(personColor)
			c.FillPreserve()
			c.SetHexColor(selectedEdge)
			c.SetLineWidth(selectedOutline)
			c.Stroke()
		} else {
			c.DrawCircle(x, y, personRadius)
			c.SetHexColor(personColor)
			c.Fill()
		}
	}

	if ui.ShowPoints {
		c.SetHexColor(rawPointColor)
		for _, p := range s.Points {
			x, y := toPixel(p)
			c.DrawCircle(x, y, pointRadius)
			c.Fill()
		}
	}
}

func NewContext(s *advanced.Scene, ui advanced.UIState, width, height int) *gg.Context {
	c := gg.NewContext(width, height)
	DrawScene(c, s, ui)
	return c
}

func WritePNG(w io.Writer, s *advanced.Scene, ui advanced.UIState, width, height int) error {
	return errors.Wrap(NewContext(s, ui, width, height).EncodePNG(w), "encoding png")
}

func SavePNG(path string, s *advanced.Scene, ui advanced.UIState, width, height int) error {
	return errors.Wrapf(NewContext(s, ui, width, height).SavePNG(path), "saving %s", path)
}

// Print a PNG to the terminal (iTerm only).
func Imgcat(path string) {
	imgcat.CatFile(path, os.Stdout)
}
