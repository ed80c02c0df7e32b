package internal

import (
	"math"
	"os"

	"github.com/fogleman/gg"
	imgcat "github.com/martinlindhe/imgcat/lib"
	"github.com/osuushi/crowdmesh/dbg"
)

// Padding around the hull so edge strokes aren't clipped
const dbgDrawPadding = 20

// Helper to draw a triangulation and print it in the terminal (iTerm only) for
// debugging.
func dbgDrawTriangulation(points []Point, triangles []TriangleIndices, scale float64) {
	c := drawTriangulation(points, triangles, scale)
	c.SavePNG("/tmp/triangulation.png")
	imgcat.CatFile("/tmp/triangulation.png", os.Stdout)
}

func drawTriangulation(points []Point, triangles []TriangleIndices, scale float64) *gg.Context {
	var minX, minY, maxX, maxY float64
	minX = math.Inf(1)
	minY = math.Inf(1)
	maxX = math.Inf(-1)
	maxY = math.Inf(-1)
	for _, p := range points {
		minX = math.Min(minX, p.X)
		minY = math.Min(minY, p.Y)
		maxX = math.Max(maxX, p.X)
		maxY = math.Max(maxY, p.Y)
	}
	if len(points) == 0 {
		minX, minY, maxX, maxY = 0, 0, 0, 0
	}

	width := int(scale*(maxX-minX)) + dbgDrawPadding*2
	height := int(scale*(maxY-minY)) + dbgDrawPadding*2
	c := gg.NewContext(width, height)
	c.SetRGB(0, 0, 0)
	c.DrawRectangle(0, 0, float64(width), float64(height))
	c.Fill()

	// Points are already y-down, so unlike a math plot there's no flip
	c.Push()
	c.Translate(dbgDrawPadding, dbgDrawPadding)
	c.Scale(scale, scale)
	c.Translate(-minX, -minY)

	for _, tri := range triangles {
		a, b, d := points[tri[0]], points[tri[1]], points[tri[2]]
		c.MoveTo(a.X, a.Y)
		c.LineTo(b.X, b.Y)
		c.LineTo(d.X, d.Y)
		c.ClosePath()
	}
	c.SetRGBA(0.3, 0.2, 1, 0.5)
	c.FillPreserve()
	// The path survives the pop, already in device space. Labels need the
	// identity matrix.
	c.Pop()
	c.SetRGB(0, 1, 0)
	c.SetLineWidth(1)
	c.Stroke()

	c.SetRGB(1, 1, 1)
	for i := range triangles {
		tri := &triangles[i]
		center := Centroid(points[tri[0]], points[tri[1]], points[tri[2]])
		x := dbgDrawPadding + scale*(center.X-minX)
		y := dbgDrawPadding + scale*(center.Y-minY)
		c.DrawStringAnchored(dbg.Name(tri), x, y, 0.5, 0.5)
	}
	return c
}
