package render

import (
	"fmt"
	"io"

	svg "github.com/ajstarks/svgo/float"
	"github.com/osuushi/crowdmesh/advanced"
)

func svgFill(c advanced.Color) string {
	tc := triangleColor(c)
	return fmt.Sprintf("fill:rgba(%d,%d,%d,%v)", tc.R, tc.G, tc.B, triangleAlpha)
}

// Write the same picture DrawScene produces, as an SVG document.
func WriteSVG(w io.Writer, s *advanced.Scene, ui advanced.UIState, width, height float64) {
	canvas := svg.New(w)
	canvas.Start(width, height)
	canvas.Title(fmt.Sprintf("crowdmesh %s", s.ID))
	canvas.Rect(0, 0, width, height, "fill:white")

	canvas.Gid("triangles")
	edges := "stroke:none"
	if ui.ShowEdges {
		edges = fmt.Sprintf("stroke:%s;stroke-width:%v", edgeColor, edgeWidth)
	}
	for i := range s.Triangles {
		tri := &s.Triangles[i]
		if !tri.Valid {
			continue
		}
		a, b, c := s.TriangleVertices(tri)
		canvas.Polygon(
			[]float64{a.X * width, b.X * width, c.X * width},
			[]float64{a.Y * height, b.Y * height, c.Y * height},
			svgFill(tri.Color)+";"+edges,
		)
	}
	canvas.Gend()

	corners := s.Obstacle.Corners()
	xs := make([]float64, len(corners))
	ys := make([]float64, len(corners))
	for i, p := range corners {
		xs[i], ys[i] = p.X*width, p.Y*height
	}
	canvas.Polygon(xs, ys, fmt.Sprintf(
		"fill:rgba(%d,%d,%d,0.95);stroke:%s;stroke-width:%v",
		obstacleFill.R, obstacleFill.G, obstacleFill.B, obstacleEdge, obstacleWidth,
	))

	canvas.Gid("people")
	for i, p := range s.People {
		x, y := p.X*width, p.Y*height
		if ui.DraggingPerson && i == ui.SelectedPersonIndex {
			canvas.Circle(x, y, selectedRadius, fmt.Sprintf(
				"fill:%s;stroke:%s;stroke-width:%v", personColor, selectedEdge, selectedOutline,
			))
		} else {
			canvas.Circle(x, y, personRadius, "fill:"+personColor)
		}
	}
	canvas.Gend()

	if ui.ShowPoints {
		canvas.Gid("points")
		for _, p := range s.Points {
			canvas.Circle(p.X*width, p.Y*height, pointRadius, "fill:"+rawPointColor)
		}
		canvas.Gend()
	}
	canvas.End()
}
