package internal

import (
	"embed"
	"io"
	"log"
	"math"
	"strconv"
	"strings"

	"github.com/JoshVarga/svgparser"
	"github.com/pkg/errors"
)

// This reads an obstacle out of an SVG document. This is not a full (or even
// correct) svg reader. It finds the first <rect>, reads its geometry in unit
// square coordinates, and takes the angle from a rotate() transform if there is
// one. The rotation is always applied about the rectangle's center, whatever
// pivot the transform names.

func LoadObstacleSVG(r io.Reader) (Obstacle, error) {
	rootEl, err := svgparser.Parse(r, true)
	if err != nil {
		return Obstacle{}, errors.Wrap(err, "parse svg")
	}
	if rootEl == nil {
		return Obstacle{}, errors.New("empty svg document")
	}

	rects := rootEl.FindAll("rect")
	if len(rects) == 0 {
		return Obstacle{}, errors.New("no rect found")
	}
	rectEl := rects[0]

	var x, y, w, h float64
	for _, attr := range []struct {
		name string
		dest *float64
	}{
		{"x", &x},
		{"y", &y},
		{"width", &w},
		{"height", &h},
	} {
		raw, ok := rectEl.Attributes[attr.name]
		if !ok {
			// x and y default to zero in SVG, but a rect without a size is useless
			if attr.name == "width" || attr.name == "height" {
				return Obstacle{}, errors.Errorf("rect has no %s", attr.name)
			}
			continue
		}
		v, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
		if err != nil {
			return Obstacle{}, errors.Wrapf(err, "invalid %s %q", attr.name, raw)
		}
		*attr.dest = v
	}
	if w <= 0 || h <= 0 {
		return Obstacle{}, errors.Errorf("rect size must be positive, got %gx%g", w, h)
	}

	angle, err := parseRotate(rectEl.Attributes["transform"])
	if err != nil {
		return Obstacle{}, err
	}

	return Obstacle{
		CX:    x + w/2,
		CY:    y + h/2,
		W:     w,
		H:     h,
		Angle: NormalizeAngle(angle * math.Pi / 180),
	}, nil
}

// Pull the angle, in degrees, out of a transform attribute. Anything other than
// a single rotate() is rejected.
func parseRotate(transform string) (float64, error) {
	transform = strings.TrimSpace(transform)
	if transform == "" {
		return 0, nil
	}
	if !strings.HasPrefix(transform, "rotate(") || !strings.HasSuffix(transform, ")") {
		return 0, errors.Errorf("unsupported transform %q", transform)
	}
	args := strings.FieldsFunc(transform[len("rotate("):len(transform)-1], func(r rune) bool {
		return r == ',' || r == ' '
	})
	if len(args) != 1 && len(args) != 3 {
		return 0, errors.Errorf("rotate takes 1 or 3 arguments, got %q", transform)
	}
	angle, err := strconv.ParseFloat(args[0], 64)
	if err != nil {
		return 0, errors.Wrapf(err, "invalid rotate angle %q", args[0])
	}
	return angle, nil
}

// Obstacle fixtures are available by name in the fixtures/ directory, sans
// extension.

//go:embed fixtures
var fixtures embed.FS

func LoadObstacleFixture(name string) Obstacle {
	fixture, err := fixtures.Open("fixtures/" + name + ".svg")
	if err != nil {
		log.Fatalf("Could not load fixture %q: %v", name, err)
	}
	defer fixture.Close()

	obstacle, err := LoadObstacleSVG(fixture)
	if err != nil {
		log.Fatalf("Failed to parse fixture %q: %v", name, err)
	}
	return obstacle
}
