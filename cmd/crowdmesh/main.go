package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/osuushi/crowdmesh/advanced"
	"github.com/osuushi/crowdmesh/control"
	"github.com/osuushi/crowdmesh/render"
	"github.com/pkg/errors"
	"gopkg.in/alecthomas/kingpin.v2"
)

var (
	app = kingpin.New("crowdmesh", "Build a crowd density mesh, replay input events against it, and export the result.")

	configPath  = app.Flag("config", "YAML config file.").Short('c').ExistingFile()
	obstacleSVG = app.Flag("obstacle-svg", "Take the obstacle from the first <rect> of an SVG file.").ExistingFile()
	seed        = app.Flag("seed", "Random seed. Zero keeps the config value.").Int64()
	people      = app.Flag("people", "Number of people. Negative keeps the config value.").Default("-1").Int()
	points      = app.Flag("points", "Number of interior points. Negative keeps the config value.").Default("-1").Int()
	scriptPath  = app.Flag("script", "Input event script to replay, or - for stdin.").Short('s').String()

	pngPath     = app.Flag("png", "Write a PNG rendering.").String()
	svgPath     = app.Flag("svg", "Write an SVG rendering.").String()
	geojsonPath = app.Flag("geojson", "Write the scene as GeoJSON.").String()
	width       = app.Flag("width", "Output width in pixels.").Default("800").Int()
	height      = app.Flag("height", "Output height in pixels.").Default("600").Int()
	preview     = app.Flag("imgcat", "Print the PNG to the terminal (iTerm only).").Bool()
	showPoints  = app.Flag("show-points", "Draw the raw points.").Bool()
	noEdges     = app.Flag("no-edges", "Do not stroke triangle edges.").Bool()
)

func main() {
	kingpin.MustParse(app.Parse(os.Args[1:]))

	cfg, err := loadConfig()
	app.FatalIfError(err, "config")

	scene := advanced.NewScene(cfg)
	if *obstacleSVG != "" {
		obstacle, err := loadObstacle(*obstacleSVG)
		app.FatalIfError(err, "obstacle")
		scene.Obstacle = obstacle
	}
	scene.Reset()

	controller := control.NewController(scene, control.Viewport{
		Width:            float64(*width),
		Height:           float64(*height),
		DevicePixelRatio: 1,
	})
	controller.UI.ShowPoints = *showPoints
	controller.UI.ShowEdges = !*noEdges

	if *scriptPath != "" {
		app.FatalIfError(runScript(controller, *scriptPath), "script")
	}

	app.FatalIfError(export(controller), "export")
	fmt.Println(scene.Diagnostics().Colored())
}

func loadConfig() (advanced.Config, error) {
	cfg := advanced.DefaultConfig()
	if *configPath != "" {
		file, err := os.Open(*configPath)
		if err != nil {
			return cfg, err
		}
		defer file.Close()
		if cfg, err = advanced.LoadConfig(file); err != nil {
			return cfg, errors.Wrap(err, *configPath)
		}
	}
	if *seed != 0 {
		cfg.Seed = *seed
	}
	if *people >= 0 {
		cfg.People = *people
	}
	if *points >= 0 {
		cfg.InteriorPoints = *points
	}
	return cfg, cfg.Validate()
}

func loadObstacle(path string) (advanced.Obstacle, error) {
	file, err := os.Open(path)
	if err != nil {
		return advanced.Obstacle{}, err
	}
	defer file.Close()
	obstacle, err := advanced.LoadObstacleSVG(file)
	return obstacle, errors.Wrap(err, path)
}

func runScript(c *control.Controller, path string) error {
	var in io.Reader = os.Stdin
	if path != "-" {
		file, err := os.Open(path)
		if err != nil {
			return err
		}
		defer file.Close()
		in = file
	}
	return c.RunScript(in)
}

func export(c *control.Controller) error {
	png := *pngPath
	if png == "" && *preview {
		png = filepath.Join(os.TempDir(), "crowdmesh.png")
	}
	if png != "" {
		if err := render.SavePNG(png, c.Scene, c.UI, *width, *height); err != nil {
			return err
		}
		if *preview {
			render.Imgcat(png)
		}
	}

	if *svgPath != "" {
		file, err := os.Create(*svgPath)
		if err != nil {
			return err
		}
		render.WriteSVG(file, c.Scene, c.UI, float64(*width), float64(*height))
		if err := file.Close(); err != nil {
			return err
		}
	}

	if *geojsonPath != "" {
		data, err := render.FeatureCollection(c.Scene).MarshalJSON()
		if err != nil {
			return errors.Wrap(err, "encoding geojson")
		}
		if err := os.WriteFile(*geojsonPath, data, 0644); err != nil {
			return err
		}
	}
	return nil
}
