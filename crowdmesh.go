// Crowd density over a Delaunay mesh.
//
// This package triangulates the unit square around a movable rectangular
// obstacle, scatters people over the triangles that remain, and colors each
// triangle by how its occupancy compares with a target capacity. The advanced
// package exposes the individual pipeline steps; this one builds a ready scene.
package crowdmesh

import (
	"io"

	"github.com/osuushi/crowdmesh/advanced"
)

type Point = advanced.Point
type Obstacle = advanced.Obstacle
type Triangle = advanced.Triangle
type Person = advanced.Person
type Scene = advanced.Scene
type Config = advanced.Config
type UIState = advanced.UIState

func DefaultConfig() Config {
	return advanced.DefaultConfig()
}

func LoadConfig(r io.Reader) (Config, error) {
	return advanced.LoadConfig(r)
}

// Build a complete scene: points, triangulation and people.
//
// A triangulator failure is not an error here. It is logged to the scene's
// logger and leaves the scene without triangles, and so without people.
func New(cfg Config) (scene *Scene, err error) {
	defer func() {
		recoveredErr := advanced.HandleTriangulatePanicRecover(recover())
		if recoveredErr != nil {
			scene = nil
			err = recoveredErr
		}
	}()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	scene = advanced.NewScene(cfg)
	scene.Reset()
	return scene, nil
}
