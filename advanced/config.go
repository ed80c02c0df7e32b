package advanced

import (
	"io"
	"math"

	"github.com/osuushi/crowdmesh/internal"
	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

// Config holds every tunable of a scene. The zero value is not useful; start
// from DefaultConfig.
type Config struct {
	// Occupancy at which a triangle is considered exactly full.
	TargetCapacity int `yaml:"target_capacity"`
	// Random points added between the domain corners and the obstacle corners.
	InteriorPoints int `yaml:"interior_points"`
	People         int `yaml:"people"`
	// Seed for the scene's random source. Zero picks a time based seed.
	Seed int64 `yaml:"seed"`
	// Half width of the box a person is jittered within when it gets snapped to
	// the nearest centroid.
	FallbackJitter float64 `yaml:"fallback_jitter"`
	// Relative size change per wheel tick or key press.
	ScaleStep float64 `yaml:"scale_step"`
	// Rotation per key press.
	RotateStepDegrees float64        `yaml:"rotate_step_degrees"`
	Obstacle          ObstacleConfig `yaml:"obstacle"`
}

// The obstacle as written in config files, with the angle in degrees.
type ObstacleConfig struct {
	CX           float64 `yaml:"cx"`
	CY           float64 `yaml:"cy"`
	W            float64 `yaml:"w"`
	H            float64 `yaml:"h"`
	AngleDegrees float64 `yaml:"angle_degrees"`
}

func (oc ObstacleConfig) Obstacle() Obstacle {
	return Obstacle{
		CX:    oc.CX,
		CY:    oc.CY,
		W:     oc.W,
		H:     oc.H,
		Angle: internal.NormalizeAngle(oc.AngleDegrees * math.Pi / 180),
	}
}

func DefaultConfig() Config {
	return Config{
		TargetCapacity:    4,
		InteriorPoints:    5,
		People:            50,
		FallbackJitter:    0.004,
		ScaleStep:         0.05,
		RotateStepDegrees: 15,
		Obstacle: ObstacleConfig{
			CX:           0.5,
			CY:           0.5,
			W:            0.28,
			H:            0.18,
			AngleDegrees: -25,
		},
	}
}

// Decode a YAML config on top of the defaults. Keys that are absent keep their
// default values.
func LoadConfig(r io.Reader) (Config, error) {
	cfg := DefaultConfig()
	if err := yaml.NewDecoder(r).Decode(&cfg); err != nil && err != io.EOF {
		return Config{}, errors.Wrap(err, "decode config")
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (cfg Config) Validate() error {
	if cfg.TargetCapacity < 0 {
		return errors.Errorf("target_capacity must not be negative, got %d", cfg.TargetCapacity)
	}
	if cfg.InteriorPoints < 0 {
		return errors.Errorf("interior_points must not be negative, got %d", cfg.InteriorPoints)
	}
	if cfg.People < 0 {
		return errors.Errorf("people must not be negative, got %d", cfg.People)
	}
	if cfg.FallbackJitter < 0 {
		return errors.Errorf("fallback_jitter must not be negative, got %g", cfg.FallbackJitter)
	}
	if cfg.ScaleStep <= 0 || cfg.ScaleStep >= 1 {
		return errors.Errorf("scale_step must be in (0, 1), got %g", cfg.ScaleStep)
	}
	if cfg.Obstacle.W <= 0 || cfg.Obstacle.H <= 0 {
		return errors.Errorf("obstacle size must be positive, got %gx%g", cfg.Obstacle.W, cfg.Obstacle.H)
	}
	return nil
}
