package config

import (
	"errors"
	"fmt"
	"math"
	"os"

	"gopkg.in/yaml.v3"

	"rodrigues/rotation"
)

var ErrInvalidConfig = errors.New("invalid config")

// Palettes lists the color palettes the viewer knows.
var Palettes = []string{"classic", "ocean", "ember", "spectrum"}

// Config holds the viewer settings.
type Config struct {
	Axis     []float64 `yaml:"axis"`
	Speed    float64   `yaml:"speed"`     // radians per frame
	ViewTilt float64   `yaml:"view_tilt"` // radians about X
	Style    int       `yaml:"style"`
	Palette  string    `yaml:"palette"`
	Samples  int       `yaml:"samples"` // points per cube edge
	FrameMs  int       `yaml:"frame_ms"`
}

func Default() *Config {
	return &Config{
		Axis:     []float64{1, 1, 0},
		Speed:    0.03,
		ViewTilt: 0.45,
		Style:    2,
		Palette:  "classic",
		Samples:  10,
		FrameMs:  40,
	}
}

// Load reads a YAML file over the defaults, so omitted keys keep their
// default values, then validates the result.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("error reading config file: %w", err)
	}

	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("error parsing config file: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// AxisVector returns the configured axis. Call Validate first.
func (c *Config) AxisVector() rotation.Vector3 {
	if len(c.Axis) != 3 {
		return rotation.Vector3{}
	}
	return rotation.Vector3{X: c.Axis[0], Y: c.Axis[1], Z: c.Axis[2]}
}

func (c *Config) Validate() error {
	if len(c.Axis) != 3 {
		return fmt.Errorf("%w: axis needs 3 components, got %d", ErrInvalidConfig, len(c.Axis))
	}
	n := c.AxisVector().Norm()
	if n == 0 || math.IsNaN(n) || math.IsInf(n, 0) {
		return fmt.Errorf("%w: axis %v must be non-zero and finite", ErrInvalidConfig, c.Axis)
	}
	if math.IsNaN(c.Speed) || math.Abs(c.Speed) > math.Pi {
		return fmt.Errorf("%w: speed %g out of range [-π, π]", ErrInvalidConfig, c.Speed)
	}
	if math.IsNaN(c.ViewTilt) || math.IsInf(c.ViewTilt, 0) {
		return fmt.Errorf("%w: view_tilt must be finite", ErrInvalidConfig)
	}
	if c.Style < 0 {
		return fmt.Errorf("%w: style %d is negative", ErrInvalidConfig, c.Style)
	}
	if !knownPalette(c.Palette) {
		return fmt.Errorf("%w: unknown palette %q", ErrInvalidConfig, c.Palette)
	}
	if c.Samples < 2 || c.Samples > 64 {
		return fmt.Errorf("%w: samples %d out of range [2, 64]", ErrInvalidConfig, c.Samples)
	}
	if c.FrameMs < 10 || c.FrameMs > 1000 {
		return fmt.Errorf("%w: frame_ms %d out of range [10, 1000]", ErrInvalidConfig, c.FrameMs)
	}
	return nil
}

func knownPalette(name string) bool {
	for _, p := range Palettes {
		if p == name {
			return true
		}
	}
	return false
}
