// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package scene

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config is the render configuration shared by the softpipe commands,
// loadable from YAML. Zero fields take defaults from DefaultConfig.
type Config struct {
	// Width and Height are the display resolution.
	Width  int `yaml:"width"`
	Height int `yaml:"height"`

	// Supersample is the per-axis supersampling factor.
	Supersample int `yaml:"supersample"`

	// Mesh is an OBJ file path; empty renders the built-in cube.
	Mesh string `yaml:"mesh"`

	// Texture is an image file path for the diffuse texture; optional.
	Texture string `yaml:"texture"`

	// Camera framing.
	Distance  float64 `yaml:"distance"`
	Elevation float64 `yaml:"elevation"`
	FOV       float64 `yaml:"fov"`

	// Frames is the number of turntable frames to render (sprender only).
	Frames int `yaml:"frames"`

	// DebugBarycentric shades untextured pixels with barycentric weights.
	DebugBarycentric bool `yaml:"debug_barycentric"`
}

// DefaultConfig returns the configuration used when no file is given.
func DefaultConfig() Config {
	return Config{
		Width:       800,
		Height:      600,
		Supersample: 2,
		Distance:    3,
		Elevation:   1,
		FOV:         45,
		Frames:      60,
	}
}

// LoadConfig reads a YAML config file and fills unset fields with
// defaults.
func LoadConfig(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("scene: read config: %w", err)
	}

	cfg := Config{}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("scene: parse config %s: %w", path, err)
	}
	cfg.applyDefaults()
	if cfg.Width <= 0 || cfg.Height <= 0 {
		return Config{}, fmt.Errorf("scene: config %s: invalid resolution %dx%d", path, cfg.Width, cfg.Height)
	}
	return cfg, nil
}

// applyDefaults fills zero fields from DefaultConfig.
func (c *Config) applyDefaults() {
	d := DefaultConfig()
	if c.Width == 0 {
		c.Width = d.Width
	}
	if c.Height == 0 {
		c.Height = d.Height
	}
	if c.Supersample == 0 {
		c.Supersample = d.Supersample
	}
	if c.Distance == 0 {
		c.Distance = d.Distance
	}
	if c.Elevation == 0 {
		c.Elevation = d.Elevation
	}
	if c.FOV == 0 {
		c.FOV = d.FOV
	}
	if c.Frames == 0 {
		c.Frames = d.Frames
	}
}

// Camera builds the turntable camera described by the config.
func (c Config) Camera() Turntable {
	t := NewTurntable(float64(c.Width) / float64(c.Height))
	t.Distance = c.Distance
	t.Elevation = c.Elevation
	t.FOV = c.FOV
	return t
}
