// Package config loads settings for the voxel tools.
package config

import (
	"fmt"

	"mini-voxel/internal/meshing"
	"mini-voxel/internal/world"
)

const (
	MinRadius = 0
	MaxRadius = 16
	MinHeight = 1
	MaxHeight = 8
)

// Config holds every setting.
type Config struct {
	World    WorldConfig    `yaml:"world"`
	Pipeline PipelineConfig `yaml:"pipeline"`
	Export   ExportConfig   `yaml:"export"`
	View     ViewConfig     `yaml:"view"`
	Logging  LoggingConfig  `yaml:"logging"`
}

// WorldConfig selects the terrain.
type WorldConfig struct {
	Seed      int64   `yaml:"seed"`
	Noise     string  `yaml:"noise"` // "worley" or "value"
	Threshold float64 `yaml:"threshold"`
	Scale     float64 `yaml:"scale"`
}

// PipelineConfig sizes the batch and the worker pool.
type PipelineConfig struct {
	Workers       int    `yaml:"workers"`    // 0 = one per CPU
	QueueSize     int    `yaml:"queue_size"` // 0 = 2 * workers
	Radius        int    `yaml:"radius"`     // chunks around the origin in x and z
	Height        int    `yaml:"height"`     // chunk layers in y, from 0 upward
	UnknownPolicy string `yaml:"unknown_policy"`
}

// ExportConfig controls mesh output.
type ExportConfig struct {
	Path string `yaml:"path"`
}

// ViewConfig holds viewer window settings.
type ViewConfig struct {
	Width  int     `yaml:"width"`
	Height int     `yaml:"height"`
	FOV    float32 `yaml:"fov"`
	VSync  bool    `yaml:"vsync"`
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level   string `yaml:"level"`
	LogFile string `yaml:"log_file"`
}

// Default returns the built-in settings.
func Default() *Config {
	return &Config{
		World: WorldConfig{
			Seed:      1,
			Noise:     "worley",
			Threshold: world.DefaultThreshold,
			Scale:     world.DefaultScale,
		},
		Pipeline: PipelineConfig{
			Radius:        2,
			Height:        1,
			UnknownPolicy: "draw",
		},
		Export: ExportConfig{
			Path: "chunks.glb",
		},
		View: ViewConfig{
			Width:  1280,
			Height: 720,
			FOV:    60,
			VSync:  true,
		},
		Logging: LoggingConfig{
			Level: "info",
		},
	}
}

// Validate clamps ranges and rejects settings that cannot be used.
func (c *Config) Validate() error {
	c.Pipeline.Radius = min(max(c.Pipeline.Radius, MinRadius), MaxRadius)
	c.Pipeline.Height = min(max(c.Pipeline.Height, MinHeight), MaxHeight)
	if c.Pipeline.Workers < 0 {
		c.Pipeline.Workers = 0
	}
	if c.Pipeline.QueueSize < 0 {
		c.Pipeline.QueueSize = 0
	}
	if c.World.Scale <= 0 {
		return fmt.Errorf("world.scale must be positive, got %v", c.World.Scale)
	}
	if _, err := c.Policy(); err != nil {
		return err
	}
	if _, err := world.NewNoise(c.World.Noise, c.World.Seed); err != nil {
		return err
	}
	return nil
}

// Policy parses Pipeline.UnknownPolicy.
func (c *Config) Policy() (meshing.UnknownNeighborPolicy, error) {
	switch c.Pipeline.UnknownPolicy {
	case "", "draw":
		return meshing.DrawUnknown, nil
	case "cull":
		return meshing.CullUnknown, nil
	}
	return meshing.DrawUnknown, fmt.Errorf("pipeline.unknown_policy: unknown value %q", c.Pipeline.UnknownPolicy)
}

// Positions returns the batch described by Radius and Height: a square of
// side 2*Radius+1 in x and z for each of Height layers.
func (c *Config) Positions() []world.ChunkPosition {
	r := c.Pipeline.Radius
	side := 2*r + 1
	out := make([]world.ChunkPosition, 0, side*side*c.Pipeline.Height)
	for y := range c.Pipeline.Height {
		for z := -r; z <= r; z++ {
			for x := -r; x <= r; x++ {
				out = append(out, world.ChunkPosition{X: x, Y: y, Z: z})
			}
		}
	}
	return out
}
