// Package config provides YAML-based game configuration loading for Quick Buck.
package config

import (
	"errors"
	"fmt"
	"time"
)

// QuickBuckConfig contains all tunable parameters of the lane dodger.
type QuickBuckConfig struct {
	Field     FieldConfig    `yaml:"field"`
	Player    PlayerConfig   `yaml:"player"`
	Obstacles ObstacleConfig `yaml:"obstacles"`
}

// FieldConfig is the size of the playing field in world units.
// Lane width is derived as Width / 3.
type FieldConfig struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

// PlayerConfig defines how the player's tween moves between lanes.
type PlayerConfig struct {
	Speed        float64 `yaml:"speed"`
	SnapDistance float64 `yaml:"snap_distance"`
	Color        string  `yaml:"color"`
}

// ObstacleConfig defines obstacle spawning and motion.
type ObstacleConfig struct {
	Speed       float64       `yaml:"speed"`
	SpawnPeriod time.Duration `yaml:"spawn_period"`
	SpawnHeight float64       `yaml:"spawn_height"`
	Size        float64       `yaml:"size"`
	Color       string        `yaml:"color"`
}

// LaneSize returns the horizontal distance between adjacent lane centres.
func (c QuickBuckConfig) LaneSize() float64 {
	return c.Field.Width / 3
}

// Validate reports every non-positive dimension, speed or period in the config.
func (c QuickBuckConfig) Validate() error {
	var errs []error
	check := func(name string, v float64) {
		if v <= 0 {
			errs = append(errs, fmt.Errorf("%s must be positive, got %v", name, v))
		}
	}

	check("field.width", c.Field.Width)
	check("field.height", c.Field.Height)
	check("player.speed", c.Player.Speed)
	check("obstacles.speed", c.Obstacles.Speed)
	check("obstacles.size", c.Obstacles.Size)
	if c.Player.SnapDistance < 0 {
		errs = append(errs, fmt.Errorf("player.snap_distance must not be negative, got %v", c.Player.SnapDistance))
	}
	if c.Obstacles.SpawnPeriod <= 0 {
		errs = append(errs, fmt.Errorf("obstacles.spawn_period must be positive, got %s", c.Obstacles.SpawnPeriod))
	}

	if err := errors.Join(errs...); err != nil {
		return fmt.Errorf("config: invalid: %w", err)
	}
	return nil
}
