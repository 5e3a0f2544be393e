package config

import (
	_ "embed"
	"time"
)

//go:embed defaults/quickbuck.yaml
var defaultQuickBuckYAML []byte

// DefaultQuickBuckConfig returns the built-in configuration.
// It matches defaults/quickbuck.yaml and is used when that cannot be parsed.
func DefaultQuickBuckConfig() QuickBuckConfig {
	return QuickBuckConfig{
		Field: FieldConfig{
			Width:  400,
			Height: 600,
		},
		Player: PlayerConfig{
			Speed:        1500,
			SnapDistance: 10,
			Color:        "cyan",
		},
		Obstacles: ObstacleConfig{
			Speed:       250,
			SpawnPeriod: time.Second,
			SpawnHeight: 700,
			Size:        50,
			Color:       "red",
		},
	}
}

// DefaultYAML returns the embedded default YAML.
func DefaultYAML() []byte {
	return defaultQuickBuckYAML
}
