package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func TestEmbeddedDefaultMatchesBuiltin(t *testing.T) {
	cfg, err := Parse(DefaultYAML())
	if err != nil {
		t.Fatalf("embedded default does not parse: %v", err)
	}
	if cfg != DefaultQuickBuckConfig() {
		t.Errorf("embedded default = %+v, expected %+v", cfg, DefaultQuickBuckConfig())
	}
}

func TestDefaultValues(t *testing.T) {
	cfg := DefaultQuickBuckConfig()

	if cfg.Obstacles.SpawnPeriod != time.Second {
		t.Errorf("SpawnPeriod = %s, expected 1s", cfg.Obstacles.SpawnPeriod)
	}
	if got, want := cfg.LaneSize(), 400.0/3; got != want {
		t.Errorf("LaneSize() = %f, expected %f", got, want)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("default config should be valid: %v", err)
	}
}

func TestParsePartialOverride(t *testing.T) {
	cfg, err := Parse([]byte("obstacles:\n  speed: 400\n  spawn_period: 500ms\n"))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}

	if cfg.Obstacles.Speed != 400 {
		t.Errorf("Obstacles.Speed = %f, expected 400", cfg.Obstacles.Speed)
	}
	if cfg.Obstacles.SpawnPeriod != 500*time.Millisecond {
		t.Errorf("SpawnPeriod = %s, expected 500ms", cfg.Obstacles.SpawnPeriod)
	}
	// Untouched values keep their defaults
	if cfg.Player.Speed != 1500 || cfg.Field.Width != 400 {
		t.Errorf("defaults lost: %+v", cfg)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*QuickBuckConfig)
		field  string
	}{
		{"zero width", func(c *QuickBuckConfig) { c.Field.Width = 0 }, "field.width"},
		{"negative player speed", func(c *QuickBuckConfig) { c.Player.Speed = -1 }, "player.speed"},
		{"negative snap", func(c *QuickBuckConfig) { c.Player.SnapDistance = -1 }, "player.snap_distance"},
		{"zero period", func(c *QuickBuckConfig) { c.Obstacles.SpawnPeriod = 0 }, "obstacles.spawn_period"},
		{"zero size", func(c *QuickBuckConfig) { c.Obstacles.Size = 0 }, "obstacles.size"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cfg := DefaultQuickBuckConfig()
			tc.mutate(&cfg)
			err := cfg.Validate()
			if err == nil {
				t.Fatal("expected validation error")
			}
			if !strings.Contains(err.Error(), tc.field) {
				t.Errorf("error %q should mention %s", err, tc.field)
			}
		})
	}
}

func TestLoadCustomPath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "custom.yaml")
	if err := os.WriteFile(path, []byte("player:\n  speed: 900\n"), 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Player.Speed != 900 {
		t.Errorf("Player.Speed = %f, expected 900", cfg.Player.Speed)
	}
}

func TestLoadCustomPathErrors(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Error("missing custom file should fail")
	}

	bad := filepath.Join(t.TempDir(), "bad.yaml")
	if err := os.WriteFile(bad, []byte("field: [1, 2"), 0o600); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(bad); err == nil {
		t.Error("malformed custom file should fail")
	}

	invalid := filepath.Join(t.TempDir(), "invalid.yaml")
	if err := os.WriteFile(invalid, []byte("field:\n  width: -5\n"), 0o600); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(invalid); err == nil {
		t.Error("invalid custom file should fail validation")
	}
}

func TestLoadUserConfig(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	dir := filepath.Join(home, ".arcade", "configs")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(dir, fileName), []byte("obstacles:\n  spawn_height: 650\n"), 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Obstacles.SpawnHeight != 650 {
		t.Errorf("SpawnHeight = %f, expected 650 from user config", cfg.Obstacles.SpawnHeight)
	}
}

func TestLoadFallsBackToEmbedded(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg != DefaultQuickBuckConfig() {
		t.Errorf("expected embedded default, got %+v", cfg)
	}
}

func TestMarshalWritesDurations(t *testing.T) {
	data, err := Marshal(DefaultQuickBuckConfig())
	if err != nil {
		t.Fatalf("Marshal: %v", err)
	}
	if !strings.Contains(string(data), "spawn_period: 1s") {
		t.Errorf("spawn_period should be written as a duration string:\n%s", data)
	}
}
