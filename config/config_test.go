package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadEmbeddedDefaults(t *testing.T) {
	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	if cfg.World.Width != 1000 || cfg.World.Height != 1000 {
		t.Errorf("world dimensions = %dx%d, want 1000x1000", cfg.World.Width, cfg.World.Height)
	}
	if cfg.Plants.Lifecycle != "static" {
		t.Errorf("default lifecycle = %q, want static", cfg.Plants.Lifecycle)
	}
	if !cfg.Day.CycleEnabled {
		t.Error("day cycle disabled by default")
	}
	if cfg.Derived.DayIncrement <= 0 {
		t.Errorf("derived day increment = %v", cfg.Derived.DayIncrement)
	}
	if cfg.Derived.Margin32 != float32(cfg.Creatures.Margin) {
		t.Error("derived margin does not match creatures.margin")
	}
}

func writeTempConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte(body), 0644); err != nil {
		t.Fatalf("writing temp config: %v", err)
	}
	return path
}

func TestLoadMergesUserConfig(t *testing.T) {
	path := writeTempConfig(t, "world:\n  width: 640\nplants:\n  lifecycle: reproductive\n")

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	if cfg.World.Width != 640 {
		t.Errorf("world.width = %d, want override 640", cfg.World.Width)
	}
	if cfg.World.Height != 1000 {
		t.Errorf("world.height = %d, want default 1000", cfg.World.Height)
	}
	if cfg.Plants.Lifecycle != "reproductive" {
		t.Errorf("lifecycle = %q, want override", cfg.Plants.Lifecycle)
	}
	if cfg.Population.Beetles == 0 {
		t.Error("defaults lost during merge")
	}
}

func TestLoadRejectsInvalidConfig(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{"bad lifecycle", "plants:\n  lifecycle: immortal\n"},
		{"zero cycle length", "day:\n  ticks_per_cycle: 0\n"},
		{"zeroed weather weights", "weather:\n  clear_weight: 0\n  rain_weight: 0\n  windy_weight: 0\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := Load(writeTempConfig(t, tt.body)); err == nil {
				t.Error("invalid config accepted")
			}
		})
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "nope.yaml")); err == nil {
		t.Error("missing config file accepted")
	}
}

func TestWriteYAMLRoundTrip(t *testing.T) {
	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	path := filepath.Join(t.TempDir(), "snapshot.yaml")
	if err := cfg.WriteYAML(path); err != nil {
		t.Fatalf("WriteYAML: %v", err)
	}

	reloaded, err := Load(path)
	if err != nil {
		t.Fatalf("Load snapshot: %v", err)
	}
	if reloaded.World != cfg.World || reloaded.Plants != cfg.Plants || reloaded.Weather != cfg.Weather {
		t.Error("snapshot does not round-trip")
	}
}
