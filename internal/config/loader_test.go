package config

import (
	"math"
	"os"
	"path/filepath"
	"testing"

	"gopkg.in/yaml.v3"
)

func TestEmbeddedDefaultsMatchHardcoded(t *testing.T) {
	var cfg GolfConfig
	if err := yaml.Unmarshal(defaultGolfYAML, &cfg); err != nil {
		t.Fatalf("embedded golf.yaml does not parse: %v", err)
	}
	if cfg != DefaultGolfConfig() {
		t.Errorf("embedded defaults drifted from DefaultGolfConfig:\n%+v\n%+v", cfg, DefaultGolfConfig())
	}
}

func TestLoadGolfFallsBackToEmbedded(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	cfg, err := LoadGolf("")
	if err != nil {
		t.Fatalf("LoadGolf: %v", err)
	}
	if cfg != DefaultGolfConfig() {
		t.Error("expected the embedded defaults")
	}
}

func TestLoadGolfCustomPathKeepsUnsetKeys(t *testing.T) {
	path := filepath.Join(t.TempDir(), "golf.yaml")
	data := []byte("physics:\n  grass_friction: 0.95\ngameplay:\n  next_hole_delay: 10\n")
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadGolf(path)
	if err != nil {
		t.Fatalf("LoadGolf: %v", err)
	}
	if cfg.Physics.GrassFriction != 0.95 {
		t.Errorf("grass_friction = %v, expected 0.95", cfg.Physics.GrassFriction)
	}
	if cfg.Gameplay.NextHoleDelay != 10 {
		t.Errorf("next_hole_delay = %d, expected 10", cfg.Gameplay.NextHoleDelay)
	}
	if cfg.Physics.SandFriction != 0.8 {
		t.Errorf("sand_friction = %v, expected default 0.8", cfg.Physics.SandFriction)
	}
}

func TestLoadGolfUserConfig(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)
	dir := filepath.Join(home, ".minigolf", "configs")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(dir, "golf.yaml"), []byte("ball:\n  radius: 0.2\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadGolf("")
	if err != nil {
		t.Fatalf("LoadGolf: %v", err)
	}
	if cfg.Ball.Radius != 0.2 {
		t.Errorf("radius = %v, expected user override 0.2", cfg.Ball.Radius)
	}
}

func TestLoadGolfErrors(t *testing.T) {
	if _, err := LoadGolf(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Error("expected an error for a missing custom config")
	}

	path := filepath.Join(t.TempDir(), "bad.yaml")
	if err := os.WriteFile(path, []byte("physics: [1, 2"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadGolf(path); err == nil {
		t.Error("expected an error for malformed YAML")
	}
}

func TestDifficultyPresets(t *testing.T) {
	tests := []struct {
		preset     DifficultyPreset
		funnel     float64
		pull       float64
		maxStrokes int
	}{
		{DifficultyEasy, 3.0, 0.005, 12},
		{DifficultyNormal, 2.5, 0.0035, 10},
		{DifficultyHard, 2.0, 0.002, 8},
	}

	for _, tc := range tests {
		t.Run(string(tc.preset), func(t *testing.T) {
			cfg := DefaultGolfConfig()
			ApplyGolfPreset(&cfg, tc.preset)
			dm := NewDifficultyManager(cfg.Difficulty)

			if math.Abs(dm.FunnelRadiusFactor()-tc.funnel) > 1e-12 {
				t.Errorf("funnel radius = %v, expected %v", dm.FunnelRadiusFactor(), tc.funnel)
			}
			if math.Abs(dm.FunnelPull()-tc.pull) > 1e-12 {
				t.Errorf("funnel pull = %v, expected %v", dm.FunnelPull(), tc.pull)
			}
			if dm.MaxStrokes() != tc.maxStrokes {
				t.Errorf("max strokes = %d, expected %d", dm.MaxStrokes(), tc.maxStrokes)
			}
		})
	}
}

func TestDifficultyLevelClamped(t *testing.T) {
	cfg := DefaultGolfConfig()
	cfg.Difficulty.Level = 3
	if got := NewDifficultyManager(cfg.Difficulty).Level(); got != 1 {
		t.Errorf("Level() = %v, expected 1", got)
	}
}

func TestParsePreset(t *testing.T) {
	for in, want := range map[string]DifficultyPreset{
		"easy": DifficultyEasy, " Hard ": DifficultyHard, "": DifficultyNormal,
	} {
		got, err := ParsePreset(in)
		if err != nil || got != want {
			t.Errorf("ParsePreset(%q) = %v, %v", in, got, err)
		}
	}
	if _, err := ParsePreset("nightmare"); err == nil {
		t.Error("expected an error for an unknown preset")
	}
}
