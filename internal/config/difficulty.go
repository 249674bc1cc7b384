package config

import (
	"fmt"
	"math"
	"strings"
)

// DifficultyConfig scales how much the green helps the player.
type DifficultyConfig struct {
	Level   float64       `yaml:"level"` // 0.0 = easy, 1.0 = hard
	Scaling ScalingConfig `yaml:"scaling"`
}

// ScalingConfig gives the easy and hard ends of each assisted parameter.
type ScalingConfig struct {
	FunnelRadiusEasy float64 `yaml:"funnel_radius_easy"` // multiple of the hole radius
	FunnelRadiusHard float64 `yaml:"funnel_radius_hard"`
	FunnelPullEasy   float64 `yaml:"funnel_pull_easy"`
	FunnelPullHard   float64 `yaml:"funnel_pull_hard"`
	MaxStrokesEasy   int     `yaml:"max_strokes_easy"`
	MaxStrokesHard   int     `yaml:"max_strokes_hard"`
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
)

// ParsePreset parses a preset name, case-insensitively.
func ParsePreset(s string) (DifficultyPreset, error) {
	switch p := DifficultyPreset(strings.ToLower(strings.TrimSpace(s))); p {
	case DifficultyEasy, DifficultyNormal, DifficultyHard:
		return p, nil
	case "":
		return DifficultyNormal, nil
	default:
		return "", fmt.Errorf("unknown difficulty %q (want easy, normal or hard)", s)
	}
}

// LevelForPreset returns the difficulty level of a preset.
func LevelForPreset(preset DifficultyPreset) float64 {
	switch preset {
	case DifficultyEasy:
		return 0.0
	case DifficultyHard:
		return 1.0
	default:
		return 0.5
	}
}

// ApplyGolfPreset sets the difficulty level from a preset.
func ApplyGolfPreset(cfg *GolfConfig, preset DifficultyPreset) {
	cfg.Difficulty.Level = LevelForPreset(preset)
}

// DifficultyManager interpolates assisted parameters for a difficulty level.
type DifficultyManager struct {
	cfg DifficultyConfig
}

// NewDifficultyManager creates a new difficulty manager.
func NewDifficultyManager(cfg DifficultyConfig) *DifficultyManager {
	cfg.Level = clampF(cfg.Level, 0.0, 1.0)
	return &DifficultyManager{cfg: cfg}
}

// Level returns the difficulty level (0.0 to 1.0).
func (d *DifficultyManager) Level() float64 {
	return d.cfg.Level
}

// FunnelRadiusFactor returns the funnel radius as a multiple of the hole radius.
func (d *DifficultyManager) FunnelRadiusFactor() float64 {
	return lerp(d.cfg.Scaling.FunnelRadiusEasy, d.cfg.Scaling.FunnelRadiusHard, d.cfg.Level)
}

// FunnelPull returns the per-tick pull towards the hole.
func (d *DifficultyManager) FunnelPull() float64 {
	return lerp(d.cfg.Scaling.FunnelPullEasy, d.cfg.Scaling.FunnelPullHard, d.cfg.Level)
}

// MaxStrokes returns the stroke limit per hole.
func (d *DifficultyManager) MaxStrokes() int {
	n := int(math.Round(lerp(float64(d.cfg.Scaling.MaxStrokesEasy), float64(d.cfg.Scaling.MaxStrokesHard), d.cfg.Level)))
	if n < 1 { // Always allow a shot
		n = 1
	}
	return n
}

func lerp(easy, hard, level float64) float64 {
	return easy + (hard-easy)*level
}

// clampF restricts a float64 to [min, max].
func clampF(val, min, max float64) float64 {
	return math.Max(min, math.Min(max, val))
}
