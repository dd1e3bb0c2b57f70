package config

import "math"

// DifficultyManager calculates enemy scaling based on scenario progress.
type DifficultyManager struct {
	cfg          DifficultyConfig
	initialLevel float64
}

// NewDifficultyManager creates a new difficulty manager.
func NewDifficultyManager(cfg DifficultyConfig) *DifficultyManager {
	return &DifficultyManager{
		cfg:          cfg,
		initialLevel: clampF(cfg.InitialLevel, 0.0, 1.0),
	}
}

// IsEnabled returns whether difficulty progression is active.
func (d *DifficultyManager) IsEnabled() bool {
	return d.cfg.Enabled && d.cfg.Progression.Type != "none"
}

// Level returns the difficulty level (0.0 to 1.0) for the 1-based wave out
// of waves total.
func (d *DifficultyManager) Level(wave, waves int) float64 {
	if !d.IsEnabled() || d.cfg.Progression.Type != "wave" {
		return d.initialLevel
	}

	var progress float64
	if waves > 1 {
		progress = float64(wave-1) / float64(waves-1)
	}
	progress = clampF(progress, 0.0, 1.0)

	// Interpolate from initial level to 1.0
	return d.initialLevel + progress*(1.0-d.initialLevel)
}

// HealthScale returns the enemy health multiplier for the given wave.
func (d *DifficultyManager) HealthScale(wave, waves int) float64 {
	return 1.0 + d.Level(wave, waves)*d.cfg.Scaling.HealthMultiplier
}

// SpeedScale returns the enemy speed multiplier for the given wave.
func (d *DifficultyManager) SpeedScale(wave, waves int) float64 {
	return 1.0 + d.Level(wave, waves)*d.cfg.Scaling.SpeedMultiplier
}

// clampF restricts a float64 to [min, max].
func clampF(val, min, max float64) float64 {
	return math.Max(min, math.Min(max, val))
}
