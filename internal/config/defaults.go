package config

import (
	_ "embed"
)

//go:embed defaults/defense.yaml
var defaultDefenseYAML []byte

// DefaultDefenseConfig returns the default defense configuration.
func DefaultDefenseConfig() DefenseConfig {
	return DefenseConfig{
		Board: DefenseBoard{
			Width:  11,
			Height: 11,
		},
		Game: DefenseGameplay{
			StartingHealth: 10,
			PlaySpeed:      1.0,
			KillPoints:     10,
			HealthPoints:   50,
		},
		Enemies: DefenseEnemies{
			Small: EnemyConfig{
				Scale:      FloatRange{Min: 0.5, Max: 0.7},
				Speed:      FloatRange{Min: 1.5, Max: 2.0},
				PathOffset: FloatRange{Min: -0.25, Max: 0.25},
				Health:     FloatRange{Min: 10, Max: 15},
			},
			Medium: EnemyConfig{
				Scale:      FloatRange{Min: 0.8, Max: 1.0},
				Speed:      FloatRange{Min: 1.0, Max: 1.25},
				PathOffset: FloatRange{Min: -0.25, Max: 0.25},
				Health:     FloatRange{Min: 40, Max: 60},
			},
			Large: EnemyConfig{
				Scale:      FloatRange{Min: 1.4, Max: 1.6},
				Speed:      FloatRange{Min: 0.6, Max: 0.8},
				PathOffset: FloatRange{Min: -0.1, Max: 0.1},
				Health:     FloatRange{Min: 150, Max: 200},
			},
		},
		Towers: DefenseTowers{
			Laser: LaserConfig{
				Range:           1.5,
				DamagePerSecond: 25,
			},
			Mortar: MortarConfig{
				Range:          3.5,
				ShotsPerSecond: 1,
				BlastRadius:    1,
				Damage:         20,
				Height:         0.75,
			},
		},
		Effects: DefenseEffects{
			ExplosionDuration: 0.5,
		},
		Scenario: []WaveConfig{
			{Sequences: []SequenceConfig{
				{Enemy: "small", Amount: 5, Cooldown: 1.0},
				{Enemy: "medium", Amount: 3, Cooldown: 1.5},
			}},
			{Sequences: []SequenceConfig{
				{Enemy: "medium", Amount: 5, Cooldown: 1.0},
				{Enemy: "large", Amount: 2, Cooldown: 3.0},
			}},
			{Sequences: []SequenceConfig{
				{Enemy: "small", Amount: 10, Cooldown: 0.5},
				{Enemy: "large", Amount: 4, Cooldown: 2.0},
			}},
		},
		Difficulty: DifficultyConfig{
			Enabled:      true,
			InitialLevel: 0.0,
			Progression: ProgressionConfig{
				Type: "wave",
			},
			Scaling: ScalingConfig{
				HealthMultiplier: 1.0,
				SpeedMultiplier:  0.25,
			},
		},
	}
}

// GetDefaultYAML returns the embedded default YAML for a game.
func GetDefaultYAML(gameID string) []byte {
	switch gameID {
	case "defense", "defense_sandbox":
		return defaultDefenseYAML
	default:
		return nil
	}
}
