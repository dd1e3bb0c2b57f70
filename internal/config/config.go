// Package config provides YAML/TOML game configuration loading and
// difficulty management for the defense game.
package config

import (
	"errors"
	"fmt"

	"github.com/vovakirdan/tui-defense/internal/games/defense/spawn"
)

// ErrInvalid is wrapped by every validation failure.
var ErrInvalid = errors.New("config: invalid")

// DefenseConfig contains all configuration for the tower-defense game.
type DefenseConfig struct {
	Board      DefenseBoard     `yaml:"board" toml:"board"`
	Game       DefenseGameplay  `yaml:"game" toml:"game"`
	Enemies    DefenseEnemies   `yaml:"enemies" toml:"enemies"`
	Towers     DefenseTowers    `yaml:"towers" toml:"towers"`
	Effects    DefenseEffects   `yaml:"effects" toml:"effects"`
	Scenario   []WaveConfig     `yaml:"scenario" toml:"scenario"`
	Difficulty DifficultyConfig `yaml:"difficulty" toml:"difficulty"`
}

// DefenseBoard defines the board size and an optional starting layout.
// Layout rows use '.' empty, '#' wall, 'D' destination, 'S' spawn point,
// 'L' laser tower and 'M' mortar tower, northern row first.
type DefenseBoard struct {
	Width  int      `yaml:"width" toml:"width"`
	Height int      `yaml:"height" toml:"height"`
	Layout []string `yaml:"layout" toml:"layout"`
}

// DefenseGameplay defines health, simulation speed and scoring.
type DefenseGameplay struct {
	StartingHealth int     `yaml:"starting_health" toml:"starting_health"`
	PlaySpeed      float64 `yaml:"play_speed" toml:"play_speed"`
	KillPoints     int     `yaml:"kill_points" toml:"kill_points"`
	HealthPoints   int     `yaml:"health_points" toml:"health_points"` // Bonus per health left on victory
}

// FloatRange is an inclusive range sampled uniformly.
type FloatRange struct {
	Min float64 `yaml:"min" toml:"min"`
	Max float64 `yaml:"max" toml:"max"`
}

// Fixed returns a range that always yields v.
func Fixed(v float64) FloatRange {
	return FloatRange{Min: v, Max: v}
}

// Lerp maps t in [0, 1] onto the range.
func (r FloatRange) Lerp(t float64) float64 {
	return r.Min + (r.Max-r.Min)*t
}

// EnemyConfig defines the random ranges for one enemy kind.
type EnemyConfig struct {
	Scale      FloatRange `yaml:"scale" toml:"scale"`
	Speed      FloatRange `yaml:"speed" toml:"speed"`
	PathOffset FloatRange `yaml:"path_offset" toml:"path_offset"`
	Health     FloatRange `yaml:"health" toml:"health"`
}

// DefenseEnemies holds the per-kind enemy configs.
type DefenseEnemies struct {
	Small  EnemyConfig `yaml:"small" toml:"small"`
	Medium EnemyConfig `yaml:"medium" toml:"medium"`
	Large  EnemyConfig `yaml:"large" toml:"large"`
}

// For returns the config of the given kind.
func (e DefenseEnemies) For(k spawn.Kind) EnemyConfig {
	switch k {
	case spawn.KindSmall:
		return e.Small
	case spawn.KindLarge:
		return e.Large
	case spawn.KindMedium:
		return e.Medium
	}
	panic(fmt.Sprintf("config: unsupported enemy kind %v", k))
}

// LaserConfig defines the laser tower.
type LaserConfig struct {
	Range           float64 `yaml:"range" toml:"range"`
	DamagePerSecond float64 `yaml:"damage_per_second" toml:"damage_per_second"`
}

// MortarConfig defines the mortar tower and its shells.
type MortarConfig struct {
	Range          float64 `yaml:"range" toml:"range"`
	ShotsPerSecond float64 `yaml:"shots_per_second" toml:"shots_per_second"`
	BlastRadius    float64 `yaml:"blast_radius" toml:"blast_radius"`
	Damage         float64 `yaml:"damage" toml:"damage"`
	Height         float64 `yaml:"height" toml:"height"`
}

// DefenseTowers holds the per-type tower configs.
type DefenseTowers struct {
	Laser  LaserConfig  `yaml:"laser" toml:"laser"`
	Mortar MortarConfig `yaml:"mortar" toml:"mortar"`
}

// DefenseEffects defines short-lived war entities.
type DefenseEffects struct {
	ExplosionDuration float64 `yaml:"explosion_duration" toml:"explosion_duration"`
}

// WaveConfig is one wave of the scenario.
type WaveConfig struct {
	Sequences []SequenceConfig `yaml:"sequences" toml:"sequences"`
}

// SequenceConfig spawns Amount enemies of one kind, one every Cooldown seconds.
type SequenceConfig struct {
	Enemy    string  `yaml:"enemy" toml:"enemy"`
	Amount   int     `yaml:"amount" toml:"amount"`
	Cooldown float64 `yaml:"cooldown" toml:"cooldown"`
}

// DifficultyConfig defines how enemies toughen as the scenario advances.
type DifficultyConfig struct {
	Enabled      bool              `yaml:"enabled" toml:"enabled"`
	InitialLevel float64           `yaml:"initial_level" toml:"initial_level"` // 0.0 = easy, 1.0 = hard
	Progression  ProgressionConfig `yaml:"progression" toml:"progression"`
	Scaling      ScalingConfig     `yaml:"scaling" toml:"scaling"`
}

// ProgressionConfig defines how difficulty increases.
type ProgressionConfig struct {
	Type string `yaml:"type" toml:"type"` // "wave" or "none"
}

// ScalingConfig defines the magnitude of difficulty changes.
type ScalingConfig struct {
	HealthMultiplier float64 `yaml:"health_multiplier" toml:"health_multiplier"` // Added to enemy health at max difficulty
	SpeedMultiplier  float64 `yaml:"speed_multiplier" toml:"speed_multiplier"`   // Added to enemy speed at max difficulty
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// ParsePreset converts a flag value into a preset. Empty means no preset.
func ParsePreset(s string) (DifficultyPreset, error) {
	switch p := DifficultyPreset(s); p {
	case "", DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyFixed:
		return p, nil
	}
	return "", fmt.Errorf("config: unknown difficulty %q", s)
}

// InitialLevelForPreset returns the initial_level for a difficulty preset.
func InitialLevelForPreset(preset DifficultyPreset) float64 {
	switch preset {
	case DifficultyEasy:
		return 0.0
	case DifficultyNormal:
		return 0.3
	case DifficultyHard:
		return 0.7
	default:
		return 0.0
	}
}

// IsFixedPreset returns true if the preset disables progression.
func IsFixedPreset(preset DifficultyPreset) bool {
	return preset == DifficultyFixed
}

// BuildScenario converts the configured waves into spawn descriptors.
func (c DefenseConfig) BuildScenario() (spawn.Scenario, error) {
	if len(c.Scenario) == 0 {
		return spawn.Scenario{}, fmt.Errorf("%w: scenario has no waves", ErrInvalid)
	}
	sc := spawn.Scenario{Waves: make([]spawn.Wave, 0, len(c.Scenario))}
	for wi, w := range c.Scenario {
		if len(w.Sequences) == 0 {
			return spawn.Scenario{}, fmt.Errorf("%w: wave %d has no sequences", ErrInvalid, wi+1)
		}
		wave := spawn.Wave{Sequences: make([]spawn.Sequence, 0, len(w.Sequences))}
		for si, s := range w.Sequences {
			kind, err := spawn.ParseKind(s.Enemy)
			if err != nil {
				return spawn.Scenario{}, fmt.Errorf("%w: wave %d sequence %d: %v", ErrInvalid, wi+1, si+1, err)
			}
			if s.Cooldown <= 0 || s.Amount < 0 {
				return spawn.Scenario{}, fmt.Errorf("%w: wave %d sequence %d: amount %d, cooldown %v",
					ErrInvalid, wi+1, si+1, s.Amount, s.Cooldown)
			}
			wave.Sequences = append(wave.Sequences, spawn.NewSequence(kind, s.Amount, s.Cooldown))
		}
		sc.Waves = append(sc.Waves, wave)
	}
	return sc, nil
}

// Validate checks the configuration for values the game cannot run with.
func (c DefenseConfig) Validate() error {
	if c.Board.Width < 2 || c.Board.Height < 2 {
		return fmt.Errorf("%w: board must be at least 2x2, got %dx%d", ErrInvalid, c.Board.Width, c.Board.Height)
	}
	if n := len(c.Board.Layout); n != 0 && n != c.Board.Height {
		return fmt.Errorf("%w: layout has %d rows, board height is %d", ErrInvalid, n, c.Board.Height)
	}
	if c.Game.StartingHealth < 0 {
		return fmt.Errorf("%w: starting_health must not be negative", ErrInvalid)
	}
	if c.Game.PlaySpeed <= 0 {
		return fmt.Errorf("%w: play_speed must be positive", ErrInvalid)
	}
	for _, k := range []spawn.Kind{spawn.KindSmall, spawn.KindMedium, spawn.KindLarge} {
		e := c.Enemies.For(k)
		if e.Scale.Min <= 0 || e.Speed.Min <= 0 || e.Health.Min <= 0 {
			return fmt.Errorf("%w: %s enemy needs positive scale, speed and health", ErrInvalid, k)
		}
		for _, r := range []FloatRange{e.Scale, e.Speed, e.PathOffset, e.Health} {
			if r.Max < r.Min {
				return fmt.Errorf("%w: %s enemy has a range with max below min", ErrInvalid, k)
			}
		}
	}
	if c.Towers.Laser.Range <= 0 || c.Towers.Mortar.Range <= 0 {
		return fmt.Errorf("%w: tower ranges must be positive", ErrInvalid)
	}
	if c.Towers.Mortar.ShotsPerSecond <= 0 || c.Towers.Mortar.Height < 0 {
		return fmt.Errorf("%w: mortar needs positive shots_per_second and non-negative height", ErrInvalid)
	}
	if c.Effects.ExplosionDuration <= 0 {
		return fmt.Errorf("%w: explosion_duration must be positive", ErrInvalid)
	}
	if _, err := c.BuildScenario(); err != nil {
		return err
	}
	return nil
}
