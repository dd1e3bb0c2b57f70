package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/vovakirdan/tui-defense/internal/games/defense/spawn"
)

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestDefaultConfigIsValid(t *testing.T) {
	require.NoError(t, DefaultDefenseConfig().Validate())
}

func TestEmbeddedDefaultsMatchHardcoded(t *testing.T) {
	var cfg DefenseConfig
	require.NoError(t, yaml.Unmarshal(defaultDefenseYAML, &cfg))
	assert.Empty(t, cfg.Board.Layout)
	cfg.Board.Layout = nil

	assert.Equal(t, DefaultDefenseConfig(), cfg)
	assert.Equal(t, defaultDefenseYAML, GetDefaultYAML("defense"))
	assert.Nil(t, GetDefaultYAML("flappy"))
}

func TestLoadFileYAMLKeepsDefaults(t *testing.T) {
	path := writeFile(t, "defense.yaml", `
board:
  width: 5
  height: 3
  layout:
    - "S...."
    - "..D.."
    - "....."
game:
  starting_health: 3
`)
	cfg, err := LoadFile(path)
	require.NoError(t, err)

	assert.Equal(t, 5, cfg.Board.Width)
	assert.Equal(t, []string{"S....", "..D..", "....."}, cfg.Board.Layout)
	assert.Equal(t, 3, cfg.Game.StartingHealth)
	assert.Equal(t, 1.0, cfg.Game.PlaySpeed)
	assert.Equal(t, DefaultDefenseConfig().Towers, cfg.Towers)
	require.NoError(t, cfg.Validate())
}

func TestLoadFileTOML(t *testing.T) {
	path := writeFile(t, "defense.toml", `
[board]
width = 7
height = 7

[game]
starting_health = 4
play_speed = 2.0

[enemies.small]
health = { min = 1, max = 2 }

[towers.laser]
range = 2.5
damage_per_second = 40

[[scenario]]
[[scenario.sequences]]
enemy = "large"
amount = 2
cooldown = 0.5
`)
	cfg, err := LoadFile(path)
	require.NoError(t, err)

	assert.Equal(t, 7, cfg.Board.Width)
	assert.Equal(t, 4, cfg.Game.StartingHealth)
	assert.Equal(t, 2.0, cfg.Game.PlaySpeed)
	assert.Equal(t, FloatRange{Min: 1, Max: 2}, cfg.Enemies.Small.Health)
	assert.Equal(t, DefaultDefenseConfig().Enemies.Small.Speed, cfg.Enemies.Small.Speed)
	assert.Equal(t, 40.0, cfg.Towers.Laser.DamagePerSecond)

	sc, err := cfg.BuildScenario()
	require.NoError(t, err)
	require.Equal(t, 1, sc.WaveCount())
	assert.Equal(t, spawn.NewSequence(spawn.KindLarge, 2, 0.5), sc.Waves[0].Sequences[0])
}

func TestLoadFileErrors(t *testing.T) {
	_, err := LoadFile(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)

	_, err = LoadFile(writeFile(t, "defense.json", `{}`))
	assert.ErrorContains(t, err, "unsupported extension")

	_, err = LoadFile(writeFile(t, "defense.yaml", "board: [1, 2"))
	assert.Error(t, err)
}

func TestLoadDefenseCustomPath(t *testing.T) {
	path := writeFile(t, "custom.yml", "game:\n  starting_health: 42\n")
	cfg, err := LoadDefense(path)
	require.NoError(t, err)
	assert.Equal(t, 42, cfg.Game.StartingHealth)

	_, err = LoadDefense(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}

func TestLoadDefenseLocalDirectory(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("HOME", dir)
	require.NoError(t, os.MkdirAll(filepath.Join(dir, "configs"), 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "configs", "defense.toml"), []byte("[game]\nstarting_health = 7\n"), 0o644))
	t.Chdir(dir)

	cfg, err := LoadDefense("")
	require.NoError(t, err)
	assert.Equal(t, 7, cfg.Game.StartingHealth)
}

func TestLoadDefenseFallsBackToEmbedded(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("HOME", dir)
	t.Chdir(dir)

	cfg, err := LoadDefense("")
	require.NoError(t, err)
	cfg.Board.Layout = nil
	assert.Equal(t, DefaultDefenseConfig(), cfg)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*DefenseConfig)
	}{
		{"tiny board", func(c *DefenseConfig) { c.Board.Width = 1 }},
		{"layout height mismatch", func(c *DefenseConfig) { c.Board.Layout = []string{"S.D"} }},
		{"negative health", func(c *DefenseConfig) { c.Game.StartingHealth = -1 }},
		{"zero play speed", func(c *DefenseConfig) { c.Game.PlaySpeed = 0 }},
		{"zero enemy speed", func(c *DefenseConfig) { c.Enemies.Medium.Speed = Fixed(0) }},
		{"inverted range", func(c *DefenseConfig) { c.Enemies.Large.Health = FloatRange{Min: 10, Max: 5} }},
		{"zero laser range", func(c *DefenseConfig) { c.Towers.Laser.Range = 0 }},
		{"zero fire rate", func(c *DefenseConfig) { c.Towers.Mortar.ShotsPerSecond = 0 }},
		{"zero explosion", func(c *DefenseConfig) { c.Effects.ExplosionDuration = 0 }},
		{"empty scenario", func(c *DefenseConfig) { c.Scenario = nil }},
		{"empty wave", func(c *DefenseConfig) { c.Scenario = []WaveConfig{{}} }},
		{"unknown enemy", func(c *DefenseConfig) {
			c.Scenario = []WaveConfig{{Sequences: []SequenceConfig{{Enemy: "boss", Amount: 1, Cooldown: 1}}}}
		}},
		{"zero cooldown", func(c *DefenseConfig) {
			c.Scenario = []WaveConfig{{Sequences: []SequenceConfig{{Enemy: "small", Amount: 1, Cooldown: 0}}}}
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultDefenseConfig()
			tt.mutate(&cfg)
			assert.ErrorIs(t, cfg.Validate(), ErrInvalid)
		})
	}
}

func TestBuildScenario(t *testing.T) {
	sc, err := DefaultDefenseConfig().BuildScenario()
	require.NoError(t, err)
	require.Equal(t, 3, sc.WaveCount())
	assert.Equal(t, spawn.Sequence{Kind: spawn.KindSmall, Amount: 5, Cooldown: 1.0}, sc.Waves[0].Sequences[0])
	assert.Equal(t, spawn.KindLarge, sc.Waves[2].Sequences[1].Kind)
}

func TestApplyDefensePreset(t *testing.T) {
	tests := []struct {
		preset  DifficultyPreset
		enabled bool
		level   float64
		health  int
	}{
		{DifficultyEasy, true, 0.0, 20},
		{DifficultyNormal, true, 0.3, 10},
		{DifficultyHard, true, 0.7, 5},
		{DifficultyFixed, false, 0.0, 10},
		{"", true, 0.0, 10},
	}

	for _, tt := range tests {
		t.Run(string(tt.preset), func(t *testing.T) {
			cfg := DefaultDefenseConfig()
			ApplyDefensePreset(&cfg, tt.preset)
			assert.Equal(t, tt.enabled, cfg.Difficulty.Enabled)
			assert.Equal(t, tt.level, cfg.Difficulty.InitialLevel)
			assert.Equal(t, tt.health, cfg.Game.StartingHealth)
			assert.Equal(t, tt.preset == DifficultyFixed, IsFixedPreset(tt.preset))
		})
	}
}

func TestParsePreset(t *testing.T) {
	p, err := ParsePreset("hard")
	require.NoError(t, err)
	assert.Equal(t, DifficultyHard, p)

	_, err = ParsePreset("nightmare")
	assert.Error(t, err)
}

func TestDifficultyManager(t *testing.T) {
	d := NewDifficultyManager(DifficultyConfig{
		Enabled:      true,
		InitialLevel: 0.2,
		Progression:  ProgressionConfig{Type: "wave"},
		Scaling:      ScalingConfig{HealthMultiplier: 1.0, SpeedMultiplier: 0.5},
	})

	assert.InDelta(t, 0.2, d.Level(1, 5), 1e-9)
	assert.InDelta(t, 0.6, d.Level(3, 5), 1e-9)
	assert.InDelta(t, 1.0, d.Level(5, 5), 1e-9)
	assert.InDelta(t, 1.0, d.Level(9, 5), 1e-9)
	assert.InDelta(t, 2.0, d.HealthScale(5, 5), 1e-9)
	assert.InDelta(t, 1.1, d.SpeedScale(1, 5), 1e-9)
	assert.InDelta(t, 0.2, d.Level(1, 1), 1e-9)

	fixed := NewDifficultyManager(DifficultyConfig{
		InitialLevel: 3,
		Progression:  ProgressionConfig{Type: "wave"},
		Scaling:      ScalingConfig{HealthMultiplier: 1.0},
	})
	assert.False(t, fixed.IsEnabled())
	assert.InDelta(t, 1.0, fixed.Level(1, 5), 1e-9)
	assert.InDelta(t, 1.0, fixed.Level(5, 5), 1e-9)
	assert.InDelta(t, 2.0, fixed.HealthScale(1, 5), 1e-9)
}
