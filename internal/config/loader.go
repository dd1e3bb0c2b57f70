package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"
)

// configNames are tried in order inside each config directory.
var configNames = []string{"defense.yaml", "defense.yml", "defense.toml"}

// LoadDefense loads the defense configuration.
// Search order: customPath -> ~/.tui-defense/configs/defense.{yaml,toml} ->
// ./configs/defense.{yaml,toml} -> embedded default.
// Values missing from a file keep their defaults.
func LoadDefense(customPath string) (DefenseConfig, error) {
	// Try custom path first
	if customPath != "" {
		return LoadFile(customPath)
	}

	// Try user config directory, then local configs directory
	for _, dir := range []string{userConfigDir(), "configs"} {
		if dir == "" {
			continue
		}
		for _, name := range configNames {
			if cfg, err := LoadFile(filepath.Join(dir, name)); err == nil {
				return cfg, nil
			}
		}
	}

	// Use embedded default YAML
	cfg := DefaultDefenseConfig()
	if err := yaml.Unmarshal(GetDefaultYAML("defense"), &cfg); err != nil {
		return DefaultDefenseConfig(), nil // Fallback to hardcoded if embed fails
	}
	return cfg, nil
}

// LoadFile reads a single config file, choosing the format by extension.
func LoadFile(path string) (DefenseConfig, error) {
	cfg := DefaultDefenseConfig()
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("failed to read config %s: %w", path, err)
	}
	if err := parseByExtension(data, filepath.Ext(path), &cfg); err != nil {
		return cfg, fmt.Errorf("failed to parse config %s: %w", path, err)
	}
	return cfg, nil
}

// parseByExtension routes to the correct decoder.
func parseByExtension(data []byte, ext string, cfg *DefenseConfig) error {
	switch strings.ToLower(ext) {
	case ".yaml", ".yml":
		return yaml.Unmarshal(data, cfg)
	case ".toml":
		_, err := toml.Decode(string(data), cfg)
		return err
	default:
		return fmt.Errorf("unsupported extension: %q", ext)
	}
}

// userConfigDir returns the user config directory, or empty if home is unavailable.
func userConfigDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".tui-defense", "configs")
}

// ApplyDefensePreset modifies the config based on a difficulty preset.
func ApplyDefensePreset(cfg *DefenseConfig, preset DifficultyPreset) {
	if preset == "" {
		return
	}
	if IsFixedPreset(preset) {
		cfg.Difficulty.Enabled = false
	} else {
		cfg.Difficulty.Enabled = true
		cfg.Difficulty.InitialLevel = InitialLevelForPreset(preset)
	}

	// Adjust gameplay based on difficulty
	switch preset {
	case DifficultyEasy:
		cfg.Game.StartingHealth = 20
	case DifficultyHard:
		cfg.Game.StartingHealth = 5
	}
}
