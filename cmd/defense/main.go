// defense is a tile tower-defense game for the terminal.
//
// Usage:
//
//	defense list               - List available modes
//	defense play [mode]        - Play a mode (default: defense)
//	defense menu               - Start menu to pick modes interactively
//	defense serve              - Start SSH server for remote play
//	defense scores [mode]      - Show high scores and recent runs
//	defense simulate           - Run a headless game and print the result
//	defense paths              - Print the path field of the configured board
//
// Global flags:
//
//	--fps <rate>          - Set tick rate (default: 60)
//	--seed <value>        - Set RNG seed for reproducible gameplay
//	--db <path>           - Set database path (default: ~/.tui-defense/scores.db)
//	--config <path>       - Use a specific YAML or TOML config file
//	--difficulty <preset> - easy, normal, hard or fixed
//	--log-level <level>   - debug, info, warn or error
package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-defense/internal/config"
	"github.com/vovakirdan/tui-defense/internal/games/defense"
)

var (
	// Global flags
	flagFPS        int
	flagSeed       int64
	flagDBPath     string
	flagConfig     string
	flagDifficulty string
	flagLogLevel   string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		log.Error(err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "defense",
	Short: "Tile tower defense in your terminal",
	Long: `Build walls and towers on a tile board while waves of enemies walk
the shortest path from spawn points to destinations.

Available commands:
  list      - Show all available modes
  play      - Play a mode directly
  menu      - Interactive mode picker
  serve     - Start SSH server for remote play
  scores    - View high scores and recent runs
  simulate  - Run a headless game
  paths     - Print the board's path field

Examples:
  defense play
  defense play defense_sandbox
  defense menu --difficulty hard
  defense serve --ssh :2222
  defense simulate --seed 42 --save`,
	SilenceUsage:      true,
	PersistentPreRunE: setup,
}

func init() {
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.tui-defense/scores.db", "Path to scores database")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom defense config (YAML or TOML)")
	rootCmd.PersistentFlags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")

	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(simulateCmd)
	rootCmd.AddCommand(pathsCmd)
	rootCmd.AddCommand(defaultsCmd)
}

// setup applies the global flags before any subcommand runs.
func setup(_ *cobra.Command, _ []string) error {
	level, err := log.ParseLevel(flagLogLevel)
	if err != nil {
		return fmt.Errorf("invalid --log-level: %w", err)
	}
	log.SetLevel(level)
	log.SetReportTimestamp(false)

	if flagFPS <= 0 {
		return fmt.Errorf("invalid --fps %d: must be positive", flagFPS)
	}
	if _, err := config.ParsePreset(flagDifficulty); err != nil {
		return err
	}

	defense.SetConfigPath(flagConfig)
	defense.SetDifficultyPreset(flagDifficulty)
	return nil
}

// logToFile sends log output to ~/.tui-defense/defense.log while a full-screen
// program owns the terminal. The returned function restores stderr.
func logToFile() func() {
	home, err := os.UserHomeDir()
	if err != nil {
		return func() {}
	}
	dir := filepath.Join(home, ".tui-defense")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return func() {}
	}
	f, err := os.OpenFile(filepath.Join(dir, "defense.log"), os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o600)
	if err != nil {
		return func() {}
	}
	log.SetOutput(f)
	log.SetReportTimestamp(true)
	return func() {
		log.SetOutput(os.Stderr)
		log.SetReportTimestamp(false)
		f.Close()
	}
}

// warnConfig reports a config that could not be used as given.
func warnConfig() {
	if _, err := defense.LoadConfig(); err != nil {
		log.Warn("using built-in defense config", "error", err)
	}
}
