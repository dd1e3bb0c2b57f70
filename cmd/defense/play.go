package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-defense/internal/core"
	"github.com/vovakirdan/tui-defense/internal/platform/tui"
	"github.com/vovakirdan/tui-defense/internal/registry"
	"github.com/vovakirdan/tui-defense/internal/storage"
)

var playCmd = &cobra.Command{
	Use:   "play [mode]",
	Short: "Play a mode",
	Long: `Start playing the given mode (default: defense).

Controls:
  Arrows/WASD/HJKL - Move the cursor
  Space            - Toggle wall
  1 / 2            - Toggle laser / mortar tower
  X / Z            - Toggle destination / spawn point
  V                - Show or hide path arrows
  + / -            - Faster / slower
  Enter            - Spawn a random enemy (sandbox)
  P/Esc            - Pause
  R                - Restart (after the run ends)
  Ctrl+S           - Save a screenshot
  Q/Ctrl+C         - Quit

Difficulty options:
  easy   - Waves start weak and scale up slowly
  normal - Default scaling
  hard   - Less health, stronger waves from the start
  fixed  - No scaling between waves

Examples:
  defense play
  defense play defense_sandbox
  defense play --difficulty hard
  defense play --config ./my-defense.yaml`,
	Args: cobra.MaximumNArgs(1),
	RunE: runPlay,
}

// terminalConfig builds the runtime config from the terminal size and flags.
func terminalConfig() core.RuntimeConfig {
	width, height := 80, 24
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		width, height = w, h
	}
	return core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     flagSeed,
	}
}

// openStore opens the scores database; the game still runs without one.
func openStore() *storage.Store {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		log.Warn("could not open scores database", "error", err)
		return nil
	}
	return store
}

func runPlay(_ *cobra.Command, args []string) error {
	gameID := "defense"
	if len(args) == 1 {
		gameID = args[0]
	}

	if !registry.Exists(gameID) {
		return fmt.Errorf("unknown mode %q, run 'defense list' to see available modes", gameID)
	}
	game, err := registry.Create(gameID)
	if err != nil {
		return err
	}
	warnConfig()

	store := openStore()
	restore := logToFile()
	runErr := tui.Run(game, store, terminalConfig())
	restore()

	if store != nil {
		store.Close()
	}
	if runErr != nil {
		return fmt.Errorf("running game: %w", runErr)
	}
	return nil
}
