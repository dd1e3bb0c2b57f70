package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-defense/internal/config"
)

var defaultsCmd = &cobra.Command{
	Use:   "defaults",
	Short: "Print the built-in defense config",
	Long: `Prints the embedded default YAML config. Save it as
~/.tui-defense/configs/defense.yaml and edit it to customize the game.`,
	Args: cobra.NoArgs,
	RunE: runDefaults,
}

func runDefaults(_ *cobra.Command, _ []string) error {
	data := config.GetDefaultYAML("defense")
	if data == nil {
		return fmt.Errorf("no embedded defense config")
	}
	_, err := os.Stdout.Write(data)
	return err
}
