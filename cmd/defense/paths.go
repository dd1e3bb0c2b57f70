package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-defense/internal/games/defense"
	"github.com/vovakirdan/tui-defense/internal/games/defense/war"
)

var flagDistances bool

var pathsCmd = &cobra.Command{
	Use:   "paths",
	Short: "Print the path field of the configured board",
	Long: `Build the configured starting board and print, for every tile, the
direction an enemy leaves it in. With --distances, print each tile's
number of steps to the nearest destination instead.

Legend: D destination, S spawn point, # wall, L laser, M mortar,
arrows point along the path.

Examples:
  defense paths
  defense paths --config ./maze.yaml --distances`,
	Args: cobra.NoArgs,
	RunE: runPaths,
}

func init() {
	pathsCmd.Flags().BoolVar(&flagDistances, "distances", false, "Print distances instead of arrows")
}

func runPaths(_ *cobra.Command, _ []string) error {
	cfg, err := defense.LoadConfig()
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}
	world, err := war.NewWorld(cfg, flagSeed)
	if err != nil {
		return err
	}

	rows := defense.DescribePaths(world.Board())
	if flagDistances {
		rows = defense.DescribeDistances(world.Board())
	}
	for _, row := range rows {
		fmt.Println(row)
	}
	return nil
}
