package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-defense/internal/registry"
	"github.com/vovakirdan/tui-defense/internal/storage"
)

var flagScoreLimit int

var scoresCmd = &cobra.Command{
	Use:   "scores [mode]",
	Short: "Show high scores and recent runs",
	Long: `Display the top scores and the latest runs for a mode (default: defense).

Examples:
  defense scores
  defense scores defense_sandbox --limit 5`,
	Args: cobra.MaximumNArgs(1),
	RunE: runScores,
}

func init() {
	scoresCmd.Flags().IntVar(&flagScoreLimit, "limit", 10, "Number of scores and runs to show")
}

func runScores(_ *cobra.Command, args []string) error {
	gameID := "defense"
	if len(args) == 1 {
		gameID = args[0]
	}

	game, err := registry.Create(gameID)
	if err != nil {
		return fmt.Errorf("%w, run 'defense list' to see available modes", err)
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		return fmt.Errorf("opening scores database: %w", err)
	}
	defer store.Close()

	scores, err := store.TopScores(gameID, flagScoreLimit)
	if err != nil {
		return err
	}
	runs, err := store.RecentRuns(gameID, flagScoreLimit)
	if err != nil {
		return err
	}

	fmt.Printf("High Scores - %s\n\n", game.Title())

	if len(scores) == 0 {
		fmt.Println("No scores recorded yet.")
		fmt.Println()
		fmt.Printf("Play 'defense play %s' to set the first high score!\n", gameID)
		return nil
	}

	fmt.Printf("  %-4s  %-10s  %s\n", "Rank", "Score", "Date")
	fmt.Printf("  %-4s  %-10s  %s\n", "----", "-----", "----")
	for i, entry := range scores {
		fmt.Printf("  %-4d  %-10d  %s\n", i+1, entry.Score, entry.CreatedAt.Format("2006-01-02 15:04"))
	}

	if highScore, err := store.HighScore(gameID); err == nil {
		fmt.Printf("\nBest: %d\n", highScore)
	}

	if len(runs) == 0 {
		return nil
	}
	fmt.Printf("\nRecent Runs\n\n")
	fmt.Printf("  %-9s  %-4s  %-5s  %-6s  %-7s  %s\n", "Outcome", "Wave", "Kills", "Health", "Score", "Date")
	for _, r := range runs {
		fmt.Printf("  %-9s  %-4d  %-5d  %-6d  %-7d  %s\n",
			r.Outcome, r.Waves, r.Kills, r.Health, r.Score, r.CreatedAt.Format("2006-01-02 15:04"))
	}
	return nil
}
