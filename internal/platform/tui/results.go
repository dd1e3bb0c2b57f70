package tui

import (
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-defense/internal/core"
	"github.com/vovakirdan/tui-defense/internal/games/defense"
	"github.com/vovakirdan/tui-defense/internal/registry"
	"github.com/vovakirdan/tui-defense/internal/storage"
)

// runSummarizer is implemented by games that report more than a score.
type runSummarizer interface {
	Summary() defense.Summary
}

// RunFromSummary converts a game summary into a storage record.
// A run that is still being played is stored as abandoned.
func RunFromSummary(s defense.Summary) storage.RunResult {
	outcome := storage.OutcomeAbandoned
	switch s.Outcome {
	case defense.OutcomeVictory:
		outcome = storage.OutcomeVictory
	case defense.OutcomeDefeat:
		outcome = storage.OutcomeDefeat
	}
	return storage.RunResult{
		GameID:  s.GameID,
		Outcome: outcome,
		Kills:   s.Kills,
		Health:  s.Health,
		Waves:   s.Waves,
		Ticks:   s.Ticks,
		Score:   s.Score,
		Seed:    s.Seed,
	}
}

// recordResult stores the score and, when the game provides one, the run
// summary. Failures are logged and otherwise ignored.
func recordResult(store *storage.Store, game registry.Game, state core.GameState, logger *log.Logger) {
	if store == nil {
		return
	}
	if state.Score > 0 {
		if _, err := store.SaveScore(game.ID(), state.Score); err != nil {
			logger.Warn("could not save score", "game", game.ID(), "error", err)
		}
	}
	rs, ok := game.(runSummarizer)
	if !ok {
		return
	}
	sum := rs.Summary()
	if sum.Ticks == 0 {
		return
	}
	id, err := store.SaveRun(RunFromSummary(sum))
	if err != nil {
		logger.Warn("could not save run", "game", game.ID(), "error", err)
		return
	}
	logger.Debug("run saved", "id", id, "outcome", sum.Outcome, "score", sum.Score)
}
