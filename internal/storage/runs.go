package storage

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

// Outcome is how a run ended.
type Outcome string

const (
	OutcomeVictory   Outcome = "victory"
	OutcomeDefeat    Outcome = "defeat"
	OutcomeAbandoned Outcome = "abandoned"
)

// RunResult is one finished game of tower defense.
type RunResult struct {
	ID        string // Assigned by SaveRun when empty
	GameID    string
	Outcome   Outcome
	Kills     int
	Health    int // Health left when the run ended
	Waves     int // Waves reached
	Ticks     uint64
	Score     int
	Seed      int64
	CreatedAt time.Time
}

// SaveRun records a finished run and returns its ID.
func (s *Store) SaveRun(r RunResult) (string, error) {
	if r.ID == "" {
		r.ID = uuid.NewString()
	}
	switch r.Outcome {
	case OutcomeVictory, OutcomeDefeat, OutcomeAbandoned:
	default:
		return "", fmt.Errorf("storage: unknown run outcome %q", r.Outcome)
	}

	_, err := s.db.Exec(
		`INSERT INTO runs (id, game_id, outcome, kills, health, waves, ticks, score, seed)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		r.ID, r.GameID, string(r.Outcome), r.Kills, r.Health, r.Waves, int64(r.Ticks), r.Score, r.Seed,
	)
	if err != nil {
		return "", fmt.Errorf("storage: cannot save run: %w", err)
	}
	return r.ID, nil
}

// RecentRuns returns the latest runs of a game, newest first.
// A non-positive limit means 20.
func (s *Store) RecentRuns(gameID string, limit int) ([]RunResult, error) {
	if limit <= 0 {
		limit = 20
	}

	rows, err := s.db.Query(
		`SELECT id, game_id, outcome, kills, health, waves, ticks, score, seed, created_at
		 FROM runs
		 WHERE game_id = ?
		 ORDER BY created_at DESC, rowid DESC
		 LIMIT ?`,
		gameID, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query runs: %w", err)
	}
	defer rows.Close()

	var runs []RunResult
	for rows.Next() {
		var r RunResult
		var outcome string
		var ticks int64
		var createdAt any
		if err := rows.Scan(&r.ID, &r.GameID, &outcome, &r.Kills, &r.Health, &r.Waves,
			&ticks, &r.Score, &r.Seed, &createdAt); err != nil {
			return nil, fmt.Errorf("storage: cannot scan run: %w", err)
		}
		r.Outcome = Outcome(outcome)
		r.Ticks = uint64(ticks)
		r.CreatedAt = parseTime(createdAt)
		runs = append(runs, r)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}
	return runs, nil
}
