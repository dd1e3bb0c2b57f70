package storage

import (
	"testing"

	"github.com/google/uuid"
)

func TestSaveRunAssignsID(t *testing.T) {
	store := openTestStore(t)

	id, err := store.SaveRun(RunResult{
		GameID:  "defense",
		Outcome: OutcomeVictory,
		Kills:   42,
		Health:  7,
		Waves:   3,
		Ticks:   5400,
		Score:   770,
		Seed:    99,
	})
	if err != nil {
		t.Fatalf("SaveRun() failed: %v", err)
	}
	if _, err := uuid.Parse(id); err != nil {
		t.Errorf("run ID %q is not a UUID: %v", id, err)
	}

	runs, err := store.RecentRuns("defense", 5)
	if err != nil {
		t.Fatalf("RecentRuns() failed: %v", err)
	}
	if len(runs) != 1 {
		t.Fatalf("Expected 1 run, got %d", len(runs))
	}
	r := runs[0]
	if r.ID != id || r.Outcome != OutcomeVictory || r.Kills != 42 || r.Health != 7 ||
		r.Waves != 3 || r.Ticks != 5400 || r.Score != 770 || r.Seed != 99 {
		t.Errorf("run round trip mismatch: %+v", r)
	}
}

func TestSaveRunKeepsGivenID(t *testing.T) {
	store := openTestStore(t)
	want := uuid.NewString()

	got, err := store.SaveRun(RunResult{ID: want, GameID: "defense", Outcome: OutcomeAbandoned})
	if err != nil {
		t.Fatalf("SaveRun() failed: %v", err)
	}
	if got != want {
		t.Errorf("SaveRun() = %q, want %q", got, want)
	}

	if _, err := store.SaveRun(RunResult{ID: want, GameID: "defense", Outcome: OutcomeAbandoned}); err == nil {
		t.Error("duplicate run ID should fail")
	}
}

func TestSaveRunRejectsUnknownOutcome(t *testing.T) {
	store := openTestStore(t)
	if _, err := store.SaveRun(RunResult{GameID: "defense", Outcome: "draw"}); err == nil {
		t.Error("expected error for unknown outcome")
	}
}

func TestRecentRunsNewestFirst(t *testing.T) {
	store := openTestStore(t)

	var ids []string
	for i := range 4 {
		id, err := store.SaveRun(RunResult{GameID: "defense", Outcome: OutcomeDefeat, Kills: i})
		if err != nil {
			t.Fatalf("SaveRun() failed: %v", err)
		}
		ids = append(ids, id)
	}
	store.SaveRun(RunResult{GameID: "defense_sandbox", Outcome: OutcomeAbandoned})

	runs, err := store.RecentRuns("defense", 3)
	if err != nil {
		t.Fatalf("RecentRuns() failed: %v", err)
	}
	if len(runs) != 3 {
		t.Fatalf("Expected 3 runs, got %d", len(runs))
	}
	for i, r := range runs {
		if r.ID != ids[3-i] {
			t.Errorf("runs[%d] = %s, want %s", i, r.ID, ids[3-i])
		}
	}
}
