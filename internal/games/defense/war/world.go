// Package war runs the fighting on top of a board: enemies walking the path
// field, towers shooting at them, and the shells and explosions in between.
package war

import (
	"fmt"
	"io"
	"math/rand"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-defense/internal/config"
	"github.com/vovakirdan/tui-defense/internal/games/defense/board"
	"github.com/vovakirdan/tui-defense/internal/games/defense/spawn"
)

// Stats counts what happened since the last Reset.
type Stats struct {
	Kills          int
	Leaked         int
	ShellsFired    int
	FailedLaunches int
}

// World owns the board, the live entities and the player's health.
type World struct {
	cfg    config.DefenseConfig
	rng    *rand.Rand
	logger *log.Logger

	board   *board.Board
	enemyF  *EnemyFactory
	warF    *WarFactory
	enemies Collection[*Enemy]
	effects Collection[Behavior]

	health int
	stats  Stats
}

// NewWorld builds a world from configuration and resets it.
func NewWorld(cfg config.DefenseConfig, seed int64) (*World, error) {
	w := &World{
		cfg:    cfg,
		rng:    rand.New(rand.NewSource(seed)),
		logger: log.New(io.Discard),
	}
	w.enemyF = NewEnemyFactory(cfg.Enemies, w.rng, w)
	w.warF = NewWarFactory(w, cfg.Effects.ExplosionDuration)
	w.board = board.New(cfg.Board.Width, cfg.Board.Height, board.NewContentFactory(w.buildTower))
	if err := w.Reset(); err != nil {
		return nil, err
	}
	return w, nil
}

// SetLogger replaces the logger used for recoverable failures.
func (w *World) SetLogger(l *log.Logger) {
	if l != nil {
		w.logger = l
	}
}

func (w *World) buildTower(t board.TowerType, c *board.Content) board.Updater {
	switch t {
	case board.TowerMortar:
		return newMortarTower(w, c, w.cfg.Towers.Mortar)
	default:
		return newLaserTower(w, c, w.cfg.Towers.Laser)
	}
}

// Reset recycles every entity, restores the player's health and rebuilds
// the board from the configured layout.
func (w *World) Reset() error {
	w.enemies.Clear()
	w.effects.Clear()
	w.health = w.cfg.Game.StartingHealth
	w.stats = Stats{}
	w.enemyF.SetScaling(1, 1)

	if len(w.cfg.Board.Layout) == 0 {
		w.board.Clear()
		return nil
	}
	if err := w.board.ApplyLayout(w.cfg.Board.Layout); err != nil {
		return fmt.Errorf("war: starting layout: %w", err)
	}
	return nil
}

// Board returns the world's board.
func (w *World) Board() *board.Board { return w.board }

// Enemies returns the live enemies.
func (w *World) Enemies() []*Enemy { return w.enemies.Items() }

// Effects returns the live shells and explosions.
func (w *World) Effects() []Behavior { return w.effects.Items() }

// HasEnemies reports whether any enemy is still on the board.
func (w *World) HasEnemies() bool { return !w.enemies.IsEmpty() }

// Health returns the player's remaining health.
func (w *World) Health() int { return w.health }

// Defeated reports whether the player ran out of health.
// A starting health of zero disables defeat.
func (w *World) Defeated() bool {
	return w.health <= 0 && w.cfg.Game.StartingHealth > 0
}

// Stats returns the counters since the last Reset.
func (w *World) Stats() Stats { return w.stats }

// EnemyFactory returns the factory used by Spawn.
func (w *World) EnemyFactory() *EnemyFactory { return w.enemyF }

// Spawn creates an enemy of kind k on a random spawn point.
func (w *World) Spawn(k spawn.Kind) {
	sp := w.board.SpawnPoint(w.rng.Intn(w.board.SpawnPointCount()))
	e := w.enemyF.Get(k)
	e.SpawnOn(sp)
	w.enemies.Add(e)
}

// SpawnShell returns a new shell that is updated with the other effects.
func (w *World) SpawnShell() *Shell {
	s := w.warF.Shell()
	w.effects.Add(s)
	w.stats.ShellsFired++
	return s
}

// SpawnExplosion returns a new explosion that is updated with the other effects.
func (w *World) SpawnExplosion() *Explosion {
	e := w.warF.Explosion()
	w.effects.Add(e)
	return e
}

// FindTargets appends to buf[:0] every valid enemy within radius of center,
// allowing for the enemy's size.
func (w *World) FindTargets(center board.Point, radius float64, buf []*Enemy) []*Enemy {
	buf = buf[:0]
	for _, e := range w.enemies.Items() {
		if !e.IsValidTarget() {
			continue
		}
		if center.Dist(e.Position()) <= radius+0.125*e.Scale() {
			buf = append(buf, e)
		}
	}
	return buf
}

// GameUpdate advances enemies, then towers, then effects.
func (w *World) GameUpdate(dt float64) {
	w.enemies.GameUpdate(dt)
	w.board.GameUpdate(dt)
	w.effects.GameUpdate(dt)
}

func (w *World) enemyKilled(e *Enemy) {
	w.stats.Kills++
}

func (w *World) enemyReachedDestination(e *Enemy) {
	w.health--
	w.stats.Leaked++
}

func (w *World) launchFailed(err error) {
	w.stats.FailedLaunches++
	w.logger.Debug("mortar launch skipped", "err", err)
}
