package war

import (
	"fmt"
	"math/rand"

	"github.com/vovakirdan/tui-defense/internal/config"
	"github.com/vovakirdan/tui-defense/internal/games/defense/board"
	"github.com/vovakirdan/tui-defense/internal/games/defense/pool"
	"github.com/vovakirdan/tui-defense/internal/games/defense/spawn"
)

// Enemy walks the path field from a spawn point to a destination.
type Enemy struct {
	pool.Origin

	world *World
	kind  spawn.Kind

	scale, speed, offset float64
	health, maxHealth    float64

	tileFrom, tileTo *board.Tile
	posFrom, posTo   board.Point
	dir              board.Direction
	progress         float64
}

// Kind returns the enemy type.
func (e *Enemy) Kind() spawn.Kind { return e.kind }

// Scale returns the enemy size factor.
func (e *Enemy) Scale() float64 { return e.scale }

// Health returns the remaining health.
func (e *Enemy) Health() float64 { return e.health }

// HealthFraction returns the remaining health in [0, 1].
func (e *Enemy) HealthFraction() float64 {
	if e.maxHealth <= 0 {
		return 0
	}
	return max(0, e.health/e.maxHealth)
}

// Tile returns the tile the enemy is leaving.
func (e *Enemy) Tile() *board.Tile { return e.tileFrom }

// IsValidTarget reports whether towers may aim at the enemy.
func (e *Enemy) IsValidTarget() bool {
	return e.health > 0 && !e.Released()
}

// Position returns the enemy's location on the board plane.
func (e *Enemy) Position() board.Point {
	p := e.posFrom.Lerp(e.posTo, e.progress)
	side := (e.dir + 1) % 4
	return p.Add(side.HalfVector().Scale(2 * e.offset))
}

// ApplyDamage lowers the enemy's health. Negative damage panics.
func (e *Enemy) ApplyDamage(damage float64) {
	if damage < 0 {
		panic(fmt.Sprintf("war: negative damage %v applied", damage))
	}
	e.health -= damage
}

// SpawnOn places the enemy on a spawn tile. The tile must have a next tile.
func (e *Enemy) SpawnOn(t *board.Tile) {
	if t.NextOnPath() == nil {
		panic("war: enemy spawned where there is nowhere to go")
	}
	e.tileFrom = t
	e.tileTo = t.NextOnPath()
	e.posFrom = t.Position()
	e.posTo = t.ExitPoint()
	e.dir = t.ExitDirection()
	e.progress = 0
}

// GameUpdate moves the enemy along the path. It returns false once the
// enemy died or reached a destination.
func (e *Enemy) GameUpdate(dt float64) bool {
	if e.health <= 0 {
		e.world.enemyKilled(e)
		e.Recycle()
		return false
	}
	e.progress += dt * e.speed
	for e.progress >= 1 {
		if e.tileTo == nil {
			e.world.enemyReachedDestination(e)
			e.Recycle()
			return false
		}
		e.progress--
		e.prepareNextState()
	}
	return true
}

func (e *Enemy) prepareNextState() {
	e.tileFrom = e.tileTo
	e.tileTo = e.tileTo.NextOnPath()
	e.posFrom = e.posTo
	if e.tileTo == nil {
		e.posTo = e.tileFrom.Position()
		return
	}
	e.posTo = e.tileFrom.ExitPoint()
	e.dir = e.tileFrom.ExitDirection()
}

// EnemyFactory creates enemies from per-kind random ranges.
type EnemyFactory struct {
	pool  *pool.Pool[*Enemy]
	cfg   config.DefenseEnemies
	rng   *rand.Rand
	world *World

	healthScale float64
	speedScale  float64
}

// NewEnemyFactory creates a factory sampling from rng.
func NewEnemyFactory(cfg config.DefenseEnemies, rng *rand.Rand, w *World) *EnemyFactory {
	return &EnemyFactory{
		pool:        pool.New("enemies", func() *Enemy { return &Enemy{} }),
		cfg:         cfg,
		rng:         rng,
		world:       w,
		healthScale: 1,
		speedScale:  1,
	}
}

// SetScaling multiplies the health and speed of enemies created afterwards.
func (f *EnemyFactory) SetScaling(health, speed float64) {
	f.healthScale = health
	f.speedScale = speed
}

// Get creates an enemy of the given kind.
func (f *EnemyFactory) Get(k spawn.Kind) *Enemy {
	c := f.cfg.For(k)
	e := f.pool.Get()
	e.world = f.world
	e.kind = k
	e.scale = c.Scale.Lerp(f.rng.Float64())
	e.speed = c.Speed.Lerp(f.rng.Float64()) * f.speedScale
	e.offset = c.PathOffset.Lerp(f.rng.Float64())
	e.health = c.Health.Lerp(f.rng.Float64()) * f.healthScale
	e.maxHealth = e.health
	return e
}

// Reclaim returns an enemy to the factory's pool.
func (f *EnemyFactory) Reclaim(e *Enemy) {
	f.pool.Reclaim(e)
}

// Live returns the number of enemies not yet reclaimed.
func (f *EnemyFactory) Live() int {
	return f.pool.Live()
}
