package war

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/tui-defense/internal/config"
	"github.com/vovakirdan/tui-defense/internal/games/defense/board"
	"github.com/vovakirdan/tui-defense/internal/games/defense/spawn"
)

func testConfig(layout ...string) config.DefenseConfig {
	cfg := config.DefaultDefenseConfig()
	cfg.Board.Width = len(layout[0])
	cfg.Board.Height = len(layout)
	cfg.Board.Layout = layout

	fixed := config.EnemyConfig{
		Scale:      config.Fixed(1),
		Speed:      config.Fixed(1),
		PathOffset: config.Fixed(0),
		Health:     config.Fixed(10),
	}
	cfg.Enemies = config.DefenseEnemies{Small: fixed, Medium: fixed, Large: fixed}
	cfg.Game.StartingHealth = 3
	cfg.Towers.Laser.DamagePerSecond = 4
	cfg.Towers.Mortar.ShotsPerSecond = 0
	return cfg
}

func newTestWorld(t *testing.T, cfg config.DefenseConfig) *World {
	t.Helper()
	w, err := NewWorld(cfg, 1)
	require.NoError(t, err)
	return w
}

func TestNewWorldRejectsBadLayout(t *testing.T) {
	cfg := testConfig("S.#D.")
	_, err := NewWorld(cfg, 1)
	require.Error(t, err)
	assert.True(t, errors.Is(err, board.ErrDisconnected))
}

func TestEnemyWalksToDestination(t *testing.T) {
	w := newTestWorld(t, testConfig("S...D"))
	w.Spawn(spawn.KindSmall)
	require.Len(t, w.Enemies(), 1)

	e := w.Enemies()[0]
	assert.Equal(t, board.Point{X: -2, Y: 0}, e.Position())

	w.GameUpdate(0.5)
	assert.InDelta(t, -1.75, e.Position().X, 1e-9)
	assert.Equal(t, board.DirEast, e.dir)

	w.GameUpdate(0.5)
	w.GameUpdate(3)
	require.Len(t, w.Enemies(), 1)
	assert.Same(t, w.Board().TileAt(4, 0), e.Tile())
	assert.Equal(t, 3, w.Health())

	w.GameUpdate(1)
	assert.Empty(t, w.Enemies())
	assert.Equal(t, 2, w.Health())
	assert.Equal(t, 1, w.Stats().Leaked)
	assert.True(t, e.Released())
	assert.Equal(t, 0, w.EnemyFactory().Live())
}

func TestEnemyPathOffsetIsPerpendicular(t *testing.T) {
	cfg := testConfig("S...D")
	cfg.Enemies.Small.PathOffset = config.Fixed(0.25)
	w := newTestWorld(t, cfg)
	w.Spawn(spawn.KindSmall)

	// Walking east, a positive offset shifts to the right-hand side.
	assert.Equal(t, board.Point{X: -2, Y: -0.25}, w.Enemies()[0].Position())
}

func TestDefeatAfterHealthRunsOut(t *testing.T) {
	w := newTestWorld(t, testConfig("S.D"))
	for range 3 {
		w.Spawn(spawn.KindMedium)
	}
	assert.False(t, w.Defeated())

	for range 10 {
		w.GameUpdate(1)
	}
	assert.Equal(t, 0, w.Health())
	assert.True(t, w.Defeated())
}

func TestZeroStartingHealthNeverDefeats(t *testing.T) {
	cfg := testConfig("S.D")
	cfg.Game.StartingHealth = 0
	w := newTestWorld(t, cfg)
	w.Spawn(spawn.KindSmall)
	for range 10 {
		w.GameUpdate(1)
	}
	assert.False(t, w.Defeated())
}

func TestApplyDamageRejectsNegative(t *testing.T) {
	w := newTestWorld(t, testConfig("S...D"))
	w.Spawn(spawn.KindSmall)
	assert.Panics(t, func() { w.Enemies()[0].ApplyDamage(-1) })
}

func TestSpawnOnDestinationPanics(t *testing.T) {
	w := newTestWorld(t, testConfig("S...D"))
	e := w.EnemyFactory().Get(spawn.KindSmall)
	assert.Panics(t, func() { e.SpawnOn(w.Board().TileAt(4, 0)) })
}

func TestFindTargetsAllowsForEnemySize(t *testing.T) {
	w := newTestWorld(t, testConfig("S...D"))
	w.Spawn(spawn.KindSmall)

	buf := make([]*Enemy, 0, 4)
	center := board.Point{X: -1, Y: 0}

	found := w.FindTargets(center, 0.9, buf)
	assert.Len(t, found, 1)

	found = w.FindTargets(center, 0.8, found)
	assert.Empty(t, found)

	w.Enemies()[0].ApplyDamage(10)
	found = w.FindTargets(center, 5, found)
	assert.Empty(t, found, "dead enemies are not targets")
}

func TestLaserAcquiresAndBurnsTarget(t *testing.T) {
	w := newTestWorld(t, testConfig(
		"..L..",
		"S...D",
	))
	laser, ok := w.Board().TileAt(2, 1).Content().Behavior().(*LaserTower)
	require.True(t, ok)
	assert.Equal(t, 1, w.Board().Towers())

	w.Spawn(spawn.KindSmall)
	e := w.Enemies()[0]

	w.GameUpdate(1)
	assert.Nil(t, laser.Target())
	assert.Equal(t, 10.0, e.Health())

	w.GameUpdate(0.5)
	assert.Same(t, e, laser.Target())
	assert.InDelta(t, 8.0, e.Health(), 1e-9)

	w.GameUpdate(0.5)
	assert.Same(t, e, laser.Target())
	assert.InDelta(t, 6.0, e.Health(), 1e-9)
}

func TestLaserKeepsTargetWhileInRange(t *testing.T) {
	cfg := testConfig(
		"..L..",
		"S...D",
	)
	cfg.Towers.Laser.Range = 3
	cfg.Enemies.Small.Speed = config.Fixed(0)
	w := newTestWorld(t, cfg)
	laser := w.Board().TileAt(2, 1).Content().Behavior().(*LaserTower)

	w.Spawn(spawn.KindSmall)
	w.Spawn(spawn.KindSmall)
	require.Len(t, w.Enemies(), 2)

	w.GameUpdate(0.1)
	first := laser.Target()
	require.NotNil(t, first)

	for range 20 {
		w.GameUpdate(0.1)
		require.Same(t, first, laser.Target())
	}
	for _, e := range w.Enemies() {
		if e == first {
			assert.InDelta(t, 10-4*2.1, e.Health(), 1e-9)
		} else {
			assert.Equal(t, 10.0, e.Health())
		}
	}
}

func TestMortarCountsFailedLaunches(t *testing.T) {
	cfg := testConfig(
		"M....",
		"D...S",
	)
	cfg.Towers.Mortar.Range = 1
	cfg.Towers.Mortar.ShotsPerSecond = 1
	// Large enough to be found by FindTargets but beyond the shell's reach.
	cfg.Enemies.Small.Scale = config.Fixed(30)
	cfg.Enemies.Small.Speed = config.Fixed(0)
	w := newTestWorld(t, cfg)

	w.Spawn(spawn.KindSmall)
	w.GameUpdate(1)
	assert.Equal(t, 1, w.Stats().FailedLaunches)
	assert.Equal(t, 0, w.Stats().ShellsFired)
	assert.Empty(t, w.Effects())

	w.GameUpdate(2)
	assert.Equal(t, 3, w.Stats().FailedLaunches)
}

func TestLaserKillIsCounted(t *testing.T) {
	cfg := testConfig(
		"..L..",
		"S...D",
	)
	cfg.Towers.Laser.DamagePerSecond = 100
	w := newTestWorld(t, cfg)
	laser := w.Board().TileAt(2, 1).Content().Behavior().(*LaserTower)

	w.Spawn(spawn.KindSmall)
	w.GameUpdate(1.5)
	require.NotNil(t, laser.Target())

	w.GameUpdate(0.1)
	assert.Empty(t, w.Enemies())
	assert.Equal(t, 1, w.Stats().Kills)
	assert.Equal(t, 3, w.Health())

	w.GameUpdate(0.1)
	assert.Nil(t, laser.Target())
}

func TestMortarLaunchSpeedCoversRange(t *testing.T) {
	w := newTestWorld(t, testConfig(
		"M....",
		"S...D",
	))
	m := w.Board().TileAt(0, 1).Content().Behavior().(*MortarTower)
	assert.Greater(t, m.LaunchSpeed(), 0.0)

	far := m.content.Position().Add(board.Point{X: 50})
	err := m.Launch(far)
	assert.ErrorIs(t, err, ErrLaunchInfeasible)

	err = m.Launch(m.content.Position())
	assert.ErrorIs(t, err, ErrLaunchInfeasible)

	assert.Empty(t, w.Effects())
	assert.Equal(t, 0, w.Stats().ShellsFired)
}

func TestMortarShellExplodesOnTarget(t *testing.T) {
	cfg := testConfig(
		"M....",
		"S...D",
	)
	cfg.Enemies.Small.Speed = config.Fixed(0)
	w := newTestWorld(t, cfg)
	m := w.Board().TileAt(0, 1).Content().Behavior().(*MortarTower)

	w.Spawn(spawn.KindSmall)
	e := w.Enemies()[0]
	require.NoError(t, m.Launch(e.Position()))
	require.Len(t, w.Effects(), 1)
	assert.Equal(t, 1, w.Stats().ShellsFired)

	var blast *Explosion
	for range 500 {
		w.GameUpdate(0.02)
		for _, fx := range w.Effects() {
			if x, ok := fx.(*Explosion); ok {
				blast = x
			}
		}
		if blast != nil {
			break
		}
	}
	require.NotNil(t, blast, "shell never landed")
	assert.Equal(t, e.Position(), blast.Position())
	assert.Equal(t, cfg.Towers.Mortar.BlastRadius, blast.Radius())
	assert.LessOrEqual(t, e.Health(), 0.0)

	w.GameUpdate(0.02)
	assert.Empty(t, w.Enemies())
	assert.Equal(t, 1, w.Stats().Kills)

	for range 50 {
		w.GameUpdate(0.02)
	}
	assert.Empty(t, w.Effects())
	shells, explosions := w.warF.Live()
	assert.Zero(t, shells)
	assert.Zero(t, explosions)
}

func TestMortarStaysPrimedWithoutTarget(t *testing.T) {
	cfg := testConfig(
		"M....",
		"S...D",
	)
	cfg.Towers.Mortar.ShotsPerSecond = 1
	w := newTestWorld(t, cfg)
	m := w.Board().TileAt(0, 1).Content().Behavior().(*MortarTower)

	w.GameUpdate(2)
	assert.InDelta(t, 0.999, m.launchProgress, 1e-9)
	assert.Empty(t, w.Effects())

	w.Spawn(spawn.KindSmall)
	w.GameUpdate(0.01)
	assert.Equal(t, 1, w.Stats().ShellsFired)
}

func TestTowerRemovalStopsUpdates(t *testing.T) {
	w := newTestWorld(t, testConfig(
		"..L..",
		"S...D",
	))
	tile := w.Board().TileAt(2, 1)
	assert.Equal(t, board.EditApplied, w.Board().ToggleTower(tile, board.TowerLaser))
	assert.Equal(t, 0, w.Board().Towers())
	assert.Nil(t, tile.Content().Behavior())
}

func TestResetRecyclesEverything(t *testing.T) {
	w := newTestWorld(t, testConfig(
		"M....",
		"S...D",
	))
	m := w.Board().TileAt(0, 1).Content().Behavior().(*MortarTower)
	w.Spawn(spawn.KindSmall)
	w.Spawn(spawn.KindLarge)
	require.NoError(t, m.Launch(board.Point{X: 0, Y: -0.5}))
	w.GameUpdate(1)

	require.NoError(t, w.Reset())
	assert.Empty(t, w.Enemies())
	assert.Empty(t, w.Effects())
	assert.Equal(t, 0, w.EnemyFactory().Live())
	assert.Equal(t, 3, w.Health())
	assert.Equal(t, Stats{}, w.Stats())
	assert.Equal(t, []string{"M....", "S...D"}, w.Board().Layout())
}
