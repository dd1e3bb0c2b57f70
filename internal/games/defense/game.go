// Package defense is a tile tower-defense game. Enemies walk the shortest
// path from spawn points to destinations while the player edits the board
// with walls and towers between and during waves.
package defense

import (
	"fmt"
	"math/rand"

	"github.com/vovakirdan/tui-defense/internal/config"
	"github.com/vovakirdan/tui-defense/internal/core"
	"github.com/vovakirdan/tui-defense/internal/games/defense/board"
	"github.com/vovakirdan/tui-defense/internal/games/defense/spawn"
	"github.com/vovakirdan/tui-defense/internal/games/defense/war"
	"github.com/vovakirdan/tui-defense/internal/registry"
)

// Mode selects between the scripted scenario and free building.
type Mode string

const (
	ModeScenario Mode = "scenario"
	ModeSandbox  Mode = "sandbox"
)

// Outcome is the state of a run.
type Outcome string

const (
	OutcomePlaying Outcome = "playing"
	OutcomeVictory Outcome = "victory"
	OutcomeDefeat  Outcome = "defeat"
)

const (
	minPlaySpeed   = 0.25
	maxPlaySpeed   = 8
	editNoticeSecs = 1.5
)

// Package-level settings applied on the next Reset.
var (
	configPath       string
	difficultyPreset string
)

// SetConfigPath sets a custom config file path.
func SetConfigPath(path string) {
	configPath = path
}

// SetDifficultyPreset sets the difficulty preset (easy, normal, hard, fixed).
func SetDifficultyPreset(preset string) {
	difficultyPreset = preset
}

// Game hosts a world, a scenario and the board cursor.
type Game struct {
	mode Mode

	cfg        config.DefenseConfig
	cfgErr     error
	world      *war.World
	scenario   spawn.Scenario
	waves      *spawn.ScenarioState
	difficulty *config.DifficultyManager
	rng        *rand.Rand
	seed       int64

	tickRate  int
	playSpeed float64
	tick      uint64
	score     int
	outcome   Outcome
	paused    bool
	showPaths bool

	cursorX, cursorY int
	lastEdit         board.EditResult
	lastEditAction   core.Action
	editNoticeTicks  int

	screenW, screenH int
	boardX, boardY   int
	tooSmall         bool
}

// New creates a scenario game.
func New() *Game {
	return &Game{mode: ModeScenario}
}

// NewSandbox creates a sandbox game: no scenario, no defeat, manual spawning.
func NewSandbox() *Game {
	return &Game{mode: ModeSandbox}
}

func init() {
	registry.Register("defense", func() registry.Game {
		return New()
	})
	registry.Register("defense_sandbox", func() registry.Game {
		return NewSandbox()
	})
}

// ID returns the game identifier.
func (g *Game) ID() string {
	if g.mode == ModeSandbox {
		return "defense_sandbox"
	}
	return "defense"
}

// Title returns the display name.
func (g *Game) Title() string {
	if g.mode == ModeSandbox {
		return "Tower Defense (Sandbox)"
	}
	return "Tower Defense"
}

// ConfigError returns the error that made the last Reset fall back to the
// built-in configuration, if any.
func (g *Game) ConfigError() error { return g.cfgErr }

// World returns the running world.
func (g *Game) World() *war.World { return g.world }

// Reset loads configuration and starts a new run.
func (g *Game) Reset(rc core.RuntimeConfig) {
	g.cfg, g.cfgErr = LoadConfig()
	if g.mode == ModeSandbox {
		g.cfg.Game.StartingHealth = 0
	}

	g.seed = rc.Seed
	g.rng = rand.New(rand.NewSource(rc.Seed))
	g.tickRate = rc.TickRate
	if g.tickRate <= 0 {
		g.tickRate = core.DefaultTickRate
	}
	g.screenW = rc.ScreenW
	g.screenH = rc.ScreenH

	world, err := war.NewWorld(g.cfg, g.rng.Int63())
	if err != nil {
		// The starting layout does not fit the board rules; play on the cleared board.
		g.cfgErr = err
		g.cfg.Board.Layout = nil
		world, _ = war.NewWorld(g.cfg, g.rng.Int63())
	}
	g.world = world

	g.difficulty = config.NewDifficultyManager(g.cfg.Difficulty)
	g.scenario, err = g.cfg.BuildScenario()
	if err != nil {
		g.cfgErr = err
		g.scenario, _ = config.DefaultDefenseConfig().BuildScenario()
	}
	g.waves = nil
	if g.mode == ModeScenario {
		g.waves = g.scenario.Begin(spawn.SpawnerFunc(g.spawnEnemy))
	}
	g.applyScaling(1)

	g.playSpeed = g.cfg.Game.PlaySpeed
	g.tick = 0
	g.score = 0
	g.outcome = OutcomePlaying
	g.paused = false
	g.editNoticeTicks = 0

	w, h := g.world.Board().Size()
	g.cursorX, g.cursorY = w/2, h/2
	g.updateLayout()
}

// LoadConfig reads the configured file and applies the difficulty preset.
// Any failure falls back to the built-in defaults and is returned.
func LoadConfig() (config.DefenseConfig, error) {
	cfg, err := config.LoadDefense(configPath)
	if err == nil {
		err = cfg.Validate()
	}
	if err != nil {
		cfg = config.DefaultDefenseConfig()
	}
	preset, perr := config.ParsePreset(difficultyPreset)
	if perr != nil && err == nil {
		err = perr
	}
	config.ApplyDefensePreset(&cfg, preset)
	return cfg, err
}

// spawnEnemy scales enemies for the wave that emits them.
func (g *Game) spawnEnemy(k spawn.Kind) {
	wave := 1
	if g.waves != nil {
		wave = g.waves.Wave()
	}
	g.applyScaling(wave)
	g.world.Spawn(k)
}

func (g *Game) applyScaling(wave int) {
	n := max(1, g.scenario.WaveCount())
	g.world.EnemyFactory().SetScaling(
		g.difficulty.HealthScale(wave, n),
		g.difficulty.SpeedScale(wave, n),
	)
}

// Step advances the game by one tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	if in.Has(core.ActionRestart) && g.outcome != OutcomePlaying {
		g.Reset(core.RuntimeConfig{
			Seed:     g.rng.Int63(),
			TickRate: g.tickRate,
			ScreenW:  g.screenW,
			ScreenH:  g.screenH,
		})
		return core.StepResult{State: g.State()}
	}
	if g.outcome != OutcomePlaying || g.tooSmall {
		return core.StepResult{State: g.State()}
	}

	if in.Has(core.ActionPause) {
		g.paused = !g.paused
	}
	g.handleInput(in)
	if g.editNoticeTicks > 0 {
		g.editNoticeTicks--
	}
	if g.paused {
		return core.StepResult{State: g.State()}
	}

	g.tick++
	g.advance(g.playSpeed / float64(g.tickRate))
	return core.StepResult{State: g.State()}
}

// advance runs one simulation step of dt seconds.
func (g *Game) advance(dt float64) {
	if g.world.Defeated() {
		g.outcome = OutcomeDefeat
		return
	}
	if g.waves != nil && !g.waves.Progress(dt) && !g.world.HasEnemies() {
		g.outcome = OutcomeVictory
		g.score = g.killScore() + g.world.Health()*g.cfg.Game.HealthPoints
		return
	}
	g.world.GameUpdate(dt)
	g.score = g.killScore()
}

func (g *Game) killScore() int {
	return g.world.Stats().Kills * g.cfg.Game.KillPoints
}

// handleInput moves the cursor and applies board edits.
func (g *Game) handleInput(in core.InputFrame) {
	w, h := g.world.Board().Size()
	switch {
	case in.Has(core.ActionUp):
		g.cursorY = min(h-1, g.cursorY+1)
	case in.Has(core.ActionDown):
		g.cursorY = max(0, g.cursorY-1)
	case in.Has(core.ActionLeft):
		g.cursorX = max(0, g.cursorX-1)
	case in.Has(core.ActionRight):
		g.cursorX = min(w-1, g.cursorX+1)
	}

	b := g.world.Board()
	tile := b.TileAt(g.cursorX, g.cursorY)
	for _, a := range []core.Action{
		core.ActionWall, core.ActionLaser, core.ActionMortar,
		core.ActionDestination, core.ActionSpawnPoint,
	} {
		if !in.Has(a) {
			continue
		}
		var res board.EditResult
		switch a {
		case core.ActionWall:
			res = b.ToggleWall(tile)
		case core.ActionLaser:
			res = b.ToggleTower(tile, board.TowerLaser)
		case core.ActionMortar:
			res = b.ToggleTower(tile, board.TowerMortar)
		case core.ActionDestination:
			res = b.ToggleDestination(tile)
		case core.ActionSpawnPoint:
			res = b.ToggleSpawnPoint(tile)
		}
		g.lastEdit = res
		g.lastEditAction = a
		g.editNoticeTicks = int(editNoticeSecs * float64(g.tickRate))
	}

	if in.Has(core.ActionTogglePaths) {
		g.showPaths = !g.showPaths
	}
	if in.Has(core.ActionFaster) {
		g.playSpeed = min(maxPlaySpeed, g.playSpeed*2)
	}
	if in.Has(core.ActionSlower) {
		g.playSpeed = max(minPlaySpeed, g.playSpeed/2)
	}
	if g.mode == ModeSandbox && in.Has(core.ActionConfirm) {
		kinds := []spawn.Kind{spawn.KindSmall, spawn.KindMedium, spawn.KindLarge}
		g.world.Spawn(kinds[g.rng.Intn(len(kinds))])
	}
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:    g.score,
		GameOver: g.outcome != OutcomePlaying,
		Paused:   g.paused,
	}
}

// Outcome returns whether the run is still going, won or lost.
func (g *Game) Outcome() Outcome { return g.outcome }

// Summary describes a run for persistence.
type Summary struct {
	GameID  string
	Outcome Outcome
	Kills   int
	Health  int
	Waves   int
	Ticks   uint64
	Score   int
	Seed    int64
}

// Summary returns the current run's summary.
func (g *Game) Summary() Summary {
	return Summary{
		GameID:  g.ID(),
		Outcome: g.outcome,
		Kills:   g.world.Stats().Kills,
		Health:  g.world.Health(),
		Waves:   g.wave(),
		Ticks:   g.tick,
		Score:   g.score,
		Seed:    g.seed,
	}
}

func (g *Game) wave() int {
	if g.waves == nil {
		return 0
	}
	return g.waves.Wave()
}

// String implements fmt.Stringer for debugging.
func (g *Game) String() string {
	return fmt.Sprintf("%s tick=%d wave=%d/%d health=%d enemies=%d score=%d outcome=%s",
		g.ID(), g.tick, g.wave(), g.scenario.WaveCount(), g.world.Health(),
		len(g.world.Enemies()), g.score, g.outcome)
}
