package defense

// Snapshot captures the game state for determinism testing and replay.
type Snapshot struct {
	Tick      uint64   `yaml:"tick"`
	Mode      string   `yaml:"mode"`
	Wave      int      `yaml:"wave"` // 1-based, 0 in sandbox
	Waves     int      `yaml:"waves"`
	Health    int      `yaml:"health"`
	Kills     int      `yaml:"kills"`
	Leaked    int      `yaml:"leaked"`
	Shells    int      `yaml:"shells"`
	Enemies   int      `yaml:"enemies"`
	Effects   int      `yaml:"effects"`
	Towers    int      `yaml:"towers"`
	Score     int      `yaml:"score"`
	Outcome   Outcome  `yaml:"outcome"`
	Paused    bool     `yaml:"paused"`
	PlaySpeed float64  `yaml:"play_speed"`
	CursorX   int      `yaml:"cursor_x"`
	CursorY   int      `yaml:"cursor_y"`
	Layout    []string `yaml:"layout"`
}

// Snapshot returns the current game snapshot for determinism verification.
func (g *Game) Snapshot() Snapshot {
	stats := g.world.Stats()
	waves := 0
	if g.waves != nil {
		waves = g.scenario.WaveCount()
	}
	return Snapshot{
		Tick:      g.tick,
		Mode:      string(g.mode),
		Wave:      g.wave(),
		Waves:     waves,
		Health:    g.world.Health(),
		Kills:     stats.Kills,
		Leaked:    stats.Leaked,
		Shells:    stats.ShellsFired,
		Enemies:   len(g.world.Enemies()),
		Effects:   len(g.world.Effects()),
		Towers:    g.world.Board().Towers(),
		Score:     g.score,
		Outcome:   g.outcome,
		Paused:    g.paused,
		PlaySpeed: g.playSpeed,
		CursorX:   g.cursorX,
		CursorY:   g.cursorY,
		Layout:    g.world.Board().Layout(),
	}
}
