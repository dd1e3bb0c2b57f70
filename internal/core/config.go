package core

// DefaultTickRate is the simulation rate used when none is given.
const DefaultTickRate = 60

// RuntimeConfig is handed to Game.Reset at the start of every run.
type RuntimeConfig struct {
	ScreenW  int   // Screen width in cells; zero with ScreenH runs headless
	ScreenH  int   // Screen height in cells
	TickRate int   // Fixed simulation steps per second
	Seed     int64 // 0 lets the platform pick a time-based seed
}

// DefaultConfig returns an 80x24 screen at the default tick rate.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: DefaultTickRate,
	}
}

// Headless reports whether the run has no screen to draw on.
func (c RuntimeConfig) Headless() bool {
	return c.ScreenW == 0 && c.ScreenH == 0
}

// StepSeconds returns the simulated time of one step, falling back to
// the default tick rate when TickRate is not positive.
func (c RuntimeConfig) StepSeconds() float64 {
	if c.TickRate <= 0 {
		return 1.0 / DefaultTickRate
	}
	return 1.0 / float64(c.TickRate)
}

// GameState is the status a game reports to the platform after each step.
type GameState struct {
	Score    int
	GameOver bool // Victory or defeat; restart is allowed
	Paused   bool
}

// StepResult is returned by Game.Step.
type StepResult struct {
	State GameState
}
