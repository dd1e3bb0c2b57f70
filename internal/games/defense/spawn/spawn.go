// Package spawn schedules enemy spawns from sequence, wave and scenario
// descriptors.
//
// All three levels share one protocol: Progress consumes a time delta and
// either stays active or reports the time it did not use, so the caller can
// feed that remainder into the next stage within the same tick.
package spawn

import "fmt"

// Kind identifies the enemy type to spawn.
type Kind uint8

const (
	KindSmall Kind = iota
	KindMedium
	KindLarge
)

// String returns the config name of the kind.
func (k Kind) String() string {
	switch k {
	case KindSmall:
		return "small"
	case KindMedium:
		return "medium"
	case KindLarge:
		return "large"
	default:
		return fmt.Sprintf("kind(%d)", uint8(k))
	}
}

// ParseKind converts a config name into a Kind.
func ParseKind(s string) (Kind, error) {
	switch s {
	case "small":
		return KindSmall, nil
	case "medium":
		return KindMedium, nil
	case "large":
		return KindLarge, nil
	}
	return 0, fmt.Errorf("spawn: unknown enemy kind %q", s)
}

// Spawner receives spawn events.
type Spawner interface {
	Spawn(k Kind)
}

// SpawnerFunc adapts a function to Spawner.
type SpawnerFunc func(k Kind)

// Spawn calls f(k).
func (f SpawnerFunc) Spawn(k Kind) { f(k) }

// Active is returned by sequence and wave Progress while they still have
// spawns left to emit.
const Active = -1.0

// Sequence spawns Amount enemies of one kind, one every Cooldown seconds.
type Sequence struct {
	Kind     Kind
	Amount   int
	Cooldown float64
}

// NewSequence validates and returns a sequence descriptor.
func NewSequence(k Kind, amount int, cooldown float64) Sequence {
	s := Sequence{Kind: k, Amount: amount, Cooldown: cooldown}
	s.validate()
	return s
}

func (s Sequence) validate() {
	if s.Cooldown <= 0 {
		panic(fmt.Sprintf("spawn: sequence cooldown must be positive, got %v", s.Cooldown))
	}
	if s.Amount < 0 {
		panic(fmt.Sprintf("spawn: sequence amount must not be negative, got %d", s.Amount))
	}
}

// Begin starts the sequence with an empty accumulator.
func (s Sequence) Begin(sp Spawner) *SequenceState {
	s.validate()
	return &SequenceState{seq: s, spawner: sp}
}

// SequenceState is the progress cursor of a running sequence.
type SequenceState struct {
	seq      Sequence
	spawner  Spawner
	count    int
	cooldown float64
}

// Count returns how many spawns were emitted.
func (st *SequenceState) Count() int { return st.count }

// Progress advances the sequence by dt. It returns Active while spawns
// remain, otherwise the accumulated time that was not spent on a spawn.
func (st *SequenceState) Progress(dt float64) float64 {
	st.cooldown += dt
	for st.cooldown >= st.seq.Cooldown {
		if st.count >= st.seq.Amount {
			return st.cooldown
		}
		st.spawner.Spawn(st.seq.Kind)
		st.count++
		st.cooldown -= st.seq.Cooldown
	}
	return Active
}

// Wave runs its sequences one after another.
type Wave struct {
	Sequences []Sequence
}

// Begin starts the first sequence. Panics on an empty wave.
func (w Wave) Begin(sp Spawner) *WaveState {
	if len(w.Sequences) == 0 {
		panic("spawn: wave has no sequences")
	}
	return &WaveState{wave: w, spawner: sp, seq: w.Sequences[0].Begin(sp)}
}

// WaveState is the progress cursor of a running wave.
type WaveState struct {
	wave    Wave
	spawner Spawner
	index   int
	seq     *SequenceState
}

// Progress advances the wave by dt, carrying leftover time from a finished
// sequence into the next. Returns Active or the final leftover.
func (st *WaveState) Progress(dt float64) float64 {
	dt = st.seq.Progress(dt)
	for dt >= 0 {
		st.index++
		if st.index >= len(st.wave.Sequences) {
			return dt
		}
		st.seq = st.wave.Sequences[st.index].Begin(st.spawner)
		dt = st.seq.Progress(dt)
	}
	return Active
}

// Scenario runs its waves one after another.
type Scenario struct {
	Waves []Wave
}

// WaveCount returns the number of waves.
func (s Scenario) WaveCount() int { return len(s.Waves) }

// Begin starts the first wave. Panics on an empty scenario.
func (s Scenario) Begin(sp Spawner) *ScenarioState {
	if len(s.Waves) == 0 {
		panic("spawn: scenario has no waves")
	}
	return &ScenarioState{scenario: s, spawner: sp, wave: s.Waves[0].Begin(sp)}
}

// ScenarioState is the progress cursor of a running scenario.
type ScenarioState struct {
	scenario Scenario
	spawner  Spawner
	index    int
	wave     *WaveState
	done     bool
	leftover float64
}

// Wave returns the 1-based number of the current wave.
func (st *ScenarioState) Wave() int {
	return min(st.index+1, len(st.scenario.Waves))
}

// Leftover returns the time not consumed once the scenario finished.
func (st *ScenarioState) Leftover() float64 { return st.leftover }

// Progress advances the scenario by dt. It returns false once every wave
// has emitted all of its spawns.
func (st *ScenarioState) Progress(dt float64) bool {
	if st.done {
		st.leftover += dt
		return false
	}
	dt = st.wave.Progress(dt)
	for dt >= 0 {
		st.index++
		if st.index >= len(st.scenario.Waves) {
			st.done = true
			st.leftover = dt
			return false
		}
		st.wave = st.scenario.Waves[st.index].Begin(st.spawner)
		dt = st.wave.Progress(dt)
	}
	return true
}
