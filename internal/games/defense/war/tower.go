package war

import (
	"errors"
	"fmt"
	"math"

	"github.com/vovakirdan/tui-defense/internal/config"
	"github.com/vovakirdan/tui-defense/internal/games/defense/board"
)

// Gravity is the downward acceleration applied to shells.
const Gravity = 9.81

// ErrLaunchInfeasible is returned when no firing angle reaches the target.
var ErrLaunchInfeasible = errors.New("war: launch velocity insufficient for range")

// targeting is shared by every tower type.
type targeting struct {
	world   *World
	content *board.Content
	reach   float64
	buf     []*Enemy
}

// acquireTarget picks a random valid enemy in range.
func (t *targeting) acquireTarget() *Enemy {
	t.buf = t.world.FindTargets(t.content.Position(), t.reach, t.buf)
	if len(t.buf) == 0 {
		return nil
	}
	return t.buf[t.world.rng.Intn(len(t.buf))]
}

// inRange reports whether a valid target is still within reach.
func (t *targeting) inRange(e *Enemy) bool {
	if e == nil || !e.IsValidTarget() {
		return false
	}
	r := t.reach + 0.125*e.Scale()
	return t.content.Position().Dist(e.Position()) <= r
}

// LaserTower burns a single target continuously.
type LaserTower struct {
	targeting
	damagePerSecond float64
	target          *Enemy
}

func newLaserTower(w *World, c *board.Content, cfg config.LaserConfig) *LaserTower {
	return &LaserTower{
		targeting:       targeting{world: w, content: c, reach: cfg.Range},
		damagePerSecond: cfg.DamagePerSecond,
	}
}

// Target returns the enemy currently hit by the beam, or nil.
func (l *LaserTower) Target() *Enemy { return l.target }

// GameUpdate keeps the current target while it stays valid and in range,
// otherwise picks a new one, and applies damage for dt seconds.
func (l *LaserTower) GameUpdate(dt float64) {
	if !l.inRange(l.target) {
		l.target = l.acquireTarget()
	}
	if l.target != nil {
		l.target.ApplyDamage(l.damagePerSecond * dt)
	}
}

// MortarTower lobs shells that explode on impact.
type MortarTower struct {
	targeting
	cfg            config.MortarConfig
	launchSpeed    float64
	launchProgress float64
}

func newMortarTower(w *World, c *board.Content, cfg config.MortarConfig) *MortarTower {
	x := cfg.Range + 0.25001
	y := -cfg.Height
	return &MortarTower{
		targeting:   targeting{world: w, content: c, reach: cfg.Range},
		cfg:         cfg,
		launchSpeed: math.Sqrt(Gravity * (y + math.Sqrt(x*x+y*y))),
	}
}

// LaunchSpeed returns the muzzle speed needed to cover the tower's range.
func (m *MortarTower) LaunchSpeed() float64 { return m.launchSpeed }

// GameUpdate fires one shell per whole unit of accumulated launch progress.
// Without a target the mortar stays primed just below the next shot.
func (m *MortarTower) GameUpdate(dt float64) {
	m.launchProgress += m.cfg.ShotsPerSecond * dt
	for m.launchProgress >= 1 {
		target := m.acquireTarget()
		if target == nil {
			m.launchProgress = 0.999
			continue
		}
		if err := m.Launch(target.Position()); err != nil {
			m.world.launchFailed(err)
		}
		m.launchProgress--
	}
}

// Launch fires a shell at a ground point, taking the high arc.
func (m *MortarTower) Launch(target board.Point) error {
	origin := m.content.Position()
	dir := target.Sub(origin)
	x := dir.Len()
	if x < 1e-6 {
		return fmt.Errorf("%w: target under the mortar", ErrLaunchInfeasible)
	}
	dir = dir.Scale(1 / x)

	y := -m.cfg.Height
	g := Gravity
	s := m.launchSpeed
	s2 := s * s

	r := s2*s2 - g*(g*x*x+2*y*s2)
	if r < 0 {
		return fmt.Errorf("%w: distance %.2f", ErrLaunchInfeasible, x)
	}
	tanTheta := (s2 + math.Sqrt(r)) / (g * x)
	cosTheta := math.Cos(math.Atan(tanTheta))
	sinTheta := cosTheta * tanTheta

	m.world.SpawnShell().Initialize(
		origin, m.cfg.Height,
		target,
		dir.Scale(s*cosTheta), s*sinTheta,
		m.cfg.BlastRadius, m.cfg.Damage,
	)
	return nil
}
