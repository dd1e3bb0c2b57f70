package war

import (
	"github.com/vovakirdan/tui-defense/internal/games/defense/board"
	"github.com/vovakirdan/tui-defense/internal/games/defense/pool"
)

// Shell is a mortar projectile in ballistic flight.
type Shell struct {
	pool.Origin

	world *World

	launch       board.Point
	launchHeight float64
	target       board.Point
	velocity     board.Point
	velocityUp   float64
	blastRadius  float64
	damage       float64

	age    float64
	pos    board.Point
	height float64
}

// Initialize sets the trajectory of a freshly spawned shell.
func (s *Shell) Initialize(launch board.Point, height float64, target board.Point,
	velocity board.Point, velocityUp, blastRadius, damage float64) {
	s.launch = launch
	s.launchHeight = height
	s.target = target
	s.velocity = velocity
	s.velocityUp = velocityUp
	s.blastRadius = blastRadius
	s.damage = damage
	s.age = 0
	s.pos = launch
	s.height = height
}

// Position returns the shell's ground projection.
func (s *Shell) Position() board.Point { return s.pos }

// Height returns the shell's altitude.
func (s *Shell) Height() float64 { return s.height }

// GameUpdate advances the flight. On touching the ground the shell explodes
// at its target and is recycled.
func (s *Shell) GameUpdate(dt float64) bool {
	s.age += dt
	p := s.launch.Add(s.velocity.Scale(s.age))
	h := s.launchHeight + s.velocityUp*s.age - 0.5*Gravity*s.age*s.age
	if h < 0 {
		s.world.SpawnExplosion().Initialize(s.target, s.blastRadius, s.damage)
		s.Recycle()
		return false
	}
	s.pos = p
	s.height = h
	return true
}

// Explosion damages enemies in its radius once and lingers for a while.
type Explosion struct {
	pool.Origin

	world    *World
	duration float64
	buf      []*Enemy

	age    float64
	pos    board.Point
	radius float64
}

// Initialize places the explosion and applies its damage.
func (e *Explosion) Initialize(pos board.Point, radius, damage float64) {
	e.pos = pos
	e.radius = radius
	e.age = 0
	if damage > 0 {
		e.buf = e.world.FindTargets(pos, radius, e.buf)
		for _, enemy := range e.buf {
			enemy.ApplyDamage(damage)
		}
	}
}

// Position returns the blast center.
func (e *Explosion) Position() board.Point { return e.pos }

// Radius returns the blast radius.
func (e *Explosion) Radius() float64 { return e.radius }

// Progress returns the elapsed fraction of the explosion's lifetime.
func (e *Explosion) Progress() float64 { return min(1, e.age/e.duration) }

// GameUpdate ages the explosion and recycles it when its time is up.
func (e *Explosion) GameUpdate(dt float64) bool {
	e.age += dt
	if e.age >= e.duration {
		e.Recycle()
		return false
	}
	return true
}

// WarFactory creates shells and explosions.
type WarFactory struct {
	shells     *pool.Pool[*Shell]
	explosions *pool.Pool[*Explosion]
}

// NewWarFactory creates the projectile pools for a world.
func NewWarFactory(w *World, explosionDuration float64) *WarFactory {
	return &WarFactory{
		shells: pool.New("shells", func() *Shell {
			return &Shell{world: w}
		}),
		explosions: pool.New("explosions", func() *Explosion {
			return &Explosion{world: w, duration: explosionDuration}
		}),
	}
}

// Shell returns a new shell.
func (f *WarFactory) Shell() *Shell { return f.shells.Get() }

// Explosion returns a new explosion.
func (f *WarFactory) Explosion() *Explosion { return f.explosions.Get() }

// Live returns the number of shells and explosions in use.
func (f *WarFactory) Live() (shells, explosions int) {
	return f.shells.Live(), f.explosions.Live()
}
