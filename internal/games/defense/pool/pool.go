// Package pool provides ownership-checked allocation for game entities.
//
// Every pooled entity embeds an Origin that records the pool that produced
// it. The origin is assigned exactly once, and an entity can only be
// reclaimed through that same pool. Breaking either rule is a programming
// error and panics.
package pool

import "fmt"

// token identifies a pool independently of its element type.
type token struct {
	name string
}

// Origin is embedded in pooled entities and tracks their owning pool.
type Origin struct {
	owner    *token
	released bool
	recycle  func()
}

// Pooled is satisfied by any type that embeds Origin.
type Pooled interface {
	poolOrigin() *Origin
}

func (o *Origin) poolOrigin() *Origin {
	return o
}

// PoolName returns the name of the owning pool, or "" if unowned.
func (o *Origin) PoolName() string {
	if o.owner == nil {
		return ""
	}
	return o.owner.name
}

// Released reports whether the entity has been reclaimed.
func (o *Origin) Released() bool {
	return o.released
}

// Recycle returns the entity to its origin pool.
func (o *Origin) Recycle() {
	if o.recycle == nil {
		panic("pool: recycle of an instance without an origin pool")
	}
	o.recycle()
}

// Pool hands out entities created by its constructor and takes them back.
// It enforces the ownership contract only; memory reuse is left to the runtime.
type Pool[T Pooled] struct {
	id        *token
	create    func() T
	live      int
	onReclaim func(T)
}

// New creates a pool with the given diagnostic name and constructor.
func New[T Pooled](name string, create func() T) *Pool[T] {
	if create == nil {
		panic(fmt.Sprintf("pool %s: nil constructor", name))
	}
	return &Pool[T]{
		id:     &token{name: name},
		create: create,
	}
}

// OnReclaim installs a hook invoked for every reclaimed instance.
func (p *Pool[T]) OnReclaim(fn func(T)) {
	p.onReclaim = fn
}

// Name returns the pool's diagnostic name.
func (p *Pool[T]) Name() string {
	return p.id.name
}

// Live returns the number of instances handed out and not yet reclaimed.
func (p *Pool[T]) Live() int {
	return p.live
}

// Get constructs a new instance and claims it for this pool.
// Panics if the constructor returns an instance that already has an owner.
func (p *Pool[T]) Get() T {
	inst := p.create()
	o := inst.poolOrigin()
	if o.owner != nil {
		panic(fmt.Sprintf("pool %s: redefined origin pool (already owned by %s)", p.id.name, o.owner.name))
	}
	o.owner = p.id
	o.released = false
	o.recycle = func() { p.Reclaim(inst) }
	p.live++
	return inst
}

// Reclaim releases an instance produced by this pool.
// Panics if the instance belongs to another pool or was already reclaimed.
func (p *Pool[T]) Reclaim(inst T) {
	o := inst.poolOrigin()
	switch {
	case o.owner == nil:
		panic(fmt.Sprintf("pool %s: reclaim of an instance without an origin pool", p.id.name))
	case o.owner != p.id:
		panic(fmt.Sprintf("pool %s: wrong reclaim pool (instance belongs to %s)", p.id.name, o.owner.name))
	case o.released:
		panic(fmt.Sprintf("pool %s: instance reclaimed twice", p.id.name))
	}
	o.released = true
	p.live--
	if p.onReclaim != nil {
		p.onReclaim(inst)
	}
}
