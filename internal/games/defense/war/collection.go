package war

// Behavior is the per-tick capability shared by enemies and effects.
type Behavior interface {
	// GameUpdate advances the entity by dt seconds. It returns false once
	// the entity finished and has already been recycled.
	GameUpdate(dt float64) bool
	// Recycle returns the entity to its origin pool.
	Recycle()
}

// Collection is an unordered set of live behaviors updated once per tick.
type Collection[T Behavior] struct {
	items []T
}

// Add inserts a behavior.
func (c *Collection[T]) Add(b T) {
	c.items = append(c.items, b)
}

// GameUpdate advances every behavior, dropping finished ones by swapping
// them with the last element. Behaviors added during the pass are updated
// in the same pass.
func (c *Collection[T]) GameUpdate(dt float64) {
	var zero T
	for i := 0; i < len(c.items); i++ {
		if !c.items[i].GameUpdate(dt) {
			last := len(c.items) - 1
			c.items[i] = c.items[last]
			c.items[last] = zero
			c.items = c.items[:last]
			i--
		}
	}
}

// Clear recycles and drops every behavior.
func (c *Collection[T]) Clear() {
	var zero T
	for i, b := range c.items {
		b.Recycle()
		c.items[i] = zero
	}
	c.items = c.items[:0]
}

// IsEmpty reports whether the collection has no behaviors.
func (c *Collection[T]) IsEmpty() bool { return len(c.items) == 0 }

// Len returns the number of behaviors.
func (c *Collection[T]) Len() int { return len(c.items) }

// Items returns the live behaviors. The slice is only valid until the next update.
func (c *Collection[T]) Items() []T { return c.items }
