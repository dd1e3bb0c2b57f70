package pool

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type widget struct {
	Origin
	n int
}

func newWidgetPool(name string) *Pool[*widget] {
	n := 0
	return New(name, func() *widget {
		n++
		return &widget{n: n}
	})
}

func TestGetThenReclaim(t *testing.T) {
	p := newWidgetPool("widgets")

	w := p.Get()
	require.NotNil(t, w)
	assert.Equal(t, "widgets", w.PoolName())
	assert.Equal(t, 1, p.Live())

	p.Reclaim(w)
	assert.Equal(t, 0, p.Live())
	assert.True(t, w.Released())
}

func TestGetCreatesDistinctInstances(t *testing.T) {
	p := newWidgetPool("widgets")
	a, b := p.Get(), p.Get()
	assert.NotSame(t, a, b)
	assert.Equal(t, 2, p.Live())
}

func TestReclaimThroughForeignPoolPanics(t *testing.T) {
	a := newWidgetPool("a")
	b := newWidgetPool("b")

	w := a.Get()
	assert.PanicsWithValue(t, "pool b: wrong reclaim pool (instance belongs to a)", func() {
		b.Reclaim(w)
	})
	assert.Equal(t, 1, a.Live())
}

func TestReclaimTwicePanics(t *testing.T) {
	p := newWidgetPool("widgets")
	w := p.Get()
	p.Reclaim(w)
	assert.Panics(t, func() { p.Reclaim(w) })
}

func TestReclaimUnownedPanics(t *testing.T) {
	p := newWidgetPool("widgets")
	assert.Panics(t, func() { p.Reclaim(&widget{}) })
}

func TestRedefinedOriginPanics(t *testing.T) {
	shared := &widget{}
	p := New("shared", func() *widget { return shared })

	p.Get()
	assert.Panics(t, func() { p.Get() })

	other := New("other", func() *widget { return shared })
	assert.Panics(t, func() { other.Get() })
}

func TestRecycleUsesOriginPool(t *testing.T) {
	p := newWidgetPool("widgets")
	var reclaimed []*widget
	p.OnReclaim(func(w *widget) { reclaimed = append(reclaimed, w) })

	w := p.Get()
	w.Recycle()

	require.Len(t, reclaimed, 1)
	assert.Same(t, w, reclaimed[0])
	assert.Equal(t, 0, p.Live())
}

func TestRecycleWithoutOriginPanics(t *testing.T) {
	w := &widget{}
	assert.Panics(t, func() { w.Recycle() })
}
