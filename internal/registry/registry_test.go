package registry

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/tui-defense/internal/core"
)

type stubGame struct{ id string }

func (g *stubGame) ID() string                           { return g.id }
func (g *stubGame) Title() string                        { return "Stub " + g.id }
func (g *stubGame) Reset(core.RuntimeConfig)             {}
func (g *stubGame) Step(core.InputFrame) core.StepResult { return core.StepResult{} }
func (g *stubGame) Render(*core.Screen)                  {}
func (g *stubGame) State() core.GameState                { return core.GameState{} }

func TestRegisterAndCreate(t *testing.T) {
	Register("zz_stub", func() Game { return &stubGame{id: "zz_stub"} })
	Register("aa_stub", func() Game { return &stubGame{id: "aa_stub"} })

	assert.True(t, Exists("zz_stub"))
	assert.False(t, Exists("missing"))

	list := List()
	require.GreaterOrEqual(t, len(list), 2)
	assert.Equal(t, GameInfo{ID: "aa_stub", Title: "Stub aa_stub"}, list[0])

	g, err := Create("zz_stub")
	require.NoError(t, err)
	assert.Equal(t, "zz_stub", g.ID())

	g2, err := Create("zz_stub")
	require.NoError(t, err)
	assert.NotSame(t, g, g2)

	_, err = Create("missing")
	assert.ErrorContains(t, err, "unknown game")
}

func TestRegisterDuplicatePanics(t *testing.T) {
	Register("dup_stub", func() Game { return &stubGame{id: "dup_stub"} })
	assert.Panics(t, func() {
		Register("dup_stub", func() Game { return &stubGame{id: "dup_stub"} })
	})
	assert.Panics(t, func() { Register("", nil) })
}
