package spawn

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recorder struct {
	kinds []Kind
}

func (r *recorder) Spawn(k Kind) {
	r.kinds = append(r.kinds, k)
}

func TestSequenceCarriesRemainder(t *testing.T) {
	rec := &recorder{}
	st := NewSequence(KindSmall, 3, 1.0).Begin(rec)

	assert.Equal(t, Active, st.Progress(2.5))
	assert.Equal(t, 2, st.Count())

	assert.Equal(t, 9.5, st.Progress(10.0))
	assert.Equal(t, 3, st.Count())
	assert.Len(t, rec.kinds, 3)

	assert.Equal(t, 14.5, st.Progress(5.0))
	assert.Len(t, rec.kinds, 3)
}

func TestSequenceWaitsFullCooldown(t *testing.T) {
	rec := &recorder{}
	st := NewSequence(KindLarge, 1, 2.0).Begin(rec)

	assert.Equal(t, Active, st.Progress(1.5))
	assert.Empty(t, rec.kinds)
	assert.Equal(t, Active, st.Progress(0.5))
	assert.Equal(t, []Kind{KindLarge}, rec.kinds)
	assert.Equal(t, Active, st.Progress(1.75))
	assert.Equal(t, 2.25, st.Progress(0.5))
}

func TestEmptySequenceReturnsAfterOneCooldown(t *testing.T) {
	rec := &recorder{}
	st := NewSequence(KindSmall, 0, 1.0).Begin(rec)

	assert.Equal(t, Active, st.Progress(0.5))
	assert.Equal(t, 1.0, st.Progress(0.5))
	assert.Empty(t, rec.kinds)
}

func TestSequenceValidation(t *testing.T) {
	assert.Panics(t, func() { NewSequence(KindSmall, 1, 0) })
	assert.Panics(t, func() { NewSequence(KindSmall, 1, -1) })
	assert.Panics(t, func() { NewSequence(KindSmall, -1, 1) })
	assert.Panics(t, func() { Sequence{Kind: KindSmall, Amount: 1}.Begin(&recorder{}) })
}

func TestWaveCascadesLeftover(t *testing.T) {
	rec := &recorder{}
	w := Wave{Sequences: []Sequence{
		NewSequence(KindSmall, 2, 1.0),
		NewSequence(KindMedium, 1, 0.5),
	}}
	st := w.Begin(rec)

	assert.Equal(t, 7.5, st.Progress(10.0))
	assert.Equal(t, []Kind{KindSmall, KindSmall, KindMedium}, rec.kinds)
}

func TestWaveStaysActive(t *testing.T) {
	rec := &recorder{}
	w := Wave{Sequences: []Sequence{
		NewSequence(KindSmall, 1, 1.0),
		NewSequence(KindLarge, 2, 1.0),
	}}
	st := w.Begin(rec)

	assert.Equal(t, Active, st.Progress(3.0))
	assert.Equal(t, []Kind{KindSmall, KindLarge, KindLarge}, rec.kinds)
}

func TestEmptyWavePanics(t *testing.T) {
	assert.PanicsWithValue(t, "spawn: wave has no sequences", func() {
		Wave{}.Begin(&recorder{})
	})
}

func TestEmptyScenarioPanics(t *testing.T) {
	assert.PanicsWithValue(t, "spawn: scenario has no waves", func() {
		Scenario{}.Begin(&recorder{})
	})
}

func testScenario() Scenario {
	return Scenario{Waves: []Wave{
		{Sequences: []Sequence{
			NewSequence(KindSmall, 3, 1.0),
			NewSequence(KindMedium, 2, 0.5),
		}},
		{Sequences: []Sequence{
			NewSequence(KindLarge, 1, 2.0),
		}},
	}}
}

func TestScenarioSingleCall(t *testing.T) {
	rec := &recorder{}
	st := testScenario().Begin(rec)

	assert.False(t, st.Progress(20.0))
	assert.Equal(t, 14.0, st.Leftover())
	assert.Equal(t, []Kind{KindSmall, KindSmall, KindSmall, KindMedium, KindMedium, KindLarge}, rec.kinds)
	assert.Equal(t, 2, st.Wave())
}

func TestScenarioChunkingInvariance(t *testing.T) {
	whole := &recorder{}
	wholeState := testScenario().Begin(whole)
	wholeState.Progress(20.0)

	for _, step := range []float64{0.125, 0.25, 0.5, 1.5, 4.0} {
		chunked := &recorder{}
		st := testScenario().Begin(chunked)

		ended := false
		for elapsed := 0.0; elapsed < 20.0; elapsed += step {
			dt := min(step, 20.0-elapsed)
			active := st.Progress(dt)
			if ended {
				require.False(t, active, "scenario restarted after finishing (step %v)", step)
			}
			ended = !active
		}

		assert.True(t, ended, "step %v", step)
		assert.Equal(t, whole.kinds, chunked.kinds, "step %v", step)
		assert.Equal(t, wholeState.Leftover(), st.Leftover(), "step %v", step)
	}
}

func TestScenarioWaveIndex(t *testing.T) {
	rec := &recorder{}
	st := testScenario().Begin(rec)

	assert.Equal(t, 1, st.Wave())
	assert.True(t, st.Progress(4.25))
	assert.Equal(t, 1, st.Wave())
	assert.True(t, st.Progress(0.5))
	assert.Equal(t, 2, st.Wave())
	assert.Equal(t, 2, testScenario().WaveCount())
}

func TestSpawnerFunc(t *testing.T) {
	var got []Kind
	st := NewSequence(KindMedium, 2, 1.0).Begin(SpawnerFunc(func(k Kind) { got = append(got, k) }))
	st.Progress(2.0)
	assert.Equal(t, []Kind{KindMedium, KindMedium}, got)
}

func TestParseKind(t *testing.T) {
	for _, k := range []Kind{KindSmall, KindMedium, KindLarge} {
		parsed, err := ParseKind(k.String())
		require.NoError(t, err)
		assert.Equal(t, k, parsed)
	}
	_, err := ParseKind("huge")
	assert.Error(t, err)
}
