package astar

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Psrit/TilegameAI/state"
)

// pt is a minimal state without successors; relax is driven by hand.
type pt int

func (p pt) Equal(o pt) bool                           { return p == o }
func (p pt) Hash() uint64                              { return state.HashInts(int(p)) }
func (p pt) Successors() []state.Successor[pt, string] { return nil }

func newTestRunner(t *testing.T, h Heuristic[pt], cfg Options) *runner[pt, string] {
	t.Helper()
	r := newRunner[pt, string](cfg.Ctx, func(pt) bool { return false }, h, cfg, Hooks[pt, string]{})
	require.NoError(t, r.seed(0))
	return r
}

func TestRelax_DecreaseKey(t *testing.T) {
	h := func(p pt) float64 { return 10 }
	r := newTestRunner(t, h, DefaultOptions())

	// fresh discovery
	require.NoError(t, r.relax(state.Successor[pt, string]{State: 1, Action: "slow", Cost: 5}, 0, 0))
	rec, ok := r.records.Get(1)
	require.True(t, ok)
	assert.Equal(t, 5.0, rec.G)
	assert.Equal(t, 15.0, rec.F)
	p, _ := r.open.Priority(1)
	assert.Equal(t, 15.0, p)

	// strictly cheaper: g and f drop by the same delta, origin rewritten
	require.NoError(t, r.relax(state.Successor[pt, string]{State: 1, Action: "fast", Cost: 2}, 1, 3))
	assert.Equal(t, 3.0, rec.G)
	assert.Equal(t, 13.0, rec.F)
	assert.Equal(t, "fast", rec.OriginAction)
	assert.Equal(t, 3, rec.OriginIndex)
	assert.True(t, rec.HasOrigin)
	p, _ = r.open.Priority(1)
	assert.Equal(t, 13.0, p)

	// equal and worse paths leave the record untouched
	before := *rec
	require.NoError(t, r.relax(state.Successor[pt, string]{State: 1, Action: "tie", Cost: 3}, 0, 0))
	require.NoError(t, r.relax(state.Successor[pt, string]{State: 1, Action: "worse", Cost: 9}, 0, 0))
	assert.Equal(t, before, *rec)
}

func TestRelax_HeuristicEvaluatedOnce(t *testing.T) {
	calls := 0
	h := func(p pt) float64 { calls++; return 1 }
	r := newTestRunner(t, h, DefaultOptions())

	require.NoError(t, r.relax(state.Successor[pt, string]{State: 1, Cost: 5}, 0, 0))
	require.NoError(t, r.relax(state.Successor[pt, string]{State: 1, Cost: 1}, 0, 0))
	assert.Equal(t, 2, calls, "once for the seed, once for state 1")
}

func TestRelax_InteriorSkippedUnlessReopen(t *testing.T) {
	r := newTestRunner(t, Zero[pt], DefaultOptions())
	require.NoError(t, r.relax(state.Successor[pt, string]{State: 0, Cost: 0}, 0, 0))
	assert.False(t, r.open.Contains(0))

	cfg := DefaultOptions()
	cfg.Reopen = true
	r = newTestRunner(t, Zero[pt], cfg)
	// the seed sits at g=0, so reopening needs a strictly lower g
	rec, _ := r.records.Get(0)
	rec.G, rec.F = 4, 4
	require.NoError(t, r.relax(state.Successor[pt, string]{State: 0, Action: "back", Cost: 1}, 0, 0))
	assert.True(t, r.open.Contains(0))
	assert.False(t, r.closed.Has(0))
	assert.Equal(t, 1, r.reopened)
}

func TestPath_BrokenChain(t *testing.T) {
	r := newTestRunner(t, Zero[pt], DefaultOptions())
	r.records.Put(7, &Record[string]{OriginIndex: 42, HasOrigin: true})

	_, err := r.path(7)
	require.ErrorIs(t, err, ErrBrokenPath)

	_, err = r.path(8)
	require.ErrorIs(t, err, ErrBrokenPath)
}
