package logical_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/tpeduzzi/clayg/graph"
	"github.com/tpeduzzi/clayg/logical"
	"github.com/tpeduzzi/clayg/unionfind"
)

// S1: no errors, no corrections, trivially no logical flip.
func TestComputeNoErrors(t *testing.T) {
	g := graph.RotatedSurfaceCode(3, 3)
	decoded := unionfind.New().Decode(g)

	bit := logical.NewComputer().Compute(g, nil, nil, decoded)
	require.Equal(t, 0, bit)
}

// S2: a single logical-edge error, exactly cancelled by its own
// correction, produces no net logical flip.
func TestComputeErrorCancelledByOwnCorrection(t *testing.T) {
	g := graph.RotatedSurfaceCode(3, 3)
	errID := graph.EdgeID{Kind: graph.Normal, Round: 0, Index: 0}
	g.Mark([]graph.EdgeID{errID})

	decoded := unionfind.New().Decode(g)
	require.ElementsMatch(t, []graph.EdgeID{errID}, decoded.Corrections)

	bit := logical.NewComputer().Compute(g, []graph.EdgeID{errID}, nil, decoded)
	require.Equal(t, 0, bit)
}

// An uncorrected error along a top-to-bottom path (top, through ancilla
// (0,0) and (0,1), to bottom) carries no syndrome of its own (every
// interior node sees even parity) and so survives as a genuine logical
// flip.
func TestComputeUncorrectedFullChainFlips(t *testing.T) {
	g := graph.RotatedSurfaceCode(3, 3)
	chain := []graph.EdgeID{
		{Kind: graph.Normal, Round: 0, Index: 0}, // top - (0,0)
		{Kind: graph.Normal, Round: 0, Index: 3}, // (0,0) - (0,1)
		{Kind: graph.Normal, Round: 0, Index: 6}, // (0,1) - bottom
	}

	decoded := unionfind.New().Decode(g) // no errors marked: no corrections
	require.Empty(t, decoded.Corrections)

	bit := logical.NewComputer().Compute(g, chain, nil, decoded)
	require.Equal(t, 1, bit)
}

// P6: Compute is pure modulo its cache: identical inputs on fresh
// computers agree.
func TestComputeIsDeterministic(t *testing.T) {
	g := graph.RotatedSurfaceCode(5, 5)
	errID := graph.EdgeID{Kind: graph.Normal, Round: 2, Index: 7}
	g.Mark([]graph.EdgeID{errID})
	decoded := unionfind.New().Decode(g)

	first := logical.NewComputer().Compute(g, []graph.EdgeID{errID}, nil, decoded)
	second := logical.NewComputer().Compute(g, []graph.EdgeID{errID}, nil, decoded)
	require.Equal(t, first, second)
}

func TestClearCacheDoesNotChangeTheAnswer(t *testing.T) {
	g := graph.RotatedSurfaceCode(3, 3)
	errID := graph.EdgeID{Kind: graph.Normal, Round: 0, Index: 0}
	decoded := unionfind.New().Decode(g)

	c := logical.NewComputer()
	before := c.Compute(g, []graph.EdgeID{errID}, nil, decoded)
	c.ClearCache()
	after := c.Compute(g, []graph.EdgeID{errID}, nil, decoded)

	require.Equal(t, before, after)
}

// Error edges outside the decoder's considered window are ignored,
// matching unionfind's stop_early buffer confinement (§4.7 step 1).
func TestComputeIgnoresEdgesPastConsideredRound(t *testing.T) {
	g := graph.RotatedSurfaceCode(3, 3)
	decoded := unionfind.New().Decode(g)
	decoded.ConsideredUpToRound = -1 // confine to nothing

	bit := logical.NewComputer().Compute(g, []graph.EdgeID{{Kind: graph.Normal, Round: 0, Index: 0}}, nil, decoded)
	require.Equal(t, 0, bit)
}
