package unionfind_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/tpeduzzi/clayg/graph"
	"github.com/tpeduzzi/clayg/unionfind"
)

// S1: no errors decode to no corrections.
func TestDecodeNoErrors(t *testing.T) {
	g := graph.RotatedSurfaceCode(3, 3)
	result := unionfind.New().Decode(g)
	require.Empty(t, result.Corrections)
}

// S2 / B2: a single Normal-edge error on a logical edge decodes to itself.
func TestDecodeSingleLogicalEdgeError(t *testing.T) {
	g := graph.RotatedSurfaceCode(3, 3)
	errID := graph.EdgeID{Kind: graph.Normal, Round: 0, Index: 0}
	g.Mark([]graph.EdgeID{errID})

	result := unionfind.New().Decode(g)

	require.ElementsMatch(t, []graph.EdgeID{errID}, result.Corrections)
}

// B3 / S4: a single Measurement-edge error marks exactly two adjacent
// nodes and peels back to that same edge.
func TestDecodeSingleMeasurementEdgeError(t *testing.T) {
	g := graph.RotatedSurfaceCode(3, 3)
	errID := graph.EdgeID{Kind: graph.Measurement, Round: 0, Index: 0}
	g.Mark([]graph.EdgeID{errID})

	var marked int
	for _, n := range g.Nodes() {
		if n.ID().Kind == graph.Bulk && n.Marked() {
			marked++
		}
	}
	require.Equal(t, 2, marked)

	result := unionfind.New().Decode(g)
	require.ElementsMatch(t, []graph.EdgeID{errID}, result.Corrections)
}

// S3: an error on a non-logical edge that sits between two marked nodes
// decodes to itself, leaving no logical effect.
func TestDecodeInteriorEdgeDecodesToItself(t *testing.T) {
	g := graph.RotatedSurfaceCode(5, 5)
	errID := graph.EdgeID{Kind: graph.Normal, Round: 2, Index: 7}
	g.Mark([]graph.EdgeID{errID})

	result := unionfind.New().Decode(g)
	require.ElementsMatch(t, []graph.EdgeID{errID}, result.Corrections)

	logical := g.LogicalEdgeIDs()
	_, isLogical := logical[errID.Index]
	require.False(t, isLogical, "the injected edge is not part of the logical operator")
}

// B1: stop_early with zero marked nodes returns empty corrections and a
// considered_up_to_round of T-1: with no marked node the window is
// anchored at round 0, and 0 + ceil((3+1)/2) = 2 already reaches T-1.
func TestDecodeStopEarlyNoErrors(t *testing.T) {
	g := graph.RotatedSurfaceCode(3, 3)
	result := unionfind.New(unionfind.WithStopEarly(true)).Decode(g)

	require.Empty(t, result.Corrections)
	require.Equal(t, g.T()-1, result.ConsideredUpToRound)
}

func TestDecoderIsReusableAcrossResets(t *testing.T) {
	g := graph.RotatedSurfaceCode(3, 3)
	dec := unionfind.New()

	errID := graph.EdgeID{Kind: graph.Normal, Round: 0, Index: 0}
	g.Mark([]graph.EdgeID{errID})
	first := dec.Decode(g)
	require.NotEmpty(t, first.Corrections)

	g.Reset()
	second := dec.Decode(g)
	require.Empty(t, second.Corrections)
}

func TestGrowthPolicyByNameFallsBackToDefault(t *testing.T) {
	_, name := unionfind.GrowthPolicyByName("not_a_real_policy")
	require.Equal(t, "default", name)

	_, name = unionfind.GrowthPolicyByName("third")
	require.Equal(t, "third", name)
}

func TestConfigFromStringMapIgnoresUnknownKeys(t *testing.T) {
	cfg := unionfind.ConfigFromStringMap(map[string]string{
		"stop_early":    "true",
		"growth_policy": "faster_backwards",
		"bogus":         "whatever",
	})
	require.True(t, cfg.StopEarly)
	require.Equal(t, "faster_backwards", cfg.PolicyName)
}
