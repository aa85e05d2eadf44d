package peeling_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/tpeduzzi/clayg/graph"
	"github.com/tpeduzzi/clayg/peeling"
)

// R2: Peel on a cluster with no marked nodes yields no corrections.
func TestPeelNoMarkedNodesYieldsEmpty(t *testing.T) {
	g := graph.RotatedSurfaceCode(3, 3)
	root, ok := g.Node(graph.NodeID{Kind: graph.Bulk, Round: 0, Index: 0})
	require.True(t, ok)

	c := graph.NewCluster(root)
	root.SetCluster(c)

	corrections, steps := peeling.Peel(c)
	require.Empty(t, corrections)
	require.Equal(t, 0, steps)
}

// P4: peeling a neutral cluster clears the marked flags it resolves.
func TestDecodeClearsMarkedFlagsAfterPeeling(t *testing.T) {
	g := graph.RotatedSurfaceCode(3, 3)
	errID := graph.EdgeID{Kind: graph.Measurement, Round: 0, Index: 0}
	g.Mark([]graph.EdgeID{errID})

	a, _ := g.Node(graph.NodeID{Kind: graph.Bulk, Round: 0, Index: 0})
	b, _ := g.Node(graph.NodeID{Kind: graph.Bulk, Round: 1, Index: 0})
	require.True(t, a.Marked())
	require.True(t, b.Marked())

	c := graph.NewCluster(a)
	a.SetCluster(c)
	c.AddMarkedNode(a)
	c.AddNode(b)
	c.AddMarkedNode(b)
	b.SetCluster(c)

	result := peeling.Decode([]*graph.Cluster{c}, g.T()-1)

	require.ElementsMatch(t, []graph.EdgeID{errID}, result.Corrections)
	require.False(t, a.Marked())
	require.False(t, b.Marked())
}

func TestDecodeSkipsClustersWithNoMarkedNodes(t *testing.T) {
	g := graph.RotatedSurfaceCode(3, 3)
	root, _ := g.Node(graph.NodeID{Kind: graph.Bulk, Round: 0, Index: 0})
	c := graph.NewCluster(root)
	root.SetCluster(c)

	result := peeling.Decode([]*graph.Cluster{c}, 0)
	require.Empty(t, result.Corrections)
	require.Equal(t, float64(0), result.DecodingSteps)
}
