package graph_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/tpeduzzi/clayg/graph"
)

// P1: a cluster is neutral iff it has even marked-node parity, or (with
// considerVirtual) contains a virtual node.
func TestClusterIsNeutralParity(t *testing.T) {
	a := graph.NewNode(graph.NodeID{Kind: graph.Bulk, Round: 0, Index: 0})
	b := graph.NewNode(graph.NodeID{Kind: graph.Bulk, Round: 0, Index: 1})

	c := graph.NewCluster(a)
	require.True(t, c.IsNeutral(true), "a cluster with zero marked nodes is neutral")

	c.AddMarkedNode(a)
	require.False(t, c.IsNeutral(true), "one marked node is odd parity")

	c.AddNode(b)
	c.AddMarkedNode(b)
	require.True(t, c.IsNeutral(true), "two marked nodes is even parity")
}

// R3: a cluster containing a virtual node is neutral regardless of
// marked-node parity.
func TestClusterWithVirtualNodeIsAlwaysNeutral(t *testing.T) {
	virtual := graph.NewNode(graph.NodeID{Kind: graph.Virtual, Round: 0, Index: 0})
	c := graph.NewCluster(virtual)

	bulk := graph.NewNode(graph.NodeID{Kind: graph.Bulk, Round: 0, Index: 0})
	c.AddNode(bulk)
	c.AddMarkedNode(bulk)

	require.False(t, c.IsNeutral(false), "without virtual absorption, one marked node is odd parity")
	require.True(t, c.IsNeutral(true), "virtual-node presence absorbs the unpaired defect")
}

func TestAllNeutralRequiresEveryCluster(t *testing.T) {
	a := graph.NewNode(graph.NodeID{Kind: graph.Bulk, Round: 0, Index: 0})
	b := graph.NewNode(graph.NodeID{Kind: graph.Bulk, Round: 0, Index: 1})

	neutral := graph.NewCluster(a)
	nonNeutral := graph.NewCluster(b)
	nonNeutral.AddMarkedNode(b)

	require.True(t, graph.AllNeutral([]*graph.Cluster{neutral}))
	require.False(t, graph.AllNeutral([]*graph.Cluster{neutral, nonNeutral}))
}

func TestRemoveMarkedNodeRemovesFirstOccurrence(t *testing.T) {
	a := graph.NewNode(graph.NodeID{Kind: graph.Bulk, Round: 0, Index: 0})
	c := graph.NewCluster(a)
	c.AddMarkedNode(a)
	require.Len(t, c.MarkedNodes(), 1)

	c.RemoveMarkedNode(a)
	require.Empty(t, c.MarkedNodes())
}
