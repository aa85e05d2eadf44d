package unionfind

import "github.com/tpeduzzi/clayg/graph"

// FusionEdge is a fully-grown boundary edge staged for cluster fusion
// (§3 Glossary, §4.3 step 2a).
type FusionEdge struct {
	Edge     *graph.Edge
	TreeNode *graph.Node
	LeafNode *graph.Node
}

// Grow advances every boundary edge of cluster by one growth step,
// accumulating per-cluster growth contribution (for later refund) and
// staging a FusionEdge for every boundary edge that has fully grown. A
// neutral cluster does not grow (§4.3 step 2a: "for each non-neutral
// cluster"). Per the REDESIGN note in §9, a boundary edge that fully grows
// is kept in the new boundary list regardless — fusion makes it a bulk
// edge, and it stays on the boundary list after that as well.
func Grow(cluster *graph.Cluster, policy GrowthPolicy) []FusionEdge {
	if cluster.IsNeutral(true) {
		return nil
	}

	boundary := cluster.Boundary()
	newBoundary := make([]graph.BoundaryEdge, 0, len(boundary))
	var fusions []FusionEdge
	for _, b := range boundary {
		delta := policy(b.TreeNode.ID(), b.LeafNode.ID())
		b.Edge.AddGrowth(delta)
		b.GrowthFromTree += delta
		newBoundary = append(newBoundary, b)
		if b.Edge.FullyGrown() {
			fusions = append(fusions, FusionEdge{Edge: b.Edge, TreeNode: b.TreeNode, LeafNode: b.LeafNode})
		}
	}
	cluster.SetBoundary(newBoundary)

	return fusions
}

// Merge resolves a batch of FusionEdges against the active cluster list
// (§4.3 step 2b):
//
//   - If the leaf has no cluster, it is adopted into the tree's cluster,
//     and every *other* incident edge of the leaf becomes a new boundary
//     edge rooted at the leaf.
//   - If the leaf's cluster differs from the tree's, the smaller of the
//     two (by member-node count) is absorbed into the larger: its nodes,
//     bulk edges and boundary are folded in and it is dropped from
//     *clusters.
//   - If both sides are already the same cluster, the fusion is a no-op.
//
// onMerge, if non-nil, is invoked with the surviving cluster after each
// resolved fusion — ClAYG uses this to stamp HasBeenNeutralSince when a
// merge makes a cluster neutral.
func Merge(fusionEdges []FusionEdge, clusters *[]*graph.Cluster, onMerge func(*graph.Cluster)) {
	for _, f := range fusionEdges {
		treeCluster := f.TreeNode.Cluster()
		leafCluster := f.LeafNode.Cluster()

		if leafCluster == nil {
			adopt(treeCluster, f)
			if onMerge != nil {
				onMerge(treeCluster)
			}
			continue
		}

		if leafCluster == treeCluster {
			continue
		}

		survivor := union(treeCluster, leafCluster, f.Edge, clusters)
		if onMerge != nil {
			onMerge(survivor)
		}
	}
}

func adopt(tree *graph.Cluster, f FusionEdge) {
	leaf := f.LeafNode
	tree.AddNode(leaf)
	if leaf.Marked() {
		tree.AddMarkedNode(leaf)
	}
	if leaf.ID().Kind == graph.Virtual {
		tree.AddVirtualNode(leaf)
	}
	tree.AddBulkEdge(f.Edge)
	for _, e := range leaf.Edges() {
		if e == f.Edge {
			continue
		}
		tree.AddBoundaryEdge(graph.BoundaryEdge{TreeNode: leaf, LeafNode: e.OtherNode(leaf), Edge: e})
	}
	leaf.SetCluster(tree)
}

// union absorbs the smaller of a, b into the larger and returns the
// survivor, removing the absorbed cluster from clusters.
func union(a, b *graph.Cluster, fusingEdge *graph.Edge, clusters *[]*graph.Cluster) *graph.Cluster {
	big, small := a, b
	if len(small.Nodes()) > len(big.Nodes()) {
		big, small = b, a
	}

	for _, n := range small.Nodes() {
		big.AddNode(n)
		if n.ID().Kind == graph.Virtual {
			big.AddVirtualNode(n)
		}
		if n.Marked() {
			big.AddMarkedNode(n)
		}
		n.SetCluster(big)
	}
	for _, e := range small.BulkEdges() {
		big.AddBulkEdge(e)
	}
	for _, b := range small.Boundary() {
		big.AddBoundaryEdge(b)
	}
	big.AddBulkEdge(fusingEdge)

	*clusters = removeCluster(*clusters, small)

	return big
}

func removeCluster(clusters []*graph.Cluster, target *graph.Cluster) []*graph.Cluster {
	for i, c := range clusters {
		if c == target {
			return append(clusters[:i:i], clusters[i+1:]...)
		}
	}
	return clusters
}
