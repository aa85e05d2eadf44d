package peeling

import (
	"github.com/tpeduzzi/clayg/graph"
	"github.com/tpeduzzi/clayg/result"
)

// spanEdge pairs a spanning-tree edge with the member node it was
// discovered from (the "tree" side, in BFS discovery order).
type spanEdge struct {
	treeNode *graph.Node
	edge     *graph.Edge
}

// Peel builds a spanning forest over cluster's internal edges by BFS from
// a preferred start node (any member virtual node, else the cluster's
// root), then walks the forest in reverse discovery order, recording an
// edge as a correction whenever its outward endpoint is marked and
// resolving that parity as it goes (§4.4 steps 1-3).
//
// It returns the correction edges and the peel depth (the maximum BFS
// distance from the start node), reported back as a decoding_steps
// contribution.
func Peel(cluster *graph.Cluster) ([]*graph.Edge, int) {
	start := cluster.Root()
	for _, n := range cluster.Nodes() {
		if n.ID().Kind == graph.Virtual {
			start = n
			break
		}
	}

	visited := map[graph.NodeID]int{start.ID(): 0}
	order := []*graph.Node{start}
	var tree []spanEdge
	maxDepth := 0

	for i := 0; i < len(order); i++ {
		cur := order[i]
		for _, e := range cur.Edges() {
			other := e.OtherNode(cur)
			if other.Cluster() != cluster {
				continue
			}
			if _, seen := visited[other.ID()]; seen {
				continue
			}
			depth := visited[cur.ID()] + 1
			visited[other.ID()] = depth
			if depth > maxDepth {
				maxDepth = depth
			}
			tree = append(tree, spanEdge{treeNode: cur, edge: e})
			order = append(order, other)
		}
	}

	var corrections []*graph.Edge
	for i := len(tree) - 1; i >= 0; i-- {
		treeNode := tree[i].treeNode
		edge := tree[i].edge
		leaf := edge.OtherNode(treeNode)
		if leaf.Marked() {
			corrections = append(corrections, edge)
			treeNode.ToggleMarked()
			leaf.SetMarked(false)
		}
	}

	return corrections, maxDepth
}

// Decode runs Peel on every cluster with at least one marked node and
// aggregates the corrections. Clusters with no marked nodes contribute
// nothing (§4.4, R2).
func Decode(clusters []*graph.Cluster, consideredUpToRound int) result.DecodingResult {
	var corrections []graph.EdgeID
	maxSteps := 0
	for _, c := range clusters {
		if len(c.MarkedNodes()) == 0 {
			continue
		}
		edges, steps := Peel(c)
		for _, e := range edges {
			corrections = append(corrections, e.ID())
		}
		if steps > maxSteps {
			maxSteps = steps
		}
	}

	return result.DecodingResult{
		Corrections:         corrections,
		ConsideredUpToRound: consideredUpToRound,
		DecodingSteps:       float64(maxSteps),
	}
}
