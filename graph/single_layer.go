package graph

// SingleLayerCopy constructs a new DecodingGraph with T=1 containing only
// g's round-0 Normal edges (no Measurement edges), preserving g's D, the
// round-0 Normal-edge index set, and the logical-edge set (§3 P5, §4.1).
func SingleLayerCopy(g *DecodingGraph) *DecodingGraph {
	out := newDecodingGraph(g.CodeName(), g.D(), 1, g.AncillaCountPerLayer())

	top := NewNode(NodeID{Kind: Virtual, Round: 0, Index: 0})
	bottom := NewNode(NodeID{Kind: Virtual, Round: 0, Index: 1})
	out.AddNode(top)
	out.AddNode(bottom)

	nodeFor := make(map[NodeID]*Node)
	resolve := func(id NodeID) *Node {
		if id.Kind == Virtual {
			if id.Index == 0 {
				return top
			}
			return bottom
		}
		flat := NodeID{Kind: Bulk, Round: 0, Index: id.Index}
		if n, ok := nodeFor[flat]; ok {
			return n
		}
		n := NewNode(flat)
		nodeFor[flat] = n
		out.AddNode(n)
		return n
	}

	logical := g.LogicalEdgeIDs()
	for _, e := range g.Edges() {
		id := e.ID()
		if id.Kind != Normal || id.Round != 0 {
			continue
		}
		a, b := e.Nodes()
		na, nb := resolve(a.ID()), resolve(b.ID())
		flatEdge := NewEdge(EdgeID{Kind: Normal, Round: 0, Index: id.Index}, na, nb)
		out.AddEdge(flatEdge)
		if _, ok := logical[id.Index]; ok {
			out.AddLogicalEdge(flatEdge)
		}
	}

	return out
}
