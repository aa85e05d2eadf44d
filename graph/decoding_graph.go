// File: decoding_graph.go
// Role: the DecodingGraph container — node/edge storage, per-round
// indices, logical-edge set, and the reset/mark mutation surface.
package graph

import "sync"

// DecodingGraph owns all Nodes and Edges of a decoding instance: an
// insertion-ordered sequence of each, round-indexed lookup tables, and the
// set of round-0 Normal-edge indices that flip the logical observable.
//
// Mirroring the teacher's core.Graph, a DecodingGraph uses separate
// RWMutexes to guard node and edge storage, even though a single decode
// never mutates a graph concurrently (§5): this keeps concurrent
// construction and concurrent Monte-Carlo sweeps over independently-reset
// graphs safe without extra caller-side bookkeeping.
type DecodingGraph struct {
	muNode sync.RWMutex
	muEdge sync.RWMutex

	codeName        string
	d, t            int
	ancillaPerLayer int

	nodes []*Node
	edges []*Edge

	bulkIndex    map[int]map[int]*Node // round -> index -> node
	virtualIndex map[int]*Node         // index -> node

	normalIndex      map[int]map[int]*Edge // round -> index -> edge
	measurementIndex map[int]map[int]*Edge

	logicalEdgeIndices map[int]struct{}
}

// newDecodingGraph constructs an empty DecodingGraph with the given code
// metadata. Only graph factories call this.
func newDecodingGraph(codeName string, d, t, ancillaPerLayer int) *DecodingGraph {
	return &DecodingGraph{
		codeName:           codeName,
		d:                  d,
		t:                  t,
		ancillaPerLayer:    ancillaPerLayer,
		bulkIndex:          make(map[int]map[int]*Node),
		virtualIndex:       make(map[int]*Node),
		normalIndex:        make(map[int]map[int]*Edge),
		measurementIndex:   make(map[int]map[int]*Edge),
		logicalEdgeIndices: make(map[int]struct{}),
	}
}

// D returns the code distance.
func (g *DecodingGraph) D() int { return g.d }

// T returns the number of rounds.
func (g *DecodingGraph) T() int { return g.t }

// AncillaCountPerLayer returns the number of bulk nodes per round.
func (g *DecodingGraph) AncillaCountPerLayer() int { return g.ancillaPerLayer }

// CodeName returns the name of the code family this graph was built for.
func (g *DecodingGraph) CodeName() string { return g.codeName }

// Nodes returns all nodes in insertion order.
func (g *DecodingGraph) Nodes() []*Node {
	g.muNode.RLock()
	defer g.muNode.RUnlock()

	out := make([]*Node, len(g.nodes))
	copy(out, g.nodes)

	return out
}

// Edges returns all edges in insertion order.
func (g *DecodingGraph) Edges() []*Edge {
	g.muEdge.RLock()
	defer g.muEdge.RUnlock()

	out := make([]*Edge, len(g.edges))
	copy(out, g.edges)

	return out
}

// AddNode appends n to the graph and indexes it by round. Inserting into
// an already-populated slot is a construction bug (§7): it is a silent
// no-op, matching the source's "duplicate construction is a
// construction-time bug, not a runtime error".
func (g *DecodingGraph) AddNode(n *Node) {
	g.muNode.Lock()
	defer g.muNode.Unlock()

	id := n.ID()
	if id.Kind == Virtual {
		if _, exists := g.virtualIndex[id.Index]; exists {
			return
		}
		g.virtualIndex[id.Index] = n
	} else {
		round, ok := g.bulkIndex[id.Round]
		if !ok {
			round = make(map[int]*Node)
			g.bulkIndex[id.Round] = round
		}
		if _, exists := round[id.Index]; exists {
			return
		}
		round[id.Index] = n
	}
	g.nodes = append(g.nodes, n)
}

// AddEdge appends e to the graph, indexes it by round and kind, and
// registers it on both endpoints' incident-edge lists.
func (g *DecodingGraph) AddEdge(e *Edge) {
	g.muEdge.Lock()
	id := e.ID()
	index := g.normalIndex
	if id.Kind == Measurement {
		index = g.measurementIndex
	}
	round, ok := index[id.Round]
	if !ok {
		round = make(map[int]*Edge)
		index[id.Round] = round
	}
	if _, exists := round[id.Index]; exists {
		g.muEdge.Unlock()
		return
	}
	round[id.Index] = e
	g.edges = append(g.edges, e)

	a, b := e.Nodes()
	a.addEdge(e)
	b.addEdge(e)
	g.muEdge.Unlock()
}

// AddLogicalEdge records e's index into the logical-edge set. Per §3,
// logical edges are always round-0 Normal edges; the round and kind are
// stripped by LogicalEdgeIDs.
func (g *DecodingGraph) AddLogicalEdge(e *Edge) {
	g.muEdge.Lock()
	defer g.muEdge.Unlock()
	g.logicalEdgeIndices[e.ID().Index] = struct{}{}
}

// LogicalEdgeIDs returns the set of round-0 Normal-edge indices whose
// correction toggles the logical observable.
func (g *DecodingGraph) LogicalEdgeIDs() map[int]struct{} {
	g.muEdge.RLock()
	defer g.muEdge.RUnlock()

	out := make(map[int]struct{}, len(g.logicalEdgeIndices))
	for k := range g.logicalEdgeIndices {
		out[k] = struct{}{}
	}

	return out
}

// Node looks up a node by id. Virtual lookups ignore Round. Returns
// (nil, false) if the round is out of range — an input-consistency
// condition per §7, never a panic.
func (g *DecodingGraph) Node(id NodeID) (*Node, bool) {
	g.muNode.RLock()
	defer g.muNode.RUnlock()

	if id.Kind == Virtual {
		n, ok := g.virtualIndex[id.Index]
		return n, ok
	}
	round, ok := g.bulkIndex[id.Round]
	if !ok {
		return nil, false
	}
	n, ok := round[id.Index]

	return n, ok
}

// Edge looks up an edge by id, symmetric to Node.
func (g *DecodingGraph) Edge(id EdgeID) (*Edge, bool) {
	g.muEdge.RLock()
	defer g.muEdge.RUnlock()

	index := g.normalIndex
	if id.Kind == Measurement {
		index = g.measurementIndex
	}
	round, ok := index[id.Round]
	if !ok {
		return nil, false
	}
	e, ok := round[id.Index]

	return e, ok
}

// Reset clears every node's marked flag and owning cluster, and zeroes
// every edge's growth accumulator. Factory-built topology and the
// logical-edge set are untouched (§3 Lifecycle).
func (g *DecodingGraph) Reset() {
	g.muNode.RLock()
	for _, n := range g.nodes {
		n.SetMarked(false)
		n.SetCluster(nil)
	}
	g.muNode.RUnlock()

	g.muEdge.RLock()
	for _, e := range g.edges {
		e.ResetGrowth()
	}
	g.muEdge.RUnlock()
}

// Mark establishes a syndrome: for each edge id, toggle the marked flag on
// each non-virtual endpoint. Intended to be called right after Reset.
// Edge ids that do not resolve (out-of-range round) are silently skipped,
// matching Node/Edge's absent-lookup contract.
func (g *DecodingGraph) Mark(edges []EdgeID) {
	for _, id := range edges {
		e, ok := g.Edge(id)
		if !ok {
			continue
		}
		a, b := e.Nodes()
		if a.ID().Kind != Virtual {
			a.ToggleMarked()
		}
		if b.ID().Kind != Virtual {
			b.ToggleMarked()
		}
	}
}

// MarkedNodesByRound returns a length-T table whose i-th entry lists the
// bulk marked nodes at round i, in insertion order.
func (g *DecodingGraph) MarkedNodesByRound() [][]*Node {
	table := make([][]*Node, g.t)
	for _, n := range g.Nodes() {
		id := n.ID()
		if id.Kind != Bulk || !n.Marked() {
			continue
		}
		if id.Round < 0 || id.Round >= g.t {
			continue
		}
		table[id.Round] = append(table[id.Round], n)
	}

	return table
}
