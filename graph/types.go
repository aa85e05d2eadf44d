package graph

import "errors"

// Sentinel errors for the graph package. Following the teacher's
// convention (core/types.go), every exported error is prefixed with the
// package name.
var (
	// ErrDuplicateNode names the case of a node id whose slot is already
	// populated. Per §7 this is a construction bug, not a runtime
	// condition callers are expected to recover from. AddNode does not
	// return it: it ignores the duplicate silently.
	ErrDuplicateNode = errors.New("graph: duplicate node id")

	// ErrDuplicateEdge names the case of an edge id whose slot is already
	// populated. AddEdge does not return it: it ignores the duplicate
	// silently.
	ErrDuplicateEdge = errors.New("graph: duplicate edge id")

	// ErrNotEndpoint is raised (as a panic, by OtherNode) when
	// OtherNode is called with a node that is not one of the edge's two
	// endpoints — an invariant violation per §7.
	ErrNotEndpoint = errors.New("graph: node is not an endpoint of edge")
)

// NodeKind distinguishes ancilla ("bulk") measurement sites from the
// synthetic boundary ("virtual") sites.
type NodeKind uint8

const (
	// Bulk identifies an ancilla syndrome-measurement node.
	Bulk NodeKind = iota
	// Virtual identifies one of the two synthetic boundary nodes.
	Virtual
)

func (k NodeKind) String() string {
	if k == Virtual {
		return "v"
	}
	return "b"
}

// NodeID identifies a Node by kind, round and index. Two NodeIDs are equal
// iff all three fields match; for Virtual nodes, Round is always 0 and is
// ignored by lookups.
type NodeID struct {
	Kind  NodeKind
	Round int
	Index int
}

// EdgeKind distinguishes intra-round data-qubit edges from inter-round
// syndrome-bit edges.
type EdgeKind uint8

const (
	// Normal identifies an intra-round, data-qubit-error edge.
	Normal EdgeKind = iota
	// Measurement identifies an inter-round, syndrome-bit-flip edge.
	Measurement
)

func (k EdgeKind) String() string {
	if k == Measurement {
		return "m"
	}
	return "n"
}

// EdgeID identifies an Edge by kind, round and index. For a Measurement
// edge, Round is the round the edge originates from (it connects that
// round to Round-1).
type EdgeID struct {
	Kind  EdgeKind
	Round int
	Index int
}

// Node is a vertex of a DecodingGraph: either an ancilla measurement site
// or one of the two boundary sites.
//
// cluster is a plain pointer rather than a true weak reference (see
// package doc): decoders and DecodingGraph.Reset are responsible for
// clearing it explicitly when the owning Cluster is dissolved.
type Node struct {
	id      NodeID
	marked  bool
	cluster *Cluster
	edges   []*Edge
}

// NewNode constructs a bare Node. Graph factories are the only intended
// callers; decoders must never fabricate Nodes of their own.
func NewNode(id NodeID) *Node {
	return &Node{id: id}
}

// ID returns the node's identity triple.
func (n *Node) ID() NodeID { return n.id }

// Marked reports whether this node currently carries odd parity of
// incident error edges.
func (n *Node) Marked() bool { return n.marked }

// SetMarked sets the marked flag directly (used by mark/reset).
func (n *Node) SetMarked(marked bool) { n.marked = marked }

// ToggleMarked flips the marked flag and returns the new value.
func (n *Node) ToggleMarked() bool {
	n.marked = !n.marked
	return n.marked
}

// Cluster returns the Cluster this node currently belongs to, or nil if
// the node is unowned.
func (n *Node) Cluster() *Cluster { return n.cluster }

// SetCluster sets (or, with nil, clears) the node's owning cluster.
func (n *Node) SetCluster(c *Cluster) { n.cluster = c }

// Edges returns the node's incident edges in insertion order. The
// returned slice is the node's own backing array and must not be mutated
// by callers outside this package.
func (n *Node) Edges() []*Edge { return n.edges }

func (n *Node) addEdge(e *Edge) { n.edges = append(n.edges, e) }

// Edge is a connection between two Nodes: a Normal (data-qubit) edge
// between nodes of the same round, or a Measurement (syndrome-bit) edge
// between the same ancilla position in consecutive rounds.
type Edge struct {
	id     EdgeID
	nodes  [2]*Node
	growth float64
	weight float64
}

// DefaultWeight is the weight assigned to every edge by the graph
// factories; §3 calls this the "effective weight (default 1.0)".
const DefaultWeight = 1.0

// NewEdge constructs an Edge between a and b with the default weight.
// Graph factories are the only intended callers.
func NewEdge(id EdgeID, a, b *Node) *Edge {
	return &Edge{id: id, nodes: [2]*Node{a, b}, weight: DefaultWeight}
}

// ID returns the edge's identity triple.
func (e *Edge) ID() EdgeID { return e.id }

// Nodes returns the edge's two endpoints.
func (e *Edge) Nodes() (*Node, *Node) { return e.nodes[0], e.nodes[1] }

// OtherNode returns the endpoint of e that is not n. It panics (mirroring
// the source's assert) if n is not one of e's endpoints — an invariant
// violation, never a condition callers are expected to recover from.
func (e *Edge) OtherNode(n *Node) *Node {
	switch n {
	case e.nodes[0]:
		return e.nodes[1]
	case e.nodes[1]:
		return e.nodes[0]
	default:
		panic(ErrNotEndpoint)
	}
}

// Growth returns the edge's current growth accumulator.
func (e *Edge) Growth() float64 { return e.growth }

// Weight returns the edge's effective weight.
func (e *Edge) Weight() float64 { return e.weight }

// AddGrowth adds delta to the growth accumulator.
func (e *Edge) AddGrowth(delta float64) { e.growth += delta }

// ResetGrowth zeroes the growth accumulator, used by reset and by
// cluster-cleanup after peeling.
func (e *Edge) ResetGrowth() { e.growth = 0 }

// FullyGrown reports whether growth has reached or exceeded weight.
func (e *Edge) FullyGrown() bool { return e.growth >= e.weight }
