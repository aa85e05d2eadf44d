package graph

// BoundaryEdge records one edge on a Cluster's growing frontier: tree_node
// is the cluster member the edge hangs off of, leaf_node is the neighbour
// across it (possibly already owned by another cluster, possibly unowned),
// and GrowthFromTree is how much growth *this* cluster has contributed to
// the edge, so it can be refunded when the cluster is peeled and dissolved
// (§3, §4.5 clean). The refund applies to every boundary edge, including
// one the cluster has already fused across.
type BoundaryEdge struct {
	TreeNode       *Node
	LeafNode       *Node
	Edge           *Edge
	GrowthFromTree float64
}

// NeverNeutral is the sentinel value of HasBeenNeutralSince for a cluster
// that has never (yet) become neutral.
const NeverNeutral = -1

// Cluster is a connected subset of a DecodingGraph under construction by a
// Union-Find-style decoder: its member nodes, its fully-grown ("bulk")
// edges, its growing boundary, and enough bookkeeping (marked-node parity,
// virtual-node presence, neutrality timestamp) to decide when it is ready
// to be peeled.
type Cluster struct {
	root                *Node
	nodes               []*Node
	markedNodes         []*Node
	virtualNodes        []*Node
	bulkEdges           []*Edge
	boundary            []BoundaryEdge
	hasBeenNeutralSince int
}

// NewCluster seeds a singleton Cluster rooted at root: root becomes the
// sole member, and the boundary is seeded with one BoundaryEdge per edge
// incident to root (§4.2).
func NewCluster(root *Node) *Cluster {
	c := &Cluster{
		root:                root,
		nodes:               []*Node{root},
		hasBeenNeutralSince: NeverNeutral,
	}
	for _, e := range root.Edges() {
		c.boundary = append(c.boundary, BoundaryEdge{
			TreeNode: root,
			LeafNode: e.OtherNode(root),
			Edge:     e,
		})
	}
	if root.ID().Kind == Virtual {
		c.virtualNodes = append(c.virtualNodes, root)
	}

	return c
}

// Root returns the node the cluster was originally seeded from.
func (c *Cluster) Root() *Node { return c.root }

// Nodes returns the cluster's member nodes.
func (c *Cluster) Nodes() []*Node { return c.nodes }

// MarkedNodes returns the cluster's member nodes with odd incident-error
// parity.
func (c *Cluster) MarkedNodes() []*Node { return c.markedNodes }

// VirtualNodes returns the cluster's member boundary nodes.
func (c *Cluster) VirtualNodes() []*Node { return c.virtualNodes }

// BulkEdges returns the cluster's fully-grown, internal edges.
func (c *Cluster) BulkEdges() []*Edge { return c.bulkEdges }

// Boundary returns the cluster's current growing frontier.
func (c *Cluster) Boundary() []BoundaryEdge { return c.boundary }

// SetBoundary replaces the cluster's frontier (used after a growth step,
// which keeps every edge on it, including those that fully grew).
func (c *Cluster) SetBoundary(b []BoundaryEdge) { c.boundary = b }

// AddNode appends node to the cluster's membership.
func (c *Cluster) AddNode(node *Node) { c.nodes = append(c.nodes, node) }

// AddMarkedNode appends node to the cluster's marked-node list.
func (c *Cluster) AddMarkedNode(node *Node) { c.markedNodes = append(c.markedNodes, node) }

// RemoveMarkedNode removes the first occurrence of node from the
// marked-node list. A linear scan is acceptable: marked-node lists stay
// small in practice (§4.9 design note).
func (c *Cluster) RemoveMarkedNode(node *Node) {
	for i, m := range c.markedNodes {
		if m == node {
			c.markedNodes = append(c.markedNodes[:i], c.markedNodes[i+1:]...)
			return
		}
	}
}

// AddVirtualNode appends node to the cluster's virtual-node list.
func (c *Cluster) AddVirtualNode(node *Node) { c.virtualNodes = append(c.virtualNodes, node) }

// AddBulkEdge appends e to the cluster's fully-grown internal edges.
func (c *Cluster) AddBulkEdge(e *Edge) { c.bulkEdges = append(c.bulkEdges, e) }

// AddBoundaryEdge appends b to the cluster's frontier.
func (c *Cluster) AddBoundaryEdge(b BoundaryEdge) { c.boundary = append(c.boundary, b) }

// HasBeenNeutralSince returns the round at which the cluster most
// recently became neutral, or NeverNeutral if it has not.
func (c *Cluster) HasBeenNeutralSince() int { return c.hasBeenNeutralSince }

// SetHasBeenNeutralSince stamps the round at which the cluster became
// neutral (used by ClAYG's cluster-lifetime policy).
func (c *Cluster) SetHasBeenNeutralSince(round int) { c.hasBeenNeutralSince = round }

// IsNeutral reports whether the cluster is neutral: even marked-node
// parity, or (when considerVirtual is true) touching a boundary that can
// absorb the unpaired defect (§3, §4.2).
func (c *Cluster) IsNeutral(considerVirtual bool) bool {
	if len(c.markedNodes)%2 == 0 {
		return true
	}
	return considerVirtual && len(c.virtualNodes) > 0
}

// AllNeutral reports whether every cluster in clusters is neutral,
// honouring virtual-node absorption.
func AllNeutral(clusters []*Cluster) bool {
	for _, c := range clusters {
		if !c.IsNeutral(true) {
			return false
		}
	}

	return true
}
