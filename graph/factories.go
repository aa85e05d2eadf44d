// File: factories.go
// Role: code-family factories (RotatedSurfaceCode, SurfaceCode,
// RepetitionCode).
//
// §3's data model is explicit that a DecodingGraph has *exactly two*
// Virtual nodes total, both at round 0; §4.1's per-round zig-zag
// connectivity is fully expressible against those two nodes — every Bulk
// node at the top or bottom of a layer simply gets one or two Normal edges
// to the same top/bottom Virtual node. (The original decoder instead gave
// each lattice column its own pair of boundary nodes; that per-column
// bookkeeping is an implementation choice of the reference C++, not
// something §4.1 requires.) Within a round, Normal edges are numbered in
// construction order starting from zero; the logical operator is always
// the first D of them (§4.1: "the D Normal edges at (Normal, 0, 0..D)"),
// whatever mix of boundary and bulk edges that happens to be.
package graph

// rotatedWidth returns ceil(d/2), §4.1's ancilla_width for the rotated
// surface code.
func rotatedWidth(d int) int { return (d + 1) / 2 }

// markLogicalEdges tags the first d round-0 Normal edges as the logical
// operator, per §4.1.
func markLogicalEdges(g *DecodingGraph, d int) {
	for index := 0; index < d; index++ {
		if e, ok := g.Edge(EdgeID{Kind: Normal, Round: 0, Index: index}); ok {
			g.AddLogicalEdge(e)
		}
	}
}

// RotatedSurfaceCode builds a distance-D, T-round rotated planar surface
// code decoding graph: ancilla_height = D-1 rows of ancilla_width =
// ceil(D/2) Bulk nodes per round, zig-zag-connected per §4.1, with exactly
// two Virtual nodes (top, bottom).
//
// Per Bulk node at (x, y) within a round:
//   - y == 0: one Normal edge to top, plus a second if x+1 < width.
//   - y > 0, y even: Normal edge to (x, y-1), plus one to (x+1, y-1) if
//     x+1 < width.
//   - y > 0, y odd: Normal edge to (x-1, y-1) if x > 0, and always to
//     (x, y-1).
//
// After every row is wired, the last row gets Normal edges to bottom: two
// per ancilla except the leftmost, which gets one.
func RotatedSurfaceCode(d, t int) *DecodingGraph {
	height := d - 1
	width := rotatedWidth(d)
	g := newDecodingGraph("rotated_surface_code", d, t, height*width)

	top := NewNode(NodeID{Kind: Virtual, Round: 0, Index: 0})
	bottom := NewNode(NodeID{Kind: Virtual, Round: 0, Index: 1})
	g.AddNode(top)
	g.AddNode(bottom)

	at := func(round, x, y int) *Node {
		n, _ := g.Node(NodeID{Kind: Bulk, Round: round, Index: x + y*width})
		return n
	}

	for round := 0; round < t; round++ {
		idx := 0
		nextID := func() EdgeID {
			id := EdgeID{Kind: Normal, Round: round, Index: idx}
			idx++
			return id
		}

		for y := 0; y < height; y++ {
			for x := 0; x < width; x++ {
				node := NewNode(NodeID{Kind: Bulk, Round: round, Index: x + y*width})
				g.AddNode(node)

				if round > 0 {
					prev := at(round-1, x, y)
					g.AddEdge(NewEdge(EdgeID{Kind: Measurement, Round: round - 1, Index: x + y*width}, node, prev))
				}

				if y == 0 {
					g.AddEdge(NewEdge(nextID(), node, top))
					if x+1 < width {
						g.AddEdge(NewEdge(nextID(), node, top))
					}
					continue
				}

				if y%2 == 0 {
					g.AddEdge(NewEdge(nextID(), node, at(round, x, y-1)))
					if x+1 < width {
						g.AddEdge(NewEdge(nextID(), node, at(round, x+1, y-1)))
					}
				} else {
					if x > 0 {
						g.AddEdge(NewEdge(nextID(), node, at(round, x-1, y-1)))
					}
					g.AddEdge(NewEdge(nextID(), node, at(round, x, y-1)))
				}
			}
		}

		for x := 0; x < width; x++ {
			node := at(round, x, height-1)
			if x > 0 {
				g.AddEdge(NewEdge(nextID(), node, bottom))
			}
			g.AddEdge(NewEdge(nextID(), node, bottom))
		}
	}

	markLogicalEdges(g, d)

	return g
}

// SurfaceCode builds a distance-D, T-round unrotated surface code decoding
// graph: a (D-1)x(D-1) square grid of Bulk nodes per round, with each node
// Normal-edged to its row predecessor (or top, at row 0) and to its column
// predecessor, and the last row Normal-edged to bottom.
func SurfaceCode(d, t int) *DecodingGraph {
	width := d - 1
	height := d - 1
	g := newDecodingGraph("surface_code", d, t, height*width)

	top := NewNode(NodeID{Kind: Virtual, Round: 0, Index: 0})
	bottom := NewNode(NodeID{Kind: Virtual, Round: 0, Index: 1})
	g.AddNode(top)
	g.AddNode(bottom)

	for round := 0; round < t; round++ {
		idx := 0
		nextID := func() EdgeID {
			id := EdgeID{Kind: Normal, Round: round, Index: idx}
			idx++
			return id
		}

		for y := 0; y < height; y++ {
			for x := 0; x < width; x++ {
				node := NewNode(NodeID{Kind: Bulk, Round: round, Index: x + y*width})
				g.AddNode(node)

				if round > 0 {
					prev, _ := g.Node(NodeID{Kind: Bulk, Round: round - 1, Index: x + y*width})
					g.AddEdge(NewEdge(EdgeID{Kind: Measurement, Round: round - 1, Index: x + y*width}, node, prev))
				}

				if y == 0 {
					g.AddEdge(NewEdge(nextID(), node, top))
				} else {
					above, _ := g.Node(NodeID{Kind: Bulk, Round: round, Index: x + (y-1)*width})
					g.AddEdge(NewEdge(nextID(), node, above))
				}

				if x > 0 {
					left, _ := g.Node(NodeID{Kind: Bulk, Round: round, Index: x - 1 + y*width})
					g.AddEdge(NewEdge(nextID(), node, left))
				}

				if y == height-1 {
					g.AddEdge(NewEdge(nextID(), node, bottom))
				}
			}
		}
	}

	markLogicalEdges(g, d)

	return g
}

// RepetitionCode builds a distance-D, T-round repetition code decoding
// graph: a single chain of D-1 Bulk nodes per round, bounded by a left
// (top) and right (bottom) Virtual node, with Measurement edges linking
// consecutive rounds at matching positions.
func RepetitionCode(d, t int) *DecodingGraph {
	height := d - 1
	g := newDecodingGraph("repetition_code", d, t, height)

	left := NewNode(NodeID{Kind: Virtual, Round: 0, Index: 0})
	right := NewNode(NodeID{Kind: Virtual, Round: 0, Index: 1})
	g.AddNode(left)
	g.AddNode(right)

	for round := 0; round < t; round++ {
		idx := 0
		nextID := func() EdgeID {
			id := EdgeID{Kind: Normal, Round: round, Index: idx}
			idx++
			return id
		}

		for y := 0; y < height; y++ {
			node := NewNode(NodeID{Kind: Bulk, Round: round, Index: y})
			g.AddNode(node)

			if round > 0 {
				prev, _ := g.Node(NodeID{Kind: Bulk, Round: round - 1, Index: y})
				g.AddEdge(NewEdge(EdgeID{Kind: Measurement, Round: round - 1, Index: y}, node, prev))
			}

			if y == 0 {
				g.AddEdge(NewEdge(nextID(), node, left))
			} else {
				prev, _ := g.Node(NodeID{Kind: Bulk, Round: round, Index: y - 1})
				g.AddEdge(NewEdge(nextID(), node, prev))
			}

			if y == height-1 {
				g.AddEdge(NewEdge(nextID(), node, right))
			}
		}
	}

	markLogicalEdges(g, d)

	return g
}
