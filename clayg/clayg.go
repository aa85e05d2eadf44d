package clayg

import (
	"sort"

	"github.com/tpeduzzi/clayg/graph"
	"github.com/tpeduzzi/clayg/peeling"
	"github.com/tpeduzzi/clayg/result"
	"github.com/tpeduzzi/clayg/unionfind"
)

// CodeFactory builds the internal lattice a Decoder streams marked nodes
// into. Defaults to graph.RotatedSurfaceCode.
type CodeFactory func(d, t int) *graph.DecodingGraph

// Decoder is the ClAYG streaming decoder (§4.5) and, with SingleLayer set,
// its single-layer projection variant (§4.6). A Decoder is reusable across
// Decode calls: its internal DecodingGraph is built once for a given (d, t)
// and Reset between calls, rather than rebuilt.
type Decoder struct {
	cfg         Config
	factory     CodeFactory
	SingleLayer bool

	internal *graph.DecodingGraph
	clusters []*graph.Cluster
}

// New constructs a multi-layer ClAYG Decoder.
func New(opts ...Option) *Decoder {
	return &Decoder{cfg: NewConfig(opts...), factory: graph.RotatedSurfaceCode}
}

// NewFromOptions constructs a multi-layer ClAYG Decoder from the §6
// string-keyed option map.
func NewFromOptions(options map[string]string) *Decoder {
	return &Decoder{cfg: ConfigFromStringMap(options), factory: graph.RotatedSurfaceCode}
}

// NewSingleLayer constructs the single-layer ClAYG variant (§4.6): marked
// nodes from every round are folded onto a single T=1 projection of the
// lattice before streaming.
func NewSingleLayer(opts ...Option) *Decoder {
	d := New(opts...)
	d.SingleLayer = true
	return d
}

// NewSingleLayerFromOptions is NewFromOptions's single-layer counterpart.
func NewSingleLayerFromOptions(options map[string]string) *Decoder {
	d := NewFromOptions(options)
	d.SingleLayer = true
	return d
}

// Name identifies this decoder in logs.
func (d *Decoder) Name() string {
	if d.SingleLayer {
		return "clayg_single_layer"
	}
	return "clayg"
}

// WithFactory overrides the lattice factory used to build the internal
// graph (default graph.RotatedSurfaceCode, matching the source, which
// always drives its internal graph from rotated_surface_code) and returns
// the Decoder for chaining.
func (d *Decoder) WithFactory(f CodeFactory) *Decoder {
	d.factory = f
	return d
}

func (d *Decoder) ensureInternal(g *graph.DecodingGraph) {
	if d.internal != nil && d.internal.D() == g.D() && (d.SingleLayer || d.internal.T() == g.T()) {
		d.internal.Reset()
		return
	}
	full := d.factory(g.D(), g.T())
	if d.SingleLayer {
		d.internal = graph.SingleLayerCopy(full)
	} else {
		d.internal = full
	}
}

// sortedMarked returns g's marked bulk nodes ordered by (round, index), the
// order ClAYG streams them in (§5 Ordering).
func sortedMarked(g *graph.DecodingGraph) []*graph.Node {
	var out []*graph.Node
	for _, n := range g.Nodes() {
		if n.ID().Kind == graph.Bulk && n.Marked() {
			out = append(out, n)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		a, b := out[i].ID(), out[j].ID()
		if a.Round != b.Round {
			return a.Round < b.Round
		}
		return a.Index < b.Index
	})
	return out
}

// add locates n's counterpart in the internal graph (round-flattened to 0
// under SingleLayer) and toggles its marked state, creating a new singleton
// cluster if the node is not yet owned (§4.5 step 1).
func (d *Decoder) add(n *graph.Node, round int) {
	id := n.ID()
	if d.SingleLayer {
		id.Round = 0
	}
	target, ok := d.internal.Node(id)
	if !ok {
		return
	}
	target.ToggleMarked()

	if c := target.Cluster(); c != nil {
		if target.Marked() {
			c.AddMarkedNode(target)
		} else {
			c.RemoveMarkedNode(target)
		}
		if c.IsNeutral(true) {
			c.SetHasBeenNeutralSince(round)
		}
		return
	}

	c := graph.NewCluster(target)
	target.SetCluster(c)
	if target.Marked() {
		c.AddMarkedNode(target)
	}
	if target.ID().Kind == graph.Virtual {
		c.AddVirtualNode(target)
	}
	if c.IsNeutral(true) {
		c.SetHasBeenNeutralSince(round)
	}
	d.clusters = append(d.clusters, c)
}

// clean peels every neutral cluster that has aged past the configured
// lifetime, refunding the growth of its boundary edges and resetting its
// bulk edges, and retains everything else (§4.5 step 2).
func (d *Decoder) clean(round, codeD int) ([]graph.EdgeID, int) {
	lifetime := d.cfg.Lifetime(codeD)
	var corrections []graph.EdgeID
	var retained []*graph.Cluster
	maxSteps := 0

	for _, c := range d.clusters {
		if !c.IsNeutral(true) {
			retained = append(retained, c)
			continue
		}
		if round-c.HasBeenNeutralSince() < lifetime {
			retained = append(retained, c)
			continue
		}

		edges, steps := peeling.Peel(c)
		if steps > maxSteps {
			maxSteps = steps
		}
		for _, e := range edges {
			corrections = append(corrections, e.ID())
		}
		for _, node := range c.Nodes() {
			node.SetCluster(nil)
		}
		for _, e := range c.BulkEdges() {
			e.ResetGrowth()
		}
		for _, b := range c.Boundary() {
			b.Edge.AddGrowth(-b.GrowthFromTree)
		}
	}
	d.clusters = retained

	return corrections, maxSteps
}

func (d *Decoder) growAndMerge(round int) int {
	var fusions []unionfind.FusionEdge
	for _, c := range d.clusters {
		fusions = append(fusions, unionfind.Grow(c, d.cfg.Policy)...)
	}
	unionfind.Merge(fusions, &d.clusters, func(c *graph.Cluster) {
		if c.IsNeutral(true) {
			c.SetHasBeenNeutralSince(round)
		}
	})
	return len(fusions)
}

// bufferRounds is the §4.5/§4.6 early-termination buffer: ceil((d+1)/2) for
// the multi-layer streaming decoder, ceil((d-1)/2) once every round has
// been flattened onto a single layer.
func (d *Decoder) bufferRounds(codeD int) int {
	if d.SingleLayer {
		return (codeD) / 2 // ceil((d-1)/2)
	}
	return (codeD + 2) / 2 // ceil((d+1)/2)
}

// Decode streams g's marked nodes into the internal graph round by round,
// peeling aged-neutral clusters as it goes, then finishes with a
// grow/merge loop and a final peel over whatever remains (§4.5).
func (d *Decoder) Decode(g *graph.DecodingGraph) result.DecodingResult {
	d.ensureInternal(g)
	d.clusters = nil

	codeD, t := g.D(), g.T()
	marked := sortedMarked(g)
	mi := 0

	var corrections []graph.EdgeID
	growthSteps := 0.0
	maxSteps := 0.0
	lastNonNeutralRound := 0
	consideredUpToRound := t - 1

	for round := 0; round < t; round++ {
		for mi < len(marked) && marked[mi].ID().Round == round {
			d.add(marked[mi], round)
			mi++
		}

		corr, steps := d.clean(round, codeD)
		corrections = append(corrections, corr...)
		if s := growthSteps + float64(steps); s > maxSteps {
			maxSteps = s
		}

		if round == t-1 {
			break
		}

		for i := 0; i < d.cfg.GrowthRounds; i++ {
			d.growAndMerge(round)
			growthSteps += 1.0 / float64(d.cfg.GrowthRounds)
			if d.cfg.StopEarly && graph.AllNeutral(d.clusters) {
				break
			}
		}

		corr, steps = d.clean(round, codeD)
		corrections = append(corrections, corr...)
		if s := growthSteps + float64(steps); s > maxSteps {
			maxSteps = s
		}

		if !graph.AllNeutral(d.clusters) {
			lastNonNeutralRound = round
		}

		if d.cfg.StopEarly && graph.AllNeutral(d.clusters) &&
			round-lastNonNeutralRound >= d.bufferRounds(codeD) {
			consideredUpToRound = round
			break
		}
	}

	for !graph.AllNeutral(d.clusters) {
		d.growAndMerge(t - 1)
		growthSteps++
	}

	final := peeling.Decode(d.clusters, consideredUpToRound)
	corrections = append(corrections, final.Corrections...)
	if s := growthSteps + final.DecodingSteps; s > maxSteps {
		maxSteps = s
	}
	d.clusters = nil

	return result.DecodingResult{
		Corrections:         corrections,
		ConsideredUpToRound: consideredUpToRound,
		DecodingSteps:       maxSteps,
	}
}
