package unionfind

import (
	"github.com/tpeduzzi/clayg/graph"
	"github.com/tpeduzzi/clayg/peeling"
	"github.com/tpeduzzi/clayg/result"
)

// Decoder is the Union-Find decoder (§4.3). A Decoder instance is
// reusable across decode calls; each call starts from a fresh cluster
// list built from the graph's currently-marked nodes.
type Decoder struct {
	cfg      Config
	clusters []*graph.Cluster
}

// New constructs a Decoder from functional options.
func New(opts ...Option) *Decoder {
	return &Decoder{cfg: NewConfig(opts...)}
}

// NewFromOptions constructs a Decoder from the §6 string-keyed option map.
func NewFromOptions(options map[string]string) *Decoder {
	return &Decoder{cfg: ConfigFromStringMap(options)}
}

// Name identifies this decoder in logs, matching the source's
// decoder_name_ ("uf").
func (d *Decoder) Name() string { return "uf" }

// Clusters returns the decoder's cluster list as of the end of the last
// Decode call.
func (d *Decoder) Clusters() []*graph.Cluster { return d.clusters }

// consideredWindow implements the stop_early buffer-confinement rule
// (§4.3): the decoder confines itself to rounds <= min(T-1,
// last_round_with_marked_node + ceil((D+1)/2)).
func consideredWindow(g *graph.DecodingGraph) int {
	lastMarked := 0
	for _, n := range g.Nodes() {
		if n.ID().Kind == graph.Bulk && n.Marked() && n.ID().Round > lastMarked {
			lastMarked = n.ID().Round
		}
	}
	buffer := (g.D() + 2) / 2 // ceil((D+1)/2)
	limit := lastMarked + buffer
	if maxRound := g.T() - 1; limit > maxRound {
		limit = maxRound
	}

	return limit
}

// Decode runs the Union-Find algorithm to completion and hands the final
// cluster list to the peeling decoder (§4.3 step 3).
func (d *Decoder) Decode(g *graph.DecodingGraph) result.DecodingResult {
	consideredUpToRound := g.T() - 1
	if d.cfg.StopEarly {
		consideredUpToRound = consideredWindow(g)
	}

	d.clusters = nil
	for _, n := range g.Nodes() {
		if n.ID().Kind != graph.Bulk || !n.Marked() {
			continue
		}
		if d.cfg.StopEarly && n.ID().Round > consideredUpToRound {
			continue
		}
		c := graph.NewCluster(n)
		n.SetCluster(c)
		c.AddMarkedNode(n)
		d.clusters = append(d.clusters, c)
	}

	steps := 0
	for !graph.AllNeutral(d.clusters) {
		var fusions []FusionEdge
		for _, c := range d.clusters {
			fusions = append(fusions, Grow(c, d.cfg.Policy)...)
		}
		steps++
		Merge(fusions, &d.clusters, nil)
	}

	out := peeling.Decode(d.clusters, consideredUpToRound)
	out.DecodingSteps = float64(steps) + out.DecodingSteps

	return out
}
