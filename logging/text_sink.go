package logging

import (
	"fmt"
	"io"
	"sort"

	"github.com/rs/zerolog"

	"github.com/tpeduzzi/clayg/graph"
)

// TextSink is a Sink implementation that writes the §6 replay-compatible
// wire schema to w, and mirrors a structured summary of each call through
// an injected zerolog.Logger.
type TextSink struct {
	w   io.Writer
	log zerolog.Logger
}

// NewTextSink constructs a TextSink writing the wire schema to w and
// structured events through logger.
func NewTextSink(w io.Writer, logger zerolog.Logger) *TextSink {
	return &TextSink{w: w, log: logger}
}

func formatNodeID(id graph.NodeID) string {
	return fmt.Sprintf("%s-%d-%d", id.Kind, id.Round, id.Index)
}

func formatEdgeID(id graph.EdgeID) string {
	return fmt.Sprintf("%s-%d-%d", id.Kind, id.Round, id.Index)
}

// LogGraph writes one "node1,node2,edge" line per edge (§6's Graph edge
// schema).
func (s *TextSink) LogGraph(g *graph.DecodingGraph) {
	for _, e := range g.Edges() {
		a, b := e.Nodes()
		fmt.Fprintf(s.w, "%s,%s,%s\n", formatNodeID(a.ID()), formatNodeID(b.ID()), formatEdgeID(e.ID()))
	}
	s.log.Info().Str("code", g.CodeName()).Int("d", g.D()).Int("t", g.T()).Int("edges", len(g.Edges())).Msg("logged graph")
}

// LogErrors writes one "t-r-i" line per injected error edge.
func (s *TextSink) LogErrors(ids []graph.EdgeID) {
	for _, id := range ids {
		fmt.Fprintf(s.w, "%s\n", formatEdgeID(id))
	}
	s.log.Info().Int("count", len(ids)).Msg("logged errors")
}

// LogCorrections writes one "t-r-i" line per correction edge.
func (s *TextSink) LogCorrections(ids []graph.EdgeID, decoderName string) {
	for _, id := range ids {
		fmt.Fprintf(s.w, "%s\n", formatEdgeID(id))
	}
	s.log.Debug().Str("decoder", decoderName).Int("count", len(ids)).Msg("logged corrections")
}

// LogDecodingStep writes one "edge,tree_node,growth,cluster_id" line per
// boundary edge across every cluster (§6's Cluster step schema).
func (s *TextSink) LogDecodingStep(clusters []*graph.Cluster, decoderName string, stepCounter, round int) {
	for clusterID, c := range clusters {
		for _, b := range c.Boundary() {
			fmt.Fprintf(s.w, "%s,%s,%g,%d\n", formatEdgeID(b.Edge.ID()), formatNodeID(b.TreeNode.ID()), b.Edge.Growth(), clusterID)
		}
	}
	s.log.Debug().
		Str("decoder", decoderName).
		Int("step", stepCounter).
		Int("round", round).
		Int("clusters", len(clusters)).
		Msg("logged decoding step")
}

// LogResultsEntry writes one "p\trate\ttrials" line (§6's Results schema).
func (s *TextSink) LogResultsEntry(logicalErrorRate float64, trials int, p, idlingTau float64, decoderName string) {
	fmt.Fprintf(s.w, "%g\t%g\t%d\n", p, logicalErrorRate, trials)
	s.log.Info().
		Str("decoder", decoderName).
		Float64("p", p).
		Float64("idling_tau", idlingTau).
		Float64("logical_error_rate", logicalErrorRate).
		Int("trials", trials).
		Msg("logged results entry")
}

// LogGrowthSteps writes one "steps\tcount" line per histogram bucket, in
// ascending step order (§6's growth-step histogram schema).
func (s *TextSink) LogGrowthSteps(p float64, histogram map[int]int, decoderName string) {
	steps := make([]int, 0, len(histogram))
	for k := range histogram {
		steps = append(steps, k)
	}
	sort.Ints(steps)
	for _, k := range steps {
		fmt.Fprintf(s.w, "%d\t%d\n", k, histogram[k])
	}
	s.log.Info().Str("decoder", decoderName).Float64("p", p).Int("buckets", len(histogram)).Msg("logged growth-step histogram")
}
