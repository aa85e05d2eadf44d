package logging

import "github.com/tpeduzzi/clayg/graph"

// Sink is the core's injected logging collaborator (§6): structured
// records a concrete implementation may persist, replay, or discard.
type Sink interface {
	// LogGraph emits every edge of g once, at the start of a run.
	LogGraph(g *graph.DecodingGraph)

	// LogErrors emits the injected error EdgeIds once, at the start of a
	// run.
	LogErrors(ids []graph.EdgeID)

	// LogCorrections emits a decoder's correction set after a decode.
	LogCorrections(ids []graph.EdgeID, decoderName string)

	// LogDecodingStep emits the current cluster/boundary state after
	// every add, grow, merge, clean, and final peel.
	LogDecodingStep(clusters []*graph.Cluster, decoderName string, stepCounter, round int)

	// LogResultsEntry emits one (p, logical_error_rate, trials) point.
	LogResultsEntry(logicalErrorRate float64, trials int, p, idlingTau float64, decoderName string)

	// LogGrowthSteps emits a decoding_steps histogram for one physical
	// error rate p.
	LogGrowthSteps(p float64, histogram map[int]int, decoderName string)
}
