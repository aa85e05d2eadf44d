// Package result defines the shared output type every decoder (Union-Find,
// ClAYG, single-layer ClAYG) returns, decoupled from any one of them so
// the decoder package can dispatch across all three without a cycle.
package result

import "github.com/tpeduzzi/clayg/graph"

// DecodingResult is the output of a decode call (§6): the correction set,
// how far the streaming decoder actually looked before early-stopping, and
// an opaque cost metric.
//
// DecodingSteps is not an invariant to test against (§4.9 design note
// flags the source's own "growth_steps" bookkeeping as a reporting
// artefact) — treat it as a cost signal only.
type DecodingResult struct {
	Corrections         []graph.EdgeID
	ConsideredUpToRound int
	DecodingSteps       float64
}
