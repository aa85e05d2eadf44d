package unionfind

import "github.com/tpeduzzi/clayg/graph"

// GrowthPolicy decides how much growth a single boundary-edge growth step
// contributes, as a function of the tree (already-in-cluster) endpoint and
// the leaf (across-the-boundary) endpoint.
type GrowthPolicy func(tree, leaf graph.NodeID) float64

// ConstantGrowthPolicy is the default policy: a flat 0.5 regardless of
// the edge being grown.
func ConstantGrowthPolicy() GrowthPolicy {
	return func(graph.NodeID, graph.NodeID) float64 { return 0.5 }
}

// backward reports whether growing from tree to leaf moves backward in
// time (into an earlier round) — the direction a Measurement edge takes
// from round t to round t-1.
func backward(tree, leaf graph.NodeID) bool {
	return leaf.Round < tree.Round
}

// ThirdGrowthPolicy is the "third" named policy (§4.3): 0.34 for
// same-round edges, 1.0 for backward-time edges, 0.5 otherwise.
func ThirdGrowthPolicy() GrowthPolicy {
	return func(tree, leaf graph.NodeID) float64 {
		switch {
		case backward(tree, leaf):
			return 1.0
		case tree.Round == leaf.Round:
			return 0.34
		default:
			return 0.5
		}
	}
}

// FasterBackwardsGrowthPolicy is the "faster_backwards" named policy:
// 1.0 for backward-time edges, 0.5 otherwise.
func FasterBackwardsGrowthPolicy() GrowthPolicy {
	return func(tree, leaf graph.NodeID) float64 {
		if backward(tree, leaf) {
			return 1.0
		}
		return 0.5
	}
}

// GrowthPolicyByName resolves one of the named policies from §6's
// decoder-option grammar; unrecognized names fall back to the default
// constant policy, matching §6's "unrecognized keys are ignored".
func GrowthPolicyByName(name string) (GrowthPolicy, string) {
	switch name {
	case "third":
		return ThirdGrowthPolicy(), "third"
	case "faster_backwards":
		return FasterBackwardsGrowthPolicy(), "faster_backwards"
	default:
		return ConstantGrowthPolicy(), "default"
	}
}
