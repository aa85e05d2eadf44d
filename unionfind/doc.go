// Package unionfind implements the Union-Find decoder (§4.3): cluster
// initialization from marked nodes, half-weight boundary growth, fusion of
// clusters whose connecting edge has fully grown, and a final hand-off to
// the peeling package once every cluster is neutral.
//
// Grow and Merge are exported so the clayg package can reuse the exact
// same growth/merge mechanics for its own streaming loop, passing its own
// post-merge hook to stamp cluster neutrality timestamps.
package unionfind
