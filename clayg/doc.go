// Package clayg implements the ClAYG ("Clear As You Go") streaming
// decoder (§4.5) and its single-layer projection variant (§4.6): marked
// nodes are injected round by round into a long-lived internal decoding
// graph, aged neutral clusters are peeled off as the stream advances, and
// growth/merge mechanics are reused directly from the unionfind package.
package clayg
