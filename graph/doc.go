// Package graph implements the decoding graph for phenomenological-noise
// surface-code and repetition-code decoding: ancilla ("bulk") and boundary
// ("virtual") nodes, intra-round ("normal") and inter-round ("measurement")
// edges, and the Cluster type grown over them by the Union-Find and ClAYG
// decoders.
//
// Node, Edge and Cluster are intentionally kept in a single package: a
// Cluster holds direct pointers into a DecodingGraph's Nodes and Edges, a
// Node holds a back-reference to the Cluster that currently owns it, and an
// Edge is shared between two Nodes and, indirectly, between the Clusters
// those Nodes belong to. Keeping the cycle inside one package means the
// back-reference can be a plain, explicitly-cleared pointer instead of a
// weak handle threaded across package boundaries.
//
// A DecodingGraph is built once by a factory (RotatedSurfaceCode,
// SurfaceCode, RepetitionCode) and then reused across many decode attempts
// via Reset/Mark; decoders (unionfind, clayg) consume it only through this
// package's exported API.
package graph
