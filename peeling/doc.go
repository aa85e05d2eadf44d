// Package peeling implements the post-processing step shared by every
// decoder in this module: given a neutral Cluster, build a spanning
// forest over its internal edges and extract a correction set by
// matching leaves inward (§4.4).
package peeling
