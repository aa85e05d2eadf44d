// Package decoder dispatches across the three decoder variants — Union-
// Find, ClAYG and single-layer ClAYG — behind one interface, and parses the
// §6 CLI decoder-spec grammar ("name" or "name(k1=v1,k2=v2,…)") into a
// concrete, configured instance.
package decoder
