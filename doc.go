// Package netgraph persists dense-index graphs in the GraphML interchange
// format — plain topology, or "network" graphs carrying typed, named
// attributes on the graph, its vertices, and its edges.
//
// What is netgraph?
//
//	A small, focused library with a CLI on top:
//		• attrs/       — closed attribute-value variant (int, bool, double, string, vector of doubles)
//		• core/        — fixed-size graph container with 1-based dense vertex indices
//		                 and per-scope typed property tables
//		• graphml/     — plain and attributed GraphML readers and writers
//		• cmd/netgraph — inspect, convert, and validate GraphML files
//
// Why choose netgraph?
//
//   - Deterministic: index order in, index order out; round-trips preserve
//     topology and attribute values (floats to 10 significant digits)
//   - Minimal API: four surface operations — ReadGraph, ReadNetwork,
//     WriteGraph, WriteNetwork
//   - Clear failure modes: sentinel errors, no partial graphs on failure
//
// Quick ASCII example:
//
//	    1───2
//	    │   │
//	    3───4
//
//	a square: four vertices, four edges, perhaps a "color" attribute per vertex.
//
// Dive into the graphml package docs for the exact GraphML subset supported.
//
//	go get github.com/katalvlaran/netgraph
package netgraph
