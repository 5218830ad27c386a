// Package graphml reads and writes graphs in the GraphML XML interchange
// format, in two flavors: plain topology, and "network" graphs carrying
// typed named attributes on the graph, its vertices, and its edges.
//
// What:
//
//   - ReadGraph / WriteGraph   — topology only; key and data elements are ignored.
//   - ReadNetwork / WriteNetwork — attributed graphs; key declarations are
//     resolved into per-scope property tables on the core.Graph.
//
// Supported GraphML subset:
//
//   - One graphml root (checked by tag name; other root attributes ignored
//     on read, fixed namespace boilerplate emitted on write).
//   - key elements (id, for ∈ {graph,node,edge}, attr.name, attr.type) as
//     siblings of the single graph element.
//   - graph with edgedefault ∈ {directed, undirected}; default undirected.
//   - node/edge children with optional nested data elements; graph-scope
//     data elements as direct children of graph.
//   - attr.type vocabulary on read: int, long, boolean, float, double,
//     string, vector_float, vector_double. On write: int, boolean, double,
//     string, vector_double.
//
// Not supported: nested graphs, hyperedges, ports, schema validation,
// streaming parse.
//
// Determinism & round-trips:
//
//   - The i-th node element in document order is assigned vertex index i+1,
//     regardless of its id string; writers derive node ids from indices
//     (0-based), so write→read assigns identical indices.
//   - Round-trips preserve vertex order, edge set, and attribute values
//     exactly, except floats and vector elements, which are rendered to
//     10 significant digits, and key-declaration order, which is
//     re-synthesized on write.
//
// Errors:
//
//   - ErrMalformedDocument: root is not graphml, a data element references
//     an undeclared key id, or an edge references an undeclared node id.
//   - ErrUnsupportedType: unknown attr.type string on read; a value kind
//     with no GraphML mapping on write.
//   - ErrParseValue: data text that does not parse as the declared kind.
//   - ErrMissingAttrValue: a declared vertex/edge table lacks a value for
//     some entity during WriteNetwork.
//
// All fatal errors abort the call with no partial graph; a failed write may
// leave partial output on the sink (no rollback). Unrecognized child
// elements are logged at warn level and skipped (see WithLogger).
package graphml
