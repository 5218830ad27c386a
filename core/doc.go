// Package core provides the dense-index graph container consumed by the
// graphml codec, together with per-scope typed property tables.
//
// What:
//
//   - Graph has a fixed vertex count and directedness, both set at
//     construction and never mutated afterward.
//   - Vertices are addressed by a dense 1-based integer index, contiguous,
//     assigned once. There is no vertex object — an index is the identity.
//   - Edge is an ordered (From, To) index pair used as a value handle; for
//     undirected graphs the pair is canonicalized to (low, high) on insertion.
//   - Property tables attach typed attrs.Values to the graph itself, to
//     vertex indices, or to edge handles, looked up by attribute name.
//
// Why:
//
//   - GraphML documents assign identity in document order; a fixed-size
//     container with dense indices makes that assignment trivially stable
//     and keeps round-trips deterministic.
//
// Determinism:
//
//   - Edges() returns edges in insertion order.
//   - Attribute name listings return names in declaration order.
//   - Neighbors() returns indices sorted ascending.
//
// Duplicate edges: parallel edges are preserved, not collapsed. Under an
// undirected graph, reciprocal insertions produce equal canonical handles,
// so edge-property values keyed by such handles overwrite each other.
//
// Errors:
//
//   - ErrVertexCount: negative vertex count at construction.
//   - ErrVertexIndex: index outside 1..VertexCount().
//   - ErrKindMismatch: value kind differs from the table's declared kind.
//   - ErrAttrRedeclared: attribute name declared twice in one scope.
package core
