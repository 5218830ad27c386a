// Per-scope typed property tables: graph-level scalars, vertex tables
// indexed by vertex index, edge tables keyed by Edge handle. Name listings
// preserve declaration order so that serialization is deterministic.

package core

import (
	"github.com/katalvlaran/netgraph/attrs"
)

// SetGraphAttr stores a graph-scope scalar attribute under name.
// The first Set fixes the attribute's kind and its position in
// GraphAttrNames(); a later Set with a different kind returns
// ErrKindMismatch. Values with attrs.KindInvalid are rejected the same way.
// Complexity: O(1).
func (g *Graph) SetGraphAttr(name string, v attrs.Value) error {
	if v.Kind() == attrs.KindInvalid {
		return ErrKindMismatch
	}
	if prev, ok := g.graphVals[name]; ok {
		if prev.Kind() != v.Kind() {
			return ErrKindMismatch
		}
		g.graphVals[name] = v

		return nil
	}
	g.graphVals[name] = v
	g.graphOrder = append(g.graphOrder, name)

	return nil
}

// GraphAttr returns the graph-scope attribute stored under name.
// Complexity: O(1).
func (g *Graph) GraphAttr(name string) (attrs.Value, bool) {
	v, ok := g.graphVals[name]

	return v, ok
}

// GraphAttrNames lists graph-scope attribute names in first-set order.
// The slice is a copy. Complexity: O(k).
func (g *Graph) GraphAttrNames() []string {
	out := make([]string, len(g.graphOrder))
	copy(out, g.graphOrder)

	return out
}

// VertexAttr is a vertex-scope property table: one declared kind, one
// optional value per vertex index.
type VertexAttr struct {
	name string
	kind attrs.Kind
	vals []attrs.Value // 1-based, slot 0 unused
	set  []bool
}

// Name returns the attribute name the table was declared under.
func (a *VertexAttr) Name() string { return a.name }

// Kind returns the declared value kind.
func (a *VertexAttr) Kind() attrs.Kind { return a.kind }

// Len returns the number of vertex slots (the graph's vertex count).
func (a *VertexAttr) Len() int { return len(a.set) - 1 }

// Set stores v for the vertex at index i.
// Returns ErrVertexIndex for an out-of-range index and ErrKindMismatch if
// v's kind differs from the declared kind.
// Complexity: O(1).
func (a *VertexAttr) Set(i int, v attrs.Value) error {
	if i < 1 || i >= len(a.set) {
		return ErrVertexIndex
	}
	if v.Kind() != a.kind {
		return ErrKindMismatch
	}
	a.vals[i] = v
	a.set[i] = true

	return nil
}

// Get returns the value stored for vertex i; ok is false if no value was
// set or i is out of range.
// Complexity: O(1).
func (a *VertexAttr) Get(i int) (attrs.Value, bool) {
	if i < 1 || i >= len(a.set) || !a.set[i] {
		return attrs.Value{}, false
	}

	return a.vals[i], true
}

// DeclareVertexAttr registers a vertex-scope property table under name with
// the given kind. Returns ErrAttrRedeclared if name is already declared in
// the vertex scope, ErrKindMismatch for attrs.KindInvalid.
// Complexity: O(V) for slot allocation.
func (g *Graph) DeclareVertexAttr(name string, kind attrs.Kind) (*VertexAttr, error) {
	if kind == attrs.KindInvalid {
		return nil, ErrKindMismatch
	}
	if _, ok := g.vertexTabs[name]; ok {
		return nil, ErrAttrRedeclared
	}
	t := &VertexAttr{
		name: name,
		kind: kind,
		vals: make([]attrs.Value, g.n+1),
		set:  make([]bool, g.n+1),
	}
	g.vertexTabs[name] = t
	g.vertexOrder = append(g.vertexOrder, name)

	return t, nil
}

// VertexAttr returns the vertex-scope table declared under name.
// Complexity: O(1).
func (g *Graph) VertexAttr(name string) (*VertexAttr, bool) {
	t, ok := g.vertexTabs[name]

	return t, ok
}

// VertexAttrNames lists vertex-scope attribute names in declaration order.
// The slice is a copy. Complexity: O(k).
func (g *Graph) VertexAttrNames() []string {
	out := make([]string, len(g.vertexOrder))
	copy(out, g.vertexOrder)

	return out
}

// EdgeAttr is an edge-scope property table: one declared kind, values keyed
// by the canonical Edge handle returned from AddEdge.
//
// Parallel edges share one handle and therefore one value slot.
type EdgeAttr struct {
	name string
	kind attrs.Kind
	vals map[Edge]attrs.Value
}

// Name returns the attribute name the table was declared under.
func (a *EdgeAttr) Name() string { return a.name }

// Kind returns the declared value kind.
func (a *EdgeAttr) Kind() attrs.Kind { return a.kind }

// Set stores v for the edge handle e.
// Returns ErrKindMismatch if v's kind differs from the declared kind.
// Complexity: O(1).
func (a *EdgeAttr) Set(e Edge, v attrs.Value) error {
	if v.Kind() != a.kind {
		return ErrKindMismatch
	}
	a.vals[e] = v

	return nil
}

// Get returns the value stored for edge handle e; ok is false if absent.
// Complexity: O(1).
func (a *EdgeAttr) Get(e Edge) (attrs.Value, bool) {
	v, ok := a.vals[e]

	return v, ok
}

// DeclareEdgeAttr registers an edge-scope property table under name with
// the given kind. Returns ErrAttrRedeclared if name is already declared in
// the edge scope, ErrKindMismatch for attrs.KindInvalid.
// Complexity: O(1).
func (g *Graph) DeclareEdgeAttr(name string, kind attrs.Kind) (*EdgeAttr, error) {
	if kind == attrs.KindInvalid {
		return nil, ErrKindMismatch
	}
	if _, ok := g.edgeTabs[name]; ok {
		return nil, ErrAttrRedeclared
	}
	t := &EdgeAttr{
		name: name,
		kind: kind,
		vals: make(map[Edge]attrs.Value),
	}
	g.edgeTabs[name] = t
	g.edgeOrder = append(g.edgeOrder, name)

	return t, nil
}

// EdgeAttr returns the edge-scope table declared under name.
// Complexity: O(1).
func (g *Graph) EdgeAttr(name string) (*EdgeAttr, bool) {
	t, ok := g.edgeTabs[name]

	return t, ok
}

// EdgeAttrNames lists edge-scope attribute names in declaration order.
// The slice is a copy. Complexity: O(k).
func (g *Graph) EdgeAttrNames() []string {
	out := make([]string, len(g.edgeOrder))
	copy(out, g.edgeOrder)

	return out
}
