// This file declares Edge, Graph, GraphOption, and the NewGraph constructor.
// Query and mutation methods live in graph.go; property tables in properties.go.

package core

import (
	"github.com/katalvlaran/netgraph/attrs"
)

// Edge is an ordered pair of 1-based vertex indices, usable as a map key.
//
// For undirected graphs the pair is canonicalized so that From <= To; the
// handle returned by AddEdge is therefore identical for (u,v) and (v,u).
type Edge struct {
	// From is the source vertex index.
	From int

	// To is the destination vertex index.
	To int
}

// GraphOption configures a Graph before creation.
type GraphOption func(g *Graph)

// WithDirected sets the directedness of the graph
// (true = directed, false = undirected; default undirected).
func WithDirected(directed bool) GraphOption {
	return func(g *Graph) { g.directed = directed }
}

// Graph is a fixed-size in-memory graph.
//
// Vertex count and directedness are set at construction and immutable
// afterward; only edges and property values may be added. Graph is not
// safe for concurrent mutation; a fully built graph is safe for
// concurrent reads.
type Graph struct {
	n        int  // vertex count, indices 1..n
	directed bool // directedness, fixed at construction

	edges   []Edge            // insertion order
	present map[Edge]struct{} // canonical handles for HasEdge

	graphVals  map[string]attrs.Value
	graphOrder []string

	vertexTabs  map[string]*VertexAttr
	vertexOrder []string

	edgeTabs  map[string]*EdgeAttr
	edgeOrder []string
}

// NewGraph creates a graph with n vertices (indices 1..n) and no edges.
// Returns ErrVertexCount if n is negative.
// Complexity: O(1).
func NewGraph(n int, opts ...GraphOption) (*Graph, error) {
	if n < 0 {
		return nil, ErrVertexCount
	}
	g := &Graph{
		n:          n,
		present:    make(map[Edge]struct{}),
		graphVals:  make(map[string]attrs.Value),
		vertexTabs: make(map[string]*VertexAttr),
		edgeTabs:   make(map[string]*EdgeAttr),
	}
	for _, opt := range opts {
		opt(g)
	}

	return g, nil
}
