package core_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/netgraph/core"
)

// TestNewGraph_Validation verifies the vertex-count guard and the defaults.
func TestNewGraph_Validation(t *testing.T) {
	_, err := core.NewGraph(-1)
	assert.ErrorIs(t, err, core.ErrVertexCount, "negative count must error")

	g, err := core.NewGraph(0)
	require.NoError(t, err)
	assert.Equal(t, 0, g.VertexCount())
	assert.False(t, g.Directed(), "graphs default to undirected")

	dg, err := core.NewGraph(3, core.WithDirected(true))
	require.NoError(t, err)
	assert.True(t, dg.Directed())
}

// TestAddEdge_Bounds verifies index validation on both endpoints.
func TestAddEdge_Bounds(t *testing.T) {
	g, err := core.NewGraph(2)
	require.NoError(t, err)

	cases := []struct{ u, v int }{{0, 1}, {1, 0}, {3, 1}, {1, 3}, {-1, 1}}
	for _, tc := range cases {
		_, err = g.AddEdge(tc.u, tc.v)
		assert.ErrorIs(t, err, core.ErrVertexIndex, "AddEdge(%d,%d)", tc.u, tc.v)
	}
	assert.Equal(t, 0, g.EdgeCount(), "failed inserts must not register")
}

// TestAddEdge_UndirectedCanonicalization checks that undirected handles are
// normalized to (low, high) and that HasEdge ignores orientation.
func TestAddEdge_UndirectedCanonicalization(t *testing.T) {
	g, err := core.NewGraph(3)
	require.NoError(t, err)

	h, err := g.AddEdge(3, 1)
	require.NoError(t, err)
	assert.Equal(t, core.Edge{From: 1, To: 3}, h, "handle must be canonical (low, high)")
	assert.True(t, g.HasEdge(1, 3))
	assert.True(t, g.HasEdge(3, 1))
	assert.False(t, g.HasEdge(1, 2))
}

// TestAddEdge_DirectedOrientation checks that directed handles keep their
// orientation and HasEdge respects it.
func TestAddEdge_DirectedOrientation(t *testing.T) {
	g, err := core.NewGraph(3, core.WithDirected(true))
	require.NoError(t, err)

	h, err := g.AddEdge(3, 1)
	require.NoError(t, err)
	assert.Equal(t, core.Edge{From: 3, To: 1}, h)
	assert.True(t, g.HasEdge(3, 1))
	assert.False(t, g.HasEdge(1, 3), "directed HasEdge must respect orientation")
}

// TestEdges_InsertionOrder verifies that Edges preserves insertion order,
// keeps parallel edges, and returns an independent copy.
func TestEdges_InsertionOrder(t *testing.T) {
	g, err := core.NewGraph(3, core.WithDirected(true))
	require.NoError(t, err)

	_, _ = g.AddEdge(2, 3)
	_, _ = g.AddEdge(1, 2)
	_, _ = g.AddEdge(2, 3) // parallel, preserved

	want := []core.Edge{{From: 2, To: 3}, {From: 1, To: 2}, {From: 2, To: 3}}
	got := g.Edges()
	assert.Equal(t, want, got)

	got[0] = core.Edge{From: 9, To: 9}
	assert.Equal(t, want, g.Edges(), "Edges must return a copy")
}

// TestDegreeAndNeighbors covers both directions of incidence and sorted,
// de-duplicated neighbor listings.
func TestDegreeAndNeighbors(t *testing.T) {
	g, err := core.NewGraph(4, core.WithDirected(true))
	require.NoError(t, err)

	_, _ = g.AddEdge(1, 2)
	_, _ = g.AddEdge(3, 1)
	_, _ = g.AddEdge(1, 2) // parallel

	deg, err := g.Degree(1)
	require.NoError(t, err)
	assert.Equal(t, 3, deg, "two out-edges plus one in-edge")

	nbrs, err := g.Neighbors(1)
	require.NoError(t, err)
	assert.Equal(t, []int{2, 3}, nbrs, "distinct, ascending")

	_, err = g.Degree(5)
	assert.ErrorIs(t, err, core.ErrVertexIndex)
	_, err = g.Neighbors(0)
	assert.ErrorIs(t, err, core.ErrVertexIndex)
}

// TestAdjacencyList verifies successor lists with 1-based slots and the
// mirroring of undirected edges.
func TestAdjacencyList(t *testing.T) {
	g, err := core.NewGraph(3)
	require.NoError(t, err)

	_, _ = g.AddEdge(1, 2)
	_, _ = g.AddEdge(2, 3)

	adj := g.AdjacencyList()
	require.Len(t, adj, 4, "slot 0 unused")
	assert.Equal(t, []int{2}, adj[1])
	assert.Equal(t, []int{1, 3}, adj[2])
	assert.Equal(t, []int{2}, adj[3])
}

// TestToDirected expands each undirected edge into a reciprocal pair and
// keeps self-loops single.
func TestToDirected(t *testing.T) {
	g, err := core.NewGraph(2)
	require.NoError(t, err)
	_, _ = g.AddEdge(1, 2)

	d := g.ToDirected()
	assert.True(t, d.Directed())
	assert.Equal(t, 2, d.VertexCount())
	assert.Equal(t, []core.Edge{{From: 1, To: 2}, {From: 2, To: 1}}, d.Edges())
}

// TestToUndirected collapses directed edges onto canonical handles without
// deduplicating reciprocal pairs.
func TestToUndirected(t *testing.T) {
	g, err := core.NewGraph(2, core.WithDirected(true))
	require.NoError(t, err)
	_, _ = g.AddEdge(1, 2)
	_, _ = g.AddEdge(2, 1)

	u := g.ToUndirected()
	assert.False(t, u.Directed())
	assert.Equal(t, []core.Edge{{From: 1, To: 2}, {From: 1, To: 2}}, u.Edges(),
		"reciprocal pair becomes two parallel canonical edges")
}
