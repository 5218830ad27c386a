package core

import "sort"

// VertexCount returns the number of vertices fixed at construction.
// Complexity: O(1).
func (g *Graph) VertexCount() int { return g.n }

// Directed reports whether the graph is directed.
// Complexity: O(1).
func (g *Graph) Directed() bool { return g.directed }

// EdgeCount returns the number of inserted edges, parallel edges included.
// Complexity: O(1).
func (g *Graph) EdgeCount() int { return len(g.edges) }

// canonical returns the edge handle for (u, v) under the graph's
// directedness: ordered as given when directed, (low, high) otherwise.
func (g *Graph) canonical(u, v int) Edge {
	if !g.directed && u > v {
		u, v = v, u
	}

	return Edge{From: u, To: v}
}

// AddEdge inserts an edge between the vertices at indices u and v and
// returns its handle. The handle is canonicalized for undirected graphs,
// so it is equal for (u,v) and (v,u). Parallel edges are preserved.
// Returns ErrVertexIndex if either index is outside 1..VertexCount().
// Complexity: O(1) amortized.
func (g *Graph) AddEdge(u, v int) (Edge, error) {
	if u < 1 || u > g.n || v < 1 || v > g.n {
		return Edge{}, ErrVertexIndex
	}
	e := g.canonical(u, v)
	g.edges = append(g.edges, e)
	g.present[e] = struct{}{}

	return e, nil
}

// HasEdge reports whether at least one edge connects u and v.
// For undirected graphs the orientation of the query is irrelevant.
// Out-of-range indices report false.
// Complexity: O(1).
func (g *Graph) HasEdge(u, v int) bool {
	if u < 1 || u > g.n || v < 1 || v > g.n {
		return false
	}
	_, ok := g.present[g.canonical(u, v)]

	return ok
}

// Edges returns all edges in insertion order. The slice is a copy and may
// be retained or modified by the caller.
// Complexity: O(E).
func (g *Graph) Edges() []Edge {
	out := make([]Edge, len(g.edges))
	copy(out, g.edges)

	return out
}

// Degree returns the number of edge endpoints incident to vertex v.
// Directed graphs count both in- and out-edges; an undirected self-loop
// counts twice. Returns ErrVertexIndex for an out-of-range index.
// Complexity: O(E).
func (g *Graph) Degree(v int) (int, error) {
	if v < 1 || v > g.n {
		return 0, ErrVertexIndex
	}
	deg := 0
	for _, e := range g.edges {
		if e.From == v {
			deg++
		}
		if e.To == v {
			deg++
		}
	}
	return deg, nil
}

// Neighbors returns the distinct vertex indices adjacent to v, sorted
// ascending. Directed graphs include both predecessors and successors.
// Returns ErrVertexIndex for an out-of-range index.
// Complexity: O(E + d log d) where d is the neighbor count.
func (g *Graph) Neighbors(v int) ([]int, error) {
	if v < 1 || v > g.n {
		return nil, ErrVertexIndex
	}
	seen := make(map[int]struct{})
	for _, e := range g.edges {
		if e.From == v {
			seen[e.To] = struct{}{}
		}
		if e.To == v {
			seen[e.From] = struct{}{}
		}
	}
	out := make([]int, 0, len(seen))
	for u := range seen {
		out = append(out, u)
	}
	sort.Ints(out)

	return out, nil
}

// AdjacencyList builds per-vertex successor lists: slot v holds the
// indices reachable from v in one step, in edge-insertion order.
// Slot 0 is unused so that indices line up with vertex numbering.
// Undirected edges appear in both endpoint slots (a self-loop once).
// Complexity: O(V + E).
func (g *Graph) AdjacencyList() [][]int {
	adj := make([][]int, g.n+1)
	for _, e := range g.edges {
		adj[e.From] = append(adj[e.From], e.To)
		if !g.directed && e.From != e.To {
			adj[e.To] = append(adj[e.To], e.From)
		}
	}

	return adj
}

// ToDirected returns a new directed graph over the same vertex set.
// Each undirected edge (u,v) becomes the pair u→v and v→u; a self-loop
// becomes a single directed loop. An already-directed graph is copied
// as-is. Property tables are not carried over — this is a topology
// conversion only.
// Complexity: O(V + E).
func (g *Graph) ToDirected() *Graph {
	out, _ := NewGraph(g.n, WithDirected(true))
	for _, e := range g.edges {
		_, _ = out.AddEdge(e.From, e.To)
		if !g.directed && e.From != e.To {
			_, _ = out.AddEdge(e.To, e.From)
		}
	}

	return out
}

// ToUndirected returns a new undirected graph over the same vertex set.
// Each directed edge collapses onto its canonical (low, high) handle;
// reciprocal pairs become two parallel undirected edges (no dedup).
// Property tables are not carried over.
// Complexity: O(V + E).
func (g *Graph) ToUndirected() *Graph {
	out, _ := NewGraph(g.n, WithDirected(false))
	for _, e := range g.edges {
		_, _ = out.AddEdge(e.From, e.To)
	}

	return out
}
