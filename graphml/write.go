// Writers: plain topology and attributed ("network") variants.
//
// Node ids on output are derived from indices (0-based decimal), so a
// write→read cycle assigns identical indices regardless of the ids the
// graph was originally read from. The attributed writer synthesizes a
// fresh key schema on every call: key ids are sequential ("key0", "key1",
// …) in the fixed scope order graph, vertex, edge.

package graphml

import (
	"fmt"
	"io"
	"strconv"

	"github.com/katalvlaran/netgraph/core"
)

// WriteGraph writes plain topology: the fixed graphml boilerplate, one node
// per vertex in index order, one edge per edge in insertion order. No key
// or data elements are emitted. Output is indented, human-readable XML.
//
// Any sink failure propagates immediately; a failed write may leave partial
// output behind. Complexity: O(V + E).
func WriteGraph(w io.Writer, g *core.Graph) error {
	doc := newDocument()
	doc.Graph = topologyElement(g)

	return encodeDocument(w, doc)
}

// WriteNetwork writes an attributed graph in two phases: first the key
// schema is synthesized from the graph's property tables (scope order
// graph, vertex, edge; each table in its own declaration order), then the
// body is emitted with one data element per declared attribute per entity.
//
// Every declared vertex/edge table must hold a value for every entity;
// a gap aborts the write with ErrMissingAttrValue. A value kind outside
// the writable set aborts with ErrUnsupportedType.
// Complexity: O(V·Kv + E·Ke + Kg).
func WriteNetwork(w io.Writer, g *core.Graph) error {
	doc := newDocument()
	gx := topologyElement(g)

	// Phase 1: schema synthesis and the name → key-id lookups for phase 2.
	next := 0
	graphKeys := make(map[string]string, len(g.GraphAttrNames()))
	for _, name := range g.GraphAttrNames() {
		v, _ := g.GraphAttr(name)
		at, err := attrTypeFor(v.Kind())
		if err != nil {
			return fmt.Errorf("graph attribute %q: %w", name, err)
		}
		id := keyID(next)
		next++
		doc.Keys = append(doc.Keys, xmlKey{ID: id, For: scopeGraph, Name: name, Type: at})
		graphKeys[name] = id
	}
	vertexKeys := make(map[string]string, len(g.VertexAttrNames()))
	for _, name := range g.VertexAttrNames() {
		tab, _ := g.VertexAttr(name)
		at, err := attrTypeFor(tab.Kind())
		if err != nil {
			return fmt.Errorf("vertex attribute %q: %w", name, err)
		}
		id := keyID(next)
		next++
		doc.Keys = append(doc.Keys, xmlKey{ID: id, For: scopeNode, Name: name, Type: at})
		vertexKeys[name] = id
	}
	edgeKeys := make(map[string]string, len(g.EdgeAttrNames()))
	for _, name := range g.EdgeAttrNames() {
		tab, _ := g.EdgeAttr(name)
		at, err := attrTypeFor(tab.Kind())
		if err != nil {
			return fmt.Errorf("edge attribute %q: %w", name, err)
		}
		id := keyID(next)
		next++
		doc.Keys = append(doc.Keys, xmlKey{ID: id, For: scopeEdge, Name: name, Type: at})
		edgeKeys[name] = id
	}

	// Phase 2: body emission in the same iteration orders.
	for _, name := range g.GraphAttrNames() {
		v, _ := g.GraphAttr(name)
		text, err := formatValue(v)
		if err != nil {
			return fmt.Errorf("graph attribute %q: %w", name, err)
		}
		gx.Data = append(gx.Data, xmlData{Key: graphKeys[name], Text: text})
	}

	vertexNames := g.VertexAttrNames()
	for i := 1; i <= g.VertexCount(); i++ {
		for _, name := range vertexNames {
			tab, _ := g.VertexAttr(name)
			v, ok := tab.Get(i)
			if !ok {
				return fmt.Errorf("%w: vertex %d has no value for %q", ErrMissingAttrValue, i, name)
			}
			text, err := formatValue(v)
			if err != nil {
				return fmt.Errorf("vertex %d attribute %q: %w", i, name, err)
			}
			gx.Nodes[i-1].Data = append(gx.Nodes[i-1].Data, xmlData{Key: vertexKeys[name], Text: text})
		}
	}

	edgeNames := g.EdgeAttrNames()
	for j, e := range g.Edges() {
		for _, name := range edgeNames {
			tab, _ := g.EdgeAttr(name)
			v, ok := tab.Get(e)
			if !ok {
				return fmt.Errorf("%w: edge %d→%d has no value for %q", ErrMissingAttrValue, e.From, e.To, name)
			}
			text, err := formatValue(v)
			if err != nil {
				return fmt.Errorf("edge %d→%d attribute %q: %w", e.From, e.To, name, err)
			}
			gx.Edges[j].Data = append(gx.Edges[j].Data, xmlData{Key: edgeKeys[name], Text: text})
		}
	}

	doc.Graph = gx

	return encodeDocument(w, doc)
}

// topologyElement builds the graph element skeleton shared by both writers:
// edgedefault from directedness, nodes in index order, edges in insertion
// order.
func topologyElement(g *core.Graph) *xmlGraph {
	gx := &xmlGraph{EdgeDefault: edgeDefaultUndirected}
	if g.Directed() {
		gx.EdgeDefault = edgeDefaultDirected
	}

	n := g.VertexCount()
	gx.Nodes = make([]xmlNode, n)
	for i := 1; i <= n; i++ {
		gx.Nodes[i-1] = xmlNode{ID: nodeID(i)}
	}

	edges := g.Edges()
	gx.Edges = make([]xmlEdge, len(edges))
	for j, e := range edges {
		gx.Edges[j] = xmlEdge{Source: nodeID(e.From), Target: nodeID(e.To)}
	}

	return gx
}

// nodeID derives the external node id from an internal index: 0-based decimal.
func nodeID(idx int) string {
	return strconv.Itoa(idx - 1)
}

// keyID derives the n-th synthesized key id.
func keyID(n int) string {
	return "key" + strconv.Itoa(n)
}
