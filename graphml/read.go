// Readers: plain topology and attributed ("network") variants.
//
// Both perform two explicit passes over the parsed tree: the full
// external-id → index map is built before any edge is resolved, and (in
// network mode) the full key schema is extracted before any data element
// is interpreted. These orderings are correctness requirements — both the
// edge endpoints and the data elements are forward references.

package graphml

import (
	"fmt"
	"io"

	"github.com/charmbracelet/log"

	"github.com/katalvlaran/netgraph/attrs"
	"github.com/katalvlaran/netgraph/core"
)

// ReadGraph reads plain topology from one GraphML document: nodes become
// vertices indexed 1..n in document order, edges connect them, and all key
// and data elements are ignored. Directedness follows the edgedefault
// attribute (default undirected).
//
// Returns ErrMalformedDocument for a wrong root, a duplicate node id, or an
// edge endpoint that names no declared node. On any error no graph is
// returned. Complexity: O(V + E).
func ReadGraph(r io.Reader, opts ...Option) (*core.Graph, error) {
	o := applyOptions(opts)
	doc, err := decodeDocument(r)
	if err != nil {
		return nil, err
	}

	return buildTopology(doc.Graph, o.Logger)
}

// ReadNetwork reads an attributed graph from one GraphML document:
// topology as in ReadGraph, plus one property table per declared vertex or
// edge key and one graph-scope attribute per graph-level data element.
//
// Returns ErrMalformedDocument when a data element references an
// undeclared key id (never a silent skip), ErrUnsupportedType for an
// unknown attr.type, and ErrParseValue for text that does not parse as the
// declared kind. Complexity: O(V + E + D) where D is the data-element count.
func ReadNetwork(r io.Reader, opts ...Option) (*core.Graph, error) {
	o := applyOptions(opts)
	doc, err := decodeDocument(r)
	if err != nil {
		return nil, err
	}

	// Pre-pass: the complete key schema, before any data element is touched.
	schema, err := extractKeySchema(doc.Keys, o.Logger)
	if err != nil {
		return nil, err
	}

	gx := doc.Graph
	warnUnrecognized(o.Logger, scopeGraph, gx.Extra)

	ids, err := resolveIdentity(gx)
	if err != nil {
		return nil, err
	}
	g, err := core.NewGraph(len(gx.Nodes), core.WithDirected(directedFrom(gx)))
	if err != nil {
		return nil, err
	}

	// Declare every recorded vertex and edge table up front; the schema is
	// declared ahead of the data, not lazily on first use.
	for _, id := range schema.nodeOrder {
		def := schema.node[id]
		if _, err = g.DeclareVertexAttr(def.name, def.kind); err != nil {
			return nil, fmt.Errorf("%w: vertex key %q (%q)", ErrMalformedDocument, id, def.name)
		}
	}
	for _, id := range schema.edgeOrder {
		def := schema.edge[id]
		if _, err = g.DeclareEdgeAttr(def.name, def.kind); err != nil {
			return nil, fmt.Errorf("%w: edge key %q (%q)", ErrMalformedDocument, id, def.name)
		}
	}

	// Graph-scope data: direct children of <graph>.
	for _, d := range gx.Data {
		def, ok := schema.graph[d.Key]
		if !ok {
			return nil, fmt.Errorf("%w: graph data references undeclared key %q", ErrMalformedDocument, d.Key)
		}
		v, perr := parseValue(def.kind, d.Text)
		if perr != nil {
			return nil, fmt.Errorf("graph attribute %q: %w", def.name, perr)
		}
		if err = g.SetGraphAttr(def.name, v); err != nil {
			return nil, fmt.Errorf("graph attribute %q: %w", def.name, err)
		}
	}

	// Node data, stored at each node's assigned index.
	for i, nx := range gx.Nodes {
		warnUnrecognized(o.Logger, scopeNode, nx.Extra)
		idx := i + 1
		for _, d := range nx.Data {
			def, ok := schema.node[d.Key]
			if !ok {
				return nil, fmt.Errorf("%w: node %q references undeclared key %q", ErrMalformedDocument, nx.ID, d.Key)
			}
			v, perr := parseValue(def.kind, d.Text)
			if perr != nil {
				return nil, fmt.Errorf("node %q attribute %q: %w", nx.ID, def.name, perr)
			}
			tab, _ := g.VertexAttr(def.name)
			if err = tab.Set(idx, v); err != nil {
				return nil, fmt.Errorf("node %q attribute %q: %w", nx.ID, def.name, err)
			}
		}
	}

	// Edges: insert, then attach data keyed by the returned handle.
	for _, ex := range gx.Edges {
		warnUnrecognized(o.Logger, scopeEdge, ex.Extra)
		u, v, rerr := resolveEndpoints(ids, ex)
		if rerr != nil {
			return nil, rerr
		}
		h, aerr := g.AddEdge(u, v)
		if aerr != nil {
			return nil, aerr
		}
		for _, d := range ex.Data {
			def, ok := schema.edge[d.Key]
			if !ok {
				return nil, fmt.Errorf("%w: edge %q→%q references undeclared key %q",
					ErrMalformedDocument, ex.Source, ex.Target, d.Key)
			}
			val, perr := parseValue(def.kind, d.Text)
			if perr != nil {
				return nil, fmt.Errorf("edge %q→%q attribute %q: %w", ex.Source, ex.Target, def.name, perr)
			}
			tab, _ := g.EdgeAttr(def.name)
			if err = tab.Set(h, val); err != nil {
				return nil, fmt.Errorf("edge %q→%q attribute %q: %w", ex.Source, ex.Target, def.name, err)
			}
		}
	}

	return g, nil
}

// keyDef is one resolved key declaration: attribute name plus canonical kind.
type keyDef struct {
	name string
	kind attrs.Kind
}

// keySchema holds the three scope tables mapping external key id → keyDef.
// nodeOrder/edgeOrder preserve declaration order for table pre-declaration.
type keySchema struct {
	graph map[string]keyDef
	node  map[string]keyDef
	edge  map[string]keyDef

	nodeOrder []string
	edgeOrder []string
}

// extractKeySchema records every key declaration into its scope table.
// Keys with an unrecognized scope are skipped with a warning; an unknown
// attr.type is fatal (ErrUnsupportedType).
func extractKeySchema(keys []xmlKey, logger *log.Logger) (*keySchema, error) {
	s := &keySchema{
		graph: make(map[string]keyDef),
		node:  make(map[string]keyDef),
		edge:  make(map[string]keyDef),
	}
	for _, k := range keys {
		kind, err := kindFor(k.Type)
		if err != nil {
			return nil, fmt.Errorf("key %q: %w", k.ID, err)
		}
		def := keyDef{name: k.Name, kind: kind}
		switch k.For {
		case scopeGraph:
			s.graph[k.ID] = def
		case scopeNode:
			s.node[k.ID] = def
			s.nodeOrder = append(s.nodeOrder, k.ID)
		case scopeEdge:
			s.edge[k.ID] = def
			s.edgeOrder = append(s.edgeOrder, k.ID)
		default:
			logger.Warnf("graphml: skipping key %q with unrecognized scope %q", k.ID, k.For)
		}
	}

	return s, nil
}

// buildTopology assembles a plain graph from a parsed graph element:
// identity pass first, then edge insertion in original order once the
// vertex count is final.
func buildTopology(gx *xmlGraph, logger *log.Logger) (*core.Graph, error) {
	warnUnrecognized(logger, scopeGraph, gx.Extra)

	ids, err := resolveIdentity(gx)
	if err != nil {
		return nil, err
	}
	g, err := core.NewGraph(len(gx.Nodes), core.WithDirected(directedFrom(gx)))
	if err != nil {
		return nil, err
	}
	for _, ex := range gx.Edges {
		u, v, rerr := resolveEndpoints(ids, ex)
		if rerr != nil {
			return nil, rerr
		}
		if _, err = g.AddEdge(u, v); err != nil {
			return nil, err
		}
	}

	return g, nil
}

// resolveIdentity assigns dense 1-based indices to node ids in document
// order: the i-th node element gets index i+1, whatever its id string.
// A duplicate id is rejected as ErrMalformedDocument.
func resolveIdentity(gx *xmlGraph) (map[string]int, error) {
	ids := make(map[string]int, len(gx.Nodes))
	for i, nx := range gx.Nodes {
		if _, dup := ids[nx.ID]; dup {
			return nil, fmt.Errorf("%w: duplicate node id %q", ErrMalformedDocument, nx.ID)
		}
		ids[nx.ID] = i + 1
	}

	return ids, nil
}

// resolveEndpoints maps an edge's source/target ids through the identity
// table. An id absent from the table is fatal.
func resolveEndpoints(ids map[string]int, ex xmlEdge) (int, int, error) {
	u, ok := ids[ex.Source]
	if !ok {
		return 0, 0, fmt.Errorf("%w: edge source %q names no declared node", ErrMalformedDocument, ex.Source)
	}
	v, ok := ids[ex.Target]
	if !ok {
		return 0, 0, fmt.Errorf("%w: edge target %q names no declared node", ErrMalformedDocument, ex.Target)
	}

	return u, v, nil
}

// directedFrom interprets edgedefault; anything but "directed" (including
// absence) selects an undirected graph.
func directedFrom(gx *xmlGraph) bool {
	return gx.EdgeDefault == edgeDefaultDirected
}

// warnUnrecognized logs one warning per unexpected child element and moves
// on; the element contributes nothing to the graph.
func warnUnrecognized(logger *log.Logger, context string, extra []xmlAny) {
	for _, e := range extra {
		logger.Warnf("graphml: skipping unrecognized element <%s> under <%s>", e.XMLName.Local, context)
	}
}
