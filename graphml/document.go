// XML document layer: the parsed-tree representation of the supported
// GraphML subset, plus decode/encode helpers. Readers and writers operate
// on this tree, never on raw tokens.

package graphml

import (
	"encoding/xml"
	"fmt"
	"io"
)

const (
	// Ext is the conventional file extension for GraphML files.
	Ext = ".graphml"

	// Namespace is the canonical XML namespace for GraphML.
	Namespace = "http://graphml.graphdrawing.org/xmlns"

	xsiNamespace   = "http://www.w3.org/2001/XMLSchema-instance"
	schemaLocation = Namespace + " http://graphml.graphdrawing.org/xmlns/1.0/graphml.xsd"

	rootElement = "graphml"

	edgeDefaultDirected   = "directed"
	edgeDefaultUndirected = "undirected"

	scopeGraph = "graph"
	scopeNode  = "node"
	scopeEdge  = "edge"
)

// xmlDocument is the graphml root: key declarations and one graph.
type xmlDocument struct {
	XMLName xml.Name
	Xmlns   string `xml:"xmlns,attr,omitempty"`
	XSI     string `xml:"xmlns:xsi,attr,omitempty"`
	Schema  string `xml:"xsi:schemaLocation,attr,omitempty"`

	Keys  []xmlKey  `xml:"key"`
	Graph *xmlGraph `xml:"graph"`
	Extra []xmlAny  `xml:",any"`
}

// xmlKey declares one attribute: scope, external id, name, and type.
type xmlKey struct {
	ID   string `xml:"id,attr"`
	For  string `xml:"for,attr"`
	Name string `xml:"attr.name,attr"`
	Type string `xml:"attr.type,attr"`
}

// xmlGraph holds graph-scope data elements, nodes, and edges.
// Field order is emission order: data, then nodes, then edges.
type xmlGraph struct {
	EdgeDefault string `xml:"edgedefault,attr,omitempty"`

	Data  []xmlData `xml:"data"`
	Nodes []xmlNode `xml:"node"`
	Edges []xmlEdge `xml:"edge"`
	Extra []xmlAny  `xml:",any"`
}

type xmlNode struct {
	ID    string    `xml:"id,attr"`
	Data  []xmlData `xml:"data"`
	Extra []xmlAny  `xml:",any"`
}

type xmlEdge struct {
	Source string    `xml:"source,attr"`
	Target string    `xml:"target,attr"`
	Data   []xmlData `xml:"data"`
	Extra  []xmlAny  `xml:",any"`
}

// xmlData carries one attribute value as text, referencing a key by id.
type xmlData struct {
	Key  string `xml:"key,attr"`
	Text string `xml:",chardata"`
}

// xmlAny captures an unrecognized child element so it can be reported.
type xmlAny struct {
	XMLName xml.Name
}

// newDocument returns a document shell with the fixed root boilerplate that
// every write emits verbatim.
func newDocument() *xmlDocument {
	return &xmlDocument{
		XMLName: xml.Name{Local: rootElement},
		Xmlns:   Namespace,
		XSI:     xsiNamespace,
		Schema:  schemaLocation,
	}
}

// decodeDocument parses one GraphML document from r.
// The root is checked by tag name only; other root attributes are ignored.
// Returns ErrMalformedDocument for a wrong root or a missing graph element.
func decodeDocument(r io.Reader) (*xmlDocument, error) {
	var doc xmlDocument
	if err := xml.NewDecoder(r).Decode(&doc); err != nil {
		return nil, fmt.Errorf("graphml: decode: %w", err)
	}
	if doc.XMLName.Local != rootElement {
		return nil, fmt.Errorf("%w: root element is <%s>, want <%s>",
			ErrMalformedDocument, doc.XMLName.Local, rootElement)
	}
	if doc.Graph == nil {
		return nil, fmt.Errorf("%w: document has no <graph> element", ErrMalformedDocument)
	}

	return &doc, nil
}

// encodeDocument writes doc to w as indented, human-readable XML with the
// standard processing instruction. Any sink failure propagates immediately;
// partial output is not rolled back.
func encodeDocument(w io.Writer, doc *xmlDocument) error {
	if _, err := io.WriteString(w, xml.Header); err != nil {
		return fmt.Errorf("graphml: write header: %w", err)
	}
	enc := xml.NewEncoder(w)
	enc.Indent("", "  ")
	if err := enc.Encode(doc); err != nil {
		return fmt.Errorf("graphml: encode: %w", err)
	}
	if _, err := io.WriteString(w, "\n"); err != nil {
		return fmt.Errorf("graphml: write trailer: %w", err)
	}

	return nil
}
