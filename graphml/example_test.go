package graphml_test

import (
	"fmt"
	"os"
	"strings"

	"github.com/katalvlaran/netgraph/attrs"
	"github.com/katalvlaran/netgraph/core"
	"github.com/katalvlaran/netgraph/graphml"
)

// ExampleReadNetwork reads a small attributed document and inspects the
// vertex table built from its key schema.
func ExampleReadNetwork() {
	const doc = `<graphml>
  <key id="k0" for="node" attr.name="color" attr.type="string"/>
  <graph edgedefault="directed">
    <node id="n0"><data key="k0">red</data></node>
    <node id="n1"><data key="k0">blue</data></node>
    <edge source="n0" target="n1"/>
  </graph>
</graphml>`

	g, err := graphml.ReadNetwork(strings.NewReader(doc))
	if err != nil {
		fmt.Println("read:", err)
		return
	}

	color, _ := g.VertexAttr("color")
	for i := 1; i <= g.VertexCount(); i++ {
		v, _ := color.Get(i)
		s, _ := v.AsString()
		fmt.Printf("vertex %d: %s\n", i, s)
	}
	// Output:
	// vertex 1: red
	// vertex 2: blue
}

// ExampleWriteGraph writes plain topology for a two-vertex graph.
func ExampleWriteGraph() {
	g, _ := core.NewGraph(2)
	_, _ = g.AddEdge(1, 2)

	if err := graphml.WriteGraph(os.Stdout, g); err != nil {
		fmt.Println("write:", err)
	}
	// Output:
	// <?xml version="1.0" encoding="UTF-8"?>
	// <graphml xmlns="http://graphml.graphdrawing.org/xmlns" xmlns:xsi="http://www.w3.org/2001/XMLSchema-instance" xsi:schemaLocation="http://graphml.graphdrawing.org/xmlns http://graphml.graphdrawing.org/xmlns/1.0/graphml.xsd">
	//   <graph edgedefault="undirected">
	//     <node id="0"></node>
	//     <node id="1"></node>
	//     <edge source="0" target="1"></edge>
	//   </graph>
	// </graphml>
}

// ExampleWriteNetwork demonstrates a full attributed round-trip.
func ExampleWriteNetwork() {
	g, _ := core.NewGraph(2, core.WithDirected(true))
	e, _ := g.AddEdge(1, 2)

	_ = g.SetGraphAttr("name", attrs.String("tiny"))
	weight, _ := g.DeclareEdgeAttr("weight", attrs.KindDouble)
	_ = weight.Set(e, attrs.Double(0.5))

	var sb strings.Builder
	if err := graphml.WriteNetwork(&sb, g); err != nil {
		fmt.Println("write:", err)
		return
	}

	back, err := graphml.ReadNetwork(strings.NewReader(sb.String()))
	if err != nil {
		fmt.Println("read:", err)
		return
	}
	name, _ := back.GraphAttr("name")
	s, _ := name.AsString()
	tab, _ := back.EdgeAttr("weight")
	v, _ := tab.Get(e)
	f, _ := v.AsDouble()
	fmt.Printf("%s: edge %d→%d weight %.1f\n", s, e.From, e.To, f)
	// Output:
	// tiny: edge 1→2 weight 0.5
}
