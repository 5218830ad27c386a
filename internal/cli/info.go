package cli

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/netgraph/core"
	"github.com/katalvlaran/netgraph/graphml"
)

// newInfoCmd creates the info command: read one file in network mode and
// print a styled summary of its topology and attribute schema.
func newInfoCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "info FILE",
		Short: "Summarize a GraphML file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := loggerFromContext(cmd.Context())

			f, err := os.Open(args[0])
			if err != nil {
				return err
			}
			defer f.Close()

			g, err := graphml.ReadNetwork(f, graphml.WithLogger(logger))
			if err != nil {
				return fmt.Errorf("read %s: %w", args[0], err)
			}

			fmt.Fprintln(cmd.OutOrStdout(), renderInfo(args[0], g))

			return nil
		},
	}
}

// renderInfo formats the info summary for one graph.
func renderInfo(path string, g *core.Graph) string {
	mode := "undirected"
	if g.Directed() {
		mode = "directed"
	}

	var b strings.Builder
	b.WriteString(styleTitle.Render(path) + "\n")
	b.WriteString(fmt.Sprintf("%s %s\n", styleLabel.Render("vertices:"), styleValue.Render(fmt.Sprint(g.VertexCount()))))
	b.WriteString(fmt.Sprintf("%s %s\n", styleLabel.Render("edges:   "), styleValue.Render(fmt.Sprint(g.EdgeCount()))))
	b.WriteString(fmt.Sprintf("%s %s\n", styleLabel.Render("mode:    "), styleValue.Render(mode)))

	b.WriteString(renderScope("graph attrs: ", g.GraphAttrNames(), func(name string) string {
		v, _ := g.GraphAttr(name)

		return v.Kind().String()
	}))
	b.WriteString(renderScope("vertex attrs:", g.VertexAttrNames(), func(name string) string {
		t, _ := g.VertexAttr(name)

		return t.Kind().String()
	}))
	b.WriteString(renderScope("edge attrs:  ", g.EdgeAttrNames(), func(name string) string {
		t, _ := g.EdgeAttr(name)

		return t.Kind().String()
	}))

	return strings.TrimRight(b.String(), "\n")
}

// renderScope formats one "name (kind), name (kind)" attribute line, or
// nothing when the scope is empty.
func renderScope(label string, names []string, kindOf func(string) string) string {
	if len(names) == 0 {
		return ""
	}
	parts := make([]string, len(names))
	for i, name := range names {
		parts[i] = fmt.Sprintf("%s (%s)", name, kindOf(name))
	}

	return fmt.Sprintf("%s %s\n", styleLabel.Render(label), styleValue.Render(strings.Join(parts, ", ")))
}
