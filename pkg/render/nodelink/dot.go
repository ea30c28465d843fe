package nodelink

import (
	"bytes"
	"fmt"
	"slices"
	"strconv"
	"strings"

	"github.com/dominikbraun/graph"

	"github.com/matzehuels/linguist/pkg/linguist"
)

// Options configures node-link diagram rendering.
type Options struct {
	// Detailed adds the category and language id to node labels.
	Detailed bool

	// LeftToRight lays the diagram out horizontally instead of top-down.
	LeftToRight bool
}

// ToDOT converts the group hierarchy of idx to Graphviz DOT.
func ToDOT(idx *linguist.Index, opts Options) (string, error) {
	g, err := Hierarchy(idx)
	if err != nil {
		return "", err
	}
	order, err := graph.StableTopologicalSort(g, func(a, b string) bool { return a < b })
	if err != nil {
		return "", err
	}
	adj, err := g.AdjacencyMap()
	if err != nil {
		return "", err
	}

	rankdir := "BT"
	if opts.LeftToRight {
		rankdir = "LR"
	}

	var buf bytes.Buffer
	buf.WriteString("digraph linguist {\n")
	fmt.Fprintf(&buf, "  rankdir=%s;\n", rankdir)
	buf.WriteString("  bgcolor=\"transparent\";\n")
	buf.WriteString("  node [shape=box, style=\"rounded,filled\", fillcolor=white, fontname=\"Helvetica\", fontsize=14, margin=\"0.2,0.1\"];\n")
	buf.WriteString("  edge [arrowsize=0.7];\n")
	buf.WriteString("\n")

	for _, name := range order {
		_, props, err := g.VertexWithProperties(name)
		if err != nil {
			return "", err
		}
		fmt.Fprintf(&buf, "  %q [%s];\n", name, strings.Join(nodeAttrs(name, props.Attributes, opts.Detailed), ", "))
	}

	buf.WriteString("\n")
	for _, name := range order {
		targets := make([]string, 0, len(adj[name]))
		for t := range adj[name] {
			targets = append(targets, t)
		}
		sortStrings(targets)
		for _, t := range targets {
			fmt.Fprintf(&buf, "  %q -> %q;\n", name, t)
		}
	}

	buf.WriteString("}\n")
	return buf.String(), nil
}

func nodeAttrs(name string, attrs map[string]string, detailed bool) []string {
	label := name
	if detailed && attrs[AttrType] != "" {
		label = fmt.Sprintf("%s\n%s #%s", name, attrs[AttrType], attrs[AttrID])
	}

	out := []string{fmt.Sprintf("label=%q", label)}
	if color := attrs[AttrColor]; color != "" {
		out = append(out, fmt.Sprintf("fillcolor=%q", color), fmt.Sprintf("fontcolor=%q", contrastColor(color)))
	}
	if attrs[AttrType] == "" {
		out = append(out, "style=\"rounded,dashed\"")
	}
	return out
}

// contrastColor picks black or white text for a #rrggbb background by
// weighted brightness.
func contrastColor(hex string) string {
	hex = strings.TrimPrefix(hex, "#")
	if len(hex) != 6 {
		return "black"
	}
	v, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return "black"
	}
	r := float64(v>>16&0xff) / 255
	g := float64(v>>8&0xff) / 255
	b := float64(v&0xff) / 255
	if 0.2126*r+0.7152*g+0.0722*b > 0.5 {
		return "black"
	}
	return "white"
}

func sortStrings(s []string) { slices.Sort(s) }
