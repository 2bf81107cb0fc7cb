// Package render produces node-link visualizations of a parsed network,
// useful for eyeballing small networks before feeding the matrices to a
// modeling tool.
package render

import (
	"bytes"
	"context"
	"fmt"

	"github.com/goccy/go-graphviz"

	"github.com/transitlab/netmat/pkg/network"
)

// Options configures node-link diagram rendering.
type Options struct {
	// Detailed includes coordinates in node labels and link attributes
	// (length, freespeed, capacity) in edge labels.
	// When false, only the node id is shown.
	Detailed bool
}

// ToDOT converts a network to Graphviz DOT format.
// The resulting DOT string can be rendered with [RenderSVG].
func ToDOT(net *network.Network, opts Options) string {
	var buf bytes.Buffer
	buf.WriteString("digraph network {\n")
	buf.WriteString("  rankdir=LR;\n")
	buf.WriteString("  bgcolor=\"transparent\";\n")
	buf.WriteString("  node [shape=circle, style=filled, fillcolor=white, fontsize=12];\n")
	buf.WriteString("\n")

	for _, n := range net.Nodes {
		label := n.ID
		if opts.Detailed {
			label = fmt.Sprintf("%s\n(%g, %g)", n.ID, n.Longitude(), n.Latitude())
		}
		fmt.Fprintf(&buf, "  %q [label=%q];\n", n.ID, label)
	}

	buf.WriteString("\n")
	for _, l := range net.Links {
		if opts.Detailed {
			label := fmt.Sprintf("len %g / v %g / cap %g", l.Length, l.FreeSpeed, l.Capacity)
			fmt.Fprintf(&buf, "  %q -> %q [label=%q, fontsize=10];\n", l.From, l.To, label)
			continue
		}
		fmt.Fprintf(&buf, "  %q -> %q;\n", l.From, l.To)
	}

	buf.WriteString("}\n")
	return buf.String()
}

// RenderSVG renders a DOT graph to SVG using Graphviz.
func RenderSVG(ctx context.Context, dot string) ([]byte, error) {
	gv, err := graphviz.New(ctx)
	if err != nil {
		return nil, fmt.Errorf("init graphviz: %w", err)
	}
	defer gv.Close()

	g, err := graphviz.ParseBytes([]byte(dot))
	if err != nil {
		return nil, fmt.Errorf("parse DOT: %w", err)
	}
	defer g.Close()

	var buf bytes.Buffer
	if err := gv.Render(ctx, g, graphviz.SVG, &buf); err != nil {
		return nil, fmt.Errorf("render: %w", err)
	}
	return buf.Bytes(), nil
}
