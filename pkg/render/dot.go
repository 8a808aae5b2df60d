// Package render exports the dependant graph as Graphviz DOT and SVG.
package render

import (
	"bytes"
	"context"
	"fmt"

	"github.com/goccy/go-graphviz"

	"github.com/distrowave/distrowave/pkg/dag"
)

// ToDOT converts a dependant graph to Graphviz DOT. Edges point downstream,
// from a dependency to its dependants. When levels is non-nil, each node
// label carries its merge-wave level and same-level nodes share a rank, so
// the rendered rows mirror the wave report.
func ToDOT(g *dag.Graph, levels map[string]int) string {
	var buf bytes.Buffer
	buf.WriteString("digraph dependants {\n")
	buf.WriteString("  rankdir=TB;\n")
	buf.WriteString("  node [shape=box, style=\"rounded,filled\", fillcolor=white];\n")
	buf.WriteString("\n")

	for _, id := range g.Nodes() {
		label := id
		if level, ok := levels[id]; ok {
			label = fmt.Sprintf("%s\nlevel %d", id, level)
		}
		fmt.Fprintf(&buf, "  %q [label=%q];\n", id, label)
	}

	buf.WriteString("\n")
	for _, e := range g.Edges() {
		fmt.Fprintf(&buf, "  %q -> %q;\n", e.From, e.To)
	}

	if levels != nil {
		buf.WriteString("\n")
		for _, w := range dag.Waves(levels) {
			buf.WriteString("  { rank=same;")
			for _, pkg := range w.Packages {
				fmt.Fprintf(&buf, " %q;", pkg)
			}
			buf.WriteString(" }\n")
		}
	}

	buf.WriteString("}\n")
	return buf.String()
}

// RenderSVG renders a DOT graph to SVG using Graphviz.
func RenderSVG(dot string) ([]byte, error) {
	ctx := context.Background()
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
