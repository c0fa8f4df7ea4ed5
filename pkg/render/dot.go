// Package render draws component graphs as Graphviz node-link
// diagrams, for inspecting what a flag set actually pulls in.
package render

import (
	"bytes"
	"context"
	"fmt"

	"github.com/goccy/go-graphviz"

	"github.com/pkgsmith/itkplan/pkg/component"
)

// Options configures diagram rendering.
type Options struct {
	// Externals includes external package references as dashed
	// ellipse nodes. When false, only components are drawn.
	Externals bool
}

// ToDOT converts a component graph to Graphviz DOT format.
// The resulting DOT string can be rendered with [RenderSVG].
//
// Components are drawn as boxes; external package references, when
// enabled, as dashed grey ellipses so a reader can see where the
// toolkit's own modules end.
func ToDOT(g *component.Graph, opts Options) string {
	var buf bytes.Buffer
	buf.WriteString("digraph components {\n")
	buf.WriteString("  rankdir=TB;\n")
	buf.WriteString("  bgcolor=\"transparent\";\n")
	buf.WriteString("  node [shape=box, style=\"rounded,filled\", fillcolor=white, fontsize=14, margin=\"0.2,0.1\"];\n")
	buf.WriteString("  ranksep=0.5;\n")
	buf.WriteString("  nodesep=0.3;\n")
	buf.WriteString("\n")

	for _, name := range g.Names() {
		fmt.Fprintf(&buf, "  %q;\n", name)
	}

	if opts.Externals {
		for _, ext := range externals(g) {
			fmt.Fprintf(&buf, "  %q [shape=ellipse, style=\"filled,dashed\", fillcolor=lightgrey];\n", ext)
		}
	}

	buf.WriteString("\n")
	for _, name := range g.Names() {
		c, _ := g.Component(name)
		for _, req := range c.Requires {
			if req.IsExternal() && !opts.Externals {
				continue
			}
			fmt.Fprintf(&buf, "  %q -> %q;\n", name, req.String())
		}
	}

	buf.WriteString("}\n")
	return buf.String()
}

// externals collects every distinct external reference in graph order.
func externals(g *component.Graph) []string {
	seen := make(map[string]bool)
	var out []string
	for _, name := range g.Names() {
		c, _ := g.Component(name)
		for _, req := range c.Requires {
			if req.IsExternal() && !seen[req.String()] {
				seen[req.String()] = true
				out = append(out, req.String())
			}
		}
	}
	return out
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
