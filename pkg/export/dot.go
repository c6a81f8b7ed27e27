package export

import (
	"bytes"
	"context"
	"fmt"
	"strings"

	"github.com/goccy/go-graphviz"

	"github.com/drawkit/drawkit/pkg/geom"
	"github.com/drawkit/drawkit/pkg/shape"
)

// Options configures structure-graph rendering.
type Options struct {
	// Detailed includes geometry and colour in node labels.
	// When false, only the shape kind is shown.
	Detailed bool
}

// ToDOT converts a shape sequence to Graphviz DOT format, drawing the
// document as a tree: a synthetic root, one node per shape, and an edge from
// every group to each of its members. The resulting DOT string can be
// rendered with [RenderSVG] or [RenderPNG].
//
// Group nodes are drawn with dashed outlines and grey fill to distinguish
// composites from leaf shapes.
func ToDOT(seq shape.Seq, opts Options) string {
	var buf bytes.Buffer
	buf.WriteString("digraph drawing {\n")
	buf.WriteString("  rankdir=TB;\n")
	buf.WriteString("  bgcolor=\"transparent\";\n")
	buf.WriteString("  node [shape=box, style=\"rounded,filled\", fillcolor=white, fontsize=14, margin=\"0.2,0.1\"];\n")
	buf.WriteString("  ranksep=0.5;\n")
	buf.WriteString("  nodesep=0.3;\n")
	buf.WriteString("\n")

	fmt.Fprintf(&buf, "  %q [label=%q, fillcolor=lightyellow];\n", "doc", docLabel(seq, opts.Detailed))
	for i, sh := range seq {
		writeNode(&buf, fmt.Sprintf("s%d", i), "doc", sh, opts)
	}

	buf.WriteString("}\n")
	return buf.String()
}

func writeNode(buf *bytes.Buffer, id, parent string, sh shape.Shape, opts Options) {
	attrs := nodeAttrs(sh, nodeLabel(sh, opts.Detailed))
	fmt.Fprintf(buf, "  %q [%s];\n", id, strings.Join(attrs, ", "))
	fmt.Fprintf(buf, "  %q -> %q;\n", parent, id)

	if g, ok := sh.(*shape.Group); ok {
		for i, m := range g.Members {
			writeNode(buf, fmt.Sprintf("%s.%d", id, i), id, m, opts)
		}
	}
}

func docLabel(seq shape.Seq, detailed bool) string {
	if !detailed {
		return "document"
	}
	st := seq.Stats()
	return fmt.Sprintf("document\nshapes: %d\ngroups: %d\ndepth: %d", st.Total(), st.Groups, st.Depth)
}

func nodeLabel(sh shape.Shape, detailed bool) string {
	if !detailed {
		return sh.Kind().String()
	}

	var parts []string
	switch s := sh.(type) {
	case *shape.Line:
		parts = append(parts,
			"start: "+ptLabel(s.Start),
			"end: "+ptLabel(s.End),
			"colour: "+s.Colour.String())
	case *shape.Rect:
		parts = append(parts,
			"upper left: "+ptLabel(s.UpperLeft),
			"lower right: "+ptLabel(s.LowerRight),
			"colour: "+s.Colour.String(),
			"corner: "+s.Corner.String())
	case *shape.Group:
		parts = append(parts, fmt.Sprintf("members: %d", len(s.Members)))
		if b := s.Bounds(); b.InUse {
			parts = append(parts, fmt.Sprintf("extent: %s to %s", ptLabel(b.TopLeft), ptLabel(b.BottomRight)))
		}
	}

	return sh.Kind().String() + "\n" + strings.Join(parts, "\n")
}

func nodeAttrs(sh shape.Shape, label string) []string {
	attrs := []string{fmt.Sprintf("label=%q", label)}
	if sh.Kind() == shape.KindGroup {
		attrs = append(attrs, "style=\"rounded,filled,dashed\"", "fillcolor=lightgrey")
	}
	return attrs
}

func ptLabel(p geom.Point) string {
	return fmt.Sprintf("(%s, %s)", num(p.X), num(p.Y))
}

// RenderSVG renders a DOT graph to SVG using Graphviz.
func RenderSVG(ctx context.Context, dot string) ([]byte, error) {
	return render(ctx, dot, graphviz.SVG)
}

// RenderPNG renders a DOT graph to PNG using Graphviz.
func RenderPNG(ctx context.Context, dot string) ([]byte, error) {
	return render(ctx, dot, graphviz.PNG)
}

func render(ctx context.Context, dot string, format graphviz.Format) ([]byte, error) {
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
	if err := gv.Render(ctx, g, format, &buf); err != nil {
		return nil, fmt.Errorf("render: %w", err)
	}
	return buf.Bytes(), nil
}
