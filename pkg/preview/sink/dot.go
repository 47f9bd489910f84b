package sink

import (
	"bytes"
	"context"
	"fmt"
	"strings"

	"github.com/goccy/go-graphviz"

	"github.com/adproof/adproof/pkg/preview"
	"github.com/adproof/adproof/pkg/preview/node"
)

// DOTOptions configures DOT export.
type DOTOptions struct {
	// Detailed includes text content and style attributes in node
	// labels. When false, only kind and slot are shown.
	Detailed bool
}

// ToDOT converts a render tree to Graphviz DOT format so the slot
// structure can be inspected as a node-link diagram. The resulting DOT
// string can be rendered with [RenderGraphSVG].
//
// Media and placeholder nodes are drawn with grey fill to distinguish
// them from structural boxes.
func ToDOT(res preview.Result, opts DOTOptions) string {
	var buf bytes.Buffer
	buf.WriteString("digraph G {\n")
	buf.WriteString("  rankdir=TB;\n")
	buf.WriteString("  bgcolor=\"transparent\";\n")
	buf.WriteString("  node [shape=box, style=\"rounded,filled\", fillcolor=white, fontsize=12, margin=\"0.15,0.08\"];\n")
	buf.WriteString("  ranksep=0.4;\n")
	buf.WriteString("  nodesep=0.25;\n")
	buf.WriteString("\n")

	seq := 0
	var walk func(n *node.Node) string
	walk = func(n *node.Node) string {
		id := fmt.Sprintf("n%d", seq)
		seq++
		label := dotLabel(n, opts.Detailed)
		attrs := dotAttrs(n, label)
		fmt.Fprintf(&buf, "  %q [%s];\n", id, strings.Join(attrs, ", "))
		for _, c := range n.Children {
			child := walk(c)
			fmt.Fprintf(&buf, "  %q -> %q;\n", id, child)
		}
		return id
	}
	if res.Tree != nil {
		walk(res.Tree)
	}

	buf.WriteString("}\n")
	return buf.String()
}

func dotLabel(n *node.Node, detailed bool) string {
	head := string(n.Kind)
	if n.Slot != "" {
		head += ":" + n.Slot
	}
	if !detailed {
		return head
	}

	var parts []string
	if n.Text != "" {
		parts = append(parts, "text: "+truncate(n.Text, 32))
	}
	if n.Src != "" {
		parts = append(parts, "src: "+truncate(n.Src, 32))
	}
	if n.Style.FontSizePx > 0 {
		parts = append(parts, fmt.Sprintf("font: %dpx", n.Style.FontSizePx))
	}
	if len(parts) == 0 {
		return head
	}
	return head + "\n" + strings.Join(parts, "\n")
}

func dotAttrs(n *node.Node, label string) []string {
	attrs := []string{fmt.Sprintf("label=%q", label)}
	switch n.Kind {
	case node.KindImage, node.KindVideo, node.KindPlayer, node.KindPlaceholder:
		attrs = append(attrs, "fillcolor=lightgrey")
	case node.KindGate:
		attrs = append(attrs, "style=\"rounded,filled,dashed\"", "fillcolor=lightyellow")
	}
	return attrs
}

func truncate(s string, limit int) string {
	runes := []rune(s)
	if len(runes) <= limit {
		return s
	}
	return string(runes[:limit]) + "…"
}

// RenderGraphSVG renders a DOT document to SVG using Graphviz.
func RenderGraphSVG(dot string) ([]byte, error) {
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
