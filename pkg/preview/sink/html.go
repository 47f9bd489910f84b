package sink

import (
	"bytes"
	"fmt"
	"html"
	"strconv"
	"strings"

	"github.com/adproof/adproof/pkg/preview"
	"github.com/adproof/adproof/pkg/preview/node"
)

const pageCSS = `
    body { margin: 0; font-family: Roboto, Arial, sans-serif; background: #f1f3f4; }
    .frame { margin: 24px auto; max-width: 420px; }
    .placeholder { background: repeating-linear-gradient(45deg, #e8eaed, #e8eaed 8px, #f1f3f4 8px, #f1f3f4 16px); color: #9aa0a6; display: flex; align-items: center; justify-content: center; }
    img, iframe, video { display: block; max-width: 100%; border: 0; }`

// HTMLOption configures HTML rendering via [RenderHTML].
type HTMLOption func(*htmlRenderer)

type htmlRenderer struct {
	title    string
	fragment bool
}

// WithHTMLTitle sets the document title. Defaults to the variant key.
func WithHTMLTitle(t string) HTMLOption { return func(r *htmlRenderer) { r.title = t } }

// WithHTMLFragment omits the document shell so the output can be
// embedded in a host page.
func WithHTMLFragment() HTMLOption { return func(r *htmlRenderer) { r.fragment = true } }

// variantKey extracts the descriptor key, empty for unknown variants.
func variantKey(res preview.Result) string {
	if res.Variant != nil {
		return res.Variant.Key
	}
	return ""
}

// RenderHTML produces a self-contained HTML mock-up of the composed
// preview. All styling is inlined from the tree, so the document needs
// no external assets beyond the creative's own media URLs.
func RenderHTML(res preview.Result, opts ...HTMLOption) []byte {
	r := htmlRenderer{title: variantKey(res)}
	for _, opt := range opts {
		opt(&r)
	}

	var buf bytes.Buffer
	if !r.fragment {
		buf.WriteString("<!DOCTYPE html>\n<html>\n<head>\n")
		fmt.Fprintf(&buf, "  <meta charset=\"utf-8\">\n  <title>%s</title>\n", html.EscapeString(r.title))
		fmt.Fprintf(&buf, "  <style>%s\n  </style>\n", pageCSS)
		buf.WriteString("</head>\n<body>\n<div class=\"frame\">\n")
	}
	writeHTMLNode(&buf, res.Tree, 0)
	if !r.fragment {
		buf.WriteString("</div>\n</body>\n</html>\n")
	}
	return buf.Bytes()
}

func writeHTMLNode(buf *bytes.Buffer, n *node.Node, depth int) {
	if n == nil {
		return
	}
	indent := strings.Repeat("  ", depth)
	style := inlineCSS(n.Style)

	switch n.Kind {
	case node.KindImage:
		fmt.Fprintf(buf, "%s<img data-slot=%q src=%q style=%q>\n",
			indent, n.Slot, n.Src, style)
	case node.KindPlayer:
		fmt.Fprintf(buf, "%s<iframe data-slot=%q src=%q style=%q allowfullscreen></iframe>\n",
			indent, n.Slot, n.Src, style)
	case node.KindVideo:
		fmt.Fprintf(buf, "%s<video data-slot=%q src=%q style=%q controls></video>\n",
			indent, n.Slot, n.Src, style)
	case node.KindDivider:
		fmt.Fprintf(buf, "%s<hr data-slot=%q style=%q>\n", indent, n.Slot, style)
	case node.KindPlaceholder:
		fmt.Fprintf(buf, "%s<div data-slot=%q class=\"placeholder\" style=%q>%s</div>\n",
			indent, n.Slot, style, html.EscapeString(n.Label))
	case node.KindBadge:
		fmt.Fprintf(buf, "%s<span data-slot=%q style=%q>%s</span>\n",
			indent, n.Slot, style, html.EscapeString(n.Label))
	case node.KindText, node.KindButton:
		fmt.Fprintf(buf, "%s<div data-slot=%q style=%q>%s</div>\n",
			indent, n.Slot, style, html.EscapeString(n.Text))
	default:
		fmt.Fprintf(buf, "%s<div data-slot=%q style=%q>\n", indent, n.Slot, style)
		for _, c := range n.Children {
			writeHTMLNode(buf, c, depth+1)
		}
		fmt.Fprintf(buf, "%s</div>\n", indent)
	}
}

// inlineCSS flattens a node style into a CSS declaration list. Zero
// values are omitted so the output stays readable.
func inlineCSS(s node.Style) string {
	var d []string
	add := func(prop, val string) { d = append(d, prop+":"+val) }

	if s.FontSizePx > 0 {
		add("font-size", fmt.Sprintf("%dpx", s.FontSizePx))
	}
	if s.Bold {
		add("font-weight", "700")
	}
	if s.Uppercase {
		add("text-transform", "uppercase")
	}
	if s.Color != "" {
		add("color", s.Color)
	}
	if s.Background != "" {
		add("background", s.Background)
	}
	if s.Border != "" {
		add("border", s.Border)
	}
	if s.MaxLines > 0 {
		add("display", "-webkit-box")
		add("-webkit-line-clamp", fmt.Sprintf("%d", s.MaxLines))
		add("-webkit-box-orient", "vertical")
		add("overflow", "hidden")
	}
	switch s.Align {
	case node.AlignCenter:
		add("text-align", "center")
	case node.AlignEnd:
		add("text-align", "right")
	}
	if s.Direction == node.DirRow {
		add("display", "flex")
		add("flex-direction", "row")
		add("align-items", "center")
	}
	if s.WidthPx > 0 {
		add("width", px(s.WidthPx))
	}
	if s.HeightPx > 0 {
		add("height", px(s.HeightPx))
	}
	if s.PaddingPx > 0 {
		add("padding", fmt.Sprintf("%dpx", s.PaddingPx))
	}
	if s.GapPx > 0 {
		add("gap", fmt.Sprintf("%dpx", s.GapPx))
	}
	if s.RadiusPx > 0 {
		add("border-radius", fmt.Sprintf("%dpx", s.RadiusPx))
	}
	if s.Grow {
		add("flex-grow", "1")
		add("min-width", "0")
	}
	return strings.Join(d, ";")
}

// px formats a pixel dimension without a decimal point for whole values.
func px(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64) + "px"
}
