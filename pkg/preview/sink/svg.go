package sink

import (
	"bytes"
	"fmt"
	"html"

	"github.com/adproof/adproof/pkg/preview"
	"github.com/adproof/adproof/pkg/preview/node"
)

// Wireframe geometry defaults. Node styles override width and height
// where they carry explicit values.
const (
	defaultFrameWidth = 360.0
	defaultPadding    = 8.0
	defaultGap        = 4.0
	lineHeightFactor  = 1.4
	charWidthFactor   = 0.55
	mediaAspect       = 9.0 / 16.0
)

// SVGOption configures SVG rendering via [RenderSVG].
type SVGOption func(*svgRenderer)

type svgRenderer struct {
	width     float64
	showSlots bool
}

// WithSVGWidth sets the frame width in pixels.
func WithSVGWidth(w float64) SVGOption { return func(r *svgRenderer) { r.width = w } }

// WithSVGSlotLabels annotates each box with its originating slot name.
func WithSVGSlotLabels() SVGOption { return func(r *svgRenderer) { r.showSlots = true } }

// RenderSVG produces a schematic wireframe of the composed preview.
// Media elements are drawn as labelled frames rather than fetched, so
// the output is fully self-contained and deterministic.
func RenderSVG(res preview.Result, opts ...SVGOption) []byte {
	r := svgRenderer{width: defaultFrameWidth}
	for _, opt := range opts {
		opt(&r)
	}

	var body bytes.Buffer
	height := r.emit(&body, res.Tree, 0, 0, r.width)

	var buf bytes.Buffer
	fmt.Fprintf(&buf, `<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 %.1f %.1f" width="%.0f" height="%.0f">`+"\n",
		r.width, height, r.width, height)
	buf.WriteString("  <style>text { font-family: Roboto, Arial, sans-serif; }</style>\n")
	buf.Write(body.Bytes())
	buf.WriteString("</svg>\n")
	return buf.Bytes()
}

// emit draws n at (x, y) with the given width and returns the height
// it consumed.
func (r *svgRenderer) emit(buf *bytes.Buffer, n *node.Node, x, y, w float64) float64 {
	if n == nil {
		return 0
	}
	if n.Style.WidthPx > 0 && n.Style.WidthPx < w {
		w = n.Style.WidthPx
	}

	switch n.Kind {
	case node.KindText, node.KindButton:
		return r.emitText(buf, n, x, y, w)
	case node.KindBadge:
		return r.emitBadge(buf, n, x, y)
	case node.KindImage, node.KindVideo, node.KindPlayer, node.KindPlaceholder:
		return r.emitMedia(buf, n, x, y, w)
	case node.KindDivider:
		fmt.Fprintf(buf, "  <line x1=\"%.1f\" y1=\"%.1f\" x2=\"%.1f\" y2=\"%.1f\" stroke=\"#dadce0\"/>\n",
			x, y+1, x+w, y+1)
		return 2
	default:
		return r.emitBox(buf, n, x, y, w)
	}
}

func (r *svgRenderer) emitBox(buf *bytes.Buffer, n *node.Node, x, y, w float64) float64 {
	pad := float64(n.Style.PaddingPx)
	if pad == 0 {
		pad = defaultPadding
	}
	gap := float64(n.Style.GapPx)
	if gap == 0 {
		gap = defaultGap
	}

	inner := w - 2*pad
	var content float64
	if n.Style.Direction == node.DirRow {
		content = r.emitRow(buf, n, x+pad, y+pad, inner, gap)
	} else {
		cy := y + pad
		for i, c := range n.Children {
			if i > 0 {
				cy += gap
			}
			cy += r.emit(buf, c, x+pad, cy, inner)
		}
		content = cy - y - pad
	}

	h := content + 2*pad
	if n.Style.HeightPx > h {
		h = n.Style.HeightPx
	}
	if n.Style.Background != "" || n.Style.Border != "" {
		fill := n.Style.Background
		if fill == "" {
			fill = "none"
		}
		// Frame behind the children so text stays legible.
		frame := fmt.Sprintf("  <rect x=\"%.1f\" y=\"%.1f\" width=\"%.1f\" height=\"%.1f\" rx=\"%d\" fill=\"%s\" stroke=\"#dadce0\"/>\n",
			x, y, w, h, n.Style.RadiusPx, fill)
		prepend(buf, frame)
	}
	if r.showSlots && n.Slot != "" {
		fmt.Fprintf(buf, "  <text x=\"%.1f\" y=\"%.1f\" font-size=\"7\" fill=\"#9aa0a6\">%s</text>\n",
			x+2, y+7, html.EscapeString(n.Slot))
	}
	return h
}

func (r *svgRenderer) emitRow(buf *bytes.Buffer, n *node.Node, x, y, w, gap float64) float64 {
	fixed := 0.0
	grow := 0
	for _, c := range n.Children {
		if c.Style.WidthPx > 0 && !c.Style.Grow {
			fixed += c.Style.WidthPx
		} else {
			grow++
		}
	}
	flex := w - fixed - gap*float64(len(n.Children)-1)
	share := 0.0
	if grow > 0 {
		share = flex / float64(grow)
	}

	cx := x
	var max float64
	for i, c := range n.Children {
		if i > 0 {
			cx += gap
		}
		cw := share
		if c.Style.WidthPx > 0 && !c.Style.Grow {
			cw = c.Style.WidthPx
		}
		h := r.emit(buf, c, cx, y, cw)
		if h > max {
			max = h
		}
		cx += cw
	}
	return max
}

func (r *svgRenderer) emitText(buf *bytes.Buffer, n *node.Node, x, y, w float64) float64 {
	size := n.Style.FontSizePx
	if size == 0 {
		size = 13
	}
	lines := wrapRunes(n.Text, int(w/(float64(size)*charWidthFactor)))
	if n.Style.MaxLines > 0 && len(lines) > n.Style.MaxLines {
		lines = lines[:n.Style.MaxLines]
	}

	lineH := float64(size) * lineHeightFactor
	color := n.Style.Color
	if color == "" {
		color = "#202124"
	}
	weight := "normal"
	if n.Style.Bold {
		weight = "bold"
	}
	for i, line := range lines {
		tx := x
		anchor := "start"
		if n.Style.Align == node.AlignCenter {
			tx = x + w/2
			anchor = "middle"
		}
		fmt.Fprintf(buf, "  <text x=\"%.1f\" y=\"%.1f\" font-size=\"%d\" font-weight=\"%s\" fill=\"%s\" text-anchor=\"%s\">%s</text>\n",
			tx, y+float64(size)+float64(i)*lineH, size, weight, color, anchor, html.EscapeString(line))
	}
	return float64(len(lines)) * lineH
}

func (r *svgRenderer) emitBadge(buf *bytes.Buffer, n *node.Node, x, y float64) float64 {
	size := 16.0
	if n.Style.WidthPx > 0 {
		size = n.Style.WidthPx
	}
	fmt.Fprintf(buf, "  <circle cx=\"%.1f\" cy=\"%.1f\" r=\"%.1f\" fill=\"#00000080\"/>\n",
		x+size/2, y+size/2, size/2)
	fmt.Fprintf(buf, "  <text x=\"%.1f\" y=\"%.1f\" font-size=\"%.0f\" fill=\"#ffffff\" text-anchor=\"middle\">%s</text>\n",
		x+size/2, y+size*0.72, size*0.6, html.EscapeString(n.Label))
	return size
}

func (r *svgRenderer) emitMedia(buf *bytes.Buffer, n *node.Node, x, y, w float64) float64 {
	h := n.Style.HeightPx
	if h == 0 {
		h = w * mediaAspect
	}
	label := n.Label
	if label == "" {
		label = string(n.Kind)
	}
	fmt.Fprintf(buf, "  <rect x=\"%.1f\" y=\"%.1f\" width=\"%.1f\" height=\"%.1f\" rx=\"%d\" fill=\"#e8eaed\" stroke=\"#dadce0\"/>\n",
		x, y, w, h, n.Style.RadiusPx)
	fmt.Fprintf(buf, "  <text x=\"%.1f\" y=\"%.1f\" font-size=\"11\" fill=\"#9aa0a6\" text-anchor=\"middle\">%s</text>\n",
		x+w/2, y+h/2+4, html.EscapeString(label))
	return h
}

// wrapRunes splits text into lines of at most limit runes, breaking on
// rune boundaries rather than words. Good enough for a wireframe.
func wrapRunes(text string, limit int) []string {
	if limit < 1 {
		limit = 1
	}
	runes := []rune(text)
	if len(runes) == 0 {
		return nil
	}
	var lines []string
	for len(runes) > limit {
		lines = append(lines, string(runes[:limit]))
		runes = runes[limit:]
	}
	return append(lines, string(runes))
}

// prepend inserts s before the current buffer contents.
func prepend(buf *bytes.Buffer, s string) {
	rest := append([]byte(nil), buf.Bytes()...)
	buf.Reset()
	buf.WriteString(s)
	buf.Write(rest)
}
