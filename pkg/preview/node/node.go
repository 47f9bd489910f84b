// Package node defines the render tree produced by the preview engine.
//
// A render tree is a host-neutral description of a composed creative
// mock-up: nested boxes, text runs, media elements, and badges, each
// carrying the fully resolved style for its slot. The tree performs no
// layout itself; final pixel placement and line wrapping are delegated
// to whatever surface consumes it (HTML, SVG, terminal).
//
// Trees are plain values. Building the same tree twice from identical
// inputs yields structurally identical output, which downstream diffing
// layers rely on.
package node

// Kind identifies the visual role of a node.
type Kind string

// Node kinds understood by the output sinks.
const (
	KindBox         Kind = "box"
	KindText        Kind = "text"
	KindImage       Kind = "image"
	KindVideo       Kind = "video"
	KindPlayer      Kind = "player"
	KindBadge       Kind = "badge"
	KindButton      Kind = "button"
	KindDivider     Kind = "divider"
	KindPlaceholder Kind = "placeholder"
	KindGate        Kind = "gate"
)

// Align controls horizontal placement of a node's content.
type Align string

// Alignment values.
const (
	AlignStart  Align = "start"
	AlignCenter Align = "center"
	AlignEnd    Align = "end"
)

// Direction controls how a box stacks its children.
type Direction string

// Stacking directions.
const (
	DirColumn Direction = "column"
	DirRow    Direction = "row"
)

// Style carries the resolved visual attributes of a node.
// Zero values mean "unset"; sinks fall back to their own defaults.
type Style struct {
	FontSizePx int       `json:"font_size_px,omitempty"`
	MaxLines   int       `json:"max_lines,omitempty"`
	Bold       bool      `json:"bold,omitempty"`
	Uppercase  bool      `json:"uppercase,omitempty"`
	Color      string    `json:"color,omitempty"`
	Background string    `json:"background,omitempty"`
	Border     string    `json:"border,omitempty"`
	Align      Align     `json:"align,omitempty"`
	Direction  Direction `json:"direction,omitempty"`
	WidthPx    float64   `json:"width_px,omitempty"`
	HeightPx   float64   `json:"height_px,omitempty"`
	PaddingPx  int       `json:"padding_px,omitempty"`
	GapPx      int       `json:"gap_px,omitempty"`
	RadiusPx   int       `json:"radius_px,omitempty"`
	Grow       bool      `json:"grow,omitempty"`
}

// Patch is a partial style override attached to a slot by a variant
// descriptor. Nil pointer fields leave the base style untouched, so
// every override is independently auditable.
type Patch struct {
	FontSizePx *int
	MaxLines   *int
	Bold       *bool
	Uppercase  *bool
	Color      *string
	Background *string
	Align      *Align
	WidthPx    *float64
	HeightPx   *float64
	PaddingPx  *int
	RadiusPx   *int
}

// Apply returns s with the non-nil fields of p overlaid.
func (p *Patch) Apply(s Style) Style {
	if p == nil {
		return s
	}
	if p.FontSizePx != nil {
		s.FontSizePx = *p.FontSizePx
	}
	if p.MaxLines != nil {
		s.MaxLines = *p.MaxLines
	}
	if p.Bold != nil {
		s.Bold = *p.Bold
	}
	if p.Uppercase != nil {
		s.Uppercase = *p.Uppercase
	}
	if p.Color != nil {
		s.Color = *p.Color
	}
	if p.Background != nil {
		s.Background = *p.Background
	}
	if p.Align != nil {
		s.Align = *p.Align
	}
	if p.WidthPx != nil {
		s.WidthPx = *p.WidthPx
	}
	if p.HeightPx != nil {
		s.HeightPx = *p.HeightPx
	}
	if p.PaddingPx != nil {
		s.PaddingPx = *p.PaddingPx
	}
	if p.RadiusPx != nil {
		s.RadiusPx = *p.RadiusPx
	}
	return s
}

// Helper constructors for the common pointer-typed patch fields.
func Int(v int) *int           { return &v }
func Float(v float64) *float64 { return &v }
func Bool(v bool) *bool        { return &v }
func Str(v string) *string     { return &v }
func Alignment(v Align) *Align { return &v }

// Node is one element of a render tree.
type Node struct {
	Kind     Kind    `json:"kind"`
	Slot     string  `json:"slot,omitempty"`  // originating slot name, if any
	Text     string  `json:"text,omitempty"`  // text content / button label
	Src      string  `json:"src,omitempty"`   // image source or playback URL
	Label    string  `json:"label,omitempty"` // placeholder label, badge glyph, lock hint
	Style    Style   `json:"style,omitempty"`
	Children []*Node `json:"children,omitempty"`
}

// Box creates a container node.
func Box(slot string, style Style, children ...*Node) *Node {
	return &Node{Kind: KindBox, Slot: slot, Style: style, Children: children}
}

// Text creates a text node.
func Text(slot, text string, style Style) *Node {
	return &Node{Kind: KindText, Slot: slot, Text: text, Style: style}
}

// Image creates an image node.
func Image(slot, src string, style Style) *Node {
	return &Node{Kind: KindImage, Slot: slot, Src: src, Style: style}
}

// Placeholder creates a labelled placeholder node for a missing asset.
func Placeholder(slot, label string, style Style) *Node {
	return &Node{Kind: KindPlaceholder, Slot: slot, Label: label, Style: style}
}

// Append adds children to n and returns n for chaining.
func (n *Node) Append(children ...*Node) *Node {
	for _, c := range children {
		if c != nil {
			n.Children = append(n.Children, c)
		}
	}
	return n
}

// Walk visits n and every descendant in depth-first order.
// Visiting stops early if fn returns false.
func Walk(n *Node, fn func(*Node) bool) bool {
	if n == nil {
		return true
	}
	if !fn(n) {
		return false
	}
	for _, c := range n.Children {
		if !Walk(c, fn) {
			return false
		}
	}
	return true
}

// Count returns the number of nodes in the tree rooted at n.
func Count(n *Node) int {
	total := 0
	Walk(n, func(*Node) bool {
		total++
		return true
	})
	return total
}

// Find returns the first node in depth-first order whose slot matches.
func Find(n *Node, slot string) *Node {
	var found *Node
	Walk(n, func(c *Node) bool {
		if c.Slot == slot {
			found = c
			return false
		}
		return true
	})
	return found
}
