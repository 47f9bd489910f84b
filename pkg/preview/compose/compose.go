// Package compose assembles rendered slots into a variant's structural
// archetype.
//
// Each archetype in the closed set owns a fixed internal placement
// template consuming the variant's ordered slot list. Composition is a
// pure function of (descriptor, resolved creative): no I/O, no shared
// state, and identical inputs always produce structurally identical
// trees.
package compose

import (
	"strings"

	"github.com/adproof/adproof/pkg/creative"
	"github.com/adproof/adproof/pkg/preview/node"
	"github.com/adproof/adproof/pkg/preview/slot"
	"github.com/adproof/adproof/pkg/preview/variant"
)

// Options carries caller flags that shape composition.
type Options struct {
	// ViewOnly replaces embedded players with static covers.
	ViewOnly bool
	// Locked wraps the composed creative in the gating overlay when
	// the descriptor carries lock hints.
	Locked bool
}

// Archetype composes one structural family. Implementations are
// stateless; the registry below holds one instance per tag.
type Archetype interface {
	Tag() variant.Archetype
	Compose(d *variant.Descriptor, rc *creative.Resolved, p slot.Params) *node.Node
}

// archetypes is the closed archetype set, populated once at init.
var archetypes = map[variant.Archetype]Archetype{}

func register(a Archetype) {
	archetypes[a.Tag()] = a
}

func init() {
	register(gridBody{})
	register(whiteCard{})
	register(darkOverlay{})
	register(lightSheet{})
	register(darkSheet{})
	register(inlineBox{})
	register(darkCard{})
	register(promoListRow{})
	register(videoFeedCard{})
	register(videoHomeCard{})
	register(searchSnippet{})
}

// Compose assembles the full render tree for a descriptor: header
// first when present, then the archetype's body or panel, then the
// lock overlay when requested.
func Compose(d *variant.Descriptor, rc *creative.Resolved, opts Options) *node.Node {
	p := slot.Params{Descriptor: d, ViewOnly: opts.ViewOnly}

	root := node.Box("variant:"+d.Key, node.Style{Direction: node.DirColumn})

	if d.Header != nil {
		root.Append(composeHeader(d, rc, p))
	}

	a, ok := archetypes[d.Archetype()]
	if !ok {
		// Registry validation keeps this unreachable; degrade visibly
		// rather than panic if a descriptor slips through.
		root.Append(node.Placeholder("archetype", string(d.Archetype()), node.Style{}))
		return root
	}
	root.Append(a.Compose(d, rc, p))

	if opts.Locked && len(d.LockHints) > 0 {
		return Gate(root, d.LockHints)
	}
	return root
}

func composeHeader(d *variant.Descriptor, rc *creative.Resolved, p slot.Params) *node.Node {
	header := node.Box("header", node.Style{Direction: node.DirRow, GapPx: 8, PaddingPx: 8})
	for _, s := range d.Header.Slots {
		if n, ok := slot.Render(s, rc, p); ok {
			header.Append(n)
		}
	}
	return header
}

// renderSlots renders an ordered slot list, dropping omissions.
func renderSlots(slots []variant.Slot, rc *creative.Resolved, p slot.Params) []*node.Node {
	out := make([]*node.Node, 0, len(slots))
	for _, s := range slots {
		if n, ok := slot.Render(s, rc, p); ok {
			out = append(out, n)
		}
	}
	return out
}

// columnStyle translates a column template entry ("48px", "1fr") into
// a cell style.
func columnStyle(col string) node.Style {
	if col == "" || col == "1fr" {
		return node.Style{Grow: true}
	}
	if px, ok := strings.CutSuffix(col, "px"); ok {
		var w float64
		for _, r := range px {
			if r < '0' || r > '9' {
				return node.Style{Grow: true}
			}
			w = w*10 + float64(r-'0')
		}
		return node.Style{WidthPx: w}
	}
	return node.Style{Grow: true}
}
