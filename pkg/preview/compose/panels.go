package compose

import (
	"github.com/adproof/adproof/pkg/creative"
	"github.com/adproof/adproof/pkg/preview/node"
	"github.com/adproof/adproof/pkg/preview/slot"
	"github.com/adproof/adproof/pkg/preview/variant"
)

// whiteCard centers its panel slots within a constrained aspect
// region below the media.
type whiteCard struct{}

func (whiteCard) Tag() variant.Archetype { return variant.ArchetypeWhiteCard }

func (whiteCard) Compose(d *variant.Descriptor, rc *creative.Resolved, p slot.Params) *node.Node {
	card := node.Box("white-card", node.Style{
		Direction:  node.DirColumn,
		Background: "#ffffff",
		RadiusPx:   8,
		PaddingPx:  16,
		GapPx:      8,
		Align:      node.AlignCenter,
	})
	if media := mediaContainer(d, rc, p); media != nil {
		card.Append(media)
	}
	card.Append(renderSlots(d.Panel.Slots, rc, p)...)
	return card
}

// darkCard is the dark-background sibling of whiteCard.
type darkCard struct{}

func (darkCard) Tag() variant.Archetype { return variant.ArchetypeDarkCard }

func (darkCard) Compose(d *variant.Descriptor, rc *creative.Resolved, p slot.Params) *node.Node {
	card := node.Box("dark-card", node.Style{
		Direction:  node.DirColumn,
		Background: "#202124",
		Color:      "#e8eaed",
		RadiusPx:   8,
		PaddingPx:  16,
		GapPx:      8,
	})
	if media := mediaContainer(d, rc, p); media != nil {
		card.Append(media)
	}
	card.Append(renderSlots(d.Panel.Slots, rc, p)...)
	return card
}

// darkOverlay bottom-aligns its panel over the media backdrop.
// Slots hinted with PosFloat render above the bottom block.
type darkOverlay struct{}

func (darkOverlay) Tag() variant.Archetype { return variant.ArchetypeDarkOverlay }

func (darkOverlay) Compose(d *variant.Descriptor, rc *creative.Resolved, p slot.Params) *node.Node {
	root := node.Box("dark-overlay", node.Style{Background: "#000000"})
	if media := mediaContainer(d, rc, p); media != nil {
		root.Append(media)
	}

	var floated, anchored []*node.Node
	for _, s := range d.Panel.Slots {
		n, ok := slot.Render(s, rc, p)
		if !ok {
			continue
		}
		if d.Panel.Positions[s] == variant.PosFloat {
			floated = append(floated, n)
			continue
		}
		anchored = append(anchored, n)
	}

	panel := node.Box("overlay-panel", node.Style{
		Direction:  node.DirColumn,
		Background: "#000000a0",
		Color:      "#ffffff",
		PaddingPx:  16,
		GapPx:      8,
		Align:      node.AlignStart,
	})
	panel.Append(floated...)
	panel.Append(anchored...)
	root.Append(panel)
	return root
}

// sheet is the shared composition for the light and dark sheets: a
// grab handle, the media, then the bottom-anchored slot column.
func sheet(slotName, bg, fg string, d *variant.Descriptor, rc *creative.Resolved, p slot.Params) *node.Node {
	s := node.Box(slotName, node.Style{
		Direction:  node.DirColumn,
		Background: bg,
		Color:      fg,
		RadiusPx:   16,
		PaddingPx:  16,
		GapPx:      8,
	})
	s.Append(node.Box("sheet-handle", node.Style{
		WidthPx: 32, HeightPx: 4, RadiusPx: 2, Background: "#9aa0a6", Align: node.AlignCenter,
	}))
	if media := mediaContainer(d, rc, p); media != nil {
		s.Append(media)
	}
	s.Append(renderSlots(d.Panel.Slots, rc, p)...)
	return s
}

type lightSheet struct{}

func (lightSheet) Tag() variant.Archetype { return variant.ArchetypeLightSheet }

func (lightSheet) Compose(d *variant.Descriptor, rc *creative.Resolved, p slot.Params) *node.Node {
	return sheet("light-sheet", "#ffffff", "#202124", d, rc, p)
}

type darkSheet struct{}

func (darkSheet) Tag() variant.Archetype { return variant.ArchetypeDarkSheet }

func (darkSheet) Compose(d *variant.Descriptor, rc *creative.Resolved, p slot.Params) *node.Node {
	return sheet("dark-sheet", "#202124", "#e8eaed", d, rc, p)
}

// inlineBox renders a compact horizontal row: leading visual, middle
// text column, trailing action.
type inlineBox struct{}

func (inlineBox) Tag() variant.Archetype { return variant.ArchetypeInlineBox }

// Leading and trailing slot classification for the inline row.
var (
	inlineLeading = map[variant.Slot]bool{
		variant.SlotThumb:      true,
		variant.SlotLogo:       true,
		variant.SlotInnerImage: true,
	}
	inlineTrailing = map[variant.Slot]bool{
		variant.SlotCTAArrow: true,
		variant.SlotCTAText:  true,
		variant.SlotCTAFab:   true,
	}
)

func (inlineBox) Compose(d *variant.Descriptor, rc *creative.Resolved, p slot.Params) *node.Node {
	row := node.Box("inline-box", node.Style{
		Direction:  node.DirRow,
		Background: "#ffffff",
		PaddingPx:  12,
		GapPx:      12,
	})
	middle := node.Box("inline-text", node.Style{Direction: node.DirColumn, GapPx: 4, Grow: true})

	var trailing, bars []*node.Node
	for _, s := range d.Panel.Slots {
		n, ok := slot.Render(s, rc, p)
		if !ok {
			continue
		}
		switch {
		case inlineLeading[s]:
			row.Append(n)
		case inlineTrailing[s]:
			trailing = append(trailing, n)
		case s == variant.SlotCTABar:
			// Bars span the full width below the row.
			bars = append(bars, n)
		default:
			middle.Append(n)
		}
	}

	row.Append(middle)
	row.Append(trailing...)

	if len(bars) == 0 {
		return row
	}
	return node.Box("inline-stack", node.Style{Direction: node.DirColumn}).
		Append(row).Append(bars...)
}
