package compose

import (
	"github.com/adproof/adproof/pkg/creative"
	"github.com/adproof/adproof/pkg/preview/node"
	"github.com/adproof/adproof/pkg/preview/slot"
	"github.com/adproof/adproof/pkg/preview/variant"
)

// promoSkeletonRows is the fixed number of placeholder rows rendered
// around the promotional row to mimic the surrounding inbox.
const promoSkeletonRows = 3

// promoListRow renders a two-line inbox summary plus skeleton rows.
type promoListRow struct{}

func (promoListRow) Tag() variant.Archetype { return variant.ArchetypePromoListRow }

func (promoListRow) Compose(d *variant.Descriptor, rc *creative.Resolved, p slot.Params) *node.Node {
	list := node.Box("promo-list", node.Style{Direction: node.DirColumn, Background: "#ffffff"})

	row := node.Box("promo-row", node.Style{Direction: node.DirColumn, PaddingPx: 12, GapPx: 2})

	top := node.Box("promo-top", node.Style{Direction: node.DirRow, GapPx: 6})
	if n, ok := slot.Render(variant.SlotPromoTag, rc, p); ok && hasSlot(d, variant.SlotPromoTag) {
		top.Append(n)
	}
	if n, ok := slot.Render(variant.SlotPromoSender, rc, p); ok && hasSlot(d, variant.SlotPromoSender) {
		top.Append(n)
	}
	row.Append(top)

	bottom := node.Box("promo-bottom", node.Style{Direction: node.DirRow, GapPx: 4})
	if n, ok := slot.Render(variant.SlotPromoSubject, rc, p); ok && hasSlot(d, variant.SlotPromoSubject) {
		bottom.Append(n)
	}
	if n, ok := slot.Render(variant.SlotPromoSnippet, rc, p); ok && hasSlot(d, variant.SlotPromoSnippet) {
		n.Style.Color = "#5f6368"
		bottom.Append(n)
	}
	row.Append(bottom)

	// Expanded rows also show the creative media and action inline.
	if hasSlot(d, variant.SlotInnerImage) {
		if media := mediaContainer(d, rc, p); media != nil {
			row.Append(media)
		}
		if cta, ok := slot.Render(variant.SlotCTAText, rc, p); ok && hasSlot(d, variant.SlotCTAText) {
			row.Append(cta)
		}
	}

	list.Append(row)

	for range promoSkeletonRows {
		list.Append(skeletonRow())
	}
	return list
}

func skeletonRow() *node.Node {
	return node.Box("skeleton-row", node.Style{Direction: node.DirColumn, PaddingPx: 12, GapPx: 6},
		node.Box("skeleton-line", node.Style{WidthPx: 120, HeightPx: 10, RadiusPx: 5, Background: "#e8eaed"}),
		node.Box("skeleton-line", node.Style{WidthPx: 220, HeightPx: 10, RadiusPx: 5, Background: "#f1f3f4"}),
	)
}

func hasSlot(d *variant.Descriptor, s variant.Slot) bool {
	if d.Panel == nil {
		return false
	}
	for _, have := range d.Panel.Slots {
		if have == s {
			return true
		}
	}
	return false
}

// videoFeedCard stacks the playable thumb above the title and meta.
type videoFeedCard struct{}

func (videoFeedCard) Tag() variant.Archetype { return variant.ArchetypeVideoFeedCard }

func (videoFeedCard) Compose(d *variant.Descriptor, rc *creative.Resolved, p slot.Params) *node.Node {
	card := node.Box("video-feed-card", node.Style{Direction: node.DirColumn, Background: "#ffffff", GapPx: 8})

	if media := mediaContainer(d, rc, p); media != nil {
		card.Append(media)
	}

	text := node.Box("feed-text", node.Style{Direction: node.DirColumn, PaddingPx: 12, GapPx: 4})
	for _, s := range d.Panel.Slots {
		if s == variant.SlotFeedThumb || s == variant.SlotInnerVideo {
			continue // media container already rendered it
		}
		if n, ok := slot.Render(s, rc, p); ok {
			text.Append(n)
		}
	}
	card.Append(text)
	return card
}

// videoHomeCard renders the hero, then an avatar row with title and
// meta, matching the home-surface card shape.
type videoHomeCard struct{}

func (videoHomeCard) Tag() variant.Archetype { return variant.ArchetypeVideoHomeCard }

func (videoHomeCard) Compose(d *variant.Descriptor, rc *creative.Resolved, p slot.Params) *node.Node {
	card := node.Box("video-home-card", node.Style{Direction: node.DirColumn, Background: "#ffffff", GapPx: 8})

	if media := mediaContainer(d, rc, p); media != nil {
		card.Append(media)
	}

	row := node.Box("home-row", node.Style{Direction: node.DirRow, PaddingPx: 12, GapPx: 10})
	if hasSlot(d, variant.SlotHomeAvatar) {
		if n, ok := slot.Render(variant.SlotHomeAvatar, rc, p); ok {
			row.Append(n)
		}
	}

	text := node.Box("home-text", node.Style{Direction: node.DirColumn, GapPx: 2, Grow: true})
	for _, s := range d.Panel.Slots {
		if s == variant.SlotHomeHero || s == variant.SlotHomeAvatar {
			continue
		}
		if n, ok := slot.Render(s, rc, p); ok {
			text.Append(n)
		}
	}
	row.Append(text)
	card.Append(row)
	return card
}

// searchSnippet renders the text-only search result shape.
type searchSnippet struct{}

func (searchSnippet) Tag() variant.Archetype { return variant.ArchetypeSearchSnippet }

func (searchSnippet) Compose(d *variant.Descriptor, rc *creative.Resolved, p slot.Params) *node.Node {
	snip := node.Box("search-snippet", node.Style{Direction: node.DirColumn, Background: "#ffffff", PaddingPx: 12, GapPx: 4})

	attribution := node.Box("snippet-attribution", node.Style{Direction: node.DirRow, GapPx: 6})
	for _, s := range d.Panel.Slots {
		if s != variant.SlotAdBiz && s != variant.SlotDisplayURL {
			continue
		}
		if n, ok := slot.Render(s, rc, p); ok {
			attribution.Append(n)
		}
	}
	if len(attribution.Children) > 0 {
		snip.Append(attribution)
	}

	for _, s := range d.Panel.Slots {
		if s == variant.SlotAdBiz || s == variant.SlotDisplayURL {
			continue
		}
		if n, ok := slot.Render(s, rc, p); ok {
			snip.Append(n)
		}
	}
	return snip
}
