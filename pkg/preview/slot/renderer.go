// Package slot maps abstract content slots to rendered elements.
//
// Every slot kind carries a default style and a content source drawn
// from the resolved creative. Variant-specific deviations come from the
// descriptor's style-patch side-table, keyed by exact slot, so no slot
// logic ever branches on variant identity.
//
// Empty text content yields an omitted slot with no reserved space.
// Logo and media slots are the exception: they render a labelled
// placeholder so the mock-up still shows where the asset would sit.
package slot

import (
	"github.com/adproof/adproof/pkg/creative"
	"github.com/adproof/adproof/pkg/preview/node"
	"github.com/adproof/adproof/pkg/preview/typography"
	"github.com/adproof/adproof/pkg/preview/variant"
)

// Params carries per-render context into slot rendering.
type Params struct {
	// Descriptor supplies the style-patch side-table.
	Descriptor *variant.Descriptor
	// ViewOnly replaces embedded players with static covers.
	ViewOnly bool
}

// renderFunc produces one slot's element, or reports it omitted.
type renderFunc func(rc *creative.Resolved, p Params) (*node.Node, bool)

// catalog is the fixed slot table. Populated once in init because
// renderLogoTitle re-enters Render; read-only after.
var catalog map[variant.Slot]renderFunc

func init() {
	catalog = map[variant.Slot]renderFunc{
		variant.SlotTitle:        textSlot(variant.SlotTitle, 16, 2, func(rc *creative.Resolved) string { return rc.Title }),
		variant.SlotTitleXL:      textSlot(variant.SlotTitleXL, 24, 2, func(rc *creative.Resolved) string { return rc.Title }),
		variant.SlotLongHeadline: textSlot(variant.SlotLongHeadline, 18, 3, func(rc *creative.Resolved) string { return rc.LongHeadline }),
		variant.SlotDesc:         textSlot(variant.SlotDesc, 13, 3, func(rc *creative.Resolved) string { return rc.Description }),
		variant.SlotBiz:          textSlot(variant.SlotBiz, 12, 1, func(rc *creative.Resolved) string { return rc.BusinessName }),

		variant.SlotAdBiz:      renderAdBiz,
		variant.SlotDisplayURL: renderDisplayURL,

		variant.SlotLogo:      renderLogo,
		variant.SlotLogoFloat: renderLogoFloat,
		variant.SlotLogoTitle: renderLogoTitle,

		variant.SlotThumb:      renderThumb,
		variant.SlotThumbGrid:  renderThumbGrid,
		variant.SlotInnerImage: renderInnerImage,
		variant.SlotInnerVideo: renderPlayable(variant.SlotInnerVideo),

		variant.SlotCTAArrow:  renderCTAArrow,
		variant.SlotCTAText:   renderCTAText,
		variant.SlotCTAFab:    renderCTAFab,
		variant.SlotCTABar:    renderCTABar,
		variant.SlotButtonRow: renderButtonRow,

		variant.SlotDivider:    renderDivider,
		variant.SlotInfoBadge:  badgeSlot(variant.SlotInfoBadge, "i"),
		variant.SlotCloseBadge: badgeSlot(variant.SlotCloseBadge, "×"),

		variant.SlotPromoSender:  textSlot(variant.SlotPromoSender, 14, 1, func(rc *creative.Resolved) string { return rc.BusinessName }),
		variant.SlotPromoSubject: textSlot(variant.SlotPromoSubject, 14, 1, func(rc *creative.Resolved) string { return rc.Title }),
		variant.SlotPromoSnippet: textSlot(variant.SlotPromoSnippet, 13, 1, func(rc *creative.Resolved) string { return rc.Description }),
		variant.SlotPromoTag:     renderPromoTag,

		variant.SlotFeedThumb: renderPlayable(variant.SlotFeedThumb),
		variant.SlotFeedTitle: textSlot(variant.SlotFeedTitle, 14, 2, func(rc *creative.Resolved) string { return rc.Title }),
		variant.SlotFeedMeta:  textSlot(variant.SlotFeedMeta, 12, 1, func(rc *creative.Resolved) string { return rc.BusinessName }),

		variant.SlotHomeHero:   renderPlayable(variant.SlotHomeHero),
		variant.SlotHomeAvatar: renderHomeAvatar,
		variant.SlotHomeTitle:  textSlot(variant.SlotHomeTitle, 14, 2, func(rc *creative.Resolved) string { return rc.Title }),
		variant.SlotHomeMeta:   textSlot(variant.SlotHomeMeta, 12, 1, func(rc *creative.Resolved) string { return rc.BusinessName }),
	}
}

// Render maps a slot plus the resolved creative into a rendered
// element. The second return value is false when the slot is omitted.
func Render(name variant.Slot, rc *creative.Resolved, p Params) (*node.Node, bool) {
	fn, ok := catalog[name]
	if !ok || rc == nil {
		return nil, false
	}
	return fn(rc, p)
}

// Known reports whether name is part of the slot catalog.
func Known(name variant.Slot) bool {
	_, ok := catalog[name]
	return ok
}

// patch applies the descriptor's style-patch for the slot, if any.
func patch(p Params, s variant.Slot, style node.Style) node.Style {
	if p.Descriptor == nil {
		return style
	}
	return p.Descriptor.StylePatch(s).Apply(style)
}

// textSlot builds a renderFunc for a plain text slot. The base size is
// passed through the typography fitter so long content degrades
// predictably; maxLines relies on host text-overflow to clamp.
func textSlot(name variant.Slot, basePx, maxLines int, content func(*creative.Resolved) string) renderFunc {
	return func(rc *creative.Resolved, p Params) (*node.Node, bool) {
		text := content(rc)
		if text == "" {
			return nil, false
		}
		style := node.Style{MaxLines: maxLines}
		style = patch(p, name, style)

		// The patch may change the base size; fit against the patched
		// base so overrides and scaling compose.
		base := basePx
		if style.FontSizePx != 0 {
			base = style.FontSizePx
		}
		style.FontSizePx = typography.Fit(base, text, typography.DefaultBand)
		return node.Text(string(name), text, style), true
	}
}

func badgeSlot(name variant.Slot, glyph string) renderFunc {
	return func(rc *creative.Resolved, p Params) (*node.Node, bool) {
		return &node.Node{
			Kind:  node.KindBadge,
			Slot:  string(name),
			Label: glyph,
			Style: patch(p, name, node.Style{WidthPx: 16, HeightPx: 16}),
		}, true
	}
}

// renderAdBiz renders the "Ad · business" attribution row.
func renderAdBiz(rc *creative.Resolved, p Params) (*node.Node, bool) {
	style := patch(p, variant.SlotAdBiz, node.Style{FontSizePx: 11, MaxLines: 1})
	return node.Text(string(variant.SlotAdBiz), "Ad · "+rc.BusinessName, style), true
}

func renderDisplayURL(rc *creative.Resolved, p Params) (*node.Node, bool) {
	if rc.BusinessName == "" {
		return nil, false
	}
	style := patch(p, variant.SlotDisplayURL, node.Style{FontSizePx: 12, MaxLines: 1, Color: "#0b6e4f"})
	return node.Text(string(variant.SlotDisplayURL), rc.BusinessName, style), true
}

// renderLogo renders the logo image, or a labelled placeholder when
// the creative has none.
func renderLogo(rc *creative.Resolved, p Params) (*node.Node, bool) {
	style := patch(p, variant.SlotLogo, node.Style{WidthPx: 40, HeightPx: 40, RadiusPx: 20})
	if rc.LogoURL == "" {
		return node.Placeholder(string(variant.SlotLogo), "Logo", style), true
	}
	return node.Image(string(variant.SlotLogo), rc.LogoURL, style), true
}

func renderLogoFloat(rc *creative.Resolved, p Params) (*node.Node, bool) {
	style := patch(p, variant.SlotLogoFloat, node.Style{WidthPx: 48, HeightPx: 48, RadiusPx: 24})
	if rc.LogoURL == "" {
		return node.Placeholder(string(variant.SlotLogoFloat), "Logo", style), true
	}
	return node.Image(string(variant.SlotLogoFloat), rc.LogoURL, style), true
}

// renderLogoTitle pairs the logo with the title in one row.
func renderLogoTitle(rc *creative.Resolved, p Params) (*node.Node, bool) {
	logo, _ := renderLogo(rc, p)
	title, hasTitle := Render(variant.SlotTitle, rc, p)

	row := node.Box(string(variant.SlotLogoTitle), patch(p, variant.SlotLogoTitle, node.Style{Direction: node.DirRow, GapPx: 8}))
	row.Append(logo)
	if hasTitle {
		row.Append(title)
	}
	return row, true
}

func renderThumb(rc *creative.Resolved, p Params) (*node.Node, bool) {
	style := patch(p, variant.SlotThumb, node.Style{WidthPx: 64, HeightPx: 64, RadiusPx: 4})
	src := rc.SquareMediaURL
	if src == "" {
		src = rc.MediaURL
	}
	if src == "" {
		return node.Placeholder(string(variant.SlotThumb), "Image", style), true
	}
	return node.Image(string(variant.SlotThumb), src, style), true
}

// renderThumbGrid renders up to three square thumbnails; missing
// sources become placeholders so the grid shape is preserved.
func renderThumbGrid(rc *creative.Resolved, p Params) (*node.Node, bool) {
	cell := node.Style{WidthPx: 56, HeightPx: 56, RadiusPx: 4}
	grid := node.Box(string(variant.SlotThumbGrid), patch(p, variant.SlotThumbGrid, node.Style{Direction: node.DirRow, GapPx: 4}))

	srcs := []string{rc.SquareMediaURL, rc.MediaURL, rc.LogoURL}
	for _, src := range srcs {
		slotName := string(variant.SlotThumbGrid)
		if src == "" {
			grid.Append(node.Placeholder(slotName, "Image", cell))
			continue
		}
		grid.Append(node.Image(slotName, src, cell))
	}
	return grid, true
}

func renderInnerImage(rc *creative.Resolved, p Params) (*node.Node, bool) {
	style := patch(p, variant.SlotInnerImage, node.Style{RadiusPx: 8, Grow: true})
	if rc.MediaURL == "" {
		return node.Placeholder(string(variant.SlotInnerImage), "Image", style), true
	}
	return node.Image(string(variant.SlotInnerImage), rc.MediaURL, style), true
}

// renderPlayable builds a renderFunc for playable-media slots: an
// embedded player when a playback URL exists, else a static cover with
// a play badge, else nothing.
func renderPlayable(name variant.Slot) renderFunc {
	return func(rc *creative.Resolved, p Params) (*node.Node, bool) {
		style := patch(p, name, node.Style{Grow: true})

		if rc.VideoPlaybackURL != "" && !p.ViewOnly {
			return &node.Node{Kind: node.KindPlayer, Slot: string(name), Src: rc.VideoPlaybackURL, Style: style}, true
		}

		cover := rc.MediaURL
		if cover == "" {
			cover = rc.SquareMediaURL
		}
		if cover == "" && rc.VideoPlaybackURL == "" {
			return nil, false
		}

		box := node.Box(string(name), style)
		if cover != "" {
			box.Append(node.Image(string(name), cover, node.Style{Grow: true}))
		} else {
			box.Append(node.Placeholder(string(name), "Video", node.Style{Grow: true}))
		}
		box.Append(&node.Node{
			Kind:  node.KindBadge,
			Slot:  string(name),
			Label: "▶",
			Style: node.Style{WidthPx: 32, HeightPx: 32, Align: node.AlignCenter},
		})
		return box, true
	}
}

func renderCTAArrow(rc *creative.Resolved, p Params) (*node.Node, bool) {
	return &node.Node{
		Kind:  node.KindBadge,
		Slot:  string(variant.SlotCTAArrow),
		Label: "›",
		Style: patch(p, variant.SlotCTAArrow, node.Style{WidthPx: 20, HeightPx: 20, Color: "#1a73e8"}),
	}, true
}

func renderCTAText(rc *creative.Resolved, p Params) (*node.Node, bool) {
	if rc.CTAText == "" {
		return nil, false
	}
	style := patch(p, variant.SlotCTAText, node.Style{FontSizePx: 14, Bold: true, Color: "#1a73e8", MaxLines: 1})
	return &node.Node{Kind: node.KindButton, Slot: string(variant.SlotCTAText), Text: rc.CTAText, Style: style}, true
}

func renderCTAFab(rc *creative.Resolved, p Params) (*node.Node, bool) {
	if rc.CTAText == "" {
		return nil, false
	}
	style := patch(p, variant.SlotCTAFab, node.Style{
		FontSizePx: 13, Bold: true, Color: "#ffffff", Background: "#1a73e8",
		PaddingPx: 10, RadiusPx: 20, MaxLines: 1,
	})
	return &node.Node{Kind: node.KindButton, Slot: string(variant.SlotCTAFab), Text: rc.CTAText, Style: style}, true
}

// renderCTABar renders a full-width action bar; without CTA text it
// falls back to the business name so the bar never renders empty.
func renderCTABar(rc *creative.Resolved, p Params) (*node.Node, bool) {
	label := rc.CTAText
	if label == "" {
		label = rc.BusinessName
	}
	if label == "" {
		return nil, false
	}
	style := patch(p, variant.SlotCTABar, node.Style{
		FontSizePx: 14, Bold: true, Color: "#ffffff", Background: "#1a73e8",
		PaddingPx: 12, Align: node.AlignCenter, MaxLines: 1,
	})
	return &node.Node{Kind: node.KindButton, Slot: string(variant.SlotCTABar), Text: label, Style: style}, true
}

// renderButtonRow renders the CTA next to a dismiss action.
func renderButtonRow(rc *creative.Resolved, p Params) (*node.Node, bool) {
	row := node.Box(string(variant.SlotButtonRow), patch(p, variant.SlotButtonRow, node.Style{Direction: node.DirRow, GapPx: 8}))
	row.Append(&node.Node{
		Kind: node.KindButton,
		Slot: string(variant.SlotButtonRow),
		Text: "No thanks",
		Style: node.Style{
			FontSizePx: 13, Color: "#5f6368", PaddingPx: 8, RadiusPx: 4, MaxLines: 1,
		},
	})
	if cta, ok := renderCTAFab(rc, p); ok {
		row.Append(cta)
	}
	return row, true
}

func renderDivider(rc *creative.Resolved, p Params) (*node.Node, bool) {
	return &node.Node{
		Kind:  node.KindDivider,
		Slot:  string(variant.SlotDivider),
		Style: patch(p, variant.SlotDivider, node.Style{HeightPx: 1, Background: "#dadce0"}),
	}, true
}

func renderPromoTag(rc *creative.Resolved, p Params) (*node.Node, bool) {
	style := patch(p, variant.SlotPromoTag, node.Style{
		FontSizePx: 10, Color: "#188038", Border: "#188038", PaddingPx: 2, RadiusPx: 2, MaxLines: 1,
	})
	return node.Text(string(variant.SlotPromoTag), "Ad", style), true
}

func renderHomeAvatar(rc *creative.Resolved, p Params) (*node.Node, bool) {
	style := patch(p, variant.SlotHomeAvatar, node.Style{WidthPx: 36, HeightPx: 36, RadiusPx: 18})
	if rc.LogoURL == "" {
		return node.Placeholder(string(variant.SlotHomeAvatar), "Logo", style), true
	}
	return node.Image(string(variant.SlotHomeAvatar), rc.LogoURL, style), true
}
