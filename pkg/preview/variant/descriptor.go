// Package variant catalogs the named layout configurations the preview
// engine can render.
//
// Each variant describes one ad-surface mock-up format: which slots it
// shows, how they are arranged (a grid body or a panel archetype), what
// aspect class its media container uses, and which per-slot style
// patches apply. The registry is populated once at init and never
// mutated afterward, so lookups need no synchronization.
package variant

import "github.com/adproof/adproof/pkg/preview/node"

// Slot names the logical content placeholders a variant can arrange.
type Slot string

// The fixed slot catalog.
const (
	SlotLogo         Slot = "logo"
	SlotTitle        Slot = "title"
	SlotLongHeadline Slot = "long-headline"
	SlotTitleXL      Slot = "title-xl"
	SlotDesc         Slot = "desc"
	SlotBiz          Slot = "biz"
	SlotAdBiz        Slot = "ad-biz" // "Ad · business" attribution row
	SlotDisplayURL   Slot = "display-url"
	SlotThumb        Slot = "thumb"
	SlotThumbGrid    Slot = "thumb-grid"
	SlotCTAArrow     Slot = "cta-arrow"
	SlotCTAText      Slot = "cta-text"
	SlotCTAFab       Slot = "cta-fab"
	SlotCTABar       Slot = "cta-bar"
	SlotButtonRow    Slot = "button-row"
	SlotInnerImage   Slot = "inner-image"
	SlotInnerVideo   Slot = "inner-video"
	SlotLogoTitle    Slot = "logo-title"
	SlotLogoFloat    Slot = "logo-float"
	SlotDivider      Slot = "divider"
	SlotInfoBadge    Slot = "info-badge"
	SlotCloseBadge   Slot = "close-badge"

	// Promotional-inbox row family.
	SlotPromoSender  Slot = "promo-sender"
	SlotPromoSubject Slot = "promo-subject"
	SlotPromoSnippet Slot = "promo-snippet"
	SlotPromoTag     Slot = "promo-tag"

	// Video feed family.
	SlotFeedThumb Slot = "feed-thumb"
	SlotFeedTitle Slot = "feed-title"
	SlotFeedMeta  Slot = "feed-meta"

	// Video home family.
	SlotHomeHero   Slot = "home-hero"
	SlotHomeAvatar Slot = "home-avatar"
	SlotHomeTitle  Slot = "home-title"
	SlotHomeMeta   Slot = "home-meta"
)

// Archetype tags the structural family governing a variant's panel
// composition. Body-driven variants use ArchetypeGridBody; the rest are
// panel-driven.
type Archetype string

// The closed archetype set.
const (
	ArchetypeGridBody      Archetype = "grid-body"
	ArchetypeWhiteCard     Archetype = "white-card"
	ArchetypeDarkOverlay   Archetype = "dark-overlay"
	ArchetypeLightSheet    Archetype = "light-sheet"
	ArchetypeDarkSheet     Archetype = "dark-sheet"
	ArchetypeInlineBox     Archetype = "inline-box"
	ArchetypeDarkCard      Archetype = "dark-card"
	ArchetypePromoListRow  Archetype = "promotional-list-row"
	ArchetypeVideoFeedCard Archetype = "video-feed-card"
	ArchetypeVideoHomeCard Archetype = "video-home-card"
	ArchetypeSearchSnippet Archetype = "search-snippet"
)

// Aspect classifies the media container's aspect ratio.
type Aspect string

// Aspect-ratio classes.
const (
	AspectLandscape Aspect = "1.91:1"
	AspectPortrait  Aspect = "9:16"
	AspectSquare    Aspect = "1:1"
	AspectNone      Aspect = ""
)

// Format names a creative format payload a variant may require.
type Format string

// Creative formats.
const (
	FormatDisplay Format = "display"
	FormatSearch  Format = "search"
	FormatVideo   Format = "video"
)

// MediaSpec configures a variant's media container.
type MediaSpec struct {
	Aspect           Aspect
	InfoBadge        bool
	CloseBadge       bool
	MuteBadge        bool
	OverlayTitle     bool // bottom bar carrying the title over the media
	PreferVideoCover bool
}

// BodySchema arranges slots on a column template. Rows are row-major;
// an empty slot name leaves the cell blank.
type BodySchema struct {
	Columns []string // column widths, e.g. "48px", "1fr"
	Rows    [][]Slot
}

// Position hints where a panel archetype places a slot.
type Position string

// Position hints.
const (
	PosTop      Position = "top"
	PosBottom   Position = "bottom"
	PosCenter   Position = "center"
	PosLeading  Position = "leading"
	PosTrailing Position = "trailing"
	PosFloat    Position = "float"
)

// PanelSchema arranges slots inside a panel archetype.
type PanelSchema struct {
	Archetype Archetype
	Slots     []Slot
	Positions map[Slot]Position
}

// HeaderSchema lists slots rendered before the body or panel.
type HeaderSchema struct {
	Slots []Slot
}

// Descriptor is one registry entry. Body and Panel are mutually
// exclusive primary-layout drivers; Header is orthogonal to both.
type Descriptor struct {
	Key    string
	Family string
	Media  MediaSpec
	Body   *BodySchema
	Panel  *PanelSchema
	Header *HeaderSchema

	// LockHints are the human-readable requirements listed by the
	// gating overlay, in display order.
	LockHints []string

	// Styles is the declarative per-slot style-patch side-table. Each
	// patch is keyed by exact slot, independent of every other patch.
	Styles map[Slot]*node.Patch

	// RequiredFormats lists the payloads this variant needs; empty
	// means format-agnostic (placeholder skeletons tolerate absence).
	RequiredFormats []Format
}

// Archetype returns the structural archetype driving composition.
func (d *Descriptor) Archetype() Archetype {
	if d.Panel != nil {
		return d.Panel.Archetype
	}
	return ArchetypeGridBody
}

// StylePatch returns the style patch for a slot, if any.
func (d *Descriptor) StylePatch(s Slot) *node.Patch {
	if d.Styles == nil {
		return nil
	}
	return d.Styles[s]
}

// Accepts reports whether the record formats present satisfy the
// variant's requirements. Format-agnostic variants accept anything.
func (d *Descriptor) Accepts(present map[Format]bool) bool {
	if len(d.RequiredFormats) == 0 {
		return true
	}
	for _, f := range d.RequiredFormats {
		if present[f] {
			return true
		}
	}
	return false
}
