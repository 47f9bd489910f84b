package variant

import (
	"sort"

	"github.com/adproof/adproof/pkg/preview/node"
)

// Family names group related variants in listings.
const (
	FamilyMobileLandscape = "mobile-landscape"
	FamilyMobilePortrait  = "mobile-portrait"
	FamilySheet           = "sheet"
	FamilyCard            = "card"
	FamilyInline          = "inline"
	FamilyPromoInbox      = "promo-inbox"
	FamilyVideoFeed       = "video-feed"
	FamilyVideoHome       = "video-home"
	FamilySearch          = "search"
	FamilyVideoInStream   = "video-instream"
	FamilyVideoInFeed     = "video-infeed"
)

// registry is the process-wide variant table, populated once at init
// and read-only afterward.
var registry = map[string]*Descriptor{}

func init() {
	for _, group := range [][]*Descriptor{
		mobileLandscapeVariants(),
		mobilePortraitVariants(),
		sheetVariants(),
		cardVariants(),
		inlineVariants(),
		promoInboxVariants(),
		videoFeedVariants(),
		videoHomeVariants(),
		searchVariants(),
		inStreamVariants(),
		inFeedVariants(),
	} {
		for _, d := range group {
			registry[d.Key] = d
		}
	}
}

// Lookup resolves a variant key to its descriptor. A miss is not an
// error; callers render a diagnostic placeholder instead.
func Lookup(key string) (*Descriptor, bool) {
	d, ok := registry[key]
	return d, ok
}

// Keys returns all registered variant keys in sorted order.
func Keys() []string {
	keys := make([]string, 0, len(registry))
	for k := range registry {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// ByFamily returns the descriptors of one family, sorted by key.
func ByFamily(family string) []*Descriptor {
	var out []*Descriptor
	for _, k := range Keys() {
		if d := registry[k]; d.Family == family {
			out = append(out, d)
		}
	}
	return out
}

// Families returns the distinct family names in sorted order.
func Families() []string {
	seen := map[string]bool{}
	var out []string
	for _, d := range registry {
		if !seen[d.Family] {
			seen[d.Family] = true
			out = append(out, d.Family)
		}
	}
	sort.Strings(out)
	return out
}

// Count returns the number of registered variants.
func Count() int { return len(registry) }

// body is shorthand for a grid-body descriptor.
func body(cols []string, rows ...[]Slot) *BodySchema {
	return &BodySchema{Columns: cols, Rows: rows}
}

// panel is shorthand for a panel descriptor.
func panel(a Archetype, slots ...Slot) *PanelSchema {
	return &PanelSchema{Archetype: a, Slots: slots}
}

func (p *PanelSchema) at(s Slot, pos Position) *PanelSchema {
	if p.Positions == nil {
		p.Positions = map[Slot]Position{}
	}
	p.Positions[s] = pos
	return p
}

func mobileLandscapeVariants() []*Descriptor {
	displayOnly := []Format{FormatDisplay}
	media := MediaSpec{Aspect: AspectLandscape, InfoBadge: true, CloseBadge: true}

	return []*Descriptor{
		{
			Key:    "mobile.landscape.title-desc-biz-textcta",
			Family: FamilyMobileLandscape,
			Media:  media,
			Body: body([]string{"1fr"},
				[]Slot{SlotTitle},
				[]Slot{SlotDesc},
				[]Slot{SlotBiz},
				[]Slot{SlotCTAText},
			),
			LockHints:       []string{"Add a headline", "Add a description", "Add a landscape image"},
			RequiredFormats: displayOnly,
			Styles: map[Slot]*node.Patch{
				SlotDesc: {MaxLines: node.Int(2)},
			},
		},
		{
			Key:    "mobile.landscape.logo-title-arrowcta",
			Family: FamilyMobileLandscape,
			Media:  media,
			Body: body([]string{"48px", "1fr", "24px"},
				[]Slot{SlotLogo, SlotTitle, SlotCTAArrow},
			),
			LockHints:       []string{"Add a headline", "Add a square logo"},
			RequiredFormats: displayOnly,
		},
		{
			Key:    "mobile.landscape.thumb-title-desc",
			Family: FamilyMobileLandscape,
			Media:  MediaSpec{Aspect: AspectNone, InfoBadge: true},
			Body: body([]string{"80px", "1fr"},
				[]Slot{SlotThumb, SlotTitle},
				[]Slot{"", SlotDesc},
			),
			LockHints:       []string{"Add a headline", "Add a landscape image"},
			RequiredFormats: displayOnly,
			Styles: map[Slot]*node.Patch{
				SlotDesc: {MaxLines: node.Int(3)},
			},
		},
		{
			Key:    "mobile.landscape.thumb-title-biz-arrowcta",
			Family: FamilyMobileLandscape,
			Media:  MediaSpec{Aspect: AspectNone, InfoBadge: true, CloseBadge: true},
			Body: body([]string{"64px", "1fr", "24px"},
				[]Slot{SlotThumb, SlotTitle, SlotCTAArrow},
				[]Slot{"", SlotBiz, ""},
			),
			LockHints:       []string{"Add a headline", "Add a square image"},
			RequiredFormats: displayOnly,
		},
		{
			Key:    "mobile.landscape.title-desc-buttons",
			Family: FamilyMobileLandscape,
			Media:  media,
			Body: body([]string{"1fr"},
				[]Slot{SlotTitle},
				[]Slot{SlotDesc},
				[]Slot{SlotButtonRow},
			),
			LockHints:       []string{"Add a headline", "Add a description", "Add a call to action"},
			RequiredFormats: displayOnly,
		},
		{
			Key:    "mobile.landscape.logo-title-desc-fab",
			Family: FamilyMobileLandscape,
			Media:  media,
			Body: body([]string{"48px", "1fr"},
				[]Slot{SlotLogo, SlotTitle},
				[]Slot{"", SlotDesc},
				[]Slot{"", SlotCTAFab},
			),
			LockHints:       []string{"Add a headline", "Add a square logo", "Add a call to action"},
			RequiredFormats: displayOnly,
		},
		{
			Key:    "mobile.landscape.titlexl-biz",
			Family: FamilyMobileLandscape,
			Media:  media,
			Body: body([]string{"1fr"},
				[]Slot{SlotTitleXL},
				[]Slot{SlotBiz},
			),
			LockHints:       []string{"Add a headline", "Add a landscape image"},
			RequiredFormats: displayOnly,
			Styles: map[Slot]*node.Patch{
				SlotTitleXL: {FontSizePx: node.Int(24), Bold: node.Bool(true)},
			},
		},
		{
			Key:    "mobile.landscape.image-title-biz",
			Family: FamilyMobileLandscape,
			Media:  MediaSpec{Aspect: AspectNone},
			Body: body([]string{"1fr"},
				[]Slot{SlotInnerImage},
				[]Slot{SlotTitle},
				[]Slot{SlotBiz},
			),
			LockHints:       []string{"Add a landscape image", "Add a headline"},
			RequiredFormats: displayOnly,
		},
		{
			Key:    "mobile.landscape.logo-longheadline-textcta",
			Family: FamilyMobileLandscape,
			Media:  media,
			Body: body([]string{"48px", "1fr"},
				[]Slot{SlotLogo, SlotLongHeadline},
				[]Slot{"", SlotCTAText},
			),
			LockHints:       []string{"Add a long headline", "Add a square logo"},
			RequiredFormats: displayOnly,
			Styles: map[Slot]*node.Patch{
				SlotLongHeadline: {MaxLines: node.Int(2)},
			},
		},
		{
			Key:    "mobile.landscape.divider-title-desc-bar",
			Family: FamilyMobileLandscape,
			Media:  media,
			Body: body([]string{"1fr"},
				[]Slot{SlotDivider},
				[]Slot{SlotTitle},
				[]Slot{SlotDesc},
				[]Slot{SlotCTABar},
			),
			LockHints:       []string{"Add a headline", "Add a description"},
			RequiredFormats: displayOnly,
		},
	}
}

func mobilePortraitVariants() []*Descriptor {
	displayOnly := []Format{FormatDisplay}
	hero := MediaSpec{Aspect: AspectPortrait, CloseBadge: true, PreferVideoCover: true}

	return []*Descriptor{
		{
			Key:             "mobile.portrait.hero-title-desc-buttons",
			Family:          FamilyMobilePortrait,
			Media:           hero,
			Panel:           panel(ArchetypeDarkOverlay, SlotTitle, SlotDesc, SlotBiz, SlotButtonRow),
			LockHints:       []string{"Add a portrait image", "Add a headline", "Add a description"},
			RequiredFormats: displayOnly,
		},
		{
			Key:             "mobile.portrait.hero-logo-title-cta",
			Family:          FamilyMobilePortrait,
			Media:           hero,
			Panel:           panel(ArchetypeDarkOverlay, SlotLogo, SlotTitle, SlotCTAText).at(SlotLogo, PosFloat),
			LockHints:       []string{"Add a portrait image", "Add a square logo", "Add a headline"},
			RequiredFormats: displayOnly,
		},
		{
			Key:             "mobile.portrait.hero-titlexl-biz",
			Family:          FamilyMobilePortrait,
			Media:           hero,
			Panel:           panel(ArchetypeDarkOverlay, SlotTitleXL, SlotBiz),
			LockHints:       []string{"Add a portrait image", "Add a headline"},
			RequiredFormats: displayOnly,
			Styles: map[Slot]*node.Patch{
				SlotTitleXL: {FontSizePx: node.Int(28), Bold: node.Bool(true)},
			},
		},
		{
			Key:             "mobile.portrait.hero-longheadline-bar",
			Family:          FamilyMobilePortrait,
			Media:           hero,
			Panel:           panel(ArchetypeDarkOverlay, SlotLongHeadline, SlotCTABar),
			LockHints:       []string{"Add a portrait image", "Add a long headline"},
			RequiredFormats: displayOnly,
		},
	}
}

func sheetVariants() []*Descriptor {
	displayOnly := []Format{FormatDisplay}

	return []*Descriptor{
		{
			Key:             "sheet.light.logo-title-desc-cta",
			Family:          FamilySheet,
			Media:           MediaSpec{Aspect: AspectLandscape, CloseBadge: true},
			Panel:           panel(ArchetypeLightSheet, SlotLogo, SlotTitle, SlotDesc, SlotCTAText),
			Header:          &HeaderSchema{Slots: []Slot{SlotAdBiz}},
			LockHints:       []string{"Add a headline", "Add a square logo", "Add a landscape image"},
			RequiredFormats: displayOnly,
		},
		{
			Key:             "sheet.light.title-buttons",
			Family:          FamilySheet,
			Media:           MediaSpec{Aspect: AspectLandscape, CloseBadge: true},
			Panel:           panel(ArchetypeLightSheet, SlotTitle, SlotButtonRow),
			LockHints:       []string{"Add a headline", "Add a call to action"},
			RequiredFormats: displayOnly,
		},
		{
			Key:             "sheet.dark.logo-title-desc-cta",
			Family:          FamilySheet,
			Media:           MediaSpec{Aspect: AspectLandscape, CloseBadge: true},
			Panel:           panel(ArchetypeDarkSheet, SlotLogo, SlotTitle, SlotDesc, SlotCTAText),
			Header:          &HeaderSchema{Slots: []Slot{SlotAdBiz}},
			LockHints:       []string{"Add a headline", "Add a square logo"},
			RequiredFormats: displayOnly,
		},
		{
			Key:             "sheet.dark.titlexl-cta",
			Family:          FamilySheet,
			Media:           MediaSpec{Aspect: AspectLandscape},
			Panel:           panel(ArchetypeDarkSheet, SlotTitleXL, SlotCTAText),
			LockHints:       []string{"Add a headline"},
			RequiredFormats: displayOnly,
			Styles: map[Slot]*node.Patch{
				SlotTitleXL: {FontSizePx: node.Int(22), Bold: node.Bool(true)},
			},
		},
	}
}

func cardVariants() []*Descriptor {
	displayOnly := []Format{FormatDisplay}

	return []*Descriptor{
		{
			Key:             "card.white.logo-title-desc-cta",
			Family:          FamilyCard,
			Media:           MediaSpec{Aspect: AspectSquare, InfoBadge: true},
			Panel:           panel(ArchetypeWhiteCard, SlotLogo, SlotTitle, SlotDesc, SlotCTAText),
			LockHints:       []string{"Add a square image", "Add a square logo", "Add a headline"},
			RequiredFormats: displayOnly,
		},
		{
			Key:             "card.white.title-desc-cta",
			Family:          FamilyCard,
			Media:           MediaSpec{Aspect: AspectSquare, InfoBadge: true},
			Panel:           panel(ArchetypeWhiteCard, SlotTitle, SlotDesc, SlotCTAText),
			LockHints:       []string{"Add a square image", "Add a headline"},
			RequiredFormats: displayOnly,
		},
		{
			Key:             "card.dark.logo-title-biz-cta",
			Family:          FamilyCard,
			Media:           MediaSpec{Aspect: AspectSquare, CloseBadge: true},
			Panel:           panel(ArchetypeDarkCard, SlotLogo, SlotTitle, SlotBiz, SlotCTAText),
			LockHints:       []string{"Add a square image", "Add a square logo", "Add a headline"},
			RequiredFormats: displayOnly,
		},
		{
			Key:             "card.dark.media-title-cta",
			Family:          FamilyCard,
			Media:           MediaSpec{Aspect: AspectLandscape, CloseBadge: true, OverlayTitle: true},
			Panel:           panel(ArchetypeDarkCard, SlotTitle, SlotCTAText),
			LockHints:       []string{"Add a landscape image", "Add a headline"},
			RequiredFormats: displayOnly,
		},
	}
}

func inlineVariants() []*Descriptor {
	displayOnly := []Format{FormatDisplay}

	return []*Descriptor{
		{
			Key:             "inline.row.thumb-title-biz",
			Family:          FamilyInline,
			Media:           MediaSpec{Aspect: AspectNone, InfoBadge: true},
			Panel:           panel(ArchetypeInlineBox, SlotThumb, SlotTitle, SlotBiz),
			LockHints:       []string{"Add a square image", "Add a headline"},
			RequiredFormats: displayOnly,
		},
		{
			Key:             "inline.row.thumb-title-desc-cta",
			Family:          FamilyInline,
			Media:           MediaSpec{Aspect: AspectNone, InfoBadge: true},
			Panel:           panel(ArchetypeInlineBox, SlotThumb, SlotTitle, SlotDesc, SlotCTAText),
			LockHints:       []string{"Add a square image", "Add a headline", "Add a description"},
			RequiredFormats: displayOnly,
			Styles: map[Slot]*node.Patch{
				SlotDesc: {MaxLines: node.Int(1)},
			},
		},
		{
			Key:             "inline.row.logo-title-arrowcta",
			Family:          FamilyInline,
			Media:           MediaSpec{Aspect: AspectNone},
			Panel:           panel(ArchetypeInlineBox, SlotLogo, SlotTitle, SlotCTAArrow),
			LockHints:       []string{"Add a square logo", "Add a headline"},
			RequiredFormats: displayOnly,
		},
		{
			Key:             "inline.box.image-title-bar",
			Family:          FamilyInline,
			Media:           MediaSpec{Aspect: AspectLandscape, InfoBadge: true, CloseBadge: true},
			Panel:           panel(ArchetypeInlineBox, SlotInnerImage, SlotTitle, SlotCTABar),
			LockHints:       []string{"Add a landscape image", "Add a headline"},
			RequiredFormats: displayOnly,
		},
	}
}

func promoInboxVariants() []*Descriptor {
	return []*Descriptor{
		{
			Key:    "promo.inbox.row",
			Family: FamilyPromoInbox,
			Media:  MediaSpec{Aspect: AspectNone},
			Panel:  panel(ArchetypePromoListRow, SlotPromoSender, SlotPromoSubject, SlotPromoSnippet),
		},
		{
			Key:    "promo.inbox.row-tagged",
			Family: FamilyPromoInbox,
			Media:  MediaSpec{Aspect: AspectNone},
			Panel:  panel(ArchetypePromoListRow, SlotPromoTag, SlotPromoSender, SlotPromoSubject, SlotPromoSnippet),
		},
		{
			Key:    "promo.inbox.row-expanded",
			Family: FamilyPromoInbox,
			Media:  MediaSpec{Aspect: AspectLandscape},
			Panel:  panel(ArchetypePromoListRow, SlotPromoSender, SlotPromoSubject, SlotPromoSnippet, SlotInnerImage, SlotCTAText),
		},
	}
}

func videoFeedVariants() []*Descriptor {
	videoOnly := []Format{FormatVideo}
	media := MediaSpec{Aspect: AspectLandscape, PreferVideoCover: true}

	return []*Descriptor{
		{
			Key:             "video.feed.card",
			Family:          FamilyVideoFeed,
			Media:           media,
			Panel:           panel(ArchetypeVideoFeedCard, SlotFeedThumb, SlotFeedTitle, SlotFeedMeta),
			LockHints:       []string{"Add a video", "Add a headline"},
			RequiredFormats: videoOnly,
		},
		{
			Key:             "video.feed.card-compact",
			Family:          FamilyVideoFeed,
			Media:           media,
			Panel:           panel(ArchetypeVideoFeedCard, SlotFeedThumb, SlotFeedTitle),
			LockHints:       []string{"Add a video"},
			RequiredFormats: videoOnly,
			Styles: map[Slot]*node.Patch{
				SlotFeedTitle: {MaxLines: node.Int(1)},
			},
		},
		{
			Key:             "video.feed.card-autoplay",
			Family:          FamilyVideoFeed,
			Media:           MediaSpec{Aspect: AspectLandscape, MuteBadge: true, PreferVideoCover: true},
			Panel:           panel(ArchetypeVideoFeedCard, SlotInnerVideo, SlotFeedTitle, SlotFeedMeta),
			LockHints:       []string{"Add a video", "Add a headline"},
			RequiredFormats: videoOnly,
		},
	}
}

func videoHomeVariants() []*Descriptor {
	return []*Descriptor{
		{
			Key:    "video.home.card",
			Family: FamilyVideoHome,
			Media:  MediaSpec{Aspect: AspectLandscape, PreferVideoCover: true},
			Panel:  panel(ArchetypeVideoHomeCard, SlotHomeHero, SlotHomeAvatar, SlotHomeTitle, SlotHomeMeta),
		},
		{
			Key:    "video.home.card-hero",
			Family: FamilyVideoHome,
			Media:  MediaSpec{Aspect: AspectLandscape, MuteBadge: true, OverlayTitle: true, PreferVideoCover: true},
			Panel:  panel(ArchetypeVideoHomeCard, SlotHomeHero, SlotHomeTitle, SlotCTAText),
		},
		{
			Key:    "video.home.card-compact",
			Family: FamilyVideoHome,
			Media:  MediaSpec{Aspect: AspectLandscape, PreferVideoCover: true},
			Panel:  panel(ArchetypeVideoHomeCard, SlotHomeHero, SlotHomeTitle),
		},
	}
}

func searchVariants() []*Descriptor {
	searchOnly := []Format{FormatSearch}

	return []*Descriptor{
		{
			Key:             "search.snippet.standard",
			Family:          FamilySearch,
			Media:           MediaSpec{Aspect: AspectNone},
			Panel:           panel(ArchetypeSearchSnippet, SlotAdBiz, SlotDisplayURL, SlotTitle, SlotDesc),
			LockHints:       []string{"Add a headline", "Add a description"},
			RequiredFormats: searchOnly,
			Styles: map[Slot]*node.Patch{
				SlotTitle: {FontSizePx: node.Int(18), Color: node.Str("#1a0dab")},
				SlotDesc:  {MaxLines: node.Int(2)},
			},
		},
		{
			Key:             "search.snippet.compact",
			Family:          FamilySearch,
			Media:           MediaSpec{Aspect: AspectNone},
			Panel:           panel(ArchetypeSearchSnippet, SlotAdBiz, SlotTitle),
			LockHints:       []string{"Add a headline"},
			RequiredFormats: searchOnly,
			Styles: map[Slot]*node.Patch{
				SlotTitle: {FontSizePx: node.Int(18), Color: node.Str("#1a0dab")},
			},
		},
	}
}

func inStreamVariants() []*Descriptor {
	videoOnly := []Format{FormatVideo}
	media := MediaSpec{Aspect: AspectLandscape, MuteBadge: true, PreferVideoCover: true}

	return []*Descriptor{
		{
			Key:             "video.instream.overlay",
			Family:          FamilyVideoInStream,
			Media:           media,
			Panel:           panel(ArchetypeDarkOverlay, SlotTitle, SlotBiz),
			LockHints:       []string{"Add a video"},
			RequiredFormats: videoOnly,
		},
		{
			Key:             "video.instream.overlay-cta",
			Family:          FamilyVideoInStream,
			Media:           media,
			Panel:           panel(ArchetypeDarkOverlay, SlotTitle, SlotDesc, SlotCTAText),
			LockHints:       []string{"Add a video", "Add a call to action"},
			RequiredFormats: videoOnly,
		},
	}
}

func inFeedVariants() []*Descriptor {
	videoOnly := []Format{FormatVideo}

	return []*Descriptor{
		{
			Key:             "video.infeed.thumb-title-biz",
			Family:          FamilyVideoInFeed,
			Media:           MediaSpec{Aspect: AspectLandscape, PreferVideoCover: true},
			Panel:           panel(ArchetypeInlineBox, SlotThumb, SlotTitle, SlotBiz),
			LockHints:       []string{"Add a video", "Add a headline"},
			RequiredFormats: videoOnly,
		},
		{
			Key:             "video.infeed.thumb-desc",
			Family:          FamilyVideoInFeed,
			Media:           MediaSpec{Aspect: AspectLandscape, PreferVideoCover: true},
			Panel:           panel(ArchetypeInlineBox, SlotThumb, SlotDesc),
			LockHints:       []string{"Add a video", "Add a description"},
			RequiredFormats: videoOnly,
		},
	}
}
