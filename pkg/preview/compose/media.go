package compose

import (
	"github.com/adproof/adproof/pkg/creative"
	"github.com/adproof/adproof/pkg/preview/node"
	"github.com/adproof/adproof/pkg/preview/slot"
	"github.com/adproof/adproof/pkg/preview/variant"
)

// Frame sizes per aspect-ratio class. The host scales the whole
// mock-up; these only fix the internal proportions.
var aspectFrames = map[variant.Aspect][2]float64{
	variant.AspectLandscape: {328, 172},
	variant.AspectPortrait:  {360, 640},
	variant.AspectSquare:    {300, 300},
}

// mediaContainer renders the variant's media region: the playable or
// static media content wrapped in the aspect frame, plus the badges
// and optional overlaid title bar the media spec asks for. Returns nil
// when the variant has no media container.
func mediaContainer(d *variant.Descriptor, rc *creative.Resolved, p slot.Params) *node.Node {
	frame, ok := aspectFrames[d.Media.Aspect]
	if !ok {
		return nil
	}

	container := node.Box("media", node.Style{
		WidthPx:  frame[0],
		HeightPx: frame[1],
	})
	container.Append(mediaContent(rc, p))

	if badges := mediaBadges(d, rc, p); badges != nil {
		container.Append(badges)
	}

	if d.Media.OverlayTitle && rc.Title != "" {
		container.Append(node.Box("media-title-bar",
			node.Style{Background: "#000000c0", PaddingPx: 8},
			node.Text("media-title", rc.Title, node.Style{FontSizePx: 14, Color: "#ffffff", MaxLines: 1}),
		))
	}
	return container
}

// mediaContent picks the media element: embedded player, static cover
// with play badge, static image, or a labelled placeholder. A media
// container never collapses to nothing.
func mediaContent(rc *creative.Resolved, p slot.Params) *node.Node {
	if rc.VideoPlaybackURL != "" && !p.ViewOnly {
		return &node.Node{Kind: node.KindPlayer, Slot: "media-player", Src: rc.VideoPlaybackURL, Style: node.Style{Grow: true}}
	}

	if rc.VideoPlaybackURL != "" || (p.Descriptor != nil && p.Descriptor.Media.PreferVideoCover && rc.MediaURL != "") {
		cover := rc.MediaURL
		box := node.Box("media-cover", node.Style{Grow: true})
		if cover != "" {
			box.Append(node.Image("media-cover", cover, node.Style{Grow: true}))
		} else {
			box.Append(node.Placeholder("media-cover", "Video", node.Style{Grow: true}))
		}
		box.Append(&node.Node{
			Kind: node.KindBadge, Slot: "media-play", Label: "▶",
			Style: node.Style{WidthPx: 40, HeightPx: 40, Align: node.AlignCenter},
		})
		return box
	}

	if rc.MediaURL != "" {
		return node.Image("media-image", rc.MediaURL, node.Style{Grow: true})
	}
	return node.Placeholder("media-image", "Image", node.Style{Grow: true})
}

func mediaBadges(d *variant.Descriptor, rc *creative.Resolved, p slot.Params) *node.Node {
	if !d.Media.InfoBadge && !d.Media.CloseBadge && !d.Media.MuteBadge {
		return nil
	}

	row := node.Box("media-badges", node.Style{Direction: node.DirRow, GapPx: 4, Align: node.AlignEnd})
	if d.Media.MuteBadge {
		row.Append(&node.Node{Kind: node.KindBadge, Slot: "mute-badge", Label: "🔇", Style: node.Style{WidthPx: 16, HeightPx: 16}})
	}
	if d.Media.InfoBadge {
		if n, ok := slot.Render(variant.SlotInfoBadge, rc, p); ok {
			row.Append(n)
		}
	}
	if d.Media.CloseBadge {
		if n, ok := slot.Render(variant.SlotCloseBadge, rc, p); ok {
			row.Append(n)
		}
	}
	return row
}
