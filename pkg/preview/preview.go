// Package preview is the creative preview rendering engine.
//
// Render is a pure function of (creative record, variant key, caller
// overrides): the registry resolves the variant descriptor, the asset
// resolver produces the canonical creative projection, and the layout
// composer assembles the render tree. No I/O happens anywhere on that
// path; asset URLs are handed to the host surface for display, never
// fetched. Identical inputs always yield structurally identical trees.
//
// Failure never surfaces as an error: unknown variants and missing
// format payloads resolve to diagnostic placeholder trees the host may
// style distinctly.
package preview

import (
	"github.com/adproof/adproof/pkg/creative"
	"github.com/adproof/adproof/pkg/preview/compose"
	"github.com/adproof/adproof/pkg/preview/node"
	"github.com/adproof/adproof/pkg/preview/variant"
)

// State is the diagnostic outcome of a render.
type State string

// Render states.
const (
	StateOK             State = "ok"
	StateUnknownVariant State = "unknown_variant"
	StateNoCreativeData State = "no_creative_data"
)

// Options are the caller-supplied render parameters. Overrides take
// precedence over anything derivable from the record.
type Options struct {
	VariantKey string         `json:"variant_key"`
	Locked     bool           `json:"locked,omitempty"`
	ViewOnly   bool           `json:"view_only,omitempty"`
	VideoURL   string         `json:"video_url,omitempty"`
	ImageURL   string         `json:"image_url,omitempty"`
	Data       map[string]any `json:"data,omitempty"`

	// Origin resolves root-relative asset paths at render time.
	Origin string `json:"origin,omitempty"`
}

// Result is a composed render tree plus its diagnostic state.
type Result struct {
	Tree     *node.Node
	State    State
	Variant  *variant.Descriptor // nil when State is StateUnknownVariant
	Resolved creative.Resolved
}

// Render previews a creative record on the requested variant surface.
func Render(rec *creative.Record, opts Options) Result {
	d, ok := variant.Lookup(opts.VariantKey)
	if !ok {
		return Result{
			Tree:  diagnosticTree("unknown-variant", "Unknown variant: "+opts.VariantKey),
			State: StateUnknownVariant,
		}
	}

	if !d.Accepts(formatsOf(rec)) {
		return Result{
			Tree:    diagnosticTree("no-creative-data", "No creative data"),
			State:   StateNoCreativeData,
			Variant: d,
		}
	}

	rc := creative.Resolve(rec, creative.Context{
		Origin:           opts.Origin,
		PreferVideoCover: d.Media.PreferVideoCover,
	}, creative.Overrides{
		VideoURL: opts.VideoURL,
		ImageURL: opts.ImageURL,
		Data:     opts.Data,
	})

	tree := compose.Compose(d, &rc, compose.Options{
		ViewOnly: opts.ViewOnly,
		Locked:   opts.Locked,
	})

	return Result{Tree: tree, State: StateOK, Variant: d, Resolved: rc}
}

func formatsOf(rec *creative.Record) map[variant.Format]bool {
	return map[variant.Format]bool{
		variant.FormatDisplay: rec.HasDisplay(),
		variant.FormatSearch:  rec.HasSearch(),
		variant.FormatVideo:   rec.HasVideo(),
	}
}

func diagnosticTree(slot, label string) *node.Node {
	return node.Box("diagnostic", node.Style{
		Background: "#f1f3f4",
		PaddingPx:  24,
		Align:      node.AlignCenter,
	}, node.Placeholder(slot, label, node.Style{FontSizePx: 13, Color: "#5f6368"}))
}
