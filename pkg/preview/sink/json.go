package sink

import (
	"encoding/json"

	"github.com/adproof/adproof/pkg/creative"
	"github.com/adproof/adproof/pkg/preview"
	"github.com/adproof/adproof/pkg/preview/node"
)

// JSONOption configures JSON rendering via [RenderJSON].
type JSONOption func(*jsonRenderer)

type jsonRenderer struct {
	compact      bool
	withResolved bool
}

// WithJSONCompact disables indentation for wire transfer.
func WithJSONCompact() JSONOption { return func(r *jsonRenderer) { r.compact = true } }

// WithJSONResolved includes the resolved asset set alongside the tree,
// which is useful when debugging fallback behavior.
func WithJSONResolved() JSONOption { return func(r *jsonRenderer) { r.withResolved = true } }

type jsonOutput struct {
	Variant  string             `json:"variant"`
	State    preview.State      `json:"state"`
	Resolved *creative.Resolved `json:"resolved,omitempty"`
	Tree     *node.Node         `json:"tree"`
}

// RenderJSON exports the render result as a JSON document. This is the
// primary data interchange format: the tree round-trips through
// encoding/json, so hosts can re-hydrate and re-skin it without access
// to the engine.
//
// RenderJSON returns an error only if marshaling fails, which does not
// happen with well-formed trees. It does not modify the result and is
// safe to call concurrently.
func RenderJSON(res preview.Result, opts ...JSONOption) ([]byte, error) {
	r := jsonRenderer{}
	for _, opt := range opts {
		opt(&r)
	}

	out := jsonOutput{
		Variant: variantKey(res),
		State:   res.State,
		Tree:    res.Tree,
	}
	if r.withResolved {
		out.Resolved = &res.Resolved
	}

	if r.compact {
		return json.Marshal(out)
	}
	return json.MarshalIndent(out, "", "  ")
}
