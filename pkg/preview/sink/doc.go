// Package sink provides output format renderers for composed previews.
//
// A "sink" transforms a render [preview.Result] into a final output
// format. This package provides renderers for:
//
//   - HTML: a self-contained mock-up with inline styling
//   - SVG: a schematic wireframe of the composed tree
//   - JSON: the full tree and resolution metadata for external tools
//   - DOT: the tree structure as a Graphviz document
//
// Basic usage:
//
//	res := preview.Render(rec, preview.Options{VariantKey: key})
//	html := sink.RenderHTML(res, sink.WithHTMLTitle(key))
//
// [RenderJSON] is the primary data interchange format: it round-trips
// through encoding/json and includes the diagnostic state and resolved
// assets alongside the tree.
//
// [ToDOT] emits plain DOT text; [RenderGraphSVG] runs it through
// Graphviz for a node-link view of the slot structure.
//
// To add a new output format, create a renderer function taking the
// result and functional options, and register it in internal/cli for
// CLI support.
//
// [preview.Result]: github.com/adproof/adproof/pkg/preview.Result
package sink
