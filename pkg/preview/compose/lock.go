package compose

import "github.com/adproof/adproof/pkg/preview/node"

// Gate layers an opaque requirements overlay on top of the fully
// composed creative. The creative stays composed underneath, so
// unlocking is instant and needs no recomposition. Hints render in
// declared order.
func Gate(tree *node.Node, hints []string) *node.Node {
	gate := &node.Node{
		Kind: node.KindGate,
		Slot: "lock-gate",
		Style: node.Style{
			Direction:  node.DirColumn,
			Background: "#202124f0",
			Color:      "#ffffff",
			PaddingPx:  20,
			GapPx:      6,
			Align:      node.AlignCenter,
		},
	}
	gate.Append(node.Text("lock-title", "To run this ad, add:", node.Style{FontSizePx: 14, Bold: true}))
	for _, hint := range hints {
		gate.Append(&node.Node{
			Kind:  node.KindText,
			Slot:  "lock-hint",
			Text:  hint,
			Label: "•",
			Style: node.Style{FontSizePx: 13},
		})
	}

	return node.Box("locked", node.Style{}, tree, gate)
}
