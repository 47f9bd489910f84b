package compose

import (
	"github.com/adproof/adproof/pkg/creative"
	"github.com/adproof/adproof/pkg/preview/node"
	"github.com/adproof/adproof/pkg/preview/slot"
	"github.com/adproof/adproof/pkg/preview/variant"
)

// gridBody lays slots onto the descriptor's column template. The media
// container sits above the grid; blank cells in the template reserve
// their column width while omitted slots take no space at all.
type gridBody struct{}

func (gridBody) Tag() variant.Archetype { return variant.ArchetypeGridBody }

func (gridBody) Compose(d *variant.Descriptor, rc *creative.Resolved, p slot.Params) *node.Node {
	body := node.Box("grid-body", node.Style{
		Direction:  node.DirColumn,
		Background: "#ffffff",
		PaddingPx:  12,
		GapPx:      6,
	})

	if media := mediaContainer(d, rc, p); media != nil {
		body.Append(media)
	}

	if d.Body == nil {
		return body
	}

	for _, rowSlots := range d.Body.Rows {
		row := node.Box("grid-row", node.Style{Direction: node.DirRow, GapPx: 8})
		for i, s := range rowSlots {
			// Cells past the column template grow to fill.
			cell := node.Style{Grow: true}
			if i < len(d.Body.Columns) {
				cell = columnStyle(d.Body.Columns[i])
			}
			if s == "" {
				// Blank template cell: keep the column width.
				row.Append(node.Box("grid-spacer", cell))
				continue
			}
			n, ok := slot.Render(s, rc, p)
			if !ok {
				continue
			}
			row.Append(node.Box("grid-cell", cell, n))
		}
		if len(row.Children) > 0 {
			body.Append(row)
		}
	}
	return body
}
