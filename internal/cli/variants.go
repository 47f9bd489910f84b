package cli

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"

	"github.com/adproof/adproof/pkg/preview/variant"
)

// newVariantsCmd creates the variants command for listing the placement
// catalog. Output is a table by default; --json emits machine-readable
// descriptors.
func newVariantsCmd() *cobra.Command {
	var family string
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "variants",
		Short: "List the placement variant catalog",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runVariants(family, asJSON)
		},
	}

	cmd.Flags().StringVar(&family, "family", "", "only show variants in this family")
	cmd.Flags().BoolVar(&asJSON, "json", false, "emit JSON instead of a table")

	return cmd
}

// variantRow is the JSON shape for --json output.
type variantRow struct {
	Key       string   `json:"key"`
	Family    string   `json:"family"`
	Archetype string   `json:"archetype"`
	Formats   []string `json:"formats,omitempty"`
}

func runVariants(family string, asJSON bool) error {
	rows := collectVariants(family)
	if len(rows) == 0 {
		printInfo("No variants match family %q", family)
		return nil
	}

	if asJSON {
		data, err := json.MarshalIndent(rows, "", "  ")
		if err != nil {
			return err
		}
		fmt.Println(string(data))
		return nil
	}

	printVariantTable(rows)
	printDetail("%d variants", len(rows))
	return nil
}

// collectVariants gathers catalog rows, optionally filtered by family.
// Keys come back in the registry's sorted order.
func collectVariants(family string) []variantRow {
	var rows []variantRow
	for _, key := range variant.Keys() {
		d, ok := variant.Lookup(key)
		if !ok {
			continue
		}
		if family != "" && d.Family != family {
			continue
		}
		formats := make([]string, len(d.RequiredFormats))
		for i, f := range d.RequiredFormats {
			formats[i] = string(f)
		}
		rows = append(rows, variantRow{
			Key:       d.Key,
			Family:    d.Family,
			Archetype: string(d.Archetype()),
			Formats:   formats,
		})
	}
	return rows
}

// printVariantTable renders the catalog as a bordered table.
func printVariantTable(rows []variantRow) {
	headerStyle := lipgloss.NewStyle().Foreground(colorMuted).Bold(true)

	cells := make([][]string, len(rows))
	for i, r := range rows {
		formats := strings.Join(r.Formats, ", ")
		if formats == "" {
			formats = "any"
		}
		cells[i] = []string{r.Key, r.Family, r.Archetype, formats}
	}

	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(colorFaint)).
		Headers("Variant", "Family", "Archetype", "Formats").
		Rows(cells...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == -1 {
				return headerStyle
			}
			if col == 0 {
				return StyleValue
			}
			return StyleDim
		})

	fmt.Println(t.Render())
}
