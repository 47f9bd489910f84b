package cli

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"

	"github.com/adproof/adproof/pkg/creative"
	"github.com/adproof/adproof/pkg/pipeline"
)

// List styles
var (
	listSelectedStyle = lipgloss.NewStyle().Bold(true).Foreground(colorPrimary)
	listDimStyle      = lipgloss.NewStyle().Foreground(colorFaint)
)

// newBrowseCmd creates the browse command: an interactive variant
// picker that renders a sample preview for the selected placement.
func newBrowseCmd() *cobra.Command {
	var family string

	cmd := &cobra.Command{
		Use:   "browse",
		Short: "Interactively browse variants and render a sample",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runBrowse(cmd.Context(), family)
		},
	}

	cmd.Flags().StringVar(&family, "family", "", "only show variants in this family")

	return cmd
}

func runBrowse(ctx context.Context, family string) error {
	rows := collectVariants(family)
	if len(rows) == 0 {
		printInfo("No variants match family %q", family)
		return nil
	}

	model := NewVariantListModel(rows)
	final, err := tea.NewProgram(model, tea.WithContext(ctx)).Run()
	if err != nil {
		return err
	}

	m, ok := final.(VariantListModel)
	if !ok || m.Selected == nil {
		return nil
	}
	return renderSample(ctx, *m.Selected)
}

// renderSample renders a demo record for the chosen variant to an HTML
// file in the working directory.
func renderSample(ctx context.Context, row variantRow) error {
	logger := loggerFromContext(ctx)
	runner := newRunner(false, logger)

	spin := newSpinnerWithContext(ctx, fmt.Sprintf("Rendering %s...", row.Key))
	spin.Start()
	result, err := runner.Execute(ctx, pipeline.Options{
		Record:  sampleRecord(),
		Variant: row.Key,
		Formats: []string{pipeline.FormatHTML},
		Logger:  logger,
	})
	spin.Stop()
	if err != nil {
		return err
	}

	name := strings.ReplaceAll(row.Key, ".", "_") + ".html"
	path := filepath.Join(".", name)
	if err := os.WriteFile(path, result.Artifacts[pipeline.FormatHTML], 0o644); err != nil {
		return err
	}

	printSuccess("Rendered sample for %s", row.Key)
	printFile(path)
	printNextStep("Render your own record", fmt.Sprintf("adproof render ad.json --variant %s", row.Key))
	return nil
}

// sampleRecord returns a demo creative covering display and video
// payloads so every variant in the catalog has something to show.
func sampleRecord() *creative.Record {
	return &creative.Record{
		Name:      "Sample creative",
		FinalURLs: []string{"https://www.example.com/offer"},
		DisplayAd: &creative.DisplayAd{
			Headlines:        []creative.TextAsset{{Text: "Fresh roasted coffee"}},
			LongHeadline:     &creative.TextAsset{Text: "Fresh roasted coffee, delivered weekly"},
			Descriptions:     []creative.TextAsset{{Text: "Single-origin beans roasted to order and shipped within 24 hours."}},
			BusinessName:     "Example Roasters",
			CallToActionText: "Shop now",
			MarketingImages:  []creative.ImageAsset{{AssetLink: creative.AssetLink{URL: "https://www.example.com/img/landscape.jpg"}}},
			SquareMarketingImages: []creative.ImageAsset{
				{AssetLink: creative.AssetLink{URL: "https://www.example.com/img/square.jpg"}},
			},
			LogoImages: []creative.ImageAsset{{AssetLink: creative.AssetLink{URL: "https://www.example.com/img/logo.png"}}},
		},
		VideoAd: &creative.VideoAd{
			Headlines:    []creative.TextAsset{{Text: "Fresh roasted coffee"}},
			Descriptions: []creative.TextAsset{{Text: "See how our beans make it to your door."}},
			Videos:       []creative.VideoAsset{{ID: "dQw4w9WgXcQ"}},
			BusinessName: "Example Roasters",
		},
	}
}

// =============================================================================
// VariantListModel - Interactive variant selection
// =============================================================================

// VariantListModel is the bubbletea model for interactive variant
// selection.
type VariantListModel struct {
	Rows     []variantRow
	Cursor   int
	Selected *variantRow
	Height   int
	Offset   int
}

// NewVariantListModel creates a new variant list model.
func NewVariantListModel(rows []variantRow) VariantListModel {
	return VariantListModel{
		Rows:   rows,
		Cursor: 0,
		Height: 15,
		Offset: 0,
	}
}

func (m VariantListModel) Init() tea.Cmd {
	return nil
}

func (m VariantListModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			return m, tea.Quit
		case "up", "k":
			if m.Cursor > 0 {
				m.Cursor--
				if m.Cursor < m.Offset {
					m.Offset = m.Cursor
				}
			}
		case "down", "j":
			if m.Cursor < len(m.Rows)-1 {
				m.Cursor++
				if m.Cursor >= m.Offset+m.Height {
					m.Offset = m.Cursor - m.Height + 1
				}
			}
		case "enter":
			row := m.Rows[m.Cursor]
			m.Selected = &row
			return m, tea.Quit
		}
	case tea.WindowSizeMsg:
		m.Height = msg.Height - 6
		if m.Height < 5 {
			m.Height = 5
		}
	}
	return m, nil
}

func (m VariantListModel) View() string {
	var b strings.Builder

	b.WriteString(StyleTitle.Render("Select Variant"))
	b.WriteString("\n")
	b.WriteString(listDimStyle.Render("↑/↓ navigate  ⏎ render sample  q quit"))
	b.WriteString("\n\n")

	end := m.Offset + m.Height
	if end > len(m.Rows) {
		end = len(m.Rows)
	}

	rows := [][]string{}
	for i := m.Offset; i < end; i++ {
		r := m.Rows[i]

		cursor := "  "
		if i == m.Cursor {
			cursor = "▸ "
		}

		formats := strings.Join(r.Formats, ", ")
		if formats == "" {
			formats = "any"
		}

		rows = append(rows, []string{cursor, r.Key, r.Family, r.Archetype, formats})
	}

	headerStyle := lipgloss.NewStyle().Foreground(colorMuted).Bold(true)

	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(colorFaint)).
		Headers("", "Variant", "Family", "Archetype", "Formats").
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == -1 {
				return headerStyle
			}

			actualIdx := m.Offset + row
			if actualIdx >= len(m.Rows) {
				return lipgloss.NewStyle()
			}
			if actualIdx == m.Cursor {
				if col <= 1 {
					return listSelectedStyle
				}
				return lipgloss.NewStyle().Foreground(colorMuted).Bold(true)
			}
			if col == 1 {
				return StyleValue
			}
			return listDimStyle
		})

	b.WriteString(t.Render())
	b.WriteString("\n\n")
	b.WriteString(listDimStyle.Render(fmt.Sprintf("  [%d/%d]", m.Cursor+1, len(m.Rows))))

	return b.String()
}
