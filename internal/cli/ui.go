package cli

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// ANSI 256 palette shared by command output and the interactive views.
var (
	colorPrimary = lipgloss.Color("36")
	colorGood    = lipgloss.Color("35")
	colorWarn    = lipgloss.Color("220")
	colorBad     = lipgloss.Color("167")
	colorLink    = lipgloss.Color("75")
	colorBright  = lipgloss.Color("255")
	colorMuted   = lipgloss.Color("245")
	colorFaint   = lipgloss.Color("240")
)

// Styles exported for the bubbletea views.
var (
	StyleTitle = lipgloss.NewStyle().Bold(true).Foreground(colorPrimary)
	StyleDim   = lipgloss.NewStyle().Foreground(colorFaint)
	StyleValue = lipgloss.NewStyle().Foreground(colorBright)
)

var (
	styleGood    = lipgloss.NewStyle().Foreground(colorGood)
	styleBad     = lipgloss.NewStyle().Foreground(colorBad)
	styleWarn    = lipgloss.NewStyle().Foreground(colorWarn)
	styleMuted   = lipgloss.NewStyle().Foreground(colorMuted)
	styleSpinner = lipgloss.NewStyle().Foreground(colorPrimary)
	styleCommand = lipgloss.NewStyle().Foreground(colorLink)
)

// Status lines carry a one-character marker so they scan well in a
// scrollback full of log output.

func printSuccess(format string, args ...any) {
	fmt.Println(styleGood.Render("✓") + " " + fmt.Sprintf(format, args...))
}

func printError(format string, args ...any) {
	fmt.Println(styleBad.Render("✗") + " " + fmt.Sprintf(format, args...))
}

func printWarning(format string, args ...any) {
	fmt.Println(styleWarn.Render("! " + fmt.Sprintf(format, args...)))
}

func printInfo(format string, args ...any) {
	fmt.Println(styleMuted.Render("›") + " " + fmt.Sprintf(format, args...))
}

// printDetail indents a secondary line under the preceding status.
func printDetail(format string, args ...any) {
	fmt.Println("  " + StyleDim.Render(fmt.Sprintf(format, args...)))
}

// printFile points at an artifact written to disk.
func printFile(path string) {
	fmt.Println("  " + StyleDim.Render("→") + " " + StyleValue.Render(path))
}

// printStats summarizes a render on one indented line.
func printStats(nodeCount, formatCount int, cached bool) {
	var parts []string
	if nodeCount > 0 {
		parts = append(parts, StyleDim.Render(fmt.Sprintf("%d nodes", nodeCount)))
	}
	if formatCount > 0 {
		parts = append(parts, StyleDim.Render(fmt.Sprintf("%d formats", formatCount)))
	}
	if cached {
		parts = append(parts, styleGood.Render("cached"))
	} else {
		parts = append(parts, StyleDim.Render("fresh"))
	}
	fmt.Println("  " + strings.Join(parts, StyleDim.Render(" · ")))
}

// printNextStep suggests a follow-up command.
func printNextStep(description, cmd string) {
	fmt.Println(StyleDim.Render(description+":") + " " + styleCommand.Render(cmd))
}
