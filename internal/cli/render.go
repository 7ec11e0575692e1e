package cli

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Theme colors (Flexoki Dark)
var (
	ColorBorder    = lipgloss.Color("#282726")
	ColorTextDim   = lipgloss.Color("#575653")
	ColorTextMuted = lipgloss.Color("#6F6E69")
	ColorText      = lipgloss.Color("#FFFCF0")
	ColorAccent    = lipgloss.Color("#3AA99F")
	ColorGreen     = lipgloss.Color("#879A39")
	ColorOrange    = lipgloss.Color("#DA702C")
	ColorRed       = lipgloss.Color("#D14D41")
	ColorBlue      = lipgloss.Color("#4385BE")
	ColorYellow    = lipgloss.Color("#D0A215")
)

// Styles
var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorText).
			Align(lipgloss.Center)

	headerStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorAccent)

	valueStyle = lipgloss.NewStyle().
			Foreground(ColorText)

	dimStyle = lipgloss.NewStyle().
			Foreground(ColorTextDim)

	overStyle = lipgloss.NewStyle().
			Foreground(ColorRed).
			Bold(true)
)

// Table represents a bordered text table for CLI output.
type Table struct {
	Title   string
	Headers []string
	Rows    [][]string
	Widths  []int // optional column widths, auto-calculated if nil
}

// RenderTitle renders a centered title bar in a bordered box.
func RenderTitle(title string) string {
	width := 55
	border := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(ColorBorder).
		Width(width).
		Align(lipgloss.Center).
		Padding(0, 1)

	return border.Render(titleStyle.Render(title))
}

// RenderTable renders a bordered table with headers and rows.
// A row of just "---" renders as a separator line.
func RenderTable(t Table) string {
	if len(t.Rows) == 0 && len(t.Headers) == 0 {
		return ""
	}

	numCols := len(t.Headers)
	if numCols == 0 && len(t.Rows) > 0 {
		numCols = len(t.Rows[0])
	}

	widths := make([]int, numCols)
	if t.Widths != nil {
		copy(widths, t.Widths)
	} else {
		for i, h := range t.Headers {
			if lipgloss.Width(h) > widths[i] {
				widths[i] = lipgloss.Width(h)
			}
		}
		for _, row := range t.Rows {
			for i, cell := range row {
				if i < numCols && lipgloss.Width(cell) > widths[i] {
					widths[i] = lipgloss.Width(cell)
				}
			}
		}
	}

	var b strings.Builder

	if t.Title != "" {
		b.WriteString("  ")
		b.WriteString(headerStyle.Render(t.Title))
		b.WriteString("\n")
	}

	writeBorder := func(left, mid, right string) {
		b.WriteString(dimStyle.Render(left))
		for i, w := range widths {
			b.WriteString(dimStyle.Render(strings.Repeat("─", w+2)))
			if i < numCols-1 {
				b.WriteString(dimStyle.Render(mid))
			}
		}
		b.WriteString(dimStyle.Render(right))
		b.WriteString("\n")
	}

	writeBorder("╭", "┬", "╮")

	if len(t.Headers) > 0 {
		b.WriteString(dimStyle.Render("│"))
		for i, h := range t.Headers {
			padded := fmt.Sprintf(" %-*s ", widths[i], h)
			b.WriteString(headerStyle.Render(padded))
			if i < numCols-1 {
				b.WriteString(dimStyle.Render("│"))
			}
		}
		b.WriteString(dimStyle.Render("│"))
		b.WriteString("\n")
		writeBorder("├", "┼", "┤")
	}

	for _, row := range t.Rows {
		if len(row) == 1 && row[0] == "---" {
			writeBorder("├", "┼", "┤")
			continue
		}

		b.WriteString(dimStyle.Render("│"))
		for i := 0; i < numCols; i++ {
			cell := ""
			if i < len(row) {
				cell = row[i]
			}

			// Right-align numeric columns (all except first)
			pad := widths[i] - lipgloss.Width(cell)
			if pad < 0 {
				pad = 0
			}
			if i == 0 {
				b.WriteString(valueStyle.Render(" " + cell + strings.Repeat(" ", pad) + " "))
			} else {
				b.WriteString(valueStyle.Render(" " + strings.Repeat(" ", pad) + cell + " "))
			}
			if i < numCols-1 {
				b.WriteString(dimStyle.Render("│"))
			}
		}
		b.WriteString(dimStyle.Render("│"))
		b.WriteString("\n")
	}

	writeBorder("╰", "┴", "╯")

	return b.String()
}

// BudgetBarColor returns the usage color for a 0-1 spend fraction, matching
// the dashboard thresholds: red at 100%, orange from 67%, amber from 34%.
func BudgetBarColor(pct float64) lipgloss.Color {
	switch {
	case pct >= 1.0:
		return ColorRed
	case pct >= 0.67:
		return ColorOrange
	case pct >= 0.34:
		return ColorYellow
	default:
		return ColorBlue
	}
}

// RenderBudgetBar renders a spend bar with percentage for one category.
func RenderBudgetBar(pct float64, width int) string {
	if width < 4 {
		width = 4
	}
	clamped := pct
	if clamped > 1 {
		clamped = 1
	}
	if clamped < 0 {
		clamped = 0
	}
	filled := int(clamped * float64(width))

	color := BudgetBarColor(pct)
	filledStyle := lipgloss.NewStyle().Foreground(color)
	pctStyle := lipgloss.NewStyle().Foreground(color).Bold(true)

	bar := filledStyle.Render(strings.Repeat("█", filled)) +
		dimStyle.Render(strings.Repeat("░", width-filled))
	return bar + " " + pctStyle.Render(fmt.Sprintf("%3.0f%%", pct*100))
}

// OverBudgetTag renders the over-budget marker, or "" when within budget.
func OverBudgetTag(over bool) string {
	if !over {
		return ""
	}
	return overStyle.Render("OVER")
}
