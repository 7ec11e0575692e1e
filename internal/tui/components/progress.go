package components

import (
	"fmt"
	"strings"

	"github.com/balaji-matta18/spendbuddy/internal/tui/theme"

	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/lipgloss"
)

// ColorForSpend returns the bar color for a 0-1 spend fraction, matching the
// web dashboard thresholds: red at 100%, orange from 67%, amber from 34%.
func ColorForSpend(pct float64) string {
	t := theme.Active
	switch {
	case pct >= 1.0:
		return string(t.Red)
	case pct >= 0.67:
		return string(t.Orange)
	case pct >= 0.34:
		return string(t.Yellow)
	default:
		return string(t.Blue)
	}
}

// BudgetBar renders a labeled spend-vs-budget bar with percentage and an
// over-budget marker.
func BudgetBar(label string, pct float64, over bool, labelW, barWidth int) string {
	t := theme.Active

	clamped := pct
	if clamped < 0 {
		clamped = 0
	}
	if clamped > 1 {
		clamped = 1
	}

	bar := progress.New(
		progress.WithSolidFill(ColorForSpend(pct)),
		progress.WithWidth(barWidth),
		progress.WithoutPercentage(),
	)
	bar.EmptyColor = string(t.TextDim)

	labelStyle := lipgloss.NewStyle().Foreground(t.TextMuted)
	pctStyle := lipgloss.NewStyle().Foreground(lipgloss.Color(ColorForSpend(pct))).Bold(true)
	overStyle := lipgloss.NewStyle().Foreground(t.Red).Bold(true)

	line := labelStyle.Render(fmt.Sprintf("%-*s", labelW, label)) + " " +
		bar.ViewAs(clamped) + " " +
		pctStyle.Render(fmt.Sprintf("%3.0f%%", pct*100))
	if over {
		line += " " + overStyle.Render("OVER")
	}
	return line
}

// Placeholder renders a centered neutral loading view, shown while the
// session restore or a fetch is still in flight.
func Placeholder(msg string, width, height int) string {
	t := theme.Active
	style := lipgloss.NewStyle().Foreground(t.TextMuted)

	pad := height / 2
	if pad < 1 {
		pad = 1
	}
	return strings.Repeat("\n", pad) +
		lipgloss.PlaceHorizontal(width, lipgloss.Center, style.Render(msg))
}
