package tui

import (
	"fmt"
	"strings"

	"github.com/balaji-matta18/spendbuddy/internal/api"
	"github.com/balaji-matta18/spendbuddy/internal/cli"
	"github.com/balaji-matta18/spendbuddy/internal/tui/components"
	"github.com/balaji-matta18/spendbuddy/internal/tui/theme"

	"github.com/charmbracelet/lipgloss"
)

func (a App) renderReportsTab() string {
	cw := a.contentWidth()
	var b strings.Builder

	rangeStyle := lipgloss.NewStyle().Foreground(theme.Active.Accent).Bold(true)
	b.WriteString(" Range: " + rangeStyle.Render(strings.ToUpper(a.reportRng)) + "  [g] cycle\n")

	inner := components.CardInnerWidth(cw)
	b.WriteString(components.ContentCard("Expense by Category",
		renderReportBars(a.report.ByCategory, a.cfg.General.Currency, inner), cw))
	b.WriteString("\n")
	b.WriteString(components.ContentCard("Monthly Summary",
		renderReportBars(a.report.Monthly, a.cfg.General.Currency, inner), cw))
	b.WriteString("\n")
	b.WriteString(components.ContentCard("Payment Type Summary",
		renderReportBars(a.report.ByPaymentType, a.cfg.General.Currency, inner), cw))

	return b.String()
}

// renderReportBars draws one horizontal bar per point, scaled to the largest
// value in the set.
func renderReportBars(points []api.ReportPoint, currency string, width int) string {
	t := theme.Active
	if len(points) == 0 {
		return lipgloss.NewStyle().Foreground(t.TextDim).Render("No data for this range.")
	}

	var maxVal float64
	for _, p := range points {
		if p.Value > maxVal {
			maxVal = p.Value
		}
	}

	labelW := 14
	amountW := 12
	barW := width - labelW - amountW - 3
	if barW < 8 {
		barW = 8
	}

	labelStyle := lipgloss.NewStyle().Foreground(t.TextMuted)
	barStyle := lipgloss.NewStyle().Foreground(t.Blue)
	emptyStyle := lipgloss.NewStyle().Foreground(t.TextDim)
	amountStyle := lipgloss.NewStyle().Foreground(t.TextPrimary)

	var b strings.Builder
	for _, p := range points {
		filled := 0
		if maxVal > 0 {
			filled = int(p.Value / maxVal * float64(barW))
		}
		if filled > barW {
			filled = barW
		}

		b.WriteString(fmt.Sprintf("%s %s%s %s\n",
			labelStyle.Render(fmt.Sprintf("%-*s", labelW, cli.Truncate(p.Label, labelW))),
			barStyle.Render(strings.Repeat("█", filled)),
			emptyStyle.Render(strings.Repeat("░", barW-filled)),
			amountStyle.Render(fmt.Sprintf("%*s", amountW, cli.FormatMoney(currency, p.Value))),
		))
	}
	return strings.TrimRight(b.String(), "\n")
}
