package tui

import (
	"fmt"
	"strings"

	"github.com/balaji-matta18/spendbuddy/internal/cli"
	"github.com/balaji-matta18/spendbuddy/internal/metrics"
	"github.com/balaji-matta18/spendbuddy/internal/tui/components"
	"github.com/balaji-matta18/spendbuddy/internal/tui/theme"

	"github.com/charmbracelet/lipgloss"
)

func (a App) renderBudgetsTab() string {
	cw := a.contentWidth()
	cur := a.cfg.General.Currency
	t := theme.Active

	if len(a.budgetRows) == 0 {
		return components.ContentCard("Budgets",
			lipgloss.NewStyle().Foreground(t.TextDim).Render("No categories yet. Add one with `spendbuddy categories add`."),
			cw)
	}

	inner := components.CardInnerWidth(cw)
	labelW := 14
	barW := inner - labelW - 12
	if barW < 10 {
		barW = 10
	}

	amountStyle := lipgloss.NewStyle().Foreground(t.TextMuted)

	var b strings.Builder
	for _, row := range a.budgetRows {
		pct := metrics.PercentUsed(row.Spent, row.Budget)
		b.WriteString(components.BudgetBar(cli.Truncate(row.Category, labelW), pct, row.OverBudget, labelW, barW))
		b.WriteString("\n")
		b.WriteString(amountStyle.Render(fmt.Sprintf("%-*s %s of %s, %s left",
			labelW, "",
			cli.FormatMoney(cur, row.Spent),
			cli.FormatMoney(cur, row.Budget),
			cli.FormatMoney(cur, row.Remaining),
		)))
		b.WriteString("\n")
	}

	return components.ContentCard("Budgets", strings.TrimRight(b.String(), "\n"), cw)
}
