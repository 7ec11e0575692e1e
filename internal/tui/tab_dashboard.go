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

func (a App) renderDashboardTab() string {
	cw := a.contentWidth()
	cur := a.cfg.General.Currency
	var b strings.Builder

	cards := []struct{ Label, Value, Delta string }{
		{"Total Balance", cli.FormatMoney(cur, a.dashStats.TotalBalance), ""},
		{"Income", cli.FormatMoney(cur, a.dashStats.Income), ""},
		{"Expenses", cli.FormatMoney(cur, a.dashStats.Expenses), ""},
		{"Savings", cli.FormatMoney(cur, a.dashStats.Savings), ""},
	}
	b.WriteString(components.StatCardRow(cards, cw))
	b.WriteString("\n")

	b.WriteString(components.ContentCard(
		"Recent Transactions",
		a.renderTransactionList(a.dashRecent, components.CardInnerWidth(cw), 8),
		cw,
	))

	return b.String()
}

// renderTransactionList renders up to max rows: date, title, category, and a
// signed colored amount.
func (a App) renderTransactionList(txs []api.Expense, width, max int) string {
	t := theme.Active
	cur := a.cfg.General.Currency

	if len(txs) == 0 {
		return lipgloss.NewStyle().Foreground(t.TextDim).Render("No transactions yet.")
	}

	dateStyle := lipgloss.NewStyle().Foreground(t.TextDim)
	titleStyle := lipgloss.NewStyle().Foreground(t.TextPrimary)
	catStyle := lipgloss.NewStyle().Foreground(t.TextMuted)
	incomeStyle := lipgloss.NewStyle().Foreground(t.Green)
	expenseStyle := lipgloss.NewStyle().Foreground(t.Red)

	titleW := width - 36
	if titleW < 10 {
		titleW = 10
	}

	var b strings.Builder
	for i, tx := range txs {
		if i >= max {
			break
		}
		amount := cli.FormatSignedMoney(cur, -absAmount(tx))
		amtStyle := expenseStyle
		if tx.Type == api.TypeIncome {
			amount = cli.FormatSignedMoney(cur, absAmount(tx))
			amtStyle = incomeStyle
		}

		b.WriteString(fmt.Sprintf("%s  %s %s %s\n",
			dateStyle.Render(tx.Date),
			titleStyle.Render(fmt.Sprintf("%-*s", titleW, cli.Truncate(tx.Title, titleW))),
			catStyle.Render(fmt.Sprintf("%-12s", cli.Truncate(tx.Category, 12))),
			amtStyle.Render(fmt.Sprintf("%10s", amount)),
		))
	}
	return strings.TrimRight(b.String(), "\n")
}

func absAmount(tx api.Expense) float64 {
	if tx.Amount < 0 {
		return -tx.Amount
	}
	return tx.Amount
}
