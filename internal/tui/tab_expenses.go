package tui

import "github.com/balaji-matta18/spendbuddy/internal/tui/components"

func (a App) renderExpensesTab() string {
	cw := a.contentWidth()
	rows := a.contentHeight() - 4
	if rows < 4 {
		rows = 4
	}

	return components.ContentCard(
		"Current Month",
		a.renderTransactionList(a.expenses, components.CardInnerWidth(cw), rows),
		cw,
	)
}
