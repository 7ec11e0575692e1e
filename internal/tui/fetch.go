package tui

import (
	"context"

	"github.com/balaji-matta18/spendbuddy/internal/api"
	"github.com/balaji-matta18/spendbuddy/internal/export"

	tea "github.com/charmbracelet/bubbletea"
)

// Every fetch message carries the sequence number it was issued under.
// Responses from a superseded request must not overwrite fresher state, so
// the update loop drops any message whose seq is stale.

type restoredMsg struct{}

type dashboardMsg struct {
	seq    int
	txs    []api.Expense
	recent []api.Expense
	err    error
}

type expensesMsg struct {
	seq int
	txs []api.Expense
	err error
}

type budgetsMsg struct {
	seq     int
	budgets []api.Budget
	cats    []api.Category
	txs     []api.Expense
	err     error
}

type reportsMsg struct {
	seq int
	rep export.Report
	err error
}

// restoreCmd runs the one-time session restore. Until it completes the app
// stays in the loading state and the guard shows a placeholder.
func (a App) restoreCmd() tea.Cmd {
	store := a.store
	return func() tea.Msg {
		store.Restore()
		return restoredMsg{}
	}
}

func (a App) fetchDashboardCmd(seq int) tea.Cmd {
	c := a.client
	return func() tea.Msg {
		ctx := context.Background()
		txs, err := c.CurrentMonthExpenses(ctx)
		if err != nil {
			return dashboardMsg{seq: seq, err: err}
		}
		recent, err := c.RecentTransactions(ctx)
		if err != nil {
			return dashboardMsg{seq: seq, err: err}
		}
		return dashboardMsg{seq: seq, txs: txs, recent: recent}
	}
}

func (a App) fetchExpensesCmd(seq int) tea.Cmd {
	c := a.client
	return func() tea.Msg {
		txs, err := c.CurrentMonthExpenses(context.Background())
		return expensesMsg{seq: seq, txs: txs, err: err}
	}
}

func (a App) fetchBudgetsCmd(seq int) tea.Cmd {
	c := a.client
	return func() tea.Msg {
		ctx := context.Background()
		budgets, err := c.ListBudgets(ctx)
		if err != nil {
			return budgetsMsg{seq: seq, err: err}
		}
		cats, err := c.ListCategories(ctx)
		if err != nil {
			return budgetsMsg{seq: seq, err: err}
		}
		txs, err := c.CurrentMonthExpenses(ctx)
		if err != nil {
			return budgetsMsg{seq: seq, err: err}
		}
		return budgetsMsg{seq: seq, budgets: budgets, cats: cats, txs: txs}
	}
}

func (a App) fetchReportsCmd(seq int, rng string) tea.Cmd {
	c := a.client
	return func() tea.Msg {
		ctx := context.Background()
		rep := export.Report{Range: rng}
		var err error
		if rep.ByCategory, err = c.ExpenseByCategory(ctx, rng); err != nil {
			return reportsMsg{seq: seq, err: err}
		}
		if rep.Monthly, err = c.MonthlySummary(ctx, rng); err != nil {
			return reportsMsg{seq: seq, err: err}
		}
		if rep.ByPaymentType, err = c.PaymentTypeSummary(ctx, rng); err != nil {
			return reportsMsg{seq: seq, err: err}
		}
		return reportsMsg{seq: seq, rep: rep}
	}
}
