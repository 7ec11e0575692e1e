package cmd

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/balaji-matta18/spendbuddy/internal/api"
	"github.com/balaji-matta18/spendbuddy/internal/cli"
	"github.com/balaji-matta18/spendbuddy/internal/config"
	"github.com/balaji-matta18/spendbuddy/internal/metrics"
	"github.com/balaji-matta18/spendbuddy/internal/store"

	"github.com/spf13/cobra"
)

var dashboardCmd = &cobra.Command{
	Use:   "dashboard",
	Short: "Current period stats and recent transactions",
	RunE:  runDashboard,
}

func init() {
	rootCmd.AddCommand(dashboardCmd)
}

func runDashboard(_ *cobra.Command, _ []string) error {
	env, err := newEnv()
	if err != nil {
		return err
	}
	if err := env.requireSession(); err != nil {
		return err
	}

	ctx := context.Background()
	cur := env.cfg.General.Currency

	txs, err := loadCurrentExpenses(ctx, env)
	if err != nil {
		return finishErr(err)
	}

	stats := metrics.ComputeStats(txs)

	// Previous period for deltas; a failure here only drops the delta column.
	var deltas metrics.Deltas
	sess, _ := env.store.Current()
	prevStart, prevEnd := metrics.PreviousPeriod(sess.MonthStartDay, time.Now())
	if !flagOffline {
		prevTxs, err := env.client.ListExpenses(ctx, api.ExpenseFilter{
			StartDate: metrics.DateKey(prevStart),
			EndDate:   metrics.DateKey(prevEnd.AddDate(0, 0, -1)),
		})
		if err == nil {
			deltas = metrics.ComputeDeltas(stats, metrics.ComputeStats(prevTxs))
		} else {
			infof("  previous period unavailable: %v", err)
		}
	}

	// The backend pre-aggregates the same block; prefer its delta strings when
	// it answers within a short deadline.
	var server api.DashboardStats
	if !flagOffline {
		statsCtx, cancel := context.WithTimeout(ctx, 4*time.Second)
		if s, err := env.client.FetchDashboardStats(statsCtx); err == nil {
			server = s
		}
		cancel()
	}
	deltaCol := func(server string, local float64) string {
		if server != "" {
			return server
		}
		return cli.FormatDelta(local)
	}

	fmt.Println()
	fmt.Println(cli.RenderTitle("SPENDBUDDY  Dashboard"))
	fmt.Println()

	table := cli.Table{
		Headers: []string{"Metric", "Amount", "vs prev"},
		Rows: [][]string{
			{"Total Balance", cli.FormatMoney(cur, stats.TotalBalance), deltaCol(server.BalanceChange, deltas.Balance)},
			{"Income", cli.FormatMoney(cur, stats.Income), cli.FormatDelta(deltas.Income)},
			{"Expenses", cli.FormatMoney(cur, stats.Expenses), deltaCol(server.ExpensesChange, deltas.Expenses)},
			{"Savings", cli.FormatMoney(cur, stats.Savings), deltaCol(server.SavingsChange, deltas.Savings)},
		},
	}
	fmt.Print(cli.RenderTable(table))

	recent := txs
	if !flagOffline {
		if r, err := env.client.RecentTransactions(ctx); err == nil {
			recent = r
		}
	}
	if len(recent) > 0 {
		fmt.Println()
		printExpenseTable("Recent Transactions", recent, 8, cur)
	}

	return nil
}

// loadCurrentExpenses fetches the active period's transactions, writing
// through to the snapshot; with --offline it reads the snapshot instead.
func loadCurrentExpenses(ctx context.Context, env *appEnv) ([]api.Expense, error) {
	snap, snapErr := store.Open(config.SnapshotPath())
	if snapErr == nil {
		defer snap.Close()
	}

	if flagOffline {
		if snapErr != nil {
			return nil, fmt.Errorf("offline snapshot unavailable: %w", snapErr)
		}
		if at, ok := snap.FetchedAt("expenses"); ok {
			infof("  Serving snapshot from %s", at.Local().Format("2006-01-02 15:04"))
		}
		return snap.LoadExpenses()
	}

	txs, err := env.client.CurrentMonthExpenses(ctx)
	if err != nil {
		// Read-only view: fall back to the snapshot unless the session died.
		if snapErr == nil && !errors.Is(err, api.ErrUnauthorized) {
			if cached, cerr := snap.LoadExpenses(); cerr == nil && len(cached) > 0 {
				infof("  Backend unreachable (%v); serving snapshot", err)
				return cached, nil
			}
		}
		return nil, err
	}
	if snapErr == nil {
		if err := snap.SaveExpenses(txs); err != nil {
			infof("  snapshot write failed: %v", err)
		}
	}
	return txs, nil
}

// printExpenseTable renders up to max transactions as a bordered table.
func printExpenseTable(title string, txs []api.Expense, max int, currency string) {
	rows := make([][]string, 0, len(txs))
	for i, tx := range txs {
		if max > 0 && i >= max {
			break
		}
		amount := cli.FormatSignedMoney(currency, -abs(tx.Amount))
		if tx.Type == api.TypeIncome {
			amount = cli.FormatSignedMoney(currency, abs(tx.Amount))
		}
		rows = append(rows, []string{
			tx.Date,
			cli.Truncate(tx.Title, 28),
			tx.Category,
			amount,
		})
	}

	fmt.Print(cli.RenderTable(cli.Table{
		Title:   title,
		Headers: []string{"Date", "Title", "Category", "Amount"},
		Rows:    rows,
	}))
}

func abs(f float64) float64 {
	if f < 0 {
		return -f
	}
	return f
}
