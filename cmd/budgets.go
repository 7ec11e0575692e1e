package cmd

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/balaji-matta18/spendbuddy/internal/api"
	"github.com/balaji-matta18/spendbuddy/internal/cli"
	"github.com/balaji-matta18/spendbuddy/internal/config"
	"github.com/balaji-matta18/spendbuddy/internal/metrics"
	"github.com/balaji-matta18/spendbuddy/internal/store"

	"github.com/spf13/cobra"
)

var (
	flagBudgetMonth     string
	flagBudgetSimulated bool
)

var budgetsCmd = &cobra.Command{
	Use:   "budgets",
	Short: "Per-category budgets and spend",
	RunE:  runBudgetsList,
}

var budgetsSetCmd = &cobra.Command{
	Use:   "set <category> <amount>",
	Short: "Set a category's budget for the current month",
	Args:  cobra.ExactArgs(2),
	RunE:  runBudgetsSet,
}

var budgetsRmCmd = &cobra.Command{
	Use:   "rm <id>",
	Short: "Delete a budget",
	Args:  cobra.ExactArgs(1),
	RunE:  runBudgetsRm,
}

var budgetsRolloverCmd = &cobra.Command{
	Use:   "rollover",
	Short: "Copy last period's budgets into the current period",
	RunE:  runBudgetsRollover,
}

var budgetsSummaryCmd = &cobra.Command{
	Use:   "summary",
	Short: "Backend-computed spend per category for the current period",
	RunE:  runBudgetsSummary,
}

func init() {
	budgetsCmd.Flags().StringVar(&flagBudgetMonth, "month", "", "Month to show (YYYY-MM, default current)")
	budgetsCmd.Flags().BoolVar(&flagBudgetSimulated, "simulated", false, "Estimate budgets from spend instead of backend values")

	budgetsCmd.AddCommand(budgetsSetCmd, budgetsRmCmd, budgetsRolloverCmd, budgetsSummaryCmd)
	rootCmd.AddCommand(budgetsCmd)
}

func runBudgetsList(_ *cobra.Command, _ []string) error {
	env, err := newEnv()
	if err != nil {
		return err
	}
	if err := env.requireSession(); err != nil {
		return err
	}

	ctx := context.Background()

	cats, budgets, txs, err := loadBudgetData(ctx, env)
	if err != nil {
		return finishErr(err)
	}

	strategy := metrics.BackendBudget(budgets)
	if flagBudgetSimulated {
		strategy = metrics.SimulatedBudget
	}
	summaries := metrics.BudgetSummaries(cats, txs, strategy)

	if len(summaries) == 0 {
		fmt.Println("No categories found.")
		return nil
	}

	cur := env.cfg.General.Currency
	fmt.Println()
	fmt.Println(cli.RenderTitle("SPENDBUDDY  Budgets"))
	fmt.Println()

	for _, s := range summaries {
		pct := metrics.PercentUsed(s.Spent, s.Budget)
		line := fmt.Sprintf("  %-18s %s", cli.Truncate(s.Category, 18), cli.RenderBudgetBar(pct, 24))
		if tag := cli.OverBudgetTag(s.OverBudget); tag != "" {
			line += " " + tag
		}
		fmt.Println(line)
		fmt.Printf("  %-18s %s spent of %s, %s left\n\n", "",
			cli.FormatMoney(cur, s.Spent),
			cli.FormatMoney(cur, s.Budget),
			cli.FormatMoney(cur, s.Remaining))
	}

	maybeSuggestRollover(env)
	return nil
}

// loadBudgetData gathers categories, budgets, and the active period's
// transactions, from the snapshot when --offline is set.
func loadBudgetData(ctx context.Context, env *appEnv) ([]api.Category, []api.Budget, []api.Expense, error) {
	if flagOffline {
		snap, err := store.Open(config.SnapshotPath())
		if err != nil {
			return nil, nil, nil, fmt.Errorf("offline snapshot unavailable: %w", err)
		}
		defer snap.Close()

		cats, err := snap.LoadCategories()
		if err != nil {
			return nil, nil, nil, err
		}
		budgets, err := snap.LoadBudgets()
		if err != nil {
			return nil, nil, nil, err
		}
		txs, err := snap.LoadExpenses()
		if err != nil {
			return nil, nil, nil, err
		}
		return cats, budgets, txs, nil
	}

	cats, err := env.client.ListCategories(ctx)
	if err != nil {
		return nil, nil, nil, err
	}
	var budgets []api.Budget
	if flagBudgetMonth == "" {
		budgets, err = env.client.ListBudgets(ctx)
	} else {
		budgets, err = env.client.BudgetsForMonth(ctx, flagBudgetMonth)
	}
	if err != nil {
		return nil, nil, nil, err
	}
	txs, err := env.client.CurrentMonthExpenses(ctx)
	if err != nil {
		return nil, nil, nil, err
	}

	if snap, err := store.Open(config.SnapshotPath()); err == nil {
		defer snap.Close()
		for _, werr := range []error{
			snap.SaveCategories(cats),
			snap.SaveBudgets(budgets),
			snap.SaveExpenses(txs),
		} {
			if werr != nil {
				infof("  snapshot write failed: %v", werr)
				break
			}
		}
	}

	return cats, budgets, txs, nil
}

// maybeSuggestRollover prints a hint when the period boundary has passed and
// the current period has no budgets yet.
func maybeSuggestRollover(env *appEnv) {
	if flagOffline || flagBudgetMonth != "" {
		return
	}
	sess, ok := env.store.Current()
	if !ok {
		return
	}

	ctx := context.Background()
	now := time.Now()
	current, err := env.client.BudgetsForMonth(ctx, metrics.MonthKey(now))
	if err != nil {
		return
	}
	prev, err := env.client.BudgetsForMonth(ctx, metrics.MonthKey(now.AddDate(0, -1, 0)))
	if err != nil {
		return
	}

	if metrics.RolloverDue(sess.MonthStartDay, now.Day(), len(current), len(prev)) {
		infof("  A new period has started. Run `spendbuddy budgets rollover` to carry budgets forward.")
	}
}

func runBudgetsSet(_ *cobra.Command, args []string) error {
	env, err := newEnv()
	if err != nil {
		return err
	}
	if err := env.requireSession(); err != nil {
		return err
	}

	amount, err := strconv.ParseFloat(args[1], 64)
	if err != nil || amount < 0 {
		return fmt.Errorf("invalid amount %q", args[1])
	}

	ctx := context.Background()
	category := args[0]
	month := metrics.MonthKey(time.Now())

	// Update in place when the category already has a budget this month.
	existing, err := env.client.BudgetsForMonth(ctx, month)
	if err != nil {
		return finishErr(err)
	}
	for _, b := range existing {
		if b.Category == category {
			b.BudgetAmount = amount
			if _, err := env.client.UpdateBudget(ctx, b.ID, b); err != nil {
				return finishErr(err)
			}
			infof("Updated %s budget to %s", category, cli.FormatMoney(env.cfg.General.Currency, amount))
			return nil
		}
	}

	created, err := env.client.CreateBudget(ctx, api.Budget{
		Category:     category,
		BudgetAmount: amount,
		Month:        month,
	})
	if err != nil {
		return finishErr(err)
	}

	infof("Set %s budget to %s (id %d)", category,
		cli.FormatMoney(env.cfg.General.Currency, created.BudgetAmount), created.ID)
	return nil
}

func runBudgetsRm(_ *cobra.Command, args []string) error {
	env, err := newEnv()
	if err != nil {
		return err
	}
	if err := env.requireSession(); err != nil {
		return err
	}

	id, err := strconv.ParseInt(args[0], 10, 64)
	if err != nil {
		return fmt.Errorf("invalid budget id %q", args[0])
	}

	if err := env.client.DeleteBudget(context.Background(), id); err != nil {
		return finishErr(err)
	}

	infof("Deleted budget %d", id)
	return nil
}

func runBudgetsSummary(_ *cobra.Command, _ []string) error {
	env, err := newEnv()
	if err != nil {
		return err
	}
	if err := env.requireSession(); err != nil {
		return err
	}

	items, err := env.client.BudgetSummary(context.Background())
	if err != nil {
		return finishErr(err)
	}

	if len(items) == 0 {
		fmt.Println("No spend recorded this period.")
		return nil
	}

	cur := env.cfg.General.Currency
	rows := make([][]string, 0, len(items))
	for _, item := range items {
		rows = append(rows, []string{item.Category, cli.FormatMoney(cur, item.Spent)})
	}

	fmt.Print(cli.RenderTable(cli.Table{
		Title:   "Spend per Category",
		Headers: []string{"Category", "Spent"},
		Rows:    rows,
	}))
	return nil
}

func runBudgetsRollover(_ *cobra.Command, _ []string) error {
	env, err := newEnv()
	if err != nil {
		return err
	}
	if err := env.requireSession(); err != nil {
		return err
	}

	if err := env.client.RolloverBudgets(context.Background()); err != nil {
		return finishErr(err)
	}

	infof("Budgets carried forward into the current period.")
	return nil
}
