package cmd

import (
	"context"

	"github.com/balaji-matta18/spendbuddy/internal/config"
	"github.com/balaji-matta18/spendbuddy/internal/store"

	"github.com/spf13/cobra"
)

var syncCmd = &cobra.Command{
	Use:   "sync",
	Short: "Refresh the offline snapshot from the backend",
	RunE:  runSync,
}

func init() {
	rootCmd.AddCommand(syncCmd)
}

func runSync(_ *cobra.Command, _ []string) error {
	env, err := newEnv()
	if err != nil {
		return err
	}
	if err := env.requireSession(); err != nil {
		return err
	}

	ctx := context.Background()

	txs, err := env.client.CurrentMonthExpenses(ctx)
	if err != nil {
		return finishErr(err)
	}
	cats, err := env.client.ListCategories(ctx)
	if err != nil {
		return finishErr(err)
	}
	budgets, err := env.client.BudgetsForMonth(ctx, "")
	if err != nil {
		return finishErr(err)
	}

	snap, err := store.Open(config.SnapshotPath())
	if err != nil {
		return err
	}
	defer snap.Close()

	if err := snap.SaveExpenses(txs); err != nil {
		return err
	}
	if err := snap.SaveCategories(cats); err != nil {
		return err
	}
	if err := snap.SaveBudgets(budgets); err != nil {
		return err
	}

	infof("Snapshot refreshed: %d transactions, %d categories, %d budgets.",
		len(txs), len(cats), len(budgets))
	return nil
}
