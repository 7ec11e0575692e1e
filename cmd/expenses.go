package cmd

import (
	"context"
	"fmt"
	"strconv"

	"github.com/balaji-matta18/spendbuddy/internal/api"
	"github.com/balaji-matta18/spendbuddy/internal/cli"
	"github.com/balaji-matta18/spendbuddy/internal/config"
	"github.com/balaji-matta18/spendbuddy/internal/store"

	"github.com/spf13/cobra"
)

var (
	flagTxStart       string
	flagTxEnd         string
	flagTxPaymentType string
	flagTxBudgetID    int64
	flagTxSubcatID    int64
	flagTxCurrent     bool

	flagTxTitle    string
	flagTxAmount   float64
	flagTxCategory string
	flagTxSubcat   string
	flagTxPayment  string
	flagTxType     string
	flagTxDate     string
)

var expensesCmd = &cobra.Command{
	Use:     "expenses",
	Aliases: []string{"tx"},
	Short:   "List and manage transactions",
	RunE:    runExpensesList,
}

var expensesAddCmd = &cobra.Command{
	Use:   "add",
	Short: "Record a new transaction",
	RunE:  runExpensesAdd,
}

var expensesEditCmd = &cobra.Command{
	Use:   "edit <id>",
	Short: "Update an existing transaction",
	Args:  cobra.ExactArgs(1),
	RunE:  runExpensesEdit,
}

var expensesRmCmd = &cobra.Command{
	Use:   "rm <id>",
	Short: "Delete a transaction",
	Args:  cobra.ExactArgs(1),
	RunE:  runExpensesRm,
}

func init() {
	expensesCmd.Flags().BoolVar(&flagTxCurrent, "current", false, "Only the active period")
	expensesCmd.Flags().StringVar(&flagTxStart, "start", "", "Start date (YYYY-MM-DD)")
	expensesCmd.Flags().StringVar(&flagTxEnd, "end", "", "End date (YYYY-MM-DD)")
	expensesCmd.Flags().StringVar(&flagTxPaymentType, "payment-type", "", "Filter by payment type")
	expensesCmd.Flags().Int64Var(&flagTxBudgetID, "budget-id", 0, "Filter by budget id")
	expensesCmd.Flags().Int64Var(&flagTxSubcatID, "subcategory-id", 0, "Filter by subcategory id")

	for _, c := range []*cobra.Command{expensesAddCmd, expensesEditCmd} {
		c.Flags().StringVar(&flagTxTitle, "title", "", "Transaction title")
		c.Flags().Float64Var(&flagTxAmount, "amount", 0, "Amount")
		c.Flags().StringVar(&flagTxCategory, "category", "", "Category name")
		c.Flags().StringVar(&flagTxSubcat, "subcategory", "", "Subcategory name")
		c.Flags().StringVar(&flagTxPayment, "payment", "", "Payment type")
		c.Flags().StringVar(&flagTxType, "type", "expense", "Transaction kind (expense or income)")
		c.Flags().StringVar(&flagTxDate, "date", "", "Date (YYYY-MM-DD)")
	}

	expensesCmd.AddCommand(expensesAddCmd, expensesEditCmd, expensesRmCmd)
	rootCmd.AddCommand(expensesCmd)
}

func runExpensesList(_ *cobra.Command, _ []string) error {
	env, err := newEnv()
	if err != nil {
		return err
	}
	if err := env.requireSession(); err != nil {
		return err
	}

	ctx := context.Background()

	var txs []api.Expense
	switch {
	case flagOffline:
		snap, err := store.Open(config.SnapshotPath())
		if err != nil {
			return fmt.Errorf("offline snapshot unavailable: %w", err)
		}
		defer snap.Close()
		txs, err = snap.LoadExpenses()
		if err != nil {
			return err
		}
	case flagTxCurrent:
		txs, err = env.client.CurrentMonthExpenses(ctx)
		if err != nil {
			return finishErr(err)
		}
	default:
		txs, err = env.client.ListExpenses(ctx, api.ExpenseFilter{
			StartDate:     flagTxStart,
			EndDate:       flagTxEnd,
			PaymentType:   flagTxPaymentType,
			BudgetID:      flagTxBudgetID,
			SubcategoryID: flagTxSubcatID,
		})
		if err != nil {
			return finishErr(err)
		}
	}

	if len(txs) == 0 {
		fmt.Println("No transactions found.")
		return nil
	}

	cur := env.cfg.General.Currency
	rows := make([][]string, 0, len(txs))
	for _, tx := range txs {
		amount := cli.FormatSignedMoney(cur, -abs(tx.Amount))
		if tx.Type == api.TypeIncome {
			amount = cli.FormatSignedMoney(cur, abs(tx.Amount))
		}
		rows = append(rows, []string{
			strconv.FormatInt(tx.ID, 10),
			tx.Date,
			cli.Truncate(tx.Title, 28),
			tx.Category,
			tx.PaymentType,
			amount,
		})
	}

	fmt.Print(cli.RenderTable(cli.Table{
		Headers: []string{"ID", "Date", "Title", "Category", "Payment", "Amount"},
		Rows:    rows,
	}))
	return nil
}

func runExpensesAdd(cmd *cobra.Command, _ []string) error {
	env, err := newEnv()
	if err != nil {
		return err
	}
	if err := env.requireSession(); err != nil {
		return err
	}

	e, err := expenseFromFlags(cmd, api.Expense{Type: api.TypeExpense})
	if err != nil {
		return err
	}
	if e.Title == "" {
		return fmt.Errorf("--title is required")
	}

	created, err := env.client.CreateExpense(context.Background(), e)
	if err != nil {
		return finishErr(err)
	}

	infof("Recorded %q (id %d)", created.Title, created.ID)
	return nil
}

func runExpensesEdit(cmd *cobra.Command, args []string) error {
	env, err := newEnv()
	if err != nil {
		return err
	}
	if err := env.requireSession(); err != nil {
		return err
	}

	id, err := strconv.ParseInt(args[0], 10, 64)
	if err != nil {
		return fmt.Errorf("invalid transaction id %q", args[0])
	}

	ctx := context.Background()
	existing, err := env.client.GetExpense(ctx, id)
	if err != nil {
		return finishErr(err)
	}

	e, err := expenseFromFlags(cmd, existing)
	if err != nil {
		return err
	}

	updated, err := env.client.UpdateExpense(ctx, id, e)
	if err != nil {
		return finishErr(err)
	}

	infof("Updated %q (id %d)", updated.Title, updated.ID)
	return nil
}

func runExpensesRm(_ *cobra.Command, args []string) error {
	env, err := newEnv()
	if err != nil {
		return err
	}
	if err := env.requireSession(); err != nil {
		return err
	}

	id, err := strconv.ParseInt(args[0], 10, 64)
	if err != nil {
		return fmt.Errorf("invalid transaction id %q", args[0])
	}

	if err := env.client.DeleteExpense(context.Background(), id); err != nil {
		return finishErr(err)
	}

	infof("Deleted transaction %d", id)
	return nil
}

// expenseFromFlags overlays set flags onto base, so edit keeps untouched
// fields and add starts from zero values.
func expenseFromFlags(cmd *cobra.Command, base api.Expense) (api.Expense, error) {
	if cmd.Flags().Changed("title") {
		base.Title = flagTxTitle
	}
	if cmd.Flags().Changed("amount") {
		base.Amount = flagTxAmount
	}
	if cmd.Flags().Changed("category") {
		base.Category = flagTxCategory
	}
	if cmd.Flags().Changed("subcategory") {
		base.Subcategory = flagTxSubcat
	}
	if cmd.Flags().Changed("payment") {
		base.PaymentType = flagTxPayment
	}
	if cmd.Flags().Changed("type") {
		if flagTxType != api.TypeExpense && flagTxType != api.TypeIncome {
			return base, fmt.Errorf("--type must be %q or %q", api.TypeExpense, api.TypeIncome)
		}
		base.Type = flagTxType
	}
	if cmd.Flags().Changed("date") {
		base.Date = flagTxDate
	}
	return base, nil
}
