package cmd

import (
	"context"
	"fmt"
	"strconv"

	"github.com/balaji-matta18/spendbuddy/internal/api"
	"github.com/balaji-matta18/spendbuddy/internal/cli"

	"github.com/spf13/cobra"
)

var (
	flagSubcatBudgetID int64
)

var subcategoriesCmd = &cobra.Command{
	Use:     "subcategories",
	Aliases: []string{"subcats"},
	Short:   "List and manage subcategories",
	RunE:    runSubcategoriesList,
}

var subcategoriesAddCmd = &cobra.Command{
	Use:   "add <name>",
	Short: "Create a subcategory under a budget",
	Args:  cobra.ExactArgs(1),
	RunE:  runSubcategoriesAdd,
}

var subcategoriesRenameCmd = &cobra.Command{
	Use:   "rename <id> <name>",
	Short: "Rename a subcategory",
	Args:  cobra.ExactArgs(2),
	RunE:  runSubcategoriesRename,
}

var subcategoriesRmCmd = &cobra.Command{
	Use:   "rm <id>",
	Short: "Delete a subcategory",
	Args:  cobra.ExactArgs(1),
	RunE:  runSubcategoriesRm,
}

func init() {
	subcategoriesCmd.PersistentFlags().Int64Var(&flagSubcatBudgetID, "budget", 0, "Owning budget id")

	subcategoriesCmd.AddCommand(subcategoriesAddCmd, subcategoriesRenameCmd, subcategoriesRmCmd)
	rootCmd.AddCommand(subcategoriesCmd)
}

func runSubcategoriesList(_ *cobra.Command, _ []string) error {
	env, err := newEnv()
	if err != nil {
		return err
	}
	if err := env.requireSession(); err != nil {
		return err
	}

	subs, err := env.client.ListSubcategories(context.Background(), flagSubcatBudgetID)
	if err != nil {
		return finishErr(err)
	}

	if len(subs) == 0 {
		fmt.Println("No subcategories found.")
		return nil
	}

	rows := make([][]string, 0, len(subs))
	for _, s := range subs {
		rows = append(rows, []string{
			strconv.FormatInt(s.ID, 10),
			s.Name,
			strconv.FormatInt(s.BudgetID, 10),
		})
	}

	fmt.Print(cli.RenderTable(cli.Table{
		Headers: []string{"ID", "Name", "Budget ID"},
		Rows:    rows,
	}))
	return nil
}

func runSubcategoriesAdd(_ *cobra.Command, args []string) error {
	env, err := newEnv()
	if err != nil {
		return err
	}
	if err := env.requireSession(); err != nil {
		return err
	}
	if flagSubcatBudgetID == 0 {
		return fmt.Errorf("--budget is required")
	}

	created, err := env.client.CreateSubcategory(context.Background(), api.Subcategory{
		Name:     args[0],
		BudgetID: flagSubcatBudgetID,
	})
	if err != nil {
		return finishErr(err)
	}

	infof("Created subcategory %q (id %d)", created.Name, created.ID)
	return nil
}

func runSubcategoriesRename(_ *cobra.Command, args []string) error {
	env, err := newEnv()
	if err != nil {
		return err
	}
	if err := env.requireSession(); err != nil {
		return err
	}

	id, err := strconv.ParseInt(args[0], 10, 64)
	if err != nil {
		return fmt.Errorf("invalid subcategory id %q", args[0])
	}

	ctx := context.Background()
	sub, err := env.client.GetSubcategory(ctx, id)
	if err != nil {
		return finishErr(err)
	}

	sub.Name = args[1]
	if _, err := env.client.UpdateSubcategory(ctx, id, sub); err != nil {
		return finishErr(err)
	}

	infof("Renamed subcategory %d to %q", id, args[1])
	return nil
}

func runSubcategoriesRm(_ *cobra.Command, args []string) error {
	env, err := newEnv()
	if err != nil {
		return err
	}
	if err := env.requireSession(); err != nil {
		return err
	}

	id, err := strconv.ParseInt(args[0], 10, 64)
	if err != nil {
		return fmt.Errorf("invalid subcategory id %q", args[0])
	}

	if err := env.client.DeleteSubcategory(context.Background(), id); err != nil {
		return finishErr(err)
	}

	infof("Deleted subcategory %d", id)
	return nil
}
