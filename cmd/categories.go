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
	flagCatName        string
	flagCatDescription string
)

var categoriesCmd = &cobra.Command{
	Use:   "categories",
	Short: "List and manage spending categories",
	RunE:  runCategoriesList,
}

var categoriesAddCmd = &cobra.Command{
	Use:   "add <name>",
	Short: "Create a category",
	Args:  cobra.ExactArgs(1),
	RunE:  runCategoriesAdd,
}

var categoriesEditCmd = &cobra.Command{
	Use:   "edit <id>",
	Short: "Update a category's name or description",
	Args:  cobra.ExactArgs(1),
	RunE:  runCategoriesEdit,
}

var categoriesRmCmd = &cobra.Command{
	Use:   "rm <id>",
	Short: "Delete a category",
	Args:  cobra.ExactArgs(1),
	RunE:  runCategoriesRm,
}

func init() {
	categoriesAddCmd.Flags().StringVar(&flagCatDescription, "description", "", "Category description")
	categoriesEditCmd.Flags().StringVar(&flagCatName, "name", "", "New category name")
	categoriesEditCmd.Flags().StringVar(&flagCatDescription, "description", "", "New category description")

	categoriesCmd.AddCommand(categoriesAddCmd, categoriesEditCmd, categoriesRmCmd)
	rootCmd.AddCommand(categoriesCmd)
}

func runCategoriesList(_ *cobra.Command, _ []string) error {
	env, err := newEnv()
	if err != nil {
		return err
	}
	if err := env.requireSession(); err != nil {
		return err
	}

	var cats []api.Category
	if flagOffline {
		snap, err := store.Open(config.SnapshotPath())
		if err != nil {
			return fmt.Errorf("offline snapshot unavailable: %w", err)
		}
		defer snap.Close()
		cats, err = snap.LoadCategories()
		if err != nil {
			return err
		}
	} else {
		cats, err = env.client.ListCategories(context.Background())
		if err != nil {
			return finishErr(err)
		}
		if snap, err := store.Open(config.SnapshotPath()); err == nil {
			defer snap.Close()
			if err := snap.SaveCategories(cats); err != nil {
				infof("  snapshot write failed: %v", err)
			}
		}
	}

	if len(cats) == 0 {
		fmt.Println("No categories found.")
		return nil
	}

	rows := make([][]string, 0, len(cats))
	for _, c := range cats {
		rows = append(rows, []string{
			strconv.FormatInt(c.ID, 10),
			c.Name,
			cli.Truncate(c.Description, 40),
		})
	}

	fmt.Print(cli.RenderTable(cli.Table{
		Headers: []string{"ID", "Name", "Description"},
		Rows:    rows,
	}))
	return nil
}

func runCategoriesAdd(_ *cobra.Command, args []string) error {
	env, err := newEnv()
	if err != nil {
		return err
	}
	if err := env.requireSession(); err != nil {
		return err
	}

	created, err := env.client.CreateCategory(context.Background(), api.Category{
		Name:        args[0],
		Description: flagCatDescription,
	})
	if err != nil {
		return finishErr(err)
	}

	infof("Created category %q (id %d)", created.Name, created.ID)
	return nil
}

func runCategoriesEdit(cmd *cobra.Command, args []string) error {
	env, err := newEnv()
	if err != nil {
		return err
	}
	if err := env.requireSession(); err != nil {
		return err
	}

	id, err := strconv.ParseInt(args[0], 10, 64)
	if err != nil {
		return fmt.Errorf("invalid category id %q", args[0])
	}

	ctx := context.Background()
	cat, err := env.client.GetCategory(ctx, id)
	if err != nil {
		return finishErr(err)
	}

	if cmd.Flags().Changed("name") {
		cat.Name = flagCatName
	}
	if cmd.Flags().Changed("description") {
		cat.Description = flagCatDescription
	}
	if _, err := env.client.UpdateCategory(ctx, id, cat); err != nil {
		return finishErr(err)
	}

	infof("Updated category %d (%s)", id, cat.Name)
	return nil
}

func runCategoriesRm(_ *cobra.Command, args []string) error {
	env, err := newEnv()
	if err != nil {
		return err
	}
	if err := env.requireSession(); err != nil {
		return err
	}

	id, err := strconv.ParseInt(args[0], 10, 64)
	if err != nil {
		return fmt.Errorf("invalid category id %q", args[0])
	}

	if err := env.client.DeleteCategory(context.Background(), id); err != nil {
		return finishErr(err)
	}

	infof("Deleted category %d", id)
	return nil
}
