package cmd

import (
	"context"
	"fmt"
	"strconv"

	"github.com/balaji-matta18/spendbuddy/internal/api"
	"github.com/balaji-matta18/spendbuddy/internal/cli"

	"github.com/spf13/cobra"
)

var paymentTypesCmd = &cobra.Command{
	Use:     "payment-types",
	Aliases: []string{"paymenttypes", "pt"},
	Short:   "List and manage payment types",
	RunE:    runPaymentTypesList,
}

var paymentTypesAddCmd = &cobra.Command{
	Use:   "add <name>",
	Short: "Create a payment type",
	Args:  cobra.ExactArgs(1),
	RunE:  runPaymentTypesAdd,
}

var paymentTypesRenameCmd = &cobra.Command{
	Use:   "rename <id> <name>",
	Short: "Rename a payment type",
	Args:  cobra.ExactArgs(2),
	RunE:  runPaymentTypesRename,
}

var paymentTypesRmCmd = &cobra.Command{
	Use:   "rm <id>",
	Short: "Delete a payment type",
	Args:  cobra.ExactArgs(1),
	RunE:  runPaymentTypesRm,
}

func init() {
	paymentTypesCmd.AddCommand(paymentTypesAddCmd, paymentTypesRenameCmd, paymentTypesRmCmd)
	rootCmd.AddCommand(paymentTypesCmd)
}

func runPaymentTypesList(_ *cobra.Command, _ []string) error {
	env, err := newEnv()
	if err != nil {
		return err
	}
	if err := env.requireSession(); err != nil {
		return err
	}

	types, err := env.client.ListPaymentTypes(context.Background())
	if err != nil {
		return finishErr(err)
	}

	if len(types) == 0 {
		fmt.Println("No payment types found.")
		return nil
	}

	rows := make([][]string, 0, len(types))
	for _, p := range types {
		rows = append(rows, []string{strconv.FormatInt(p.ID, 10), p.Name})
	}

	fmt.Print(cli.RenderTable(cli.Table{
		Headers: []string{"ID", "Name"},
		Rows:    rows,
	}))
	return nil
}

func runPaymentTypesAdd(_ *cobra.Command, args []string) error {
	env, err := newEnv()
	if err != nil {
		return err
	}
	if err := env.requireSession(); err != nil {
		return err
	}

	created, err := env.client.CreatePaymentType(context.Background(), api.PaymentType{Name: args[0]})
	if err != nil {
		return finishErr(err)
	}

	infof("Created payment type %q (id %d)", created.Name, created.ID)
	return nil
}

func runPaymentTypesRename(_ *cobra.Command, args []string) error {
	env, err := newEnv()
	if err != nil {
		return err
	}
	if err := env.requireSession(); err != nil {
		return err
	}

	id, err := strconv.ParseInt(args[0], 10, 64)
	if err != nil {
		return fmt.Errorf("invalid payment type id %q", args[0])
	}

	if _, err := env.client.UpdatePaymentType(context.Background(), id, api.PaymentType{Name: args[1]}); err != nil {
		return finishErr(err)
	}

	infof("Renamed payment type %d to %q", id, args[1])
	return nil
}

func runPaymentTypesRm(_ *cobra.Command, args []string) error {
	env, err := newEnv()
	if err != nil {
		return err
	}
	if err := env.requireSession(); err != nil {
		return err
	}

	id, err := strconv.ParseInt(args[0], 10, 64)
	if err != nil {
		return fmt.Errorf("invalid payment type id %q", args[0])
	}

	if err := env.client.DeletePaymentType(context.Background(), id); err != nil {
		return finishErr(err)
	}

	infof("Deleted payment type %d", id)
	return nil
}
