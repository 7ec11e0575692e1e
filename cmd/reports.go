package cmd

import (
	"context"
	"fmt"
	"os"

	"github.com/balaji-matta18/spendbuddy/internal/api"
	"github.com/balaji-matta18/spendbuddy/internal/cli"
	"github.com/balaji-matta18/spendbuddy/internal/export"

	"github.com/spf13/cobra"
)

var (
	flagReportRange string
	flagReportCSV   string
	flagReportPDF   string
)

var reportsCmd = &cobra.Command{
	Use:   "reports",
	Short: "Spending reports by category, month, and payment type",
	RunE:  runReports,
}

func init() {
	reportsCmd.Flags().StringVar(&flagReportRange, "range", api.Range6M, "Report range (3m, 6m, or all)")
	reportsCmd.Flags().StringVar(&flagReportCSV, "csv", "", "Write the report to a CSV file (path optional)")
	reportsCmd.Flags().StringVar(&flagReportPDF, "pdf", "", "Write the report to a PDF file (path optional)")
	// Bare --csv / --pdf derive the file name from the range.
	reportsCmd.Flags().Lookup("csv").NoOptDefVal = "auto"
	reportsCmd.Flags().Lookup("pdf").NoOptDefVal = "auto"

	rootCmd.AddCommand(reportsCmd)
}

func runReports(_ *cobra.Command, _ []string) error {
	env, err := newEnv()
	if err != nil {
		return err
	}
	if err := env.requireSession(); err != nil {
		return err
	}

	if !api.ValidRange(flagReportRange) {
		return fmt.Errorf("invalid range %q (want %s, %s, or %s)",
			flagReportRange, api.Range3M, api.Range6M, api.RangeAll)
	}

	ctx := context.Background()
	report := export.Report{Range: flagReportRange}

	if report.ByCategory, err = env.client.ExpenseByCategory(ctx, flagReportRange); err != nil {
		return finishErr(err)
	}
	if report.Monthly, err = env.client.MonthlySummary(ctx, flagReportRange); err != nil {
		return finishErr(err)
	}
	if report.ByPaymentType, err = env.client.PaymentTypeSummary(ctx, flagReportRange); err != nil {
		return finishErr(err)
	}

	if flagReportCSV != "" {
		return writeReportCSV(report, flagReportCSV)
	}
	if flagReportPDF != "" {
		return writeReportPDF(report, flagReportPDF)
	}

	printReport(env, report)
	return nil
}

func writeReportCSV(r export.Report, path string) error {
	if path == "auto" {
		path = export.CSVFileName(r.Range)
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating %s: %w", path, err)
	}
	defer f.Close()

	if err := export.WriteCSV(f, r); err != nil {
		return err
	}
	infof("Wrote %s", path)
	return nil
}

func writeReportPDF(r export.Report, path string) error {
	if path == "auto" {
		path = export.PDFFileName(r.Range)
	}

	if err := export.WritePDF(path, r); err != nil {
		return err
	}
	infof("Wrote %s", path)
	return nil
}

func printReport(env *appEnv, r export.Report) {
	cur := env.cfg.General.Currency

	fmt.Println()
	fmt.Println(cli.RenderTitle("SPENDBUDDY  Reports (" + r.Range + ")"))
	fmt.Println()

	sections := []struct {
		title  string
		label  string
		points []api.ReportPoint
	}{
		{"Expense by Category", "Category", r.ByCategory},
		{"Monthly Summary", "Month", r.Monthly},
		{"Payment Type Summary", "Payment Type", r.ByPaymentType},
	}

	for _, sec := range sections {
		if len(sec.points) == 0 {
			fmt.Printf("  %s: no data for this range\n\n", sec.title)
			continue
		}

		rows := make([][]string, 0, len(sec.points))
		for _, p := range sec.points {
			rows = append(rows, []string{p.Label, cli.FormatMoney(cur, p.Value)})
		}
		fmt.Print(cli.RenderTable(cli.Table{
			Title:   sec.title,
			Headers: []string{sec.label, "Amount"},
			Rows:    rows,
		}))
		fmt.Println()
	}
}
