// Package export writes report data to CSV and PDF files.
package export

import (
	"encoding/csv"
	"fmt"
	"io"
	"strings"

	"github.com/balaji-matta18/spendbuddy/internal/api"
)

// Report bundles the three report endpoints for one range.
type Report struct {
	Range         string
	ByCategory    []api.ReportPoint
	Monthly       []api.ReportPoint
	ByPaymentType []api.ReportPoint
}

// CSVFileName returns the export file name for a range, e.g.
// "SpendBuddy_Report_6M.csv".
func CSVFileName(rng string) string {
	return fmt.Sprintf("SpendBuddy_Report_%s.csv", strings.ToUpper(rng))
}

// WriteCSV writes the sectioned report: a header row, then one titled
// section per report type.
func WriteCSV(w io.Writer, r Report) error {
	cw := csv.NewWriter(w)

	if err := cw.Write([]string{"Report Type", "Label", "Value"}); err != nil {
		return fmt.Errorf("export: writing csv header: %w", err)
	}

	sections := []struct {
		title  string
		rowTag string
		points []api.ReportPoint
	}{
		{"Expense by Category", "Category", r.ByCategory},
		{"Monthly Summary", "Month", r.Monthly},
		{"Payment Type Summary", "Payment Type", r.ByPaymentType},
	}

	for _, sec := range sections {
		if err := cw.Write([]string{""}); err != nil {
			return err
		}
		if err := cw.Write([]string{sec.title}); err != nil {
			return err
		}
		for _, p := range sec.points {
			row := []string{sec.rowTag, p.Label, formatValue(p.Value)}
			if err := cw.Write(row); err != nil {
				return err
			}
		}
	}

	cw.Flush()
	return cw.Error()
}

// formatValue trims trailing zeros so whole amounts export as integers.
func formatValue(v float64) string {
	s := fmt.Sprintf("%.2f", v)
	s = strings.TrimRight(s, "0")
	return strings.TrimSuffix(s, ".")
}
