package export

import (
	"fmt"
	"strings"

	"github.com/balaji-matta18/spendbuddy/internal/api"

	"github.com/go-pdf/fpdf"
)

// PDFFileName returns the export file name for a range, e.g.
// "SpendBuddy_Report_6M.pdf".
func PDFFileName(rng string) string {
	return fmt.Sprintf("SpendBuddy_Report_%s.pdf", strings.ToUpper(rng))
}

// WritePDF renders the report as one tabular page set and writes it to path.
func WritePDF(path string, r Report) error {
	doc := fpdf.New("P", "mm", "A4", "")
	doc.SetTitle("SpendBuddy Report", false)
	doc.AddPage()

	doc.SetFont("Helvetica", "B", 16)
	doc.Cell(0, 10, "SpendBuddy Report")
	doc.Ln(8)
	doc.SetFont("Helvetica", "", 10)
	doc.Cell(0, 8, fmt.Sprintf("Range: %s", strings.ToUpper(r.Range)))
	doc.Ln(12)

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
		writeTable(doc, sec.title, sec.label, sec.points)
	}

	if err := doc.OutputFileAndClose(path); err != nil {
		return fmt.Errorf("export: writing pdf: %w", err)
	}
	return nil
}

func writeTable(doc *fpdf.Fpdf, title, label string, points []api.ReportPoint) {
	const (
		labelW = 110.0
		valueW = 50.0
		rowH   = 7.0
	)

	doc.SetFont("Helvetica", "B", 12)
	doc.Cell(0, 10, title)
	doc.Ln(10)

	doc.SetFont("Helvetica", "B", 10)
	doc.SetFillColor(240, 240, 240)
	doc.CellFormat(labelW, rowH, label, "1", 0, "L", true, 0, "")
	doc.CellFormat(valueW, rowH, "Value", "1", 1, "R", true, 0, "")

	doc.SetFont("Helvetica", "", 10)
	if len(points) == 0 {
		doc.CellFormat(labelW+valueW, rowH, "No data for this range", "1", 1, "L", false, 0, "")
	}
	for _, p := range points {
		doc.CellFormat(labelW, rowH, p.Label, "1", 0, "L", false, 0, "")
		doc.CellFormat(valueW, rowH, formatValue(p.Value), "1", 1, "R", false, 0, "")
	}
	doc.Ln(6)
}
