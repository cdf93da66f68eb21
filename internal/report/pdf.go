package report

import (
	"bytes"
	"fmt"
	"time"

	"github.com/go-pdf/fpdf"

	"hostelhub/internal/models"
)

// Build renders a category-total report as a PDF document. Title is either
// "Expense" or "Revenue"; the date range may be open on either side.
func Build(title string, startDate, endDate string, totals []models.CategoryTotal) ([]byte, error) {
	pdf := fpdf.New("P", "mm", "A4", "")
	pdf.SetTitle(title+" Report", false)
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 16)
	pdf.Cell(0, 10, title+" Report")
	pdf.Ln(12)

	pdf.SetFont("Helvetica", "", 10)
	pdf.Cell(0, 6, fmt.Sprintf("Generated %s", time.Now().Format("2006-01-02 15:04")))
	pdf.Ln(6)
	if startDate != "" || endDate != "" {
		pdf.Cell(0, 6, fmt.Sprintf("Period: %s to %s", orOpen(startDate), orOpen(endDate)))
		pdf.Ln(6)
	}
	pdf.Ln(4)

	pdf.SetFont("Helvetica", "B", 11)
	pdf.SetFillColor(230, 230, 230)
	pdf.CellFormat(120, 8, "Category", "1", 0, "L", true, 0, "")
	pdf.CellFormat(50, 8, "Total", "1", 1, "R", true, 0, "")

	pdf.SetFont("Helvetica", "", 11)
	var grand float64
	for _, total := range totals {
		pdf.CellFormat(120, 8, total.Category, "1", 0, "L", false, 0, "")
		pdf.CellFormat(50, 8, fmt.Sprintf("%.2f", total.Total), "1", 1, "R", false, 0, "")
		grand += total.Total
	}

	pdf.SetFont("Helvetica", "B", 11)
	pdf.CellFormat(120, 8, "Grand total", "1", 0, "L", false, 0, "")
	pdf.CellFormat(50, 8, fmt.Sprintf("%.2f", grand), "1", 1, "R", false, 0, "")

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("render pdf: %w", err)
	}
	return buf.Bytes(), nil
}

func orOpen(date string) string {
	if date == "" {
		return "open"
	}
	return date
}
