package export

import (
	"fmt"
	"io"

	"github.com/jung-kurt/gofpdf"

	"eval360/internal/domain/scoring"
)

// WritePDF renders a summary page followed by one line per evaluatee. Core
// fonts cannot render Thai rating labels, so the PDF shows numeric ratings;
// the CSV export carries the full labels.
func WritePDF(w io.Writer, title string, stats scoring.GroupStats, records []scoring.ScoreRecord) error {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.AddPage()
	pdf.SetFont("Helvetica", "B", 16)
	pdf.Cell(40, 10, title)
	pdf.Ln(12)

	pdf.SetFont("Helvetica", "", 11)
	pdf.Cell(0, 7, fmt.Sprintf("Evaluated: %d", stats.TotalEvaluated))
	pdf.Ln(6)
	pdf.Cell(0, 7, fmt.Sprintf("Mean: %.2f   Median: %.2f   SD: %.2f", stats.Mean, stats.Median, stats.StdDeviation))
	pdf.Ln(6)
	pdf.Cell(0, 7, fmt.Sprintf("Min: %.2f   Q1: %.2f   Q3: %.2f   Max: %.2f",
		stats.Min, stats.Quartiles.Q1, stats.Quartiles.Q3, stats.Max))
	pdf.Ln(6)
	pdf.Cell(0, 7, fmt.Sprintf("Distribution: excellent %d / very good %d / good %d / fair %d / poor %d",
		stats.Distribution.Excellent, stats.Distribution.VeryGood, stats.Distribution.Good,
		stats.Distribution.Fair, stats.Distribution.Poor))
	pdf.Ln(10)

	pdf.SetFont("Helvetica", "B", 10)
	pdf.Cell(0, 6, "Name / Grade / Weighted / Completion / Quality / Rating")
	pdf.Ln(7)
	pdf.SetFont("Helvetica", "", 10)
	for _, record := range records {
		pdf.Cell(0, 6, fmt.Sprintf("%s   G%d   %.2f   %.0f%%   %.0f   %d",
			record.Name, record.Grade, record.Average, record.CompletionRate,
			record.DataQualityScore, record.Rating))
		pdf.Ln(5)
	}

	return pdf.Output(w)
}
