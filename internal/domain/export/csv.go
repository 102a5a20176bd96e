package export

import (
	"encoding/csv"
	"fmt"
	"io"

	"eval360/internal/domain/scoring"
)

var csvHeader = []string{
	"id", "name", "position", "grade", "division", "level",
	"self", "top", "bottom", "left", "right",
	"weighted_average", "raw_average", "completion_rate",
	"total_answers", "data_quality_score", "rating", "rating_text",
}

// WriteCSV renders score records as a spreadsheet-importable CSV. Absent
// angles render as empty cells, not zeros.
func WriteCSV(w io.Writer, records []scoring.ScoreRecord) error {
	writer := csv.NewWriter(w)
	if err := writer.Write(csvHeader); err != nil {
		return err
	}

	for _, record := range records {
		row := []string{
			fmt.Sprintf("%d", record.ID),
			record.Name,
			record.Position,
			fmt.Sprintf("%d", record.Grade),
			record.Division,
			record.Level,
		}
		for _, angle := range scoring.AllAngles {
			if score, ok := record.Angles[angle]; ok {
				row = append(row, fmt.Sprintf("%.2f", score))
			} else {
				row = append(row, "")
			}
		}
		row = append(row,
			fmt.Sprintf("%.2f", record.Average),
			fmt.Sprintf("%.2f", record.RawAverage),
			fmt.Sprintf("%.2f", record.CompletionRate),
			fmt.Sprintf("%d", record.TotalAnswers),
			fmt.Sprintf("%.2f", record.DataQualityScore),
			fmt.Sprintf("%d", record.Rating),
			record.RatingText,
		)
		if err := writer.Write(row); err != nil {
			return err
		}
	}

	writer.Flush()
	return writer.Error()
}
