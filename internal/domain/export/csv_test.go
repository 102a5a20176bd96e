package export

import (
	"bytes"
	"encoding/csv"
	"testing"

	"eval360/internal/domain/scoring"
)

func TestWriteCSV(t *testing.T) {
	records := []scoring.ScoreRecord{
		{
			ID: 1, Name: "A", Grade: 6, Level: scoring.LevelOperational,
			Angles: map[string]float64{
				scoring.AngleSelf: 4.0,
				scoring.AngleTop:  5.0,
				scoring.AngleLeft: 3.0,
			},
			Average: 4.2, RawAverage: 4.0, CompletionRate: 100,
			TotalAnswers: 30, DataQualityScore: 85.5,
			Rating: 4, RatingText: scoring.RatingTextVeryGood,
		},
	}

	var buf bytes.Buffer
	if err := WriteCSV(&buf, records); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	rows, err := csv.NewReader(&buf).ReadAll()
	if err != nil {
		t.Fatalf("output is not valid csv: %v", err)
	}
	if len(rows) != 2 {
		t.Fatalf("expected header + 1 row, got %d rows", len(rows))
	}
	if rows[0][0] != "id" || len(rows[0]) != len(csvHeader) {
		t.Fatalf("unexpected header %v", rows[0])
	}

	row := rows[1]
	if row[1] != "A" || row[6] != "4.00" || row[7] != "5.00" {
		t.Fatalf("unexpected row %v", row)
	}
	// Angles with no data stay empty rather than reading as zero scores.
	if row[8] != "" || row[10] != "" {
		t.Fatalf("expected empty cells for absent angles, got %v", row)
	}
	if row[16] != "4" || row[17] != scoring.RatingTextVeryGood {
		t.Fatalf("unexpected rating cells %v", row)
	}
}
