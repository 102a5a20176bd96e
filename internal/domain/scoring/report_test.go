package scoring

import "testing"

func TestBuildReportMissingEvaluateeGetsEmptyRecord(t *testing.T) {
	evaluatees := []Evaluatee{
		{ID: 1, Grade: 6},
		{ID: 2, Grade: 6},
	}
	scores := map[int64][]AngleScore{
		1: {{Angle: AngleTop, Score: 4.0, AnswerCount: 3}},
	}
	records := BuildReport(evaluatees, scores, Grade13PolicyManagement, nil)
	if len(records) != 2 {
		t.Fatalf("expected 2 records, got %d", len(records))
	}
	if records[0].Average != 4.0 {
		t.Fatalf("expected 4.0 for evaluatee 1, got %v", records[0].Average)
	}
	if records[1].RatingText != RatingTextNotEvaluated {
		t.Fatalf("expected not-evaluated record for evaluatee 2, got %+v", records[1])
	}
}

func TestBuildReportInvalidOverrideDegradesAll(t *testing.T) {
	evaluatees := []Evaluatee{{ID: 1, Grade: 6}, {ID: 2, Grade: 6}}
	scores := map[int64][]AngleScore{
		1: {{Angle: AngleTop, Score: 4.0, AnswerCount: 3}},
		2: {{Angle: AngleTop, Score: 5.0, AnswerCount: 3}},
	}
	bad := map[string]float64{AngleSelf: 0.5, AngleTop: 0.9, AngleLeft: 0.3}
	records := BuildReport(evaluatees, scores, Grade13PolicyManagement, bad)
	for _, record := range records {
		if record.RatingText != RatingTextNotEvaluated {
			t.Fatalf("invalid weights must degrade to empty records, got %+v", record)
		}
	}
}

func TestBuildReportValidOverrideAppliesToAll(t *testing.T) {
	evaluatees := []Evaluatee{{ID: 1, Grade: 6}}
	scores := map[int64][]AngleScore{
		1: {
			{Angle: AngleSelf, Score: 2.0, AnswerCount: 3},
			{Angle: AngleTop, Score: 4.0, AnswerCount: 3},
			{Angle: AngleLeft, Score: 4.0, AnswerCount: 3},
		},
	}
	custom := map[string]float64{AngleSelf: 0.50, AngleTop: 0.25, AngleLeft: 0.25}
	records := BuildReport(evaluatees, scores, Grade13PolicyManagement, custom)
	// 2.0*0.50 + 4.0*0.25 + 4.0*0.25 = 3.0
	if records[0].Average != 3.0 {
		t.Fatalf("expected 3.0 under custom weights, got %v", records[0].Average)
	}
}

func summaryRecords() []ScoreRecord {
	evaluatees := []Evaluatee{
		{ID: 1, Grade: 6}, {ID: 2, Grade: 6}, {ID: 3, Grade: 6}, {ID: 4, Grade: 6}, {ID: 5, Grade: 6},
	}
	scores := map[int64][]AngleScore{
		1: {{Angle: AngleSelf, Score: 5.0, AnswerCount: 4}, {Angle: AngleTop, Score: 4.6, AnswerCount: 4}, {Angle: AngleLeft, Score: 4.6, AnswerCount: 4}},
		2: {{Angle: AngleTop, Score: 4.0, AnswerCount: 4}},
		3: {{Angle: AngleTop, Score: 3.0, AnswerCount: 4}},
		4: {{Angle: AngleTop, Score: 2.0, AnswerCount: 4}},
		// evaluatee 5 has no data at all
	}
	return BuildReport(evaluatees, scores, Grade13PolicyManagement, nil)
}

func TestSummarize(t *testing.T) {
	stats := Summarize(summaryRecords())

	if stats.TotalEvaluated != 4 {
		t.Fatalf("expected 4 evaluated, got %d", stats.TotalEvaluated)
	}
	// composites: 4.68, 4.0, 3.0, 2.0 (evaluatee 5 excluded)
	if stats.Min != 2.0 || stats.Max != 4.68 {
		t.Fatalf("unexpected min/max %v/%v", stats.Min, stats.Max)
	}
	if stats.Mean != round2((4.68+4.0+3.0+2.0)/4) {
		t.Fatalf("unexpected mean %v", stats.Mean)
	}
	if stats.Median != 3.5 {
		t.Fatalf("expected median 3.5, got %v", stats.Median)
	}
	if stats.Quartiles.Q1 != 2.75 || stats.Quartiles.Q3 != 4.17 {
		t.Fatalf("unexpected quartiles %+v", stats.Quartiles)
	}
	// Ratings: 4.68 -> excellent, 4.0 -> very good, 3.0 -> good, 2.0 -> fair,
	// the empty record -> poor bucket (rating 1).
	d := stats.Distribution
	if d.Excellent != 1 || d.VeryGood != 1 || d.Good != 1 || d.Fair != 1 || d.Poor != 1 {
		t.Fatalf("unexpected distribution %+v", d)
	}
}

func TestSummarizeEmpty(t *testing.T) {
	stats := Summarize(nil)
	if stats.TotalEvaluated != 0 || stats.Mean != 0 {
		t.Fatalf("expected zero stats, got %+v", stats)
	}
}

func TestModeFirstAtMaxFrequency(t *testing.T) {
	if got := mode([]float64{2, 2, 3, 3, 4}); got != 2 {
		t.Fatalf("tie must break toward the first sorted value, got %v", got)
	}
	if got := mode([]float64{1, 3, 3, 3, 5}); got != 3 {
		t.Fatalf("expected 3, got %v", got)
	}
}

func TestPercentileInterpolation(t *testing.T) {
	sorted := []float64{1, 2, 3, 4}
	if got := percentile(sorted, 25); got != 1.75 {
		t.Fatalf("expected q1 1.75, got %v", got)
	}
	if got := percentile(sorted, 50); got != 2.5 {
		t.Fatalf("expected median 2.5, got %v", got)
	}
	if got := percentile(sorted, 75); got != 3.25 {
		t.Fatalf("expected q3 3.25, got %v", got)
	}
}

func TestImprovementAreas(t *testing.T) {
	evaluatees := []Evaluatee{{ID: 1, Grade: 6}, {ID: 2, Grade: 6}}
	scores := map[int64][]AngleScore{
		// self 5.0 vs top 2.0: awareness gap, and composite below 3.0.
		1: {
			{Angle: AngleSelf, Score: 5.0, AnswerCount: 4},
			{Angle: AngleTop, Score: 2.0, AnswerCount: 4},
			{Angle: AngleLeft, Score: 2.0, AnswerCount: 4},
		},
		2: {
			{Angle: AngleSelf, Score: 4.0, AnswerCount: 4},
			{Angle: AngleTop, Score: 4.2, AnswerCount: 4},
			{Angle: AngleLeft, Score: 4.0, AnswerCount: 4},
		},
	}
	records := BuildReport(evaluatees, scores, Grade13PolicyManagement, nil)
	areas := ImprovementAreas(records)
	if len(areas) != 2 {
		t.Fatalf("expected 2 areas, got %+v", areas)
	}
	for _, area := range areas {
		if area.AffectedCount != 1 || area.Percentage != 50 {
			t.Fatalf("expected 1 affected (50%%), got %+v", area)
		}
	}
}

func TestImprovementAreasNoneFlagged(t *testing.T) {
	evaluatees := []Evaluatee{{ID: 1, Grade: 6}}
	scores := map[int64][]AngleScore{
		1: {
			{Angle: AngleSelf, Score: 4.0, AnswerCount: 4},
			{Angle: AngleTop, Score: 4.0, AnswerCount: 4},
			{Angle: AngleLeft, Score: 4.0, AnswerCount: 4},
		},
	}
	areas := ImprovementAreas(BuildReport(evaluatees, scores, Grade13PolicyManagement, nil))
	if len(areas) != 0 {
		t.Fatalf("expected no areas, got %+v", areas)
	}
}
