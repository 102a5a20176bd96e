package scoring

import (
	"context"
	"testing"
)

type fakeStore struct {
	evaluations []Evaluation
	evaluatees  []Evaluatee
	assignments []Assignment
	answers     []Answer
	options     []Option
}

func (f *fakeStore) ListEvaluations(ctx context.Context) ([]Evaluation, error) {
	return f.evaluations, nil
}

func (f *fakeStore) GetEvaluation(ctx context.Context, evaluationID int64) (Evaluation, error) {
	for _, e := range f.evaluations {
		if e.ID == evaluationID {
			return e, nil
		}
	}
	return Evaluation{}, ErrEvaluationNotFound
}

func (f *fakeStore) ListEvaluatees(ctx context.Context, fiscalYear int) ([]Evaluatee, error) {
	return f.evaluatees, nil
}

func (f *fakeStore) ListAssignments(ctx context.Context, fiscalYear int) ([]Assignment, error) {
	return f.assignments, nil
}

func (f *fakeStore) ListAnswers(ctx context.Context, evaluationID int64) ([]Answer, error) {
	return f.answers, nil
}

func (f *fakeStore) ListOptions(ctx context.Context, evaluationID int64) ([]Option, error) {
	return f.options, nil
}

func reportFixture() *fakeStore {
	return &fakeStore{
		evaluations: []Evaluation{
			{ID: 1, Title: "Management 360", UserType: UserTypeInternal, GradeMin: 9, GradeMax: 12},
		},
		evaluatees: []Evaluatee{
			{ID: 100, Name: "Evaluatee X", Grade: 10, UserType: UserTypeInternal},
		},
		assignments: []Assignment{
			{EvaluatorID: 200, EvaluateeID: 100, EvaluationID: 1, FiscalYear: 2568, Angle: AngleTop},
			// Stale evaluation id from a historical re-assignment; grade and
			// user type still fit form 1.
			{EvaluatorID: 201, EvaluateeID: 100, EvaluationID: 77, FiscalYear: 2568, Angle: AngleTop},
			{EvaluatorID: 100, EvaluateeID: 100, EvaluationID: 1, FiscalYear: 2568, Angle: AngleSelf},
		},
		answers: []Answer{
			{EvaluationID: 1, EvaluatorID: 200, EvaluateeID: 100, QuestionID: 1, QuestionType: QuestionRating, RawValue: "4"},
			{EvaluationID: 1, EvaluatorID: 201, EvaluateeID: 100, QuestionID: 1, QuestionType: QuestionRating, RawValue: "5"},
			{EvaluationID: 1, EvaluatorID: 100, EvaluateeID: 100, QuestionID: 1, QuestionType: QuestionRating, RawValue: "3"},
			{EvaluationID: 1, EvaluatorID: 100, EvaluateeID: 100, QuestionID: 2, QuestionType: QuestionOpenText, RawValue: "self note"},
			// Evaluator with no assignment at all: angle unknown, excluded.
			{EvaluationID: 1, EvaluatorID: 999, EvaluateeID: 100, QuestionID: 1, QuestionType: QuestionRating, RawValue: "1"},
		},
		options: []Option{},
	}
}

func TestScoreReportResolvesStaleAssignments(t *testing.T) {
	service := NewService(reportFixture(), Grade13PolicyManagement)
	records, err := service.ScoreReport(context.Background(), 1, 2568, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(records) != 1 {
		t.Fatalf("expected 1 record, got %d", len(records))
	}

	record := records[0]
	// Both top evaluators count: (4+5)/2 = 4.5; the stale evaluation id is
	// accepted via the compatibility fallback.
	if record.Angles[AngleTop] != 4.5 {
		t.Fatalf("expected top angle 4.5, got %v", record.Angles[AngleTop])
	}
	if record.Angles[AngleSelf] != 3.0 {
		t.Fatalf("expected self angle 3.0, got %v", record.Angles[AngleSelf])
	}
	// Renormalized composite over self (0.15) and top (0.35):
	// (3*0.15 + 4.5*0.35) / 0.50 = 4.05
	if record.Average != 4.05 {
		t.Fatalf("expected composite 4.05, got %v", record.Average)
	}
	if record.CompletedAngles != 2 || record.ExpectedAngles != 5 {
		t.Fatalf("expected 2/5 angles, got %d/%d", record.CompletedAngles, record.ExpectedAngles)
	}
	// Open text and the unassigned evaluator's answer contribute nothing.
	if record.TotalAnswers != 3 {
		t.Fatalf("expected 3 scored answers, got %d", record.TotalAnswers)
	}
}

func TestScoreReportUnknownEvaluation(t *testing.T) {
	service := NewService(reportFixture(), Grade13PolicyManagement)
	if _, err := service.ScoreReport(context.Background(), 42, 2568, nil); err != ErrEvaluationNotFound {
		t.Fatalf("expected ErrEvaluationNotFound, got %v", err)
	}
}

func TestSummaryFromService(t *testing.T) {
	service := NewService(reportFixture(), Grade13PolicyManagement)
	stats, _, err := service.Summary(context.Background(), 1, 2568)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if stats.TotalEvaluated != 1 {
		t.Fatalf("expected 1 evaluated, got %d", stats.TotalEvaluated)
	}
	if stats.Mean != 4.05 {
		t.Fatalf("expected mean 4.05, got %v", stats.Mean)
	}
}

func TestPeerComparisonUsesSumRule(t *testing.T) {
	store := &fakeStore{
		evaluations: []Evaluation{
			{ID: 1, UserType: UserTypeInternal, GradeMin: 9, GradeMax: 12},
		},
		evaluatees: []Evaluatee{
			{ID: 100, Name: "X", Grade: 10, UserType: UserTypeInternal},
			{ID: 101, Name: "Y", Grade: 10, UserType: UserTypeInternal},
		},
		assignments: []Assignment{
			{EvaluatorID: 200, EvaluateeID: 100, EvaluationID: 1, FiscalYear: 2568, Angle: AngleTop},
			{EvaluatorID: 200, EvaluateeID: 101, EvaluationID: 1, FiscalYear: 2568, Angle: AngleTop},
		},
		answers: []Answer{
			{EvaluationID: 1, EvaluatorID: 200, EvaluateeID: 100, QuestionID: 1, QuestionType: QuestionMultipleChoice, RawValue: "[3,7]"},
			{EvaluationID: 1, EvaluatorID: 200, EvaluateeID: 100, QuestionID: 2, QuestionType: QuestionRating, RawValue: "4"},
			{EvaluationID: 1, EvaluatorID: 200, EvaluateeID: 101, QuestionID: 2, QuestionType: QuestionRating, RawValue: "2"},
		},
		options: []Option{
			{QuestionID: 1, OptionID: 3, Score: 4},
			{QuestionID: 1, OptionID: 7, Score: 2},
		},
	}
	service := NewService(store, Grade13PolicyManagement)
	peers, err := service.PeerComparison(context.Background(), 200, 100, 1, 2568)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(peers) != 2 {
		t.Fatalf("expected 2 peers, got %d", len(peers))
	}
	// Multiple choice sums (4+2=6) instead of averaging, plus the rating 4.
	if peers[0].EvaluateeID != 100 || peers[0].TotalScore != 10 || peers[0].AnswerCount != 2 {
		t.Fatalf("unexpected peer row %+v", peers[0])
	}
	if peers[1].EvaluateeID != 101 || peers[1].TotalScore != 2 {
		t.Fatalf("unexpected peer row %+v", peers[1])
	}
}
