package scoring

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
)

func (s *Store) ListEvaluations(ctx context.Context) ([]Evaluation, error) {
	rows, err := s.DB.Query(ctx, `
    SELECT id, title, user_type, grade_min, grade_max
    FROM evaluations
    ORDER BY id
  `)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var evaluations []Evaluation
	for rows.Next() {
		var e Evaluation
		if err := rows.Scan(&e.ID, &e.Title, &e.UserType, &e.GradeMin, &e.GradeMax); err != nil {
			return nil, err
		}
		evaluations = append(evaluations, e)
	}
	return evaluations, rows.Err()
}

func (s *Store) GetEvaluation(ctx context.Context, evaluationID int64) (Evaluation, error) {
	var e Evaluation
	err := s.DB.QueryRow(ctx, `
    SELECT id, title, user_type, grade_min, grade_max
    FROM evaluations
    WHERE id = $1
  `, evaluationID).Scan(&e.ID, &e.Title, &e.UserType, &e.GradeMin, &e.GradeMax)
	if errors.Is(err, pgx.ErrNoRows) {
		return Evaluation{}, ErrEvaluationNotFound
	}
	if err != nil {
		return Evaluation{}, err
	}
	return e, nil
}

// ListEvaluatees returns every user who is the target of at least one
// assignment in the fiscal year.
func (s *Store) ListEvaluatees(ctx context.Context, fiscalYear int) ([]Evaluatee, error) {
	rows, err := s.DB.Query(ctx, `
    SELECT DISTINCT u.id, u.name, u.grade, u.user_type, u.division, u.position
    FROM users u
    JOIN evaluation_assignments a ON a.evaluatee_id = u.id
    WHERE a.fiscal_year = $1
    ORDER BY u.id
  `, fiscalYear)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var evaluatees []Evaluatee
	for rows.Next() {
		var e Evaluatee
		if err := rows.Scan(&e.ID, &e.Name, &e.Grade, &e.UserType, &e.Division, &e.Position); err != nil {
			return nil, err
		}
		evaluatees = append(evaluatees, e)
	}
	return evaluatees, rows.Err()
}

func (s *Store) ListAssignments(ctx context.Context, fiscalYear int) ([]Assignment, error) {
	rows, err := s.DB.Query(ctx, `
    SELECT evaluator_id, evaluatee_id, evaluation_id, fiscal_year, angle
    FROM evaluation_assignments
    WHERE fiscal_year = $1
  `, fiscalYear)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var assignments []Assignment
	for rows.Next() {
		var a Assignment
		if err := rows.Scan(&a.EvaluatorID, &a.EvaluateeID, &a.EvaluationID, &a.FiscalYear, &a.Angle); err != nil {
			return nil, err
		}
		assignments = append(assignments, a)
	}
	return assignments, rows.Err()
}

func (s *Store) ListAnswers(ctx context.Context, evaluationID int64) ([]Answer, error) {
	rows, err := s.DB.Query(ctx, `
    SELECT an.evaluation_id, an.user_id, an.evaluatee_id, an.question_id,
           q.question_type, an.value, COALESCE(an.other_text, '')
    FROM answers an
    JOIN questions q ON q.id = an.question_id
    WHERE an.evaluation_id = $1
  `, evaluationID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var answers []Answer
	for rows.Next() {
		var a Answer
		if err := rows.Scan(&a.EvaluationID, &a.EvaluatorID, &a.EvaluateeID, &a.QuestionID, &a.QuestionType, &a.RawValue, &a.OtherText); err != nil {
			return nil, err
		}
		answers = append(answers, a)
	}
	return answers, rows.Err()
}

func (s *Store) ListOptions(ctx context.Context, evaluationID int64) ([]Option, error) {
	rows, err := s.DB.Query(ctx, `
    SELECT o.question_id, o.id, o.score, o.label
    FROM options o
    JOIN questions q ON q.id = o.question_id
    WHERE q.evaluation_id = $1
  `, evaluationID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var options []Option
	for rows.Next() {
		var o Option
		if err := rows.Scan(&o.QuestionID, &o.OptionID, &o.Score, &o.Label); err != nil {
			return nil, err
		}
		options = append(options, o)
	}
	return options, rows.Err()
}
