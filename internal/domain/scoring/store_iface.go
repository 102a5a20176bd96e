package scoring

import "context"

type StoreAPI interface {
	ListEvaluations(ctx context.Context) ([]Evaluation, error)
	GetEvaluation(ctx context.Context, evaluationID int64) (Evaluation, error)
	ListEvaluatees(ctx context.Context, fiscalYear int) ([]Evaluatee, error)
	ListAssignments(ctx context.Context, fiscalYear int) ([]Assignment, error)
	ListAnswers(ctx context.Context, evaluationID int64) ([]Answer, error)
	ListOptions(ctx context.Context, evaluationID int64) ([]Option, error)
}
