package scoring

import "sort"

type assignmentKey struct {
	evaluatorID int64
	evaluateeID int64
	fiscalYear  int
}

// AngleResolver determines which evaluation angle governs an evaluator ->
// evaluatee relationship. It works over the immutable snapshot of one report
// run; historical rows whose evaluation id has drifted from the target form
// are accepted when the evaluatee still fits the target form's grade band and
// user type.
type AngleResolver struct {
	assignments map[assignmentKey]Assignment
	byEvaluator map[int64][]Assignment
	evaluatees  map[int64]Evaluatee
	evaluations map[int64]Evaluation
}

func NewAngleResolver(assignments []Assignment, evaluatees []Evaluatee, evaluations []Evaluation) *AngleResolver {
	r := &AngleResolver{
		assignments: make(map[assignmentKey]Assignment, len(assignments)),
		byEvaluator: make(map[int64][]Assignment),
		evaluatees:  make(map[int64]Evaluatee, len(evaluatees)),
		evaluations: make(map[int64]Evaluation, len(evaluations)),
	}
	for _, a := range assignments {
		key := assignmentKey{a.EvaluatorID, a.EvaluateeID, a.FiscalYear}
		r.assignments[key] = a
		r.byEvaluator[a.EvaluatorID] = append(r.byEvaluator[a.EvaluatorID], a)
	}
	for _, e := range evaluatees {
		r.evaluatees[e.ID] = e
	}
	for _, e := range evaluations {
		r.evaluations[e.ID] = e
	}
	return r
}

// Resolve returns the angle for one evaluator -> evaluatee pair, or
// AngleUnknown when no usable assignment exists. Unknown answers are excluded
// from weighted aggregation and counted as missing.
func (r *AngleResolver) Resolve(evaluatorID, evaluateeID, evaluationID int64, fiscalYear int) string {
	if evaluatorID == evaluateeID {
		return AngleSelf
	}

	assignment, ok := r.assignments[assignmentKey{evaluatorID, evaluateeID, fiscalYear}]
	if !ok {
		return AngleUnknown
	}
	if r.usable(assignment, evaluationID) {
		return assignment.Angle
	}
	return AngleUnknown
}

// usable reports whether an assignment applies to the target evaluation:
// either the evaluation ids match exactly, or the assignment predates a form
// re-assignment but its evaluatee is still compatible with the target form.
func (r *AngleResolver) usable(assignment Assignment, evaluationID int64) bool {
	if assignment.EvaluationID == evaluationID {
		return true
	}
	evaluation, ok := r.evaluations[evaluationID]
	if !ok {
		return false
	}
	evaluatee, ok := r.evaluatees[assignment.EvaluateeID]
	if !ok {
		return false
	}
	return evaluation.UserType == evaluatee.UserType &&
		evaluation.GradeMin <= evaluatee.Grade &&
		evaluatee.Grade <= evaluation.GradeMax
}

// EvaluateeIDsInSameAngle returns every evaluatee assigned to the evaluator
// under the same angle as the reference evaluatee, for peer-comparison views.
// When no peers exist the reference evaluatee is returned alone.
func (r *AngleResolver) EvaluateeIDsInSameAngle(evaluatorID, evaluateeID, evaluationID int64) []int64 {
	reference := r.angleForPeer(evaluatorID, evaluateeID, evaluationID)
	if reference == AngleUnknown {
		return []int64{evaluateeID}
	}

	seen := map[int64]bool{}
	var ids []int64
	for _, assignment := range r.byEvaluator[evaluatorID] {
		if assignment.Angle != reference || !r.usable(assignment, evaluationID) {
			continue
		}
		if seen[assignment.EvaluateeID] {
			continue
		}
		seen[assignment.EvaluateeID] = true
		ids = append(ids, assignment.EvaluateeID)
	}
	if !seen[evaluateeID] {
		ids = append(ids, evaluateeID)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	return ids
}

// angleForPeer resolves the reference angle without a fiscal-year key: peer
// views span whatever assignments exist for the evaluator.
func (r *AngleResolver) angleForPeer(evaluatorID, evaluateeID, evaluationID int64) string {
	if evaluatorID == evaluateeID {
		return AngleSelf
	}
	for _, assignment := range r.byEvaluator[evaluatorID] {
		if assignment.EvaluateeID != evaluateeID {
			continue
		}
		if r.usable(assignment, evaluationID) {
			return assignment.Angle
		}
	}
	return AngleUnknown
}
