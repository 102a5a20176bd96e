package scoring

import (
	"context"
	"sort"
)

// Service orchestrates one report run: it loads an immutable snapshot of
// answers, assignments and options, resolves angles, normalizes answers, and
// hands the grouped scores to the batch reporter. Every run owns a fresh
// option cache; there is no process-wide mutable state, so concurrent report
// requests are independent.
type Service struct {
	store         StoreAPI
	grade13Policy string
}

func NewService(store StoreAPI, grade13Policy string) *Service {
	return &Service{store: store, grade13Policy: grade13Policy}
}

type snapshot struct {
	evaluation  Evaluation
	evaluatees  []Evaluatee
	assignments []Assignment
	answers     []Answer
	resolver    *AngleResolver
	normalizer  *Normalizer
}

func (s *Service) loadSnapshot(ctx context.Context, evaluationID int64, fiscalYear int) (*snapshot, error) {
	evaluation, err := s.store.GetEvaluation(ctx, evaluationID)
	if err != nil {
		return nil, err
	}
	evaluations, err := s.store.ListEvaluations(ctx)
	if err != nil {
		return nil, err
	}
	evaluatees, err := s.store.ListEvaluatees(ctx, fiscalYear)
	if err != nil {
		return nil, err
	}
	assignments, err := s.store.ListAssignments(ctx, fiscalYear)
	if err != nil {
		return nil, err
	}
	answers, err := s.store.ListAnswers(ctx, evaluationID)
	if err != nil {
		return nil, err
	}
	options, err := s.store.ListOptions(ctx, evaluationID)
	if err != nil {
		return nil, err
	}

	return &snapshot{
		evaluation:  evaluation,
		evaluatees:  evaluatees,
		assignments: assignments,
		answers:     answers,
		resolver:    NewAngleResolver(assignments, evaluatees, evaluations),
		normalizer:  NewNormalizer(NewOptionCache(options)),
	}, nil
}

// ScoreReport computes a ScoreRecord for every evaluatee assigned in the
// fiscal year, using a custom weight override when supplied.
func (s *Service) ScoreReport(ctx context.Context, evaluationID int64, fiscalYear int, override map[string]float64) ([]ScoreRecord, error) {
	snap, err := s.loadSnapshot(ctx, evaluationID, fiscalYear)
	if err != nil {
		return nil, err
	}
	angleScores := s.angleScores(snap, evaluationID, fiscalYear)
	return BuildReport(snap.evaluatees, angleScores, s.grade13Policy, override), nil
}

// Summary runs the report and reduces it to cohort statistics and
// improvement areas.
func (s *Service) Summary(ctx context.Context, evaluationID int64, fiscalYear int) (GroupStats, []ImprovementArea, error) {
	records, err := s.ScoreReport(ctx, evaluationID, fiscalYear, nil)
	if err != nil {
		return GroupStats{}, nil, err
	}
	return Summarize(records), ImprovementAreas(records), nil
}

// angleScores tags each answer with its angle, normalizes it, and averages
// the contributions per (evaluatee, angle). Answers whose angle cannot be
// resolved, and answers that carry no numeric score, are excluded and show up
// only through reduced completion and data-quality metrics.
func (s *Service) angleScores(snap *snapshot, evaluationID int64, fiscalYear int) map[int64][]AngleScore {
	type bucket struct {
		sum   float64
		count int
	}
	type key struct {
		evaluateeID int64
		angle       string
	}
	buckets := map[key]*bucket{}

	for _, answer := range snap.answers {
		angle := snap.resolver.Resolve(answer.EvaluatorID, answer.EvaluateeID, evaluationID, fiscalYear)
		if angle == AngleUnknown {
			continue
		}
		score, ok := snap.normalizer.Normalize(answer)
		if !ok {
			continue
		}
		k := key{answer.EvaluateeID, angle}
		b, found := buckets[k]
		if !found {
			b = &bucket{}
			buckets[k] = b
		}
		b.sum += score
		b.count++
	}

	result := map[int64][]AngleScore{}
	for k, b := range buckets {
		result[k.evaluateeID] = append(result[k.evaluateeID], AngleScore{
			Angle:       k.angle,
			Score:       round2(b.sum / float64(b.count)),
			AnswerCount: b.count,
		})
	}
	for id := range result {
		sort.Slice(result[id], func(i, j int) bool { return result[id][i].Angle < result[id][j].Angle })
	}
	return result
}

// PeerComparison builds the peer view for one evaluator: every evaluatee the
// evaluator rates under the same angle as the reference evaluatee, with total
// scores using the sum rule for multiple-choice answers.
func (s *Service) PeerComparison(ctx context.Context, evaluatorID, evaluateeID, evaluationID int64, fiscalYear int) ([]PeerScore, error) {
	snap, err := s.loadSnapshot(ctx, evaluationID, fiscalYear)
	if err != nil {
		return nil, err
	}

	names := make(map[int64]string, len(snap.evaluatees))
	for _, e := range snap.evaluatees {
		names[e.ID] = e.Name
	}

	ids := snap.resolver.EvaluateeIDsInSameAngle(evaluatorID, evaluateeID, evaluationID)
	peers := make([]PeerScore, 0, len(ids))
	for _, id := range ids {
		peer := PeerScore{EvaluateeID: id, Name: names[id]}
		for _, answer := range snap.answers {
			if answer.EvaluatorID != evaluatorID || answer.EvaluateeID != id {
				continue
			}
			var score float64
			var ok bool
			if answer.QuestionType == QuestionMultipleChoice {
				score, ok = snap.normalizer.MultipleChoiceSum(answer)
			} else {
				score, ok = snap.normalizer.Normalize(answer)
			}
			if !ok {
				continue
			}
			peer.TotalScore = round2(peer.TotalScore + score)
			peer.AnswerCount++
		}
		peers = append(peers, peer)
	}
	return peers, nil
}

// ValidateCustomWeights checks a caller-supplied weight scheme against the
// canonical expectations for a stakeholder level.
func (s *Service) ValidateCustomWeights(level string, weights map[string]float64) WeightValidation {
	return ValidateWeights(level, weights)
}
