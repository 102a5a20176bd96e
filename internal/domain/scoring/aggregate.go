package scoring

import (
	"log/slog"
	"math"
)

// Aggregate combines one evaluatee's per-angle scores into a ScoreRecord
// under the supplied weight map. The composite is renormalized against the
// weights of the angles that actually have data, so a partially completed
// evaluation yields a meaningful score instead of one depressed toward zero.
// The weight map is assumed valid; batch callers validate once per run.
func Aggregate(evaluatee Evaluatee, angleScores []AngleScore, level string, weights map[string]float64) ScoreRecord {
	byAngle := make(map[string]AngleScore, len(angleScores))
	for _, as := range angleScores {
		byAngle[as.Angle] = as
	}

	expected := ExpectedAngles(weights)
	record := emptyRecordWithExpected(evaluatee, level, expected)

	var (
		weightedSum float64
		weightSum   float64
		present     []float64
		totalCount  int
	)
	for angle, weight := range weights {
		if weight <= 0 {
			continue
		}
		as, ok := byAngle[angle]
		if !ok {
			continue
		}
		score := as.Score
		if score < ScoreMin || score > ScoreMax {
			slog.Warn("angle score outside rating scale, clamping",
				"evaluateeId", evaluatee.ID, "angle", angle, "score", score)
			score = math.Min(ScoreMax, math.Max(ScoreMin, score))
		}
		record.Angles[angle] = round2(score)
		record.CompletedAngles++
		weightedSum += score * weight
		weightSum += weight
		present = append(present, score)
		totalCount += as.AnswerCount
	}

	if len(present) == 0 {
		return record
	}

	record.TotalAnswers = totalCount
	record.Average = round2(FinalCompositeScore(weightedSum/weightSum, 0))
	record.RawAverage = round2(mean(present))
	record.CompletionRate = round2(float64(record.CompletedAngles) / float64(expected) * 100)

	record.ScoreVariance = round2(populationVariance(present))
	record.StdDeviation = round2(math.Sqrt(populationVariance(present)))
	record.ConfidenceInterval = confidenceInterval(mean(present), record.StdDeviation, len(present))

	record.DataQualityScore = dataQualityScore(record.CompletionRate, totalCount, populationVariance(present))

	record.Rating, record.RatingText, record.RatingColor = RatePerformance(record.Average)
	return record
}

// EmptyRecord is the canonical record for an evaluatee with no usable angle
// data: all scores zero, rated as not evaluated. Batch rendering never has to
// branch on nil.
func EmptyRecord(evaluatee Evaluatee, level string) ScoreRecord {
	expected := ExpectedAngles(StakeholderWeights(level))
	return emptyRecordWithExpected(evaluatee, level, expected)
}

func emptyRecordWithExpected(evaluatee Evaluatee, level string, expected int) ScoreRecord {
	return ScoreRecord{
		ID:          evaluatee.ID,
		Name:        evaluatee.Name,
		Position:    evaluatee.Position,
		Grade:       evaluatee.Grade,
		Division:    evaluatee.Division,
		UserType:    evaluatee.UserType,
		Level:       level,
		Angles:      map[string]float64{},
		Rating:      RatingNotEvaluated,
		RatingText:  RatingTextNotEvaluated,
		RatingColor: RatingColorNotEvaluated,

		ExpectedAngles: expected,
	}
}

// RatePerformance buckets a weighted composite into the five-point rating
// scale. The cut points are shared by every reporting surface and must not
// drift.
func RatePerformance(score float64) (int, string, string) {
	switch {
	case score >= 4.50:
		return RatingExcellent, RatingTextExcellent, RatingColorExcellent
	case score >= 4.00:
		return RatingVeryGood, RatingTextVeryGood, RatingColorVeryGood
	case score >= 3.00:
		return RatingGood, RatingTextGood, RatingColorGood
	case score >= 2.00:
		return RatingFair, RatingTextFair, RatingColorFair
	default:
		return RatingPoor, RatingTextPoor, RatingColorPoor
	}
}

func mean(values []float64) float64 {
	if len(values) == 0 {
		return 0
	}
	var sum float64
	for _, v := range values {
		sum += v
	}
	return sum / float64(len(values))
}

// populationVariance divides by N, not N-1: the present angles are the whole
// population for one evaluatee, not a sample.
func populationVariance(values []float64) float64 {
	if len(values) == 0 {
		return 0
	}
	m := mean(values)
	var sum float64
	for _, v := range values {
		d := v - m
		sum += d * d
	}
	return sum / float64(len(values))
}

// confidenceInterval is the 95% interval around the raw mean, clamped to the
// rating scale. With a single data point there is no spread to estimate, so
// the interval degenerates to zero.
func confidenceInterval(m, stdDev float64, n int) ConfidenceInterval {
	if n <= 1 {
		return ConfidenceInterval{}
	}
	margin := 1.96 * stdDev / math.Sqrt(float64(n))
	return ConfidenceInterval{
		Lower: round2(math.Max(ScoreMin, m-margin)),
		Upper: round2(math.Min(ScoreMax, m+margin)),
	}
}

// dataQualityScore blends completion, answer volume, and score consistency
// into a 0-100 trust measure. The 0.4/0.3/0.3 weights and the answers/50 and
// variance/2 normalizers are compared across runs downstream; keep them fixed.
func dataQualityScore(completionRate float64, totalAnswers int, variance float64) float64 {
	completion := completionRate / 100
	volume := math.Min(1, float64(totalAnswers)/50)
	consistency := math.Max(0, 1-variance/2)
	return round2(100 * (0.4*completion + 0.3*volume + 0.3*consistency))
}
