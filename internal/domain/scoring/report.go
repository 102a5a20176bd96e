package scoring

import (
	"log/slog"
	"math"
	"sort"
)

// BuildReport runs the aggregator over a collection of evaluatees. Evaluatees
// without angle data get the canonical empty record. A non-nil override weight
// map replaces the canonical table for every evaluatee; otherwise each
// evaluatee's stakeholder level selects its table. Weight validation happens
// once per distinct level per batch, and an invalid map degrades every
// affected evaluatee to the empty record instead of aborting the run.
func BuildReport(evaluatees []Evaluatee, allAngleScores map[int64][]AngleScore, grade13Policy string, override map[string]float64) []ScoreRecord {
	validated := map[string]bool{}
	records := make([]ScoreRecord, 0, len(evaluatees))

	for _, evaluatee := range evaluatees {
		level := ResolveStakeholderLevel(evaluatee.Grade, grade13Policy)

		weights := override
		if weights == nil {
			weights = StakeholderWeights(level)
		}

		valid, checked := validated[level]
		if !checked {
			result := ValidateWeights(level, weights)
			if !result.Valid {
				slog.Error("weight map failed validation, affected evaluatees degrade to empty records",
					"level", level, "errors", result.Errors)
			}
			validated[level] = result.Valid
			valid = result.Valid
		}
		if !valid {
			records = append(records, EmptyRecord(evaluatee, level))
			continue
		}

		records = append(records, Aggregate(evaluatee, allAngleScores[evaluatee.ID], level, weights))
	}
	return records
}

// Summarize computes cohort statistics over the weighted composites. Records
// with no completed angles carry no signal and are excluded; the distribution
// still counts every record so not-evaluated people remain visible.
func Summarize(records []ScoreRecord) GroupStats {
	stats := GroupStats{}
	var scores []float64
	for _, record := range records {
		switch record.Rating {
		case RatingExcellent:
			stats.Distribution.Excellent++
		case RatingVeryGood:
			stats.Distribution.VeryGood++
		case RatingGood:
			stats.Distribution.Good++
		case RatingFair:
			stats.Distribution.Fair++
		default:
			stats.Distribution.Poor++
		}
		if record.CompletedAngles == 0 {
			continue
		}
		scores = append(scores, record.Average)
	}
	stats.TotalEvaluated = len(scores)
	if len(scores) == 0 {
		return stats
	}

	sort.Float64s(scores)
	stats.Mean = round2(mean(scores))
	stats.Median = round2(percentile(scores, 50))
	stats.Mode = mode(scores)
	stats.StdDeviation = round2(math.Sqrt(populationVariance(scores)))
	stats.Min = scores[0]
	stats.Max = scores[len(scores)-1]
	stats.Quartiles = Quartiles{
		Q1: round2(percentile(scores, 25)),
		Q2: round2(percentile(scores, 50)),
		Q3: round2(percentile(scores, 75)),
	}
	return stats
}

// ImprovementAreas flags group-level gaps: evaluatees whose self and superior
// scores diverge by more than one point, and evaluatees whose composite falls
// below the "good" line.
func ImprovementAreas(records []ScoreRecord) []ImprovementArea {
	var selfAwareness, performance int
	var evaluated int
	for _, record := range records {
		if record.CompletedAngles == 0 {
			continue
		}
		evaluated++
		self, hasSelf := record.Angles[AngleSelf]
		top, hasTop := record.Angles[AngleTop]
		if hasSelf && hasTop && math.Abs(self-top) > 1.0 {
			selfAwareness++
		}
		if record.Average < 3.0 {
			performance++
		}
	}

	var areas []ImprovementArea
	if selfAwareness > 0 {
		areas = append(areas, ImprovementArea{
			Area:          "self_awareness_gap",
			AffectedCount: selfAwareness,
			Percentage:    round2(float64(selfAwareness) / float64(evaluated) * 100),
		})
	}
	if performance > 0 {
		areas = append(areas, ImprovementArea{
			Area:          "performance_gap",
			AffectedCount: performance,
			Percentage:    round2(float64(performance) / float64(evaluated) * 100),
		})
	}
	return areas
}

// percentile interpolates linearly between the two nearest ranks of a sorted
// slice.
func percentile(sorted []float64, p float64) float64 {
	if len(sorted) == 0 {
		return 0
	}
	if len(sorted) == 1 {
		return sorted[0]
	}
	rank := p / 100 * float64(len(sorted)-1)
	lower := int(math.Floor(rank))
	upper := int(math.Ceil(rank))
	if lower == upper {
		return sorted[lower]
	}
	frac := rank - float64(lower)
	return sorted[lower] + frac*(sorted[upper]-sorted[lower])
}

// mode returns the most frequent value; ties break toward the smallest value,
// i.e. the first at maximum frequency in sorted order.
func mode(sorted []float64) float64 {
	best := sorted[0]
	bestCount := 0
	i := 0
	for i < len(sorted) {
		j := i
		for j < len(sorted) && sorted[j] == sorted[i] {
			j++
		}
		if j-i > bestCount {
			bestCount = j - i
			best = sorted[i]
		}
		i = j
	}
	return best
}
