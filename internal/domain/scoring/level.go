package scoring

import (
	"fmt"
	"math"
)

// Stakeholder-angle weight tables, keyed by stakeholder level. The management
// table is the one the report surfaces agreed on; see DESIGN.md for the
// rejected "enhanced" variant.
var stakeholderWeights = map[string]map[string]float64{
	LevelOperational: {
		AngleSelf: 0.20,
		AngleTop:  0.50,
		AngleLeft: 0.30,
	},
	LevelManagement: {
		AngleSelf:   0.15,
		AngleTop:    0.35,
		AngleBottom: 0.25,
		AngleLeft:   0.20,
		AngleRight:  0.05,
	},
	// Grade-13 governors under the dedicated-form policy evaluate with the
	// management weights until a dedicated table exists.
	LevelGovernor: {
		AngleSelf:   0.15,
		AngleTop:    0.35,
		AngleBottom: 0.25,
		AngleLeft:   0.20,
		AngleRight:  0.05,
	},
}

// Criteria weight tables, keyed by criteria level. These feed the per-aspect
// breakdown only; the final composite remains the stakeholder score.
var criteriaWeights = map[string]map[string]float64{
	LevelOperational: {
		"iq":             0.30,
		"eq":             0.30,
		"aq_tq":          0.25,
		"sustainability": 0.15,
	},
	LevelMiddle: {
		"leadership":    0.20,
		"vision":        0.15,
		"communication": 0.15,
		"creativity":    0.15,
		"ethics":        0.20,
		"relationships": 0.15,
	},
	LevelSenior: {
		"leadership":    0.25,
		"vision":        0.20,
		"communication": 0.12,
		"creativity":    0.13,
		"ethics":        0.18,
		"relationships": 0.12,
	},
}

// ResolveLevel maps a grade onto a criteria-axis level. Grades below the
// defined bands fall into the nearest defined level; grade 13 and above
// follows the configured policy.
func ResolveLevel(grade int, grade13Policy string) string {
	switch {
	case grade >= 13:
		if grade13Policy == Grade13PolicyDedicated {
			return LevelGovernor
		}
		return LevelSenior
	case grade >= 11:
		return LevelSenior
	case grade >= 9:
		return LevelMiddle
	default:
		return LevelOperational
	}
}

// ResolveStakeholderLevel maps a grade onto the coarser stakeholder-axis
// banding used by the angle weight tables.
func ResolveStakeholderLevel(grade int, grade13Policy string) string {
	if grade >= 13 && grade13Policy == Grade13PolicyDedicated {
		return LevelGovernor
	}
	if grade >= 9 {
		return LevelManagement
	}
	return LevelOperational
}

// StakeholderWeights returns a copy of the canonical angle weight map for a
// stakeholder level. Callers may mutate the copy freely.
func StakeholderWeights(level string) map[string]float64 {
	table, ok := stakeholderWeights[level]
	if !ok {
		return nil
	}
	weights := make(map[string]float64, len(table))
	for angle, w := range table {
		weights[angle] = w
	}
	return weights
}

// CriteriaWeights returns a copy of the criteria weight map for a criteria
// level.
func CriteriaWeights(level string) map[string]float64 {
	table, ok := criteriaWeights[level]
	if !ok {
		return nil
	}
	weights := make(map[string]float64, len(table))
	for name, w := range table {
		weights[name] = w
	}
	return weights
}

// ValidateWeights checks a stakeholder weight map: the weights must sum to
// 1.0 within tolerance, each weight must lie in [0,1], and every angle the
// canonical table expects for the level must be present.
func ValidateWeights(level string, weights map[string]float64) WeightValidation {
	var errs []string

	var sum float64
	for angle, w := range weights {
		if w < 0 || w > 1 {
			errs = append(errs, fmt.Sprintf("weight for angle %q is %.3f, must be in [0,1]", angle, w))
		}
		sum += w
	}
	if math.Abs(sum-1.0) > WeightTolerance {
		errs = append(errs, fmt.Sprintf("weights sum to %.4f, must sum to 1.0", sum))
	}

	if canonical, ok := stakeholderWeights[level]; ok {
		for _, angle := range AllAngles {
			if canonical[angle] <= 0 {
				continue
			}
			if _, present := weights[angle]; !present {
				errs = append(errs, fmt.Sprintf("required angle %q missing from weight map", angle))
			}
		}
	}

	return WeightValidation{Valid: len(errs) == 0, Errors: errs}
}

// FinalCompositeScore combines the stakeholder composite with the criteria
// breakdown score. The criteria axis is computed for reporting but not yet
// blended into the final score; callers must go through this function so a
// future blend changes one place.
func FinalCompositeScore(stakeholderScore, criteriaScore float64) float64 {
	_ = criteriaScore
	return stakeholderScore
}

// ExpectedAngles counts the angles a level actually evaluates: those carrying
// a positive weight.
func ExpectedAngles(weights map[string]float64) int {
	count := 0
	for _, w := range weights {
		if w > 0 {
			count++
		}
	}
	return count
}
