package scoring

import (
	"encoding/json"
	"log/slog"
	"math"
	"strconv"
	"strings"
)

// ValueKind tags the parsed shape of a stored answer value.
type ValueKind int

const (
	KindInvalid ValueKind = iota
	KindNumeric
	KindOptionRef
	KindOptionRefList
	KindFreeText
)

// AnswerValue is the parsed form of a raw answer. Storage lets the value be a
// number, an option id, a JSON array of option ids, or free text depending on
// question type; parsing happens once here so the rest of the engine never
// touches the raw encoding.
type AnswerValue struct {
	Kind      ValueKind
	Number    float64
	OptionID  int64
	OptionIDs []int64
	Text      string
}

// ParseAnswerValue interprets a raw stored value according to its question
// type. Unparseable values come back as KindInvalid and contribute nothing.
func ParseAnswerValue(questionType, raw string) AnswerValue {
	raw = strings.TrimSpace(raw)
	switch questionType {
	case QuestionRating:
		// Rating rows store either the score itself or a legacy option id;
		// both parse as numbers, so the normalizer disambiguates through the
		// option lookup.
		if n, err := strconv.ParseFloat(raw, 64); err == nil {
			return AnswerValue{Kind: KindNumeric, Number: n}
		}
		return AnswerValue{Kind: KindInvalid}
	case QuestionChoice:
		if id, err := strconv.ParseInt(strings.Trim(raw, `"`), 10, 64); err == nil {
			return AnswerValue{Kind: KindOptionRef, OptionID: id}
		}
		return AnswerValue{Kind: KindInvalid}
	case QuestionMultipleChoice:
		ids := parseOptionIDList(raw)
		if len(ids) == 0 {
			return AnswerValue{Kind: KindInvalid}
		}
		return AnswerValue{Kind: KindOptionRefList, OptionIDs: ids}
	case QuestionOpenText:
		return AnswerValue{Kind: KindFreeText, Text: raw}
	default:
		return AnswerValue{Kind: KindInvalid}
	}
}

// parseOptionIDList decodes a JSON array of option ids. Legacy rows sometimes
// hold a bare comma-separated list without brackets, so a comma-split fallback
// keeps those scorable.
func parseOptionIDList(raw string) []int64 {
	var ids []int64
	if err := json.Unmarshal([]byte(raw), &ids); err == nil {
		return ids
	}

	stripped := strings.Trim(raw, "[]")
	if stripped == "" {
		return nil
	}
	for _, part := range strings.Split(stripped, ",") {
		part = strings.TrimSpace(strings.Trim(strings.TrimSpace(part), `"`))
		if part == "" {
			continue
		}
		id, err := strconv.ParseInt(part, 10, 64)
		if err != nil {
			continue
		}
		ids = append(ids, id)
	}
	return ids
}

type optionKey struct {
	questionID int64
	optionID   int64
}

// OptionCache resolves option scores for one report run. It is built once from
// the snapshot and shared read-only across evaluatees.
type OptionCache struct {
	scores map[optionKey]float64
}

func NewOptionCache(options []Option) *OptionCache {
	cache := &OptionCache{scores: make(map[optionKey]float64, len(options))}
	for _, opt := range options {
		cache.scores[optionKey{opt.QuestionID, opt.OptionID}] = opt.Score
	}
	return cache
}

func (c *OptionCache) Score(questionID, optionID int64) (float64, bool) {
	score, ok := c.scores[optionKey{questionID, optionID}]
	return score, ok
}

// Normalizer converts raw answers into numeric score contributions.
type Normalizer struct {
	Options *OptionCache
}

func NewNormalizer(options *OptionCache) *Normalizer {
	return &Normalizer{Options: options}
}

// Normalize returns the score contribution of one answer, or ok=false for
// open text, unresolved option references, and malformed values. Multiple
// choice uses the average rule; peer-comparison totals use Sum instead.
func (n *Normalizer) Normalize(answer Answer) (float64, bool) {
	value := ParseAnswerValue(answer.QuestionType, answer.RawValue)
	switch value.Kind {
	case KindNumeric:
		return n.ratingScore(answer.QuestionID, value.Number), true
	case KindOptionRef:
		score, ok := n.Options.Score(answer.QuestionID, value.OptionID)
		if !ok {
			slog.Warn("answer references unknown option",
				"questionId", answer.QuestionID, "optionId", value.OptionID)
			return 0, false
		}
		return clampScore(score), true
	case KindOptionRefList:
		return n.MultipleChoiceAverage(answer)
	default:
		return 0, false
	}
}

// MultipleChoiceAverage resolves every option id and averages the scores.
// Used for display scores and angle aggregation.
func (n *Normalizer) MultipleChoiceAverage(answer Answer) (float64, bool) {
	scores := n.resolveList(answer)
	if len(scores) == 0 {
		return 0, false
	}
	var sum float64
	for _, s := range scores {
		sum += s
	}
	return clampScore(sum / float64(len(scores))), true
}

// MultipleChoiceSum resolves every option id and sums the scores. Used for
// peer-comparison totals, where more selections mean a higher total; the sum
// is deliberately not clamped to the rating scale.
func (n *Normalizer) MultipleChoiceSum(answer Answer) (float64, bool) {
	scores := n.resolveList(answer)
	if len(scores) == 0 {
		return 0, false
	}
	var sum float64
	for _, s := range scores {
		sum += s
	}
	return round2(sum), true
}

// ratingScore interprets a numeric rating value. Values on the rating scale
// are the score itself. An integral value outside the scale is a legacy row
// storing the option id, so it resolves through the option set; only when no
// option matches is it treated as an out-of-range score and clamped.
func (n *Normalizer) ratingScore(questionID int64, v float64) float64 {
	if v >= ScoreMin && v <= ScoreMax {
		return round2(v)
	}
	if id := int64(v); float64(id) == v {
		if score, ok := n.Options.Score(questionID, id); ok {
			return clampScore(score)
		}
	}
	return clampScore(v)
}

func (n *Normalizer) resolveList(answer Answer) []float64 {
	value := ParseAnswerValue(answer.QuestionType, answer.RawValue)
	if value.Kind != KindOptionRefList {
		return nil
	}
	var scores []float64
	for _, id := range value.OptionIDs {
		score, ok := n.Options.Score(answer.QuestionID, id)
		if !ok {
			continue
		}
		scores = append(scores, clampScore(score))
	}
	return scores
}

// clampScore forces a score into the rating scale and rounds to 2 decimals.
// Out-of-range inputs are a data-quality problem, not a hard failure.
func clampScore(v float64) float64 {
	if v < ScoreMin || v > ScoreMax {
		slog.Warn("score outside rating scale, clamping", "score", v)
	}
	return round2(math.Min(ScoreMax, math.Max(ScoreMin, v)))
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
