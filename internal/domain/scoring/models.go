package scoring

// Evaluatee is a person being evaluated. Records are owned by the admin CRUD
// surface; the scoring engine reads them as an immutable snapshot.
type Evaluatee struct {
	ID       int64  `json:"id"`
	Name     string `json:"name"`
	Grade    int    `json:"grade"`
	UserType string `json:"userType"`
	Division string `json:"division"`
	Position string `json:"position"`
}

// Evaluation is an evaluation form, keyed to a grade band and user type.
type Evaluation struct {
	ID       int64  `json:"id"`
	Title    string `json:"title"`
	UserType string `json:"userType"`
	GradeMin int    `json:"gradeMin"`
	GradeMax int    `json:"gradeMax"`
}

// Assignment is a directed evaluator -> evaluatee edge for one fiscal year.
type Assignment struct {
	EvaluatorID  int64  `json:"evaluatorId"`
	EvaluateeID  int64  `json:"evaluateeId"`
	EvaluationID int64  `json:"evaluationId"`
	FiscalYear   int    `json:"fiscalYear"`
	Angle        string `json:"angle"`
}

// Answer is one evaluator's stored response to one question about one
// evaluatee. RawValue keeps the storage encoding; parsing happens at the
// normalizer boundary.
type Answer struct {
	EvaluationID int64  `json:"evaluationId"`
	EvaluatorID  int64  `json:"evaluatorId"`
	EvaluateeID  int64  `json:"evaluateeId"`
	QuestionID   int64  `json:"questionId"`
	QuestionType string `json:"questionType"`
	RawValue     string `json:"rawValue"`
	OtherText    string `json:"otherText,omitempty"`
}

// Option is a scored choice belonging to a question.
type Option struct {
	QuestionID int64   `json:"questionId"`
	OptionID   int64   `json:"optionId"`
	Score      float64 `json:"score"`
	Label      string  `json:"label"`
}

// AngleScore is the averaged score for one evaluatee from one angle.
type AngleScore struct {
	Angle       string  `json:"angle"`
	Score       float64 `json:"score"`
	AnswerCount int     `json:"answerCount"`
}

type ConfidenceInterval struct {
	Lower float64 `json:"lower"`
	Upper float64 `json:"upper"`
}

// ScoreRecord is the per-evaluatee output of one report computation. Angles
// holds only the angles for which data exists. Records are computed fresh per
// run and never persisted by the engine.
type ScoreRecord struct {
	ID                 int64              `json:"id"`
	Name               string             `json:"name"`
	Position           string             `json:"position"`
	Grade              int                `json:"grade"`
	Division           string             `json:"division"`
	UserType           string             `json:"userType"`
	Level              string             `json:"level"`
	Angles             map[string]float64 `json:"angles"`
	Average            float64            `json:"average"`
	RawAverage         float64            `json:"rawAverage"`
	TotalAnswers       int                `json:"totalAnswers"`
	CompletedAngles    int                `json:"completedAngles"`
	ExpectedAngles     int                `json:"expectedAngles"`
	CompletionRate     float64            `json:"completionRate"`
	DataQualityScore   float64            `json:"dataQualityScore"`
	ScoreVariance      float64            `json:"scoreVariance"`
	StdDeviation       float64            `json:"stdDeviation"`
	ConfidenceInterval ConfidenceInterval `json:"confidenceInterval"`
	Rating             int                `json:"rating"`
	RatingText         string             `json:"ratingText"`
	RatingColor        string             `json:"ratingColor"`
}

type Quartiles struct {
	Q1 float64 `json:"q1"`
	Q2 float64 `json:"q2"`
	Q3 float64 `json:"q3"`
}

// Distribution buckets score records by performance rating.
type Distribution struct {
	Excellent int `json:"excellent"`
	VeryGood  int `json:"veryGood"`
	Good      int `json:"good"`
	Fair      int `json:"fair"`
	Poor      int `json:"poor"`
}

// GroupStats summarizes the weighted composites of one report run. Records
// with no angle data are excluded from the statistics.
type GroupStats struct {
	TotalEvaluated int          `json:"totalEvaluated"`
	Mean           float64      `json:"mean"`
	Median         float64      `json:"median"`
	Mode           float64      `json:"mode"`
	StdDeviation   float64      `json:"stdDeviation"`
	Min            float64      `json:"min"`
	Max            float64      `json:"max"`
	Quartiles      Quartiles    `json:"quartiles"`
	Distribution   Distribution `json:"distribution"`
}

// ImprovementArea flags a group-level gap worth management attention.
type ImprovementArea struct {
	Area          string  `json:"area"`
	AffectedCount int     `json:"affectedCount"`
	Percentage    float64 `json:"percentage"`
}

// WeightValidation is the result of checking a stakeholder weight map.
type WeightValidation struct {
	Valid  bool     `json:"valid"`
	Errors []string `json:"errors,omitempty"`
}

// PeerScore is one row of a peer-comparison view: an evaluatee's total score
// from a single evaluator, using the sum rule for multiple-choice answers.
type PeerScore struct {
	EvaluateeID int64   `json:"evaluateeId"`
	Name        string  `json:"name"`
	TotalScore  float64 `json:"totalScore"`
	AnswerCount int     `json:"answerCount"`
}
