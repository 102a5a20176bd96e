package scoring

const (
	AngleSelf    = "self"
	AngleTop     = "top"
	AngleBottom  = "bottom"
	AngleLeft    = "left"
	AngleRight   = "right"
	AngleUnknown = "unknown"

	QuestionRating         = "rating"
	QuestionChoice         = "choice"
	QuestionMultipleChoice = "multiple_choice"
	QuestionOpenText       = "open_text"

	// Criteria-axis levels.
	LevelOperational = "5-8"
	LevelMiddle      = "9-10"
	LevelSenior      = "11-12"
	LevelGovernor    = "13"

	// Stakeholder-axis levels (coarser banding).
	LevelManagement = "9-12"

	Grade13PolicyManagement = "management"
	Grade13PolicyDedicated  = "dedicated"

	ScoreMin = 0.0
	ScoreMax = 5.0

	WeightTolerance = 0.001

	RatingExcellent    = 5
	RatingVeryGood     = 4
	RatingGood         = 3
	RatingFair         = 2
	RatingPoor         = 1
	RatingNotEvaluated = 1

	RatingTextExcellent    = "ดีเยี่ยม"
	RatingTextVeryGood     = "ดีมาก"
	RatingTextGood         = "ดี"
	RatingTextFair         = "ควรปรับปรุง"
	RatingTextPoor         = "ต้องปรับปรุงมาก"
	RatingTextNotEvaluated = "ไม่ได้ประเมิน"

	RatingColorExcellent    = "green"
	RatingColorVeryGood     = "teal"
	RatingColorGood         = "blue"
	RatingColorFair         = "orange"
	RatingColorPoor         = "red"
	RatingColorNotEvaluated = "gray"

	UserTypeInternal = "internal"
	UserTypeExternal = "external"
)

// Angles evaluated per stakeholder level; order is the presentation order.
var AllAngles = []string{AngleSelf, AngleTop, AngleBottom, AngleLeft, AngleRight}
