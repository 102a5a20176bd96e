package scoring

import "errors"

var ErrEvaluationNotFound = errors.New("evaluation not found")
