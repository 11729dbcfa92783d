package performance

import "errors"

// Performance domain errors
var (
	ErrReviewNotFound = errors.New("performance review not found")
)
