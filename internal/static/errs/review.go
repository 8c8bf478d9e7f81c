package errs

import (
	"errors"
	"fmt"
)

var (
	ErrSubmissionNotFound = errors.New("submission not found")
	ErrReviewNotFound     = errors.New("review not found")
	ErrAccessDenied       = errors.New("access denied")

	// ErrAnalysisRequest covers an unreachable or rejecting analysis
	// capability after the retry budget is spent. Transient; the user
	// may retry the whole generation.
	ErrAnalysisRequest = errors.New("analysis request failed")

	// ErrAnalysisParse covers a response that could not be coerced to the
	// required schema. Retrying the same response is futile, so this is
	// never retried automatically.
	ErrAnalysisParse = errors.New("analysis response could not be parsed")
)

// ValidationError reports a user-correctable problem with submitted input
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}

func NewValidation(field, reason string) error {
	return &ValidationError{Field: field, Reason: reason}
}

// IsValidation reports whether err is (or wraps) a ValidationError
func IsValidation(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}
