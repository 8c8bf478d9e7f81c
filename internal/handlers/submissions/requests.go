package submissions

import (
	"time"

	"github.com/google/uuid"
)

// SubmitCodeRequest represents a request to submit code for review
type SubmitCodeRequest struct {
	Language           string `json:"language"`
	Category           string `json:"category"`
	ProblemDescription string `json:"problemDescription"`
	Code               string `json:"code"`
}

// SubmitCodeResponse represents a response to a submit request
type SubmitCodeResponse struct {
	SubmissionID uuid.UUID `json:"submissionId"`
}

// HistoryItem is one submission in the history listing, with its review
// rating when a review exists
type HistoryItem struct {
	ID                 uuid.UUID  `json:"id"`
	Language           string     `json:"language"`
	Category           string     `json:"category"`
	ProblemDescription string     `json:"problemDescription"`
	CreatedAt          time.Time  `json:"createdAt"`
	Rating             *string    `json:"rating,omitempty"`
	ReviewedAt         *time.Time `json:"reviewedAt,omitempty"`
}
