package domain

import "time"

// GenerationState is the transient state of a review-generation attempt
type GenerationState string

const (
	GenerationPending GenerationState = "PENDING"
	GenerationFailed  GenerationState = "FAILED"
)

// GenerationStatus is a short-lived marker kept while a review is being
// generated (or after the last attempt failed) so the UI can poll. The
// persisted Review itself is the success signal; no SUCCEEDED state exists.
type GenerationStatus struct {
	SubmissionID string          `json:"submissionId"`
	State        GenerationState `json:"state"`
	Reason       string          `json:"reason,omitempty"`
	UpdatedAt    time.Time       `json:"updatedAt"`
}
