package submission

import (
	"context"

	"github.com/google/uuid"

	"gitlab.com/codelens-2025.net/internal/domain"
)

// SubmitInput carries the raw, untrusted fields of a submission request
type SubmitInput struct {
	Language           string
	Category           string
	ProblemDescription string
	Code               string
}

// ISubmissionService defines the interface for managing code submissions
type ISubmissionService interface {
	// Submit validates and persists a new submission, returning its id
	Submit(ctx context.Context, ownerID uuid.UUID, input SubmitInput) (uuid.UUID, error)

	// GetSubmission retrieves a submission by ID
	GetSubmission(ctx context.Context, submissionID uuid.UUID) (*domain.Submission, error)

	// ListHistory retrieves an owner's submissions joined with review
	// ratings, newest first
	ListHistory(ctx context.Context, ownerID uuid.UUID) ([]*domain.HistoryEntry, error)
}
