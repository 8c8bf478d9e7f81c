package secondary

import (
	"context"

	"github.com/google/uuid"

	"gitlab.com/codelens-2025.net/internal/domain"
)

type SubmissionRepository interface {
	// SaveSubmission persists a new submission
	SaveSubmission(ctx context.Context, submission *domain.Submission) error

	// GetSubmission retrieves a submission by ID; (nil, nil) when absent
	GetSubmission(ctx context.Context, submissionID uuid.UUID) (*domain.Submission, error)

	// ListByOwner retrieves an owner's submissions, newest first, ties
	// broken by id descending for determinism
	ListByOwner(ctx context.Context, ownerID uuid.UUID) ([]*domain.Submission, error)

	// ListHistoryByOwner retrieves an owner's submissions joined with their
	// review rating, newest first
	ListHistoryByOwner(ctx context.Context, ownerID uuid.UUID) ([]*domain.HistoryEntry, error)
}
