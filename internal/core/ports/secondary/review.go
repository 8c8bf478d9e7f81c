package secondary

import (
	"context"

	"github.com/google/uuid"

	"gitlab.com/codelens-2025.net/internal/domain"
)

type ReviewRepository interface {
	// ReplaceReview persists the review, atomically replacing any existing
	// review for the same submission. A concurrent reader observes either
	// the old complete review or the new complete one.
	ReplaceReview(ctx context.Context, review *domain.Review) error

	// GetBySubmissionID retrieves the review for a submission; (nil, nil) when absent
	GetBySubmissionID(ctx context.Context, submissionID uuid.UUID) (*domain.Review, error)

	// GetBySubmissionIDs retrieves reviews for a set of submissions
	GetBySubmissionIDs(ctx context.Context, submissionIDs []uuid.UUID) ([]*domain.Review, error)
}
