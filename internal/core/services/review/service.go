package review

import (
	"context"

	"github.com/google/uuid"

	"gitlab.com/codelens-2025.net/internal/domain"
)

// ReviewBundle pairs a submission with its review; Review is nil when no
// review has been generated yet.
type ReviewBundle struct {
	Submission *domain.Submission `json:"submission"`
	Review     *domain.Review     `json:"review"`
}

// IReviewService defines the interface for generating and reading reviews
type IReviewService interface {
	// GenerateReview runs the full analyze-classify-assemble pipeline for a
	// submission and returns the persisted review id. A prior review for
	// the same submission is replaced, never duplicated.
	GenerateReview(ctx context.Context, ownerID, submissionID uuid.UUID) (uuid.UUID, error)

	// GetReview retrieves a submission together with its review, if any
	GetReview(ctx context.Context, ownerID, submissionID uuid.UUID) (*ReviewBundle, error)

	// GetGenerationStatus reports the transient state of an in-flight or
	// failed generation attempt; nil when no marker exists. Only the
	// submission's owner may poll it.
	GetGenerationStatus(ctx context.Context, ownerID, submissionID uuid.UUID) (*domain.GenerationStatus, error)
}
