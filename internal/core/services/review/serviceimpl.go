package review

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"gitlab.com/codelens-2025.net/internal/core/ports/primary"
	"gitlab.com/codelens-2025.net/internal/core/ports/secondary"
	"gitlab.com/codelens-2025.net/internal/domain"
	"gitlab.com/codelens-2025.net/internal/static/errs"
)

// generationBudget bounds one whole generation attempt, including the
// analyzer's internal retries.
const generationBudget = 2 * time.Minute

var _ IReviewService = (*ReviewService)(nil)

// ReviewService implements the ReviewService interface
type ReviewService struct {
	submissionRepo secondary.SubmissionRepository
	reviewRepo     secondary.ReviewRepository
	analyzer       secondary.CodeAnalyzer
	generationRepo secondary.GenerationStatusRepository
	logger         primary.Logger
}

// NewReviewService creates a new review service
func NewReviewService(
	submissionRepo secondary.SubmissionRepository,
	reviewRepo secondary.ReviewRepository,
	analyzer secondary.CodeAnalyzer,
	generationRepo secondary.GenerationStatusRepository,
	logger primary.Logger,
) *ReviewService {
	return &ReviewService{
		submissionRepo: submissionRepo,
		reviewRepo:     reviewRepo,
		analyzer:       analyzer,
		generationRepo: generationRepo,
		logger:         logger,
	}
}

// GenerateReview runs the analyze-classify-assemble pipeline. Any analyzer
// failure is a whole-operation failure: nothing is persisted and the
// submission stays reviewable for a later retry.
func (s *ReviewService) GenerateReview(ctx context.Context, ownerID, submissionID uuid.UUID) (uuid.UUID, error) {
	sub, err := s.submissionRepo.GetSubmission(ctx, submissionID)
	if err != nil {
		s.logger.Error("Failed to get submission", "submissionId", submissionID, "error", err)
		return uuid.Nil, fmt.Errorf("failed to get submission: %w", err)
	}
	if sub == nil {
		return uuid.Nil, errs.ErrSubmissionNotFound
	}
	if sub.OwnerID != ownerID {
		return uuid.Nil, errs.ErrAccessDenied
	}

	if err := s.generationRepo.MarkPending(ctx, submissionID); err != nil {
		// The marker is advisory; generation proceeds without it
		s.logger.Warn("Failed to mark generation pending", "submissionId", submissionID, "error", err)
	}

	// Detach from the caller: a disconnect must not discard a completed
	// analysis, so the pipeline runs on its own bounded context.
	genCtx, cancel := context.WithTimeout(context.Background(), generationBudget)
	defer cancel()

	payload, err := s.analyzer.Analyze(genCtx, sub)
	if err != nil {
		s.logger.Error("Analysis failed", "submissionId", submissionID, "error", err)
		s.markFailed(submissionID, err.Error())
		return uuid.Nil, err
	}

	rating := Classify(payload)

	rev := &domain.Review{
		ID:                      uuid.New(),
		SubmissionID:            submissionID,
		Rating:                  rating,
		TimeComplexity:          payload.TimeComplexity,
		SpaceComplexity:         payload.SpaceComplexity,
		EdgeCases:               payload.EdgeCases,
		CodeStructure:           payload.CodeStructure,
		OptimizationSuggestions: payload.SuggestionTexts(),
		OptimizedCode:           payload.OptimizedCode,
		InterviewReadiness:      payload.InterviewReadiness,
		InterviewQuestions:      payload.InterviewQuestions,
		CreatedAt:               time.Now().UTC(),
	}

	if err := s.reviewRepo.ReplaceReview(genCtx, rev); err != nil {
		s.logger.Error("Failed to persist review", "submissionId", submissionID, "error", err)
		s.markFailed(submissionID, "storage failure")
		return uuid.Nil, fmt.Errorf("failed to persist review: %w", err)
	}

	if err := s.generationRepo.Clear(genCtx, submissionID); err != nil {
		s.logger.Warn("Failed to clear generation marker", "submissionId", submissionID, "error", err)
	}

	s.logger.Info("Review generated", "submissionId", submissionID, "reviewId", rev.ID, "rating", rating)
	return rev.ID, nil
}

// GetReview retrieves a submission together with its review, if any
func (s *ReviewService) GetReview(ctx context.Context, ownerID, submissionID uuid.UUID) (*ReviewBundle, error) {
	sub, err := s.submissionRepo.GetSubmission(ctx, submissionID)
	if err != nil {
		s.logger.Error("Failed to get submission", "submissionId", submissionID, "error", err)
		return nil, fmt.Errorf("failed to get submission: %w", err)
	}
	if sub == nil {
		return nil, errs.ErrSubmissionNotFound
	}
	if sub.OwnerID != ownerID {
		return nil, errs.ErrAccessDenied
	}

	rev, err := s.reviewRepo.GetBySubmissionID(ctx, submissionID)
	if err != nil {
		s.logger.Error("Failed to get review", "submissionId", submissionID, "error", err)
		return nil, fmt.Errorf("failed to get review: %w", err)
	}

	return &ReviewBundle{Submission: sub, Review: rev}, nil
}

// GetGenerationStatus reports the transient generation marker for a
// submission. The failure reason may carry analyzer details, so the marker is
// only readable by the submission's owner.
func (s *ReviewService) GetGenerationStatus(ctx context.Context, ownerID, submissionID uuid.UUID) (*domain.GenerationStatus, error) {
	sub, err := s.submissionRepo.GetSubmission(ctx, submissionID)
	if err != nil {
		s.logger.Error("Failed to get submission", "submissionId", submissionID, "error", err)
		return nil, fmt.Errorf("failed to get submission: %w", err)
	}
	if sub == nil {
		return nil, errs.ErrSubmissionNotFound
	}
	if sub.OwnerID != ownerID {
		return nil, errs.ErrAccessDenied
	}

	status, err := s.generationRepo.GetStatus(ctx, submissionID)
	if err != nil {
		s.logger.Error("Failed to get generation status", "submissionId", submissionID, "error", err)
		return nil, fmt.Errorf("failed to get generation status: %w", err)
	}
	return status, nil
}

func (s *ReviewService) markFailed(submissionID uuid.UUID, reason string) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := s.generationRepo.MarkFailed(ctx, submissionID, reason); err != nil {
		s.logger.Warn("Failed to mark generation failed", "submissionId", submissionID, "error", err)
	}
}
