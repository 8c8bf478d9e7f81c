package submission

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"gitlab.com/codelens-2025.net/internal/core/ports/primary"
	"gitlab.com/codelens-2025.net/internal/core/ports/secondary"
	"gitlab.com/codelens-2025.net/internal/domain"
	"gitlab.com/codelens-2025.net/internal/static/errs"
)

// maxCodeBytes bounds the accepted code size
const maxCodeBytes = 64 << 10

var _ ISubmissionService = (*SubmissionService)(nil)

// SubmissionService implements the SubmissionService interface
type SubmissionService struct {
	submissionRepo secondary.SubmissionRepository
	logger         primary.Logger
}

// NewSubmissionService creates a new submission service
func NewSubmissionService(submissionRepo secondary.SubmissionRepository, logger primary.Logger) *SubmissionService {
	return &SubmissionService{
		submissionRepo: submissionRepo,
		logger:         logger,
	}
}

// Submit validates the input, builds the canonical submission record and
// persists it. Pure validation plus a single write; no retries.
func (s *SubmissionService) Submit(ctx context.Context, ownerID uuid.UUID, input SubmitInput) (uuid.UUID, error) {
	if err := validate(input); err != nil {
		return uuid.Nil, err
	}

	sub := domain.NewSubmission(
		ownerID,
		domain.Language(input.Language),
		domain.Category(input.Category),
		strings.TrimSpace(input.ProblemDescription),
		input.Code,
	)

	if err := s.submissionRepo.SaveSubmission(ctx, sub); err != nil {
		s.logger.Error("Failed to save submission", "submissionId", sub.ID, "error", err)
		return uuid.Nil, fmt.Errorf("failed to save submission: %w", err)
	}

	s.logger.Info("Submission created", "submissionId", sub.ID, "ownerId", ownerID, "language", sub.Language)
	return sub.ID, nil
}

// GetSubmission retrieves a submission by ID
func (s *SubmissionService) GetSubmission(ctx context.Context, submissionID uuid.UUID) (*domain.Submission, error) {
	sub, err := s.submissionRepo.GetSubmission(ctx, submissionID)
	if err != nil {
		s.logger.Error("Failed to get submission", "submissionId", submissionID, "error", err)
		return nil, fmt.Errorf("failed to get submission: %w", err)
	}
	if sub == nil {
		return nil, errs.ErrSubmissionNotFound
	}
	return sub, nil
}

// ListHistory retrieves an owner's submissions with their review ratings
func (s *SubmissionService) ListHistory(ctx context.Context, ownerID uuid.UUID) ([]*domain.HistoryEntry, error) {
	entries, err := s.submissionRepo.ListHistoryByOwner(ctx, ownerID)
	if err != nil {
		s.logger.Error("Failed to list history", "ownerId", ownerID, "error", err)
		return nil, fmt.Errorf("failed to list history: %w", err)
	}
	return entries, nil
}

func validate(input SubmitInput) error {
	if !domain.Language(input.Language).Valid() {
		return errs.NewValidation("language", fmt.Sprintf("unsupported language '%s'", input.Language))
	}
	if !domain.Category(input.Category).Valid() {
		return errs.NewValidation("category", fmt.Sprintf("unsupported category '%s'", input.Category))
	}
	if strings.TrimSpace(input.ProblemDescription) == "" {
		return errs.NewValidation("problemDescription", "must not be empty")
	}
	if strings.TrimSpace(input.Code) == "" {
		return errs.NewValidation("code", "must not be empty")
	}
	if len(input.Code) > maxCodeBytes {
		return errs.NewValidation("code", fmt.Sprintf("exceeds %d bytes", maxCodeBytes))
	}
	return nil
}
