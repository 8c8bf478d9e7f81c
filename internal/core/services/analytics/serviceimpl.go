package analytics

import (
	"context"
	"fmt"
	"sort"

	"github.com/google/uuid"

	"gitlab.com/codelens-2025.net/internal/core/ports/primary"
	"gitlab.com/codelens-2025.net/internal/core/ports/secondary"
	"gitlab.com/codelens-2025.net/internal/domain"
)

// recentLimit bounds the recent-submissions list in the summary
const recentLimit = 5

var _ IAnalyticsService = (*AnalyticsService)(nil)

// AnalyticsService implements the AnalyticsService interface
type AnalyticsService struct {
	submissionRepo secondary.SubmissionRepository
	reviewRepo     secondary.ReviewRepository
	logger         primary.Logger
}

// NewAnalyticsService creates a new analytics service
func NewAnalyticsService(
	submissionRepo secondary.SubmissionRepository,
	reviewRepo secondary.ReviewRepository,
	logger primary.Logger,
) *AnalyticsService {
	return &AnalyticsService{
		submissionRepo: submissionRepo,
		reviewRepo:     reviewRepo,
		logger:         logger,
	}
}

// Summary scans the owner's submissions joined with their reviews and builds
// the aggregate projection. Submissions without a review count toward totals
// and language/category distributions but not toward the rating distribution.
func (s *AnalyticsService) Summary(ctx context.Context, ownerID uuid.UUID) (*domain.AnalyticsSummary, error) {
	subs, err := s.submissionRepo.ListByOwner(ctx, ownerID)
	if err != nil {
		s.logger.Error("Failed to list submissions", "ownerId", ownerID, "error", err)
		return nil, fmt.Errorf("failed to list submissions: %w", err)
	}

	summary := &domain.AnalyticsSummary{
		TotalSubmissions:     len(subs),
		RatingDistribution:   make(map[domain.Rating]int, 3),
		LanguageDistribution: make(map[domain.Language]int),
		CategoryDistribution: make(map[domain.Category]int),
		RecentSubmissions:    []domain.RecentSubmission{},
	}
	for _, rating := range domain.AllRatings() {
		summary.RatingDistribution[rating] = 0
	}

	for _, sub := range subs {
		summary.LanguageDistribution[sub.Language]++
		summary.CategoryDistribution[sub.Category]++
	}

	if len(subs) > 0 {
		ids := make([]uuid.UUID, 0, len(subs))
		for _, sub := range subs {
			ids = append(ids, sub.ID)
		}
		reviews, err := s.reviewRepo.GetBySubmissionIDs(ctx, ids)
		if err != nil {
			s.logger.Error("Failed to list reviews", "ownerId", ownerID, "error", err)
			return nil, fmt.Errorf("failed to list reviews: %w", err)
		}
		for _, rev := range reviews {
			summary.RatingDistribution[rev.Rating]++
		}
	}

	summary.RecentSubmissions = recent(subs)

	return summary, nil
}

// recent returns the top-N projections by createdAt descending, ties broken
// by id descending so the output is deterministic regardless of store order
func recent(subs []*domain.Submission) []domain.RecentSubmission {
	sorted := make([]*domain.Submission, len(subs))
	copy(sorted, subs)
	sort.Slice(sorted, func(i, j int) bool {
		if !sorted[i].CreatedAt.Equal(sorted[j].CreatedAt) {
			return sorted[i].CreatedAt.After(sorted[j].CreatedAt)
		}
		return sorted[i].ID.String() > sorted[j].ID.String()
	})

	limit := recentLimit
	if len(sorted) < limit {
		limit = len(sorted)
	}

	out := make([]domain.RecentSubmission, 0, limit)
	for _, sub := range sorted[:limit] {
		out = append(out, domain.RecentSubmission{
			ID:        sub.ID,
			Language:  sub.Language,
			Category:  sub.Category,
			CreatedAt: sub.CreatedAt,
		})
	}
	return out
}
