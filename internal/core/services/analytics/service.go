package analytics

import (
	"context"

	"github.com/google/uuid"

	"gitlab.com/codelens-2025.net/internal/domain"
)

// IAnalyticsService defines the interface for the read-side analytics projection
type IAnalyticsService interface {
	// Summary recomputes the aggregate statistics over an owner's
	// submission and review history. Idempotent: two calls with no
	// intervening writes yield identical output.
	Summary(ctx context.Context, ownerID uuid.UUID) (*domain.AnalyticsSummary, error)
}
