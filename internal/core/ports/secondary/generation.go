package secondary

import (
	"context"

	"github.com/google/uuid"

	"gitlab.com/codelens-2025.net/internal/domain"
)

// GenerationStatusRepository tracks transient review-generation state so the
// UI can poll while an analysis is in flight. Entries expire on their own;
// a successful generation clears the entry explicitly.
type GenerationStatusRepository interface {
	MarkPending(ctx context.Context, submissionID uuid.UUID) error
	MarkFailed(ctx context.Context, submissionID uuid.UUID, reason string) error
	Clear(ctx context.Context, submissionID uuid.UUID) error

	// GetStatus retrieves the current marker; (nil, nil) when none exists
	GetStatus(ctx context.Context, submissionID uuid.UUID) (*domain.GenerationStatus, error)
}
