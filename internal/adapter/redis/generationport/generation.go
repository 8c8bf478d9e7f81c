// package generationport tracks transient review-generation state in Redis
package generationport

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/google/uuid"

	"gitlab.com/codelens-2025.net/internal/core/ports/primary"
	"gitlab.com/codelens-2025.net/internal/core/ports/secondary"
	"gitlab.com/codelens-2025.net/internal/domain"
)

const (
	generationKeyPrefix  = "generation:"
	generationExpiration = 10 * time.Minute
)

var _ secondary.GenerationStatusRepository = (*GenerationRepository)(nil)

// GenerationRepository implements the GenerationStatusRepository interface with Redis
type GenerationRepository struct {
	redisClient *redis.Client
	logger      primary.Logger
}

// NewGenerationRepository creates a new Redis generation status repository
func NewGenerationRepository(redisClient *redis.Client, logger primary.Logger) *GenerationRepository {
	return &GenerationRepository{
		redisClient: redisClient,
		logger:      logger,
	}
}

// MarkPending records that a generation attempt is in flight
func (r *GenerationRepository) MarkPending(ctx context.Context, submissionID uuid.UUID) error {
	return r.set(ctx, submissionID, domain.GenerationPending, "")
}

// MarkFailed records that the last generation attempt failed
func (r *GenerationRepository) MarkFailed(ctx context.Context, submissionID uuid.UUID, reason string) error {
	return r.set(ctx, submissionID, domain.GenerationFailed, reason)
}

// Clear removes the marker after a successful generation
func (r *GenerationRepository) Clear(ctx context.Context, submissionID uuid.UUID) error {
	if err := r.redisClient.Del(ctx, key(submissionID)).Err(); err != nil {
		r.logger.Error("Failed to clear generation status", "error", err)
		return fmt.Errorf("failed to clear generation status: %w", err)
	}
	return nil
}

// GetStatus retrieves the current marker for a submission
func (r *GenerationRepository) GetStatus(ctx context.Context, submissionID uuid.UUID) (*domain.GenerationStatus, error) {
	statusJSON, err := r.redisClient.Get(ctx, key(submissionID)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, nil
		}
		r.logger.Error("Failed to get generation status", "error", err)
		return nil, fmt.Errorf("failed to get generation status: %w", err)
	}

	var status domain.GenerationStatus
	if err := json.Unmarshal(statusJSON, &status); err != nil {
		return nil, fmt.Errorf("failed to unmarshal generation status: %w", err)
	}

	return &status, nil
}

func (r *GenerationRepository) set(ctx context.Context, submissionID uuid.UUID, state domain.GenerationState, reason string) error {
	status := domain.GenerationStatus{
		SubmissionID: submissionID.String(),
		State:        state,
		Reason:       reason,
		UpdatedAt:    time.Now().UTC(),
	}

	statusJSON, err := json.Marshal(status)
	if err != nil {
		r.logger.Error("Failed to marshal generation status", "error", err)
		return fmt.Errorf("failed to marshal generation status: %w", err)
	}

	// TTL keeps stale markers from outliving abandoned attempts
	if err := r.redisClient.Set(ctx, key(submissionID), statusJSON, generationExpiration).Err(); err != nil {
		r.logger.Error("Failed to save generation status", "error", err)
		return fmt.Errorf("failed to save generation status: %w", err)
	}

	return nil
}

func key(submissionID uuid.UUID) string {
	return fmt.Sprintf("%s%s", generationKeyPrefix, submissionID)
}
