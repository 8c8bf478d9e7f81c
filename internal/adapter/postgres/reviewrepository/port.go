// package reviewrepository contains the PostgreSQL implementation of the review repository
package reviewrepository

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/jmoiron/sqlx"

	"gitlab.com/codelens-2025.net/internal/core/ports/primary"
	"gitlab.com/codelens-2025.net/internal/core/ports/secondary"
	"gitlab.com/codelens-2025.net/internal/domain"
)

var _ secondary.ReviewRepository = (*ReviewRepository)(nil)

// ReviewRepository implements the ReviewRepository interface with PostgreSQL
type ReviewRepository struct {
	db     *sqlx.DB
	logger primary.Logger
	schema string
}

// NewReviewRepository creates a new PostgreSQL review repository
func NewReviewRepository(db *sqlx.DB, logger primary.Logger, schema string) *ReviewRepository {
	return &ReviewRepository{
		db:     db,
		logger: logger,
		schema: schema,
	}
}

// ReplaceReview upserts the review keyed by submission id. The UNIQUE
// constraint on submission_id plus ON CONFLICT DO UPDATE makes the replace
// atomic: a reader sees the old row or the new one, never a partial write.
// Last writer wins when two generations race for the same submission.
func (r *ReviewRepository) ReplaceReview(ctx context.Context, rev *domain.Review) error {
	edgeCases, err := json.Marshal(rev.EdgeCases)
	if err != nil {
		return fmt.Errorf("failed to marshal edge cases: %w", err)
	}
	suggestions, err := json.Marshal(rev.OptimizationSuggestions)
	if err != nil {
		return fmt.Errorf("failed to marshal optimization suggestions: %w", err)
	}
	questions, err := json.Marshal(rev.InterviewQuestions)
	if err != nil {
		return fmt.Errorf("failed to marshal interview questions: %w", err)
	}

	query := fmt.Sprintf(`
		INSERT INTO %s.reviews (
			id, submission_id, rating, time_complexity, space_complexity,
			edge_cases, code_structure, optimization_suggestions,
			optimized_code, interview_readiness, interview_questions, created_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
		ON CONFLICT (submission_id) DO UPDATE SET
			id = EXCLUDED.id,
			rating = EXCLUDED.rating,
			time_complexity = EXCLUDED.time_complexity,
			space_complexity = EXCLUDED.space_complexity,
			edge_cases = EXCLUDED.edge_cases,
			code_structure = EXCLUDED.code_structure,
			optimization_suggestions = EXCLUDED.optimization_suggestions,
			optimized_code = EXCLUDED.optimized_code,
			interview_readiness = EXCLUDED.interview_readiness,
			interview_questions = EXCLUDED.interview_questions,
			created_at = EXCLUDED.created_at
	`, r.schema)

	_, err = r.db.ExecContext(
		ctx,
		query,
		rev.ID,
		rev.SubmissionID,
		rev.Rating,
		rev.TimeComplexity,
		rev.SpaceComplexity,
		edgeCases,
		rev.CodeStructure,
		suggestions,
		rev.OptimizedCode,
		rev.InterviewReadiness,
		questions,
		rev.CreatedAt,
	)
	if err != nil {
		r.logger.Error("Failed to replace review", "error", err)
		return fmt.Errorf("failed to replace review: %w", err)
	}

	return nil
}

// GetBySubmissionID retrieves the review for a submission
func (r *ReviewRepository) GetBySubmissionID(ctx context.Context, submissionID uuid.UUID) (*domain.Review, error) {
	query := fmt.Sprintf(`
		SELECT id, submission_id, rating, time_complexity, space_complexity,
			   edge_cases, code_structure, optimization_suggestions,
			   optimized_code, interview_readiness, interview_questions, created_at
		FROM %s.reviews
		WHERE submission_id = $1
	`, r.schema)

	rev, err := r.scanReview(r.db.QueryRowContext(ctx, query, submissionID))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		r.logger.Error("Failed to get review", "error", err)
		return nil, fmt.Errorf("failed to get review: %w", err)
	}

	return rev, nil
}

// GetBySubmissionIDs retrieves reviews for a set of submissions
func (r *ReviewRepository) GetBySubmissionIDs(ctx context.Context, submissionIDs []uuid.UUID) ([]*domain.Review, error) {
	if len(submissionIDs) == 0 {
		return []*domain.Review{}, nil
	}

	query, args, err := sqlx.In(fmt.Sprintf(`
		SELECT id, submission_id, rating, time_complexity, space_complexity,
			   edge_cases, code_structure, optimization_suggestions,
			   optimized_code, interview_readiness, interview_questions, created_at
		FROM %s.reviews
		WHERE submission_id IN (?)
	`, r.schema), submissionIDs)
	if err != nil {
		return nil, fmt.Errorf("failed to build review query: %w", err)
	}

	query = r.db.Rebind(query)
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		r.logger.Error("Failed to list reviews", "error", err)
		return nil, fmt.Errorf("failed to list reviews: %w", err)
	}
	defer rows.Close()

	reviews := make([]*domain.Review, 0)
	for rows.Next() {
		rev, err := r.scanReview(rows)
		if err != nil {
			r.logger.Error("Failed to scan review row", "error", err)
			return nil, fmt.Errorf("failed to scan review row: %w", err)
		}
		reviews = append(reviews, rev)
	}

	if err := rows.Err(); err != nil {
		r.logger.Error("Error iterating review rows", "error", err)
		return nil, fmt.Errorf("error iterating review rows: %w", err)
	}

	return reviews, nil
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func (r *ReviewRepository) scanReview(row rowScanner) (*domain.Review, error) {
	var rev domain.Review
	var edgeCases, suggestions, questions []byte

	err := row.Scan(
		&rev.ID,
		&rev.SubmissionID,
		&rev.Rating,
		&rev.TimeComplexity,
		&rev.SpaceComplexity,
		&edgeCases,
		&rev.CodeStructure,
		&suggestions,
		&rev.OptimizedCode,
		&rev.InterviewReadiness,
		&questions,
		&rev.CreatedAt,
	)
	if err != nil {
		return nil, err
	}

	if err := json.Unmarshal(edgeCases, &rev.EdgeCases); err != nil {
		return nil, fmt.Errorf("failed to unmarshal edge cases: %w", err)
	}
	if err := json.Unmarshal(suggestions, &rev.OptimizationSuggestions); err != nil {
		return nil, fmt.Errorf("failed to unmarshal optimization suggestions: %w", err)
	}
	if err := json.Unmarshal(questions, &rev.InterviewQuestions); err != nil {
		return nil, fmt.Errorf("failed to unmarshal interview questions: %w", err)
	}

	return &rev, nil
}
