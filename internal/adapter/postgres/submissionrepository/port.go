// package submissionrepository contains the PostgreSQL implementation of the submission repository
package submissionrepository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/jmoiron/sqlx"

	"gitlab.com/codelens-2025.net/internal/core/ports/primary"
	"gitlab.com/codelens-2025.net/internal/core/ports/secondary"
	"gitlab.com/codelens-2025.net/internal/domain"
	querybuilder "gitlab.com/codelens-2025.net/internal/utils"
)

var _ secondary.SubmissionRepository = (*SubmissionRepository)(nil)

// SubmissionRepository implements the SubmissionRepository interface with PostgreSQL
type SubmissionRepository struct {
	db     *sqlx.DB
	logger primary.Logger
	schema string
}

// NewSubmissionRepository creates a new PostgreSQL submission repository
func NewSubmissionRepository(db *sqlx.DB, logger primary.Logger, schema string) *SubmissionRepository {
	return &SubmissionRepository{
		db:     db,
		logger: logger,
		schema: schema,
	}
}

// SaveSubmission inserts a submission. Submissions are immutable, so there
// is no conflict handling; a duplicate id is a hard error.
func (r *SubmissionRepository) SaveSubmission(ctx context.Context, sub *domain.Submission) error {
	subTbl := domain.GetSubmissionTable()
	query, args := querybuilder.NewQueryBuilder(r.schema).
		Insert(
			subTbl.ID, subTbl.OwnerID,
			subTbl.Language, subTbl.Category,
			subTbl.ProblemDescription, subTbl.Code,
			subTbl.CreatedAt,
		).
		Into(subTbl.TableName()).
		Values(
			sub.ID, sub.OwnerID,
			sub.Language, sub.Category,
			sub.ProblemDescription, sub.Code,
			sub.CreatedAt,
		).
		Build()

	query = sqlx.Rebind(sqlx.DOLLAR, query)
	_, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		r.logger.Error("Failed to save submission", "error", err)
		return fmt.Errorf("failed to save submission: %w", err)
	}

	return nil
}

// GetSubmission retrieves a submission from PostgreSQL by ID
func (r *SubmissionRepository) GetSubmission(ctx context.Context, submissionID uuid.UUID) (*domain.Submission, error) {
	query := fmt.Sprintf(`
		SELECT id, owner_id, language, category, problem_description, code, created_at
		FROM %s.submissions
		WHERE id = $1
	`, r.schema)

	var sub domain.Submission
	err := r.db.QueryRowContext(ctx, query, submissionID).Scan(
		&sub.ID,
		&sub.OwnerID,
		&sub.Language,
		&sub.Category,
		&sub.ProblemDescription,
		&sub.Code,
		&sub.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		r.logger.Error("Failed to get submission", "error", err)
		return nil, fmt.Errorf("failed to get submission: %w", err)
	}

	return &sub, nil
}

// ListByOwner retrieves all of an owner's submissions, newest first with id
// as the deterministic tiebreak
func (r *SubmissionRepository) ListByOwner(ctx context.Context, ownerID uuid.UUID) ([]*domain.Submission, error) {
	query := fmt.Sprintf(`
		SELECT id, owner_id, language, category, problem_description, code, created_at
		FROM %s.submissions
		WHERE owner_id = $1
		ORDER BY created_at DESC, id DESC
	`, r.schema)

	rows, err := r.db.QueryContext(ctx, query, ownerID)
	if err != nil {
		r.logger.Error("Failed to list submissions", "error", err)
		return nil, fmt.Errorf("failed to list submissions: %w", err)
	}
	defer rows.Close()

	subs := make([]*domain.Submission, 0)
	for rows.Next() {
		var sub domain.Submission
		err := rows.Scan(
			&sub.ID,
			&sub.OwnerID,
			&sub.Language,
			&sub.Category,
			&sub.ProblemDescription,
			&sub.Code,
			&sub.CreatedAt,
		)
		if err != nil {
			r.logger.Error("Failed to scan submission row", "error", err)
			return nil, fmt.Errorf("failed to scan submission row: %w", err)
		}
		subs = append(subs, &sub)
	}

	if err := rows.Err(); err != nil {
		r.logger.Error("Error iterating submission rows", "error", err)
		return nil, fmt.Errorf("error iterating submission rows: %w", err)
	}

	return subs, nil
}

// ListHistoryByOwner retrieves an owner's submissions joined with their
// review rating, newest first
func (r *SubmissionRepository) ListHistoryByOwner(ctx context.Context, ownerID uuid.UUID) ([]*domain.HistoryEntry, error) {
	subTbl := domain.GetSubmissionTable()
	revTbl := domain.GetReviewTable()

	query, args := querybuilder.NewQueryBuilder(r.schema).
		Select(
			"submissions.id", "submissions.owner_id",
			"submissions.language", "submissions.category",
			"submissions.problem_description", "submissions.code",
			"submissions.created_at",
			"r.rating", "r.created_at AS reviewed_at",
		).
		From(subTbl.TableName()).
		LeftJoin(
			fmt.Sprintf("%s.%s", r.schema, revTbl.TableName()), "r",
			"r.submission_id = submissions.id").
		Where("submissions.owner_id = ?", ownerID).
		OrderBy("submissions.created_at", false).
		OrderBy("submissions.id", false).
		Build()

	query = sqlx.Rebind(sqlx.DOLLAR, query)
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		r.logger.Error("Failed to list history", "error", err)
		return nil, fmt.Errorf("failed to list history: %w", err)
	}
	defer rows.Close()

	entries := make([]*domain.HistoryEntry, 0)
	for rows.Next() {
		var entry domain.HistoryEntry
		var rating sql.NullString
		var reviewedAt sql.NullTime

		err := rows.Scan(
			&entry.Submission.ID,
			&entry.Submission.OwnerID,
			&entry.Submission.Language,
			&entry.Submission.Category,
			&entry.Submission.ProblemDescription,
			&entry.Submission.Code,
			&entry.Submission.CreatedAt,
			&rating,
			&reviewedAt,
		)
		if err != nil {
			r.logger.Error("Failed to scan history row", "error", err)
			return nil, fmt.Errorf("failed to scan history row: %w", err)
		}

		if rating.Valid {
			r := domain.Rating(rating.String)
			entry.Rating = &r
		}
		if reviewedAt.Valid {
			entry.ReviewedAt = &reviewedAt.Time
		}

		entries = append(entries, &entry)
	}

	if err := rows.Err(); err != nil {
		r.logger.Error("Error iterating history rows", "error", err)
		return nil, fmt.Errorf("error iterating history rows: %w", err)
	}

	return entries, nil
}
