package review

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/google/uuid"

	"gitlab.com/codelens-2025.net/internal/domain"
	"gitlab.com/codelens-2025.net/internal/static/errs"
)

type nopLogger struct{}

func (nopLogger) Info(msg string, args ...interface{})  {}
func (nopLogger) Error(msg string, args ...interface{}) {}
func (nopLogger) Debug(msg string, args ...interface{}) {}
func (nopLogger) Warn(msg string, args ...interface{})  {}

type fakeSubmissionRepo struct {
	subs map[uuid.UUID]*domain.Submission
}

func (f *fakeSubmissionRepo) SaveSubmission(ctx context.Context, sub *domain.Submission) error {
	f.subs[sub.ID] = sub
	return nil
}

func (f *fakeSubmissionRepo) GetSubmission(ctx context.Context, id uuid.UUID) (*domain.Submission, error) {
	return f.subs[id], nil
}

func (f *fakeSubmissionRepo) ListByOwner(ctx context.Context, ownerID uuid.UUID) ([]*domain.Submission, error) {
	out := make([]*domain.Submission, 0)
	for _, sub := range f.subs {
		if sub.OwnerID == ownerID {
			out = append(out, sub)
		}
	}
	return out, nil
}

func (f *fakeSubmissionRepo) ListHistoryByOwner(ctx context.Context, ownerID uuid.UUID) ([]*domain.HistoryEntry, error) {
	return nil, nil
}

type fakeReviewRepo struct {
	bySubmission map[uuid.UUID]*domain.Review
	replaceErr   error
}

func (f *fakeReviewRepo) ReplaceReview(ctx context.Context, rev *domain.Review) error {
	if f.replaceErr != nil {
		return f.replaceErr
	}
	f.bySubmission[rev.SubmissionID] = rev
	return nil
}

func (f *fakeReviewRepo) GetBySubmissionID(ctx context.Context, submissionID uuid.UUID) (*domain.Review, error) {
	return f.bySubmission[submissionID], nil
}

func (f *fakeReviewRepo) GetBySubmissionIDs(ctx context.Context, ids []uuid.UUID) ([]*domain.Review, error) {
	out := make([]*domain.Review, 0)
	for _, id := range ids {
		if rev, ok := f.bySubmission[id]; ok {
			out = append(out, rev)
		}
	}
	return out, nil
}

type fakeAnalyzer struct {
	payload *domain.AnalysisPayload
	err     error
	calls   int
}

func (f *fakeAnalyzer) Analyze(ctx context.Context, sub *domain.Submission) (*domain.AnalysisPayload, error) {
	f.calls++
	if f.err != nil {
		return nil, f.err
	}
	return f.payload, nil
}

type fakeGenerationRepo struct {
	statuses map[uuid.UUID]*domain.GenerationStatus
}

func (f *fakeGenerationRepo) MarkPending(ctx context.Context, id uuid.UUID) error {
	f.statuses[id] = &domain.GenerationStatus{SubmissionID: id.String(), State: domain.GenerationPending}
	return nil
}

func (f *fakeGenerationRepo) MarkFailed(ctx context.Context, id uuid.UUID, reason string) error {
	f.statuses[id] = &domain.GenerationStatus{SubmissionID: id.String(), State: domain.GenerationFailed, Reason: reason}
	return nil
}

func (f *fakeGenerationRepo) Clear(ctx context.Context, id uuid.UUID) error {
	delete(f.statuses, id)
	return nil
}

func (f *fakeGenerationRepo) GetStatus(ctx context.Context, id uuid.UUID) (*domain.GenerationStatus, error) {
	return f.statuses[id], nil
}

func validPayload() *domain.AnalysisPayload {
	return &domain.AnalysisPayload{
		TimeComplexity:  "O(n^2), nested iteration over the input",
		SpaceComplexity: "O(1)",
		EdgeCases:       []string{"empty array"},
		CodeStructure:   "readable but monolithic",
		Suggestions: []domain.Suggestion{
			{Text: "use a set for O(n) lookups", Kind: domain.SuggestionPerformance},
		},
		OptimizedCode:      "function solve(xs) { /* ... */ }",
		InterviewReadiness: "close, tighten complexity reasoning",
		InterviewQuestions: []string{"Why is the nested loop quadratic?"},
	}
}

func newFixture(analyzer *fakeAnalyzer) (*ReviewService, *fakeSubmissionRepo, *fakeReviewRepo, *fakeGenerationRepo, *domain.Submission) {
	subRepo := &fakeSubmissionRepo{subs: make(map[uuid.UUID]*domain.Submission)}
	revRepo := &fakeReviewRepo{bySubmission: make(map[uuid.UUID]*domain.Review)}
	genRepo := &fakeGenerationRepo{statuses: make(map[uuid.UUID]*domain.GenerationStatus)}

	sub := domain.NewSubmission(uuid.New(), domain.LanguageJavascript, domain.CategoryDSA, "two sum", "function twoSum() {}")
	subRepo.subs[sub.ID] = sub

	svc := NewReviewService(subRepo, revRepo, analyzer, genRepo, nopLogger{})
	return svc, subRepo, revRepo, genRepo, sub
}

func TestGenerateReview_PersistsCompleteReview(t *testing.T) {
	analyzer := &fakeAnalyzer{payload: validPayload()}
	svc, _, revRepo, genRepo, sub := newFixture(analyzer)

	reviewID, err := svc.GenerateReview(context.Background(), sub.OwnerID, sub.ID)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if reviewID == uuid.Nil {
		t.Fatalf("expected a review id")
	}

	rev := revRepo.bySubmission[sub.ID]
	if rev == nil {
		t.Fatalf("expected a persisted review")
	}
	if rev.ID != reviewID {
		t.Fatalf("returned id %s does not match persisted %s", reviewID, rev.ID)
	}
	if rev.Rating != domain.RatingInterviewReady {
		t.Fatalf("expected Interview-Ready, got %s", rev.Rating)
	}
	if len(rev.InterviewQuestions) < 1 {
		t.Fatalf("review must carry at least one interview question")
	}
	if genRepo.statuses[sub.ID] != nil {
		t.Fatalf("expected generation marker cleared after success")
	}
}

func TestGenerateReview_SecondRunReplaces(t *testing.T) {
	analyzer := &fakeAnalyzer{payload: validPayload()}
	svc, _, revRepo, _, sub := newFixture(analyzer)

	first, err := svc.GenerateReview(context.Background(), sub.OwnerID, sub.ID)
	if err != nil {
		t.Fatalf("first generation failed: %v", err)
	}
	second, err := svc.GenerateReview(context.Background(), sub.OwnerID, sub.ID)
	if err != nil {
		t.Fatalf("second generation failed: %v", err)
	}
	if first == second {
		t.Fatalf("replacement must mint a new review id")
	}

	if len(revRepo.bySubmission) != 1 {
		t.Fatalf("expected exactly one review, got %d", len(revRepo.bySubmission))
	}
	if revRepo.bySubmission[sub.ID].ID != second {
		t.Fatalf("expected the second review to win")
	}
}

func TestGenerateReview_AnalyzerFailurePersistsNothing(t *testing.T) {
	analyzerErr := fmt.Errorf("%w: retry budget exhausted", errs.ErrAnalysisRequest)
	analyzer := &fakeAnalyzer{err: analyzerErr}
	svc, _, revRepo, genRepo, sub := newFixture(analyzer)

	_, err := svc.GenerateReview(context.Background(), sub.OwnerID, sub.ID)
	if !errors.Is(err, errs.ErrAnalysisRequest) {
		t.Fatalf("expected analysis request error, got %v", err)
	}

	if len(revRepo.bySubmission) != 0 {
		t.Fatalf("no review may be persisted on failure")
	}
	status := genRepo.statuses[sub.ID]
	if status == nil || status.State != domain.GenerationFailed {
		t.Fatalf("expected a FAILED marker, got %+v", status)
	}
}

func TestGenerateReview_SubmissionNotFound(t *testing.T) {
	analyzer := &fakeAnalyzer{payload: validPayload()}
	svc, _, _, _, sub := newFixture(analyzer)

	_, err := svc.GenerateReview(context.Background(), sub.OwnerID, uuid.New())
	if !errors.Is(err, errs.ErrSubmissionNotFound) {
		t.Fatalf("expected submission not found, got %v", err)
	}
	if analyzer.calls != 0 {
		t.Fatalf("analyzer must not be called for a missing submission")
	}
}

func TestGenerateReview_ForeignSubmissionDenied(t *testing.T) {
	analyzer := &fakeAnalyzer{payload: validPayload()}
	svc, _, _, _, sub := newFixture(analyzer)

	_, err := svc.GenerateReview(context.Background(), uuid.New(), sub.ID)
	if !errors.Is(err, errs.ErrAccessDenied) {
		t.Fatalf("expected access denied, got %v", err)
	}
}

func TestGetReview_BeforeGenerationReturnsNilReview(t *testing.T) {
	analyzer := &fakeAnalyzer{payload: validPayload()}
	svc, _, _, _, sub := newFixture(analyzer)

	bundle, err := svc.GetReview(context.Background(), sub.OwnerID, sub.ID)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if bundle.Submission == nil || bundle.Submission.ID != sub.ID {
		t.Fatalf("expected the submission back")
	}
	if bundle.Review != nil {
		t.Fatalf("expected no review before generation, got %+v", bundle.Review)
	}
}

func TestGetGenerationStatus_OwnerSeesFailureMarker(t *testing.T) {
	analyzer := &fakeAnalyzer{err: fmt.Errorf("%w: retry budget exhausted", errs.ErrAnalysisRequest)}
	svc, _, _, _, sub := newFixture(analyzer)

	if _, err := svc.GenerateReview(context.Background(), sub.OwnerID, sub.ID); err == nil {
		t.Fatalf("expected generation to fail")
	}

	status, err := svc.GetGenerationStatus(context.Background(), sub.OwnerID, sub.ID)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if status == nil || status.State != domain.GenerationFailed {
		t.Fatalf("expected a FAILED marker, got %+v", status)
	}
}

func TestGetGenerationStatus_ForeignSubmissionDenied(t *testing.T) {
	analyzer := &fakeAnalyzer{err: fmt.Errorf("%w: retry budget exhausted", errs.ErrAnalysisRequest)}
	svc, _, _, _, sub := newFixture(analyzer)

	_, _ = svc.GenerateReview(context.Background(), sub.OwnerID, sub.ID)

	_, err := svc.GetGenerationStatus(context.Background(), uuid.New(), sub.ID)
	if !errors.Is(err, errs.ErrAccessDenied) {
		t.Fatalf("status must not leak to other users, got %v", err)
	}
}

func TestGetGenerationStatus_SubmissionNotFound(t *testing.T) {
	analyzer := &fakeAnalyzer{payload: validPayload()}
	svc, _, _, _, sub := newFixture(analyzer)

	_, err := svc.GetGenerationStatus(context.Background(), sub.OwnerID, uuid.New())
	if !errors.Is(err, errs.ErrSubmissionNotFound) {
		t.Fatalf("expected submission not found, got %v", err)
	}
}

func TestGetReview_AfterGeneration(t *testing.T) {
	analyzer := &fakeAnalyzer{payload: validPayload()}
	svc, _, _, _, sub := newFixture(analyzer)

	reviewID, err := svc.GenerateReview(context.Background(), sub.OwnerID, sub.ID)
	if err != nil {
		t.Fatalf("generation failed: %v", err)
	}

	bundle, err := svc.GetReview(context.Background(), sub.OwnerID, sub.ID)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if bundle.Review == nil || bundle.Review.ID != reviewID {
		t.Fatalf("expected the generated review back")
	}
}
