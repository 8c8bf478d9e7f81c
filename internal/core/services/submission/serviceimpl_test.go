package submission

import (
	"context"
	"errors"
	"strings"
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
	subs    map[uuid.UUID]*domain.Submission
	saveErr error
}

func (f *fakeSubmissionRepo) SaveSubmission(ctx context.Context, sub *domain.Submission) error {
	if f.saveErr != nil {
		return f.saveErr
	}
	f.subs[sub.ID] = sub
	return nil
}

func (f *fakeSubmissionRepo) GetSubmission(ctx context.Context, id uuid.UUID) (*domain.Submission, error) {
	return f.subs[id], nil
}

func (f *fakeSubmissionRepo) ListByOwner(ctx context.Context, ownerID uuid.UUID) ([]*domain.Submission, error) {
	return nil, nil
}

func (f *fakeSubmissionRepo) ListHistoryByOwner(ctx context.Context, ownerID uuid.UUID) ([]*domain.HistoryEntry, error) {
	return nil, nil
}

func newService() (*SubmissionService, *fakeSubmissionRepo) {
	repo := &fakeSubmissionRepo{subs: make(map[uuid.UUID]*domain.Submission)}
	return NewSubmissionService(repo, nopLogger{}), repo
}

func validInput() SubmitInput {
	return SubmitInput{
		Language:           "javascript",
		Category:           "DSA",
		ProblemDescription: "Find two numbers that sum to a target",
		Code:               "function twoSum(nums, target) { return []; }",
	}
}

func TestSubmit_Success(t *testing.T) {
	svc, repo := newService()

	id, err := svc.Submit(context.Background(), uuid.New(), validInput())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if id == uuid.Nil {
		t.Fatalf("expected a submission id")
	}

	sub := repo.subs[id]
	if sub == nil {
		t.Fatalf("expected the submission persisted")
	}
	if sub.Language != domain.LanguageJavascript || sub.Category != domain.CategoryDSA {
		t.Fatalf("unexpected enums: %s %s", sub.Language, sub.Category)
	}
	if sub.CreatedAt.IsZero() {
		t.Fatalf("expected a creation timestamp")
	}
}

func TestSubmit_TrimsDescription(t *testing.T) {
	svc, repo := newService()

	input := validInput()
	input.ProblemDescription = "  padded description  "

	id, err := svc.Submit(context.Background(), uuid.New(), input)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := repo.subs[id].ProblemDescription; got != "padded description" {
		t.Fatalf("expected trimmed description, got %q", got)
	}
}

func TestSubmit_ValidationRejections(t *testing.T) {
	cases := []struct {
		name   string
		field  string
		mutate func(*SubmitInput)
	}{
		{"unknown language", "language", func(in *SubmitInput) { in.Language = "cobol" }},
		{"empty language", "language", func(in *SubmitInput) { in.Language = "" }},
		{"unknown category", "category", func(in *SubmitInput) { in.Category = "frontend" }},
		{"blank description", "problemDescription", func(in *SubmitInput) { in.ProblemDescription = "   " }},
		{"empty code", "code", func(in *SubmitInput) { in.Code = "" }},
		{"whitespace code", "code", func(in *SubmitInput) { in.Code = "\n\t " }},
		{"oversized code", "code", func(in *SubmitInput) { in.Code = strings.Repeat("x", (64<<10)+1) }},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			svc, repo := newService()

			input := validInput()
			tc.mutate(&input)

			_, err := svc.Submit(context.Background(), uuid.New(), input)
			var verr *errs.ValidationError
			if !errors.As(err, &verr) {
				t.Fatalf("expected a validation error, got %v", err)
			}
			if verr.Field != tc.field {
				t.Fatalf("expected field %q, got %q", tc.field, verr.Field)
			}
			if len(repo.subs) != 0 {
				t.Fatalf("nothing may be persisted on validation failure")
			}
		})
	}
}

func TestSubmit_CodeAtLimitAccepted(t *testing.T) {
	svc, _ := newService()

	input := validInput()
	input.Code = strings.Repeat("x", 64<<10)

	if _, err := svc.Submit(context.Background(), uuid.New(), input); err != nil {
		t.Fatalf("code at the byte limit must be accepted, got %v", err)
	}
}

func TestGetSubmission_NotFound(t *testing.T) {
	svc, _ := newService()

	_, err := svc.GetSubmission(context.Background(), uuid.New())
	if !errors.Is(err, errs.ErrSubmissionNotFound) {
		t.Fatalf("expected submission not found, got %v", err)
	}
}
