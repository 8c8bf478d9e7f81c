package analysis

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/google/uuid"

	"gitlab.com/codelens-2025.net/internal/config"
	"gitlab.com/codelens-2025.net/internal/domain"
	"gitlab.com/codelens-2025.net/internal/static/errs"
)

type nopLogger struct{}

func (nopLogger) Info(msg string, args ...interface{})  {}
func (nopLogger) Error(msg string, args ...interface{}) {}
func (nopLogger) Debug(msg string, args ...interface{}) {}
func (nopLogger) Warn(msg string, args ...interface{})  {}

const analysisDoc = `{
	"timeComplexity": "O(n)",
	"spaceComplexity": "O(n)",
	"edgeCases": ["empty input"],
	"optimizationSuggestions": [{"text": "inline the helper", "kind": "stylistic"}],
	"optimizedCode": "function solve() {}",
	"interviewQuestions": ["Why linear?"]
}`

func newTestClient(t *testing.T, handler http.HandlerFunc) (*Client, *httptest.Server) {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	client := NewClient(&config.AnalysisConfig{
		URL:        server.URL,
		APIKey:     "test-key",
		Timeout:    2 * time.Second,
		MaxRetries: 2,
	}, nopLogger{})
	// No waiting between attempts in tests
	client.backoff = []time.Duration{0, 0}
	return client, server
}

func testSubmission() *domain.Submission {
	return domain.NewSubmission(uuid.New(), domain.LanguageJavascript, domain.CategoryDSA, "two sum", "function twoSum() {}")
}

func TestAnalyze_Success(t *testing.T) {
	var gotAuth string
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		w.Write([]byte(analysisDoc))
	})

	payload, err := client.Analyze(context.Background(), testSubmission())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if payload.TimeComplexity != "O(n)" {
		t.Fatalf("payload not parsed: %+v", payload)
	}
	if gotAuth != "Bearer test-key" {
		t.Fatalf("expected bearer auth header, got %q", gotAuth)
	}
}

func TestAnalyze_RecoversAfterServerErrors(t *testing.T) {
	attempts := 0
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		attempts++
		if attempts <= 2 {
			http.Error(w, "overloaded", http.StatusServiceUnavailable)
			return
		}
		w.Write([]byte(analysisDoc))
	})

	payload, err := client.Analyze(context.Background(), testSubmission())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if payload == nil {
		t.Fatalf("expected a payload after recovery")
	}
	if attempts != 3 {
		t.Fatalf("expected 3 attempts, got %d", attempts)
	}
}

func TestAnalyze_RetryBudgetExhausted(t *testing.T) {
	attempts := 0
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		attempts++
		http.Error(w, "down", http.StatusInternalServerError)
	})

	_, err := client.Analyze(context.Background(), testSubmission())
	if !errors.Is(err, errs.ErrAnalysisRequest) {
		t.Fatalf("expected analysis request error, got %v", err)
	}
	// Initial attempt plus MaxRetries
	if attempts != 3 {
		t.Fatalf("expected 3 attempts, got %d", attempts)
	}
}

func TestAnalyze_ClientErrorNotRetried(t *testing.T) {
	attempts := 0
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		attempts++
		http.Error(w, "bad request", http.StatusBadRequest)
	})

	_, err := client.Analyze(context.Background(), testSubmission())
	if !errors.Is(err, errs.ErrAnalysisRequest) {
		t.Fatalf("expected analysis request error, got %v", err)
	}
	if attempts != 1 {
		t.Fatalf("4xx must not be retried, got %d attempts", attempts)
	}
}

func TestAnalyze_MalformedResponseNotRetried(t *testing.T) {
	attempts := 0
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		attempts++
		w.Write([]byte("this is not a review"))
	})

	_, err := client.Analyze(context.Background(), testSubmission())
	if !errors.Is(err, errs.ErrAnalysisParse) {
		t.Fatalf("expected parse error, got %v", err)
	}
	if attempts != 1 {
		t.Fatalf("parse failures must not be retried, got %d attempts", attempts)
	}
}

func TestAnalyze_UnreachableCapability(t *testing.T) {
	client, server := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {})
	server.Close()

	_, err := client.Analyze(context.Background(), testSubmission())
	if !errors.Is(err, errs.ErrAnalysisRequest) {
		t.Fatalf("expected analysis request error, got %v", err)
	}
}

func TestAnalyze_ContextCancelled(t *testing.T) {
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "down", http.StatusInternalServerError)
	})
	client.backoff = []time.Duration{time.Hour}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := client.Analyze(ctx, testSubmission())
	if !errors.Is(err, errs.ErrAnalysisRequest) {
		t.Fatalf("expected analysis request error, got %v", err)
	}
}
