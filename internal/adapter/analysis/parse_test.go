package analysis

import (
	"errors"
	"testing"

	"gitlab.com/codelens-2025.net/internal/domain"
	"gitlab.com/codelens-2025.net/internal/static/errs"
)

const completeDoc = `{
	"timeComplexity": "O(n^2)",
	"spaceComplexity": "O(1)",
	"complexityImprovable": true,
	"edgeCases": ["empty input", "  ", "single element"],
	"codeStructure": "flat and readable",
	"optimizationSuggestions": [
		"use a hash map",
		{"text": "name the helper", "kind": "stylistic"},
		{"text": "guard the nil branch", "kind": "correctness"}
	],
	"optimizedCode": "function solve() {}",
	"interviewReadiness": "nearly there",
	"interviewQuestions": ["Why quadratic?", "", "What breaks on empty input?"]
}`

func TestParsePayload_CompleteDocument(t *testing.T) {
	payload, err := ParsePayload([]byte(completeDoc))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if payload.TimeComplexity != "O(n^2)" || payload.SpaceComplexity != "O(1)" {
		t.Fatalf("complexity fields mangled: %q %q", payload.TimeComplexity, payload.SpaceComplexity)
	}
	if !payload.ComplexityImprovable {
		t.Fatalf("complexityImprovable lost")
	}
	if len(payload.EdgeCases) != 2 {
		t.Fatalf("blank edge cases must be dropped, got %v", payload.EdgeCases)
	}
	if len(payload.InterviewQuestions) != 2 {
		t.Fatalf("blank questions must be dropped, got %v", payload.InterviewQuestions)
	}
}

func TestParsePayload_SuggestionShapes(t *testing.T) {
	payload, err := ParsePayload([]byte(completeDoc))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(payload.Suggestions) != 3 {
		t.Fatalf("expected 3 suggestions, got %d", len(payload.Suggestions))
	}
	// Bare strings default to performance
	if payload.Suggestions[0].Kind != domain.SuggestionPerformance {
		t.Fatalf("bare-string suggestion must default to performance, got %s", payload.Suggestions[0].Kind)
	}
	if payload.Suggestions[1].Kind != domain.SuggestionStylistic {
		t.Fatalf("expected stylistic, got %s", payload.Suggestions[1].Kind)
	}
	if payload.Suggestions[2].Kind != domain.SuggestionCorrectness {
		t.Fatalf("expected correctness, got %s", payload.Suggestions[2].Kind)
	}
}

func TestParsePayload_FencedResponse(t *testing.T) {
	body := "Here is the analysis you asked for:\n```json\n" + completeDoc + "\n```\nLet me know if you need more."
	payload, err := ParsePayload([]byte(body))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if payload.TimeComplexity != "O(n^2)" {
		t.Fatalf("fenced document not extracted: %q", payload.TimeComplexity)
	}
}

func TestParsePayload_ProseWrappedResponse(t *testing.T) {
	body := "Sure! " + completeDoc + " Hope that helps."
	if _, err := ParsePayload([]byte(body)); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestParsePayload_Rejections(t *testing.T) {
	cases := []struct {
		name string
		body string
	}{
		{"no json at all", "I could not analyze that code."},
		{"broken json", `{"timeComplexity": "O(n)",`},
		{"missing time complexity", `{"spaceComplexity":"O(1)","optimizedCode":"x","interviewQuestions":["q"]}`},
		{"missing space complexity", `{"timeComplexity":"O(n)","optimizedCode":"x","interviewQuestions":["q"]}`},
		{"missing optimized code", `{"timeComplexity":"O(n)","spaceComplexity":"O(1)","interviewQuestions":["q"]}`},
		{"no usable questions", `{"timeComplexity":"O(n)","spaceComplexity":"O(1)","optimizedCode":"x","interviewQuestions":[" "]}`},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := ParsePayload([]byte(tc.body))
			if !errors.Is(err, errs.ErrAnalysisParse) {
				t.Fatalf("expected parse error, got %v", err)
			}
		})
	}
}

func TestNormalizeKind(t *testing.T) {
	cases := []struct {
		in   string
		want domain.SuggestionKind
	}{
		{"stylistic", domain.SuggestionStylistic},
		{" Stylistic ", domain.SuggestionStylistic},
		{"correctness", domain.SuggestionCorrectness},
		{"performance", domain.SuggestionPerformance},
		{"algorithmic", domain.SuggestionPerformance},
		{"", domain.SuggestionPerformance},
	}
	for _, tc := range cases {
		if got := normalizeKind(tc.in); got != tc.want {
			t.Fatalf("normalizeKind(%q) = %s, want %s", tc.in, got, tc.want)
		}
	}
}
