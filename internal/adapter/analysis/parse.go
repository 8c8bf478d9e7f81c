package analysis

import (
	"encoding/json"
	"fmt"
	"strings"

	"gitlab.com/codelens-2025.net/internal/domain"
	"gitlab.com/codelens-2025.net/internal/static/errs"
)

// wireSuggestion accepts either a bare string or a {text, kind} object; the
// capability is inconsistent about which it emits.
type wireSuggestion struct {
	Text string
	Kind string
}

func (s *wireSuggestion) UnmarshalJSON(data []byte) error {
	var plain string
	if err := json.Unmarshal(data, &plain); err == nil {
		s.Text = plain
		return nil
	}
	var obj struct {
		Text string `json:"text"`
		Kind string `json:"kind"`
	}
	if err := json.Unmarshal(data, &obj); err != nil {
		return err
	}
	s.Text = obj.Text
	s.Kind = obj.Kind
	return nil
}

// wirePayload mirrors the JSON document the capability is instructed to emit
type wirePayload struct {
	TimeComplexity          string           `json:"timeComplexity"`
	SpaceComplexity         string           `json:"spaceComplexity"`
	ComplexityImprovable    bool             `json:"complexityImprovable"`
	EdgeCases               []string         `json:"edgeCases"`
	CodeStructure           string           `json:"codeStructure"`
	OptimizationSuggestions []wireSuggestion `json:"optimizationSuggestions"`
	OptimizedCode           string           `json:"optimizedCode"`
	InterviewReadiness      string           `json:"interviewReadiness"`
	InterviewQuestions      []string         `json:"interviewQuestions"`
}

// ParsePayload coerces the capability's free-form response into a typed
// payload, failing with ErrAnalysisParse when required fields are missing.
func ParsePayload(raw []byte) (*domain.AnalysisPayload, error) {
	doc, ok := extractJSON(string(raw))
	if !ok {
		return nil, fmt.Errorf("%w: no JSON document in response", errs.ErrAnalysisParse)
	}

	var wire wirePayload
	if err := json.Unmarshal([]byte(doc), &wire); err != nil {
		return nil, fmt.Errorf("%w: %v", errs.ErrAnalysisParse, err)
	}

	if strings.TrimSpace(wire.TimeComplexity) == "" {
		return nil, fmt.Errorf("%w: missing time complexity", errs.ErrAnalysisParse)
	}
	if strings.TrimSpace(wire.SpaceComplexity) == "" {
		return nil, fmt.Errorf("%w: missing space complexity", errs.ErrAnalysisParse)
	}
	if strings.TrimSpace(wire.OptimizedCode) == "" {
		return nil, fmt.Errorf("%w: missing optimized code", errs.ErrAnalysisParse)
	}

	questions := compact(wire.InterviewQuestions)
	if len(questions) == 0 {
		return nil, fmt.Errorf("%w: no interview questions", errs.ErrAnalysisParse)
	}

	payload := &domain.AnalysisPayload{
		TimeComplexity:       strings.TrimSpace(wire.TimeComplexity),
		SpaceComplexity:      strings.TrimSpace(wire.SpaceComplexity),
		ComplexityImprovable: wire.ComplexityImprovable,
		EdgeCases:            compact(wire.EdgeCases),
		CodeStructure:        strings.TrimSpace(wire.CodeStructure),
		OptimizedCode:        wire.OptimizedCode,
		InterviewReadiness:   strings.TrimSpace(wire.InterviewReadiness),
		InterviewQuestions:   questions,
	}

	for _, s := range wire.OptimizationSuggestions {
		text := strings.TrimSpace(s.Text)
		if text == "" {
			continue
		}
		payload.Suggestions = append(payload.Suggestions, domain.Suggestion{
			Text: text,
			Kind: normalizeKind(s.Kind),
		})
	}

	return payload, nil
}

// normalizeKind defaults unknown or absent kinds to performance so a sloppy
// response can never promote a submission to Production-Grade
func normalizeKind(kind string) domain.SuggestionKind {
	switch domain.SuggestionKind(strings.ToLower(strings.TrimSpace(kind))) {
	case domain.SuggestionStylistic:
		return domain.SuggestionStylistic
	case domain.SuggestionCorrectness:
		return domain.SuggestionCorrectness
	default:
		return domain.SuggestionPerformance
	}
}

// extractJSON pulls the first JSON object out of a response that may wrap it
// in prose or a markdown code fence
func extractJSON(body string) (string, bool) {
	if idx := strings.Index(body, "```"); idx >= 0 {
		rest := body[idx+3:]
		rest = strings.TrimPrefix(rest, "json")
		if end := strings.Index(rest, "```"); end >= 0 {
			body = rest[:end]
		}
	}

	start := strings.Index(body, "{")
	end := strings.LastIndex(body, "}")
	if start < 0 || end <= start {
		return "", false
	}
	return body[start : end+1], true
}

func compact(items []string) []string {
	out := make([]string, 0, len(items))
	for _, item := range items {
		if trimmed := strings.TrimSpace(item); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}
