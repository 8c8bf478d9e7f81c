package domain

// SuggestionKind classifies what an optimization suggestion addresses
type SuggestionKind string

const (
	SuggestionStylistic   SuggestionKind = "stylistic"
	SuggestionPerformance SuggestionKind = "performance"
	SuggestionCorrectness SuggestionKind = "correctness"
)

// Suggestion is a single optimization suggestion extracted from the analysis
type Suggestion struct {
	Text string         `json:"text"`
	Kind SuggestionKind `json:"kind"`
}

// AnalysisPayload is the typed result coerced from the external analysis
// capability's raw response. All required fields are guaranteed non-empty
// by the requester; a payload that cannot satisfy that is never produced.
type AnalysisPayload struct {
	TimeComplexity       string
	SpaceComplexity      string
	ComplexityImprovable bool
	EdgeCases            []string
	CodeStructure        string
	Suggestions          []Suggestion
	OptimizedCode        string
	InterviewReadiness   string
	InterviewQuestions   []string
}

// SuggestionTexts flattens the suggestions for persistence on the Review
func (p *AnalysisPayload) SuggestionTexts() []string {
	texts := make([]string, 0, len(p.Suggestions))
	for _, s := range p.Suggestions {
		texts = append(texts, s.Text)
	}
	return texts
}
