package review

import "gitlab.com/codelens-2025.net/internal/domain"

// maxInterviewReadyEdgeCases is the largest number of missing edge cases a
// submission may have and still be considered interview-ready. Policy
// constant, not reverse-engineered ground truth.
const maxInterviewReadyEdgeCases = 2

// Classify maps analysis signals to a rating tier. Deterministic and total:
// rules are evaluated in order, first match wins, and the final rule accepts
// every remaining payload. Side-effect-free by construction.
func Classify(payload *domain.AnalysisPayload) domain.Rating {
	if len(payload.EdgeCases) == 0 &&
		allStylistic(payload.Suggestions) &&
		!payload.ComplexityImprovable {
		return domain.RatingProductionGrade
	}

	if n := len(payload.EdgeCases); n > 0 && n <= maxInterviewReadyEdgeCases &&
		hasPerformanceSuggestion(payload.Suggestions) {
		return domain.RatingInterviewReady
	}

	return domain.RatingBeginner
}

// allStylistic reports whether every suggestion is stylistic; vacuously true
// for an empty list
func allStylistic(suggestions []domain.Suggestion) bool {
	for _, s := range suggestions {
		if s.Kind != domain.SuggestionStylistic {
			return false
		}
	}
	return true
}

func hasPerformanceSuggestion(suggestions []domain.Suggestion) bool {
	for _, s := range suggestions {
		if s.Kind == domain.SuggestionPerformance {
			return true
		}
	}
	return false
}
