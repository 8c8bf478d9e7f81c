package domain

import (
	"time"

	"github.com/google/uuid"
)

// HistoryEntry is a submission joined with its review rating, if any
type HistoryEntry struct {
	Submission Submission
	Rating     *Rating
	ReviewedAt *time.Time
}

// RecentSubmission is the trimmed projection of a submission carried in the
// analytics summary (the UI's recent-activity list needs no code body).
type RecentSubmission struct {
	ID        uuid.UUID `json:"id"`
	Language  Language  `json:"language"`
	Category  Category  `json:"category"`
	CreatedAt time.Time `json:"createdAt"`
}

// AnalyticsSummary is a derived, on-demand projection over an owner's
// submission and review history. Never persisted; recomputed per request.
type AnalyticsSummary struct {
	TotalSubmissions     int                `json:"totalSubmissions"`
	RatingDistribution   map[Rating]int     `json:"ratingDistribution"`
	LanguageDistribution map[Language]int   `json:"languageDistribution"`
	CategoryDistribution map[Category]int   `json:"categoryDistribution"`
	RecentSubmissions    []RecentSubmission `json:"recentSubmissions"`
}
