package domain

import (
	"time"

	"github.com/google/uuid"
)

// Rating represents the coarse quality tier assigned to a submission
type Rating string

const (
	RatingBeginner        Rating = "Beginner"
	RatingInterviewReady  Rating = "Interview-Ready"
	RatingProductionGrade Rating = "Production-Grade"
)

// AllRatings lists every tier; the analytics rating distribution always
// carries all of them, defaulting to zero.
func AllRatings() []Rating {
	return []Rating{RatingBeginner, RatingInterviewReady, RatingProductionGrade}
}

// Review represents the structured output of analyzing a Submission.
// At most one Review exists per Submission; a regeneration replaces it.
type Review struct {
	ID                      uuid.UUID `db:"id" json:"id"`
	SubmissionID            uuid.UUID `db:"submission_id" json:"submissionId"`
	Rating                  Rating    `db:"rating" json:"rating"`
	TimeComplexity          string    `db:"time_complexity" json:"timeComplexity"`
	SpaceComplexity         string    `db:"space_complexity" json:"spaceComplexity"`
	EdgeCases               []string  `db:"edge_cases" json:"edgeCases"`
	CodeStructure           string    `db:"code_structure" json:"codeStructure"`
	OptimizationSuggestions []string  `db:"optimization_suggestions" json:"optimizationSuggestions"`
	OptimizedCode           string    `db:"optimized_code" json:"optimizedCode"`
	InterviewReadiness      string    `db:"interview_readiness" json:"interviewReadiness"`
	InterviewQuestions      []string  `db:"interview_questions" json:"interviewQuestions"`
	CreatedAt               time.Time `db:"created_at" json:"createdAt"`
}

type ReviewTable struct {
	ID                      string
	SubmissionID            string
	Rating                  string
	TimeComplexity          string
	SpaceComplexity         string
	EdgeCases               string
	CodeStructure           string
	OptimizationSuggestions string
	OptimizedCode           string
	InterviewReadiness      string
	InterviewQuestions      string
	CreatedAt               string
}

func GetReviewTable() ReviewTable {
	return ReviewTable{
		ID:                      "id",
		SubmissionID:            "submission_id",
		Rating:                  "rating",
		TimeComplexity:          "time_complexity",
		SpaceComplexity:         "space_complexity",
		EdgeCases:               "edge_cases",
		CodeStructure:           "code_structure",
		OptimizationSuggestions: "optimization_suggestions",
		OptimizedCode:           "optimized_code",
		InterviewReadiness:      "interview_readiness",
		InterviewQuestions:      "interview_questions",
		CreatedAt:               "created_at",
	}
}

func (ReviewTable) TableName() string {
	return "reviews"
}
