package domain

import (
	"time"

	"github.com/google/uuid"
)

// Language represents a programming language accepted for review
type Language string

const (
	LanguageJavascript Language = "javascript"
	LanguagePython     Language = "python"
	LanguageCpp        Language = "cpp"
)

// Valid reports whether the language is one of the recognized values
func (l Language) Valid() bool {
	switch l {
	case LanguageJavascript, LanguagePython, LanguageCpp:
		return true
	}
	return false
}

// Category represents the problem category of a submission
type Category string

const (
	CategoryDSA  Category = "DSA"
	CategoryMERN Category = "MERN"
)

func (c Category) Valid() bool {
	switch c {
	case CategoryDSA, CategoryMERN:
		return true
	}
	return false
}

// Submission represents a code submission awaiting or having received a review.
// Immutable once created; owned exclusively by its creating user.
type Submission struct {
	ID                 uuid.UUID `db:"id" json:"id"`
	OwnerID            uuid.UUID `db:"owner_id" json:"-"`
	Language           Language  `db:"language" json:"language"`
	Category           Category  `db:"category" json:"category"`
	ProblemDescription string    `db:"problem_description" json:"problemDescription"`
	Code               string    `db:"code" json:"code"`
	CreatedAt          time.Time `db:"created_at" json:"createdAt"`
}

// NewSubmission creates a new submission with a fresh id and server-side timestamp
func NewSubmission(ownerID uuid.UUID, language Language, category Category, problemDescription, code string) *Submission {
	return &Submission{
		ID:                 uuid.New(),
		OwnerID:            ownerID,
		Language:           language,
		Category:           category,
		ProblemDescription: problemDescription,
		Code:               code,
		CreatedAt:          time.Now().UTC(),
	}
}

type SubmissionTable struct {
	ID                 string
	OwnerID            string
	Language           string
	Category           string
	ProblemDescription string
	Code               string
	CreatedAt          string
}

func GetSubmissionTable() SubmissionTable {
	return SubmissionTable{
		ID:                 "id",
		OwnerID:            "owner_id",
		Language:           "language",
		Category:           "category",
		ProblemDescription: "problem_description",
		Code:               "code",
		CreatedAt:          "created_at",
	}
}

func (SubmissionTable) TableName() string {
	return "submissions"
}
