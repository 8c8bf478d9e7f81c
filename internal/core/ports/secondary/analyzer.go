package secondary

import (
	"context"

	"gitlab.com/codelens-2025.net/internal/domain"
)

// CodeAnalyzer invokes the external analysis capability and coerces its raw
// response into a typed payload. Implementations own timeout and retry
// policy; a returned payload always satisfies the required-field contract.
type CodeAnalyzer interface {
	Analyze(ctx context.Context, submission *domain.Submission) (*domain.AnalysisPayload, error)
}
