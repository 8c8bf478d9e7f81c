package primary

import (
	"context"

	"gitlab.com/codelens-2025.net/internal/domain"
)

// JWTService verifies bearer tokens minted by the external auth service
// and decodes the identity they carry. This service never issues tokens.
type JWTService interface {
	VerifyTokenHMAC(ctx context.Context, token string, method string) (bool, error)
	DecodeTokenPayload(ctx context.Context, token string) (domain.AuthPayload, error)
}
