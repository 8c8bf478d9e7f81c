package domain

import "github.com/google/uuid"

// AuthPayload is the identity decoded from a verified bearer token.
// Token issuance happens outside this service; the core only trusts
// the owner id the middleware extracts.
type AuthPayload struct {
	UserID uuid.UUID `json:"user_id"`
	Email  string    `json:"email"`
}
