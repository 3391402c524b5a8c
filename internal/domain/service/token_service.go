// Package service defines the interfaces for domain-level capabilities
// whose concrete implementations live in the infra layer.
package service

import (
	"vigia/internal/domain/entity"

	"github.com/google/uuid"
)

// TokenClaims is the identity carried by a verified access token.
type TokenClaims struct {
	UserID uuid.UUID
	Rol    entity.Role
}

// TokenService defines the contract for issuing and verifying signed access
// tokens. The rest of the system treats the token format as opaque.
type TokenService interface {
	// GenerateAccessToken creates a signed access token for an account.
	GenerateAccessToken(userID uuid.UUID, rol entity.Role) (string, error)

	// ValidateAccessToken verifies a token string and extracts its claims.
	ValidateAccessToken(token string) (*TokenClaims, error)
}
