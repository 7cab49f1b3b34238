// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"
	"time"
)

// TokenClaims represents the claims contained in a JWT token. ProfileUID is
// the remote profile that scopes every record operation for the caller.
type TokenClaims struct {
	ProfileUID string
	ExpiresAt  time.Time
}

// TokenService defines the interface for JWT token operations.
type TokenService interface {
	// GenerateToken generates a signed access token for a profile.
	GenerateToken(ctx context.Context, profileUID string, ttl time.Duration) (string, error)

	// ValidateToken validates an access token and returns its claims.
	ValidateToken(ctx context.Context, token string) (*TokenClaims, error)
}
