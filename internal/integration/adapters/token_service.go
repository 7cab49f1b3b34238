// Package adapters implements adapter interfaces from the application layer.
package adapters

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/carbon-tracker/backend/internal/application/adapter"
	domainerror "github.com/carbon-tracker/backend/internal/domain/error"
)

// defaultTokenDuration is used when callers pass a non-positive TTL.
const defaultTokenDuration = 24 * time.Hour

// CustomClaims represents the custom claims for JWT tokens. ProfileUID scopes
// every record operation to one remote footprint profile.
type CustomClaims struct {
	ProfileUID string `json:"profile_uid"`
	jwt.RegisteredClaims
}

// tokenService implements the adapter.TokenService interface.
type tokenService struct {
	secret []byte
}

// NewTokenService creates a new token service instance.
func NewTokenService(secret string) adapter.TokenService {
	return &tokenService{secret: []byte(secret)}
}

// GenerateToken generates a signed access token for a profile.
func (s *tokenService) GenerateToken(_ context.Context, profileUID string, ttl time.Duration) (string, error) {
	if ttl <= 0 {
		ttl = defaultTokenDuration
	}

	now := time.Now().UTC()
	claims := CustomClaims{
		ProfileUID: profileUID,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
			Issuer:    "carbon-tracker",
			Subject:   profileUID,
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(s.secret)
}

// ValidateToken validates an access token and returns its claims.
func (s *tokenService) ValidateToken(_ context.Context, tokenString string) (*adapter.TokenClaims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &CustomClaims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return s.secret, nil
	})
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, domainerror.ErrExpiredToken
		}
		return nil, domainerror.ErrInvalidToken
	}

	claims, ok := token.Claims.(*CustomClaims)
	if !ok || !token.Valid {
		return nil, domainerror.ErrInvalidToken
	}
	if claims.ProfileUID == "" {
		return nil, domainerror.ErrMissingProfile
	}

	return &adapter.TokenClaims{
		ProfileUID: claims.ProfileUID,
		ExpiresAt:  claims.ExpiresAt.Time,
	}, nil
}
