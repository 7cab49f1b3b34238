// Package error defines domain-specific errors for the Carbon Tracker application.
package error

import "errors"

// Authentication domain errors.
var (
	// ErrInvalidToken is returned when a token is invalid or malformed.
	ErrInvalidToken = errors.New("invalid token")

	// ErrExpiredToken is returned when a token has expired.
	ErrExpiredToken = errors.New("token has expired")

	// ErrMissingProfile is returned when a token carries no profile scope.
	ErrMissingProfile = errors.New("token carries no profile")
)

// AuthErrorCode defines error codes for authentication errors.
// Format: AUTH-XXYYYY where XX is category and YYYY is specific error.
type AuthErrorCode string

const (
	// Token errors (01XXXX)
	ErrCodeInvalidToken   AuthErrorCode = "AUTH-010001"
	ErrCodeExpiredToken   AuthErrorCode = "AUTH-010002"
	ErrCodeMissingToken   AuthErrorCode = "AUTH-010003"
	ErrCodeMissingProfile AuthErrorCode = "AUTH-010004"
)
