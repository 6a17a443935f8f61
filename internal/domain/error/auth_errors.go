// Package error defines domain-specific errors for the Budget Tracker application.
package error

import "errors"

// Auth domain errors. Authentication itself is handled by an external
// identity service; this service only validates bearer tokens.
var (
	// ErrMissingToken is returned when no bearer token is provided.
	ErrMissingToken = errors.New("authorization token is required")

	// ErrInvalidToken is returned when the bearer token is invalid or expired.
	ErrInvalidToken = errors.New("invalid or expired token")
)

// AuthErrorCode defines error codes for auth errors.
// Format: AUTH-XXYYYY where XX is category and YYYY is specific error.
type AuthErrorCode string

const (
	ErrCodeMissingToken AuthErrorCode = "AUTH-010001"
	ErrCodeInvalidToken AuthErrorCode = "AUTH-010002"
	ErrCodeRateLimited  AuthErrorCode = "AUTH-020001"
)
