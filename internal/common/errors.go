// Package common provides shared utilities and types used across the application.
package common

import (
	"context"
	"errors"
	"fmt"
)

// Common application errors.
var (
	// Catalog errors.
	ErrNotFound        = errors.New("not found")
	ErrDuplicateNiche  = errors.New("duplicate niche id")
	ErrUnknownCategory = errors.New("niche references unknown category")
	ErrEmptyKeywords   = errors.New("niche has no usable keywords")
	ErrInvalidRate     = errors.New("rate must be positive")

	// Rate source errors.
	ErrRateUnavailable = errors.New("rate source unavailable")
	ErrMalformedRate   = errors.New("rate source returned malformed data")

	// Estimator errors.
	ErrNegativeViews = errors.New("view counts must be non-negative")

	// Configuration errors.
	ErrMissingConfig = errors.New("missing configuration")
	ErrInvalidConfig = errors.New("invalid configuration")
)

// UserError represents an error that should be shown to the user.
type UserError struct {
	Err         error
	UserMessage string
}

func (e *UserError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.UserMessage, e.Err)
	}
	return e.UserMessage
}

func (e *UserError) Unwrap() error {
	return e.Err
}

// NewUserError creates a new user-friendly error.
func NewUserError(userMessage string, err error) error {
	return &UserError{
		UserMessage: userMessage,
		Err:         err,
	}
}

// IsRetryable determines if an error should trigger a retry.
func IsRetryable(err error) bool {
	if errors.Is(err, ErrRateLimit) ||
		errors.Is(err, ErrRateUnavailable) ||
		errors.Is(err, context.DeadlineExceeded) {
		return true
	}

	var retryableErr *RetryableError
	if errors.As(err, &retryableErr) {
		return retryableErr.Retryable
	}

	return false
}
