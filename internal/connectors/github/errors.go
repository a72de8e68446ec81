package github

import (
	"errors"
	"fmt"
	"time"
)

// RateLimitError represents a rate limit exceeded error with reset time.
type RateLimitError struct {
	ResetAt   time.Time
	Remaining int
	Limit     int
}

func (e *RateLimitError) Error() string {
	return fmt.Sprintf("github: rate limit exceeded, resets at %s", e.ResetAt.Format(time.RFC3339))
}

// APIError represents a failed directory-listing request against the
// contents API. Any APIError aborts the traversal that raised it.
type APIError struct {
	StatusCode int
	Message    string
	URL        string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("github: API error %d: %s (URL: %s)", e.StatusCode, e.Message, e.URL)
}

// RetrievalError represents a failed file-content download after its
// directory listing succeeded. It aborts the traversal; everything the
// traversal produced before it must be discarded.
type RetrievalError struct {
	Path       string
	URL        string
	StatusCode int
	Err        error
}

func (e *RetrievalError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("github: retrieving %s: %v", e.Path, e.Err)
	}
	return fmt.Sprintf("github: retrieving %s: HTTP %d (URL: %s)", e.Path, e.StatusCode, e.URL)
}

func (e *RetrievalError) Unwrap() error {
	return e.Err
}

// IsAPIError checks if the error is a directory-listing failure.
func IsAPIError(err error) bool {
	var apiErr *APIError
	return errors.As(err, &apiErr)
}

// IsRetrievalError checks if the error is a file-download failure.
func IsRetrievalError(err error) bool {
	var retErr *RetrievalError
	return errors.As(err, &retErr)
}

// IsRateLimited checks if the error indicates rate limiting.
func IsRateLimited(err error) bool {
	var rateLimitErr *RateLimitError
	return errors.As(err, &rateLimitErr)
}
