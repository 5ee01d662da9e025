package githost

import (
	"errors"
	"fmt"
	"time"
)

// Error taxonomy for code-host calls. Transient errors are retried with
// backoff; permanent errors surface immediately.
var (
	// ErrNotFound indicates the repository or resource does not exist.
	ErrNotFound = errors.New("not found")

	// ErrAuthFailed indicates invalid or missing credentials.
	ErrAuthFailed = errors.New("authentication failed")

	// ErrUnavailable indicates the host returned a server error.
	ErrUnavailable = errors.New("host unavailable")

	// ErrInvalidResponse indicates the host returned a payload we refuse to parse.
	ErrInvalidResponse = errors.New("invalid response")
)

// RateLimitedError indicates the host rejected the call for rate limiting.
type RateLimitedError struct {
	RetryAfter time.Duration
}

// Error returns the formatted error message.
func (e *RateLimitedError) Error() string {
	if e.RetryAfter > 0 {
		return fmt.Sprintf("rate limited by host, retry after %s", e.RetryAfter)
	}
	return "rate limited by host"
}

// IsRateLimited reports whether err is a host rate-limit rejection.
func IsRateLimited(err error) bool {
	var rl *RateLimitedError
	return errors.As(err, &rl)
}

// IsTransient reports whether the call may succeed on retry.
func IsTransient(err error) bool {
	return errors.Is(err, ErrUnavailable) || IsRateLimited(err)
}
