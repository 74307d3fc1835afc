package backend

import (
	"encoding/json"
	"fmt"
	"time"
)

// ErrServiceUnavailable indicates the service is down, unreachable, or
// answered with a server error. Retryable.
type ErrServiceUnavailable struct {
	Status int
	Err    error
}

func (e *ErrServiceUnavailable) Error() string {
	if e.Status > 0 {
		return fmt.Sprintf("assessment service unavailable (HTTP %d): %v", e.Status, e.Err)
	}
	return fmt.Sprintf("assessment service unreachable: %v", e.Err)
}

func (e *ErrServiceUnavailable) Unwrap() error { return e.Err }

// ErrRateLimited indicates the service returned 429. Retryable after the
// indicated wait.
type ErrRateLimited struct {
	RetryAfter time.Duration
}

func (e *ErrRateLimited) Error() string {
	return fmt.Sprintf("rate limited (retry after %s)", e.RetryAfter)
}

// ErrBadRequest carries the service's rejection detail for a 4xx response.
// Not retryable: the request itself is wrong.
type ErrBadRequest struct {
	Status int
	Detail string
}

func (e *ErrBadRequest) Error() string {
	if e.Detail != "" {
		return fmt.Sprintf("request rejected (HTTP %d): %s", e.Status, e.Detail)
	}
	return fmt.Sprintf("request rejected (HTTP %d)", e.Status)
}

// ErrInvalidResponse indicates the service answered with a payload that
// does not match the expected contract.
type ErrInvalidResponse struct {
	Content json.RawMessage
	Err     error
}

func (e *ErrInvalidResponse) Error() string {
	return fmt.Sprintf("invalid service response: %v", e.Err)
}

func (e *ErrInvalidResponse) Unwrap() error { return e.Err }
