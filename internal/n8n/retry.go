package n8n

import (
	"context"
	"net/http"
	"time"
)

// Verdict classifies the outcome of a single attempt.
type Verdict int

const (
	// Succeed means the response is authoritative and the body should
	// be decoded.
	Succeed Verdict = iota
	// Retry means the outcome is presumed transient and the request
	// may be re-issued.
	Retry
	// Fail means the response is a definitive error; no further
	// attempts are made.
	Fail
)

// Classify maps an HTTP status code to a verdict. Rate limiting (429)
// and server errors (5xx) are presumed transient; every other non-2xx
// status is definitive. Transport-level failures never reach this
// function; they are always retry-class.
func Classify(status int) Verdict {
	switch {
	case status >= http.StatusOK && status < http.StatusMultipleChoices:
		return Succeed
	case status == http.StatusTooManyRequests:
		return Retry
	case status >= http.StatusInternalServerError && status < 600:
		return Retry
	default:
		return Fail
	}
}

// RetryPolicy decides whether a retryable outcome gets another attempt
// and how long to wait before it. MaxRetries counts additional
// attempts beyond the first: MaxRetries = 1 allows exactly two
// attempts in total. The delay is fixed between rounds.
type RetryPolicy struct {
	MaxRetries int
	Delay      time.Duration
}

// ShouldRetry reports whether the zero-based attempt may be followed
// by another.
func (p RetryPolicy) ShouldRetry(attempt int) bool {
	return attempt < p.MaxRetries
}

// Wait blocks for the inter-attempt delay, returning early with the
// context error if the caller's context is done first.
func (p RetryPolicy) Wait(ctx context.Context) error {
	if p.Delay <= 0 {
		return ctx.Err()
	}
	timer := time.NewTimer(p.Delay)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
