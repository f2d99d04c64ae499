package n8n

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
)

// Sentinel errors for errors.Is checks.
var (
	// ErrMissingBaseURL is returned by NewClient when no base URL is
	// configured.
	ErrMissingBaseURL = errors.New("n8n API base URL is required")

	// ErrUnauthorized indicates the API key was rejected.
	ErrUnauthorized = errors.New("invalid or missing API key")

	// ErrNotFound indicates the requested resource does not exist.
	ErrNotFound = errors.New("resource not found")

	// ErrRateLimited indicates the rate limit was still exceeded on the
	// final attempt.
	ErrRateLimited = errors.New("rate limit exceeded")
)

// APIError is a definitive HTTP error response from n8n: a
// non-retryable status, a retryable status after the retry budget was
// exhausted (carrying the status of the last attempt), or a 2xx
// response whose body could not be decoded as JSON.
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("n8n API error %d: %s", e.StatusCode, e.Message)
	}
	return fmt.Sprintf("n8n API error %d", e.StatusCode)
}

// Is implements errors.Is for sentinel error matching.
func (e *APIError) Is(target error) bool {
	switch e.StatusCode {
	case http.StatusUnauthorized:
		return target == ErrUnauthorized
	case http.StatusNotFound:
		return target == ErrNotFound
	case http.StatusTooManyRequests:
		return target == ErrRateLimited
	}
	return false
}

// TimeoutError reports that no authoritative response was received
// within the retry budget: every attempt timed out or failed at the
// connection level. Unlike APIError it carries no status code.
type TimeoutError struct {
	URL      string
	Attempts int
	Err      error
}

func (e *TimeoutError) Error() string {
	return fmt.Sprintf("n8n request to %s failed after %d attempt(s): %v", e.URL, e.Attempts, e.Err)
}

// Unwrap returns the underlying transport error.
func (e *TimeoutError) Unwrap() error {
	return e.Err
}

// newAPIError builds an APIError from a terminal response, deriving
// the message from the body text.
func newAPIError(status int, body []byte) error {
	return &APIError{StatusCode: status, Message: messageFromBody(body)}
}

// messageFromBody extracts a human-readable message from an error
// response body: the "message" field of an n8n JSON error payload when
// present, otherwise the raw body text. An empty body yields an empty
// message and the error falls back to its generic status-only form.
func messageFromBody(body []byte) string {
	trimmed := bytes.TrimSpace(body)
	if len(trimmed) == 0 {
		return ""
	}
	var payload struct {
		Message string `json:"message"`
	}
	if err := json.Unmarshal(trimmed, &payload); err == nil && payload.Message != "" {
		return payload.Message
	}
	return string(trimmed)
}
