package n8n

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"
)

// Defaults applied by NewClient when the corresponding Config fields
// are zero.
const (
	DefaultTimeout    = 5 * time.Second
	DefaultMaxRetries = 3
	DefaultRetryDelay = time.Second
)

// apiKeyHeader is the header n8n uses for API key authentication.
const apiKeyHeader = "X-N8N-API-KEY"

const contentTypeJSON = "application/json"

// Config holds construction-time settings for the client. Fields are
// read once by NewClient and never mutated afterwards.
type Config struct {
	// BaseURL is the n8n REST API root, e.g.
	// "https://n8n.example.com/api/v1". Required. A trailing slash is
	// stripped.
	BaseURL string

	// APIKey is sent on every request via the X-N8N-API-KEY header. An
	// empty key is accepted here; warning about it is the caller's
	// concern.
	APIKey string

	// WebhookBaseURL overrides the base used for webhook invocations
	// and the instance health check. When empty it is derived from
	// BaseURL by trimming the /api/v1 suffix.
	WebhookBaseURL string

	// Timeout bounds each network attempt. Zero means DefaultTimeout.
	Timeout time.Duration

	// MaxRetries is the number of additional attempts after the first:
	// MaxRetries = 1 allows two attempts in total. Zero means
	// DefaultMaxRetries.
	MaxRetries int

	// RetryDelay is the wait between a retryable outcome and the next
	// attempt. Zero means DefaultRetryDelay.
	RetryDelay time.Duration

	// HTTPClient replaces the transport, mainly for tests.
	HTTPClient *http.Client
}

// Client talks to a single n8n instance. It is safe for concurrent
// use: the only state is the immutable configuration and the shared
// *http.Client, and each logical call runs its attempts sequentially
// with no state shared across calls.
type Client struct {
	baseURL        string
	webhookBaseURL string
	apiKey         string
	httpClient     *http.Client
	timeout        time.Duration
	policy         RetryPolicy
}

// NewClient validates cfg, applies defaults, and returns an immutable
// client.
func NewClient(cfg Config) (*Client, error) {
	if cfg.BaseURL == "" {
		return nil, ErrMissingBaseURL
	}
	if cfg.MaxRetries < 0 {
		return nil, fmt.Errorf("max retries must be non-negative, got %d", cfg.MaxRetries)
	}

	baseURL := strings.TrimRight(cfg.BaseURL, "/")
	if _, err := url.Parse(baseURL); err != nil {
		return nil, fmt.Errorf("invalid base URL: %w", err)
	}

	webhookBaseURL := strings.TrimRight(cfg.WebhookBaseURL, "/")
	if webhookBaseURL == "" {
		webhookBaseURL = strings.TrimSuffix(baseURL, "/api/v1")
	}

	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	maxRetries := cfg.MaxRetries
	if maxRetries == 0 {
		maxRetries = DefaultMaxRetries
	}
	retryDelay := cfg.RetryDelay
	if retryDelay <= 0 {
		retryDelay = DefaultRetryDelay
	}
	httpClient := cfg.HTTPClient
	if httpClient == nil {
		httpClient = &http.Client{}
	}

	return &Client{
		baseURL:        baseURL,
		webhookBaseURL: webhookBaseURL,
		apiKey:         cfg.APIKey,
		httpClient:     httpClient,
		timeout:        timeout,
		policy:         RetryPolicy{MaxRetries: maxRetries, Delay: retryDelay},
	}, nil
}

// Do issues method against path (relative to the API base) with an
// optional JSON body and decodes the response into result.
func (c *Client) Do(ctx context.Context, method, path string, body, result any) error {
	return c.do(ctx, method, c.baseURL+path, body, nil, result)
}

// doQuery is Do with an encoded query string and no request body.
func (c *Client) doQuery(ctx context.Context, method, path string, q url.Values, result any) error {
	return c.do(ctx, method, c.buildURL(path, q), nil, nil, result)
}

// do runs the attempt loop for one logical call: execute, classify,
// and either decode, wait-and-retry, or fail with a typed error. The
// body is marshaled once and the identical bytes are re-sent on every
// retry.
func (c *Client) do(ctx context.Context, method, rawURL string, body any, extra http.Header, result any) error {
	var payload []byte
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("marshal request body: %w", err)
		}
		payload = data
	}

	for attempt := 0; ; attempt++ {
		status, respBody, err := c.attempt(ctx, method, rawURL, payload, extra)
		if err != nil {
			if ctx.Err() != nil {
				return ctx.Err()
			}
			if !c.policy.ShouldRetry(attempt) {
				return &TimeoutError{URL: rawURL, Attempts: attempt + 1, Err: err}
			}
		} else {
			switch Classify(status) {
			case Succeed:
				return decodeResult(status, respBody, result)
			case Fail:
				return newAPIError(status, respBody)
			case Retry:
				if !c.policy.ShouldRetry(attempt) {
					return newAPIError(status, respBody)
				}
			}
		}

		if err := c.policy.Wait(ctx); err != nil {
			return err
		}
	}
}

// attempt performs exactly one network round trip under the per-attempt
// deadline. The response body is fully read and closed on every exit
// path, so a cancelled or failed attempt never leaks the connection.
func (c *Client) attempt(ctx context.Context, method, rawURL string, payload []byte, extra http.Header) (int, []byte, error) {
	attemptCtx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	var reader io.Reader
	if payload != nil {
		reader = bytes.NewReader(payload)
	}
	req, err := http.NewRequestWithContext(attemptCtx, method, rawURL, reader)
	if err != nil {
		return 0, nil, err
	}
	c.setHeaders(req, extra)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return 0, nil, err
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return 0, nil, err
	}
	return resp.StatusCode, respBody, nil
}

// decodeResult decodes a successful response body into result. An
// empty body is a valid absent payload (delete and activate calls can
// return no content); a non-empty body that is not valid JSON is a
// terminal API failure, not a retry candidate, since a malformed
// success response indicates a protocol mismatch rather than
// transience.
func decodeResult(status int, body []byte, result any) error {
	if result == nil || len(bytes.TrimSpace(body)) == 0 {
		return nil
	}
	if err := json.Unmarshal(body, result); err != nil {
		return &APIError{
			StatusCode: status,
			Message:    fmt.Sprintf("invalid JSON in response body: %v", err),
		}
	}
	return nil
}
