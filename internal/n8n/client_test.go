package n8n

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"sync"
	"sync/atomic"
	"testing"
	"time"
)

func TestNewClientRequiresBaseURL(t *testing.T) {
	_, err := NewClient(Config{})
	if !errors.Is(err, ErrMissingBaseURL) {
		t.Fatalf("expected ErrMissingBaseURL, got %v", err)
	}
}

func TestNewClientRejectsNegativeMaxRetries(t *testing.T) {
	_, err := NewClient(Config{BaseURL: "http://localhost:5678/api/v1", MaxRetries: -1})
	if err == nil {
		t.Fatal("expected error for negative max retries")
	}
}

func TestNewClientDefaults(t *testing.T) {
	c, err := NewClient(Config{BaseURL: "http://localhost:5678/api/v1"})
	if err != nil {
		t.Fatalf("NewClient: %v", err)
	}
	if c.timeout != DefaultTimeout {
		t.Errorf("timeout = %v, want %v", c.timeout, DefaultTimeout)
	}
	if c.policy.MaxRetries != DefaultMaxRetries {
		t.Errorf("max retries = %d, want %d", c.policy.MaxRetries, DefaultMaxRetries)
	}
	if c.policy.Delay != DefaultRetryDelay {
		t.Errorf("retry delay = %v, want %v", c.policy.Delay, DefaultRetryDelay)
	}
}

func TestNewClientTrimsTrailingSlash(t *testing.T) {
	c, err := NewClient(Config{BaseURL: "http://localhost:5678/api/v1/"})
	if err != nil {
		t.Fatalf("NewClient: %v", err)
	}
	if c.baseURL != "http://localhost:5678/api/v1" {
		t.Errorf("baseURL = %q", c.baseURL)
	}
}

func TestNewClientDerivesWebhookBase(t *testing.T) {
	c, err := NewClient(Config{BaseURL: "http://localhost:5678/api/v1"})
	if err != nil {
		t.Fatalf("NewClient: %v", err)
	}
	if c.webhookBaseURL != "http://localhost:5678" {
		t.Errorf("webhookBaseURL = %q", c.webhookBaseURL)
	}

	c, err = NewClient(Config{
		BaseURL:        "http://localhost:5678/api/v1",
		WebhookBaseURL: "http://hooks.internal:9000/",
	})
	if err != nil {
		t.Fatalf("NewClient: %v", err)
	}
	if c.webhookBaseURL != "http://hooks.internal:9000" {
		t.Errorf("webhookBaseURL = %q", c.webhookBaseURL)
	}
}

func newTestClient(t *testing.T, baseURL string) *Client {
	t.Helper()
	c, err := NewClient(Config{
		BaseURL:    baseURL,
		APIKey:     "test-key",
		Timeout:    2 * time.Second,
		MaxRetries: 1,
		RetryDelay: time.Millisecond,
	})
	if err != nil {
		t.Fatalf("NewClient: %v", err)
	}
	return c
}

func TestDoSuccessSingleAttempt(t *testing.T) {
	var calls atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		if got := r.Header.Get("X-N8N-API-KEY"); got != "test-key" {
			t.Errorf("API key header = %q", got)
		}
		if got := r.Header.Get("Accept"); got != "application/json" {
			t.Errorf("Accept header = %q", got)
		}
		w.Write([]byte(`{"id":"42","name":"daily sync"}`))
	}))
	defer srv.Close()

	c := newTestClient(t, srv.URL+"/api/v1")
	var result struct {
		ID   string `json:"id"`
		Name string `json:"name"`
	}
	if err := c.Do(context.Background(), http.MethodGet, "/workflows/42", nil, &result); err != nil {
		t.Fatalf("Do: %v", err)
	}
	if result.ID != "42" || result.Name != "daily sync" {
		t.Errorf("result = %+v", result)
	}
	if n := calls.Load(); n != 1 {
		t.Errorf("attempts = %d, want 1", n)
	}
}

func TestDoEmptyBodyIsValid(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	c := newTestClient(t, srv.URL+"/api/v1")
	var result json.RawMessage
	if err := c.Do(context.Background(), http.MethodDelete, "/workflows/42", nil, &result); err != nil {
		t.Fatalf("Do: %v", err)
	}
	if result != nil {
		t.Errorf("result = %q, want untouched", result)
	}
}

func TestDoMalformedSuccessBodyIsTerminal(t *testing.T) {
	var calls atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		w.Write([]byte(`{"id": truncated`))
	}))
	defer srv.Close()

	c := newTestClient(t, srv.URL+"/api/v1")
	var result json.RawMessage
	err := c.Do(context.Background(), http.MethodGet, "/workflows", nil, &result)

	var apiErr *APIError
	if !errors.As(err, &apiErr) {
		t.Fatalf("expected *APIError, got %v", err)
	}
	if apiErr.StatusCode != http.StatusOK {
		t.Errorf("status = %d, want 200", apiErr.StatusCode)
	}
	if n := calls.Load(); n != 1 {
		t.Errorf("attempts = %d, want 1 (decode failure must not retry)", n)
	}
}

func TestDoNonRetryableStatusFailsOnce(t *testing.T) {
	var calls atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		w.WriteHeader(http.StatusNotFound)
		w.Write([]byte(`{"message":"workflow not found"}`))
	}))
	defer srv.Close()

	c := newTestClient(t, srv.URL+"/api/v1")
	err := c.Do(context.Background(), http.MethodGet, "/workflows/missing", nil, nil)

	if !errors.Is(err, ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
	var apiErr *APIError
	if !errors.As(err, &apiErr) {
		t.Fatalf("expected *APIError, got %v", err)
	}
	if apiErr.Message != "workflow not found" {
		t.Errorf("message = %q", apiErr.Message)
	}
	if n := calls.Load(); n != 1 {
		t.Errorf("attempts = %d, want 1", n)
	}
}

func TestDoBadRequestFailsOnce(t *testing.T) {
	var calls atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		w.WriteHeader(http.StatusBadRequest)
		w.Write([]byte("request.body.name is required"))
	}))
	defer srv.Close()

	c := newTestClient(t, srv.URL+"/api/v1")
	err := c.Do(context.Background(), http.MethodPost, "/workflows", map[string]string{}, nil)

	var apiErr *APIError
	if !errors.As(err, &apiErr) {
		t.Fatalf("expected *APIError, got %v", err)
	}
	if apiErr.StatusCode != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", apiErr.StatusCode)
	}
	if apiErr.Message != "request.body.name is required" {
		t.Errorf("message = %q", apiErr.Message)
	}
	if n := calls.Load(); n != 1 {
		t.Errorf("attempts = %d, want 1", n)
	}
}

func TestDoRetriesExhaustBudget(t *testing.T) {
	var calls atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		w.WriteHeader(http.StatusInternalServerError)
		w.Write([]byte(`{"message":"db connection lost"}`))
	}))
	defer srv.Close()

	c := newTestClient(t, srv.URL+"/api/v1")
	err := c.Do(context.Background(), http.MethodGet, "/executions", nil, nil)

	var apiErr *APIError
	if !errors.As(err, &apiErr) {
		t.Fatalf("expected *APIError, got %v", err)
	}
	if apiErr.StatusCode != http.StatusInternalServerError {
		t.Errorf("status = %d, want 500", apiErr.StatusCode)
	}
	if n := calls.Load(); n != 2 {
		t.Errorf("attempts = %d, want 2 (MaxRetries=1)", n)
	}
}

func TestDoRecoversAfterRetry(t *testing.T) {
	var calls atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if calls.Add(1) == 1 {
			w.WriteHeader(http.StatusTooManyRequests)
			return
		}
		w.Write([]byte(`{"data":[]}`))
	}))
	defer srv.Close()

	c := newTestClient(t, srv.URL+"/api/v1")
	var result json.RawMessage
	if err := c.Do(context.Background(), http.MethodGet, "/workflows", nil, &result); err != nil {
		t.Fatalf("Do: %v", err)
	}
	if string(result) != `{"data":[]}` {
		t.Errorf("result = %q", result)
	}
	if n := calls.Load(); n != 2 {
		t.Errorf("attempts = %d, want 2", n)
	}
}

func TestDoReportsLastAttemptStatus(t *testing.T) {
	var calls atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if calls.Add(1) == 1 {
			w.WriteHeader(http.StatusInternalServerError)
			return
		}
		w.WriteHeader(http.StatusTooManyRequests)
	}))
	defer srv.Close()

	c := newTestClient(t, srv.URL+"/api/v1")
	err := c.Do(context.Background(), http.MethodGet, "/workflows", nil, nil)

	var apiErr *APIError
	if !errors.As(err, &apiErr) {
		t.Fatalf("expected *APIError, got %v", err)
	}
	if apiErr.StatusCode != http.StatusTooManyRequests {
		t.Errorf("status = %d, want 429 (last attempt wins)", apiErr.StatusCode)
	}
	if !errors.Is(err, ErrRateLimited) {
		t.Errorf("expected ErrRateLimited, got %v", err)
	}
}

func TestDoTimeoutExhaustsBudget(t *testing.T) {
	var calls atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		time.Sleep(200 * time.Millisecond)
	}))
	defer srv.Close()

	c, err := NewClient(Config{
		BaseURL:    srv.URL + "/api/v1",
		Timeout:    20 * time.Millisecond,
		MaxRetries: 1,
		RetryDelay: time.Millisecond,
	})
	if err != nil {
		t.Fatalf("NewClient: %v", err)
	}

	callErr := c.Do(context.Background(), http.MethodGet, "/workflows", nil, nil)

	var timeoutErr *TimeoutError
	if !errors.As(callErr, &timeoutErr) {
		t.Fatalf("expected *TimeoutError, got %v", callErr)
	}
	if timeoutErr.Attempts != 2 {
		t.Errorf("attempts = %d, want 2", timeoutErr.Attempts)
	}
	if n := calls.Load(); n != 2 {
		t.Errorf("server calls = %d, want 2", n)
	}
}

func TestDoConnectionErrorYieldsTimeoutError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	baseURL := srv.URL + "/api/v1"
	srv.Close()

	c := newTestClient(t, baseURL)
	err := c.Do(context.Background(), http.MethodGet, "/workflows", nil, nil)

	var timeoutErr *TimeoutError
	if !errors.As(err, &timeoutErr) {
		t.Fatalf("expected *TimeoutError, got %v", err)
	}
	if timeoutErr.Unwrap() == nil {
		t.Error("expected wrapped transport error")
	}
}

func TestDoParentCancellationAborts(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		cancel()
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	c, err := NewClient(Config{
		BaseURL:    srv.URL + "/api/v1",
		MaxRetries: 2,
		RetryDelay: time.Minute,
	})
	if err != nil {
		t.Fatalf("NewClient: %v", err)
	}

	done := make(chan error, 1)
	go func() {
		done <- c.Do(ctx, http.MethodGet, "/workflows", nil, nil)
	}()

	select {
	case callErr := <-done:
		if !errors.Is(callErr, context.Canceled) {
			t.Errorf("expected context.Canceled, got %v", callErr)
		}
	case <-time.After(5 * time.Second):
		t.Fatal("Do did not return after cancellation")
	}
}

func TestDoResendsIdenticalBody(t *testing.T) {
	var mu sync.Mutex
	var bodies []string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		data, err := io.ReadAll(r.Body)
		if err != nil {
			t.Errorf("read body: %v", err)
		}
		mu.Lock()
		bodies = append(bodies, string(data))
		first := len(bodies) == 1
		mu.Unlock()
		if first {
			w.WriteHeader(http.StatusInternalServerError)
			return
		}
		w.Write([]byte(`{"id":"1"}`))
	}))
	defer srv.Close()

	c := newTestClient(t, srv.URL+"/api/v1")
	body := map[string]any{"name": "retry me", "active": true}
	if err := c.Do(context.Background(), http.MethodPost, "/workflows", body, nil); err != nil {
		t.Fatalf("Do: %v", err)
	}

	mu.Lock()
	defer mu.Unlock()
	if len(bodies) != 2 {
		t.Fatalf("server calls = %d, want 2", len(bodies))
	}
	if bodies[0] != bodies[1] {
		t.Errorf("retry body differs:\n first: %s\nsecond: %s", bodies[0], bodies[1])
	}
}

func TestInvokeWebhook(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/webhook/order-created" {
			t.Errorf("path = %q", r.URL.Path)
		}
		if got := r.Header.Get("Authorization"); got != basicAuth("hook", "secret") {
			t.Errorf("Authorization = %q", got)
		}
		if got := r.Header.Get("X-N8N-API-KEY"); got != "test-key" {
			t.Errorf("API key header = %q", got)
		}
		w.Write([]byte(`{"received":true}`))
	}))
	defer srv.Close()

	c := newTestClient(t, srv.URL+"/api/v1")
	result, err := c.InvokeWebhook(context.Background(), "/order-created",
		map[string]any{"orderId": 7}, &WebhookAuth{Username: "hook", Password: "secret"})
	if err != nil {
		t.Fatalf("InvokeWebhook: %v", err)
	}
	if string(result) != `{"received":true}` {
		t.Errorf("result = %q", result)
	}
}

func TestInvokeWebhookWithoutAuth(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if _, ok := r.Header["Authorization"]; ok {
			t.Error("Authorization header must be absent without credentials")
		}
		w.Write([]byte(`{}`))
	}))
	defer srv.Close()

	c := newTestClient(t, srv.URL+"/api/v1")
	if _, err := c.InvokeWebhook(context.Background(), "ping", nil, nil); err != nil {
		t.Fatalf("InvokeWebhook: %v", err)
	}
}

func TestHealthCheck(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/healthz" {
			t.Errorf("path = %q", r.URL.Path)
		}
		w.Write([]byte(`{"status":"ok"}`))
	}))
	defer srv.Close()

	c := newTestClient(t, srv.URL+"/api/v1")
	result, err := c.HealthCheck(context.Background())
	if err != nil {
		t.Fatalf("HealthCheck: %v", err)
	}
	if string(result) != `{"status":"ok"}` {
		t.Errorf("result = %q", result)
	}
}
