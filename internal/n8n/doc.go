// Package n8n implements the resilient request pipeline for the n8n
// REST API: request building, single-attempt transport execution under
// a per-attempt deadline, a retry/classification policy, and a typed
// error taxonomy.
//
// The pipeline turns a logical API call (e.g. "get workflow by id")
// into an authenticated HTTP request, executes it, classifies the
// outcome, and decides whether to retry. Rate limiting (429) and
// server errors (5xx) are presumed transient and retried within a
// configurable budget; every other non-2xx status fails immediately.
// Callers receive either the decoded JSON payload or one of two error
// kinds distinguishable by type: *APIError for definitive HTTP
// failures and *TimeoutError for exhausted transport failures.
//
// The client holds no mutable state beyond its immutable configuration
// and is safe for concurrent use. It never logs; structured error
// values are returned to the caller, which decides how to report them.
package n8n
