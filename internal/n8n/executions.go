package n8n

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
)

// ListExecutions returns the execution collection envelope, optionally
// filtered by workflow, project, or status.
func (c *Client) ListExecutions(ctx context.Context, opts *ListExecutionsOptions) (json.RawMessage, error) {
	var result json.RawMessage
	if err := c.doQuery(ctx, http.MethodGet, "/executions", opts.query(), &result); err != nil {
		return nil, err
	}
	return result, nil
}

// GetExecution fetches a single execution by ID. Node-level run data
// is included only when includeData is set.
func (c *Client) GetExecution(ctx context.Context, id string, includeData *bool) (json.RawMessage, error) {
	q := url.Values{}
	setBool(q, "includeData", includeData)

	var result json.RawMessage
	path := fmt.Sprintf("/executions/%s", url.PathEscape(id))
	if err := c.doQuery(ctx, http.MethodGet, path, q, &result); err != nil {
		return nil, err
	}
	return result, nil
}

// DeleteExecution deletes an execution record and returns the deleted
// execution as reported by the API.
func (c *Client) DeleteExecution(ctx context.Context, id string) (json.RawMessage, error) {
	var result json.RawMessage
	path := fmt.Sprintf("/executions/%s", url.PathEscape(id))
	if err := c.Do(ctx, http.MethodDelete, path, nil, &result); err != nil {
		return nil, err
	}
	return result, nil
}
