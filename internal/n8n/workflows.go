package n8n

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
)

// Workflow payloads pass through as decoded JSON; the pipeline
// validates the encoding but does not interpret workflow schemas.

// ListWorkflows returns the workflow collection envelope (data +
// nextCursor) exactly as returned by the API.
func (c *Client) ListWorkflows(ctx context.Context, opts *ListWorkflowsOptions) (json.RawMessage, error) {
	var result json.RawMessage
	if err := c.doQuery(ctx, http.MethodGet, "/workflows", opts.query(), &result); err != nil {
		return nil, err
	}
	return result, nil
}

// GetWorkflow fetches a single workflow by ID. The ID is
// percent-encoded so a "/" inside it cannot act as a path separator.
func (c *Client) GetWorkflow(ctx context.Context, id string, excludePinnedData *bool) (json.RawMessage, error) {
	q := url.Values{}
	setBool(q, "excludePinnedData", excludePinnedData)

	var result json.RawMessage
	path := fmt.Sprintf("/workflows/%s", url.PathEscape(id))
	if err := c.doQuery(ctx, http.MethodGet, path, q, &result); err != nil {
		return nil, err
	}
	return result, nil
}

// CreateWorkflow creates a workflow from the given definition and
// returns the stored workflow.
func (c *Client) CreateWorkflow(ctx context.Context, workflow any) (json.RawMessage, error) {
	var result json.RawMessage
	if err := c.Do(ctx, http.MethodPost, "/workflows", workflow, &result); err != nil {
		return nil, err
	}
	return result, nil
}

// UpdateWorkflow replaces the workflow definition under the given ID.
func (c *Client) UpdateWorkflow(ctx context.Context, id string, workflow any) (json.RawMessage, error) {
	var result json.RawMessage
	path := fmt.Sprintf("/workflows/%s", url.PathEscape(id))
	if err := c.Do(ctx, http.MethodPut, path, workflow, &result); err != nil {
		return nil, err
	}
	return result, nil
}

// DeleteWorkflow deletes a workflow and returns the deleted workflow
// as reported by the API.
func (c *Client) DeleteWorkflow(ctx context.Context, id string) (json.RawMessage, error) {
	var result json.RawMessage
	path := fmt.Sprintf("/workflows/%s", url.PathEscape(id))
	if err := c.Do(ctx, http.MethodDelete, path, nil, &result); err != nil {
		return nil, err
	}
	return result, nil
}

// ActivateWorkflow turns a workflow's trigger on.
func (c *Client) ActivateWorkflow(ctx context.Context, id string) (json.RawMessage, error) {
	var result json.RawMessage
	path := fmt.Sprintf("/workflows/%s/activate", url.PathEscape(id))
	if err := c.Do(ctx, http.MethodPost, path, nil, &result); err != nil {
		return nil, err
	}
	return result, nil
}

// DeactivateWorkflow turns a workflow's trigger off.
func (c *Client) DeactivateWorkflow(ctx context.Context, id string) (json.RawMessage, error) {
	var result json.RawMessage
	path := fmt.Sprintf("/workflows/%s/deactivate", url.PathEscape(id))
	if err := c.Do(ctx, http.MethodPost, path, nil, &result); err != nil {
		return nil, err
	}
	return result, nil
}
