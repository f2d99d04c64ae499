package n8n

import (
	"context"
	"encoding/json"
	"net/http"
)

// ListTags returns the tag collection envelope.
func (c *Client) ListTags(ctx context.Context, opts *ListOptions) (json.RawMessage, error) {
	var result json.RawMessage
	if err := c.doQuery(ctx, http.MethodGet, "/tags", opts.query(), &result); err != nil {
		return nil, err
	}
	return result, nil
}

// CreateTag creates a tag with the given name and returns it.
func (c *Client) CreateTag(ctx context.Context, name string) (json.RawMessage, error) {
	body := map[string]string{"name": name}

	var result json.RawMessage
	if err := c.Do(ctx, http.MethodPost, "/tags", body, &result); err != nil {
		return nil, err
	}
	return result, nil
}
