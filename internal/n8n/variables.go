package n8n

import (
	"context"
	"encoding/json"
	"net/http"
)

// ListVariables returns the variable collection envelope.
func (c *Client) ListVariables(ctx context.Context, opts *ListOptions) (json.RawMessage, error) {
	var result json.RawMessage
	if err := c.doQuery(ctx, http.MethodGet, "/variables", opts.query(), &result); err != nil {
		return nil, err
	}
	return result, nil
}
