package n8n

import (
	"context"
	"encoding/json"
	"net/http"
)

// HealthCheck probes the instance-level healthz endpoint, which lives
// on the instance root rather than under /api/v1.
func (c *Client) HealthCheck(ctx context.Context) (json.RawMessage, error) {
	var result json.RawMessage
	if err := c.do(ctx, http.MethodGet, c.webhookBaseURL+"/healthz", nil, nil, &result); err != nil {
		return nil, err
	}
	return result, nil
}
