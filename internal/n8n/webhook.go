package n8n

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"
)

// InvokeWebhook POSTs a JSON payload to {webhookBase}/webhook/{path}.
// Webhooks live on the instance root rather than under /api/v1, and
// authenticate with optional basic auth instead of the API key (the
// key header is still populated, n8n ignores it on webhook routes).
// Without credentials the Authorization header is omitted entirely.
//
// Retries re-send the identical payload, so a webhook that partially
// processed a request before an apparent failure can double-execute.
func (c *Client) InvokeWebhook(ctx context.Context, path string, payload any, auth *WebhookAuth) (json.RawMessage, error) {
	rawURL := c.webhookBaseURL + "/webhook/" + strings.TrimPrefix(path, "/")

	var extra http.Header
	if auth != nil {
		if value := basicAuth(auth.Username, auth.Password); value != "" {
			extra = http.Header{}
			extra.Set("Authorization", value)
		}
	}

	var result json.RawMessage
	if err := c.do(ctx, http.MethodPost, rawURL, payload, extra, &result); err != nil {
		return nil, err
	}
	return result, nil
}
