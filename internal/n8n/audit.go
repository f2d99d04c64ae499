package n8n

import (
	"context"
	"encoding/json"
	"net/http"
)

// GenerateAudit runs a security audit on the n8n instance and returns
// the full report. Options narrow the audit scope; a nil opts runs the
// audit with server-side defaults.
func (c *Client) GenerateAudit(ctx context.Context, opts *AuditOptions) (json.RawMessage, error) {
	var body any
	if opts != nil {
		additional := map[string]any{}
		if opts.DaysAbandonedWorkflow != nil {
			additional["daysAbandonedWorkflow"] = *opts.DaysAbandonedWorkflow
		}
		if len(opts.Categories) > 0 {
			additional["categories"] = opts.Categories
		}
		if len(additional) > 0 {
			body = map[string]any{"additionalOptions": additional}
		}
	}

	var result json.RawMessage
	if err := c.Do(ctx, http.MethodPost, "/audit", body, &result); err != nil {
		return nil, err
	}
	return result, nil
}
