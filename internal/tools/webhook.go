package tools

import (
	"context"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/DevDugg/n8n-mcp-sub001/internal/n8n"
)

func (t *Toolset) triggerWebhook() server.ServerTool {
	tool := mcp.NewTool("n8n_trigger_webhook",
		mcp.WithDescription("POST a JSON payload to a production webhook path on the n8n instance. The target workflow must be active. Retries may cause the webhook to execute more than once."),
		mcp.WithString("path", mcp.Required(), mcp.Description("Webhook path as configured on the Webhook trigger node, without the /webhook/ prefix")),
		mcp.WithObject("payload", mcp.Description("JSON body to send")),
		mcp.WithString("username", mcp.Description("Basic auth username, when the webhook requires it")),
		mcp.WithString("password", mcp.Description("Basic auth password, when the webhook requires it")),
	)
	return server.ServerTool{Tool: tool, Handler: func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		args := req.GetArguments()
		path := argString(args, "path")
		if path == "" {
			return mcp.NewToolResultError("path is required"), nil
		}

		var payload any
		if p, ok := args["payload"].(map[string]any); ok {
			payload = p
		}
		var auth *n8n.WebhookAuth
		username := argString(args, "username")
		password := argString(args, "password")
		if username != "" || password != "" {
			auth = &n8n.WebhookAuth{Username: username, Password: password}
		}

		raw, err := t.client.InvokeWebhook(ctx, path, payload, auth)
		return t.result("n8n_trigger_webhook", raw, err)
	}}
}

func (t *Toolset) healthCheck() server.ServerTool {
	tool := mcp.NewTool("n8n_health_check",
		mcp.WithDescription("Check whether the n8n instance is up and reachable."),
	)
	return server.ServerTool{Tool: tool, Handler: func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		raw, err := t.client.HealthCheck(ctx)
		return t.result("n8n_health_check", raw, err)
	}}
}
