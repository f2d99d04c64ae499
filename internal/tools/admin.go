package tools

import (
	"context"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/DevDugg/n8n-mcp-sub001/internal/n8n"
)

// Tags, credentials, variables, and the security audit.

func (t *Toolset) listTags() server.ServerTool {
	tool := mcp.NewTool("n8n_list_tags",
		mcp.WithDescription("List workflow tags."),
		mcp.WithNumber("limit", mcp.Description("Maximum number of tags to return")),
		mcp.WithString("cursor", mcp.Description("Pagination cursor from a previous response")),
	)
	return server.ServerTool{Tool: tool, Handler: func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		args := req.GetArguments()
		raw, err := t.client.ListTags(ctx, &n8n.ListOptions{
			Limit:  argInt(args, "limit"),
			Cursor: argString(args, "cursor"),
		})
		return t.result("n8n_list_tags", raw, err)
	}}
}

func (t *Toolset) createTag() server.ServerTool {
	tool := mcp.NewTool("n8n_create_tag",
		mcp.WithDescription("Create a new workflow tag."),
		mcp.WithString("name", mcp.Required(), mcp.Description("Tag name")),
	)
	return server.ServerTool{Tool: tool, Handler: func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		name := argString(req.GetArguments(), "name")
		if name == "" {
			return mcp.NewToolResultError("name is required"), nil
		}
		raw, err := t.client.CreateTag(ctx, name)
		return t.result("n8n_create_tag", raw, err)
	}}
}

func (t *Toolset) listCredentials() server.ServerTool {
	tool := mcp.NewTool("n8n_list_credentials",
		mcp.WithDescription("List credential metadata (names, types, IDs). Secret values are never returned."),
		mcp.WithNumber("limit", mcp.Description("Maximum number of credentials to return")),
		mcp.WithString("cursor", mcp.Description("Pagination cursor from a previous response")),
	)
	return server.ServerTool{Tool: tool, Handler: func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		args := req.GetArguments()
		raw, err := t.client.ListCredentials(ctx, &n8n.ListOptions{
			Limit:  argInt(args, "limit"),
			Cursor: argString(args, "cursor"),
		})
		return t.result("n8n_list_credentials", raw, err)
	}}
}

func (t *Toolset) getCredentialSchema() server.ServerTool {
	tool := mcp.NewTool("n8n_get_credential_schema",
		mcp.WithDescription("Get the JSON schema describing the fields a credential type requires, e.g. \"httpBasicAuth\" or \"slackApi\"."),
		mcp.WithString("credentialTypeName", mcp.Required(), mcp.Description("Credential type name")),
	)
	return server.ServerTool{Tool: tool, Handler: func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		typeName := argString(req.GetArguments(), "credentialTypeName")
		if typeName == "" {
			return mcp.NewToolResultError("credentialTypeName is required"), nil
		}
		raw, err := t.client.GetCredentialSchema(ctx, typeName)
		return t.result("n8n_get_credential_schema", raw, err)
	}}
}

func (t *Toolset) listVariables() server.ServerTool {
	tool := mcp.NewTool("n8n_list_variables",
		mcp.WithDescription("List instance variables."),
		mcp.WithNumber("limit", mcp.Description("Maximum number of variables to return")),
		mcp.WithString("cursor", mcp.Description("Pagination cursor from a previous response")),
	)
	return server.ServerTool{Tool: tool, Handler: func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		args := req.GetArguments()
		raw, err := t.client.ListVariables(ctx, &n8n.ListOptions{
			Limit:  argInt(args, "limit"),
			Cursor: argString(args, "cursor"),
		})
		return t.result("n8n_list_variables", raw, err)
	}}
}

func (t *Toolset) generateAudit() server.ServerTool {
	tool := mcp.NewTool("n8n_generate_audit",
		mcp.WithDescription("Run a security audit on the n8n instance and return the risk report."),
		mcp.WithNumber("daysAbandonedWorkflow", mcp.Description("Days of inactivity after which a workflow counts as abandoned")),
		mcp.WithArray("categories", mcp.Description("Risk categories to audit: credentials, database, nodes, filesystem, instance"),
			mcp.Items(map[string]any{"type": "string"})),
	)
	return server.ServerTool{Tool: tool, Handler: func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		args := req.GetArguments()
		raw, err := t.client.GenerateAudit(ctx, &n8n.AuditOptions{
			DaysAbandonedWorkflow: argInt(args, "daysAbandonedWorkflow"),
			Categories:            argStringSlice(args, "categories"),
		})
		return t.result("n8n_generate_audit", raw, err)
	}}
}
