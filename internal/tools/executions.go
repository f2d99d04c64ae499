package tools

import (
	"context"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/DevDugg/n8n-mcp-sub001/internal/n8n"
)

func (t *Toolset) listExecutions() server.ServerTool {
	tool := mcp.NewTool("n8n_list_executions",
		mcp.WithDescription("List workflow executions, optionally filtered by workflow, project, or status (error, success, waiting)."),
		mcp.WithBoolean("includeData", mcp.Description("Include node-level run data in each execution")),
		mcp.WithString("status", mcp.Description("Filter by execution status: error, success, or waiting")),
		mcp.WithString("workflowId", mcp.Description("Only return executions of this workflow")),
		mcp.WithString("projectId", mcp.Description("Filter by project ID")),
		mcp.WithNumber("limit", mcp.Description("Maximum number of executions to return (max 250)")),
		mcp.WithString("cursor", mcp.Description("Pagination cursor from a previous response")),
	)
	return server.ServerTool{Tool: tool, Handler: func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		args := req.GetArguments()
		opts := &n8n.ListExecutionsOptions{
			IncludeData: argBool(args, "includeData"),
			Status:      argString(args, "status"),
			WorkflowID:  argString(args, "workflowId"),
			ProjectID:   argString(args, "projectId"),
			Limit:       argInt(args, "limit"),
			Cursor:      argString(args, "cursor"),
		}
		raw, err := t.client.ListExecutions(ctx, opts)
		return t.result("n8n_list_executions", raw, err)
	}}
}

func (t *Toolset) getExecution() server.ServerTool {
	tool := mcp.NewTool("n8n_get_execution",
		mcp.WithDescription("Fetch a single execution by ID. Set includeData to see per-node input and output."),
		mcp.WithString("id", mcp.Required(), mcp.Description("Execution ID")),
		mcp.WithBoolean("includeData", mcp.Description("Include node-level run data")),
	)
	return server.ServerTool{Tool: tool, Handler: func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		args := req.GetArguments()
		id := argString(args, "id")
		if id == "" {
			return mcp.NewToolResultError("id is required"), nil
		}
		raw, err := t.client.GetExecution(ctx, id, argBool(args, "includeData"))
		return t.result("n8n_get_execution", raw, err)
	}}
}

func (t *Toolset) deleteExecution() server.ServerTool {
	tool := mcp.NewTool("n8n_delete_execution",
		mcp.WithDescription("Permanently delete an execution record by ID."),
		mcp.WithString("id", mcp.Required(), mcp.Description("Execution ID")),
	)
	return server.ServerTool{Tool: tool, Handler: func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		id := argString(req.GetArguments(), "id")
		if id == "" {
			return mcp.NewToolResultError("id is required"), nil
		}
		raw, err := t.client.DeleteExecution(ctx, id)
		return t.result("n8n_delete_execution", raw, err)
	}}
}
