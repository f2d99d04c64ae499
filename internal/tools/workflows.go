package tools

import (
	"context"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/DevDugg/n8n-mcp-sub001/internal/n8n"
)

func (t *Toolset) listWorkflows() server.ServerTool {
	tool := mcp.NewTool("n8n_list_workflows",
		mcp.WithDescription("List workflows from the n8n instance. Returns a page of workflows and a nextCursor for pagination."),
		mcp.WithBoolean("active", mcp.Description("Only return workflows that are active (true) or inactive (false)")),
		mcp.WithString("tags", mcp.Description("Comma-separated tag names to filter by")),
		mcp.WithString("name", mcp.Description("Filter by exact workflow name")),
		mcp.WithString("projectId", mcp.Description("Filter by project ID")),
		mcp.WithBoolean("excludePinnedData", mcp.Description("Omit pinned data from the returned workflows")),
		mcp.WithNumber("limit", mcp.Description("Maximum number of workflows to return (max 250)")),
		mcp.WithString("cursor", mcp.Description("Pagination cursor from a previous response")),
	)
	return server.ServerTool{Tool: tool, Handler: func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		args := req.GetArguments()
		opts := &n8n.ListWorkflowsOptions{
			Active:            argBool(args, "active"),
			Tags:              argString(args, "tags"),
			Name:              argString(args, "name"),
			ProjectID:         argString(args, "projectId"),
			ExcludePinnedData: argBool(args, "excludePinnedData"),
			Limit:             argInt(args, "limit"),
			Cursor:            argString(args, "cursor"),
		}
		raw, err := t.client.ListWorkflows(ctx, opts)
		return t.result("n8n_list_workflows", raw, err)
	}}
}

func (t *Toolset) getWorkflow() server.ServerTool {
	tool := mcp.NewTool("n8n_get_workflow",
		mcp.WithDescription("Fetch a single workflow by ID, including its nodes and connections."),
		mcp.WithString("id", mcp.Required(), mcp.Description("Workflow ID")),
		mcp.WithBoolean("excludePinnedData", mcp.Description("Omit pinned data from the returned workflow")),
	)
	return server.ServerTool{Tool: tool, Handler: func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		args := req.GetArguments()
		id := argString(args, "id")
		if id == "" {
			return mcp.NewToolResultError("id is required"), nil
		}
		raw, err := t.client.GetWorkflow(ctx, id, argBool(args, "excludePinnedData"))
		return t.result("n8n_get_workflow", raw, err)
	}}
}

func (t *Toolset) createWorkflow() server.ServerTool {
	tool := mcp.NewTool("n8n_create_workflow",
		mcp.WithDescription("Create a new workflow from a full workflow definition (name, nodes, connections, settings). Workflows are created inactive."),
		mcp.WithObject("workflow", mcp.Required(), mcp.Description("Complete workflow definition object")),
	)
	return server.ServerTool{Tool: tool, Handler: func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		args := req.GetArguments()
		workflow, ok := args["workflow"].(map[string]any)
		if !ok {
			return mcp.NewToolResultError("workflow is required and must be an object"), nil
		}
		raw, err := t.client.CreateWorkflow(ctx, workflow)
		return t.result("n8n_create_workflow", raw, err)
	}}
}

func (t *Toolset) updateWorkflow() server.ServerTool {
	tool := mcp.NewTool("n8n_update_workflow",
		mcp.WithDescription("Replace an existing workflow's definition. The definition must be complete; n8n does not merge partial updates."),
		mcp.WithString("id", mcp.Required(), mcp.Description("Workflow ID")),
		mcp.WithObject("workflow", mcp.Required(), mcp.Description("Complete replacement workflow definition")),
	)
	return server.ServerTool{Tool: tool, Handler: func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		args := req.GetArguments()
		id := argString(args, "id")
		if id == "" {
			return mcp.NewToolResultError("id is required"), nil
		}
		workflow, ok := args["workflow"].(map[string]any)
		if !ok {
			return mcp.NewToolResultError("workflow is required and must be an object"), nil
		}
		raw, err := t.client.UpdateWorkflow(ctx, id, workflow)
		return t.result("n8n_update_workflow", raw, err)
	}}
}

func (t *Toolset) deleteWorkflow() server.ServerTool {
	tool := mcp.NewTool("n8n_delete_workflow",
		mcp.WithDescription("Permanently delete a workflow by ID."),
		mcp.WithString("id", mcp.Required(), mcp.Description("Workflow ID")),
	)
	return server.ServerTool{Tool: tool, Handler: func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		id := argString(req.GetArguments(), "id")
		if id == "" {
			return mcp.NewToolResultError("id is required"), nil
		}
		raw, err := t.client.DeleteWorkflow(ctx, id)
		return t.result("n8n_delete_workflow", raw, err)
	}}
}

func (t *Toolset) activateWorkflow() server.ServerTool {
	tool := mcp.NewTool("n8n_activate_workflow",
		mcp.WithDescription("Activate a workflow so its trigger starts running."),
		mcp.WithString("id", mcp.Required(), mcp.Description("Workflow ID")),
	)
	return server.ServerTool{Tool: tool, Handler: func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		id := argString(req.GetArguments(), "id")
		if id == "" {
			return mcp.NewToolResultError("id is required"), nil
		}
		raw, err := t.client.ActivateWorkflow(ctx, id)
		return t.result("n8n_activate_workflow", raw, err)
	}}
}

func (t *Toolset) deactivateWorkflow() server.ServerTool {
	tool := mcp.NewTool("n8n_deactivate_workflow",
		mcp.WithDescription("Deactivate a workflow so its trigger stops running."),
		mcp.WithString("id", mcp.Required(), mcp.Description("Workflow ID")),
	)
	return server.ServerTool{Tool: tool, Handler: func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		id := argString(req.GetArguments(), "id")
		if id == "" {
			return mcp.NewToolResultError("id is required"), nil
		}
		raw, err := t.client.DeactivateWorkflow(ctx, id)
		return t.result("n8n_deactivate_workflow", raw, err)
	}}
}
