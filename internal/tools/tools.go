// Package tools defines the MCP tool surface and maps tool calls onto
// the n8n API client.
package tools

import (
	"github.com/mark3labs/mcp-go/server"
	"github.com/rs/zerolog"

	"github.com/DevDugg/n8n-mcp-sub001/internal/n8n"
)

// Toolset binds the registered tools to a shared n8n client and
// logger. All handlers are stateless and safe for concurrent calls.
type Toolset struct {
	client *n8n.Client
	log    zerolog.Logger
}

// New returns a Toolset backed by the given client.
func New(client *n8n.Client, log zerolog.Logger) *Toolset {
	return &Toolset{client: client, log: log}
}

// All returns every tool in registration order.
func (t *Toolset) All() []server.ServerTool {
	return []server.ServerTool{
		t.listWorkflows(),
		t.getWorkflow(),
		t.createWorkflow(),
		t.updateWorkflow(),
		t.deleteWorkflow(),
		t.activateWorkflow(),
		t.deactivateWorkflow(),
		t.listExecutions(),
		t.getExecution(),
		t.deleteExecution(),
		t.listTags(),
		t.createTag(),
		t.listCredentials(),
		t.getCredentialSchema(),
		t.listVariables(),
		t.generateAudit(),
		t.triggerWebhook(),
		t.healthCheck(),
	}
}
