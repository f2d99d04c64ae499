package tools

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/DevDugg/n8n-mcp-sub001/internal/n8n"
)

// result converts a client call outcome into a tool result. Handler
// errors become error-flagged text results rather than protocol
// errors, so the model can read and react to them.
func (t *Toolset) result(tool string, raw json.RawMessage, err error) (*mcp.CallToolResult, error) {
	if err != nil {
		return t.errorResult(tool, err), nil
	}
	if len(raw) == 0 {
		raw = json.RawMessage("null")
	}
	return mcp.NewToolResultText(string(raw)), nil
}

// errorResult renders a client error for the model. Full detail goes
// to the log; the tool result carries a stable, compact message.
func (t *Toolset) errorResult(tool string, err error) *mcp.CallToolResult {
	t.log.Error().Err(err).Str("tool", tool).Msg("tool call failed")

	var apiErr *n8n.APIError
	if errors.As(err, &apiErr) {
		return mcp.NewToolResultError(fmt.Sprintf("n8n API error (%d): %s", apiErr.StatusCode, apiErr.Message))
	}
	var timeoutErr *n8n.TimeoutError
	if errors.As(err, &timeoutErr) {
		return mcp.NewToolResultError("n8n did not respond in time; try again later")
	}
	return mcp.NewToolResultError(err.Error())
}
