// Package server assembles the MCP server and serves it over stdio or
// streamable HTTP.
package server

import (
	"github.com/rs/zerolog"

	mcpsrv "github.com/mark3labs/mcp-go/server"

	"github.com/DevDugg/n8n-mcp-sub001/internal/config"
	"github.com/DevDugg/n8n-mcp-sub001/internal/n8n"
	"github.com/DevDugg/n8n-mcp-sub001/internal/tools"
)

const serverName = "n8n-mcp"

const instructions = `This server exposes an n8n workflow-automation instance. Use the
n8n_* tools to inspect, create, and run workflows, browse executions,
and manage tags, credentials metadata, and variables. Mutating tools
(create, update, delete, activate) change the live instance.`

// Server wraps the MCP server together with its configuration.
type Server struct {
	cfg *config.Config
	log zerolog.Logger
	mcp *mcpsrv.MCPServer
}

// New builds the n8n client from cfg and registers the full toolset.
func New(cfg *config.Config, log zerolog.Logger, version string) (*Server, error) {
	client, err := n8n.NewClient(n8n.Config{
		BaseURL:        cfg.APIURL,
		APIKey:         cfg.APIKey,
		WebhookBaseURL: cfg.WebhookBaseURL,
		Timeout:        cfg.Timeout,
		MaxRetries:     cfg.MaxRetries,
		RetryDelay:     cfg.RetryDelay,
	})
	if err != nil {
		return nil, err
	}

	s := mcpsrv.NewMCPServer(serverName, version,
		mcpsrv.WithToolCapabilities(false),
		mcpsrv.WithRecovery(),
		mcpsrv.WithInstructions(instructions),
	)
	s.AddTools(tools.New(client, log).All()...)

	return &Server{cfg: cfg, log: log, mcp: s}, nil
}

// RunStdio serves MCP over stdin/stdout until the stream closes. All
// logging goes to stderr; stdout carries only protocol frames.
func (s *Server) RunStdio() error {
	s.log.Info().Str("mode", config.ModeStdio).Msg("serving MCP")
	return mcpsrv.ServeStdio(s.mcp)
}
