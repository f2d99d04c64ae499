// Command n8n-mcp serves an MCP tool surface in front of an n8n
// instance, over stdio for editor integrations or streamable HTTP for
// remote clients.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/DevDugg/n8n-mcp-sub001/internal/config"
	"github.com/DevDugg/n8n-mcp-sub001/internal/server"
)

// version is set at build time via -ldflags "-X main.version=...".
var version = "dev"

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var (
		mode string
		port int
	)

	cmd := &cobra.Command{
		Use:           "n8n-mcp",
		Short:         "MCP server for the n8n workflow automation API",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load()
			if err != nil {
				return err
			}
			if cmd.Flags().Changed("mode") {
				cfg.Mode = mode
			}
			if cmd.Flags().Changed("port") {
				cfg.Port = port
			}
			if err := cfg.Validate(); err != nil {
				return err
			}
			return run(cfg)
		},
	}

	cmd.Flags().StringVar(&mode, "mode", config.ModeStdio, "transport mode: stdio or http")
	cmd.Flags().IntVar(&port, "port", config.DefaultPort, "listen port in http mode")

	cmd.AddCommand(&cobra.Command{
		Use:   "version",
		Short: "Print the version and exit",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Println(version)
		},
	})

	return cmd
}

func run(cfg *config.Config) error {
	log, err := newLogger(cfg.LogLevel)
	if err != nil {
		return err
	}
	if cfg.APIKey == "" {
		log.Warn().Msg("N8N_API_KEY is empty; requests will fail against a secured instance")
	}

	srv, err := server.New(cfg, log, version)
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	switch cfg.Mode {
	case config.ModeHTTP:
		return srv.RunHTTP(ctx)
	default:
		return srv.RunStdio()
	}
}

// newLogger writes structured logs to stderr so stdout stays free for
// MCP protocol frames in stdio mode.
func newLogger(level string) (zerolog.Logger, error) {
	lvl, err := zerolog.ParseLevel(level)
	if err != nil {
		return zerolog.Logger{}, fmt.Errorf("invalid log level %q: %w", level, err)
	}
	return zerolog.New(os.Stderr).Level(lvl).With().Timestamp().Logger(), nil
}
