package main

import (
	"os"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/spf13/cobra"

	"github.com/hazyhaar/inspector/inspector"
)

var mcpCmd = &cobra.Command{
	Use:   "mcp",
	Short: "Serve the run_inspector tool over MCP stdio",
	RunE:  runMCP,
}

func init() {
	rootCmd.AddCommand(mcpCmd)
}

func runMCP(cmd *cobra.Command, _ []string) error {
	ctx := cmd.Context()
	logger := newLogger()

	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	// Stdout carries the protocol; results go to stderr unless a sink
	// names a file.
	sinks, closeSinks, err := configuredSinks(cfg, os.Stderr)
	if err != nil {
		return err
	}
	defer closeSinks()

	ins, err := inspector.New(cfg, logger, sinks...)
	if err != nil {
		return err
	}
	if err := ins.Start(ctx); err != nil {
		return err
	}
	defer ins.Stop()

	srv := mcp.NewServer(&mcp.Implementation{Name: "inspector", Version: "0.1.0"}, nil)
	ins.RegisterMCP(srv)
	return srv.Run(ctx, &mcp.StdioTransport{})
}
