// Command inspector runs the design inspector against pages in Chrome.
//
// Usage:
//
//	inspector run https://example.com           # inspect one page, print the result
//	inspector serve --config inspector.yaml     # keep tabs open, trigger by chord or HTTP
//	inspector mcp --config inspector.yaml       # expose run_inspector over MCP stdio
package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/hazyhaar/inspector/inspector"
)

var (
	configPath string
	logLevel   string
)

var rootCmd = &cobra.Command{
	Use:           "inspector",
	Short:         "Measure typography, spacing and colors of a page's main content",
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "path to inspector.yaml config file")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "info", "log level: debug, info, warn, error")
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		newLogger().Error("inspector: fatal", "error", err)
		os.Exit(1)
	}
}

func newLogger() *slog.Logger {
	var level slog.Level
	switch logLevel {
	case "debug":
		level = slog.LevelDebug
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	default:
		level = slog.LevelInfo
	}
	return slog.New(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
}

func loadConfig() (*inspector.Config, error) {
	if configPath == "" {
		return inspector.DefaultConfig(), nil
	}
	cfg, err := inspector.LoadConfigFile(configPath)
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}
	return cfg, nil
}

// configuredSinks builds the sinks named in cfg, falling back to JSON lines
// on out.
func configuredSinks(cfg *inspector.Config, out io.Writer) ([]inspector.Sink, func(), error) {
	sinks, closers, err := inspector.SinksFromConfig(cfg.Sinks, out)
	if err != nil {
		return nil, nil, err
	}
	if len(sinks) == 0 {
		sinks = append(sinks, inspector.NewStdoutSink(out))
	}
	return sinks, func() {
		for _, c := range closers {
			c.Close()
		}
	}, nil
}
