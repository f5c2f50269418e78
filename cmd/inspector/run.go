package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/hazyhaar/inspector/horosafe"
	"github.com/hazyhaar/inspector/inspector"
)

var runFormat string

var runCmd = &cobra.Command{
	Use:   "run <url>",
	Short: "Open a page, inspect it once and print the result",
	Args:  cobra.ExactArgs(1),
	RunE:  runOnce,
}

func init() {
	runCmd.Flags().StringVar(&runFormat, "format", "json", "output format: json, markdown")
	rootCmd.AddCommand(runCmd)
}

func runOnce(cmd *cobra.Command, args []string) error {
	if err := horosafe.ValidatePageURL(args[0]); err != nil {
		return err
	}
	ctx := cmd.Context()
	logger := newLogger()

	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	cfg.Pages = nil

	var out inspector.Sink
	switch runFormat {
	case "json":
		out = inspector.NewStdoutSink(os.Stdout)
	case "markdown", "md":
		out = inspector.NewMarkdownSink(os.Stdout)
	default:
		return fmt.Errorf("unknown format %q", runFormat)
	}

	ins, err := inspector.New(cfg, logger, out)
	if err != nil {
		return err
	}
	if err := ins.Start(ctx); err != nil {
		return err
	}
	defer ins.Stop()

	tab, err := ins.OpenPage(ctx, "", args[0])
	if err != nil {
		return err
	}
	ins.SetActive(tab.ID())
	return ins.Fire(ctx, ins.Command())
}
