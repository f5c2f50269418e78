package main

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/hazyhaar/inspector/inspector"
)

var serveAddr string

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Open configured pages and wait for the inspector chord or HTTP commands",
	RunE:  runServe,
}

func init() {
	serveCmd.Flags().StringVar(&serveAddr, "addr", "", "HTTP listen address (overrides http.addr)")
	rootCmd.AddCommand(serveCmd)
}

func runServe(cmd *cobra.Command, _ []string) error {
	logger := newLogger()

	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	if serveAddr != "" {
		cfg.HTTP.Addr = serveAddr
	}

	sinks, closeSinks, err := configuredSinks(cfg, cmd.OutOrStdout())
	if err != nil {
		return err
	}
	defer closeSinks()

	ins, err := inspector.New(cfg, logger, sinks...)
	if err != nil {
		return err
	}
	defer ins.Stop()

	g, ctx := errgroup.WithContext(cmd.Context())
	srv := &http.Server{
		Addr:              cfg.HTTP.Addr,
		Handler:           ins.Router(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	g.Go(func() error {
		if err := ins.Start(ctx); err != nil {
			return err
		}
		logger.Info("inspector: ready",
			"tabs", len(ins.Tabs()),
			"command", ins.Command(),
			"shortcut", ins.Shortcut())
		<-ctx.Done()
		return nil
	})

	g.Go(func() error {
		logger.Info("inspector: http listening", "addr", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})

	g.Go(func() error {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	})

	return g.Wait()
}
