// Package inspector is an on-demand design inspector for pages rendered in
// Chrome. A command (keyboard chord, HTTP, MCP) snapshots the active tab,
// measures its main content container (typography, box metrics, gutters,
// vertical rhythm, prominent colors) and mounts the findings as a floating
// overlay in the page. Results are also delivered to sinks.
//
// The inspector is stateless between runs: each run starts from a fresh
// snapshot and ends with a rendered overlay.
package inspector

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/go-rod/rod"

	"github.com/hazyhaar/inspector/idgen"
	"github.com/hazyhaar/inspector/inspector/internal/analyzer"
	"github.com/hazyhaar/inspector/inspector/internal/browser"
	"github.com/hazyhaar/inspector/inspector/internal/config"
	"github.com/hazyhaar/inspector/inspector/internal/overlay"
	"github.com/hazyhaar/inspector/inspector/internal/sink"
	"github.com/hazyhaar/inspector/inspector/internal/trigger"
	"github.com/hazyhaar/inspector/kit"
)

// Inspector is the top-level orchestrator. It owns the browser, the open
// tabs, the command registry, the overlay registry and the sinks.
type Inspector struct {
	cfg       *config.Config
	mgr       *browser.Manager
	opener    Opener
	sinkR     *sink.Router
	triggers  *trigger.Registry
	overlays  *overlay.Registry
	shortcut  trigger.Shortcut
	colorMode analyzer.ColorMode
	overlayID idgen.Generator
	runID     idgen.Generator
	logger    *slog.Logger

	mu     sync.Mutex
	tabs   map[string]Tab
	order  []string
	active string
}

// New creates an Inspector from configuration. The configured command is
// registered once here.
func New(cfg *config.Config, logger *slog.Logger, sinks ...sink.Sink) (*Inspector, error) {
	if cfg == nil {
		cfg = config.Default()
	}
	if logger == nil {
		logger = slog.Default()
	}

	shortcut, err := trigger.ParseShortcut(cfg.Command.Shortcut)
	if err != nil {
		return nil, fmt.Errorf("inspector: %w", err)
	}
	mode, err := browser.ParseMode(cfg.Browser.Stealth)
	if err != nil {
		return nil, fmt.Errorf("inspector: %w", err)
	}

	mgr := browser.NewManager(browser.Config{
		RemoteURL:        cfg.Browser.Remote,
		MemoryLimit:      cfg.Browser.MemoryLimit,
		RecycleInterval:  cfg.Browser.RecycleInterval,
		ResourceBlocking: cfg.Browser.ResourceBlocking,
		Mode:             mode,
		XvfbDisplay:      cfg.Browser.XvfbDisplay,
		ViewportWidth:    cfg.Browser.ViewportWidth,
		ViewportHeight:   cfg.Browser.ViewportHeight,
		Logger:           logger,
	})

	ins := &Inspector{
		cfg:       cfg,
		mgr:       mgr,
		opener:    browserOpener{mgr: mgr},
		sinkR:     sink.NewRouter(logger, sinks...),
		overlays:  overlay.NewRegistry(logger),
		shortcut:  shortcut,
		colorMode: analyzer.ParseColorMode(cfg.Analyzer.ColorMode),
		overlayID: idgen.Prefixed("design-inspector-", idgen.NanoID(10)),
		runID:     idgen.UUIDv7(),
		logger:    logger,
		tabs:      make(map[string]Tab),
	}
	ins.triggers = trigger.NewRegistry(ins, logger)

	run := kit.Chain(kit.Logging(logger, cfg.Command.Name))(ins.runEndpoint)
	err = ins.triggers.Register(cfg.Command.Name, func(ctx context.Context, tabID string) error {
		_, err := run(ctx, tabID)
		return err
	})
	if err != nil {
		return nil, fmt.Errorf("inspector: %w", err)
	}
	return ins, nil
}

// Start launches the browser and opens every configured page.
func (ins *Inspector) Start(ctx context.Context) error {
	if _, err := ins.mgr.Start(ctx); err != nil {
		return fmt.Errorf("inspector: start browser: %w", err)
	}

	ins.mgr.SetRecycleCallback(&browser.RecycleCallback{
		BeforeRecycle: ins.dropTabs,
		AfterRecycle:  func(*rod.Browser) { go ins.reopenPages(ctx) },
	})

	for _, p := range ins.cfg.Pages {
		if _, err := ins.OpenPage(ctx, p.ID, p.URL); err != nil {
			ins.logger.Error("inspector: open page failed", "id", p.ID, "url", p.URL, "error", err)
		}
	}
	return nil
}

// Stop closes all tabs, the sinks and the browser.
func (ins *Inspector) Stop() {
	ins.dropTabs()
	ins.sinkR.Close()
	ins.mgr.Close()
}

// Command is the configured command name.
func (ins *Inspector) Command() string { return ins.cfg.Command.Name }

// Shortcut is the configured key chord.
func (ins *Inspector) Shortcut() string { return ins.shortcut.String() }

// Fire runs a registered command on the active tab. With no active tab it
// does nothing.
func (ins *Inspector) Fire(ctx context.Context, command string) error {
	return ins.triggers.Fire(ctx, command)
}

func (ins *Inspector) runEndpoint(ctx context.Context, req any) (any, error) {
	return ins.Run(ctx, req.(string))
}

// Run inspects one tab: snapshot, analyze, render the overlay into the
// page, deliver the result to sinks.
func (ins *Inspector) Run(ctx context.Context, tabID string) (sink.Result, error) {
	tab, ok := ins.tab(tabID)
	if !ok {
		return sink.Result{}, fmt.Errorf("inspector: unknown tab %s", tabID)
	}

	page, err := tab.Collect(ctx)
	if err != nil {
		return sink.Result{}, fmt.Errorf("inspector: run %s: %w", tabID, err)
	}
	bundle := analyzer.Analyze(page, analyzer.Options{ColorMode: ins.colorMode})

	res := sink.Result{
		RunID:  ins.runID(),
		TabID:  tabID,
		URL:    page.URL,
		Title:  page.Title,
		At:     time.Now().UTC(),
		Bundle: bundle,
	}
	if res.URL == "" {
		res.URL = tab.URL()
	}

	frag, err := overlay.Build(bundle, ins.overlayID(), ins.cfg.Overlay.FontHref)
	if err != nil {
		return res, fmt.Errorf("inspector: run %s: %w", tabID, err)
	}
	if err := ins.overlays.Show(ctx, tab, frag); err != nil {
		return res, fmt.Errorf("inspector: run %s: %w", tabID, err)
	}
	res.OverlayID = frag.ID

	ins.logger.Info("inspector: run complete",
		"run", res.RunID,
		"tab", tabID,
		"url", res.URL,
		"container", bundle.Container.Descriptor,
		"tier", bundle.Container.Tier,
		"overlay", frag.ID)

	if err := ins.sinkR.Send(ctx, res); err != nil {
		ins.logger.Error("inspector: send result failed", "run", res.RunID, "error", err)
	}
	return res, nil
}

// CloseOverlay removes one rendered overlay from its page.
func (ins *Inspector) CloseOverlay(ctx context.Context, id string) (bool, error) {
	return ins.overlays.Close(ctx, id)
}

// OverlayState reports an overlay's lifecycle state.
func (ins *Inspector) OverlayState(id string) string {
	return ins.overlays.State(id).String()
}

func (ins *Inspector) dropTabs() {
	ins.mu.Lock()
	tabs := ins.tabs
	ins.tabs = make(map[string]Tab)
	ins.order = nil
	ins.active = ""
	ins.mu.Unlock()

	for id, t := range tabs {
		if err := t.Close(); err != nil {
			ins.logger.Debug("inspector: close tab", "id", id, "error", err)
		}
	}
}

func (ins *Inspector) reopenPages(ctx context.Context) {
	for _, p := range ins.cfg.Pages {
		if _, err := ins.OpenPage(ctx, p.ID, p.URL); err != nil {
			ins.logger.Error("inspector: reopen page failed", "id", p.ID, "error", err)
		}
	}
}
