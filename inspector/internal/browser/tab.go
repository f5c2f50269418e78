package browser

import (
	"context"
	_ "embed"
	"fmt"
	"sync"
	"time"

	"github.com/go-rod/rod"
	"github.com/go-rod/rod/lib/proto"
	"github.com/go-rod/stealth"

	"github.com/hazyhaar/inspector/inspector/internal/overlay"
	"github.com/hazyhaar/inspector/inspector/snapshot"
)

// collectorJS serialises the rendered document into a snapshot.Page.
// Overlay subtrees are skipped so repeated runs see the same page.
//
//go:embed collector.js
var collectorJS string

// navigateTimeout bounds one navigation plus load wait.
const navigateTimeout = 30 * time.Second

// Tab wraps a Rod page with inspector setup: stealth, viewport, resource
// blocking, and the script hooks the trigger and overlay need.
type Tab struct {
	Page    *rod.Page
	PageURL string
	PageID  string

	manager *Manager
	mu      sync.Mutex
	router  *rod.HijackRouter
	stop    []func()
}

// OpenTab creates a new stealth tab and navigates it to pageURL.
func OpenTab(ctx context.Context, mgr *Manager, pageURL, pageID string) (*Tab, error) {
	b := mgr.Browser()
	if b == nil {
		return nil, fmt.Errorf("browser: no active browser")
	}

	page, err := stealth.Page(b)
	if err != nil {
		return nil, fmt.Errorf("browser: create tab: %w", err)
	}

	t := &Tab{Page: page, PageID: pageID, manager: mgr}

	if w, h := mgr.cfg.ViewportWidth, mgr.cfg.ViewportHeight; w > 0 && h > 0 {
		err := page.SetViewport(&proto.EmulationSetDeviceMetricsOverride{
			Width:             w,
			Height:            h,
			DeviceScaleFactor: 1,
		})
		if err != nil {
			mgr.cfg.Logger.Warn("browser: set viewport failed", "error", err)
		}
	}

	if len(mgr.cfg.ResourceBlocking) > 0 {
		t.router = applyResourceBlocking(page, mgr.cfg.ResourceBlocking)
	}

	if pageURL != "" {
		if err := t.Navigate(ctx, pageURL); err != nil {
			t.Close()
			return nil, err
		}
	}
	return t, nil
}

// Navigate loads pageURL and waits for the load event.
func (t *Tab) Navigate(ctx context.Context, pageURL string) error {
	navCtx, cancel := context.WithTimeout(ctx, navigateTimeout)
	defer cancel()

	if err := t.Page.Context(navCtx).Navigate(pageURL); err != nil {
		return fmt.Errorf("browser: navigate %s: %w", pageURL, err)
	}
	if err := t.Page.Context(navCtx).WaitLoad(); err != nil {
		t.manager.cfg.Logger.Warn("browser: wait load timeout", "url", pageURL, "error", err)
	}

	t.mu.Lock()
	t.PageURL = pageURL
	t.mu.Unlock()
	return nil
}

// URL returns the last navigated URL.
func (t *Tab) URL() string {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.PageURL
}

// ID identifies the tab for trigger routing.
func (t *Tab) ID() string { return t.PageID }

// Collect snapshots the rendered document.
func (t *Tab) Collect(ctx context.Context) (*snapshot.Page, error) {
	res, err := t.Page.Context(ctx).Eval(collectorJS)
	if err != nil {
		return nil, fmt.Errorf("browser: collect: %w", err)
	}
	page, err := snapshot.Decode([]byte(res.Value.Str()))
	if err != nil {
		return nil, fmt.Errorf("browser: collect: %w", err)
	}
	return page, nil
}

// Mount appends an overlay to the page body.
func (t *Tab) Mount(ctx context.Context, f overlay.Fragment) error {
	if _, err := t.Page.Context(ctx).Eval(overlay.MountJS, f); err != nil {
		return fmt.Errorf("browser: mount overlay: %w", err)
	}
	return nil
}

// Unmount removes one overlay and reports whether it was present.
func (t *Tab) Unmount(ctx context.Context, id string) (bool, error) {
	res, err := t.Page.Context(ctx).Eval(overlay.UnmountJS, id)
	if err != nil {
		return false, fmt.Errorf("browser: unmount overlay: %w", err)
	}
	return res.Value.Bool(), nil
}

// Install runs js in the current document and in every document loaded
// afterwards. The script must tolerate running twice.
func (t *Tab) Install(ctx context.Context, js string) error {
	remove, err := t.Page.Context(ctx).EvalOnNewDocument(js)
	if err != nil {
		return fmt.Errorf("browser: install script: %w", err)
	}
	t.mu.Lock()
	t.stop = append(t.stop, func() { remove() })
	t.mu.Unlock()

	if _, err := t.Page.Context(ctx).Eval(`() => {` + js + `}`); err != nil {
		return fmt.Errorf("browser: run script: %w", err)
	}
	return nil
}

// Bind exposes window[name] to page scripts; every call is delivered to fn
// with its string payload until the tab closes.
func (t *Tab) Bind(name string, fn func(payload string)) error {
	if err := (proto.RuntimeAddBinding{Name: name}).Call(t.Page); err != nil {
		return fmt.Errorf("browser: add binding %s: %w", name, err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	t.mu.Lock()
	t.stop = append(t.stop, cancel)
	t.mu.Unlock()

	wait := t.Page.Context(ctx).EachEvent(func(e *proto.RuntimeBindingCalled) {
		if e.Name == name {
			fn(e.Payload)
		}
	})
	go wait()
	return nil
}

// Close stops listeners and closes the tab.
func (t *Tab) Close() error {
	t.mu.Lock()
	stop := t.stop
	t.stop = nil
	t.mu.Unlock()
	for _, fn := range stop {
		fn()
	}
	if t.router != nil {
		t.router.Stop()
	}
	if t.Page != nil {
		return t.Page.Close()
	}
	return nil
}
