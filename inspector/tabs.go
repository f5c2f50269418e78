package inspector

import (
	"context"
	"fmt"

	"github.com/hazyhaar/inspector/horosafe"
	"github.com/hazyhaar/inspector/inspector/internal/browser"
	"github.com/hazyhaar/inspector/inspector/internal/overlay"
	"github.com/hazyhaar/inspector/inspector/internal/trigger"
	"github.com/hazyhaar/inspector/inspector/snapshot"
	"github.com/hazyhaar/inspector/kit"
)

// Fragment is a rendered overlay ready to mount.
type Fragment = overlay.Fragment

// Tab is one page the inspector can run against.
type Tab interface {
	ID() string
	URL() string
	Collect(ctx context.Context) (*snapshot.Page, error)
	Mount(ctx context.Context, f Fragment) error
	Unmount(ctx context.Context, id string) (bool, error)
	Close() error
}

// hookable tabs accept the in-page listener.
type hookable interface {
	Install(ctx context.Context, js string) error
	Bind(name string, fn func(payload string)) error
}

// Opener opens a tab on a URL.
type Opener interface {
	Open(ctx context.Context, id, url string) (Tab, error)
}

type browserOpener struct {
	mgr *browser.Manager
}

func (o browserOpener) Open(ctx context.Context, id, url string) (Tab, error) {
	t, err := browser.OpenTab(ctx, o.mgr, url, id)
	if err != nil {
		return nil, err
	}
	return t, nil
}

// TabInfo describes an open tab.
type TabInfo struct {
	ID     string `json:"id"`
	URL    string `json:"url"`
	Active bool   `json:"active"`
}

// OpenPage opens url in a new tab, installs the shortcut listener and
// registers the tab. An empty id is generated.
func (ins *Inspector) OpenPage(ctx context.Context, id, url string) (Tab, error) {
	if err := horosafe.ValidatePageURL(url); err != nil {
		return nil, fmt.Errorf("inspector: open %s: %w", url, err)
	}
	if id == "" {
		id = ins.runID()
	} else if err := horosafe.ValidateIdentifier(id); err != nil {
		return nil, fmt.Errorf("inspector: tab id: %w", err)
	}
	if _, exists := ins.tab(id); exists {
		return nil, fmt.Errorf("inspector: tab %s already open", id)
	}

	t, err := ins.opener.Open(ctx, id, url)
	if err != nil {
		return nil, fmt.Errorf("inspector: open %s: %w", url, err)
	}
	if err := ins.hook(ctx, t); err != nil {
		t.Close()
		return nil, err
	}
	ins.AddTab(t)
	ins.logger.Info("inspector: tab open", "id", id, "url", url, "shortcut", ins.shortcut.String())
	return t, nil
}

// hook bridges page events to the inspector: chord presses, focus changes
// and overlay close clicks.
func (ins *Inspector) hook(ctx context.Context, t Tab) error {
	h, ok := t.(hookable)
	if !ok {
		return nil
	}
	id := t.ID()
	if err := h.Bind(trigger.BindingName, func(payload string) {
		go ins.handleMessage(context.Background(), id, payload)
	}); err != nil {
		return fmt.Errorf("inspector: hook %s: %w", id, err)
	}

	js, err := trigger.ListenerJS(map[string]trigger.Shortcut{ins.cfg.Command.Name: ins.shortcut})
	if err != nil {
		return fmt.Errorf("inspector: hook %s: %w", id, err)
	}
	if err := h.Install(ctx, js); err != nil {
		return fmt.Errorf("inspector: hook %s: %w", id, err)
	}
	return nil
}

func (ins *Inspector) handleMessage(ctx context.Context, tabID, payload string) {
	msg, err := trigger.DecodeMessage(payload)
	if err != nil {
		ins.logger.Warn("inspector: bad binding payload", "tab", tabID, "error", err)
		return
	}

	switch msg.Event {
	case trigger.EventFocus:
		ins.SetActive(tabID)
	case trigger.EventClosed:
		if t, ok := ins.tab(tabID); ok {
			ins.overlays.MarkRemoved(msg.ID, t)
		}
	case trigger.EventCommand:
		// The chord is pressed in the focused page.
		ins.SetActive(tabID)
		ctx = kit.WithTransport(ctx, "keyboard")
		if err := ins.Fire(ctx, msg.Command); err != nil {
			ins.logger.Error("inspector: command failed", "tab", tabID, "command", msg.Command, "error", err)
		}
	}
}

// AddTab registers an already open tab. The first tab becomes active.
func (ins *Inspector) AddTab(t Tab) {
	ins.mu.Lock()
	defer ins.mu.Unlock()
	id := t.ID()
	if _, ok := ins.tabs[id]; !ok {
		ins.order = append(ins.order, id)
	}
	ins.tabs[id] = t
	if ins.active == "" {
		ins.active = id
	}
}

// CloseTab closes and forgets a tab.
func (ins *Inspector) CloseTab(id string) error {
	ins.mu.Lock()
	t, ok := ins.tabs[id]
	if ok {
		delete(ins.tabs, id)
		for i, o := range ins.order {
			if o == id {
				ins.order = append(ins.order[:i], ins.order[i+1:]...)
				break
			}
		}
		if ins.active == id {
			ins.active = ""
		}
	}
	ins.mu.Unlock()
	if !ok {
		return fmt.Errorf("inspector: unknown tab %s", id)
	}
	return t.Close()
}

// SetActive marks a tab as the one commands run against.
func (ins *Inspector) SetActive(id string) bool {
	ins.mu.Lock()
	defer ins.mu.Unlock()
	if _, ok := ins.tabs[id]; !ok {
		return false
	}
	ins.active = id
	return true
}

// ActiveTab reports the active tab, if any.
func (ins *Inspector) ActiveTab() (string, bool) {
	ins.mu.Lock()
	defer ins.mu.Unlock()
	return ins.active, ins.active != ""
}

// Tabs lists open tabs in opening order.
func (ins *Inspector) Tabs() []TabInfo {
	ins.mu.Lock()
	defer ins.mu.Unlock()
	out := make([]TabInfo, 0, len(ins.order))
	for _, id := range ins.order {
		out = append(out, TabInfo{ID: id, URL: ins.tabs[id].URL(), Active: id == ins.active})
	}
	return out
}

func (ins *Inspector) tab(id string) (Tab, bool) {
	ins.mu.Lock()
	defer ins.mu.Unlock()
	t, ok := ins.tabs[id]
	return t, ok
}
