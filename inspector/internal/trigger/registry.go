// Package trigger binds user-facing commands to the inspector run: command
// registration, shortcut parsing, and the in-page key listener.
package trigger

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sort"
	"sync"
)

// DefaultCommand is the command that runs one inspection.
const DefaultCommand = "run-inspector"

var (
	ErrAlreadyRegistered = errors.New("trigger: command already registered")
	ErrUnknownCommand    = errors.New("trigger: unknown command")
)

// Handler runs a command against one tab.
type Handler func(ctx context.Context, tabID string) error

// TabResolver reports the tab the user is focused on.
type TabResolver interface {
	ActiveTab() (string, bool)
}

// ResolverFunc adapts a function to TabResolver.
type ResolverFunc func() (string, bool)

func (f ResolverFunc) ActiveTab() (string, bool) { return f() }

// Registry maps command names to handlers.
type Registry struct {
	mu       sync.RWMutex
	handlers map[string]Handler
	resolver TabResolver
	logger   *slog.Logger
}

// NewRegistry creates an empty registry resolving tabs through r.
func NewRegistry(r TabResolver, logger *slog.Logger) *Registry {
	if logger == nil {
		logger = slog.Default()
	}
	return &Registry{
		handlers: make(map[string]Handler),
		resolver: r,
		logger:   logger,
	}
}

// Register binds name to h. Each name can be bound once.
func (r *Registry) Register(name string, h Handler) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.handlers[name]; ok {
		return fmt.Errorf("%w: %s", ErrAlreadyRegistered, name)
	}
	r.handlers[name] = h
	return nil
}

// Has reports whether name is registered.
func (r *Registry) Has(name string) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	_, ok := r.handlers[name]
	return ok
}

// Commands lists registered names in sorted order.
func (r *Registry) Commands() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]string, 0, len(r.handlers))
	for name := range r.handlers {
		out = append(out, name)
	}
	sort.Strings(out)
	return out
}

// Fire runs the handler for name once against the active tab. With no
// active tab it does nothing and returns nil.
func (r *Registry) Fire(ctx context.Context, name string) error {
	r.mu.RLock()
	h, ok := r.handlers[name]
	r.mu.RUnlock()
	if !ok {
		return fmt.Errorf("%w: %s", ErrUnknownCommand, name)
	}

	tabID, ok := "", false
	if r.resolver != nil {
		tabID, ok = r.resolver.ActiveTab()
	}
	if !ok {
		r.logger.Debug("trigger: no active tab", "command", name)
		return nil
	}

	r.logger.Info("trigger: fire", "command", name, "tab", tabID)
	return h(ctx, tabID)
}
