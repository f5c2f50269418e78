package overlay

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
)

// State is the lifecycle of one overlay: Absent, then Rendered, then Removed.
type State int

const (
	Absent State = iota
	Rendered
	Removed
)

func (s State) String() string {
	switch s {
	case Rendered:
		return "rendered"
	case Removed:
		return "removed"
	default:
		return "absent"
	}
}

// ErrAlreadyMounted is returned when a fragment ID is shown twice.
var ErrAlreadyMounted = errors.New("overlay: already mounted")

// Host mounts and removes overlays in one page.
type Host interface {
	Mount(ctx context.Context, f Fragment) error
	Unmount(ctx context.Context, id string) (bool, error)
}

// Registry tracks every overlay shown through it. Multiple overlays may be
// live in the same page; each is closed independently.
type Registry struct {
	mu     sync.Mutex
	state  map[string]State
	hosts  map[string]Host
	logger *slog.Logger
}

// NewRegistry creates an empty registry.
func NewRegistry(logger *slog.Logger) *Registry {
	if logger == nil {
		logger = slog.Default()
	}
	return &Registry{
		state:  make(map[string]State),
		hosts:  make(map[string]Host),
		logger: logger,
	}
}

// Show mounts f into host and marks it rendered.
func (r *Registry) Show(ctx context.Context, host Host, f Fragment) error {
	r.mu.Lock()
	if r.state[f.ID] != Absent {
		r.mu.Unlock()
		return fmt.Errorf("%w: %s", ErrAlreadyMounted, f.ID)
	}
	r.mu.Unlock()

	if err := host.Mount(ctx, f); err != nil {
		return fmt.Errorf("overlay: mount %s: %w", f.ID, err)
	}

	r.mu.Lock()
	r.state[f.ID] = Rendered
	r.hosts[f.ID] = host
	r.mu.Unlock()
	r.logger.Debug("overlay: rendered", "id", f.ID)
	return nil
}

// Close removes a rendered overlay from its page. It returns false when the
// overlay is unknown or already removed; other overlays are left in place.
func (r *Registry) Close(ctx context.Context, id string) (bool, error) {
	r.mu.Lock()
	host, ok := r.hosts[id]
	if !ok || r.state[id] != Rendered {
		r.mu.Unlock()
		return false, nil
	}
	r.mu.Unlock()

	removed, err := host.Unmount(ctx, id)
	if err != nil {
		return false, fmt.Errorf("overlay: unmount %s: %w", id, err)
	}
	r.MarkRemoved(id, host)
	return removed, nil
}

// MarkRemoved records that an overlay left its page, for example because the
// user pressed its close button. Only the host the overlay was mounted on
// can report it; reports from any other host are ignored and return false.
func (r *Registry) MarkRemoved(id string, from Host) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.state[id] != Rendered {
		return false
	}
	if r.hosts[id] != from {
		r.logger.Warn("overlay: close from foreign host ignored", "id", id)
		return false
	}
	r.state[id] = Removed
	delete(r.hosts, id)
	r.logger.Debug("overlay: removed", "id", id)
	return true
}

// State returns the lifecycle state of id.
func (r *Registry) State(id string) State {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.state[id]
}

// Live returns the number of rendered overlays.
func (r *Registry) Live() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.hosts)
}
