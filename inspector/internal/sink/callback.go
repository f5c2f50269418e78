package sink

import "context"

// ResultFunc is called for each result.
type ResultFunc func(ctx context.Context, r Result) error

// Callback delivers results via a Go function call, for embedders running
// the inspector in-process.
type Callback struct {
	fn ResultFunc
}

// NewCallback creates a Callback sink. fn may be nil.
func NewCallback(fn ResultFunc) *Callback {
	return &Callback{fn: fn}
}

func (c *Callback) Send(ctx context.Context, r Result) error {
	if c.fn != nil {
		return c.fn(ctx, r)
	}
	return nil
}

func (c *Callback) Close() error { return nil }
