// Package sink defines output backends for inspector results.
package sink

import (
	"context"
	"time"

	"github.com/hazyhaar/inspector/inspector/report"
)

// Result is one completed run.
type Result struct {
	RunID     string        `json:"run_id"`
	TabID     string        `json:"tab_id"`
	URL       string        `json:"url"`
	Title     string        `json:"title,omitempty"`
	OverlayID string        `json:"overlay_id,omitempty"`
	At        time.Time     `json:"at"`
	Bundle    report.Bundle `json:"bundle"`
}

// Sink is the output interface. Implementations deliver results to
// different backends (stdout, markdown, in-process callback).
type Sink interface {
	Send(ctx context.Context, r Result) error
	Close() error
}
