package inspector

import (
	"fmt"
	"io"
	"os"

	"github.com/hazyhaar/inspector/inspector/internal/sink"
)

// Sink is the output interface for inspector results.
type Sink = sink.Sink

// Result is one completed run.
type Result = sink.Result

// ResultFunc is called for each result.
type ResultFunc = sink.ResultFunc

// NewStdoutSink creates a JSON-lines sink.
func NewStdoutSink(w io.Writer) Sink {
	return sink.NewStdout(w)
}

// NewMarkdownSink creates a sink writing one Markdown document per result.
func NewMarkdownSink(w io.Writer) Sink {
	return sink.NewMarkdown(w)
}

// NewCallbackSink creates an in-process sink.
func NewCallbackSink(fn ResultFunc) Sink {
	return sink.NewCallback(fn)
}

// SinksFromConfig builds the configured sinks. File sinks are opened for
// append; closers must be closed by the caller.
func SinksFromConfig(cfgs []SinkConfig, stdout io.Writer) ([]Sink, []io.Closer, error) {
	var sinks []Sink
	var closers []io.Closer
	for _, c := range cfgs {
		w := stdout
		if c.Path != "" {
			f, err := os.OpenFile(c.Path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
			if err != nil {
				for _, cl := range closers {
					cl.Close()
				}
				return nil, nil, fmt.Errorf("inspector: sink %s: %w", c.Path, err)
			}
			closers = append(closers, f)
			w = f
		}
		switch c.Type {
		case "markdown":
			sinks = append(sinks, NewMarkdownSink(w))
		default:
			sinks = append(sinks, NewStdoutSink(w))
		}
	}
	return sinks, closers, nil
}
