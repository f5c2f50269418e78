package sink

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"os"
	"strings"
	"sync"

	"github.com/JohannesKaufmann/html-to-markdown/v2/converter"
	"github.com/JohannesKaufmann/html-to-markdown/v2/plugin/base"
	"github.com/JohannesKaufmann/html-to-markdown/v2/plugin/commonmark"
	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"

	"github.com/hazyhaar/inspector/inspector/report"
)

// Markdown writes each result as a Markdown document: one heading per
// display section, nested lists for mappings.
type Markdown struct {
	mu   sync.Mutex
	w    io.Writer
	conv *converter.Converter
	n    int
}

// NewMarkdown creates a Markdown sink. If w is nil, os.Stdout is used.
func NewMarkdown(w io.Writer) *Markdown {
	if w == nil {
		w = os.Stdout
	}
	return &Markdown{
		w: w,
		conv: converter.NewConverter(
			converter.WithPlugins(
				base.NewBasePlugin(),
				commonmark.NewCommonmarkPlugin(),
			),
		),
	}
}

func (m *Markdown) Send(_ context.Context, r Result) error {
	doc, err := m.Render(r)
	if err != nil {
		return err
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	if m.n > 0 {
		doc = "\n---\n\n" + doc
	}
	m.n++
	_, err = io.WriteString(m.w, doc)
	return err
}

func (m *Markdown) Close() error { return nil }

// Render converts one result to Markdown.
func (m *Markdown) Render(r Result) (string, error) {
	var buf bytes.Buffer
	for _, n := range resultHTML(r) {
		if err := html.Render(&buf, n); err != nil {
			return "", fmt.Errorf("sink: markdown: %w", err)
		}
	}
	md, err := m.conv.ConvertString(buf.String())
	if err != nil {
		return "", fmt.Errorf("sink: markdown: %w", err)
	}
	return strings.TrimSpace(md) + "\n", nil
}

func el(a atom.Atom, children ...*html.Node) *html.Node {
	n := &html.Node{Type: html.ElementNode, DataAtom: a, Data: a.String()}
	for _, c := range children {
		n.AppendChild(c)
	}
	return n
}

func txt(s string) *html.Node { return &html.Node{Type: html.TextNode, Data: s} }

func resultHTML(r Result) []*html.Node {
	title := "Design Inspector"
	if r.Title != "" {
		title += ": " + r.Title
	}
	nodes := []*html.Node{el(atom.H1, txt(title))}
	if r.URL != "" {
		nodes = append(nodes, el(atom.P, el(atom.Code, txt(r.URL))))
	}
	if c := r.Bundle.Container; c.Descriptor != "" {
		nodes = append(nodes, el(atom.P, txt(fmt.Sprintf("Container: %s (%s)", c.Descriptor, c.Tier))))
	}
	for _, f := range r.Bundle.Display() {
		nodes = append(nodes, el(atom.H2, txt(f.Key)))
		if n := valueHTML(f.Value); n != nil {
			nodes = append(nodes, n)
		}
	}
	return nodes
}

// valueHTML renders mappings and lists as nested <ul>; scalars as <p>.
func valueHTML(v any) *html.Node {
	switch t := v.(type) {
	case report.Fields:
		ul := el(atom.Ul)
		for _, f := range t {
			li := el(atom.Li)
			switch f.Value.(type) {
			case report.Fields, []any:
				li.AppendChild(txt(f.Key + ":"))
				if sub := valueHTML(f.Value); sub != nil {
					li.AppendChild(sub)
				}
			default:
				li.AppendChild(el(atom.Strong, txt(f.Key+":")))
				li.AppendChild(txt(" " + scalar(f.Value)))
			}
			ul.AppendChild(li)
		}
		return ul
	case []any:
		if len(t) == 0 {
			return nil
		}
		ul := el(atom.Ul)
		for _, e := range t {
			li := el(atom.Li)
			if sub, ok := e.(report.Fields); ok {
				li.AppendChild(valueHTML(sub))
			} else {
				li.AppendChild(txt(scalar(e)))
			}
			ul.AppendChild(li)
		}
		return ul
	default:
		return el(atom.P, txt(scalar(v)))
	}
}

func scalar(v any) string {
	if p, ok := v.(*string); ok {
		if p == nil {
			return "null"
		}
		return *p
	}
	return fmt.Sprint(v)
}
