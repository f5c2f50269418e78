package overlay

import (
	"bytes"
	"fmt"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"

	"github.com/hazyhaar/inspector/inspector/report"
)

const (
	styleHeader     = "display:flex;justify-content:space-between;align-items:center;margin-bottom:12px;"
	styleTitle      = "font-weight:600;font-size:16px;letter-spacing:-0.01em;"
	styleClose      = "background:rgba(36,36,38,0.7);color:#fff;border:none;padding:2px 10px;cursor:pointer;border-radius:8px;font-size:14px;transition:background 0.15s;outline:none;"
	styleSection    = "margin-bottom:14px;"
	styleLastBlock  = "margin-bottom:0;"
	styleHeading    = "color:#a1a1aa;font-weight:500;"
	styleRow        = "margin-bottom:2px;"
	styleKey        = "color:#a1a1aa;"
	styleValue      = "color:#fff;"
	styleSwatchText = "vertical-align:middle;"
	styleSwatchFmt  = "display:inline-block;width:18px;height:18px;border-radius:6px;background:%s;margin-right:8px;border:1px solid #333;vertical-align:middle;"
)

// Title heads every overlay.
const Title = "Design Inspector"

func elem(a atom.Atom, style string, children ...*html.Node) *html.Node {
	n := &html.Node{Type: html.ElementNode, DataAtom: a, Data: a.String()}
	if style != "" {
		n.Attr = append(n.Attr, html.Attribute{Key: "style", Val: style})
	}
	for _, c := range children {
		n.AppendChild(c)
	}
	return n
}

func text(s string) *html.Node {
	return &html.Node{Type: html.TextNode, Data: s}
}

func br() *html.Node { return elem(atom.Br, "") }

func withAttr(n *html.Node, key, val string) *html.Node {
	n.Attr = append(n.Attr, html.Attribute{Key: key, Val: val})
	return n
}

// header is the title bar with the close control.
func header() *html.Node {
	closeBtn := withAttr(elem(atom.Button, styleClose, text("✕")), closeAttr, "")
	return elem(atom.Div, styleHeader,
		elem(atom.Span, styleTitle, text(Title)),
		closeBtn,
	)
}

// section is a headed block; body nodes follow a line break.
func section(heading, style string, body ...*html.Node) *html.Node {
	n := elem(atom.Div, style,
		elem(atom.Span, styleHeading, text(heading+":")),
		br(),
	)
	for _, b := range body {
		n.AppendChild(b)
	}
	return withAttr(n, sectionAttr, heading)
}

// pretty renders a display value: mappings as key/value rows, lists as
// line-separated items, scalars as spans.
func pretty(v any) []*html.Node {
	switch t := v.(type) {
	case report.Fields:
		var out []*html.Node
		for _, f := range t {
			val := elem(atom.Span, styleValue, pretty(f.Value)...)
			out = append(out, elem(atom.Div, styleRow,
				elem(atom.Span, styleKey, text(f.Key+":")),
				text(" "),
				val,
			))
		}
		return out
	case []any:
		var out []*html.Node
		for i, e := range t {
			if i > 0 {
				out = append(out, br())
			}
			out = append(out, pretty(e)...)
		}
		return out
	case *string:
		if t == nil {
			return []*html.Node{elem(atom.Span, styleValue, text("null"))}
		}
		return pretty(*t)
	default:
		return []*html.Node{elem(atom.Span, styleValue, text(fmt.Sprint(t)))}
	}
}

// swatches renders one colored square and label per valid hex color.
func swatches(colors []any) []*html.Node {
	var out []*html.Node
	for _, c := range colors {
		hex, ok := c.(string)
		if !ok || !hexRe.MatchString(hex) {
			continue
		}
		if len(out) > 0 {
			out = append(out, br())
		}
		sw := withAttr(elem(atom.Span, fmt.Sprintf(styleSwatchFmt, hex)), swatchAttr, hex)
		out = append(out, sw, elem(atom.Span, styleSwatchText, text(hex)))
	}
	return out
}

func render(nodes []*html.Node) (string, error) {
	var buf bytes.Buffer
	for _, n := range nodes {
		if err := html.Render(&buf, n); err != nil {
			return "", fmt.Errorf("overlay: render: %w", err)
		}
	}
	return buf.String(), nil
}
