// Package overlay renders a report bundle into the floating result panel and
// tracks panels mounted into pages.
package overlay

import (
	_ "embed"
	"strings"

	"golang.org/x/net/html"

	"github.com/hazyhaar/inspector/inspector/report"
)

// DefaultFontHref is the best-effort webfont stylesheet appended with each
// overlay.
const DefaultFontHref = "https://fonts.cdnfonts.com/css/sf-pro-display"

// MountJS creates the container, appends the font link, wires the close
// button and appends the container to the body. It is called with one
// Fragment argument and returns the overlay ID.
//
//go:embed mount.js
var MountJS string

// UnmountJS removes one overlay by ID and reports whether it existed.
const UnmountJS = `(id) => {
	const el = document.getElementById(id);
	if (!el) return false;
	el.remove();
	return true;
}`

// containerStyle is applied to the fixed top-right panel.
var containerStyle = strings.Join([]string{
	"position:fixed",
	"top:32px",
	"right:32px",
	"z-index:999999",
	"background:rgba(22,22,24,0.96)",
	"border:1px solid #222",
	"border-radius:18px",
	"box-shadow:0 8px 32px rgba(0,0,0,0.18)",
	"padding:24px 28px",
	"max-width:360px",
	"font-family:'SF Pro Text', 'San Francisco', -apple-system, BlinkMacSystemFont, 'Segoe UI', Roboto, Arial, sans-serif",
	"font-size:14px",
	"color:#f5f5f7",
	"overflow-y:auto",
	"max-height:80vh",
	"backdrop-filter:blur(16px)",
	"transition:box-shadow 0.2s cubic-bezier(.4,0,.2,1)",
}, ";") + ";"

// Fragment is everything the mount script needs.
type Fragment struct {
	ID       string `json:"id"`
	HTML     string `json:"html"`
	Style    string `json:"style"`
	FontHref string `json:"fontHref"`
	RootAttr string `json:"rootAttr"`
	CloseSel string `json:"closeSelector"`
}

// Build renders the bundle's display tree into sanitized inner markup.
func Build(b report.Bundle, id, fontHref string) (Fragment, error) {
	if fontHref == "" {
		fontHref = DefaultFontHref
	}

	nodes := []*html.Node{header()}
	for _, f := range b.Display() {
		var body []*html.Node
		if f.Key == report.SectionColors {
			list, _ := f.Value.([]any)
			if body = swatches(list); len(body) == 0 {
				continue
			}
		} else {
			body = pretty(f.Value)
		}
		nodes = append(nodes, section(f.Key, styleSection, body...))
	}
	if last := nodes[len(nodes)-1]; len(nodes) > 1 {
		last.Attr[0].Val = styleLastBlock
	}

	raw, err := render(nodes)
	if err != nil {
		return Fragment{}, err
	}
	return Fragment{
		ID:       id,
		HTML:     policy().Sanitize(raw),
		Style:    containerStyle,
		FontHref: fontHref,
		RootAttr: rootAttr,
		CloseSel: "[" + closeAttr + "]",
	}, nil
}
