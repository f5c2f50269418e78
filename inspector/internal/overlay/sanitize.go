package overlay

import (
	"regexp"

	"github.com/microcosm-cc/bluemonday"
)

const (
	closeAttr   = "data-inspector-close"
	sectionAttr = "data-section"
	swatchAttr  = "data-swatch"
	// rootAttr marks mounted overlays; the collector skips these subtrees.
	rootAttr = "data-design-inspector"
)

var (
	hexRe   = regexp.MustCompile(`^#[0-9a-fA-F]{3,8}$`)
	styleRe = regexp.MustCompile(`^[a-zA-Z0-9 :;#%.,()\-]*$`)
)

// policy admits exactly the markup the overlay builder emits. Page-derived
// text ends up in text nodes; anything else is stripped.
func policy() *bluemonday.Policy {
	p := bluemonday.NewPolicy()
	p.AllowElements("div", "span", "br", "button")
	p.AllowAttrs("style").Matching(styleRe).OnElements("div", "span", "button")
	p.AllowAttrs(sectionAttr).OnElements("div")
	p.AllowAttrs(swatchAttr).Matching(hexRe).OnElements("span")
	p.AllowAttrs(closeAttr).OnElements("button")
	return p
}
