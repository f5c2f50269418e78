package analyzer

import (
	"strings"

	"github.com/hazyhaar/inspector/inspector/report"
	"github.com/hazyhaar/inspector/inspector/snapshot"
)

// semanticSelectors are tried in order before the geometric scan.
var semanticSelectors = []string{"main", "[role=main]", ".container", "#main", ".content", "#content"}

const (
	minContainerWidth  = 300
	minContainerHeight = 100
	minMeasured        = 10
)

// DetectContainer picks the main content element. The first rendered
// semantic match wins; otherwise the largest inset, not full-bleed element
// below the body; otherwise the body itself. Equal areas keep the earlier
// element.
func DetectContainer(doc snapshot.Document) (snapshot.Element, report.Container) {
	all := doc.All()
	for _, sel := range semanticSelectors {
		el := querySelector(all, sel)
		if el != nil && rendered(el) {
			return el, report.Container{Tier: report.TierSemantic, Selector: sel, Descriptor: describe(el)}
		}
	}

	vw := doc.Viewport().Width
	var best snapshot.Element
	maxArea := 0.0
	body := doc.Body()
	if body != nil {
		for _, el := range doc.Descendants(body) {
			r := el.Rect()
			area := r.Area()
			if area > maxArea &&
				r.Width < vw &&
				r.Left > 0 &&
				r.Right < vw &&
				el.OffsetWidth() > minContainerWidth &&
				el.OffsetHeight() > minContainerHeight &&
				el.Style().Display != "none" {
				maxArea = area
				best = el
			}
		}
	}
	if best != nil {
		return best, report.Container{Tier: report.TierHeuristic, Descriptor: describe(best)}
	}
	if body == nil {
		return nil, report.Container{Tier: report.TierBody, Descriptor: "body"}
	}
	return body, report.Container{Tier: report.TierBody, Descriptor: describe(body)}
}

// describe renders tag#id.class1.class2.
func describe(el snapshot.Element) string {
	var b strings.Builder
	b.WriteString(el.Tag())
	if id := el.ID(); id != "" {
		b.WriteByte('#')
		b.WriteString(id)
	}
	for _, c := range el.Classes() {
		b.WriteByte('.')
		b.WriteString(c)
	}
	return b.String()
}
