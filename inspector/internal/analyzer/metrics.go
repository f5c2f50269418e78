package analyzer

import (
	"fmt"

	"github.com/hazyhaar/inspector/inspector/report"
	"github.com/hazyhaar/inspector/inspector/snapshot"
)

const gutterMaxWidthRatio = 0.95

// boxMetrics reads the container's margins and paddings and its distance
// from each viewport edge.
func boxMetrics(doc snapshot.Document, c snapshot.Element) report.BoxMetrics {
	st := c.Style()
	r := c.Rect()
	vp := doc.Viewport()
	return report.BoxMetrics{
		MarginLeft:    st.MarginLeft,
		MarginRight:   st.MarginRight,
		MarginTop:     st.MarginTop,
		MarginBottom:  st.MarginBottom,
		PaddingLeft:   st.PaddingLeft,
		PaddingRight:  st.PaddingRight,
		PaddingTop:    st.PaddingTop,
		PaddingBottom: st.PaddingBottom,
		DistanceFromViewport: report.Distance{
			Left:   clampPx(r.Left),
			Right:  clampPx(vp.Width - r.Right),
			Top:    clampPx(r.Top),
			Bottom: clampPx(vp.Height - r.Bottom),
		},
	}
}

// stackedSpacing is the gap between the first tag1 and the first tag2 whose
// top is strictly below it. Only elements with a positive height count.
func stackedSpacing(scope []snapshot.Element, tag1, tag2 string) *string {
	first := tallOnly(querySelectorAll(scope, tag1))
	second := tallOnly(querySelectorAll(scope, tag2))
	if len(first) == 0 || len(second) == 0 {
		return nil
	}
	r1 := first[0].Rect()
	for _, el := range second {
		if top := el.Rect().Top; top > r1.Bottom {
			return ptr(px(top - r1.Bottom))
		}
	}
	return nil
}

func tallOnly(els []snapshot.Element) []snapshot.Element {
	var out []snapshot.Element
	for _, el := range els {
		if el.OffsetHeight() > 0 {
			out = append(out, el)
		}
	}
	return out
}

func spacing(scope []snapshot.Element) report.Spacing {
	return report.Spacing{
		HeadingToSubheading: stackedSpacing(scope, "h1", "h2"),
		SubheadingToBody:    stackedSpacing(scope, "h2", "p"),
		HeadingToBody:       stackedSpacing(scope, "h1", "p"),
	}
}

var fontSelectors = []string{"h1", "h2", "p"}

// fonts reports typography for the first match of each font selector
// inside the container; missing selectors are left out.
func fonts(scope []snapshot.Element) []report.Font {
	var out []report.Font
	for _, sel := range fontSelectors {
		el := querySelector(scope, sel)
		if el == nil {
			continue
		}
		st := el.Style()
		out = append(out, report.Font{
			Selector:      sel,
			FontFamily:    st.FontFamily,
			FontSize:      st.FontSize,
			LetterSpacing: st.LetterSpacing,
			LineHeight:    st.LineHeight,
		})
	}
	return out
}

// visualGutter scans the whole body, independent of the container, for the
// largest in-flow block narrower than 95% of the viewport.
func visualGutter(doc snapshot.Document) report.Gutter {
	body := doc.Body()
	if body == nil {
		return report.Gutter{}
	}
	vw := doc.Viewport().Width

	var best *snapshot.Rect
	maxArea := 0.0
	for _, el := range doc.Descendants(body) {
		st := el.Style()
		r := el.Rect()
		if el.OffsetWidth() <= minContainerWidth ||
			el.OffsetHeight() <= minContainerHeight ||
			r.Width >= vw*gutterMaxWidthRatio ||
			r.Left < 0 ||
			r.Right > vw ||
			st.Display == "none" ||
			st.Visibility == "hidden" ||
			st.Position == "fixed" ||
			st.Position == "absolute" {
			continue
		}
		if area := r.Area(); area > maxArea {
			maxArea = area
			best = &r
		}
	}
	if best == nil {
		return report.Gutter{}
	}
	return report.Gutter{
		Left:  ptr(clampPx(best.Left)),
		Right: ptr(clampPx(vw - best.Right)),
	}
}

// sectionSpacings measures consecutive visible <section> elements across
// the whole document. Overlapping pairs are skipped but keep their ordinal.
func sectionSpacings(doc snapshot.Document) []report.SectionSpacing {
	var sections []snapshot.Element
	for _, el := range querySelectorAll(doc.All(), "section") {
		if displayed(el) {
			sections = append(sections, el)
		}
	}

	var out []report.SectionSpacing
	for i := 0; i+1 < len(sections); i++ {
		gap := round(sections[i+1].Rect().Top - sections[i].Rect().Bottom)
		if gap < 0 {
			continue
		}
		out = append(out, report.SectionSpacing{
			Between: fmt.Sprintf("Section %d & Section %d", i+1, i+2),
			Spacing: px(gap),
		})
	}
	return out
}
