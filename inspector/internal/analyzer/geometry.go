package analyzer

import (
	"math"
	"strconv"

	"github.com/hazyhaar/inspector/inspector/snapshot"
)

// round matches JavaScript's Math.round: halves go towards +Inf.
func round(x float64) float64 {
	return math.Floor(x + 0.5)
}

// px formats a rounded pixel value, e.g. "50px".
func px(x float64) string {
	return strconv.FormatFloat(round(x), 'f', -1, 64) + "px"
}

// clampPx rounds, clamps at zero and formats.
func clampPx(x float64) string {
	return px(math.Max(0, round(x)))
}

func ptr(s string) *string { return &s }

// rendered reports a non-zero layout box.
func rendered(el snapshot.Element) bool {
	return el.OffsetWidth() > 0 && el.OffsetHeight() > 0
}

// displayed is rendered and not display:none.
func displayed(el snapshot.Element) bool {
	return rendered(el) && el.Style().Display != "none"
}

// measured is the strict visibility filter: displayed, not hidden, not
// transparent, and at least minMeasured in both dimensions.
func measured(el snapshot.Element) bool {
	st := el.Style()
	r := el.Rect()
	return displayed(el) &&
		st.Visibility != "hidden" &&
		st.Opacity != "0" &&
		r.Width > minMeasured && r.Height > minMeasured
}
