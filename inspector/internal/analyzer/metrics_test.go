package analyzer

import (
	"testing"

	"github.com/hazyhaar/inspector/inspector/snapshot"
)

// withMain builds a page whose container is main#m and returns the builder
// and the main handle.
func withMain(r snapshot.Rect) (*snapshot.Builder, int) {
	b := snapshot.NewBuilder(vw, vh)
	m := b.Add(b.Body(), node("main", "m", r))
	return b, m
}

func scopeOf(doc snapshot.Document) []snapshot.Element {
	c, _ := DetectContainer(doc)
	return doc.Descendants(c)
}

func TestStackedSpacing_HeadingToSubheading(t *testing.T) {
	b, m := withMain(snapshot.At(100, 0, 800, 1000))
	b.Add(m, node("h2", "above", snapshot.At(100, 0, 800, 20)))
	b.Add(m, node("h1", "", snapshot.At(100, 50, 800, 50))) // bottom 100
	b.Add(m, node("h2", "flat", snapshot.At(100, 120, 800, 0)))
	b.Add(m, node("h2", "below", snapshot.At(100, 150, 800, 30)))
	doc := b.Page()

	got := spacing(scopeOf(doc))
	if deref(got.HeadingToSubheading) != "50px" {
		t.Errorf("headingToSubheading: got %s, want 50px", deref(got.HeadingToSubheading))
	}
	if got.HeadingToBody != nil || got.SubheadingToBody != nil {
		t.Errorf("pairs without a <p>: got %s / %s", deref(got.HeadingToBody), deref(got.SubheadingToBody))
	}
}

func TestStackedSpacing_RoundsLikeJS(t *testing.T) {
	b, m := withMain(snapshot.At(100, 0, 800, 1000))
	b.Add(m, node("h1", "", snapshot.At(100, 50, 800, 50)))
	b.Add(m, node("p", "", snapshot.At(100, 150.5, 800, 20)))
	doc := b.Page()

	got := stackedSpacing(scopeOf(doc), "h1", "p")
	if deref(got) != "51px" {
		t.Errorf("got %s, want 51px", deref(got))
	}
}

func TestStackedSpacing_NoStackedPair(t *testing.T) {
	b, m := withMain(snapshot.At(100, 0, 800, 1000))
	b.Add(m, node("h2", "", snapshot.At(100, 0, 800, 20)))
	b.Add(m, node("h1", "", snapshot.At(100, 50, 800, 50)))
	doc := b.Page()

	if got := stackedSpacing(scopeOf(doc), "h1", "h2"); got != nil {
		t.Errorf("got %s, want nil", *got)
	}
}

func TestStackedSpacing_OutsideContainerIgnored(t *testing.T) {
	b, m := withMain(snapshot.At(100, 200, 800, 600))
	b.Add(b.Body(), node("h1", "", snapshot.At(0, 0, 800, 50)))
	b.Add(m, node("h2", "", snapshot.At(100, 300, 800, 20)))
	doc := b.Page()

	if got := stackedSpacing(scopeOf(doc), "h1", "h2"); got != nil {
		t.Errorf("got %s, want nil", *got)
	}
}

func TestSectionSpacings_SkipsOverlap(t *testing.T) {
	b := snapshot.NewBuilder(vw, vh)
	b.Add(b.Body(), node("section", "", snapshot.At(0, 0, vw, 100)))   // bottom 100
	b.Add(b.Body(), node("section", "", snapshot.At(0, 120, vw, 100))) // gap 20, bottom 220
	b.Add(b.Body(), node("section", "", snapshot.At(0, 215, vw, 100))) // gap -5
	got := sectionSpacings(b.Page())

	if len(got) != 1 {
		t.Fatalf("got %d spacings, want 1: %+v", len(got), got)
	}
	if got[0].Between != "Section 1 & Section 2" || got[0].Spacing != "20px" {
		t.Errorf("got %+v", got[0])
	}
}

func TestSectionSpacings_OrdinalsAfterOverlap(t *testing.T) {
	b := snapshot.NewBuilder(vw, vh)
	b.Add(b.Body(), node("section", "", snapshot.At(0, 0, vw, 100)))
	b.Add(b.Body(), node("section", "", snapshot.At(0, 90, vw, 100)))  // overlaps, bottom 190
	b.Add(b.Body(), styled("section", "", snapshot.At(0, 200, vw, 50), snapshot.Style{Display: "none"}))
	b.Add(b.Body(), node("section", "", snapshot.At(0, 190, vw, 100))) // gap 0
	got := sectionSpacings(b.Page())

	if len(got) != 1 || got[0].Between != "Section 2 & Section 3" || got[0].Spacing != "0px" {
		t.Errorf("got %+v, want Section 2 & Section 3: 0px", got)
	}
}

func TestBoxMetrics_DistancesClampedAndRounded(t *testing.T) {
	b := snapshot.NewBuilder(vw, vh)
	b.Add(b.Body(), styled("main", "m", snapshot.At(-20, 50.4, 1000, 500), snapshot.Style{
		MarginLeft:  "auto",
		PaddingTop:  "24px",
		MarginRight: "auto",
	}))
	doc := b.Page()
	c, _ := DetectContainer(doc)
	got := boxMetrics(doc, c)

	d := got.DistanceFromViewport
	if d.Left != "0px" || d.Right != "300px" || d.Top != "50px" || d.Bottom != "250px" {
		t.Errorf("distance: got %+v", d)
	}
	if got.MarginLeft != "auto" || got.PaddingTop != "24px" || got.PaddingLeft != "0px" {
		t.Errorf("box: got %+v", got)
	}
}

func TestFonts_ScopedToContainer(t *testing.T) {
	b, m := withMain(snapshot.At(100, 100, 800, 600))
	b.Add(b.Body(), styled("h1", "", snapshot.At(0, 0, 500, 40), snapshot.Style{FontFamily: "Outer"}))
	b.Add(m, styled("h1", "", snapshot.At(100, 100, 500, 40), snapshot.Style{
		FontFamily:    "Inter, sans-serif",
		FontSize:      "32px",
		LetterSpacing: "-0.5px",
		LineHeight:    "40px",
	}))
	b.Add(m, styled("p", "", snapshot.At(100, 200, 500, 40), snapshot.Style{FontSize: "16px"}))
	doc := b.Page()

	got := fonts(scopeOf(doc))
	if len(got) != 2 {
		t.Fatalf("got %d fonts, want 2 (h1, p): %+v", len(got), got)
	}
	if got[0].Selector != "h1" || got[0].FontFamily != "Inter, sans-serif" || got[0].LetterSpacing != "-0.5px" {
		t.Errorf("h1: got %+v", got[0])
	}
	if got[1].Selector != "p" || got[1].FontSize != "16px" {
		t.Errorf("p: got %+v", got[1])
	}
}

func TestVisualGutter_PicksLargestInFlowBlock(t *testing.T) {
	b := snapshot.NewBuilder(vw, vh)
	b.Add(b.Body(), node("header", "", snapshot.At(0, 0, vw, 200)))
	b.Add(b.Body(), styled("div", "", snapshot.At(40, 0, 1200, 3000), snapshot.Style{Position: "fixed"}))
	b.Add(b.Body(), styled("div", "", snapshot.At(40, 0, 1200, 3000), snapshot.Style{Visibility: "hidden"}))
	b.Add(b.Body(), node("div", "", snapshot.At(160, 200, 960, 600)))
	b.Add(b.Body(), node("div", "", snapshot.At(200, 900, 400, 400)))

	got := visualGutter(b.Page())
	if deref(got.Left) != "160px" || deref(got.Right) != "160px" {
		t.Errorf("gutter: got %s / %s, want 160px / 160px", deref(got.Left), deref(got.Right))
	}
}

func TestVisualGutter_NoCandidate(t *testing.T) {
	b := snapshot.NewBuilder(vw, vh)
	b.Add(b.Body(), node("div", "", snapshot.At(-10, 0, 800, 800)))
	b.Add(b.Body(), styled("div", "", snapshot.At(10, 0, 800, 800), snapshot.Style{Position: "absolute"}))

	got := visualGutter(b.Page())
	if got.Left != nil || got.Right != nil {
		t.Errorf("gutter: got %s / %s, want nil", deref(got.Left), deref(got.Right))
	}
}
