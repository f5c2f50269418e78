package analyzer

import (
	"reflect"
	"testing"

	"github.com/hazyhaar/inspector/inspector/report"
	"github.com/hazyhaar/inspector/inspector/snapshot"
)

func articlePage() *snapshot.Page {
	b := snapshot.NewBuilder(vw, vh)
	b.Add(b.Body(), node("header", "", snapshot.At(0, 0, vw, 80)))
	m := b.Add(b.Body(), styled("main", "content", snapshot.At(140, 80, 1000, 1400), snapshot.Style{PaddingLeft: "32px"}))
	s1 := b.Add(m, node("section", "", snapshot.At(140, 80, 1000, 400)))
	b.Add(s1, styled("h1", "", snapshot.At(172, 100, 900, 48), snapshot.Style{FontSize: "40px", Color: "rgb(17, 24, 39)"}))
	b.Add(s1, styled("h2", "", snapshot.At(172, 172, 900, 32), snapshot.Style{FontSize: "24px", Color: "rgb(17, 24, 39)"}))
	b.Add(s1, styled("p", "", snapshot.At(172, 220, 900, 120), snapshot.Style{Color: "rgb(55, 65, 81)"}))
	b.Add(m, styled("section", "", snapshot.At(140, 520, 1000, 400), snapshot.Style{BackgroundColor: "rgb(243, 244, 246)"}))
	return b.Page()
}

func TestAnalyze_Article(t *testing.T) {
	got := Analyze(articlePage(), Options{})

	if got.Container.Tier != report.TierSemantic || got.Container.Descriptor != "main#content" {
		t.Errorf("container: got %+v", got.Container)
	}
	if len(got.Fonts) != 3 {
		t.Errorf("fonts: got %d, want 3", len(got.Fonts))
	}
	if deref(got.Spacing.HeadingToSubheading) != "24px" ||
		deref(got.Spacing.SubheadingToBody) != "16px" ||
		deref(got.Spacing.HeadingToBody) != "72px" {
		t.Errorf("spacing: got %s %s %s",
			deref(got.Spacing.HeadingToSubheading),
			deref(got.Spacing.SubheadingToBody),
			deref(got.Spacing.HeadingToBody))
	}
	if len(got.SectionSpacings) != 1 || got.SectionSpacings[0].Spacing != "40px" {
		t.Errorf("sections: got %+v", got.SectionSpacings)
	}
	if got.PaddingMargin.PaddingLeft != "32px" || got.PaddingMargin.DistanceFromViewport.Left != "140px" {
		t.Errorf("box: got %+v", got.PaddingMargin)
	}
	if deref(got.VisualGutter.Left) != "140px" || deref(got.VisualGutter.Right) != "140px" {
		t.Errorf("gutter: got %s / %s", deref(got.VisualGutter.Left), deref(got.VisualGutter.Right))
	}
	wantColors := []string{"#111827", "#374151", "#f3f4f6"}
	if !reflect.DeepEqual(got.Colors.Display, wantColors) {
		t.Errorf("colors: got %v, want %v", got.Colors.Display, wantColors)
	}
}

func TestAnalyze_Idempotent(t *testing.T) {
	doc := articlePage()
	a := Analyze(doc, Options{})
	b := Analyze(doc, Options{})
	if !reflect.DeepEqual(a, b) {
		t.Errorf("two runs differ:\n%+v\n%+v", a, b)
	}
}

func TestAnalyze_EmptyBody(t *testing.T) {
	got := Analyze(snapshot.NewBuilder(vw, vh).Page(), Options{})
	if got.Container.Tier != report.TierBody {
		t.Errorf("tier: got %q", got.Container.Tier)
	}
	if len(got.Fonts) != 0 || len(got.Colors.Display) != 0 || got.VisualGutter.Left != nil {
		t.Errorf("expected empty bundle, got %+v", got)
	}
}
