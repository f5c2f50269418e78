package sink

import (
	"bufio"
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"github.com/hazyhaar/inspector/inspector/report"
)

func sp(s string) *string { return &s }

func sample() Result {
	return Result{
		RunID: "run-1",
		TabID: "tab-1",
		URL:   "https://example.com/post",
		Title: "A Post",
		Bundle: report.Bundle{
			Container:    report.Container{Tier: report.TierSemantic, Selector: "main", Descriptor: "main#content"},
			Fonts:        []report.Font{{Selector: "h1", FontFamily: "Inter", FontSize: "40px", LetterSpacing: "normal", LineHeight: "48px"}},
			VisualGutter: report.Gutter{Left: sp("140px"), Right: sp("140px")},
			Spacing:      report.Spacing{HeadingToBody: sp("72px")},
			Colors:       report.Colors{Display: []string{"#111827", "#f3f4f6"}},
		},
	}
}

func TestStdoutJSONLines(t *testing.T) {
	var buf bytes.Buffer
	s := NewStdout(&buf)
	ctx := context.Background()
	if err := s.Send(ctx, sample()); err != nil {
		t.Fatalf("send: %v", err)
	}
	if err := s.Send(ctx, sample()); err != nil {
		t.Fatalf("send: %v", err)
	}

	sc := bufio.NewScanner(&buf)
	lines := 0
	for sc.Scan() {
		lines++
		var env struct {
			Type string `json:"type"`
			Data Result `json:"data"`
		}
		if err := json.Unmarshal(sc.Bytes(), &env); err != nil {
			t.Fatalf("line %d: %v", lines, err)
		}
		if env.Type != "result" || env.Data.RunID != "run-1" {
			t.Errorf("line %d: got %+v", lines, env)
		}
		if env.Data.Bundle.Spacing.HeadingToBody == nil || *env.Data.Bundle.Spacing.HeadingToBody != "72px" {
			t.Errorf("line %d: spacing lost", lines)
		}
	}
	if lines != 2 {
		t.Errorf("lines: got %d, want 2", lines)
	}
}

func TestBundleJSONKeys(t *testing.T) {
	data, err := json.Marshal(sample().Bundle)
	if err != nil {
		t.Fatal(err)
	}
	for _, key := range []string{`"pagePaddingAndMargin"`, `"visualGutter"`, `"sectionSpacings"`, `"subheadingToBody":null`} {
		if !bytes.Contains(data, []byte(key)) {
			t.Errorf("bundle JSON missing %s: %s", key, data)
		}
	}
}

func TestMarkdown(t *testing.T) {
	var buf bytes.Buffer
	m := NewMarkdown(&buf)
	if err := m.Send(context.Background(), sample()); err != nil {
		t.Fatalf("send: %v", err)
	}
	out := buf.String()
	for _, want := range []string{
		"# Design Inspector: A Post",
		"## Fonts",
		"fontSize:",
		"40px",
		"## Visual Gutter",
		"## Spacing",
		"headingToBody:",
		"## Prominent Colors",
		"111827",
		"main#content",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("markdown missing %q:\n%s", want, out)
		}
	}
	for _, absent := range []string{"subheadingToBody", "## Padding, Margin"} {
		if strings.Contains(out, absent) {
			t.Errorf("markdown has pruned %q:\n%s", absent, out)
		}
	}

	if err := m.Send(context.Background(), sample()); err != nil {
		t.Fatalf("second send: %v", err)
	}
	if got := strings.Count(buf.String(), "---"); got != 1 {
		t.Errorf("separators: got %d, want 1", got)
	}
}

type failSink struct{ closed bool }

func (f *failSink) Send(context.Context, Result) error { return errors.New("down") }
func (f *failSink) Close() error                       { f.closed = true; return nil }

func TestRouterFanOut(t *testing.T) {
	var got []string
	cb := NewCallback(func(_ context.Context, r Result) error {
		got = append(got, r.RunID)
		return nil
	})
	bad := &failSink{}
	r := NewRouter(nil, bad, cb)

	err := r.Send(context.Background(), sample())
	if err == nil || err.Error() != "down" {
		t.Errorf("router error: got %v, want down", err)
	}
	if len(got) != 1 || got[0] != "run-1" {
		t.Errorf("callback after failing sink: got %q", got)
	}
	if err := r.Close(); err != nil || !bad.closed {
		t.Errorf("close: err=%v closed=%v", err, bad.closed)
	}
}

func TestCallbackNil(t *testing.T) {
	if err := NewCallback(nil).Send(context.Background(), sample()); err != nil {
		t.Errorf("nil callback: %v", err)
	}
}
