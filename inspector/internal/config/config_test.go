package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func TestDefaults(t *testing.T) {
	c := Default()
	if c.Command.Name != "run-inspector" || c.Command.Shortcut != "Alt+Shift+I" {
		t.Errorf("command: got %+v", c.Command)
	}
	if c.Browser.Stealth != "headless" || c.Browser.MemoryLimit != 1<<30 || c.Browser.RecycleInterval != 4*time.Hour {
		t.Errorf("browser: got %+v", c.Browser)
	}
	if c.Browser.ViewportWidth != 1280 || c.Browser.ViewportHeight != 800 {
		t.Errorf("viewport: got %dx%d", c.Browser.ViewportWidth, c.Browser.ViewportHeight)
	}
	if c.Analyzer.ColorMode != "count" {
		t.Errorf("color mode: got %q", c.Analyzer.ColorMode)
	}
	if c.Overlay.FontHref != "https://fonts.cdnfonts.com/css/sf-pro-display" {
		t.Errorf("font href: got %q", c.Overlay.FontHref)
	}
	if c.HTTP.Addr == "" {
		t.Errorf("http addr empty")
	}
}

func TestLoadFile(t *testing.T) {
	yml := `
browser:
  stealth: headful
  recycle_interval: 30m
  resource_blocking: [images, media]
command:
  shortcut: Ctrl+Shift+D
pages:
  - url: https://example.com
  - id: docs
    url: https://example.com/docs
analyzer:
  color_mode: area
sinks:
  - type: markdown
    path: out.md
`
	path := filepath.Join(t.TempDir(), "inspector.yaml")
	if err := os.WriteFile(path, []byte(yml), 0o644); err != nil {
		t.Fatal(err)
	}
	c, err := LoadFile(path)
	if err != nil {
		t.Fatalf("LoadFile: %v", err)
	}
	if c.Browser.Stealth != "headful" || c.Browser.RecycleInterval != 30*time.Minute {
		t.Errorf("browser: got %+v", c.Browser)
	}
	if len(c.Browser.ResourceBlocking) != 2 {
		t.Errorf("resource blocking: got %v", c.Browser.ResourceBlocking)
	}
	if c.Command.Name != "run-inspector" || c.Command.Shortcut != "Ctrl+Shift+D" {
		t.Errorf("command: got %+v", c.Command)
	}
	if len(c.Pages) != 2 || c.Pages[0].ID != "page-1" || c.Pages[1].ID != "docs" {
		t.Errorf("pages: got %+v", c.Pages)
	}
	if c.Analyzer.ColorMode != "area" {
		t.Errorf("color mode: got %q", c.Analyzer.ColorMode)
	}
	if len(c.Sinks) != 1 || c.Sinks[0].Path != "out.md" {
		t.Errorf("sinks: got %+v", c.Sinks)
	}
}

func TestParseRejects(t *testing.T) {
	tests := []struct {
		name string
		yml  string
		want string
	}{
		{"stealth", "browser: {stealth: http}", "browser.stealth"},
		{"color mode", "analyzer: {color_mode: rainbow}", "color_mode"},
		{"missing url", "pages: [{id: a}]", "missing url"},
		{"duplicate id", "pages: [{id: a, url: 'https://x.test'}, {id: a, url: 'https://y.test'}]", "duplicate"},
		{"unsafe url", "pages: [{url: 'javascript:alert(1)'}]", "only http"},
		{"bad id", "pages: [{id: 'a b', url: 'https://x.test'}]", "page id"},
		{"sink", "sinks: [{type: webhook}]", "sink type"},
		{"yaml", "browser: [", "parse"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.yml))
			if err == nil || !strings.Contains(err.Error(), tt.want) {
				t.Errorf("got %v, want error containing %q", err, tt.want)
			}
		})
	}
}

func TestLoadFileMissing(t *testing.T) {
	if _, err := LoadFile(filepath.Join(t.TempDir(), "nope.yaml")); err == nil {
		t.Errorf("expected error for missing file")
	}
}
