// Package config handles inspector configuration from YAML files.
package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/hazyhaar/inspector/horosafe"
)

// Config is the top-level inspector configuration.
type Config struct {
	Browser  BrowserConfig  `yaml:"browser"`
	Command  CommandConfig  `yaml:"command"`
	Pages    []PageConfig   `yaml:"pages"`
	Analyzer AnalyzerConfig `yaml:"analyzer"`
	Overlay  OverlayConfig  `yaml:"overlay"`
	HTTP     HTTPConfig     `yaml:"http"`
	Sinks    []SinkConfig   `yaml:"sinks"`
}

// BrowserConfig controls Chrome lifecycle.
type BrowserConfig struct {
	Remote           string        `yaml:"remote"`
	MemoryLimit      int64         `yaml:"memory_limit"`
	RecycleInterval  time.Duration `yaml:"recycle_interval"`
	ResourceBlocking []string      `yaml:"resource_blocking"`
	Stealth          string        `yaml:"stealth"` // headless | headful
	XvfbDisplay      string        `yaml:"xvfb_display"`
	ViewportWidth    int           `yaml:"viewport_width"`
	ViewportHeight   int           `yaml:"viewport_height"`
}

// CommandConfig names the inspector command and its chord.
type CommandConfig struct {
	Name     string `yaml:"name"`
	Shortcut string `yaml:"shortcut"`
}

// PageConfig defines a tab opened at startup.
type PageConfig struct {
	ID  string `yaml:"id"`
	URL string `yaml:"url"`
}

// AnalyzerConfig tunes analysis.
type AnalyzerConfig struct {
	ColorMode string `yaml:"color_mode"` // count | area
}

// OverlayConfig tunes the rendered panel.
type OverlayConfig struct {
	FontHref string `yaml:"font_href"`
}

// HTTPConfig controls the trigger endpoint.
type HTTPConfig struct {
	Addr string `yaml:"addr"`
}

// SinkConfig defines an output backend for result bundles.
type SinkConfig struct {
	Type string `yaml:"type"` // stdout | markdown
	Path string `yaml:"path"` // file path; empty = stdout
}

// Default returns a configuration with every default applied.
func Default() *Config {
	var c Config
	c.applyDefaults()
	return &c
}

// LoadFile reads a YAML configuration file.
func LoadFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("config: read %s: %w", path, err)
	}
	return Parse(data)
}

// Parse decodes YAML configuration and applies defaults.
func Parse(data []byte) (*Config, error) {
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("config: parse: %w", err)
	}
	cfg.applyDefaults()
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c *Config) applyDefaults() {
	if c.Browser.MemoryLimit <= 0 {
		c.Browser.MemoryLimit = 1 << 30
	}
	if c.Browser.RecycleInterval <= 0 {
		c.Browser.RecycleInterval = 4 * time.Hour
	}
	if c.Browser.XvfbDisplay == "" {
		c.Browser.XvfbDisplay = ":99"
	}
	if c.Browser.Stealth == "" {
		c.Browser.Stealth = "headless"
	}
	if c.Browser.ViewportWidth <= 0 || c.Browser.ViewportHeight <= 0 {
		c.Browser.ViewportWidth, c.Browser.ViewportHeight = 1280, 800
	}
	if c.Command.Name == "" {
		c.Command.Name = "run-inspector"
	}
	if c.Command.Shortcut == "" {
		c.Command.Shortcut = "Alt+Shift+I"
	}
	if c.Analyzer.ColorMode == "" {
		c.Analyzer.ColorMode = "count"
	}
	if c.Overlay.FontHref == "" {
		c.Overlay.FontHref = "https://fonts.cdnfonts.com/css/sf-pro-display"
	}
	if c.HTTP.Addr == "" {
		c.HTTP.Addr = "127.0.0.1:8797"
	}
	for i := range c.Pages {
		if c.Pages[i].ID == "" {
			c.Pages[i].ID = fmt.Sprintf("page-%d", i+1)
		}
	}
}

func (c *Config) validate() error {
	switch c.Browser.Stealth {
	case "headless", "headful":
	default:
		return fmt.Errorf("config: browser.stealth %q: want headless or headful", c.Browser.Stealth)
	}
	switch c.Analyzer.ColorMode {
	case "count", "area":
	default:
		return fmt.Errorf("config: analyzer.color_mode %q: want count or area", c.Analyzer.ColorMode)
	}
	seen := make(map[string]bool, len(c.Pages))
	for _, p := range c.Pages {
		if p.URL == "" {
			return fmt.Errorf("config: page %s: missing url", p.ID)
		}
		if err := horosafe.ValidatePageURL(p.URL); err != nil {
			return fmt.Errorf("config: page %s: %w", p.ID, err)
		}
		if err := horosafe.ValidateIdentifier(p.ID); err != nil {
			return fmt.Errorf("config: page id: %w", err)
		}
		if seen[p.ID] {
			return fmt.Errorf("config: page %s: duplicate id", p.ID)
		}
		seen[p.ID] = true
	}
	for _, s := range c.Sinks {
		switch s.Type {
		case "stdout", "markdown":
		default:
			return fmt.Errorf("config: sink type %q: want stdout or markdown", s.Type)
		}
	}
	return nil
}
