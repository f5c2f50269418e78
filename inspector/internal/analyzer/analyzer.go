// Package analyzer turns a page snapshot into a report bundle: it picks the
// main content container once, then runs every extractor against it. It
// never fails; missing data yields fewer details.
package analyzer

import (
	"strings"

	"github.com/hazyhaar/inspector/inspector/report"
	"github.com/hazyhaar/inspector/inspector/snapshot"
)

// ColorMode selects which color pass fills Colors.Display.
type ColorMode string

const (
	// ColorsByCount shows the text top-5 then the background top-5.
	ColorsByCount ColorMode = "count"
	// ColorsByArea shows the area-weighted list.
	ColorsByArea ColorMode = "area"
)

// Options tunes a run.
type Options struct {
	ColorMode ColorMode
}

// Analyze runs the container detector and all extractors over doc.
func Analyze(doc snapshot.Document, opts Options) report.Bundle {
	container, info := DetectContainer(doc)

	b := report.Bundle{
		Container:       info,
		VisualGutter:    visualGutter(doc),
		SectionSpacings: sectionSpacings(doc),
	}
	if container == nil {
		return b
	}

	scope := doc.Descendants(container)
	b.Fonts = fonts(scope)
	b.PaddingMargin = boxMetrics(doc, container)
	b.Spacing = spacing(scope)

	b.Colors.Text, b.Colors.Background = colorsByCount(scope)
	b.Colors.ByArea = colorsByArea(scope)
	b.Colors.Display = displayColors(b.Colors, opts.ColorMode)
	return b
}

func displayColors(c report.Colors, mode ColorMode) []string {
	var src []string
	switch mode {
	case ColorsByArea:
		src = c.ByArea
	default:
		src = append(append(src, c.Text...), c.Background...)
	}
	out := make([]string, 0, len(src))
	for _, hex := range src {
		if strings.HasPrefix(hex, "#") {
			out = append(out, hex)
		}
	}
	return out
}

// ParseColorMode maps a configuration value to a mode, defaulting to count.
func ParseColorMode(s string) ColorMode {
	if ColorMode(strings.ToLower(strings.TrimSpace(s))) == ColorsByArea {
		return ColorsByArea
	}
	return ColorsByCount
}
