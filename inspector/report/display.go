package report

// Section headings, in overlay order.
const (
	SectionFonts         = "Fonts"
	SectionPaddingMargin = "Padding, Margin & Gutter"
	SectionVisualGutter  = "Visual Gutter"
	SectionStacked       = "Spacing"
	SectionSections      = "Section Spacing"
	SectionColors        = "Prominent Colors"
)

// Fields renders a font entry as a display mapping.
func (f Font) Fields() Fields {
	return Fields{
		{"selector", f.Selector},
		{"fontFamily", f.FontFamily},
		{"fontSize", f.FontSize},
		{"letterSpacing", f.LetterSpacing},
		{"lineHeight", f.LineHeight},
	}
}

func (m BoxMetrics) Fields() Fields {
	d := m.DistanceFromViewport
	return Fields{
		{"marginLeft", m.MarginLeft},
		{"marginRight", m.MarginRight},
		{"marginTop", m.MarginTop},
		{"marginBottom", m.MarginBottom},
		{"paddingLeft", m.PaddingLeft},
		{"paddingRight", m.PaddingRight},
		{"paddingTop", m.PaddingTop},
		{"paddingBottom", m.PaddingBottom},
		{"distanceFromViewport", Fields{
			{"left", d.Left},
			{"right", d.Right},
			{"top", d.Top},
			{"bottom", d.Bottom},
		}},
	}
}

func (g Gutter) Fields() Fields {
	return Fields{{"left", g.Left}, {"right", g.Right}}
}

func (s Spacing) Fields() Fields {
	return Fields{
		{"headingToSubheading", s.HeadingToSubheading},
		{"subheadingToBody", s.SubheadingToBody},
		{"headingToBody", s.HeadingToBody},
	}
}

// Display builds the overlay tree: one entry per section heading. Metric
// sections are pruned and omitted when nothing survives. Fonts is always
// present, possibly as an empty list. Section gaps are reported as
// measured, so a 0px gap stays visible.
func (b Bundle) Display() Fields {
	fonts := make([]any, 0, len(b.Fonts))
	for _, f := range b.Fonts {
		fonts = append(fonts, f.Fields())
	}
	out := Fields{{SectionFonts, fonts}}

	add := func(heading string, v any) {
		if pv, ok := Prune(v); ok {
			out = append(out, Field{Key: heading, Value: pv})
		}
	}
	add(SectionPaddingMargin, b.PaddingMargin.Fields())
	add(SectionVisualGutter, b.VisualGutter.Fields())
	add(SectionStacked, b.Spacing.Fields())

	if len(b.SectionSpacings) > 0 {
		var sections Fields
		for _, s := range b.SectionSpacings {
			sections = append(sections, Field{Key: s.Between, Value: s.Spacing})
		}
		out = append(out, Field{Key: SectionSections, Value: sections})
	}
	add(SectionColors, b.Colors.Display)
	return out
}
