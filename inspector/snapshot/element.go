// Package snapshot defines the read-only view of a rendered page consumed by
// the analyzer. A snapshot is collected in a single synchronous pass inside
// the page and never mutated afterwards.
package snapshot

// Rect is an element's bounding client rectangle in CSS pixels.
type Rect struct {
	Left   float64 `json:"left"`
	Top    float64 `json:"top"`
	Right  float64 `json:"right"`
	Bottom float64 `json:"bottom"`
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
}

// At returns the rectangle with the given origin and size.
func At(left, top, width, height float64) Rect {
	return Rect{
		Left:   left,
		Top:    top,
		Right:  left + width,
		Bottom: top + height,
		Width:  width,
		Height: height,
	}
}

// Area is width × height.
func (r Rect) Area() float64 { return r.Width * r.Height }

// Style is the subset of the computed style the analyzer reads. Values are
// the strings returned by getComputedStyle, e.g. "rgb(255, 0, 0)" or "16px".
type Style struct {
	Display         string `json:"display"`
	Visibility      string `json:"visibility"`
	Opacity         string `json:"opacity"`
	Position        string `json:"position"`
	Color           string `json:"color"`
	BackgroundColor string `json:"backgroundColor"`

	MarginTop    string `json:"marginTop"`
	MarginRight  string `json:"marginRight"`
	MarginBottom string `json:"marginBottom"`
	MarginLeft   string `json:"marginLeft"`

	PaddingTop    string `json:"paddingTop"`
	PaddingRight  string `json:"paddingRight"`
	PaddingBottom string `json:"paddingBottom"`
	PaddingLeft   string `json:"paddingLeft"`

	FontFamily    string `json:"fontFamily"`
	FontSize      string `json:"fontSize"`
	LetterSpacing string `json:"letterSpacing"`
	LineHeight    string `json:"lineHeight"`
}

// withDefaults fills empty fields with the initial values a browser reports.
func (s Style) withDefaults() Style {
	def := func(p *string, v string) {
		if *p == "" {
			*p = v
		}
	}
	def(&s.Display, "block")
	def(&s.Visibility, "visible")
	def(&s.Opacity, "1")
	def(&s.Position, "static")
	def(&s.Color, "rgb(0, 0, 0)")
	def(&s.BackgroundColor, "rgba(0, 0, 0, 0)")
	for _, p := range []*string{
		&s.MarginTop, &s.MarginRight, &s.MarginBottom, &s.MarginLeft,
		&s.PaddingTop, &s.PaddingRight, &s.PaddingBottom, &s.PaddingLeft,
	} {
		def(p, "0px")
	}
	def(&s.FontFamily, "Times New Roman")
	def(&s.FontSize, "16px")
	def(&s.LetterSpacing, "normal")
	def(&s.LineHeight, "normal")
	return s
}

// Element is the capability every DOM binding must provide: geometry and
// computed style, nothing writable.
type Element interface {
	Tag() string
	ID() string
	Classes() []string
	Attr(name string) (string, bool)
	Rect() Rect
	// OffsetWidth and OffsetHeight are the layout box sizes; zero when the
	// element is not rendered.
	OffsetWidth() float64
	OffsetHeight() float64
	Style() Style
}

// Viewport is the window's inner size.
type Viewport struct {
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
}

// Document is a traversable snapshot. All returns every element in document
// order; Descendants returns the elements strictly below el, also in
// document order.
type Document interface {
	Viewport() Viewport
	Body() Element
	All() []Element
	Descendants(el Element) []Element
}
