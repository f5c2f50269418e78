// Package report defines the result bundle produced by one analyzer run and
// the display tree the overlay renders from it.
package report

// Bundle is everything one run extracts. It is rendered once and otherwise
// discarded.
type Bundle struct {
	Container       Container        `json:"container"`
	Fonts           []Font           `json:"fonts"`
	PaddingMargin   BoxMetrics       `json:"pagePaddingAndMargin"`
	VisualGutter    Gutter           `json:"visualGutter"`
	Spacing         Spacing          `json:"spacing"`
	SectionSpacings []SectionSpacing `json:"sectionSpacings"`
	Colors          Colors           `json:"colors"`
}

// Tier records how the container was found.
type Tier string

const (
	TierSemantic  Tier = "semantic"
	TierHeuristic Tier = "heuristic"
	TierBody      Tier = "body"
)

// Container describes the element chosen as main content.
type Container struct {
	Tier       Tier   `json:"tier"`
	Selector   string `json:"selector,omitempty"` // matching semantic selector
	Descriptor string `json:"descriptor"`         // tag#id.class
}

// Font is the computed typography of the first match for Selector.
type Font struct {
	Selector      string `json:"selector"`
	FontFamily    string `json:"fontFamily"`
	FontSize      string `json:"fontSize"`
	LetterSpacing string `json:"letterSpacing"`
	LineHeight    string `json:"lineHeight"`
}

// Distance is clamped, rounded distance from each viewport edge.
type Distance struct {
	Left   string `json:"left"`
	Right  string `json:"right"`
	Top    string `json:"top"`
	Bottom string `json:"bottom"`
}

// BoxMetrics are the container's computed margins and paddings.
type BoxMetrics struct {
	MarginLeft           string   `json:"marginLeft"`
	MarginRight          string   `json:"marginRight"`
	MarginTop            string   `json:"marginTop"`
	MarginBottom         string   `json:"marginBottom"`
	PaddingLeft          string   `json:"paddingLeft"`
	PaddingRight         string   `json:"paddingRight"`
	PaddingTop           string   `json:"paddingTop"`
	PaddingBottom        string   `json:"paddingBottom"`
	DistanceFromViewport Distance `json:"distanceFromViewport"`
}

// Gutter is the inset of the widest prominent block. Nil when no block
// qualified.
type Gutter struct {
	Left  *string `json:"left"`
	Right *string `json:"right"`
}

// Spacing holds the vertical gaps between stacked tag pairs; nil when the
// pair is not found stacked.
type Spacing struct {
	HeadingToSubheading *string `json:"headingToSubheading"`
	SubheadingToBody    *string `json:"subheadingToBody"`
	HeadingToBody       *string `json:"headingToBody"`
}

// SectionSpacing is the gap between two consecutive sections.
type SectionSpacing struct {
	Between string `json:"between"`
	Spacing string `json:"spacing"`
}

// Colors carries both extraction passes. Display is the list the overlay
// shows; which pass fills it is a configuration choice.
type Colors struct {
	Text       []string `json:"text"`
	Background []string `json:"background"`
	ByArea     []string `json:"byArea"`
	Display    []string `json:"display"`
}
