package analyzer

import (
	"slices"

	"github.com/hazyhaar/inspector/inspector/snapshot"
)

const (
	topAreaColors  = 3
	extraTextCount = 2
	topCountColors = 5
)

// excludedColors never count in the occurrence pass.
var excludedColors = map[string]bool{"#000000": true, "#ffffff": true, "#ffffff00": true}

// colorsByArea weights each background by its element's area and each text
// color by half of it, in one shared tally. It returns the top three, then
// up to two more text colors ranked by occurrence that are not among them.
func colorsByArea(scope []snapshot.Element) []string {
	areas := newTally()
	textCounts := newTally()
	for _, el := range scope {
		if !measured(el) {
			continue
		}
		st := el.Style()
		area := el.Rect().Area()
		if isRGB(st.BackgroundColor) {
			areas.add(HexColor(st.BackgroundColor), area)
		}
		if isRGB(st.Color) {
			hex := HexColor(st.Color)
			areas.add(hex, area/2)
			textCounts.add(hex, 1)
		}
	}

	out := slices.Clone(top(areas.ranked(), topAreaColors))
	head := len(out)
	for _, hex := range textCounts.ranked() {
		if len(out)-head == extraTextCount {
			break
		}
		if !slices.Contains(out[:head], hex) {
			out = append(out, hex)
		}
	}
	return out
}

// colorsByCount tallies text and background colors separately by
// occurrence, skipping pure black and white, and returns the top five of
// each.
func colorsByCount(scope []snapshot.Element) (text, background []string) {
	texts := newTally()
	backgrounds := newTally()
	for _, el := range scope {
		if !displayed(el) {
			continue
		}
		st := el.Style()
		if isRGB(st.Color) {
			if hex := HexColor(st.Color); !excludedColors[hex] {
				texts.add(hex, 1)
			}
		}
		if isRGB(st.BackgroundColor) {
			if hex := HexColor(st.BackgroundColor); !excludedColors[hex] {
				backgrounds.add(hex, 1)
			}
		}
	}
	return top(texts.ranked(), topCountColors), top(backgrounds.ranked(), topCountColors)
}
