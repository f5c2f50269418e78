package analyzer

import (
	"slices"
	"strings"

	"github.com/hazyhaar/inspector/inspector/snapshot"
)

// selector is one compound selector: tag, #id, .class (repeatable),
// [attr] or [attr=val], in any combination.
type selector struct {
	tag     string
	id      string
	classes []string
	attrKey string
	attrVal string
	hasVal  bool
}

func parseSelector(sel string) selector {
	var s selector

	if idx := strings.IndexByte(sel, '['); idx >= 0 {
		attrPart := strings.TrimRight(sel[idx+1:], "]")
		sel = sel[:idx]
		if eq := strings.IndexByte(attrPart, '='); eq >= 0 {
			s.attrKey = strings.TrimSpace(attrPart[:eq])
			s.attrVal = strings.Trim(strings.TrimSpace(attrPart[eq+1:]), `"'`)
			s.hasVal = true
		} else {
			s.attrKey = strings.TrimSpace(attrPart)
		}
	}

	// Split off .class and #id parts, keeping the leading tag.
	for sel != "" {
		cut := strings.IndexAny(sel[1:], ".#")
		var part string
		if cut < 0 {
			part, sel = sel, ""
		} else {
			part, sel = sel[:cut+1], sel[cut+1:]
		}
		switch part[0] {
		case '.':
			s.classes = append(s.classes, part[1:])
		case '#':
			s.id = part[1:]
		default:
			s.tag = strings.ToLower(part)
		}
	}
	return s
}

func (s selector) matches(el snapshot.Element) bool {
	if s.tag != "" && s.tag != "*" && el.Tag() != s.tag {
		return false
	}
	if s.id != "" && el.ID() != s.id {
		return false
	}
	for _, c := range s.classes {
		if !slices.Contains(el.Classes(), c) {
			return false
		}
	}
	if s.attrKey != "" {
		v, ok := el.Attr(s.attrKey)
		if !ok || (s.hasVal && v != s.attrVal) {
			return false
		}
	}
	return true
}

// querySelectorAll returns the elements in candidates matching the compound
// selector sel, in document order.
func querySelectorAll(candidates []snapshot.Element, sel string) []snapshot.Element {
	sel = strings.TrimSpace(sel)
	if sel == "" {
		return nil
	}
	s := parseSelector(sel)
	var out []snapshot.Element
	for _, el := range candidates {
		if s.matches(el) {
			out = append(out, el)
		}
	}
	return out
}

// querySelector is the first element in candidates matching sel, or nil.
func querySelector(candidates []snapshot.Element, sel string) snapshot.Element {
	if sel = strings.TrimSpace(sel); sel == "" {
		return nil
	}
	s := parseSelector(sel)
	for _, el := range candidates {
		if s.matches(el) {
			return el
		}
	}
	return nil
}
