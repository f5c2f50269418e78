package analyzer

import (
	"github.com/hazyhaar/inspector/inspector/snapshot"
)

const (
	vw = 1280
	vh = 800
)

func node(tag, id string, r snapshot.Rect) snapshot.Node {
	return snapshot.Node{Name: tag, IDAttr: id, Box: r}
}

func styled(tag, id string, r snapshot.Rect, st snapshot.Style) snapshot.Node {
	n := node(tag, id, r)
	n.Computed = st
	return n
}

func byID(doc snapshot.Document, id string) snapshot.Element {
	for _, el := range doc.All() {
		if el.ID() == id {
			return el
		}
	}
	return nil
}

func deref(s *string) string {
	if s == nil {
		return "<nil>"
	}
	return *s
}
