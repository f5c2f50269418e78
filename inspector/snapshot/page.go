package snapshot

import "strings"

// Node is one element as serialised by the in-page collector.
type Node struct {
	Name     string            `json:"tag"`
	IDAttr   string            `json:"id,omitempty"`
	Class    []string          `json:"classes,omitempty"`
	Attrs    map[string]string `json:"attrs,omitempty"`
	Parent   int               `json:"parent"` // index into Page.Nodes, -1 for the root
	Box      Rect              `json:"rect"`
	OffsetW  float64           `json:"offsetWidth"`
	OffsetH  float64           `json:"offsetHeight"`
	Computed Style             `json:"style"`

	index int
	end   int // one past the last descendant
}

// Tag is lower-cased; the collector already does it but hand-built
// fixtures may not.
func (n *Node) Tag() string { return strings.ToLower(n.Name) }

func (n *Node) ID() string { return n.IDAttr }

func (n *Node) Classes() []string { return n.Class }

func (n *Node) Rect() Rect { return n.Box }

func (n *Node) OffsetWidth() float64 { return n.OffsetW }

func (n *Node) OffsetHeight() float64 { return n.OffsetH }

func (n *Node) Style() Style { return n.Computed }

func (n *Node) Attr(name string) (string, bool) {
	switch name {
	case "id":
		return n.IDAttr, n.IDAttr != ""
	case "class":
		return strings.Join(n.Class, " "), len(n.Class) > 0
	}
	v, ok := n.Attrs[name]
	return v, ok
}

// Page is the collector's output: viewport plus elements in preorder.
type Page struct {
	URL   string   `json:"url,omitempty"`
	Title string   `json:"title,omitempty"`
	View  Viewport `json:"viewport"`
	Nodes []*Node  `json:"nodes"`

	body    int
	indexed bool
}

// Index computes subtree bounds. Decode and Builder call it; pages built by
// hand must call it before use.
func (p *Page) Index() {
	p.body = -1
	for i, n := range p.Nodes {
		n.index = i
		n.end = i + 1
		if p.body < 0 && n.Tag() == "body" {
			p.body = i
		}
	}
	// Preorder: a subtree ends where its last descendant ends.
	for i := len(p.Nodes) - 1; i >= 0; i-- {
		n := p.Nodes[i]
		if n.Parent < 0 || n.Parent >= i {
			continue
		}
		if parent := p.Nodes[n.Parent]; n.end > parent.end {
			parent.end = n.end
		}
	}
	p.indexed = true
}

func (p *Page) Viewport() Viewport { return p.View }

// Body returns the body element, or the root element if the page has none.
func (p *Page) Body() Element {
	if !p.indexed {
		p.Index()
	}
	if p.body >= 0 {
		return p.Nodes[p.body]
	}
	if len(p.Nodes) > 0 {
		return p.Nodes[0]
	}
	return nil
}

func (p *Page) All() []Element {
	out := make([]Element, len(p.Nodes))
	for i, n := range p.Nodes {
		out[i] = n
	}
	return out
}

func (p *Page) Descendants(el Element) []Element {
	if !p.indexed {
		p.Index()
	}
	n, ok := el.(*Node)
	if !ok || n.index >= len(p.Nodes) || p.Nodes[n.index] != n {
		return nil
	}
	out := make([]Element, 0, n.end-n.index-1)
	for _, d := range p.Nodes[n.index+1 : n.end] {
		out = append(out, d)
	}
	return out
}
