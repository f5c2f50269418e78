package snapshot

// Builder assembles synthetic pages for tests and offline fixtures. Children
// may be added in any order; Page flattens the tree in preorder.
type Builder struct {
	view  Viewport
	nodes []*Node
	kids  [][]int
}

// NewBuilder starts a page with an html root and a body that fills the
// viewport. The body's handle is returned by Body.
func NewBuilder(width, height float64) *Builder {
	b := &Builder{view: Viewport{Width: width, Height: height}}
	root := b.add(-1, &Node{Name: "html", Box: At(0, 0, width, height)})
	b.add(root, &Node{Name: "body", Box: At(0, 0, width, height)})
	return b
}

// Body is the handle of the body element.
func (b *Builder) Body() int { return 1 }

// Add appends n as the last child of parent and returns its handle. If both
// offsets are zero they are copied from the rectangle; empty style fields
// receive browser initial values.
func (b *Builder) Add(parent int, n Node) int {
	return b.add(parent, &n)
}

func (b *Builder) add(parent int, n *Node) int {
	if n.OffsetW == 0 && n.OffsetH == 0 {
		n.OffsetW, n.OffsetH = n.Box.Width, n.Box.Height
	}
	n.Computed = n.Computed.withDefaults()
	n.Parent = parent
	b.nodes = append(b.nodes, n)
	b.kids = append(b.kids, nil)
	h := len(b.nodes) - 1
	if parent >= 0 {
		b.kids[parent] = append(b.kids[parent], h)
	}
	return h
}

// Page flattens the tree and returns an indexed page. Nodes are copied, so
// the builder can keep being used.
func (b *Builder) Page() *Page {
	p := &Page{View: b.view}
	var walk func(h, parent int)
	walk = func(h, parent int) {
		n := *b.nodes[h]
		n.Parent = parent
		p.Nodes = append(p.Nodes, &n)
		self := len(p.Nodes) - 1
		for _, k := range b.kids[h] {
			walk(k, self)
		}
	}
	if len(b.nodes) > 0 {
		walk(0, -1)
	}
	p.Index()
	return p
}
