package snapshot

import (
	"encoding/json"
	"fmt"
)

// Decode parses the collector's JSON output and indexes the result.
func Decode(data []byte) (*Page, error) {
	var p Page
	if err := json.Unmarshal(data, &p); err != nil {
		return nil, fmt.Errorf("snapshot: decode: %w", err)
	}
	if err := checkPreorder(p.Nodes); err != nil {
		return nil, fmt.Errorf("snapshot: decode: %w", err)
	}
	p.Index()
	return &p, nil
}

// checkPreorder verifies that every node's parent is the previous node or
// one of its ancestors. Anything else would give Index overlapping subtrees.
func checkPreorder(nodes []*Node) error {
	var stack []int // ancestors of the current node, root first
	for i, n := range nodes {
		if n == nil {
			return fmt.Errorf("nil node at %d", i)
		}
		if n.Parent < 0 {
			stack = append(stack[:0], i)
			continue
		}
		for len(stack) > 0 && stack[len(stack)-1] != n.Parent {
			stack = stack[:len(stack)-1]
		}
		if len(stack) == 0 {
			return fmt.Errorf("node %d has parent %d, want preorder", i, n.Parent)
		}
		stack = append(stack, i)
	}
	return nil
}

// Encode serialises a page in the collector's format.
func Encode(p *Page) ([]byte, error) {
	return json.Marshal(p)
}
