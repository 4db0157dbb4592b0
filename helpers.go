package uniql

import "slices"

// Walk visits n and its descendants depth-first in field order. path holds
// the names from the root down to the visited node, inclusive. Returning
// false from fn skips the node's children.
func Walk(n *Node, fn func(path []string, node *Node) bool) {
	if n == nil {
		return
	}
	walk(n, nil, fn)
}

func walk(n *Node, parent []string, fn func([]string, *Node) bool) {
	path := append(parent[:len(parent):len(parent)], n.name)
	if !fn(path, n) {
		return
	}
	for _, child := range n.Fields() {
		walk(child, path, fn)
	}
}

// Depth returns the nesting depth of the tree: 0 for a leaf, 1 for a node
// whose fields are all leaves, and so on.
func Depth(n *Node) int {
	if n == nil || n.isLeaf() {
		return 0
	}
	d := 0
	for _, child := range n.Fields() {
		d = max(d, Depth(child))
	}
	return d + 1
}

// Count returns the number of nodes in the tree, including n.
func Count(n *Node) int {
	total := 0
	Walk(n, func([]string, *Node) bool {
		total++
		return true
	})
	return total
}

// Equal reports whether a and b describe the same selection: same name,
// query, page and sort, and recursively equal fields. Field order is not
// significant.
func Equal(a, b *Node) bool {
	if a == nil || b == nil {
		return a == b
	}
	if a.name != b.name || a.query != b.query {
		return false
	}
	if !equalPage(a.page, b.page) || !equalSort(a.sort, b.sort) {
		return false
	}
	if len(a.fields) != len(b.fields) {
		return false
	}
	for name, af := range a.fields {
		if !Equal(af, b.fields[name]) {
			return false
		}
	}
	return true
}

func equalPage(a, b *PageRequest) bool {
	if a == nil || b == nil {
		return a == b
	}
	return *a == *b
}

func equalSort(a, b *SortRequest) bool {
	if a == nil || b == nil {
		return a == b
	}
	return a.Direction == b.Direction && slices.Equal(a.Fields, b.Fields)
}
