package uniql

import "strings"

// PathSeparator joins field names in selection paths.
const PathSeparator = "."

// Selection is a flattened view of a Node tree: the dotted path of every
// field below the root, e.g. "category.tag.name". Host applications use it
// to decide which columns or attributes a model asks for.
type Selection struct {
	paths   map[string]bool
	ordered []string // paths in depth-first field order
}

// NewSelection flattens the fields of root. The root name is not part of
// the paths.
func NewSelection(root *Node) *Selection {
	s := &Selection{paths: make(map[string]bool)}
	if root == nil {
		return s
	}
	for _, child := range root.Fields() {
		Walk(child, func(path []string, _ *Node) bool {
			p := strings.Join(path, PathSeparator)
			if !s.paths[p] {
				s.paths[p] = true
				s.ordered = append(s.ordered, p)
			}
			return true
		})
	}
	return s
}

// Include reports whether the dotted path is selected.
func (s *Selection) Include(path string) bool {
	return s.paths[path]
}

// Paths returns the selected paths in depth-first field order.
func (s *Selection) Paths() []string {
	out := make([]string, len(s.ordered))
	copy(out, s.ordered)
	return out
}

// Leaves returns only the paths of leaf fields, in the same order as Paths.
func (s *Selection) Leaves() []string {
	var out []string
	for i, p := range s.ordered {
		if i+1 < len(s.ordered) && strings.HasPrefix(s.ordered[i+1], p+PathSeparator) {
			continue
		}
		out = append(out, p)
	}
	return out
}
