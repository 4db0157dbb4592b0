// Package uniql parses and serializes Uniql models: compact strings that
// encode a tree of selected fields, each level optionally carrying a query
// predicate, a page request and a sort order.
//
//	product{name,description,category{name,tag{name}|search}|price>10|1-20|-name}
package uniql

// Node is one selection level of a Uniql model: a name, the child fields
// selected under it, and optional query, page and sort parts.
//
// Setters return the receiver so calls can be chained. A Node owns its
// children; adding the same child to two parents is not supported. A Node is
// not safe for concurrent mutation; callers sharing one must synchronize.
type Node struct {
	name   string
	fields map[string]*Node
	order  []string // field names in insertion order
	query  string
	page   *PageRequest
	sort   *SortRequest
}

// NewNode creates a leaf node with the given name.
func NewNode(name string) *Node {
	return &Node{name: name}
}

// Name returns the node name.
func (n *Node) Name() string {
	return n.name
}

// SetName renames the node. A parent that already holds this node keeps it
// under its previous key.
func (n *Node) SetName(name string) *Node {
	n.name = name
	return n
}

// AddField adds a leaf child named name, replacing any existing field with
// that name.
func (n *Node) AddField(name string) *Node {
	return n.AddNode(NewNode(name))
}

// AddNode adds child keyed by its name, replacing any existing field with
// that name. A nil child is ignored.
func (n *Node) AddNode(child *Node) *Node {
	if child == nil {
		return n
	}
	if n.fields == nil {
		n.fields = make(map[string]*Node)
	}
	if _, exists := n.fields[child.name]; !exists {
		n.order = append(n.order, child.name)
	}
	n.fields[child.name] = child
	return n
}

// RemoveField removes the named field. It is a no-op if the field is absent.
func (n *Node) RemoveField(name string) *Node {
	if _, ok := n.fields[name]; !ok {
		return n
	}
	delete(n.fields, name)
	for i, f := range n.order {
		if f == name {
			n.order = append(n.order[:i], n.order[i+1:]...)
			break
		}
	}
	return n
}

// Field returns the named child, or nil.
func (n *Node) Field(name string) *Node {
	return n.fields[name]
}

// Fields returns the child nodes in insertion order.
func (n *Node) Fields() []*Node {
	out := make([]*Node, 0, len(n.order))
	for _, name := range n.order {
		out = append(out, n.fields[name])
	}
	return out
}

// FieldNames returns the child names in insertion order.
func (n *Node) FieldNames() []string {
	out := make([]string, len(n.order))
	copy(out, n.order)
	return out
}

// Query returns the predicate text, or "" when none is set.
func (n *Node) Query() string {
	return n.query
}

// SetQuery sets the predicate text. The text is not interpreted.
func (n *Node) SetQuery(query string) *Node {
	n.query = query
	return n
}

// Page returns the page request, or nil.
func (n *Node) Page() *PageRequest {
	return n.page
}

// SetPage sets a page request of size items starting at the 1-based page number.
func (n *Node) SetPage(number, size int) *Node {
	n.page = &PageRequest{Number: number, Size: size}
	return n
}

// SetPageRequest replaces the page request. Nil clears it.
func (n *Node) SetPageRequest(page *PageRequest) *Node {
	n.page = page
	return n
}

// Sort returns the sort request, or nil.
func (n *Node) Sort() *SortRequest {
	return n.sort
}

// SetSort sets a sort request over the given fields.
func (n *Node) SetSort(direction Direction, fields ...string) *Node {
	n.sort = &SortRequest{Direction: direction, Fields: fields}
	return n
}

// SetSortRequest replaces the sort request. Nil clears it.
func (n *Node) SetSortRequest(sort *SortRequest) *Node {
	n.sort = sort
	return n
}

// HasFields reports whether the node has at least one child.
func (n *Node) HasFields() bool {
	return len(n.order) > 0
}

// HasField reports whether the node has a child with the given name.
func (n *Node) HasField(name string) bool {
	_, ok := n.fields[name]
	return ok
}

// HasQuery reports whether a non-empty query is set.
func (n *Node) HasQuery() bool {
	return n.query != ""
}

// HasPage reports whether a page request is set.
func (n *Node) HasPage() bool {
	return n.page != nil
}

// HasSort reports whether a sort request is set.
func (n *Node) HasSort() bool {
	return n.sort != nil
}

// isLeaf reports whether the node serializes as a bare name.
func (n *Node) isLeaf() bool {
	return !n.HasFields() && !n.HasQuery() && n.page == nil && n.sort == nil
}

// Clone returns a deep copy of the node and its descendants.
func (n *Node) Clone() *Node {
	if n == nil {
		return nil
	}
	c := &Node{name: n.name, query: n.query}
	for _, child := range n.Fields() {
		c.AddNode(child.Clone())
	}
	if n.page != nil {
		p := *n.page
		c.page = &p
	}
	if n.sort != nil {
		c.sort = &SortRequest{
			Direction: n.sort.Direction,
			Fields:    append([]string(nil), n.sort.Fields...),
		}
	}
	return c
}

// String returns the compact model of the node.
func (n *Node) String() string {
	return Serialize(n)
}
