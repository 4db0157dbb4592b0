package uniql

import (
	"strconv"
	"strings"
)

// tabSize is the indentation width per nesting level in formatted output.
const tabSize = 2

// Serialize renders n and its descendants as a compact model.
func Serialize(n *Node) string {
	return Format(n, false)
}

// SerializeFormatted renders n as a multi-line model: every field and part
// starts on its own line, indented by tabSize spaces per nesting level.
func SerializeFormatted(n *Node) string {
	return Format(n, true)
}

// Format renders n as a model, formatted or compact. A nil node renders as
// the empty string. Nodes are not validated; an empty name renders as such.
func Format(n *Node, formatted bool) string {
	if n == nil {
		return ""
	}
	var b strings.Builder
	w := &modelWriter{b: &b, formatted: formatted}
	w.node(n, 0)
	return b.String()
}

type modelWriter struct {
	b         *strings.Builder
	formatted bool
}

// newline starts a new line indented to depth. It writes nothing in
// compact mode.
func (w *modelWriter) newline(depth int) {
	if !w.formatted {
		return
	}
	w.b.WriteByte('\n')
	w.b.WriteString(strings.Repeat(" ", depth*tabSize))
}

func (w *modelWriter) node(n *Node, depth int) {
	if depth > 0 {
		w.newline(depth)
	}
	w.b.WriteString(n.name)
	if n.isLeaf() {
		return
	}

	w.b.WriteByte(startDef)
	for i, child := range n.Fields() {
		if i > 0 {
			w.b.WriteByte(listSeparator)
		}
		w.node(child, depth+1)
	}

	// Parts are positional: emit groups up to the last one that is set.
	if n.HasQuery() || n.page != nil || n.sort != nil {
		w.newline(depth + 1)
		w.b.WriteByte(partDelimiter)
		w.b.WriteString(n.query)
	}
	if n.page != nil || n.sort != nil {
		w.newline(depth + 1)
		w.b.WriteByte(partDelimiter)
		if n.page != nil {
			w.b.WriteString(strconv.Itoa(n.page.Number))
			w.b.WriteByte(pageSeparator)
			w.b.WriteString(strconv.Itoa(n.page.Size))
		}
	}
	if n.sort != nil {
		w.newline(depth + 1)
		w.b.WriteByte(partDelimiter)
		w.b.WriteString(n.sort.String())
	}

	w.newline(depth)
	w.b.WriteByte(endDef)
}
