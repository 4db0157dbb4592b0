package uniql

import (
	"fmt"
	"regexp"
	"sort"
	"strconv"
	"strings"
)

// Grammar characters.
const (
	startDef      = '{'
	endDef        = '}'
	partDelimiter = '|'
	listSeparator = ','
	pageSeparator = '-'
	ascChar       = '+'
	descChar      = '-'
)

var (
	pagePattern = regexp.MustCompile(`^(\d+)-(\d+)$`)
	sortPattern = regexp.MustCompile(`^([+-]?)([A-Za-z0-9_]+(?:,[A-Za-z0-9_]+)*)$`)
)

// Parse parses a Uniql model into a Node tree.
// All whitespace and NUL characters are removed before scanning, including
// those inside query text. On failure the returned error is a *ParseError and
// no partial tree is returned.
// If config is nil, defaults are used.
func Parse(model string, config *ParserConfig) (*Node, error) {
	sc := newScanner(model)
	if len(sc.src) == 0 {
		return nil, &ParseError{
			Code:    ErrEmptyInput,
			Message: "empty model",
			Pos:     sc.posAt(0),
		}
	}
	p := &parser{
		sc:         sc,
		maxDepth:   config.maxDepth(),
		strictPage: config.strictPage(),
	}
	return p.parseNode(0, len(sc.src), 0)
}

// MustParse is like Parse with default configuration but panics on error.
// It is intended for static models in tests and initializers.
func MustParse(model string) *Node {
	n, err := Parse(model, nil)
	if err != nil {
		panic(err)
	}
	return n
}

// --- Scanner ---

// scanner holds the stripped model and maps every stripped index back to
// its offset in the original input.
type scanner struct {
	input      string
	src        string
	offsets    []int // offsets[i] is the input offset of src[i]
	lineStarts []int // byte offsets where each line starts
}

func newScanner(input string) *scanner {
	s := &scanner{
		input:      input,
		lineStarts: []int{0},
	}
	var b strings.Builder
	b.Grow(len(input))
	for i := 0; i < len(input); i++ {
		ch := input[i]
		if ch == '\n' {
			s.lineStarts = append(s.lineStarts, i+1)
		}
		if isStripped(ch) {
			continue
		}
		b.WriteByte(ch)
		s.offsets = append(s.offsets, i)
	}
	s.src = b.String()
	return s
}

// isStripped reports whether ch is removed before scanning.
func isStripped(ch byte) bool {
	switch ch {
	case ' ', '\t', '\n', '\v', '\f', '\r', 0:
		return true
	}
	return false
}

// posAt converts an index into the stripped source to a Pos in the input.
// Indexes at or past the end map to the end of the input.
func (s *scanner) posAt(i int) Pos {
	offset := len(s.input)
	if i < len(s.offsets) {
		offset = s.offsets[i]
	}
	line := sort.Search(len(s.lineStarts), func(k int) bool {
		return s.lineStarts[k] > offset
	})
	col := offset - s.lineStarts[line-1] + 1
	return Pos{Offset: offset, Line: line, Column: col}
}

// --- Parser ---

// part is the grammar region the scanner is currently in.
type part int

const (
	partName part = iota
	partFields
	partQuery
	partPage
	partSort
)

type parser struct {
	sc         *scanner
	maxDepth   int
	strictPage bool
}

// nodeState is the per-node scan state of one parseNode call.
type nodeState struct {
	node       *Node
	part       part
	buf        strings.Builder
	bufStart   int  // index of the first buffered byte
	lastNested bool // the last committed field was a nested selection
	finished   bool
}

// write appends c, remembering where the buffered token starts.
func (st *nodeState) write(i int, c byte) {
	if st.buf.Len() == 0 {
		st.bufStart = i
	}
	st.buf.WriteByte(c)
}

func (st *nodeState) reset() {
	st.buf.Reset()
}

func (p *parser) errorAt(i int, code ErrorCode, got string, format string, args ...any) *ParseError {
	return &ParseError{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Pos:     p.sc.posAt(i),
		Got:     got,
	}
}

// parseNode parses src[start:end] as one Uniql node. Indexes stay absolute
// into the stripped source so nested errors report positions in the input.
func (p *parser) parseNode(start, end, depth int) (*Node, error) {
	src := p.sc.src
	st := &nodeState{node: &Node{}, part: partName}

	for i := start; i < end; i++ {
		c := src[i]
		if st.finished {
			return nil, p.errorAt(i, ErrTrailingCharacters, string(c),
				"unexpected character after %q was closed", st.node.name)
		}

		switch c {
		case listSeparator:
			if err := p.onListSeparator(st, i); err != nil {
				return nil, err
			}
		case startDef:
			next, err := p.onStartDef(st, i, end, depth)
			if err != nil {
				return nil, err
			}
			i = next
		case partDelimiter:
			if err := p.onPartDelimiter(st, i); err != nil {
				return nil, err
			}
		case endDef:
			if err := p.onEndDef(st, i); err != nil {
				return nil, err
			}
		default:
			if st.part == partFields && st.lastNested && st.buf.Len() == 0 {
				return nil, p.errorAt(i, ErrFieldSeparator, string(c),
					"expected list separator after nested selection in %q", st.node.name)
			}
			st.write(i, c)
		}
	}

	if st.finished {
		return st.node, nil
	}
	if st.part != partName {
		return nil, p.errorAt(end, ErrUnclosedSelection, "",
			"missing closing %q for %q", string(endDef), st.node.name)
	}
	// Leaf path: the whole buffer is the name.
	if err := p.checkIdentifier(st, "name"); err != nil {
		return nil, err
	}
	st.node.name = st.buf.String()
	return st.node, nil
}

func (p *parser) onListSeparator(st *nodeState, i int) error {
	switch st.part {
	case partName:
		return p.errorAt(i, ErrNameSeparator, string(listSeparator),
			"unexpected list separator after %q", st.buf.String())
	case partFields:
		if st.buf.Len() == 0 {
			if !st.lastNested {
				return p.errorAt(i, ErrFieldSeparator, string(listSeparator),
					"empty field in %q", st.node.name)
			}
			st.lastNested = false
			return nil
		}
		return p.commitSimpleField(st)
	case partQuery, partSort:
		st.write(i, listSeparator)
	case partPage:
		return p.errorAt(i, ErrPageSeparator, string(listSeparator),
			"unexpected list separator in page of %q", st.node.name)
	}
	return nil
}

// onStartDef handles '{' and returns the index the scan continues from.
func (p *parser) onStartDef(st *nodeState, i, end, depth int) (int, error) {
	switch st.part {
	case partName:
		if st.buf.Len() == 0 {
			return i, p.errorAt(i, ErrNameSeparator, string(startDef),
				"missing name before %q", string(startDef))
		}
		if err := p.checkIdentifier(st, "name"); err != nil {
			return i, err
		}
		st.node.name = st.buf.String()
		st.reset()
		st.part = partFields
	case partFields:
		if st.buf.Len() == 0 {
			return i, p.errorAt(i, ErrFieldSeparator, string(startDef),
				"missing field name before %q in %q", string(startDef), st.node.name)
		}
		if p.maxDepth >= 0 && depth+1 > p.maxDepth {
			return i, p.errorAt(st.bufStart, ErrMaxDepth, st.buf.String(),
				"selection nesting exceeds maximum depth %d", p.maxDepth)
		}
		closeAt, err := p.matchingEndDef(st, i, end)
		if err != nil {
			return i, err
		}
		child, err := p.parseNode(st.bufStart, closeAt+1, depth+1)
		if err != nil {
			return i, err
		}
		st.node.AddNode(child)
		st.reset()
		st.lastNested = true
		return closeAt, nil
	case partQuery:
		st.write(i, startDef)
	case partPage:
		return i, p.errorAt(i, ErrPageSeparator, string(startDef),
			"unexpected %q in page of %q", string(startDef), st.node.name)
	case partSort:
		return i, p.errorAt(i, ErrSortSeparator, string(startDef),
			"unexpected %q in sort of %q", string(startDef), st.node.name)
	}
	return i, nil
}

// matchingEndDef returns the index of the '}' balancing the '{' at open.
func (p *parser) matchingEndDef(st *nodeState, open, end int) (int, error) {
	src := p.sc.src
	depth := 0
	for j := open; j < end; j++ {
		switch src[j] {
		case startDef:
			depth++
		case endDef:
			depth--
			if depth == 0 {
				return j, nil
			}
		}
	}
	return 0, p.errorAt(open, ErrUnclosedSelection, src[st.bufStart:end],
		"unclosed selection %q", st.buf.String())
}

func (p *parser) onPartDelimiter(st *nodeState, i int) error {
	switch st.part {
	case partName:
		return p.errorAt(i, ErrNameSeparator, string(partDelimiter),
			"unexpected part delimiter after %q", st.buf.String())
	case partFields:
		if err := p.commitPendingField(st); err != nil {
			return err
		}
		st.part = partQuery
	case partQuery:
		st.node.query = st.buf.String()
		st.reset()
		st.part = partPage
	case partPage:
		if err := p.commitPage(st); err != nil {
			return err
		}
		st.part = partSort
	case partSort:
		return p.errorAt(i, ErrSortSeparator, string(partDelimiter),
			"unexpected part delimiter after sort of %q", st.node.name)
	}
	return nil
}

func (p *parser) onEndDef(st *nodeState, i int) error {
	switch st.part {
	case partName:
		return p.errorAt(i, ErrNameSeparator, string(endDef),
			"unexpected %q after %q", string(endDef), st.buf.String())
	case partFields:
		if err := p.commitPendingField(st); err != nil {
			return err
		}
	case partQuery:
		st.node.query = st.buf.String()
		st.reset()
	case partPage:
		if err := p.commitPage(st); err != nil {
			return err
		}
	case partSort:
		if err := p.commitSort(st); err != nil {
			return err
		}
	}
	st.finished = true
	return nil
}

func (p *parser) commitPendingField(st *nodeState) error {
	if st.buf.Len() == 0 {
		return nil
	}
	return p.commitSimpleField(st)
}

func (p *parser) commitSimpleField(st *nodeState) error {
	if err := p.checkIdentifier(st, "field"); err != nil {
		return err
	}
	st.node.AddField(st.buf.String())
	st.reset()
	st.lastNested = false
	return nil
}

// commitPage sets the page from the buffer. An empty buffer is a positional
// placeholder and leaves the page unset.
func (p *parser) commitPage(st *nodeState) error {
	if st.buf.Len() == 0 {
		return nil
	}
	tok := st.buf.String()
	m := pagePattern.FindStringSubmatch(tok)
	if m == nil {
		return p.errorAt(st.bufStart, ErrMalformedPage, tok,
			"bad page definition in %q, expected <number>-<size>", st.node.name)
	}
	number, err1 := strconv.Atoi(m[1])
	size, err2 := strconv.Atoi(m[2])
	if err1 != nil || err2 != nil {
		return p.errorAt(st.bufStart, ErrMalformedPage, tok,
			"page values out of range in %q", st.node.name)
	}
	if p.strictPage && (number < 1 || size < 1) {
		return p.errorAt(st.bufStart, ErrMalformedPage, tok,
			"page number and size must be >= 1 in %q", st.node.name)
	}
	st.node.page = &PageRequest{Number: number, Size: size}
	st.reset()
	return nil
}

// commitSort sets the sort from the buffer. An empty buffer leaves it unset.
func (p *parser) commitSort(st *nodeState) error {
	if st.buf.Len() == 0 {
		return nil
	}
	tok := st.buf.String()
	m := sortPattern.FindStringSubmatch(tok)
	if m == nil {
		return p.errorAt(st.bufStart, ErrMalformedSort, tok,
			"bad sort definition in %q, expected [+|-]<field>[,<field>...]", st.node.name)
	}
	dir := Asc
	if m[1] == string(descChar) {
		dir = Desc
	}
	st.node.sort = &SortRequest{Direction: dir, Fields: strings.Split(m[2], string(listSeparator))}
	st.reset()
	return nil
}

func (p *parser) checkIdentifier(st *nodeState, what string) error {
	s := st.buf.String()
	for k := 0; k < len(s); k++ {
		if !isIdentChar(s[k]) {
			return p.errorAt(st.bufStart+k, ErrInvalidIdentifier, s,
				"invalid character %q in %s", string(s[k]), what)
		}
	}
	return nil
}

// isIdentChar checks if a byte can appear in a name or field identifier.
func isIdentChar(ch byte) bool {
	return (ch >= 'a' && ch <= 'z') || (ch >= 'A' && ch <= 'Z') || (ch >= '0' && ch <= '9') || ch == '_'
}

func isIdentifier(s string) bool {
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		if !isIdentChar(s[i]) {
			return false
		}
	}
	return true
}
