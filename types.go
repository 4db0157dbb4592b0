package uniql

// Pos represents a position in the input string.
type Pos struct {
	Offset int `json:"offset"`
	Line   int `json:"line"`
	Column int `json:"column"`
}

// DefaultMaxDepth bounds selection nesting when ParserConfig.MaxDepth is zero.
const DefaultMaxDepth = 64

// ParserConfig controls parser behavior.
// If nil is passed to Parse, defaults are used.
type ParserConfig struct {
	// MaxDepth limits how deeply selections may nest. The root node is at
	// depth 0. Zero means DefaultMaxDepth; a negative value disables the limit.
	MaxDepth int

	// StrictPage rejects page requests whose number or size is below 1.
	// The grammar alone accepts any digit run, including 0.
	StrictPage bool
}

func (c *ParserConfig) maxDepth() int {
	if c == nil || c.MaxDepth == 0 {
		return DefaultMaxDepth
	}
	return c.MaxDepth
}

func (c *ParserConfig) strictPage() bool {
	return c != nil && c.StrictPage
}
