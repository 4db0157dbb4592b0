package uniql

import "fmt"

// PageRequest asks for one page of results.
// Number is 1-based; Size is the number of items per page.
type PageRequest struct {
	Number int `json:"number" yaml:"number"`
	Size   int `json:"size" yaml:"size"`
}

// Offset returns the number of items skipped before this page.
// Page numbers below 1 are treated as the first page.
func (p PageRequest) Offset() int {
	if p.Number < 1 || p.Size < 0 {
		return 0
	}
	return (p.Number - 1) * p.Size
}

// Limit returns the maximum number of items on the page.
func (p PageRequest) Limit() int {
	if p.Size < 0 {
		return 0
	}
	return p.Size
}

// Validate checks that number and size are both >= 1.
// The parser accepts any digit run; callers that need strict paging either
// call Validate or set ParserConfig.StrictPage.
func (p PageRequest) Validate() error {
	if p.Number < 1 {
		return &Error{
			Code:    ErrValidation,
			Message: fmt.Sprintf("page number must be >= 1, got %d", p.Number),
			Details: map[string]any{"param": "number", "value": p.Number},
		}
	}
	if p.Size < 1 {
		return &Error{
			Code:    ErrValidation,
			Message: fmt.Sprintf("page size must be >= 1, got %d", p.Size),
			Details: map[string]any{"param": "size", "value": p.Size},
		}
	}
	return nil
}

func (p PageRequest) String() string {
	return fmt.Sprintf("%d%c%d", p.Number, pageSeparator, p.Size)
}
