package uniql

import (
	"fmt"
	"strings"
)

// Direction is a sort direction.
type Direction int

// Sort directions.
const (
	Asc Direction = iota
	Desc
)

// String returns "asc" or "desc".
func (d Direction) String() string {
	if d == Desc {
		return "desc"
	}
	return "asc"
}

// ParseDirection converts "asc" or "desc" (case-insensitive) to a Direction.
// The empty string is Asc.
func ParseDirection(s string) (Direction, error) {
	switch strings.ToLower(s) {
	case "asc", "":
		return Asc, nil
	case "desc":
		return Desc, nil
	default:
		return Asc, &Error{
			Code:    ErrValidation,
			Message: fmt.Sprintf("sort direction must be 'asc' or 'desc', got %q", s),
			Details: map[string]any{"value": s},
		}
	}
}

// SortRequest orders results by Fields, all in the same Direction.
type SortRequest struct {
	Direction Direction `json:"direction" yaml:"direction"`
	Fields    []string  `json:"fields" yaml:"fields"`
}

// Validate checks that the request names at least one field and that every
// field is an identifier.
func (s SortRequest) Validate() error {
	if len(s.Fields) == 0 {
		return &Error{
			Code:    ErrValidation,
			Message: "sort requires at least one field",
		}
	}
	for _, f := range s.Fields {
		if !isIdentifier(f) {
			return &Error{
				Code:    ErrValidation,
				Message: fmt.Sprintf("sort field %q is not an identifier", f),
				Details: map[string]any{"field": f},
			}
		}
	}
	return nil
}

func (s SortRequest) String() string {
	dir := ascChar
	if s.Direction == Desc {
		dir = descChar
	}
	return string(dir) + strings.Join(s.Fields, string(listSeparator))
}
