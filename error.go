package uniql

import (
	"errors"
	"fmt"
)

// ErrorCode categorizes a parse failure. The set is closed: every grammar
// violation the parser can detect maps to exactly one code.
type ErrorCode string

// Parse error codes.
const (
	ErrEmptyInput         ErrorCode = "EMPTY_INPUT"
	ErrNameSeparator      ErrorCode = "NAME_SEPARATOR"
	ErrFieldSeparator     ErrorCode = "FIELD_SEPARATOR"
	ErrPageSeparator      ErrorCode = "PAGE_SEPARATOR"
	ErrSortSeparator      ErrorCode = "SORT_SEPARATOR"
	ErrUnclosedSelection  ErrorCode = "UNCLOSED_SELECTION"
	ErrMalformedPage      ErrorCode = "MALFORMED_PAGE"
	ErrMalformedSort      ErrorCode = "MALFORMED_SORT"
	ErrTrailingCharacters ErrorCode = "TRAILING_CHARACTERS"
	ErrInvalidIdentifier  ErrorCode = "INVALID_IDENTIFIER"
	ErrMaxDepth           ErrorCode = "MAX_DEPTH"
)

// ErrValidation is the code used by value object validation.
const ErrValidation = "VALIDATION_ERROR"

// ParseError represents a grammar violation found while parsing a model.
// Pos refers to the original input, before whitespace was stripped.
type ParseError struct {
	Code    ErrorCode `json:"code"`
	Message string    `json:"message"`
	Pos     Pos       `json:"pos"`
	Got     string    `json:"got,omitempty"`
}

// Error implements the error interface for ParseError.
func (e *ParseError) Error() string {
	if e.Got != "" {
		return fmt.Sprintf("parse error at %d:%d: %s (got %q)",
			e.Pos.Line, e.Pos.Column, e.Message, e.Got)
	}
	return fmt.Sprintf("parse error at %d:%d: %s", e.Pos.Line, e.Pos.Column, e.Message)
}

// IsCode reports whether err is, or wraps, a *ParseError with the given code.
func IsCode(err error, code ErrorCode) bool {
	var pe *ParseError
	if errors.As(err, &pe) {
		return pe.Code == code
	}
	return false
}

// Error represents a structured validation error with a code, message, and
// optional details. It is JSON-serializable.
type Error struct {
	Code    string         `json:"code"`
	Message string         `json:"message"`
	Details map[string]any `json:"details,omitempty"`
}

// Error implements the error interface.
func (e *Error) Error() string {
	return e.Message
}
