package cobraext

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/mattn/go-runewidth"

	"github.com/MBEJunior/uniql"
)

// modelError renders a parse failure with the offending line and a caret
// under the reported column.
type modelError struct {
	model string
	err   *uniql.ParseError
}

func (e *modelError) Error() string {
	linestr := lineAt(e.model, e.err.Pos.Line)
	col := min(max(e.err.Pos.Column-1, 0), len(linestr))
	column := runewidth.StringWidth(linestr[:col])
	l := strconv.Itoa(e.err.Pos.Line)
	return fmt.Sprintf("invalid model: %s\n    %s | %s\n    %*c",
		e.err.Message, l, linestr, column+len(l)+4, '^')
}

func (e *modelError) Unwrap() error {
	return e.err
}

// lineAt returns the 1-based line of s without its line terminator.
func lineAt(s string, line int) string {
	lines := strings.Split(s, "\n")
	if line < 1 || line > len(lines) {
		return ""
	}
	return strings.TrimSuffix(lines[line-1], "\r")
}
