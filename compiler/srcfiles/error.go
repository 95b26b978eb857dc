package srcfiles

import (
	"fmt"
	"strings"
)

// ErrorList is a list of Errors.
type ErrorList []*Error

// Append appends an Error to e.
func (e *ErrorList) Append(list *List, msg string, pos, end int) {
	*e = append(*e, &Error{msg, pos, end, list})
}

// Bind takes errors that were created elsewhere (e.g., the semantic
// pass) without access to the list's files and points them back at
// this list so they render with positions.
func (e ErrorList) Bind(list *List) {
	for i := range e {
		e[i].list = list
	}
}

// Error concatenates the errors in e with a newline between each.
func (e ErrorList) Error() string {
	var b strings.Builder
	for i, err := range e {
		if i > 0 {
			b.WriteByte('\n')
		}
		b.WriteString(err.Error())
	}
	return b.String()
}

type Error struct {
	Msg  string
	Pos  int
	End  int
	list *List
}

// Error renders the classic compiler diagnostic form
//
//	File "<name>", line <n>, characters <start>-<end>: '<message>'
//
// where start and end count characters from the beginning of the line.
func (e *Error) Error() string {
	if e.list == nil || e.Pos < 0 {
		return e.Msg
	}
	file := e.list.FileOf(e.Pos)
	start := file.Position(e.Pos)
	first := start.Column - 1
	last := first
	if end := file.Position(e.End); end.IsValid() && end.Line == start.Line {
		last = end.Column - 1
	}
	return fmt.Sprintf("File %q, line %d, characters %d-%d: '%s'",
		file.Name, start.Line, first, last, e.Msg)
}
