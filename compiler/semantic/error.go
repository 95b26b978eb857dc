package semantic

import (
	"fmt"

	"github.com/deltalog/deltalog/compiler/ast"
)

// Error is a meaning-level violation detected during analysis.  It
// optionally names the offending predicate signature and carries the
// source span of the offending node so the driver can render it with
// file and line information.
type Error struct {
	Msg string
	Key *Key
	Pos int
	End int
}

func (e *Error) Error() string {
	if e.Key != nil {
		return fmt.Sprintf("semantic error: %s: %s", e.Key, e.Msg)
	}
	return "semantic error: " + e.Msg
}

func errorAt(n ast.Node, format string, args ...any) *Error {
	return &Error{
		Msg: fmt.Sprintf(format, args...),
		Pos: n.Pos(),
		End: n.End(),
	}
}
