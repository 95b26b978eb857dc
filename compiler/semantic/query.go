package semantic

import (
	"github.com/deltalog/deltalog/compiler/ast"
)

// GetQuery returns the single query statement of the program, which
// names the compilation target.  A program with no query or with more
// than one is a semantic error.
func GetQuery(prog ast.Program) (*ast.Query, error) {
	var q *ast.Query
	for _, s := range prog {
		query, ok := s.(*ast.Query)
		if !ok {
			continue
		}
		if q != nil {
			return nil, errorAt(query, "ambiguous query: the program has more than one query")
		}
		q = query
	}
	if q == nil {
		return nil, &Error{Msg: "the program has no query", Pos: -1, End: -1}
	}
	return q, nil
}
