package semantic

import (
	"strconv"

	"github.com/deltalog/deltalog/compiler/ast"
)

// ExtractDeltaPredicates scans the whole program for rule statements
// whose head is a delta-insert or delta-delete atom and returns the
// distinct update predicates in signature order.  Each head's
// argument list is canonicalized to placeholder variables
// COL0..COL(arity-1) so two rules updating the same predicate and
// arity collapse to one entry regardless of how their arguments were
// named.  The result does not depend on statement order.
func ExtractDeltaPredicates(prog ast.Program) ([]*ast.Atom, error) {
	set := NewAtomSet()
	for _, s := range prog {
		rule, ok := s.(*ast.Rule)
		if !ok || rule.Head.Form == ast.Plain {
			continue
		}
		set.Add(canonical(rule.Head))
	}
	if set.Len() == 0 {
		return nil, &Error{Msg: "the program has no update", Pos: -1, End: -1}
	}
	return set.Sorted(), nil
}

// canonical replaces a's arguments with fresh placeholder variables,
// erasing the original variable names so only the predicate shape
// remains.
func canonical(a *ast.Atom) *ast.Atom {
	args := make([]ast.Term, len(a.Args))
	for i := range args {
		args[i] = &ast.NamedVar{Kind: "NamedVar", Name: "COL" + strconv.Itoa(i), Loc: a.Loc}
	}
	return &ast.Atom{
		Kind: "Atom",
		Form: a.Form,
		Name: a.Name,
		Args: args,
		Loc:  a.Loc,
	}
}
